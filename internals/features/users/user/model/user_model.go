package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel maps the users table.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email          string    `gorm:"size:320;uniqueIndex;not null" json:"email"`
	Nickname       string    `gorm:"size:13;uniqueIndex;not null" json:"nickname"`
	Password       string    `gorm:"size:200;not null" json:"-"`
	IsAdmin        bool      `gorm:"column:is_admin;not null;default:false" json:"isAdmin"`
	UsePushMessage bool      `gorm:"column:use_push_message;not null;default:true" json:"usePushMessage"`
	FirebaseToken  *string   `gorm:"column:firebase_token;size:200" json:"-"`
	IsActive       bool      `gorm:"column:is_active;not null;default:true" json:"-"`
	CreatedDate    time.Time `gorm:"column:created_date;autoCreateTime" json:"createdDate"`
	UpdatedDate    time.Time `gorm:"column:updated_date;autoUpdateTime" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// PublicUser is what other users may see.
type PublicUser struct {
	ID       uuid.UUID `json:"id"`
	Nickname string    `json:"nickname"`
}

func (u UserModel) Public() PublicUser {
	return PublicUser{ID: u.ID, Nickname: u.Nickname}
}
