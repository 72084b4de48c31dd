package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"moodlight_backend/internals/features/users/user/model"
)

func FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.UserModel, error) {
	var u model.UserModel
	if err := db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).Take(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// Exists matches on either field; empty values are ignored.
func Exists(ctx context.Context, db *gorm.DB, email, nickname string) (bool, error) {
	q := db.WithContext(ctx).Model(&model.UserModel{})
	switch {
	case email != "" && nickname != "":
		q = q.Where("email = ? OR nickname = ?", email, nickname)
	case email != "":
		q = q.Where("email = ?", email)
	case nickname != "":
		q = q.Where("nickname = ?", nickname)
	default:
		return false, nil
	}
	var n int64
	err := q.Limit(1).Count(&n).Error
	return n > 0, err
}

func NicknameTakenByOther(ctx context.Context, db *gorm.DB, nickname string, self uuid.UUID) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(&model.UserModel{}).
		Where("nickname = ? AND id <> ?", nickname, self).
		Limit(1).Count(&n).Error
	return n > 0, err
}

func Update(ctx context.Context, db *gorm.DB, id uuid.UUID, updates map[string]interface{}) error {
	return db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Updates(updates).Error
}

// DeleteCascade removes the user with everything they own. Likes the user gave
// are taken back from the answers' counters first so likes stays equal to the
// number of like rows.
func DeleteCascade(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ownAnswers := tx.Table("answers").Select("id").Where("user_id = ?", id)

		steps := []func() error{
			func() error {
				return tx.Exec(`UPDATE answers SET likes = likes - 1
					WHERE id IN (SELECT answer_id FROM answer_likes WHERE user_id = ?)`, id).Error
			},
			func() error { return tx.Exec("DELETE FROM answer_likes WHERE user_id = ?", id).Error },
			func() error { return tx.Exec("DELETE FROM comments WHERE user_id = ?", id).Error },
			func() error { return tx.Exec("DELETE FROM answer_likes WHERE answer_id IN (?)", ownAnswers).Error },
			func() error { return tx.Exec("DELETE FROM comments WHERE answer_id IN (?)", ownAnswers).Error },
			func() error { return tx.Exec("DELETE FROM answers WHERE user_id = ?", id).Error },
			func() error { return tx.Where("id = ?", id).Delete(&model.UserModel{}).Error },
		}
		for _, step := range steps {
			if err := step(); err != nil {
				return err
			}
		}
		return nil
	})
}
