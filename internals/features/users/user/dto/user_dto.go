package dto

import "strings"

// UpdateUserRequest is a partial update; nil fields are left untouched.
type UpdateUserRequest struct {
	Nickname       *string `json:"nickname,omitempty" validate:"omitempty,min=3,max=13"`
	UsePushMessage *bool   `json:"usePushMessage,omitempty"`
}

func (r *UpdateUserRequest) Normalize() {
	if r.Nickname != nil {
		s := strings.TrimSpace(*r.Nickname)
		r.Nickname = &s
	}
}

// ToUpdates builds the column map for gorm Updates.
func (r *UpdateUserRequest) ToUpdates() map[string]interface{} {
	out := map[string]interface{}{}
	if r.Nickname != nil {
		out["nickname"] = *r.Nickname
	}
	if r.UsePushMessage != nil {
		out["use_push_message"] = *r.UsePushMessage
	}
	return out
}

type ExistResponse struct {
	Exist bool `json:"exist"`
}
