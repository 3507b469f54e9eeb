package models

import (
	"govdoc-manager/core/identity"
	"govdoc-manager/core/versioning"
)

// UserEntity is a persisted user referenced by document versions as the
// author of a change. Rows are created on first encounter of an
// external user key and reused afterwards; they are never updated.
type UserEntity struct {
	ID uint `gorm:"primaryKey"`

	// CheckinUserID is the stable key of the user at the identity
	// provider.
	CheckinUserID string `gorm:"column:checkin_user_id;size:256;index"`

	FullName *string `gorm:"size:256"`
	Email    *string `gorm:"size:256"`
}

// TableName overrides the table name.
func (UserEntity) TableName() string {
	return "users"
}

// NewUserEntity materializes a user row for an author seen for the
// first time.
func NewUserEntity(author identity.Author) *UserEntity {
	u := &UserEntity{CheckinUserID: author.CheckinUserID}
	if author.FullName != "" {
		u.FullName = versioning.StringPtr(author.FullName)
	}
	if author.Email != "" {
		u.Email = versioning.StringPtr(author.Email)
	}
	return u
}

// User is the serialized representation of a change author.
type User struct {
	Kind          string  `json:"kind"`
	ID            uint    `json:"id,omitempty"`
	CheckinUserID string  `json:"checkinUserId,omitempty"`
	FullName      *string `json:"fullName,omitempty"`
	Email         *string `json:"email,omitempty"`
}

// NewUser converts a persisted user to its serialized form.
func NewUser(entity *UserEntity) *User {
	if entity == nil {
		return nil
	}
	return &User{
		Kind:          "User",
		ID:            entity.ID,
		CheckinUserID: entity.CheckinUserID,
		FullName:      entity.FullName,
		Email:         entity.Email,
	}
}
