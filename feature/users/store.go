package users

import (
	"errors"
	"fmt"

	"govdoc-manager/core/identity"
	"govdoc-manager/feature/users/models"

	"gorm.io/gorm"
)

// FindByCheckinUserID returns the persisted user with the given external
// key, or nil when the user was never seen before.
func FindByCheckinUserID(tx *gorm.DB, checkinUserID string) (*models.UserEntity, error) {
	var user models.UserEntity
	err := tx.Where("checkin_user_id = ?", checkinUserID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return &user, nil
}

// Known builds the author de-duplication map for one write transaction:
// already persisted users keyed by their external user key. The map is
// scoped to the single write and never shared across calls.
func Known(tx *gorm.DB, checkinUserID string) (map[string]*models.UserEntity, error) {
	known := make(map[string]*models.UserEntity)
	if checkinUserID == "" {
		return known, nil
	}

	user, err := FindByCheckinUserID(tx, checkinUserID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		known[user.CheckinUserID] = user
	}
	return known, nil
}

// Resolve returns the author's persisted user from the de-duplication
// map, or a fresh row when the author was never seen before. An
// unresolved author yields nil.
func Resolve(known map[string]*models.UserEntity, author identity.Author) *models.UserEntity {
	if !author.Resolved() {
		return nil
	}
	if user, ok := known[author.CheckinUserID]; ok {
		return user
	}
	return models.NewUserEntity(author)
}
