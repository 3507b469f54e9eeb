package responsibility

import (
	"context"
	"fmt"

	"govdoc-manager/feature/responsibility/models"

	"gorm.io/gorm"
)

// Store reads responsibility version history, newest first.
type Store struct {
	db *gorm.DB
}

// NewStore creates a version history reader on the given connection or
// transaction.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Association preloads carry an explicit row-id order: GORM's many2many
// joins are otherwise unordered, and clients doing read-modify-write
// need a deterministic group and interface order.
func (s *Store) query(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Groups", func(db *gorm.DB) *gorm.DB {
			return db.Order("responsibility_groups.id")
		}).
		Preload("Groups.Interfaces", func(db *gorm.DB) *gorm.DB {
			return db.Order("responsibility_group_interfaces.id")
		}).
		Preload("ChangeBy").
		Order("version DESC")
}

// Latest returns the latest version, or nil when nothing was ever
// written.
func (s *Store) Latest(ctx context.Context) (*models.ResponsibilityEntity, error) {
	versions, err := s.LatestAsList(ctx)
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, nil
	}
	return &versions[0], nil
}

// LatestAsList returns the latest version as a list with zero or one
// element.
func (s *Store) LatestAsList(ctx context.Context) ([]models.ResponsibilityEntity, error) {
	var versions []models.ResponsibilityEntity
	if err := s.query(ctx).Limit(1).Find(&versions).Error; err != nil {
		return nil, fmt.Errorf("failed to read latest responsibility version: %w", err)
	}
	return versions, nil
}

// AllVersions returns every version, newest first.
func (s *Store) AllVersions(ctx context.Context) ([]models.ResponsibilityEntity, error) {
	var versions []models.ResponsibilityEntity
	if err := s.query(ctx).Find(&versions).Error; err != nil {
		return nil, fmt.Errorf("failed to read responsibility versions: %w", err)
	}
	return versions, nil
}

// AllVersionsPaged returns one page of versions, newest first. Index is
// the zero-based page number.
func (s *Store) AllVersionsPaged(ctx context.Context, index, size int) ([]models.ResponsibilityEntity, error) {
	var versions []models.ResponsibilityEntity
	if err := s.query(ctx).Offset(index * size).Limit(size).Find(&versions).Error; err != nil {
		return nil, fmt.Errorf("failed to read responsibility versions page %d: %w", index, err)
	}
	return versions, nil
}
