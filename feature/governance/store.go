package governance

import (
	"context"
	"fmt"

	"govdoc-manager/feature/governance/models"

	"gorm.io/gorm"
)

// Store reads governance version history. All queries return versions
// sorted by version descending; callers rely on index 0 being the
// latest.
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
// need a deterministic annex and interface order.
func (s *Store) query(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Annexes", func(db *gorm.DB) *gorm.DB {
			return db.Order("governance_annexes.id")
		}).
		Preload("Annexes.Interfaces", func(db *gorm.DB) *gorm.DB {
			return db.Order("governance_annex_interfaces.id")
		}).
		Preload("ChangeBy").
		Order("version DESC")
}

// Latest returns the latest version, or nil when nothing was ever
// written.
func (s *Store) Latest(ctx context.Context) (*models.GovernanceEntity, error) {
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
func (s *Store) LatestAsList(ctx context.Context) ([]models.GovernanceEntity, error) {
	var versions []models.GovernanceEntity
	if err := s.query(ctx).Limit(1).Find(&versions).Error; err != nil {
		return nil, fmt.Errorf("failed to read latest governance version: %w", err)
	}
	return versions, nil
}

// AllVersions returns every version, newest first.
func (s *Store) AllVersions(ctx context.Context) ([]models.GovernanceEntity, error) {
	var versions []models.GovernanceEntity
	if err := s.query(ctx).Find(&versions).Error; err != nil {
		return nil, fmt.Errorf("failed to read governance versions: %w", err)
	}
	return versions, nil
}

// AllVersionsPaged returns one page of versions, newest first. Index is
// the zero-based page number.
func (s *Store) AllVersionsPaged(ctx context.Context, index, size int) ([]models.GovernanceEntity, error) {
	var versions []models.GovernanceEntity
	if err := s.query(ctx).Offset(index * size).Limit(size).Find(&versions).Error; err != nil {
		return nil, fmt.Errorf("failed to read governance versions page %d: %w", index, err)
	}
	return versions, nil
}
