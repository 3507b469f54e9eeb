package responsibility

import (
	"context"
	"fmt"

	"govdoc-manager/core/identity"
	"govdoc-manager/core/versioning"
	"govdoc-manager/feature/responsibility/models"
	"govdoc-manager/feature/users"
	usermodels "govdoc-manager/feature/users/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles responsibility document operations.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new responsibility service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Get returns the current responsibility document, with the full version
// history attached when allVersions is set. The second return value is
// false when no version was ever written.
func (s *Service) Get(ctx context.Context, allVersions bool) (models.Responsibility, bool, error) {
	store := NewStore(s.db)

	var versions []models.ResponsibilityEntity
	var err error
	if allVersions {
		versions, err = store.AllVersions(ctx)
	} else {
		versions, err = store.LatestAsList(ctx)
	}
	if err != nil {
		return models.Responsibility{}, false, fmt.Errorf("%w: %v", versioning.ErrStorage, err)
	}
	if len(versions) == 0 {
		return models.Responsibility{}, false, nil
	}
	return models.NewResponsibilityFromVersions(versions), true, nil
}

// CreateVersion appends one new immutable version built from the
// submitted document, sharing every unchanged group and interface row
// with the latest version.
func (s *Service) CreateVersion(ctx context.Context, submitted models.Responsibility, author identity.Author) (versioning.Created, error) {
	if msg := submitted.Validate(); msg != "" {
		return versioning.Created{}, versioning.Validationf("%s", msg)
	}
	if !author.Resolved() {
		return versioning.Created{}, versioning.Validationf("change author is not resolved")
	}

	var created versioning.Created
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		latest, err := NewStore(tx).Latest(ctx)
		if err != nil {
			return err
		}

		known, err := users.Known(tx, author.CheckinUserID)
		if err != nil {
			return err
		}

		entity := newVersionEntity(submitted, latest, users.Resolve(known, author))
		if err := tx.Create(&entity).Error; err != nil {
			return fmt.Errorf("failed to persist responsibility version %d: %w", entity.Version, err)
		}

		created = versioning.Created{ID: entity.ID, Version: entity.Version}
		return nil
	})
	if err != nil {
		return versioning.Created{}, versioning.ClassifyWriteError(err)
	}
	return created, nil
}

func newVersionEntity(submitted models.Responsibility, latest *models.ResponsibilityEntity, changeBy *usermodels.UserEntity) models.ResponsibilityEntity {
	sub := submitted.ToEntity()

	version := uint(1)
	var priorGroups []models.GroupEntity
	if latest != nil {
		version = latest.Version + 1
		priorGroups = latest.Groups
	}

	groups := versioning.ReconcileBranchSet[models.GroupEntity, models.InterfaceEntity](binding{}, sub.Groups, priorGroups)

	return models.ResponsibilityEntity{
		Description:       sub.Description,
		Groups:            groups,
		Version:           version,
		ChangeDescription: submitted.ChangeDescription,
		ChangeBy:          changeBy,
	}
}
