package governance

import (
	"context"
	"fmt"

	"govdoc-manager/core/identity"
	"govdoc-manager/core/versioning"
	"govdoc-manager/feature/governance/models"
	"govdoc-manager/feature/users"
	usermodels "govdoc-manager/feature/users/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles governance document operations.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new governance service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Get returns the current governance document, with the full version
// history attached when allVersions is set. The second return value is
// false when no version was ever written.
func (s *Service) Get(ctx context.Context, allVersions bool) (models.Governance, bool, error) {
	store := NewStore(s.db)

	var versions []models.GovernanceEntity
	var err error
	if allVersions {
		versions, err = store.AllVersions(ctx)
	} else {
		versions, err = store.LatestAsList(ctx)
	}
	if err != nil {
		return models.Governance{}, false, fmt.Errorf("%w: %v", versioning.ErrStorage, err)
	}
	if len(versions) == 0 {
		return models.Governance{}, false, nil
	}
	return models.NewGovernanceFromVersions(versions), true, nil
}

// CreateVersion appends one new immutable version built from the
// submitted document. Unchanged annexes and interfaces of the latest
// version are referenced, not copied; the read of the latest version and
// the insert of the new one share a transaction, so a concurrent writer
// committing first surfaces as versioning.ErrConflict.
func (s *Service) CreateVersion(ctx context.Context, submitted models.Governance, author identity.Author) (versioning.Created, error) {
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
			return fmt.Errorf("failed to persist governance version %d: %w", entity.Version, err)
		}

		created = versioning.Created{ID: entity.ID, Version: entity.Version}
		return nil
	})
	if err != nil {
		return versioning.Created{}, versioning.ClassifyWriteError(err)
	}
	return created, nil
}

// newVersionEntity builds the next version row from the submitted
// document, reusing every annex and interface row of the latest version
// whose content did not change.
func newVersionEntity(submitted models.Governance, latest *models.GovernanceEntity, changeBy *usermodels.UserEntity) models.GovernanceEntity {
	sub := submitted.ToEntity()

	version := uint(1)
	var priorAnnexes []models.AnnexEntity
	if latest != nil {
		version = latest.Version + 1
		priorAnnexes = latest.Annexes
	}

	annexes := versioning.ReconcileBranchSet[models.AnnexEntity, models.InterfaceEntity](binding{}, sub.Annexes, priorAnnexes)

	return models.GovernanceEntity{
		Title:             sub.Title,
		Description:       sub.Description,
		Annexes:           annexes,
		Version:           version,
		ChangeDescription: submitted.ChangeDescription,
		ChangeBy:          changeBy,
	}
}
