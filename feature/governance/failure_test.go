package governance_test

import (
	"context"
	"errors"
	"testing"

	"govdoc-manager/core/versioning"
	"govdoc-manager/feature/governance"
	"govdoc-manager/feature/governance/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestGetStorageFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := governance.NewService(db, zap.NewNop())

	mock.ExpectQuery("SELECT (.+) FROM `governance`").
		WillReturnError(errors.New("connection refused"))

	_, _, err := svc.Get(context.Background(), false)
	assert.ErrorIs(t, err, versioning.ErrStorage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateVersionStorageFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := governance.NewService(db, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `governance`").
		WillReturnError(errors.New("connection refused"))
	mock.ExpectRollback()

	_, err := svc.CreateVersion(context.Background(), models.Governance{Title: sp("Draft")}, author)
	assert.ErrorIs(t, err, versioning.ErrStorage)
	assert.NoError(t, mock.ExpectationsWereMet())
}
