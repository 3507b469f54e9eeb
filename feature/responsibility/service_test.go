package responsibility_test

import (
	"context"
	"testing"

	"govdoc-manager/core/database"
	"govdoc-manager/core/identity"
	"govdoc-manager/core/versioning"
	"govdoc-manager/feature/responsibility"
	"govdoc-manager/feature/responsibility/models"
	usermodels "govdoc-manager/feature/users/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var author = identity.Author{
	CheckinUserID: "7a16b1bd5fb7ee0ce00761b2a969b6f1429cbd02aa84a5b0b2017813fac16f24@egi.eu",
	FullName:      "Jane Roe",
}

func setupService(t *testing.T) (*responsibility.Service, *gorm.DB) {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	assert.NoError(t, err)

	err = db.AutoMigrate(
		&usermodels.UserEntity{},
		&models.InterfaceEntity{},
		&models.GroupEntity{},
		&models.ResponsibilityEntity{},
	)
	assert.NoError(t, err)

	return responsibility.NewService(db, zap.NewNop()), db
}

func count(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	assert.NoError(t, db.Table(table).Count(&n).Error)
	return n
}

func sp(s string) *string {
	return versioning.StringPtr(s)
}

func TestCreateVersionSharesUnchangedGroups(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	_, err := svc.CreateVersion(ctx, models.Responsibility{
		Description: sp("Process responsibilities"),
		Groups: []models.Group{{
			Name: sp("Change advisory board"),
			Interfaces: []models.Interface{
				{InterfacesWith: sp("CHM"), Comment: sp("approves changes")},
			},
		}},
	}, author)
	assert.NoError(t, err)

	// Rename the group: a new group row is created, its unchanged
	// interface row is shared with the prior version's group.
	current, found, err := svc.Get(ctx, false)
	assert.NoError(t, err)
	assert.True(t, found)

	current.Groups[0].Name = sp("Advisory board")
	created, err := svc.CreateVersion(ctx, current, author)
	assert.NoError(t, err)
	assert.Equal(t, uint(2), created.Version)

	assert.EqualValues(t, 2, count(t, db, "responsibility"))
	assert.EqualValues(t, 2, count(t, db, "responsibility_groups"))
	assert.EqualValues(t, 1, count(t, db, "responsibility_group_interfaces"))
	assert.EqualValues(t, 2, count(t, db, "responsibility_groups_map"))
	assert.EqualValues(t, 2, count(t, db, "responsibility_group_interfaces_map"))

	latest, found, err := svc.Get(ctx, false)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Advisory board", *latest.Groups[0].Name)
	assert.Equal(t, "approves changes", *latest.Groups[0].Interfaces[0].Comment)
}

func TestCreateVersionRejectsInvalidDocuments(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	t.Run("Unknown interface category", func(t *testing.T) {
		_, err := svc.CreateVersion(ctx, models.Responsibility{
			Groups: []models.Group{{
				Interfaces: []models.Interface{{InterfacesWith: sp("Nowhere")}},
			}},
		}, author)
		assert.ErrorIs(t, err, versioning.ErrValidation)
	})

	t.Run("Unresolved author", func(t *testing.T) {
		_, err := svc.CreateVersion(ctx, models.Responsibility{Description: sp("x")}, identity.Author{})
		assert.ErrorIs(t, err, versioning.ErrValidation)
	})
}

func TestGetHistory(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, found, err := svc.Get(ctx, false)
	assert.NoError(t, err)
	assert.False(t, found)

	for _, desc := range []string{"v1", "v2"} {
		_, err := svc.CreateVersion(ctx, models.Responsibility{Description: sp(desc)}, author)
		assert.NoError(t, err)
	}

	r, found, err := svc.Get(ctx, true)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint(2), r.Version)
	assert.Equal(t, "v2", *r.Description)
	assert.Len(t, r.History, 1)
	assert.Equal(t, uint(1), r.History[0].Version)
	assert.Equal(t, "v1", *r.History[0].Description)
}
