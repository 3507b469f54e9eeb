package governance_test

import (
	"context"
	"testing"

	"govdoc-manager/feature/governance"
	"govdoc-manager/feature/governance/models"

	"github.com/stretchr/testify/assert"
)

func TestStoreLatest(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	store := governance.NewStore(db)

	t.Run("Empty lineage", func(t *testing.T) {
		latest, err := store.Latest(ctx)
		assert.NoError(t, err)
		assert.Nil(t, latest)

		list, err := store.LatestAsList(ctx)
		assert.NoError(t, err)
		assert.Empty(t, list)
	})

	_, err := svc.CreateVersion(ctx, models.Governance{
		Title: sp("v1"),
		Annexes: []models.Annex{{
			Body:       sp("Board"),
			Interfaces: []models.Interface{{InterfacesWith: sp("Internal")}},
		}},
	}, author)
	assert.NoError(t, err)

	current, _, err := svc.Get(ctx, false)
	assert.NoError(t, err)
	current.Title = sp("v2")
	_, err = svc.CreateVersion(ctx, current, author)
	assert.NoError(t, err)

	t.Run("Latest is fully loaded", func(t *testing.T) {
		latest, err := store.Latest(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, latest)
		assert.Equal(t, uint(2), latest.Version)
		assert.Len(t, latest.Annexes, 1)
		assert.Len(t, latest.Annexes[0].Interfaces, 1)
		assert.NotNil(t, latest.ChangeBy)
	})
}

func TestStorePreloadOrdering(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	store := governance.NewStore(db)

	_, err := svc.CreateVersion(ctx, models.Governance{
		Annexes: []models.Annex{
			{
				Body: sp("Alpha"),
				Interfaces: []models.Interface{
					{InterfacesWith: sp("Internal"), Comment: sp("a")},
					{InterfacesWith: sp("External"), Comment: sp("b")},
				},
			},
			{
				Body:       sp("Beta"),
				Interfaces: []models.Interface{{InterfacesWith: sp("Customer"), Comment: sp("c")}},
			},
		},
	}, author)
	assert.NoError(t, err)

	// Edit one interface so a fresh annex row materializes with a higher
	// id than the reused sibling.
	current, _, err := svc.Get(ctx, false)
	assert.NoError(t, err)
	findInterface(t, findAnnex(t, current.Annexes, "Alpha").Interfaces, "Internal").Comment = sp("a2")
	_, err = svc.CreateVersion(ctx, current, author)
	assert.NoError(t, err)

	// Preloaded associations come back in ascending row-id order.
	latest, err := store.Latest(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, latest)
	assert.Len(t, latest.Annexes, 2)
	for i := 1; i < len(latest.Annexes); i++ {
		assert.Less(t, latest.Annexes[i-1].ID, latest.Annexes[i].ID)
	}
	for _, annex := range latest.Annexes {
		for i := 1; i < len(annex.Interfaces); i++ {
			assert.Less(t, annex.Interfaces[i-1].ID, annex.Interfaces[i].ID)
		}
	}
}

func TestStoreAllVersions(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	store := governance.NewStore(db)

	for _, title := range []string{"v1", "v2", "v3"} {
		current, _, err := svc.Get(ctx, false)
		assert.NoError(t, err)
		current.Title = sp(title)
		_, err = svc.CreateVersion(ctx, current, author)
		assert.NoError(t, err)
	}

	t.Run("Newest first", func(t *testing.T) {
		versions, err := store.AllVersions(ctx)
		assert.NoError(t, err)
		assert.Len(t, versions, 3)
		assert.Equal(t, uint(3), versions[0].Version)
		assert.Equal(t, uint(2), versions[1].Version)
		assert.Equal(t, uint(1), versions[2].Version)
	})

	t.Run("Paged", func(t *testing.T) {
		page, err := store.AllVersionsPaged(ctx, 0, 2)
		assert.NoError(t, err)
		assert.Len(t, page, 2)
		assert.Equal(t, uint(3), page[0].Version)

		page, err = store.AllVersionsPaged(ctx, 1, 2)
		assert.NoError(t, err)
		assert.Len(t, page, 1)
		assert.Equal(t, uint(1), page[0].Version)
	})
}
