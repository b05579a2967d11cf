package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/inventory"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
	"github.com/RaminduDJay/supply-chain-management/internal/infrastructure/persistence/models"
)

// newSQLiteDB opens an in-memory database so repository queries run
// against a real SQL engine rather than a statement mock.
func newSQLiteDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(migrate...))
	return db
}

func newTestStore(t *testing.T, name, city string) *inventory.Store {
	t.Helper()

	store, err := inventory.NewStore(name, city, decimal.RequireFromString("116.5"))
	require.NoError(t, err)
	return store
}

func TestGormStoreRepositoryRoundTrip(t *testing.T) {
	db := newSQLiteDB(t, &models.StoreModel{})
	repo := NewGormStoreRepository(db)
	ctx := context.Background()

	galle := newTestStore(t, "Galle Regional", "Galle")
	kandy := newTestStore(t, "Kandy Regional", "Kandy")
	require.NoError(t, kandy.Deactivate())

	require.NoError(t, repo.Create(ctx, galle))
	require.NoError(t, repo.Create(ctx, kandy))

	found, err := repo.FindByID(ctx, galle.ID)
	require.NoError(t, err)
	assert.Equal(t, "Galle Regional", found.Name)
	assert.Equal(t, "Galle", found.City)
	assert.True(t, found.RailKM.Equal(decimal.RequireFromString("116.5")))
	assert.Equal(t, inventory.StoreStatusActive, found.Status)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "Galle Regional", all[0].Name)

	active, err := repo.FindActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, galle.ID, active[0].ID)
}

func TestGormStoreRepositoryFindByCity(t *testing.T) {
	db := newSQLiteDB(t, &models.StoreModel{})
	repo := NewGormStoreRepository(db)
	ctx := context.Background()

	store := newTestStore(t, "Matara Regional", "Matara")
	require.NoError(t, repo.Create(ctx, store))

	found, err := repo.FindByCity(ctx, "Matara")
	require.NoError(t, err)
	assert.Equal(t, store.ID, found.ID)

	// Deactivated stores no longer serve their city
	require.NoError(t, found.Deactivate())
	require.NoError(t, repo.Update(ctx, found))

	_, err = repo.FindByCity(ctx, "Matara")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormStoreRepositoryFindByIDNotFound(t *testing.T) {
	db := newSQLiteDB(t, &models.StoreModel{})
	repo := NewGormStoreRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormStoreRepositoryOptimisticLocking(t *testing.T) {
	db := newSQLiteDB(t, &models.StoreModel{})
	repo := NewGormStoreRepository(db)
	ctx := context.Background()

	store := newTestStore(t, "Jaffna Regional", "Jaffna")
	require.NoError(t, repo.Create(ctx, store))

	require.NoError(t, store.Update("Jaffna Regional", "12 Station Rd", "+94 21 222 0000"))
	require.NoError(t, repo.Update(ctx, store))

	found, err := repo.FindByID(ctx, store.ID)
	require.NoError(t, err)
	assert.Equal(t, "12 Station Rd", found.Address)
	assert.Equal(t, store.Version, found.Version)

	// Replaying the same version must not silently overwrite
	err = repo.Update(ctx, store)
	assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
}
