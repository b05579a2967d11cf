package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/inventory"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
	"github.com/RaminduDJay/supply-chain-management/internal/infrastructure/persistence/models"
)

// GormStoreRepository implements inventory.StoreRepository using GORM
type GormStoreRepository struct {
	db *gorm.DB
}

// NewGormStoreRepository creates a new GormStoreRepository
func NewGormStoreRepository(db *gorm.DB) *GormStoreRepository {
	return &GormStoreRepository{db: db}
}

// Create creates a new store
func (r *GormStoreRepository) Create(ctx context.Context, store *inventory.Store) error {
	model := models.StoreModelFromDomain(store)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing store
func (r *GormStoreRepository) Update(ctx context.Context, store *inventory.Store) error {
	model := models.StoreModelFromDomain(store)
	result := r.db.WithContext(ctx).
		Model(&models.StoreModel{}).
		Where("id = ? AND version = ?", store.ID, store.Version-1).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// FindByID finds a store by ID
func (r *GormStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Store, error) {
	var model models.StoreModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCity finds the store serving a city
func (r *GormStoreRepository) FindByCity(ctx context.Context, city string) (*inventory.Store, error) {
	var model models.StoreModel
	if err := r.db.WithContext(ctx).
		Where("city = ? AND status = ?", city, inventory.StoreStatusActive).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all stores
func (r *GormStoreRepository) FindAll(ctx context.Context) ([]*inventory.Store, error) {
	var storeModels []models.StoreModel
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&storeModels).Error; err != nil {
		return nil, err
	}
	return toDomainStores(storeModels), nil
}

// FindActive returns all active stores
func (r *GormStoreRepository) FindActive(ctx context.Context) ([]*inventory.Store, error) {
	var storeModels []models.StoreModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", inventory.StoreStatusActive).
		Order("name ASC").
		Find(&storeModels).Error; err != nil {
		return nil, err
	}
	return toDomainStores(storeModels), nil
}

func toDomainStores(storeModels []models.StoreModel) []*inventory.Store {
	stores := make([]*inventory.Store, len(storeModels))
	for i := range storeModels {
		stores[i] = storeModels[i].ToDomain()
	}
	return stores
}

var _ inventory.StoreRepository = (*GormStoreRepository)(nil)
