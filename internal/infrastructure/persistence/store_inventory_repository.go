package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/inventory"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
	"github.com/RaminduDJay/supply-chain-management/internal/infrastructure/persistence/models"
)

// GormStoreInventoryRepository implements inventory.StoreInventoryRepository using GORM
type GormStoreInventoryRepository struct {
	db *gorm.DB
}

// NewGormStoreInventoryRepository creates a new GormStoreInventoryRepository
func NewGormStoreInventoryRepository(db *gorm.DB) *GormStoreInventoryRepository {
	return &GormStoreInventoryRepository{db: db}
}

// Create creates a stock record
func (r *GormStoreInventoryRepository) Create(ctx context.Context, si *inventory.StoreInventory) error {
	model := models.StoreInventoryModelFromDomain(si)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates a stock record. The version check makes concurrent
// deductions against the same store-item pair fail instead of losing
// a write.
func (r *GormStoreInventoryRepository) Update(ctx context.Context, si *inventory.StoreInventory) error {
	model := models.StoreInventoryModelFromDomain(si)
	result := r.db.WithContext(ctx).
		Model(&models.StoreInventoryModel{}).
		Where("id = ? AND version = ?", si.ID, si.Version-1).
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

// FindByStoreAndItem finds the stock record for a store-item pair
func (r *GormStoreInventoryRepository) FindByStoreAndItem(ctx context.Context, storeID, itemID uuid.UUID) (*inventory.StoreInventory, error) {
	var model models.StoreInventoryModel
	if err := r.db.WithContext(ctx).
		Where("store_id = ? AND item_id = ?", storeID, itemID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByStore returns all stock records at a store
func (r *GormStoreInventoryRepository) FindByStore(ctx context.Context, storeID uuid.UUID) ([]*inventory.StoreInventory, error) {
	var invModels []models.StoreInventoryModel
	if err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Find(&invModels).Error; err != nil {
		return nil, err
	}
	return toDomainStoreInventories(invModels), nil
}

// FindBelowReorderLevel returns stock records under their threshold
func (r *GormStoreInventoryRepository) FindBelowReorderLevel(ctx context.Context, storeID *uuid.UUID) ([]*inventory.StoreInventory, error) {
	query := r.db.WithContext(ctx).
		Where("reorder_level > 0 AND quantity < reorder_level")
	if storeID != nil {
		query = query.Where("store_id = ?", *storeID)
	}

	var invModels []models.StoreInventoryModel
	if err := query.Find(&invModels).Error; err != nil {
		return nil, err
	}
	return toDomainStoreInventories(invModels), nil
}

func toDomainStoreInventories(invModels []models.StoreInventoryModel) []*inventory.StoreInventory {
	records := make([]*inventory.StoreInventory, len(invModels))
	for i := range invModels {
		records[i] = invModels[i].ToDomain()
	}
	return records
}

var _ inventory.StoreInventoryRepository = (*GormStoreInventoryRepository)(nil)

// GormStockMovementRepository implements inventory.StockMovementRepository using GORM
type GormStockMovementRepository struct {
	db *gorm.DB
}

// NewGormStockMovementRepository creates a new GormStockMovementRepository
func NewGormStockMovementRepository(db *gorm.DB) *GormStockMovementRepository {
	return &GormStockMovementRepository{db: db}
}

// Create appends a movement record
func (r *GormStockMovementRepository) Create(ctx context.Context, movement *inventory.StockMovement) error {
	model := models.StockMovementModelFromDomain(movement)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByStore returns movements at a store within a time window
func (r *GormStockMovementRepository) FindByStore(ctx context.Context, storeID uuid.UUID, from, to time.Time, limit int) ([]*inventory.StockMovement, error) {
	if limit <= 0 {
		limit = 100
	}

	var movementModels []models.StockMovementModel
	if err := r.db.WithContext(ctx).
		Where("store_id = ? AND created_at BETWEEN ? AND ?", storeID, from, to).
		Order("created_at DESC").
		Limit(limit).
		Find(&movementModels).Error; err != nil {
		return nil, err
	}
	return toDomainMovements(movementModels), nil
}

// FindByItem returns movements of an item across stores within a time window
func (r *GormStockMovementRepository) FindByItem(ctx context.Context, itemID uuid.UUID, from, to time.Time, limit int) ([]*inventory.StockMovement, error) {
	if limit <= 0 {
		limit = 100
	}

	var movementModels []models.StockMovementModel
	if err := r.db.WithContext(ctx).
		Where("item_id = ? AND created_at BETWEEN ? AND ?", itemID, from, to).
		Order("created_at DESC").
		Limit(limit).
		Find(&movementModels).Error; err != nil {
		return nil, err
	}
	return toDomainMovements(movementModels), nil
}

func toDomainMovements(movementModels []models.StockMovementModel) []*inventory.StockMovement {
	movements := make([]*inventory.StockMovement, len(movementModels))
	for i := range movementModels {
		movements[i] = movementModels[i].ToDomain()
	}
	return movements
}

var _ inventory.StockMovementRepository = (*GormStockMovementRepository)(nil)
