package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/ordering"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
	"github.com/RaminduDJay/supply-chain-management/internal/infrastructure/persistence/models"
)

// GormCartRepository implements ordering.CartRepository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Create creates a new cart with its lines
func (r *GormCartRepository) Create(ctx context.Context, cart *ordering.Cart) error {
	model := models.CartModelFromDomain(cart)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update rewrites the cart row and replaces its lines. Lines are
// deleted and re-inserted inside one transaction because quantities
// merge and lines vanish as the customer edits.
func (r *GormCartRepository) Update(ctx context.Context, cart *ordering.Cart) error {
	model := models.CartModelFromDomain(cart)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.CartModel{}).
			Where("id = ? AND version = ?", cart.ID, cart.Version-1).
			Updates(map[string]interface{}{
				"customer_id": model.CustomerID,
				"status":      model.Status,
				"updated_at":  model.UpdatedAt,
				"version":     model.Version,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrConcurrencyConflict
		}

		if err := tx.Delete(&models.CartItemModel{}, "cart_id = ?", cart.ID).Error; err != nil {
			return err
		}
		if len(model.Items) > 0 {
			if err := tx.Create(&model.Items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete deletes a cart by ID
func (r *GormCartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.CartItemModel{}, "cart_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.CartModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// FindByID finds a cart by ID, including its lines
func (r *GormCartRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Cart, error) {
	var model models.CartModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindActiveByCustomer finds the customer's active cart, if any
func (r *GormCartRepository) FindActiveByCustomer(ctx context.Context, customerID uuid.UUID) (*ordering.Cart, error) {
	var model models.CartModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("customer_id = ? AND status = ?", customerID, ordering.CartStatusActive).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

var _ ordering.CartRepository = (*GormCartRepository)(nil)
