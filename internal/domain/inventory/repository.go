package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// StoreRepository defines the interface for store persistence
type StoreRepository interface {
	// Create creates a new store
	Create(ctx context.Context, store *Store) error

	// Update updates an existing store
	Update(ctx context.Context, store *Store) error

	// FindByID finds a store by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Store, error)

	// FindByCity finds the store serving a city
	FindByCity(ctx context.Context, city string) (*Store, error)

	// FindAll returns all stores
	FindAll(ctx context.Context) ([]*Store, error)

	// FindActive returns all active stores
	FindActive(ctx context.Context) ([]*Store, error)
}

// StoreInventoryRepository defines the interface for stock persistence
type StoreInventoryRepository interface {
	// Create creates a stock record
	Create(ctx context.Context, si *StoreInventory) error

	// Update updates a stock record with optimistic concurrency on Version
	Update(ctx context.Context, si *StoreInventory) error

	// FindByStoreAndItem finds the stock record for a store-item pair
	FindByStoreAndItem(ctx context.Context, storeID, itemID uuid.UUID) (*StoreInventory, error)

	// FindByStore returns all stock records at a store
	FindByStore(ctx context.Context, storeID uuid.UUID) ([]*StoreInventory, error)

	// FindBelowReorderLevel returns stock records under their threshold,
	// optionally scoped to one store
	FindBelowReorderLevel(ctx context.Context, storeID *uuid.UUID) ([]*StoreInventory, error)
}

// StockMovementRepository defines the interface for the movement log
type StockMovementRepository interface {
	// Create appends a movement record
	Create(ctx context.Context, movement *StockMovement) error

	// FindByStore returns movements at a store within a time window
	FindByStore(ctx context.Context, storeID uuid.UUID, from, to time.Time, limit int) ([]*StockMovement, error)

	// FindByItem returns movements of an item across stores within a time window
	FindByItem(ctx context.Context, itemID uuid.UUID, from, to time.Time, limit int) ([]*StockMovement, error)
}
