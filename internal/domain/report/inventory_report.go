package report

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// StockLevel is a read model for current stock at a store
type StockLevel struct {
	StoreID      uuid.UUID `json:"store_id"`
	StoreName    string    `json:"store_name"`
	ItemID       uuid.UUID `json:"item_id"`
	ItemCode     string    `json:"item_code"`
	ItemName     string    `json:"item_name"`
	Quantity     int       `json:"quantity"`
	ReorderLevel int       `json:"reorder_level"`
	BelowReorder bool      `json:"below_reorder"`
}

// MovementSummary aggregates stock movements for an item over a period
type MovementSummary struct {
	ItemID   uuid.UUID `json:"item_id"`
	ItemCode string    `json:"item_code"`
	ItemName string    `json:"item_name"`
	Received int64     `json:"received"`
	Deducted int64     `json:"deducted"`
	Restored int64     `json:"restored"`
	Adjusted int64     `json:"adjusted"`
}

// InventoryReportRepository reads stock figures from the inventory tables
type InventoryReportRepository interface {
	// StockLevels returns current stock, optionally scoped to one store
	StockLevels(ctx context.Context, storeID *uuid.UUID) ([]StockLevel, error)

	// LowStock returns stock records under their reorder level
	LowStock(ctx context.Context, storeID *uuid.UUID) ([]StockLevel, error)

	// Movements aggregates the movement log per item over a window
	Movements(ctx context.Context, storeID uuid.UUID, from, to time.Time) ([]MovementSummary, error)
}
