package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/inventory"
)

// StockInfo contains one store-item stock record
type StockInfo struct {
	ID           uuid.UUID
	StoreID      uuid.UUID
	ItemID       uuid.UUID
	Quantity     int
	ReorderLevel int
	BelowReorder bool
}

// NewStockInfo maps a stock record to its API representation
func NewStockInfo(si *inventory.StoreInventory) StockInfo {
	return StockInfo{
		ID:           si.ID,
		StoreID:      si.StoreID,
		ItemID:       si.ItemID,
		Quantity:     si.Quantity,
		ReorderLevel: si.ReorderLevel,
		BelowReorder: si.IsBelowReorderLevel(),
	}
}

// ReceiveStockInput records goods arriving at a store
type ReceiveStockInput struct {
	StoreID   uuid.UUID
	ItemID    uuid.UUID
	Quantity  int
	Reference string
	ActorID   *uuid.UUID
}

// AdjustStockInput corrects the on-hand quantity after a stock count
type AdjustStockInput struct {
	StoreID        uuid.UUID
	ItemID         uuid.UUID
	ActualQuantity int
	Reason         string
	ActorID        *uuid.UUID
}

// SetReorderLevelInput changes the low-stock threshold
type SetReorderLevelInput struct {
	StoreID      uuid.UUID
	ItemID       uuid.UUID
	ReorderLevel int
}

// MovementInfo contains one stock movement log entry
type MovementInfo struct {
	ID            uuid.UUID
	StoreID       uuid.UUID
	ItemID        uuid.UUID
	Type          string
	Quantity      int
	QuantityAfter int
	Reference     string
	ActorID       *uuid.UUID
	CreatedAt     time.Time
}

// NewMovementInfo maps a movement record to its API representation
func NewMovementInfo(m *inventory.StockMovement) MovementInfo {
	return MovementInfo{
		ID:            m.ID,
		StoreID:       m.StoreID,
		ItemID:        m.ItemID,
		Type:          string(m.Type),
		Quantity:      m.Quantity,
		QuantityAfter: m.QuantityAfter,
		Reference:     m.Reference,
		ActorID:       m.ActorID,
		CreatedAt:     m.CreatedAt,
	}
}

// ListMovementsInput contains a movement log query
type ListMovementsInput struct {
	StoreID *uuid.UUID
	ItemID  *uuid.UUID
	From    time.Time
	To      time.Time
	Limit   int
}

// StoreInfo contains store data exposed to API clients
type StoreInfo struct {
	ID        uuid.UUID
	Name      string
	City      string
	Address   string
	Phone     string
	RailKM    decimal.Decimal
	Status    string
	ManagerID *uuid.UUID
}

// NewStoreInfo maps a store aggregate to its API representation
func NewStoreInfo(store *inventory.Store) StoreInfo {
	return StoreInfo{
		ID:        store.ID,
		Name:      store.Name,
		City:      store.City,
		Address:   store.Address,
		Phone:     store.Phone,
		RailKM:    store.RailKM,
		Status:    string(store.Status),
		ManagerID: store.ManagerID,
	}
}

// CreateStoreInput contains data for opening a store
type CreateStoreInput struct {
	Name    string
	City    string
	Address string
	Phone   string
	RailKM  decimal.Decimal
}

// UpdateStoreInput contains store fields a main manager may change.
// City and rail distance are fixed at creation, moving a store is a
// new store.
type UpdateStoreInput struct {
	StoreID uuid.UUID
	Name    string
	Address string
	Phone   string
}
