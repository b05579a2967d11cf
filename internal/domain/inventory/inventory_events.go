package inventory

import (
	"github.com/google/uuid"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
)

// Aggregate type constant for StoreInventory
const AggregateTypeStoreInventory = "StoreInventory"

// Inventory domain event types
const (
	EventTypeStockReceived          = "StockReceived"
	EventTypeStockDeducted          = "StockDeducted"
	EventTypeStockRestored          = "StockRestored"
	EventTypeStockAdjusted          = "StockAdjusted"
	EventTypeStockBelowReorderLevel = "StockBelowReorderLevel"
)

// StockReceivedEvent is published when goods arrive at a store
type StockReceivedEvent struct {
	shared.BaseDomainEvent
	StoreID  uuid.UUID `json:"store_id"`
	ItemID   uuid.UUID `json:"item_id"`
	Quantity int       `json:"quantity"`
}

// NewStockReceivedEvent creates a new StockReceivedEvent
func NewStockReceivedEvent(si *StoreInventory, quantity int) *StockReceivedEvent {
	return &StockReceivedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockReceived, AggregateTypeStoreInventory, si.ID),
		StoreID:         si.StoreID,
		ItemID:          si.ItemID,
		Quantity:        quantity,
	}
}

// StockDeductedEvent is published when a confirmed order reserves stock
type StockDeductedEvent struct {
	shared.BaseDomainEvent
	StoreID  uuid.UUID `json:"store_id"`
	ItemID   uuid.UUID `json:"item_id"`
	Quantity int       `json:"quantity"`
}

// NewStockDeductedEvent creates a new StockDeductedEvent
func NewStockDeductedEvent(si *StoreInventory, quantity int) *StockDeductedEvent {
	return &StockDeductedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockDeducted, AggregateTypeStoreInventory, si.ID),
		StoreID:         si.StoreID,
		ItemID:          si.ItemID,
		Quantity:        quantity,
	}
}

// StockRestoredEvent is published when cancelled or returned stock comes back
type StockRestoredEvent struct {
	shared.BaseDomainEvent
	StoreID  uuid.UUID `json:"store_id"`
	ItemID   uuid.UUID `json:"item_id"`
	Quantity int       `json:"quantity"`
}

// NewStockRestoredEvent creates a new StockRestoredEvent
func NewStockRestoredEvent(si *StoreInventory, quantity int) *StockRestoredEvent {
	return &StockRestoredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockRestored, AggregateTypeStoreInventory, si.ID),
		StoreID:         si.StoreID,
		ItemID:          si.ItemID,
		Quantity:        quantity,
	}
}

// StockAdjustedEvent is published after a manual stock correction
type StockAdjustedEvent struct {
	shared.BaseDomainEvent
	StoreID     uuid.UUID `json:"store_id"`
	ItemID      uuid.UUID `json:"item_id"`
	OldQuantity int       `json:"old_quantity"`
	NewQuantity int       `json:"new_quantity"`
	Reason      string    `json:"reason"`
}

// NewStockAdjustedEvent creates a new StockAdjustedEvent
func NewStockAdjustedEvent(si *StoreInventory, oldQuantity, newQuantity int, reason string) *StockAdjustedEvent {
	return &StockAdjustedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockAdjusted, AggregateTypeStoreInventory, si.ID),
		StoreID:         si.StoreID,
		ItemID:          si.ItemID,
		OldQuantity:     oldQuantity,
		NewQuantity:     newQuantity,
		Reason:          reason,
	}
}

// StockBelowReorderLevelEvent is published when stock falls under its threshold
type StockBelowReorderLevelEvent struct {
	shared.BaseDomainEvent
	StoreID      uuid.UUID `json:"store_id"`
	ItemID       uuid.UUID `json:"item_id"`
	Quantity     int       `json:"quantity"`
	ReorderLevel int       `json:"reorder_level"`
}

// NewStockBelowReorderLevelEvent creates a new StockBelowReorderLevelEvent
func NewStockBelowReorderLevelEvent(si *StoreInventory) *StockBelowReorderLevelEvent {
	return &StockBelowReorderLevelEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockBelowReorderLevel, AggregateTypeStoreInventory, si.ID),
		StoreID:         si.StoreID,
		ItemID:          si.ItemID,
		Quantity:        si.Quantity,
		ReorderLevel:    si.ReorderLevel,
	}
}
