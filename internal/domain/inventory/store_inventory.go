package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
)

// StoreInventory tracks the stock of one catalog item at one store's
// warehouse. It is the aggregate root for stock operations.
// The composite identifier is StoreID + ItemID.
type StoreInventory struct {
	shared.BaseAggregateRoot
	StoreID      uuid.UUID
	ItemID       uuid.UUID
	Quantity     int
	ReorderLevel int // Threshold below which the item shows up in low-stock reports
}

// NewStoreInventory creates a stock record for a store-item pair
func NewStoreInventory(storeID, itemID uuid.UUID) (*StoreInventory, error) {
	if storeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STORE", "Store ID cannot be empty")
	}
	if itemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item ID cannot be empty")
	}

	return &StoreInventory{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		StoreID:           storeID,
		ItemID:            itemID,
	}, nil
}

// Receive adds stock delivered to the store warehouse
func (si *StoreInventory) Receive(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	si.Quantity += quantity
	si.UpdatedAt = time.Now()
	si.IncrementVersion()

	si.AddDomainEvent(NewStockReceivedEvent(si, quantity))

	return nil
}

// Deduct removes stock reserved by a confirmed order
func (si *StoreInventory) Deduct(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if si.Quantity < quantity {
		return shared.ErrInsufficientStock
	}

	si.Quantity -= quantity
	si.UpdatedAt = time.Now()
	si.IncrementVersion()

	si.AddDomainEvent(NewStockDeductedEvent(si, quantity))

	if si.IsBelowReorderLevel() {
		si.AddDomainEvent(NewStockBelowReorderLevelEvent(si))
	}

	return nil
}

// Restore returns stock from a cancelled or returned order
func (si *StoreInventory) Restore(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	si.Quantity += quantity
	si.UpdatedAt = time.Now()
	si.IncrementVersion()

	si.AddDomainEvent(NewStockRestoredEvent(si, quantity))

	return nil
}

// Adjust sets the counted quantity after a physical stock check
func (si *StoreInventory) Adjust(actualQuantity int, reason string) error {
	if actualQuantity < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Actual quantity cannot be negative")
	}
	if reason == "" {
		return shared.NewDomainError("INVALID_REASON", "Adjustment reason is required")
	}

	old := si.Quantity
	si.Quantity = actualQuantity
	si.UpdatedAt = time.Now()
	si.IncrementVersion()

	si.AddDomainEvent(NewStockAdjustedEvent(si, old, actualQuantity, reason))

	return nil
}

// SetReorderLevel sets the low-stock threshold
func (si *StoreInventory) SetReorderLevel(level int) error {
	if level < 0 {
		return shared.NewDomainError("INVALID_REORDER_LEVEL", "Reorder level cannot be negative")
	}

	si.ReorderLevel = level
	si.UpdatedAt = time.Now()
	si.IncrementVersion()

	return nil
}

// CanFulfill returns true if the store has enough stock
func (si *StoreInventory) CanFulfill(quantity int) bool {
	return si.Quantity >= quantity
}

// IsBelowReorderLevel returns true if stock has fallen under the threshold
func (si *StoreInventory) IsBelowReorderLevel() bool {
	return si.ReorderLevel > 0 && si.Quantity < si.ReorderLevel
}
