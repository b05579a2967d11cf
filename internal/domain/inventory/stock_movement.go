package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
)

// MovementType classifies a stock movement
type MovementType string

const (
	MovementTypeReceive MovementType = "receive" // Goods arrived by rail
	MovementTypeDeduct  MovementType = "deduct"  // Reserved by a confirmed order
	MovementTypeRestore MovementType = "restore" // Returned by a cancelled or failed order
	MovementTypeAdjust  MovementType = "adjust"  // Manual correction after a stock count
)

// IsValid checks if the movement type is known
func (t MovementType) IsValid() bool {
	switch t {
	case MovementTypeReceive, MovementTypeDeduct, MovementTypeRestore, MovementTypeAdjust:
		return true
	}
	return false
}

// StockMovement is an append-only record of one change to a store's
// stock. It is written alongside every StoreInventory mutation and
// feeds the inventory reports.
type StockMovement struct {
	ID            uuid.UUID
	StoreID       uuid.UUID
	ItemID        uuid.UUID
	Type          MovementType
	Quantity      int // Positive for receive/restore, negative for deduct
	QuantityAfter int
	Reference     string // Order number or adjustment note
	ActorID       *uuid.UUID
	CreatedAt     time.Time
}

// NewStockMovement creates a movement record
func NewStockMovement(storeID, itemID uuid.UUID, movementType MovementType, quantity, quantityAfter int, reference string, actorID *uuid.UUID) (*StockMovement, error) {
	if storeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STORE", "Store ID cannot be empty")
	}
	if itemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item ID cannot be empty")
	}
	if !movementType.IsValid() {
		return nil, shared.NewDomainError("INVALID_MOVEMENT_TYPE", "Unknown movement type")
	}
	if quantity == 0 && movementType != MovementTypeAdjust {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be zero")
	}
	if quantityAfter < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Resulting quantity cannot be negative")
	}

	return &StockMovement{
		ID:            uuid.New(),
		StoreID:       storeID,
		ItemID:        itemID,
		Type:          movementType,
		Quantity:      quantity,
		QuantityAfter: quantityAfter,
		Reference:     reference,
		ActorID:       actorID,
		CreatedAt:     time.Now(),
	}, nil
}
