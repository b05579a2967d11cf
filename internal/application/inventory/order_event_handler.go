package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/inventory"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/ordering"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
)

// OrderEventHandler keeps store stock in sync with the order
// lifecycle. Confirmation deducts synchronously through
// DeductForOrder; cancellation of a confirmed order and failed
// delivery restore through events.
type OrderEventHandler struct {
	inventoryRepo inventory.StoreInventoryRepository
	movementRepo  inventory.StockMovementRepository
	logger        *zap.Logger
}

// NewOrderEventHandler creates a new order event handler
func NewOrderEventHandler(
	inventoryRepo inventory.StoreInventoryRepository,
	movementRepo inventory.StockMovementRepository,
	logger *zap.Logger,
) *OrderEventHandler {
	return &OrderEventHandler{
		inventoryRepo: inventoryRepo,
		movementRepo:  movementRepo,
		logger:        logger,
	}
}

// EventTypes returns the event types this handler reacts to
func (h *OrderEventHandler) EventTypes() []string {
	return []string{
		ordering.EventTypeOrderCancelled,
		ordering.EventTypeOrderReturned,
	}
}

// Handle processes an order lifecycle event
func (h *OrderEventHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch evt := event.(type) {
	case *ordering.OrderCancelledEvent:
		// Stock was only deducted once the order was confirmed
		if !evt.WasConfirmed {
			return nil
		}
		return h.restoreLines(ctx, evt.StoreID, evt.Lines, evt.OrderNumber)
	case *ordering.OrderReturnedEvent:
		return h.restoreLines(ctx, evt.StoreID, evt.Lines, evt.OrderNumber)
	default:
		h.logger.Warn("Unexpected event type for order handler",
			zap.String("event_type", event.EventType()))
		return nil
	}
}

// DeductForOrder deducts all of an order's lines from the store's
// stock. Every line is validated before any record is written so a
// short line leaves no partial deduction behind.
func (h *OrderEventHandler) DeductForOrder(ctx context.Context, storeID uuid.UUID, lines []ordering.OrderLine, orderNumber string) error {
	stocks := make([]*inventory.StoreInventory, 0, len(lines))
	for _, line := range lines {
		si, err := h.inventoryRepo.FindByStoreAndItem(ctx, storeID, line.ItemID)
		if err != nil {
			return fmt.Errorf("load stock for item %s: %w", line.ItemID, err)
		}
		if err := si.Deduct(line.Quantity); err != nil {
			return fmt.Errorf("deduct stock for order %s: %w", orderNumber, err)
		}
		stocks = append(stocks, si)
	}

	for idx, si := range stocks {
		line := lines[idx]
		if err := h.inventoryRepo.Update(ctx, si); err != nil {
			return err
		}
		if err := h.recordMovement(ctx, si, inventory.MovementTypeDeduct, -line.Quantity, orderNumber); err != nil {
			return err
		}
		if si.IsBelowReorderLevel() {
			h.logger.Warn("Stock below reorder level",
				zap.String("store_id", storeID.String()),
				zap.String("item_id", line.ItemID.String()),
				zap.Int("quantity", si.Quantity),
				zap.Int("reorder_level", si.ReorderLevel))
		}
	}
	h.logger.Info("Stock deducted for order",
		zap.String("order_number", orderNumber),
		zap.Int("lines", len(lines)))
	return nil
}

func (h *OrderEventHandler) restoreLines(ctx context.Context, storeID uuid.UUID, lines []ordering.OrderLine, orderNumber string) error {
	for _, line := range lines {
		si, err := h.inventoryRepo.FindByStoreAndItem(ctx, storeID, line.ItemID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				// Stock record deleted since confirmation, nothing to restore into
				h.logger.Warn("No stock record to restore",
					zap.String("store_id", storeID.String()),
					zap.String("item_id", line.ItemID.String()))
				continue
			}
			return err
		}
		if err := si.Restore(line.Quantity); err != nil {
			return fmt.Errorf("restore stock for order %s: %w", orderNumber, err)
		}
		if err := h.inventoryRepo.Update(ctx, si); err != nil {
			return err
		}
		if err := h.recordMovement(ctx, si, inventory.MovementTypeRestore, line.Quantity, orderNumber); err != nil {
			return err
		}
	}
	h.logger.Info("Stock restored for order",
		zap.String("order_number", orderNumber),
		zap.Int("lines", len(lines)))
	return nil
}

func (h *OrderEventHandler) recordMovement(ctx context.Context, si *inventory.StoreInventory, movementType inventory.MovementType, quantity int, reference string) error {
	movement, err := inventory.NewStockMovement(si.StoreID, si.ItemID, movementType, quantity, si.Quantity, reference, nil)
	if err != nil {
		return err
	}
	return h.movementRepo.Create(ctx, movement)
}
