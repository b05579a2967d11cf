package inventory

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/inventory"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
)

// InventoryService manages per-store stock. Every quantity change is
// recorded in the movement log.
type InventoryService struct {
	inventoryRepo inventory.StoreInventoryRepository
	movementRepo  inventory.StockMovementRepository
	storeRepo     inventory.StoreRepository
	publisher     shared.EventPublisher
	logger        *zap.Logger
}

// NewInventoryService creates a new inventory service
func NewInventoryService(
	inventoryRepo inventory.StoreInventoryRepository,
	movementRepo inventory.StockMovementRepository,
	storeRepo inventory.StoreRepository,
	publisher shared.EventPublisher,
	logger *zap.Logger,
) *InventoryService {
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		movementRepo:  movementRepo,
		storeRepo:     storeRepo,
		publisher:     publisher,
		logger:        logger,
	}
}

// ReceiveStock records goods arriving at a store, creating the stock
// record on first receipt of an item.
func (s *InventoryService) ReceiveStock(ctx context.Context, input ReceiveStockInput) (*StockInfo, error) {
	si, err := s.inventoryRepo.FindByStoreAndItem(ctx, input.StoreID, input.ItemID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		si, err = inventory.NewStoreInventory(input.StoreID, input.ItemID)
		if err != nil {
			return nil, err
		}
		if err := s.inventoryRepo.Create(ctx, si); err != nil {
			s.logger.Error("Failed to create stock record", zap.Error(err))
			return nil, err
		}
	}

	if err := si.Receive(input.Quantity); err != nil {
		return nil, err
	}
	if err := s.inventoryRepo.Update(ctx, si); err != nil {
		s.logger.Error("Failed to update stock record", zap.Error(err))
		return nil, err
	}

	if err := s.recordMovement(ctx, si, inventory.MovementTypeReceive, input.Quantity, input.Reference, input.ActorID); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, si)

	info := NewStockInfo(si)
	return &info, nil
}

// AdjustStock corrects the on-hand quantity after a physical count
func (s *InventoryService) AdjustStock(ctx context.Context, input AdjustStockInput) (*StockInfo, error) {
	si, err := s.findStock(ctx, input.StoreID, input.ItemID)
	if err != nil {
		return nil, err
	}

	delta := input.ActualQuantity - si.Quantity
	if err := si.Adjust(input.ActualQuantity, input.Reason); err != nil {
		return nil, err
	}
	if err := s.inventoryRepo.Update(ctx, si); err != nil {
		s.logger.Error("Failed to update stock record", zap.Error(err))
		return nil, err
	}

	if err := s.recordMovement(ctx, si, inventory.MovementTypeAdjust, delta, input.Reason, input.ActorID); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, si)

	s.logger.Info("Stock adjusted",
		zap.String("store_id", si.StoreID.String()),
		zap.String("item_id", si.ItemID.String()),
		zap.Int("delta", delta),
		zap.String("reason", input.Reason))

	info := NewStockInfo(si)
	return &info, nil
}

// SetReorderLevel changes the low-stock threshold of a stock record
func (s *InventoryService) SetReorderLevel(ctx context.Context, input SetReorderLevelInput) (*StockInfo, error) {
	si, err := s.findStock(ctx, input.StoreID, input.ItemID)
	if err != nil {
		return nil, err
	}

	if err := si.SetReorderLevel(input.ReorderLevel); err != nil {
		return nil, err
	}
	if err := s.inventoryRepo.Update(ctx, si); err != nil {
		return nil, err
	}

	info := NewStockInfo(si)
	return &info, nil
}

// GetStock returns the stock record for a store-item pair
func (s *InventoryService) GetStock(ctx context.Context, storeID, itemID uuid.UUID) (*StockInfo, error) {
	si, err := s.findStock(ctx, storeID, itemID)
	if err != nil {
		return nil, err
	}
	info := NewStockInfo(si)
	return &info, nil
}

// ListByStore returns all stock records at a store
func (s *InventoryService) ListByStore(ctx context.Context, storeID uuid.UUID) ([]StockInfo, error) {
	records, err := s.inventoryRepo.FindByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	infos := make([]StockInfo, 0, len(records))
	for _, si := range records {
		infos = append(infos, NewStockInfo(si))
	}
	return infos, nil
}

// ListLowStock returns stock records under their reorder level,
// company-wide or for one store.
func (s *InventoryService) ListLowStock(ctx context.Context, storeID *uuid.UUID) ([]StockInfo, error) {
	records, err := s.inventoryRepo.FindBelowReorderLevel(ctx, storeID)
	if err != nil {
		return nil, err
	}
	infos := make([]StockInfo, 0, len(records))
	for _, si := range records {
		infos = append(infos, NewStockInfo(si))
	}
	return infos, nil
}

// ListMovements returns the movement log for a store or an item
func (s *InventoryService) ListMovements(ctx context.Context, input ListMovementsInput) ([]MovementInfo, error) {
	var (
		movements []*inventory.StockMovement
		err       error
	)
	switch {
	case input.StoreID != nil:
		movements, err = s.movementRepo.FindByStore(ctx, *input.StoreID, input.From, input.To, input.Limit)
	case input.ItemID != nil:
		movements, err = s.movementRepo.FindByItem(ctx, *input.ItemID, input.From, input.To, input.Limit)
	default:
		return nil, shared.NewDomainError("INVALID_QUERY", "A store or item filter is required")
	}
	if err != nil {
		return nil, err
	}

	infos := make([]MovementInfo, 0, len(movements))
	for _, m := range movements {
		infos = append(infos, NewMovementInfo(m))
	}
	return infos, nil
}

func (s *InventoryService) findStock(ctx context.Context, storeID, itemID uuid.UUID) (*inventory.StoreInventory, error) {
	si, err := s.inventoryRepo.FindByStoreAndItem(ctx, storeID, itemID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("STOCK_NOT_FOUND", "Item is not stocked at this store")
		}
		return nil, err
	}
	return si, nil
}

func (s *InventoryService) recordMovement(ctx context.Context, si *inventory.StoreInventory, movementType inventory.MovementType, quantity int, reference string, actorID *uuid.UUID) error {
	movement, err := inventory.NewStockMovement(si.StoreID, si.ItemID, movementType, quantity, si.Quantity, reference, actorID)
	if err != nil {
		return err
	}
	if err := s.movementRepo.Create(ctx, movement); err != nil {
		s.logger.Error("Failed to record stock movement", zap.Error(err))
		return err
	}
	return nil
}

func (s *InventoryService) publishEvents(ctx context.Context, si *inventory.StoreInventory) {
	events := si.GetDomainEvents()
	if s.publisher == nil || len(events) == 0 {
		si.ClearDomainEvents()
		return
	}
	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.logger.Error("Failed to publish domain events", zap.Error(err))
	}
	si.ClearDomainEvents()
}
