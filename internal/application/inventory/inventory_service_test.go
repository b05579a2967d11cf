package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/inventory"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
)

func newTestStock(t *testing.T, storeID, itemID uuid.UUID, quantity int) *inventory.StoreInventory {
	t.Helper()
	si, err := inventory.NewStoreInventory(storeID, itemID)
	assert.NoError(t, err)
	if quantity > 0 {
		assert.NoError(t, si.Receive(quantity))
	}
	si.ClearDomainEvents()
	return si
}

func TestInventoryService_ReceiveStock_ExistingRecord(t *testing.T) {
	inventoryRepo := new(MockStoreInventoryRepository)
	movementRepo := new(MockStockMovementRepository)
	service := NewInventoryService(inventoryRepo, movementRepo, new(MockStoreRepository), nil, zap.NewNop())

	storeID, itemID := uuid.New(), uuid.New()
	si := newTestStock(t, storeID, itemID, 40)

	inventoryRepo.On("FindByStoreAndItem", mock.Anything, storeID, itemID).Return(si, nil)
	inventoryRepo.On("Update", mock.Anything, si).Return(nil)
	movementRepo.On("Create", mock.Anything, mock.MatchedBy(func(m *inventory.StockMovement) bool {
		return m.Type == inventory.MovementTypeReceive && m.Quantity == 60 && m.QuantityAfter == 100
	})).Return(nil)

	info, err := service.ReceiveStock(context.Background(), ReceiveStockInput{
		StoreID:   storeID,
		ItemID:    itemID,
		Quantity:  60,
		Reference: "GRN-2026-0114",
	})

	assert.NoError(t, err)
	assert.Equal(t, 100, info.Quantity)
	movementRepo.AssertExpectations(t)
}

func TestInventoryService_ReceiveStock_CreatesRecordOnFirstReceipt(t *testing.T) {
	inventoryRepo := new(MockStoreInventoryRepository)
	movementRepo := new(MockStockMovementRepository)
	service := NewInventoryService(inventoryRepo, movementRepo, new(MockStoreRepository), nil, zap.NewNop())

	storeID, itemID := uuid.New(), uuid.New()
	inventoryRepo.On("FindByStoreAndItem", mock.Anything, storeID, itemID).Return(nil, shared.ErrNotFound)
	inventoryRepo.On("Create", mock.Anything, mock.AnythingOfType("*inventory.StoreInventory")).Return(nil)
	inventoryRepo.On("Update", mock.Anything, mock.AnythingOfType("*inventory.StoreInventory")).Return(nil)
	movementRepo.On("Create", mock.Anything, mock.AnythingOfType("*inventory.StockMovement")).Return(nil)

	info, err := service.ReceiveStock(context.Background(), ReceiveStockInput{
		StoreID:  storeID,
		ItemID:   itemID,
		Quantity: 25,
	})

	assert.NoError(t, err)
	assert.Equal(t, 25, info.Quantity)
	inventoryRepo.AssertCalled(t, "Create", mock.Anything, mock.AnythingOfType("*inventory.StoreInventory"))
}

func TestInventoryService_AdjustStock_RecordsDelta(t *testing.T) {
	inventoryRepo := new(MockStoreInventoryRepository)
	movementRepo := new(MockStockMovementRepository)
	service := NewInventoryService(inventoryRepo, movementRepo, new(MockStoreRepository), nil, zap.NewNop())

	storeID, itemID := uuid.New(), uuid.New()
	si := newTestStock(t, storeID, itemID, 50)

	inventoryRepo.On("FindByStoreAndItem", mock.Anything, storeID, itemID).Return(si, nil)
	inventoryRepo.On("Update", mock.Anything, si).Return(nil)
	movementRepo.On("Create", mock.Anything, mock.MatchedBy(func(m *inventory.StockMovement) bool {
		return m.Type == inventory.MovementTypeAdjust && m.Quantity == -3 && m.QuantityAfter == 47
	})).Return(nil)

	info, err := service.AdjustStock(context.Background(), AdjustStockInput{
		StoreID:        storeID,
		ItemID:         itemID,
		ActualQuantity: 47,
		Reason:         "damaged bags written off",
	})

	assert.NoError(t, err)
	assert.Equal(t, 47, info.Quantity)
	movementRepo.AssertExpectations(t)
}

func TestInventoryService_AdjustStock_UnknownItem(t *testing.T) {
	inventoryRepo := new(MockStoreInventoryRepository)
	service := NewInventoryService(inventoryRepo, new(MockStockMovementRepository), new(MockStoreRepository), nil, zap.NewNop())

	storeID, itemID := uuid.New(), uuid.New()
	inventoryRepo.On("FindByStoreAndItem", mock.Anything, storeID, itemID).Return(nil, shared.ErrNotFound)

	_, err := service.AdjustStock(context.Background(), AdjustStockInput{
		StoreID:        storeID,
		ItemID:         itemID,
		ActualQuantity: 10,
		Reason:         "count",
	})

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "STOCK_NOT_FOUND", domainErr.Code)
}

func TestInventoryService_SetReorderLevel(t *testing.T) {
	inventoryRepo := new(MockStoreInventoryRepository)
	service := NewInventoryService(inventoryRepo, new(MockStockMovementRepository), new(MockStoreRepository), nil, zap.NewNop())

	storeID, itemID := uuid.New(), uuid.New()
	si := newTestStock(t, storeID, itemID, 8)

	inventoryRepo.On("FindByStoreAndItem", mock.Anything, storeID, itemID).Return(si, nil)
	inventoryRepo.On("Update", mock.Anything, si).Return(nil)

	info, err := service.SetReorderLevel(context.Background(), SetReorderLevelInput{
		StoreID:      storeID,
		ItemID:       itemID,
		ReorderLevel: 20,
	})

	assert.NoError(t, err)
	assert.Equal(t, 20, info.ReorderLevel)
	assert.True(t, info.BelowReorder)
}

func TestInventoryService_ListLowStock(t *testing.T) {
	inventoryRepo := new(MockStoreInventoryRepository)
	service := NewInventoryService(inventoryRepo, new(MockStockMovementRepository), new(MockStoreRepository), nil, zap.NewNop())

	storeID := uuid.New()
	low := newTestStock(t, storeID, uuid.New(), 2)
	assert.NoError(t, low.SetReorderLevel(10))
	low.ClearDomainEvents()

	inventoryRepo.On("FindBelowReorderLevel", mock.Anything, &storeID).Return([]*inventory.StoreInventory{low}, nil)

	infos, err := service.ListLowStock(context.Background(), &storeID)

	assert.NoError(t, err)
	assert.Len(t, infos, 1)
	assert.True(t, infos[0].BelowReorder)
}

func TestInventoryService_ListMovements_RequiresFilter(t *testing.T) {
	service := NewInventoryService(new(MockStoreInventoryRepository), new(MockStockMovementRepository), new(MockStoreRepository), nil, zap.NewNop())

	_, err := service.ListMovements(context.Background(), ListMovementsInput{
		From:  time.Now().Add(-24 * time.Hour),
		To:    time.Now(),
		Limit: 50,
	})

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_QUERY", domainErr.Code)
}
