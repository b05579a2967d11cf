package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
)

func newTestStock(t *testing.T) *StoreInventory {
	t.Helper()
	si, err := NewStoreInventory(uuid.New(), uuid.New())
	require.NoError(t, err)
	return si
}

func TestStoreInventoryReceive(t *testing.T) {
	t.Run("receive adds stock", func(t *testing.T) {
		si := newTestStock(t)

		require.NoError(t, si.Receive(100))
		assert.Equal(t, 100, si.Quantity)

		events := si.GetDomainEvents()
		require.Len(t, events, 1)
		_, ok := events[0].(*StockReceivedEvent)
		assert.True(t, ok)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		si := newTestStock(t)
		assert.Error(t, si.Receive(0))
		assert.Error(t, si.Receive(-5))
	})
}

func TestStoreInventoryDeduct(t *testing.T) {
	t.Run("deduct removes stock", func(t *testing.T) {
		si := newTestStock(t)
		require.NoError(t, si.Receive(100))

		require.NoError(t, si.Deduct(30))
		assert.Equal(t, 70, si.Quantity)
	})

	t.Run("deduct beyond stock fails", func(t *testing.T) {
		si := newTestStock(t)
		require.NoError(t, si.Receive(10))

		err := si.Deduct(11)
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
		assert.Equal(t, 10, si.Quantity)
	})

	t.Run("falling under reorder level raises an alert event", func(t *testing.T) {
		si := newTestStock(t)
		require.NoError(t, si.Receive(100))
		require.NoError(t, si.SetReorderLevel(50))
		si.ClearDomainEvents()

		require.NoError(t, si.Deduct(60))

		events := si.GetDomainEvents()
		require.Len(t, events, 2)
		_, ok := events[1].(*StockBelowReorderLevelEvent)
		assert.True(t, ok)
	})

	t.Run("no alert when threshold unset", func(t *testing.T) {
		si := newTestStock(t)
		require.NoError(t, si.Receive(100))
		si.ClearDomainEvents()

		require.NoError(t, si.Deduct(99))
		assert.Len(t, si.GetDomainEvents(), 1)
	})
}

func TestStoreInventoryRestoreAndAdjust(t *testing.T) {
	t.Run("restore returns cancelled stock", func(t *testing.T) {
		si := newTestStock(t)
		require.NoError(t, si.Receive(100))
		require.NoError(t, si.Deduct(30))

		require.NoError(t, si.Restore(30))
		assert.Equal(t, 100, si.Quantity)
	})

	t.Run("adjust needs a reason", func(t *testing.T) {
		si := newTestStock(t)
		require.NoError(t, si.Receive(100))

		assert.Error(t, si.Adjust(95, ""))
		require.NoError(t, si.Adjust(95, "stock count shortfall"))
		assert.Equal(t, 95, si.Quantity)
	})

	t.Run("adjust event carries old and new quantities", func(t *testing.T) {
		si := newTestStock(t)
		require.NoError(t, si.Receive(100))
		si.ClearDomainEvents()

		require.NoError(t, si.Adjust(90, "damaged goods"))

		events := si.GetDomainEvents()
		require.Len(t, events, 1)
		evt, ok := events[0].(*StockAdjustedEvent)
		require.True(t, ok)
		assert.Equal(t, 100, evt.OldQuantity)
		assert.Equal(t, 90, evt.NewQuantity)
	})
}

func TestStockMovement(t *testing.T) {
	t.Run("creates valid movement", func(t *testing.T) {
		m, err := NewStockMovement(uuid.New(), uuid.New(), MovementTypeDeduct, -30, 70, "SO-20260205-0001", nil)
		require.NoError(t, err)
		assert.Equal(t, MovementTypeDeduct, m.Type)
		assert.Equal(t, 70, m.QuantityAfter)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := NewStockMovement(uuid.New(), uuid.New(), MovementType("transfer"), 10, 10, "", nil)
		assert.Error(t, err)
	})

	t.Run("rejects negative resulting quantity", func(t *testing.T) {
		_, err := NewStockMovement(uuid.New(), uuid.New(), MovementTypeDeduct, -10, -1, "", nil)
		assert.Error(t, err)
	})
}

func TestStore(t *testing.T) {
	t.Run("creates active store", func(t *testing.T) {
		store, err := NewStore("Galle Store", "Galle", decimal.NewFromInt(119))
		require.NoError(t, err)
		assert.True(t, store.IsActive())
	})

	t.Run("rejects negative rail distance", func(t *testing.T) {
		_, err := NewStore("Galle Store", "Galle", decimal.NewFromInt(-1))
		assert.Error(t, err)
	})

	t.Run("manager assignment", func(t *testing.T) {
		store, err := NewStore("Galle Store", "Galle", decimal.NewFromInt(119))
		require.NoError(t, err)

		managerID := uuid.New()
		require.NoError(t, store.AssignManager(managerID))
		require.NotNil(t, store.ManagerID)
		assert.Equal(t, managerID, *store.ManagerID)
	})

	t.Run("deactivate and reactivate", func(t *testing.T) {
		store, err := NewStore("Galle Store", "Galle", decimal.NewFromInt(119))
		require.NoError(t, err)

		require.NoError(t, store.Deactivate())
		assert.False(t, store.IsActive())
		assert.Error(t, store.Deactivate())
		require.NoError(t, store.Activate())
		assert.True(t, store.IsActive())
	})
}
