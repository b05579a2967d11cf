package transport

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared/valueobject"
)

func newTestTrain(t *testing.T) *Train {
	t.Helper()
	train, err := NewTrain("Night Mail", decimal.NewFromInt(20000), decimal.NewFromInt(60))
	require.NoError(t, err)
	return train
}

func newTestTrainSchedule(t *testing.T) *TrainSchedule {
	t.Helper()
	schedule, err := NewTrainSchedule(newTestTrain(t), uuid.New(), time.Now().Add(48*time.Hour))
	require.NoError(t, err)
	return schedule
}

func mustTestLoad(t *testing.T, weight, volume float64, items int) valueobject.Load {
	t.Helper()
	load, err := valueobject.NewLoad(decimal.NewFromFloat(weight), decimal.NewFromFloat(volume), items)
	require.NoError(t, err)
	return load
}

func TestNewTrainSchedule(t *testing.T) {
	t.Run("snapshots train capacity", func(t *testing.T) {
		schedule := newTestTrainSchedule(t)

		assert.True(t, schedule.CapacityWeight.Equal(decimal.NewFromInt(20000)))
		assert.True(t, schedule.CapacityVolume.Equal(decimal.NewFromInt(60)))
		assert.Equal(t, TrainCapacityItems, schedule.CapacityItems)
		assert.Equal(t, ScheduleStatusScheduled, schedule.Status)
	})

	t.Run("rejects train in maintenance", func(t *testing.T) {
		train := newTestTrain(t)
		require.NoError(t, train.SendToMaintenance())

		_, err := NewTrainSchedule(train, uuid.New(), time.Now().Add(48*time.Hour))
		assert.Error(t, err)
	})

	t.Run("rejects past departure", func(t *testing.T) {
		_, err := NewTrainSchedule(newTestTrain(t), uuid.New(), time.Now().Add(-time.Hour))
		assert.Error(t, err)
	})
}

func TestTrainScheduleReservation(t *testing.T) {
	t.Run("reservations accumulate", func(t *testing.T) {
		schedule := newTestTrainSchedule(t)

		require.NoError(t, schedule.Reserve(mustTestLoad(t, 5000, 10, 100)))
		require.NoError(t, schedule.Reserve(mustTestLoad(t, 5000, 10, 100)))

		assert.True(t, schedule.ReservedWeight.Equal(decimal.NewFromInt(10000)))
		assert.Equal(t, 2, schedule.OrderCount)
		assert.True(t, schedule.UtilizationPercent().Equal(decimal.NewFromInt(50)))
	})

	t.Run("over-capacity reservation rejected", func(t *testing.T) {
		schedule := newTestTrainSchedule(t)
		require.NoError(t, schedule.Reserve(mustTestLoad(t, 19000, 50, 100)))

		err := schedule.Reserve(mustTestLoad(t, 2000, 5, 10))
		assert.ErrorIs(t, err, shared.ErrInsufficientCapacity)
	})

	t.Run("volume limits independently of weight", func(t *testing.T) {
		schedule := newTestTrainSchedule(t)

		err := schedule.Reserve(mustTestLoad(t, 100, 61, 10))
		assert.ErrorIs(t, err, shared.ErrInsufficientCapacity)
	})

	t.Run("release frees capacity", func(t *testing.T) {
		schedule := newTestTrainSchedule(t)
		load := mustTestLoad(t, 5000, 10, 100)

		require.NoError(t, schedule.Reserve(load))
		require.NoError(t, schedule.Release(load))

		assert.True(t, schedule.ReservedWeight.IsZero())
		assert.Equal(t, 0, schedule.OrderCount)
	})

	t.Run("item slots limit independently of weight and volume", func(t *testing.T) {
		schedule := newTestTrainSchedule(t)
		require.NoError(t, schedule.Reserve(mustTestLoad(t, 10, 0.1, 950)))

		err := schedule.Reserve(mustTestLoad(t, 10, 0.1, 60))
		assert.ErrorIs(t, err, shared.ErrInsufficientCapacity)
		assert.Equal(t, 950, schedule.ReservedItems)
	})

	t.Run("release frees item slots", func(t *testing.T) {
		schedule := newTestTrainSchedule(t)
		load := mustTestLoad(t, 100, 1, 400)

		require.NoError(t, schedule.Reserve(load))
		require.NoError(t, schedule.Release(load))

		assert.Equal(t, 0, schedule.ReservedItems)
		assert.Equal(t, TrainCapacityItems, schedule.RemainingCapacity().Items())
	})

	t.Run("departed schedule takes no reservations", func(t *testing.T) {
		schedule := newTestTrainSchedule(t)
		require.NoError(t, schedule.Depart())

		err := schedule.Reserve(mustTestLoad(t, 100, 1, 10))
		assert.Error(t, err)
	})
}

func TestTrainScheduleLifecycle(t *testing.T) {
	t.Run("scheduled to departed to completed", func(t *testing.T) {
		schedule := newTestTrainSchedule(t)

		require.NoError(t, schedule.Depart())
		assert.NotNil(t, schedule.DepartedAt)
		require.NoError(t, schedule.Complete())
		assert.NotNil(t, schedule.CompletedAt)
	})

	t.Run("cannot complete before departing", func(t *testing.T) {
		schedule := newTestTrainSchedule(t)
		assert.Error(t, schedule.Complete())
	})

	t.Run("cannot cancel after departure", func(t *testing.T) {
		schedule := newTestTrainSchedule(t)
		require.NoError(t, schedule.Depart())
		assert.Error(t, schedule.Cancel())
	})
}

func TestTrainLifecycle(t *testing.T) {
	t.Run("maintenance round trip", func(t *testing.T) {
		train := newTestTrain(t)

		require.NoError(t, train.SendToMaintenance())
		assert.False(t, train.IsAvailable())
		require.NoError(t, train.ReturnToService())
		assert.True(t, train.IsAvailable())
	})

	t.Run("retire is terminal", func(t *testing.T) {
		train := newTestTrain(t)

		require.NoError(t, train.Retire())
		assert.Error(t, train.Retire())
		assert.Error(t, train.SendToMaintenance())
	})
}
