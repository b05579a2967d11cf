package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/ordering"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
)

func TestGormOrderRepository_FindByID(t *testing.T) {
	t.Run("returns ErrNotFound for missing order", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(gormDB)

		orderID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(orderID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		order, err := repo.FindByID(context.Background(), orderID)

		assert.Nil(t, order)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOrderRepository_CountByStatus(t *testing.T) {
	t.Run("maps grouped counts per status", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(gormDB)

		rows := sqlmock.NewRows([]string{"status", "count"}).
			AddRow("pending", 4).
			AddRow("confirmed", 9).
			AddRow("delivered", 120)

		mock.ExpectQuery(`SELECT status, COUNT\(\*\) as count FROM "orders" GROUP BY .*status.*`).
			WillReturnRows(rows)

		counts, err := repo.CountByStatus(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(4), counts[ordering.OrderStatusPending])
		assert.Equal(t, int64(9), counts[ordering.OrderStatusConfirmed])
		assert.Equal(t, int64(120), counts[ordering.OrderStatusDelivered])
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSequenceOrderNumberGenerator_Next(t *testing.T) {
	t.Run("formats number from sequence and date", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()

		gen := NewSequenceOrderNumberGenerator(gormDB)
		gen.now = func() time.Time {
			return time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
		}

		rows := sqlmock.NewRows([]string{"nextval"}).AddRow(42)

		mock.ExpectQuery(`SELECT nextval\('order_number_seq'\)`).
			WillReturnRows(rows)

		number, err := gen.Next(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, "SCM-20260115-000042", number)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates sequence errors", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()

		gen := NewSequenceOrderNumberGenerator(gormDB)

		mock.ExpectQuery(`SELECT nextval\('order_number_seq'\)`).
			WillReturnError(gorm.ErrInvalidDB)

		number, err := gen.Next(context.Background())

		assert.Error(t, err)
		assert.Empty(t, number)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
