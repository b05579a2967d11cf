package ordering

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CartRepository defines the interface for cart persistence
type CartRepository interface {
	// Create creates a new cart
	Create(ctx context.Context, cart *Cart) error

	// Update updates an existing cart and its lines
	Update(ctx context.Context, cart *Cart) error

	// Delete deletes a cart by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds a cart by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Cart, error)

	// FindActiveByCustomer finds the customer's active cart, if any
	FindActiveByCustomer(ctx context.Context, customerID uuid.UUID) (*Cart, error)
}

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// Create creates a new order with its lines and history
	Create(ctx context.Context, order *Order) error

	// Update updates an existing order
	Update(ctx context.Context, order *Order) error

	// FindByID finds an order by ID, including lines and history
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByOrderNumber finds an order by its number
	FindByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)

	// FindAll returns orders matching the filter with pagination
	FindAll(ctx context.Context, filter OrderFilter) ([]*Order, int64, error)

	// FindByStatus returns orders in the given status, oldest first
	FindByStatus(ctx context.Context, status OrderStatus, limit int) ([]*Order, error)

	// CountByStatus returns order counts grouped by status
	CountByStatus(ctx context.Context) (map[OrderStatus]int64, error)
}

// OrderNumberGenerator produces unique, human-readable order numbers
type OrderNumberGenerator interface {
	Next(ctx context.Context) (string, error)
}

// OrderFilter contains filter options for querying orders
type OrderFilter struct {
	CustomerID *uuid.UUID
	StoreID    *uuid.UUID
	Status     *OrderStatus
	City       string
	From       *time.Time
	To         *time.Time

	Page     int
	PageSize int

	SortBy    string
	SortOrder string
}

// NewOrderFilter creates a new OrderFilter with default values
func NewOrderFilter() OrderFilter {
	return OrderFilter{
		Page:      1,
		PageSize:  20,
		SortBy:    "created_at",
		SortOrder: "desc",
	}
}

// Offset returns the offset for pagination
func (f OrderFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}

// Limit returns the limit for pagination
func (f OrderFilter) Limit() int {
	if f.PageSize <= 0 {
		return 20
	}
	if f.PageSize > 100 {
		return 100
	}
	return f.PageSize
}
