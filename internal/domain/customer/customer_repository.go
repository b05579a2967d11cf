package customer

import (
	"context"

	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// Create creates a new customer
	Create(ctx context.Context, customer *Customer) error

	// Update updates an existing customer
	Update(ctx context.Context, customer *Customer) error

	// Delete deletes a customer by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds a customer by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindByEmail finds a customer by email
	FindByEmail(ctx context.Context, email string) (*Customer, error)

	// FindAll returns customers matching the filter with pagination
	FindAll(ctx context.Context, filter CustomerFilter) ([]*Customer, int64, error)

	// Count returns the total number of customers
	Count(ctx context.Context) (int64, error)
}

// CustomerFilter contains filter options for querying customers
type CustomerFilter struct {
	Keyword string
	Type    *CustomerType
	Status  *CustomerStatus
	City    string

	Page     int
	PageSize int

	SortBy    string
	SortOrder string
}

// NewCustomerFilter creates a new CustomerFilter with default values
func NewCustomerFilter() CustomerFilter {
	return CustomerFilter{
		Page:      1,
		PageSize:  20,
		SortBy:    "created_at",
		SortOrder: "desc",
	}
}

// Offset returns the offset for pagination
func (f CustomerFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}

// Limit returns the limit for pagination
func (f CustomerFilter) Limit() int {
	if f.PageSize <= 0 {
		return 20
	}
	if f.PageSize > 100 {
		return 100
	}
	return f.PageSize
}
