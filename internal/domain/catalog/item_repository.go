package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ItemRepository defines the interface for catalog item persistence
type ItemRepository interface {
	// Create creates a new item
	Create(ctx context.Context, item *Item) error

	// Update updates an existing item
	Update(ctx context.Context, item *Item) error

	// Delete deletes an item by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds an item by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)

	// FindByIDs finds items by a set of IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*Item, error)

	// FindByCode finds an item by its code
	FindByCode(ctx context.Context, code string) (*Item, error)

	// FindAll returns items matching the filter with pagination
	FindAll(ctx context.Context, filter ItemFilter) ([]*Item, int64, error)

	// ExistsByCode checks if an item code already exists
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// Count returns the total number of items
	Count(ctx context.Context) (int64, error)
}

// ItemFilter contains filter options for querying catalog items
type ItemFilter struct {
	Keyword  string
	Category string
	Status   *ItemStatus

	Page     int
	PageSize int

	SortBy    string
	SortOrder string
}

// NewItemFilter creates a new ItemFilter with default values
func NewItemFilter() ItemFilter {
	return ItemFilter{
		Page:      1,
		PageSize:  20,
		SortBy:    "name",
		SortOrder: "asc",
	}
}

// Offset returns the offset for pagination
func (f ItemFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}

// Limit returns the limit for pagination
func (f ItemFilter) Limit() int {
	if f.PageSize <= 0 {
		return 20
	}
	if f.PageSize > 100 {
		return 100
	}
	return f.PageSize
}
