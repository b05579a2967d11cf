package catalog

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared/valueobject"
)

// ItemStatus represents the status of a catalog item
type ItemStatus string

const (
	ItemStatusActive       ItemStatus = "active"
	ItemStatusInactive     ItemStatus = "inactive"
	ItemStatusDiscontinued ItemStatus = "discontinued"
)

// Item represents a sellable product in the catalog.
// It is the aggregate root for catalog operations.
// Unit weight and volume feed shipping cost and transport
// capacity calculations.
type Item struct {
	shared.BaseAggregateRoot
	Code           string
	Name           string
	Description    string
	Category       string
	Subcategory    string
	UnitPrice      decimal.Decimal // Selling price per unit, LKR
	UnitWeight     decimal.Decimal // kg per unit
	UnitVolume     decimal.Decimal // cubic meters per unit
	Fragile        bool
	Hazardous      bool
	StockThreshold int // Suggested reorder level for store stock records
	Status         ItemStatus
	ImageURL       string
}

// DefaultStockThreshold is the reorder suggestion for new items.
const DefaultStockThreshold = 10

// NewItem creates a new catalog item
func NewItem(code, name string, unitPrice, unitWeight, unitVolume decimal.Decimal) (*Item, error) {
	if err := validateItemCode(code); err != nil {
		return nil, err
	}
	if err := validateItemName(name); err != nil {
		return nil, err
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	if !unitWeight.IsPositive() {
		return nil, shared.NewDomainError("INVALID_WEIGHT", "Unit weight must be positive")
	}
	if !unitVolume.IsPositive() {
		return nil, shared.NewDomainError("INVALID_VOLUME", "Unit volume must be positive")
	}

	item := &Item{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(strings.TrimSpace(code)),
		Name:              name,
		UnitPrice:         unitPrice,
		UnitWeight:        unitWeight,
		UnitVolume:        unitVolume,
		StockThreshold:    DefaultStockThreshold,
		Status:            ItemStatusActive,
	}

	item.AddDomainEvent(NewItemCreatedEvent(item))

	return item, nil
}

// Update updates the item's basic information
func (i *Item) Update(name, description, category, subcategory string) error {
	if err := validateItemName(name); err != nil {
		return err
	}
	if category != "" && len(category) > 100 {
		return shared.NewDomainError("INVALID_CATEGORY", "Category cannot exceed 100 characters")
	}
	if subcategory != "" && len(subcategory) > 100 {
		return shared.NewDomainError("INVALID_SUBCATEGORY", "Subcategory cannot exceed 100 characters")
	}

	i.Name = name
	i.Description = description
	i.Category = category
	i.Subcategory = subcategory
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	i.AddDomainEvent(NewItemUpdatedEvent(i))

	return nil
}

// SetHandling updates the shipping handling flags and the suggested
// reorder threshold for store stock records.
func (i *Item) SetHandling(fragile, hazardous bool, stockThreshold int) error {
	if stockThreshold < 0 {
		return shared.NewDomainError("INVALID_THRESHOLD", "Stock threshold cannot be negative")
	}

	i.Fragile = fragile
	i.Hazardous = hazardous
	i.StockThreshold = stockThreshold
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// SetPrice updates the selling price
func (i *Item) SetPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	oldPrice := i.UnitPrice
	i.UnitPrice = unitPrice
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	i.AddDomainEvent(NewItemPriceChangedEvent(i, oldPrice, unitPrice))

	return nil
}

// SetDimensions updates the per-unit weight and volume
func (i *Item) SetDimensions(unitWeight, unitVolume decimal.Decimal) error {
	if !unitWeight.IsPositive() {
		return shared.NewDomainError("INVALID_WEIGHT", "Unit weight must be positive")
	}
	if !unitVolume.IsPositive() {
		return shared.NewDomainError("INVALID_VOLUME", "Unit volume must be positive")
	}

	i.UnitWeight = unitWeight
	i.UnitVolume = unitVolume
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// SetImageURL sets the item's image URL
func (i *Item) SetImageURL(url string) error {
	if url != "" && len(url) > 500 {
		return shared.NewDomainError("INVALID_IMAGE_URL", "Image URL cannot exceed 500 characters")
	}

	i.ImageURL = url
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// Activate activates the item
func (i *Item) Activate() error {
	if i.Status == ItemStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Item is already active")
	}
	if i.Status == ItemStatusDiscontinued {
		return shared.NewDomainError("ITEM_DISCONTINUED", "Discontinued items cannot be reactivated")
	}

	i.Status = ItemStatusActive
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// Deactivate hides the item from the catalog without discontinuing it
func (i *Item) Deactivate() error {
	if i.Status != ItemStatusActive {
		return shared.NewDomainError("NOT_ACTIVE", "Only active items can be deactivated")
	}

	i.Status = ItemStatusInactive
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// Discontinue permanently removes the item from sale
func (i *Item) Discontinue() error {
	if i.Status == ItemStatusDiscontinued {
		return shared.NewDomainError("ALREADY_DISCONTINUED", "Item is already discontinued")
	}

	i.Status = ItemStatusDiscontinued
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	i.AddDomainEvent(NewItemDiscontinuedEvent(i))

	return nil
}

// IsActive returns true if the item can be ordered
func (i *Item) IsActive() bool {
	return i.Status == ItemStatusActive
}

// PriceMoney returns the unit price as LKR money
func (i *Item) PriceMoney() valueobject.Money {
	return valueobject.NewMoneyLKR(i.UnitPrice)
}

// LoadFor returns the transport load contributed by the given quantity
// of this item.
func (i *Item) LoadFor(quantity int) valueobject.Load {
	qty := decimal.NewFromInt(int64(quantity))
	load, _ := valueobject.NewLoad(i.UnitWeight.Mul(qty), i.UnitVolume.Mul(qty), quantity)
	return load
}

// Validation functions

func validateItemCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Item code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Item code cannot exceed 50 characters")
	}
	return nil
}

func validateItemName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Item name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Item name cannot exceed 200 characters")
	}
	return nil
}
