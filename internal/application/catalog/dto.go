package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/catalog"
)

// CreateItemInput contains data for creating a catalog item
type CreateItemInput struct {
	Code           string
	Name           string
	Description    string
	Category       string
	Subcategory    string
	UnitPrice      decimal.Decimal
	UnitWeight     decimal.Decimal
	UnitVolume     decimal.Decimal
	Fragile        bool
	Hazardous      bool
	StockThreshold int
	ImageURL       string
}

// UpdateItemInput contains data for updating a catalog item
type UpdateItemInput struct {
	ItemID      uuid.UUID
	Name        string
	Description string
	Category    string
	Subcategory string
}

// SetItemHandlingInput contains a handling profile change
type SetItemHandlingInput struct {
	ItemID         uuid.UUID
	Fragile        bool
	Hazardous      bool
	StockThreshold int
}

// SetItemPriceInput contains a price change
type SetItemPriceInput struct {
	ItemID    uuid.UUID
	UnitPrice decimal.Decimal
}

// SetItemDimensionsInput contains a weight and volume change
type SetItemDimensionsInput struct {
	ItemID     uuid.UUID
	UnitWeight decimal.Decimal
	UnitVolume decimal.Decimal
}

// ListItemsInput contains filter and pagination options for the catalog
type ListItemsInput struct {
	Keyword  string
	Category string
	Status   string
	Page     int
	PageSize int
}

// ItemInfo contains catalog item data exposed to API clients
type ItemInfo struct {
	ID             uuid.UUID
	Code           string
	Name           string
	Description    string
	Category       string
	Subcategory    string
	UnitPrice      decimal.Decimal
	UnitWeight     decimal.Decimal
	UnitVolume     decimal.Decimal
	Fragile        bool
	Hazardous      bool
	StockThreshold int
	Status         string
	ImageURL       string
}

// NewItemInfo maps an item aggregate to its API representation
func NewItemInfo(item *catalog.Item) ItemInfo {
	return ItemInfo{
		ID:             item.ID,
		Code:           item.Code,
		Name:           item.Name,
		Description:    item.Description,
		Category:       item.Category,
		Subcategory:    item.Subcategory,
		UnitPrice:      item.UnitPrice,
		UnitWeight:     item.UnitWeight,
		UnitVolume:     item.UnitVolume,
		Fragile:        item.Fragile,
		Hazardous:      item.Hazardous,
		StockThreshold: item.StockThreshold,
		Status:         string(item.Status),
		ImageURL:       item.ImageURL,
	}
}

// ListItemsResult contains a page of catalog items
type ListItemsResult struct {
	Items    []ItemInfo
	Total    int64
	Page     int
	PageSize int
}
