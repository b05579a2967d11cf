package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
)

// Aggregate type constant for Item
const AggregateTypeItem = "Item"

// Item domain event types
const (
	EventTypeItemCreated      = "ItemCreated"
	EventTypeItemUpdated      = "ItemUpdated"
	EventTypeItemPriceChanged = "ItemPriceChanged"
	EventTypeItemDiscontinued = "ItemDiscontinued"
)

// ItemCreatedEvent is published when a catalog item is created
type ItemCreatedEvent struct {
	shared.BaseDomainEvent
	Code string `json:"code"`
	Name string `json:"name"`
}

// NewItemCreatedEvent creates a new ItemCreatedEvent
func NewItemCreatedEvent(item *Item) *ItemCreatedEvent {
	return &ItemCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeItemCreated, AggregateTypeItem, item.ID),
		Code:            item.Code,
		Name:            item.Name,
	}
}

// ItemUpdatedEvent is published when a catalog item's details change
type ItemUpdatedEvent struct {
	shared.BaseDomainEvent
	Code string `json:"code"`
	Name string `json:"name"`
}

// NewItemUpdatedEvent creates a new ItemUpdatedEvent
func NewItemUpdatedEvent(item *Item) *ItemUpdatedEvent {
	return &ItemUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeItemUpdated, AggregateTypeItem, item.ID),
		Code:            item.Code,
		Name:            item.Name,
	}
}

// ItemPriceChangedEvent is published when the selling price changes
type ItemPriceChangedEvent struct {
	shared.BaseDomainEvent
	Code     string          `json:"code"`
	OldPrice decimal.Decimal `json:"old_price"`
	NewPrice decimal.Decimal `json:"new_price"`
}

// NewItemPriceChangedEvent creates a new ItemPriceChangedEvent
func NewItemPriceChangedEvent(item *Item, oldPrice, newPrice decimal.Decimal) *ItemPriceChangedEvent {
	return &ItemPriceChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeItemPriceChanged, AggregateTypeItem, item.ID),
		Code:            item.Code,
		OldPrice:        oldPrice,
		NewPrice:        newPrice,
	}
}

// ItemDiscontinuedEvent is published when an item is permanently removed from sale
type ItemDiscontinuedEvent struct {
	shared.BaseDomainEvent
	Code string `json:"code"`
}

// NewItemDiscontinuedEvent creates a new ItemDiscontinuedEvent
func NewItemDiscontinuedEvent(item *Item) *ItemDiscontinuedEvent {
	return &ItemDiscontinuedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeItemDiscontinued, AggregateTypeItem, item.ID),
		Code:            item.Code,
	}
}
