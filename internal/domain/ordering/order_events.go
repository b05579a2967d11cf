package ordering

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
)

// Aggregate type constant for Order
const AggregateTypeOrder = "Order"

// Order domain event types
const (
	EventTypeOrderCreated   = "OrderCreated"
	EventTypeOrderConfirmed = "OrderConfirmed"
	EventTypeOrderCancelled = "OrderCancelled"
	EventTypeOrderDelivered = "OrderDelivered"
	EventTypeOrderReturned  = "OrderReturned"
)

// OrderCreatedEvent is published when an order is created from a cart
type OrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderNumber string    `json:"order_number"`
	CustomerID  uuid.UUID `json:"customer_id"`
	StoreID     uuid.UUID `json:"store_id"`
}

// NewOrderCreatedEvent creates a new OrderCreatedEvent
func NewOrderCreatedEvent(order *Order) *OrderCreatedEvent {
	return &OrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderCreated, AggregateTypeOrder, order.ID),
		OrderNumber:     order.OrderNumber,
		CustomerID:      order.CustomerID,
		StoreID:         order.StoreID,
	}
}

// OrderLine is the per-item payload carried on order lifecycle events
// so inventory handlers can act without reloading the order.
type OrderLine struct {
	ItemID   uuid.UUID `json:"item_id"`
	Quantity int       `json:"quantity"`
}

// Lines returns the order's items as stock lines
func (o *Order) Lines() []OrderLine {
	lines := make([]OrderLine, 0, len(o.Items))
	for idx := range o.Items {
		lines = append(lines, OrderLine{ItemID: o.Items[idx].ItemID, Quantity: o.Items[idx].Quantity})
	}
	return lines
}

// OrderConfirmedEvent is published when an order is confirmed.
// The inventory context deducts store stock in response.
type OrderConfirmedEvent struct {
	shared.BaseDomainEvent
	OrderNumber string          `json:"order_number"`
	CustomerID  uuid.UUID       `json:"customer_id"`
	StoreID     uuid.UUID       `json:"store_id"`
	Lines       []OrderLine     `json:"lines"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// NewOrderConfirmedEvent creates a new OrderConfirmedEvent
func NewOrderConfirmedEvent(order *Order) *OrderConfirmedEvent {
	lines := make([]OrderLine, 0, len(order.Items))
	for idx := range order.Items {
		lines = append(lines, OrderLine{ItemID: order.Items[idx].ItemID, Quantity: order.Items[idx].Quantity})
	}
	return &OrderConfirmedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderConfirmed, AggregateTypeOrder, order.ID),
		OrderNumber:     order.OrderNumber,
		CustomerID:      order.CustomerID,
		StoreID:         order.StoreID,
		Lines:           lines,
		TotalAmount:     order.TotalAmount,
	}
}

// OrderCancelledEvent is published when an order is cancelled.
// WasConfirmed tells the inventory context whether stock had already
// been deducted and must be restored.
type OrderCancelledEvent struct {
	shared.BaseDomainEvent
	OrderNumber  string      `json:"order_number"`
	StoreID      uuid.UUID   `json:"store_id"`
	Lines        []OrderLine `json:"lines"`
	Reason       string      `json:"reason"`
	WasConfirmed bool        `json:"was_confirmed"`
}

// NewOrderCancelledEvent creates a new OrderCancelledEvent
func NewOrderCancelledEvent(order *Order, wasConfirmed bool) *OrderCancelledEvent {
	lines := make([]OrderLine, 0, len(order.Items))
	for idx := range order.Items {
		lines = append(lines, OrderLine{ItemID: order.Items[idx].ItemID, Quantity: order.Items[idx].Quantity})
	}
	return &OrderCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderCancelled, AggregateTypeOrder, order.ID),
		OrderNumber:     order.OrderNumber,
		StoreID:         order.StoreID,
		Lines:           lines,
		Reason:          order.CancelReason,
		WasConfirmed:    wasConfirmed,
	}
}

// OrderDeliveredEvent is published when an order reaches the customer
type OrderDeliveredEvent struct {
	shared.BaseDomainEvent
	OrderNumber string          `json:"order_number"`
	CustomerID  uuid.UUID       `json:"customer_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// NewOrderDeliveredEvent creates a new OrderDeliveredEvent
func NewOrderDeliveredEvent(order *Order) *OrderDeliveredEvent {
	return &OrderDeliveredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderDelivered, AggregateTypeOrder, order.ID),
		OrderNumber:     order.OrderNumber,
		CustomerID:      order.CustomerID,
		TotalAmount:     order.TotalAmount,
	}
}

// OrderReturnedEvent is published when a delivery attempt fails.
// The stock returns to the store warehouse.
type OrderReturnedEvent struct {
	shared.BaseDomainEvent
	OrderNumber string      `json:"order_number"`
	StoreID     uuid.UUID   `json:"store_id"`
	Lines       []OrderLine `json:"lines"`
	Reason      string      `json:"reason"`
}

// NewOrderReturnedEvent creates a new OrderReturnedEvent
func NewOrderReturnedEvent(order *Order, reason string) *OrderReturnedEvent {
	lines := make([]OrderLine, 0, len(order.Items))
	for idx := range order.Items {
		lines = append(lines, OrderLine{ItemID: order.Items[idx].ItemID, Quantity: order.Items[idx].Quantity})
	}
	return &OrderReturnedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderReturned, AggregateTypeOrder, order.ID),
		OrderNumber:     order.OrderNumber,
		StoreID:         order.StoreID,
		Lines:           lines,
		Reason:          reason,
	}
}
