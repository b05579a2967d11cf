package ordering

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/ordering"
)

// AddCartItemInput adds an item to the customer's cart
type AddCartItemInput struct {
	CustomerID uuid.UUID
	ItemID     uuid.UUID
	Quantity   int
}

// UpdateCartItemInput changes the quantity of a cart line
type UpdateCartItemInput struct {
	CustomerID uuid.UUID
	ItemID     uuid.UUID
	Quantity   int
}

// CartLineInfo contains one cart line
type CartLineInfo struct {
	ItemID     uuid.UUID
	ItemCode   string
	ItemName   string
	Quantity   int
	UnitPrice  decimal.Decimal
	LineAmount decimal.Decimal
}

// CartInfo contains the cart with its computed summary. Discount and
// shipping are estimates, checkout computes the binding figures.
type CartInfo struct {
	ID             uuid.UUID
	CustomerID     uuid.UUID
	Status         string
	Lines          []CartLineInfo
	TotalItems     int
	TotalWeight    decimal.Decimal
	TotalVolume    decimal.Decimal
	Subtotal       decimal.Decimal
	DiscountRate   decimal.Decimal
	DiscountAmount decimal.Decimal
	EstimatedTotal decimal.Decimal
}

// NewCartInfo maps a cart aggregate and the customer's discount rate
// to its API representation.
func NewCartInfo(cart *ordering.Cart, discountRate decimal.Decimal) CartInfo {
	lines := make([]CartLineInfo, 0, len(cart.Items))
	for i := range cart.Items {
		item := &cart.Items[i]
		lines = append(lines, CartLineInfo{
			ItemID:     item.ItemID,
			ItemCode:   item.ItemCode,
			ItemName:   item.ItemName,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			LineAmount: item.Amount(),
		})
	}

	subtotal := cart.Subtotal()
	discount := subtotal.Mul(discountRate).Round(2)
	load := cart.TotalLoad()

	return CartInfo{
		ID:             cart.ID,
		CustomerID:     cart.CustomerID,
		Status:         string(cart.Status),
		Lines:          lines,
		TotalItems:     load.Items(),
		TotalWeight:    load.Weight(),
		TotalVolume:    load.Volume(),
		Subtotal:       subtotal,
		DiscountRate:   discountRate,
		DiscountAmount: discount,
		EstimatedTotal: subtotal.Sub(discount),
	}
}

// CheckoutInput contains the data needed to turn a cart into an order
type CheckoutInput struct {
	CustomerID      uuid.UUID
	RouteID         uuid.UUID
	DeliveryAddress string
	DeliveryCity    string
	RequiredDate    time.Time
	Remark          string
}

// OrderLineInfo contains one order line
type OrderLineInfo struct {
	ItemID     uuid.UUID
	ItemCode   string
	ItemName   string
	Quantity   int
	UnitPrice  decimal.Decimal
	LineAmount decimal.Decimal
}

// StatusChangeInfo contains one entry of the order's status history
type StatusChangeInfo struct {
	FromStatus string
	ToStatus   string
	Note       string
	ChangedBy  *uuid.UUID
	ChangedAt  time.Time
}

// OrderInfo contains order data exposed to API clients
type OrderInfo struct {
	ID              uuid.UUID
	OrderNumber     string
	CustomerID      uuid.UUID
	CustomerName    string
	StoreID         uuid.UUID
	RouteID         uuid.UUID
	TrainScheduleID *uuid.UUID
	TruckScheduleID *uuid.UUID
	Lines           []OrderLineInfo
	Subtotal        decimal.Decimal
	DiscountRate    decimal.Decimal
	DiscountAmount  decimal.Decimal
	ShippingCost    decimal.Decimal
	TotalAmount     decimal.Decimal
	TotalWeight     decimal.Decimal
	TotalVolume     decimal.Decimal
	Status          string
	DeliveryAddress string
	DeliveryCity    string
	RequiredDate    time.Time
	ConfirmedAt     *time.Time
	DeliveredAt     *time.Time
	CancelledAt     *time.Time
	CancelReason    string
	CreatedAt       time.Time
	History         []StatusChangeInfo
}

// NewOrderInfo maps an order aggregate to its API representation
func NewOrderInfo(order *ordering.Order) OrderInfo {
	lines := make([]OrderLineInfo, 0, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		lines = append(lines, OrderLineInfo{
			ItemID:     item.ItemID,
			ItemCode:   item.ItemCode,
			ItemName:   item.ItemName,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			LineAmount: item.Amount,
		})
	}

	history := make([]StatusChangeInfo, 0, len(order.StatusHistory))
	for i := range order.StatusHistory {
		ch := &order.StatusHistory[i]
		history = append(history, StatusChangeInfo{
			FromStatus: string(ch.FromStatus),
			ToStatus:   string(ch.ToStatus),
			Note:       ch.Note,
			ChangedBy:  ch.ChangedBy,
			ChangedAt:  ch.ChangedAt,
		})
	}

	return OrderInfo{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		CustomerID:      order.CustomerID,
		CustomerName:    order.CustomerName,
		StoreID:         order.StoreID,
		RouteID:         order.RouteID,
		TrainScheduleID: order.TrainScheduleID,
		TruckScheduleID: order.TruckScheduleID,
		Lines:           lines,
		Subtotal:        order.Subtotal,
		DiscountRate:    order.DiscountRate,
		DiscountAmount:  order.DiscountAmount,
		ShippingCost:    order.ShippingCost,
		TotalAmount:     order.TotalAmount,
		TotalWeight:     order.TotalWeight,
		TotalVolume:     order.TotalVolume,
		Status:          string(order.Status),
		DeliveryAddress: order.DeliveryAddress,
		DeliveryCity:    order.DeliveryCity,
		RequiredDate:    order.RequiredDate,
		ConfirmedAt:     order.ConfirmedAt,
		DeliveredAt:     order.DeliveredAt,
		CancelledAt:     order.CancelledAt,
		CancelReason:    order.CancelReason,
		CreatedAt:       order.CreatedAt,
		History:         history,
	}
}

// ListOrdersInput contains filter and pagination options for orders
type ListOrdersInput struct {
	CustomerID *uuid.UUID
	StoreID    *uuid.UUID
	Status     string
	City       string
	From       *time.Time
	To         *time.Time
	Page       int
	PageSize   int
}

// ListOrdersResult contains a page of orders
type ListOrdersResult struct {
	Orders   []OrderInfo
	Total    int64
	Page     int
	PageSize int
}

// CancelOrderInput cancels an order with a reason
type CancelOrderInput struct {
	OrderID uuid.UUID
	Reason  string
	ActorID *uuid.UUID
}

// ReturnOrderInput records a failed delivery
type ReturnOrderInput struct {
	OrderID uuid.UUID
	Reason  string
	ActorID *uuid.UUID
}

// AssignTrainInput books an order onto a train schedule
type AssignTrainInput struct {
	OrderID    uuid.UUID
	ScheduleID uuid.UUID
	ActorID    *uuid.UUID
}

// AssignTruckInput books an order onto a truck schedule
type AssignTruckInput struct {
	OrderID    uuid.UUID
	ScheduleID uuid.UUID
	ActorID    *uuid.UUID
}

// UpdateStatusInput moves an order along its pipeline
type UpdateStatusInput struct {
	OrderID uuid.UUID
	Status  ordering.OrderStatus
	ActorID *uuid.UUID
}

// BulkUpdateStatusInput moves several orders to the same status
type BulkUpdateStatusInput struct {
	OrderIDs []uuid.UUID
	Status   ordering.OrderStatus
	ActorID  *uuid.UUID
}

// BulkUpdateStatusResult reports per-order outcomes of a bulk update
type BulkUpdateStatusResult struct {
	Updated []uuid.UUID
	Failed  map[uuid.UUID]string
}
