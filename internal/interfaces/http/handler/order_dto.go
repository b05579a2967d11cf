package handler

import (
	"time"

	"github.com/google/uuid"

	orderingapp "github.com/RaminduDJay/supply-chain-management/internal/application/ordering"
)

// CartLineResponse represents one cart line in API responses
type CartLineResponse struct {
	ItemID     uuid.UUID `json:"item_id"`
	ItemCode   string    `json:"item_code"`
	ItemName   string    `json:"item_name"`
	Quantity   int       `json:"quantity"`
	UnitPrice  string    `json:"unit_price"`
	LineAmount string    `json:"line_amount"`
}

// CartResponse represents the cart with its computed summary
type CartResponse struct {
	ID             uuid.UUID          `json:"id"`
	CustomerID     uuid.UUID          `json:"customer_id"`
	Status         string             `json:"status"`
	Lines          []CartLineResponse `json:"lines"`
	TotalItems     int                `json:"total_items"`
	TotalWeight    string             `json:"total_weight"`
	TotalVolume    string             `json:"total_volume"`
	Subtotal       string             `json:"subtotal"`
	DiscountRate   string             `json:"discount_rate"`
	DiscountAmount string             `json:"discount_amount"`
	EstimatedTotal string             `json:"estimated_total"`
}

func newCartResponse(info orderingapp.CartInfo) CartResponse {
	lines := make([]CartLineResponse, 0, len(info.Lines))
	for _, l := range info.Lines {
		lines = append(lines, CartLineResponse{
			ItemID:     l.ItemID,
			ItemCode:   l.ItemCode,
			ItemName:   l.ItemName,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice.StringFixed(2),
			LineAmount: l.LineAmount.StringFixed(2),
		})
	}
	return CartResponse{
		ID:             info.ID,
		CustomerID:     info.CustomerID,
		Status:         info.Status,
		Lines:          lines,
		TotalItems:     info.TotalItems,
		TotalWeight:    info.TotalWeight.String(),
		TotalVolume:    info.TotalVolume.String(),
		Subtotal:       info.Subtotal.StringFixed(2),
		DiscountRate:   info.DiscountRate.String(),
		DiscountAmount: info.DiscountAmount.StringFixed(2),
		EstimatedTotal: info.EstimatedTotal.StringFixed(2),
	}
}

// OrderLineResponse represents one order line in API responses
type OrderLineResponse struct {
	ItemID     uuid.UUID `json:"item_id"`
	ItemCode   string    `json:"item_code"`
	ItemName   string    `json:"item_name"`
	Quantity   int       `json:"quantity"`
	UnitPrice  string    `json:"unit_price"`
	LineAmount string    `json:"line_amount"`
}

// StatusChangeResponse represents one entry of an order's status history
type StatusChangeResponse struct {
	FromStatus string     `json:"from_status"`
	ToStatus   string     `json:"to_status"`
	Note       string     `json:"note,omitempty"`
	ChangedBy  *uuid.UUID `json:"changed_by,omitempty"`
	ChangedAt  time.Time  `json:"changed_at"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID              uuid.UUID              `json:"id"`
	OrderNumber     string                 `json:"order_number"`
	CustomerID      uuid.UUID              `json:"customer_id"`
	CustomerName    string                 `json:"customer_name"`
	StoreID         uuid.UUID              `json:"store_id"`
	RouteID         uuid.UUID              `json:"route_id"`
	TrainScheduleID *uuid.UUID             `json:"train_schedule_id,omitempty"`
	TruckScheduleID *uuid.UUID             `json:"truck_schedule_id,omitempty"`
	Lines           []OrderLineResponse    `json:"lines"`
	Subtotal        string                 `json:"subtotal"`
	DiscountRate    string                 `json:"discount_rate"`
	DiscountAmount  string                 `json:"discount_amount"`
	ShippingCost    string                 `json:"shipping_cost"`
	TotalAmount     string                 `json:"total_amount"`
	TotalWeight     string                 `json:"total_weight"`
	TotalVolume     string                 `json:"total_volume"`
	Status          string                 `json:"status"`
	DeliveryAddress string                 `json:"delivery_address"`
	DeliveryCity    string                 `json:"delivery_city"`
	RequiredDate    time.Time              `json:"required_date"`
	ConfirmedAt     *time.Time             `json:"confirmed_at,omitempty"`
	DeliveredAt     *time.Time             `json:"delivered_at,omitempty"`
	CancelledAt     *time.Time             `json:"cancelled_at,omitempty"`
	CancelReason    string                 `json:"cancel_reason,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	History         []StatusChangeResponse `json:"history,omitempty"`
}

func newOrderResponse(info orderingapp.OrderInfo) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(info.Lines))
	for _, l := range info.Lines {
		lines = append(lines, OrderLineResponse{
			ItemID:     l.ItemID,
			ItemCode:   l.ItemCode,
			ItemName:   l.ItemName,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice.StringFixed(2),
			LineAmount: l.LineAmount.StringFixed(2),
		})
	}

	history := make([]StatusChangeResponse, 0, len(info.History))
	for _, ch := range info.History {
		history = append(history, StatusChangeResponse{
			FromStatus: ch.FromStatus,
			ToStatus:   ch.ToStatus,
			Note:       ch.Note,
			ChangedBy:  ch.ChangedBy,
			ChangedAt:  ch.ChangedAt,
		})
	}

	return OrderResponse{
		ID:              info.ID,
		OrderNumber:     info.OrderNumber,
		CustomerID:      info.CustomerID,
		CustomerName:    info.CustomerName,
		StoreID:         info.StoreID,
		RouteID:         info.RouteID,
		TrainScheduleID: info.TrainScheduleID,
		TruckScheduleID: info.TruckScheduleID,
		Lines:           lines,
		Subtotal:        info.Subtotal.StringFixed(2),
		DiscountRate:    info.DiscountRate.String(),
		DiscountAmount:  info.DiscountAmount.StringFixed(2),
		ShippingCost:    info.ShippingCost.StringFixed(2),
		TotalAmount:     info.TotalAmount.StringFixed(2),
		TotalWeight:     info.TotalWeight.String(),
		TotalVolume:     info.TotalVolume.String(),
		Status:          info.Status,
		DeliveryAddress: info.DeliveryAddress,
		DeliveryCity:    info.DeliveryCity,
		RequiredDate:    info.RequiredDate,
		ConfirmedAt:     info.ConfirmedAt,
		DeliveredAt:     info.DeliveredAt,
		CancelledAt:     info.CancelledAt,
		CancelReason:    info.CancelReason,
		CreatedAt:       info.CreatedAt,
		History:         history,
	}
}
