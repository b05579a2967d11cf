package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/ordering"
)

// CartModel is the persistence model for the Cart aggregate.
type CartModel struct {
	AggregateModel
	CustomerID uuid.UUID           `gorm:"type:uuid;not null;index"`
	Status     ordering.CartStatus `gorm:"type:varchar(20);not null;default:'active'"`
	Items      []CartItemModel     `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel is the persistence model for a cart line.
type CartItemModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key"`
	CartID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemID     uuid.UUID       `gorm:"type:uuid;not null"`
	ItemCode   string          `gorm:"type:varchar(50);not null"`
	ItemName   string          `gorm:"type:varchar(200);not null"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	UnitWeight decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	UnitVolume decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	CreatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CartItemModel) TableName() string {
	return "cart_items"
}

// ToDomain converts the persistence model to a domain Cart aggregate.
func (m *CartModel) ToDomain() *ordering.Cart {
	items := make([]ordering.CartItem, len(m.Items))
	for i, im := range m.Items {
		items[i] = ordering.CartItem{
			ID:         im.ID,
			CartID:     im.CartID,
			ItemID:     im.ItemID,
			ItemCode:   im.ItemCode,
			ItemName:   im.ItemName,
			Quantity:   im.Quantity,
			UnitPrice:  im.UnitPrice,
			UnitWeight: im.UnitWeight,
			UnitVolume: im.UnitVolume,
			CreatedAt:  im.CreatedAt,
		}
	}
	return &ordering.Cart{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		CustomerID:        m.CustomerID,
		Status:            m.Status,
		Items:             items,
	}
}

// FromDomain populates the persistence model from a domain Cart aggregate.
func (m *CartModel) FromDomain(c *ordering.Cart) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.CustomerID = c.CustomerID
	m.Status = c.Status
	m.Items = make([]CartItemModel, len(c.Items))
	for i, item := range c.Items {
		m.Items[i] = CartItemModel{
			ID:         item.ID,
			CartID:     item.CartID,
			ItemID:     item.ItemID,
			ItemCode:   item.ItemCode,
			ItemName:   item.ItemName,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			UnitWeight: item.UnitWeight,
			UnitVolume: item.UnitVolume,
			CreatedAt:  item.CreatedAt,
		}
	}
}

// CartModelFromDomain creates a new persistence model from a domain Cart aggregate.
func CartModelFromDomain(c *ordering.Cart) *CartModel {
	m := &CartModel{}
	m.FromDomain(c)
	return m
}

// OrderModel is the persistence model for the Order aggregate.
type OrderModel struct {
	AggregateModel
	OrderNumber     string                   `gorm:"type:varchar(30);not null;uniqueIndex"`
	CustomerID      uuid.UUID                `gorm:"type:uuid;not null;index"`
	CustomerName    string                   `gorm:"type:varchar(200);not null"`
	StoreID         uuid.UUID                `gorm:"type:uuid;not null;index"`
	RouteID         uuid.UUID                `gorm:"type:uuid;not null;index"`
	TrainScheduleID *uuid.UUID               `gorm:"type:uuid;index"`
	TruckScheduleID *uuid.UUID               `gorm:"type:uuid;index"`
	Items           []OrderItemModel         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	StatusHistory   []OrderStatusChangeModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Subtotal        decimal.Decimal          `gorm:"type:decimal(18,2);not null"`
	DiscountRate    decimal.Decimal          `gorm:"type:decimal(6,4);not null;default:0"`
	DiscountAmount  decimal.Decimal          `gorm:"type:decimal(18,2);not null;default:0"`
	ShippingCost    decimal.Decimal          `gorm:"type:decimal(18,2);not null;default:0"`
	TotalAmount     decimal.Decimal          `gorm:"type:decimal(18,2);not null"`
	TotalWeight     decimal.Decimal          `gorm:"type:decimal(12,3);not null;default:0"`
	TotalVolume     decimal.Decimal          `gorm:"type:decimal(12,4);not null;default:0"`
	Status          ordering.OrderStatus     `gorm:"type:varchar(30);not null;index"`
	DeliveryAddress string                   `gorm:"type:text;not null"`
	DeliveryCity    string                   `gorm:"type:varchar(100);not null;index"`
	RequiredDate    time.Time                `gorm:"not null"`
	ConfirmedAt     *time.Time
	DeliveredAt     *time.Time
	CancelledAt     *time.Time
	CancelReason    string `gorm:"type:text"`
	Remark          string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the persistence model for an order line.
type OrderItemModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemCode   string          `gorm:"type:varchar(50);not null"`
	ItemName   string          `gorm:"type:varchar(200);not null"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	UnitWeight decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	UnitVolume decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	CreatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// OrderStatusChangeModel is the persistence model for an order status transition.
type OrderStatusChangeModel struct {
	ID         uuid.UUID            `gorm:"type:uuid;primary_key"`
	OrderID    uuid.UUID            `gorm:"type:uuid;not null;index"`
	FromStatus ordering.OrderStatus `gorm:"type:varchar(30);not null"`
	ToStatus   ordering.OrderStatus `gorm:"type:varchar(30);not null"`
	Note       string               `gorm:"type:text"`
	ChangedBy  *uuid.UUID           `gorm:"type:uuid"`
	ChangedAt  time.Time            `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderStatusChangeModel) TableName() string {
	return "order_status_changes"
}

// ToDomain converts the persistence model to a domain Order aggregate.
func (m *OrderModel) ToDomain() *ordering.Order {
	items := make([]ordering.OrderItem, len(m.Items))
	for i, im := range m.Items {
		items[i] = ordering.OrderItem{
			ID:         im.ID,
			OrderID:    im.OrderID,
			ItemID:     im.ItemID,
			ItemCode:   im.ItemCode,
			ItemName:   im.ItemName,
			Quantity:   im.Quantity,
			UnitPrice:  im.UnitPrice,
			Amount:     im.Amount,
			UnitWeight: im.UnitWeight,
			UnitVolume: im.UnitVolume,
			CreatedAt:  im.CreatedAt,
		}
	}
	history := make([]ordering.StatusChange, len(m.StatusHistory))
	for i, hm := range m.StatusHistory {
		history[i] = ordering.StatusChange{
			ID:         hm.ID,
			OrderID:    hm.OrderID,
			FromStatus: hm.FromStatus,
			ToStatus:   hm.ToStatus,
			Note:       hm.Note,
			ChangedBy:  hm.ChangedBy,
			ChangedAt:  hm.ChangedAt,
		}
	}
	return &ordering.Order{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		OrderNumber:       m.OrderNumber,
		CustomerID:        m.CustomerID,
		CustomerName:      m.CustomerName,
		StoreID:           m.StoreID,
		RouteID:           m.RouteID,
		TrainScheduleID:   m.TrainScheduleID,
		TruckScheduleID:   m.TruckScheduleID,
		Items:             items,
		Subtotal:          m.Subtotal,
		DiscountRate:      m.DiscountRate,
		DiscountAmount:    m.DiscountAmount,
		ShippingCost:      m.ShippingCost,
		TotalAmount:       m.TotalAmount,
		TotalWeight:       m.TotalWeight,
		TotalVolume:       m.TotalVolume,
		Status:            m.Status,
		StatusHistory:     history,
		DeliveryAddress:   m.DeliveryAddress,
		DeliveryCity:      m.DeliveryCity,
		RequiredDate:      m.RequiredDate,
		ConfirmedAt:       m.ConfirmedAt,
		DeliveredAt:       m.DeliveredAt,
		CancelledAt:       m.CancelledAt,
		CancelReason:      m.CancelReason,
		Remark:            m.Remark,
	}
}

// FromDomain populates the persistence model from a domain Order aggregate.
func (m *OrderModel) FromDomain(o *ordering.Order) {
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.OrderNumber = o.OrderNumber
	m.CustomerID = o.CustomerID
	m.CustomerName = o.CustomerName
	m.StoreID = o.StoreID
	m.RouteID = o.RouteID
	m.TrainScheduleID = o.TrainScheduleID
	m.TruckScheduleID = o.TruckScheduleID
	m.Subtotal = o.Subtotal
	m.DiscountRate = o.DiscountRate
	m.DiscountAmount = o.DiscountAmount
	m.ShippingCost = o.ShippingCost
	m.TotalAmount = o.TotalAmount
	m.TotalWeight = o.TotalWeight
	m.TotalVolume = o.TotalVolume
	m.Status = o.Status
	m.DeliveryAddress = o.DeliveryAddress
	m.DeliveryCity = o.DeliveryCity
	m.RequiredDate = o.RequiredDate
	m.ConfirmedAt = o.ConfirmedAt
	m.DeliveredAt = o.DeliveredAt
	m.CancelledAt = o.CancelledAt
	m.CancelReason = o.CancelReason
	m.Remark = o.Remark

	m.Items = make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		m.Items[i] = OrderItemModel{
			ID:         item.ID,
			OrderID:    item.OrderID,
			ItemID:     item.ItemID,
			ItemCode:   item.ItemCode,
			ItemName:   item.ItemName,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Amount:     item.Amount,
			UnitWeight: item.UnitWeight,
			UnitVolume: item.UnitVolume,
			CreatedAt:  item.CreatedAt,
		}
	}
	m.StatusHistory = make([]OrderStatusChangeModel, len(o.StatusHistory))
	for i, change := range o.StatusHistory {
		m.StatusHistory[i] = OrderStatusChangeModel{
			ID:         change.ID,
			OrderID:    change.OrderID,
			FromStatus: change.FromStatus,
			ToStatus:   change.ToStatus,
			Note:       change.Note,
			ChangedBy:  change.ChangedBy,
			ChangedAt:  change.ChangedAt,
		}
	}
}

// OrderModelFromDomain creates a new persistence model from a domain Order aggregate.
func OrderModelFromDomain(o *ordering.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}
