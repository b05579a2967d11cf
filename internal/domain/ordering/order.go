package ordering

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared/valueobject"
)

// OrderStatus represents where an order is in the delivery pipeline.
// Orders travel by rail to a regional store's warehouse, then by
// truck to the customer.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusAssignedTrain  OrderStatus = "assigned_train"
	OrderStatusInTransitRail  OrderStatus = "in_transit_rail"
	OrderStatusAtWarehouse    OrderStatus = "at_warehouse"
	OrderStatusAssignedTruck  OrderStatus = "assigned_truck"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
	OrderStatusReturned       OrderStatus = "returned"
)

// IsValid checks if the status is a known OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusAssignedTrain,
		OrderStatusInTransitRail, OrderStatusAtWarehouse, OrderStatusAssignedTruck,
		OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCancelled,
		OrderStatusReturned:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status.
// Cancellation is allowed at any point before the order leaves the
// warehouse on a truck. Once out for delivery the only outcomes are
// delivered or returned.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return target == OrderStatusConfirmed || target == OrderStatusCancelled
	case OrderStatusConfirmed:
		return target == OrderStatusAssignedTrain || target == OrderStatusCancelled
	case OrderStatusAssignedTrain:
		return target == OrderStatusInTransitRail || target == OrderStatusCancelled
	case OrderStatusInTransitRail:
		return target == OrderStatusAtWarehouse || target == OrderStatusCancelled
	case OrderStatusAtWarehouse:
		return target == OrderStatusAssignedTruck || target == OrderStatusCancelled
	case OrderStatusAssignedTruck:
		return target == OrderStatusOutForDelivery || target == OrderStatusCancelled
	case OrderStatusOutForDelivery:
		return target == OrderStatusDelivered || target == OrderStatusReturned
	case OrderStatusDelivered, OrderStatusCancelled, OrderStatusReturned:
		return false // Terminal states
	}
	return false
}

// IsTerminal returns true if no further transitions are possible
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusDelivered, OrderStatusCancelled, OrderStatusReturned:
		return true
	}
	return false
}

// MinLeadDays is the minimum number of days between placing an order
// and its required delivery date. Rail capacity is planned a week out.
const MinLeadDays = 7

// OrderItem represents a line item in an order, snapshotted from the
// cart at checkout.
type OrderItem struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	ItemID     uuid.UUID
	ItemCode   string
	ItemName   string
	Quantity   int
	UnitPrice  decimal.Decimal
	Amount     decimal.Decimal
	UnitWeight decimal.Decimal
	UnitVolume decimal.Decimal
	CreatedAt  time.Time
}

// NewOrderItem creates a new order line
func NewOrderItem(orderID, itemID uuid.UUID, itemCode, itemName string, quantity int, unitPrice, unitWeight, unitVolume decimal.Decimal) (*OrderItem, error) {
	if itemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item ID cannot be empty")
	}
	if itemName == "" {
		return nil, shared.NewDomainError("INVALID_ITEM_NAME", "Item name cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	qty := decimal.NewFromInt(int64(quantity))
	return &OrderItem{
		ID:         uuid.New(),
		OrderID:    orderID,
		ItemID:     itemID,
		ItemCode:   itemCode,
		ItemName:   itemName,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		Amount:     unitPrice.Mul(qty),
		UnitWeight: unitWeight,
		UnitVolume: unitVolume,
		CreatedAt:  time.Now(),
	}, nil
}

// Load returns the transport load of the line
func (i *OrderItem) Load() valueobject.Load {
	qty := decimal.NewFromInt(int64(i.Quantity))
	load, _ := valueobject.NewLoad(i.UnitWeight.Mul(qty), i.UnitVolume.Mul(qty), i.Quantity)
	return load
}

// StatusChange records one step of the order's journey for the
// customer-facing tracking timeline.
type StatusChange struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	FromStatus OrderStatus
	ToStatus   OrderStatus
	Note       string
	ChangedBy  *uuid.UUID
	ChangedAt  time.Time
}

// Order represents a customer order moving through the supply chain.
// It is the aggregate root for order lifecycle operations.
type Order struct {
	shared.BaseAggregateRoot
	OrderNumber     string
	CustomerID      uuid.UUID
	CustomerName    string
	StoreID         uuid.UUID // Regional store whose warehouse serves the delivery city
	RouteID         uuid.UUID // Truck route covering the delivery address
	TrainScheduleID *uuid.UUID
	TruckScheduleID *uuid.UUID
	Items           []OrderItem
	Subtotal        decimal.Decimal
	DiscountRate    decimal.Decimal // Snapshot of customer type discount at checkout
	DiscountAmount  decimal.Decimal
	ShippingCost    decimal.Decimal
	TotalAmount     decimal.Decimal
	TotalWeight     decimal.Decimal
	TotalVolume     decimal.Decimal
	Status          OrderStatus
	StatusHistory   []StatusChange
	DeliveryAddress string
	DeliveryCity    string
	RequiredDate    time.Time
	ConfirmedAt     *time.Time
	DeliveredAt     *time.Time
	CancelledAt     *time.Time
	CancelReason    string
	Remark          string
}

// NewOrder creates a pending order. Items, totals, and shipping are
// set by the checkout service before the order is persisted.
func NewOrder(orderNumber string, customerID uuid.UUID, customerName string, storeID, routeID uuid.UUID, deliveryAddress, deliveryCity string, requiredDate time.Time) (*Order, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if len(orderNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot exceed 50 characters")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if storeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STORE", "Store ID cannot be empty")
	}
	if routeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ROUTE", "Route ID cannot be empty")
	}
	if deliveryAddress == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Delivery address cannot be empty")
	}
	minDate := time.Now().AddDate(0, 0, MinLeadDays)
	if requiredDate.Before(minDate.Truncate(24 * time.Hour)) {
		return nil, shared.NewDomainError("INVALID_REQUIRED_DATE",
			fmt.Sprintf("Required date must be at least %d days ahead", MinLeadDays))
	}

	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
		CustomerID:        customerID,
		CustomerName:      customerName,
		StoreID:           storeID,
		RouteID:           routeID,
		Items:             make([]OrderItem, 0),
		Subtotal:          decimal.Zero,
		DiscountRate:      decimal.Zero,
		DiscountAmount:    decimal.Zero,
		ShippingCost:      decimal.Zero,
		TotalAmount:       decimal.Zero,
		TotalWeight:       decimal.Zero,
		TotalVolume:       decimal.Zero,
		Status:            OrderStatusPending,
		StatusHistory:     make([]StatusChange, 0),
		DeliveryAddress:   deliveryAddress,
		DeliveryCity:      deliveryCity,
		RequiredDate:      requiredDate,
	}

	order.AddDomainEvent(NewOrderCreatedEvent(order))

	return order, nil
}

// AddItem adds a line to a pending order
func (o *Order) AddItem(itemID uuid.UUID, itemCode, itemName string, quantity int, unitPrice, unitWeight, unitVolume decimal.Decimal) error {
	if o.Status != OrderStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Cannot add items to a non-pending order")
	}

	for idx := range o.Items {
		if o.Items[idx].ItemID == itemID {
			return shared.NewDomainError("DUPLICATE_ITEM", "Item already exists in order")
		}
	}

	item, err := NewOrderItem(o.ID, itemID, itemCode, itemName, quantity, unitPrice, unitWeight, unitVolume)
	if err != nil {
		return err
	}

	o.Items = append(o.Items, *item)
	o.recalculateTotals()
	o.UpdatedAt = time.Now()

	return nil
}

// ApplyDiscount applies the customer's type discount to the order
func (o *Order) ApplyDiscount(rate decimal.Decimal) error {
	if o.Status != OrderStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Cannot apply discount to a non-pending order")
	}
	if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount rate must be in [0, 1)")
	}

	o.DiscountRate = rate
	o.recalculateTotals()
	o.UpdatedAt = time.Now()

	return nil
}

// SetShippingCost sets the computed shipping cost
func (o *Order) SetShippingCost(cost decimal.Decimal) error {
	if o.Status != OrderStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Cannot set shipping on a non-pending order")
	}
	if cost.IsNegative() {
		return shared.NewDomainError("INVALID_SHIPPING_COST", "Shipping cost cannot be negative")
	}

	o.ShippingCost = cost
	o.recalculateTotals()
	o.UpdatedAt = time.Now()

	return nil
}

// Confirm confirms the order once stock has been verified
func (o *Order) Confirm() error {
	if len(o.Items) == 0 {
		return shared.ErrEmptyCart
	}
	if err := o.transition(OrderStatusConfirmed, "Order confirmed", nil); err != nil {
		return err
	}

	now := time.Now()
	o.ConfirmedAt = &now

	o.AddDomainEvent(NewOrderConfirmedEvent(o))

	return nil
}

// AssignTrain books the order onto a train schedule
func (o *Order) AssignTrain(scheduleID uuid.UUID, actorID *uuid.UUID) error {
	if scheduleID == uuid.Nil {
		return shared.NewDomainError("INVALID_SCHEDULE", "Train schedule ID cannot be empty")
	}
	if err := o.transition(OrderStatusAssignedTrain, "Assigned to train schedule", actorID); err != nil {
		return err
	}

	o.TrainScheduleID = &scheduleID

	return nil
}

// MarkInRailTransit records the train's departure
func (o *Order) MarkInRailTransit(actorID *uuid.UUID) error {
	return o.transition(OrderStatusInTransitRail, "Departed by rail", actorID)
}

// MarkAtWarehouse records arrival at the regional store warehouse
func (o *Order) MarkAtWarehouse(actorID *uuid.UUID) error {
	return o.transition(OrderStatusAtWarehouse, "Arrived at store warehouse", actorID)
}

// AssignTruck books the order onto a truck schedule for final delivery
func (o *Order) AssignTruck(scheduleID uuid.UUID, actorID *uuid.UUID) error {
	if scheduleID == uuid.Nil {
		return shared.NewDomainError("INVALID_SCHEDULE", "Truck schedule ID cannot be empty")
	}
	if err := o.transition(OrderStatusAssignedTruck, "Assigned to truck schedule", actorID); err != nil {
		return err
	}

	o.TruckScheduleID = &scheduleID

	return nil
}

// MarkOutForDelivery records the truck's departure
func (o *Order) MarkOutForDelivery(actorID *uuid.UUID) error {
	return o.transition(OrderStatusOutForDelivery, "Out for delivery", actorID)
}

// MarkDelivered completes the order
func (o *Order) MarkDelivered(actorID *uuid.UUID) error {
	if err := o.transition(OrderStatusDelivered, "Delivered to customer", actorID); err != nil {
		return err
	}

	now := time.Now()
	o.DeliveredAt = &now

	o.AddDomainEvent(NewOrderDeliveredEvent(o))

	return nil
}

// MarkReturned records a failed delivery
func (o *Order) MarkReturned(reason string, actorID *uuid.UUID) error {
	if reason == "" {
		return shared.NewDomainError("INVALID_REASON", "Return reason is required")
	}
	if err := o.transition(OrderStatusReturned, reason, actorID); err != nil {
		return err
	}

	o.AddDomainEvent(NewOrderReturnedEvent(o, reason))

	return nil
}

// Cancel cancels the order. Inventory already deducted for a
// confirmed order is restored by the inventory event handler.
func (o *Order) Cancel(reason string, actorID *uuid.UUID) error {
	if reason == "" {
		return shared.NewDomainError("INVALID_REASON", "Cancel reason is required")
	}

	wasConfirmed := o.Status != OrderStatusPending
	if err := o.transition(OrderStatusCancelled, reason, actorID); err != nil {
		return err
	}

	now := time.Now()
	o.CancelledAt = &now
	o.CancelReason = reason

	o.AddDomainEvent(NewOrderCancelledEvent(o, wasConfirmed))

	return nil
}

// transition moves the order to the target status and appends a
// history row, or fails if the move is not legal.
func (o *Order) transition(target OrderStatus, note string, actorID *uuid.UUID) error {
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_TRANSITION",
			fmt.Sprintf("Cannot move order from %s to %s", o.Status, target))
	}

	now := time.Now()
	o.StatusHistory = append(o.StatusHistory, StatusChange{
		ID:         uuid.New(),
		OrderID:    o.ID,
		FromStatus: o.Status,
		ToStatus:   target,
		Note:       note,
		ChangedBy:  actorID,
		ChangedAt:  now,
	})
	o.Status = target
	o.UpdatedAt = now
	o.IncrementVersion()

	return nil
}

// recalculateTotals recalculates amounts and transport load
func (o *Order) recalculateTotals() {
	subtotal := decimal.Zero
	weight := decimal.Zero
	volume := decimal.Zero
	for idx := range o.Items {
		item := &o.Items[idx]
		qty := decimal.NewFromInt(int64(item.Quantity))
		subtotal = subtotal.Add(item.Amount)
		weight = weight.Add(item.UnitWeight.Mul(qty))
		volume = volume.Add(item.UnitVolume.Mul(qty))
	}

	o.Subtotal = subtotal
	o.TotalWeight = weight
	o.TotalVolume = volume
	o.DiscountAmount = subtotal.Mul(o.DiscountRate).Round(2)
	o.TotalAmount = subtotal.Sub(o.DiscountAmount).Add(o.ShippingCost)
}

// TotalLoad returns the order's combined transport load
func (o *Order) TotalLoad() valueobject.Load {
	items := 0
	for idx := range o.Items {
		items += o.Items[idx].Quantity
	}
	load, _ := valueobject.NewLoad(o.TotalWeight, o.TotalVolume, items)
	return load
}

// TotalAmountMoney returns the payable total as LKR money
func (o *Order) TotalAmountMoney() valueobject.Money {
	return valueobject.NewMoneyLKR(o.TotalAmount)
}

// IsCancellable returns true if the order can still be cancelled
func (o *Order) IsCancellable() bool {
	return o.Status.CanTransitionTo(OrderStatusCancelled)
}

// IsDelivered returns true if the order reached the customer
func (o *Order) IsDelivered() bool {
	return o.Status == OrderStatusDelivered
}

// GetItem returns the order line for the given catalog item, or nil
func (o *Order) GetItem(itemID uuid.UUID) *OrderItem {
	for idx := range o.Items {
		if o.Items[idx].ItemID == itemID {
			return &o.Items[idx]
		}
	}
	return nil
}
