package ordering

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/customer"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/inventory"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/ordering"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/transport"
)

// CheckoutService turns an active cart into a pending order. Stock is
// verified here but only deducted when the order is confirmed.
type CheckoutService struct {
	cartRepo      ordering.CartRepository
	orderRepo     ordering.OrderRepository
	customerRepo  customer.CustomerRepository
	routeRepo     transport.RouteRepository
	storeRepo     inventory.StoreRepository
	inventoryRepo inventory.StoreInventoryRepository
	numberGen     ordering.OrderNumberGenerator
	shipping      *ordering.ShippingCalculator
	publisher     shared.EventPublisher
	logger        *zap.Logger
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	cartRepo ordering.CartRepository,
	orderRepo ordering.OrderRepository,
	customerRepo customer.CustomerRepository,
	routeRepo transport.RouteRepository,
	storeRepo inventory.StoreRepository,
	inventoryRepo inventory.StoreInventoryRepository,
	numberGen ordering.OrderNumberGenerator,
	publisher shared.EventPublisher,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		cartRepo:      cartRepo,
		orderRepo:     orderRepo,
		customerRepo:  customerRepo,
		routeRepo:     routeRepo,
		storeRepo:     storeRepo,
		inventoryRepo: inventoryRepo,
		numberGen:     numberGen,
		shipping:      ordering.NewShippingCalculator(),
		publisher:     publisher,
		logger:        logger,
	}
}

// Checkout creates a pending order from the customer's active cart.
// The cart is marked checked out and stops accepting changes.
func (s *CheckoutService) Checkout(ctx context.Context, input CheckoutInput) (*OrderInfo, error) {
	cust, err := s.customerRepo.FindByID(ctx, input.CustomerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("CUSTOMER_NOT_FOUND", "Customer not found")
		}
		return nil, err
	}
	if !cust.CanPlaceOrders() {
		return nil, shared.NewDomainError("CUSTOMER_INACTIVE", "Customer account cannot place orders")
	}

	cart, err := s.cartRepo.FindActiveByCustomer(ctx, input.CustomerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("CART_NOT_FOUND", "No active cart to check out")
		}
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, shared.ErrEmptyCart
	}

	totalUnits := 0
	for i := range cart.Items {
		totalUnits += cart.Items[i].Quantity
	}
	if totalUnits < cust.Type.MinOrderQuantity() {
		return nil, shared.NewDomainError("BELOW_MINIMUM_ORDER",
			"Order does not meet the minimum quantity for this customer type")
	}

	route, err := s.routeRepo.FindByID(ctx, input.RouteID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("ROUTE_NOT_FOUND", "Delivery route not found")
		}
		return nil, err
	}
	if !route.IsActive() {
		return nil, shared.NewDomainError("ROUTE_INACTIVE", "Delivery route is not in service")
	}

	store, err := s.storeRepo.FindByID(ctx, route.StoreID)
	if err != nil {
		return nil, err
	}

	// Verify current stock at the serving store. The deduction itself
	// happens on confirmation.
	for i := range cart.Items {
		line := &cart.Items[i]
		si, err := s.inventoryRepo.FindByStoreAndItem(ctx, store.ID, line.ItemID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INSUFFICIENT_STOCK",
					"Item "+line.ItemCode+" is not stocked at the serving store")
			}
			return nil, err
		}
		if !si.CanFulfill(line.Quantity) {
			return nil, shared.NewDomainError("INSUFFICIENT_STOCK",
				"Not enough stock of "+line.ItemCode+" at the serving store")
		}
	}

	orderNumber, err := s.numberGen.Next(ctx)
	if err != nil {
		s.logger.Error("Failed to generate order number", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create order")
	}

	order, err := ordering.NewOrder(orderNumber, cust.ID, cust.Name, store.ID, route.ID,
		input.DeliveryAddress, input.DeliveryCity, input.RequiredDate)
	if err != nil {
		return nil, err
	}
	order.Remark = input.Remark

	for i := range cart.Items {
		line := &cart.Items[i]
		if err := order.AddItem(line.ItemID, line.ItemCode, line.ItemName, line.Quantity,
			line.UnitPrice, line.UnitWeight, line.UnitVolume); err != nil {
			return nil, err
		}
	}

	if err := order.ApplyDiscount(cust.Type.DiscountRate()); err != nil {
		return nil, err
	}

	shippingCost, err := s.shipping.Calculate(cart.TotalLoad(), route.DistanceKM, route.Class)
	if err != nil {
		return nil, err
	}
	if err := order.SetShippingCost(shippingCost); err != nil {
		return nil, err
	}

	if err := cart.MarkCheckedOut(); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error("Failed to create order", zap.Error(err))
		return nil, err
	}
	if err := s.cartRepo.Update(ctx, cart); err != nil {
		s.logger.Error("Failed to mark cart checked out", zap.Error(err))
		return nil, err
	}

	events := order.GetDomainEvents()
	if s.publisher != nil && len(events) > 0 {
		if err := s.publisher.Publish(ctx, events...); err != nil {
			s.logger.Error("Failed to publish order events", zap.Error(err))
		}
	}
	order.ClearDomainEvents()

	s.logger.Info("Order created",
		zap.String("order_number", order.OrderNumber),
		zap.String("customer_id", cust.ID.String()),
		zap.String("store_id", store.ID.String()),
		zap.String("total", order.TotalAmount.String()))

	info := NewOrderInfo(order)
	return &info, nil
}
