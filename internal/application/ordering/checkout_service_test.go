package ordering

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/customer"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/inventory"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/ordering"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/transport"
)

type checkoutFixture struct {
	cartRepo      *MockCartRepository
	orderRepo     *MockOrderRepository
	customerRepo  *MockCustomerRepository
	routeRepo     *MockRouteRepository
	storeRepo     *MockStoreRepository
	inventoryRepo *MockStoreInventoryRepository
	numberGen     *MockOrderNumberGenerator
	svc           *CheckoutService

	cust  *customer.Customer
	store *inventory.Store
	route *transport.Route
	cart  *ordering.Cart
}

func newCheckoutFixture(t *testing.T, custType customer.CustomerType) *checkoutFixture {
	t.Helper()

	f := &checkoutFixture{
		cartRepo:      new(MockCartRepository),
		orderRepo:     new(MockOrderRepository),
		customerRepo:  new(MockCustomerRepository),
		routeRepo:     new(MockRouteRepository),
		storeRepo:     new(MockStoreRepository),
		inventoryRepo: new(MockStoreInventoryRepository),
		numberGen:     new(MockOrderNumberGenerator),
	}
	f.svc = NewCheckoutService(f.cartRepo, f.orderRepo, f.customerRepo, f.routeRepo,
		f.storeRepo, f.inventoryRepo, f.numberGen, nil, zap.NewNop())

	var err error
	f.cust, err = customer.NewCustomer("Perera Stores", custType)
	require.NoError(t, err)

	f.store, err = inventory.NewStore("Kandy Regional", "Kandy", decimal.NewFromInt(120))
	require.NoError(t, err)

	f.route, err = transport.NewRoute(f.store.ID, "Kandy Central", ordering.RouteClassRegional,
		decimal.NewFromInt(15), decimal.NewFromFloat(4.5))
	require.NoError(t, err)

	f.cart, err = ordering.NewCart(f.cust.ID)
	require.NoError(t, err)
	require.NoError(t, f.cart.AddItem(uuid.New(), "RICE-5KG", "White Rice 5kg", 12,
		decimal.NewFromInt(1850), decimal.NewFromFloat(5.0), decimal.NewFromFloat(0.008)))

	return f
}

func (f *checkoutFixture) input() CheckoutInput {
	return CheckoutInput{
		CustomerID:      f.cust.ID,
		RouteID:         f.route.ID,
		DeliveryAddress: "12 Temple Road",
		DeliveryCity:    "Kandy",
		RequiredDate:    time.Now().AddDate(0, 0, 10),
	}
}

func (f *checkoutFixture) stockWith(t *testing.T, quantity int) *inventory.StoreInventory {
	t.Helper()
	si, err := inventory.NewStoreInventory(f.store.ID, f.cart.Items[0].ItemID)
	require.NoError(t, err)
	if quantity > 0 {
		require.NoError(t, si.Receive(quantity))
	}
	return si
}

func TestCheckoutService_Checkout_Success(t *testing.T) {
	f := newCheckoutFixture(t, customer.CustomerTypeRetail)

	f.customerRepo.On("FindByID", mock.Anything, f.cust.ID).Return(f.cust, nil)
	f.cartRepo.On("FindActiveByCustomer", mock.Anything, f.cust.ID).Return(f.cart, nil)
	f.routeRepo.On("FindByID", mock.Anything, f.route.ID).Return(f.route, nil)
	f.storeRepo.On("FindByID", mock.Anything, f.store.ID).Return(f.store, nil)
	f.inventoryRepo.On("FindByStoreAndItem", mock.Anything, f.store.ID, f.cart.Items[0].ItemID).
		Return(f.stockWith(t, 100), nil)
	f.numberGen.On("Next", mock.Anything).Return("SCM-20260830-000001", nil)
	f.orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*ordering.Order")).Return(nil)
	f.cartRepo.On("Update", mock.Anything, f.cart).Return(nil)

	info, err := f.svc.Checkout(context.Background(), f.input())

	require.NoError(t, err)
	assert.Equal(t, "SCM-20260830-000001", info.OrderNumber)
	assert.Equal(t, string(ordering.OrderStatusPending), info.Status)
	assert.Equal(t, f.store.ID, info.StoreID)
	// 12 * 1850 = 22200, retail discount 5%
	assert.True(t, decimal.NewFromInt(22200).Equal(info.Subtotal), info.Subtotal.String())
	assert.True(t, decimal.NewFromInt(1110).Equal(info.DiscountAmount), info.DiscountAmount.String())
	// (60*1.5 + 0.096*2.0 + 15*0.5) * 1.2 = 117.23
	assert.True(t, decimal.NewFromFloat(117.23).Equal(info.ShippingCost), info.ShippingCost.String())
	assert.Equal(t, ordering.CartStatusCheckedOut, f.cart.Status)
	f.orderRepo.AssertExpectations(t)
}

func TestCheckoutService_Checkout_BelowMinimumOrder(t *testing.T) {
	// Wholesale requires 50 units, the cart holds 12
	f := newCheckoutFixture(t, customer.CustomerTypeWholesale)

	f.customerRepo.On("FindByID", mock.Anything, f.cust.ID).Return(f.cust, nil)
	f.cartRepo.On("FindActiveByCustomer", mock.Anything, f.cust.ID).Return(f.cart, nil)

	_, err := f.svc.Checkout(context.Background(), f.input())

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "BELOW_MINIMUM_ORDER", domainErr.Code)
	f.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckoutService_Checkout_InsufficientStock(t *testing.T) {
	f := newCheckoutFixture(t, customer.CustomerTypeRetail)

	f.customerRepo.On("FindByID", mock.Anything, f.cust.ID).Return(f.cust, nil)
	f.cartRepo.On("FindActiveByCustomer", mock.Anything, f.cust.ID).Return(f.cart, nil)
	f.routeRepo.On("FindByID", mock.Anything, f.route.ID).Return(f.route, nil)
	f.storeRepo.On("FindByID", mock.Anything, f.store.ID).Return(f.store, nil)
	f.inventoryRepo.On("FindByStoreAndItem", mock.Anything, f.store.ID, f.cart.Items[0].ItemID).
		Return(f.stockWith(t, 5), nil)

	_, err := f.svc.Checkout(context.Background(), f.input())

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)
}

func TestCheckoutService_Checkout_EmptyCart(t *testing.T) {
	f := newCheckoutFixture(t, customer.CustomerTypeEnd)
	require.NoError(t, f.cart.Clear())

	f.customerRepo.On("FindByID", mock.Anything, f.cust.ID).Return(f.cust, nil)
	f.cartRepo.On("FindActiveByCustomer", mock.Anything, f.cust.ID).Return(f.cart, nil)

	_, err := f.svc.Checkout(context.Background(), f.input())

	assert.ErrorIs(t, err, shared.ErrEmptyCart)
}

func TestCheckoutService_Checkout_SuspendedCustomer(t *testing.T) {
	f := newCheckoutFixture(t, customer.CustomerTypeRetail)
	require.NoError(t, f.cust.Suspend())

	f.customerRepo.On("FindByID", mock.Anything, f.cust.ID).Return(f.cust, nil)

	_, err := f.svc.Checkout(context.Background(), f.input())

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CUSTOMER_INACTIVE", domainErr.Code)
}

func TestCheckoutService_Checkout_InactiveRoute(t *testing.T) {
	f := newCheckoutFixture(t, customer.CustomerTypeRetail)
	require.NoError(t, f.route.Deactivate())

	f.customerRepo.On("FindByID", mock.Anything, f.cust.ID).Return(f.cust, nil)
	f.cartRepo.On("FindActiveByCustomer", mock.Anything, f.cust.ID).Return(f.cart, nil)
	f.routeRepo.On("FindByID", mock.Anything, f.route.ID).Return(f.route, nil)

	_, err := f.svc.Checkout(context.Background(), f.input())

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ROUTE_INACTIVE", domainErr.Code)
}
