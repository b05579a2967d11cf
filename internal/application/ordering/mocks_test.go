package ordering

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/customer"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/inventory"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/ordering"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/transport"
)

// MockCartRepository is a mock implementation of ordering.CartRepository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Create(ctx context.Context, cart *ordering.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *MockCartRepository) Update(ctx context.Context, cart *ordering.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCartRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Cart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Cart), args.Error(1)
}

func (m *MockCartRepository) FindActiveByCustomer(ctx context.Context, customerID uuid.UUID) (*ordering.Cart, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Cart), args.Error(1)
}

// MockOrderRepository is a mock implementation of ordering.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *ordering.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, order *ordering.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*ordering.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter ordering.OrderFilter) ([]*ordering.Order, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*ordering.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) FindByStatus(ctx context.Context, status ordering.OrderStatus, limit int) ([]*ordering.Order, error) {
	args := m.Called(ctx, status, limit)
	return args.Get(0).([]*ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) CountByStatus(ctx context.Context) (map[ordering.OrderStatus]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[ordering.OrderStatus]int64), args.Error(1)
}

// MockCustomerRepository is a mock implementation of customer.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter customer.CustomerFilter) ([]*customer.Customer, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*customer.Customer), args.Get(1).(int64), args.Error(2)
}

func (m *MockCustomerRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockRouteRepository is a mock implementation of transport.RouteRepository
type MockRouteRepository struct {
	mock.Mock
}

func (m *MockRouteRepository) Create(ctx context.Context, route *transport.Route) error {
	args := m.Called(ctx, route)
	return args.Error(0)
}

func (m *MockRouteRepository) Update(ctx context.Context, route *transport.Route) error {
	args := m.Called(ctx, route)
	return args.Error(0)
}

func (m *MockRouteRepository) FindByID(ctx context.Context, id uuid.UUID) (*transport.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transport.Route), args.Error(1)
}

func (m *MockRouteRepository) FindByStore(ctx context.Context, storeID uuid.UUID) ([]*transport.Route, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).([]*transport.Route), args.Error(1)
}

func (m *MockRouteRepository) FindActiveByStore(ctx context.Context, storeID uuid.UUID) ([]*transport.Route, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).([]*transport.Route), args.Error(1)
}

// MockStoreRepository is a mock implementation of inventory.StoreRepository
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) Create(ctx context.Context, store *inventory.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *MockStoreRepository) Update(ctx context.Context, store *inventory.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *MockStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Store), args.Error(1)
}

func (m *MockStoreRepository) FindByCity(ctx context.Context, city string) (*inventory.Store, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Store), args.Error(1)
}

func (m *MockStoreRepository) FindAll(ctx context.Context) ([]*inventory.Store, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*inventory.Store), args.Error(1)
}

func (m *MockStoreRepository) FindActive(ctx context.Context) ([]*inventory.Store, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*inventory.Store), args.Error(1)
}

// MockStoreInventoryRepository is a mock implementation of inventory.StoreInventoryRepository
type MockStoreInventoryRepository struct {
	mock.Mock
}

func (m *MockStoreInventoryRepository) Create(ctx context.Context, si *inventory.StoreInventory) error {
	args := m.Called(ctx, si)
	return args.Error(0)
}

func (m *MockStoreInventoryRepository) Update(ctx context.Context, si *inventory.StoreInventory) error {
	args := m.Called(ctx, si)
	return args.Error(0)
}

func (m *MockStoreInventoryRepository) FindByStoreAndItem(ctx context.Context, storeID, itemID uuid.UUID) (*inventory.StoreInventory, error) {
	args := m.Called(ctx, storeID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.StoreInventory), args.Error(1)
}

func (m *MockStoreInventoryRepository) FindByStore(ctx context.Context, storeID uuid.UUID) ([]*inventory.StoreInventory, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).([]*inventory.StoreInventory), args.Error(1)
}

func (m *MockStoreInventoryRepository) FindBelowReorderLevel(ctx context.Context, storeID *uuid.UUID) ([]*inventory.StoreInventory, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).([]*inventory.StoreInventory), args.Error(1)
}

// MockOrderNumberGenerator is a mock implementation of ordering.OrderNumberGenerator
type MockOrderNumberGenerator struct {
	mock.Mock
}

func (m *MockOrderNumberGenerator) Next(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// MockTrainScheduleRepository is a mock implementation of transport.TrainScheduleRepository
type MockTrainScheduleRepository struct {
	mock.Mock
}

func (m *MockTrainScheduleRepository) Create(ctx context.Context, schedule *transport.TrainSchedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

func (m *MockTrainScheduleRepository) Update(ctx context.Context, schedule *transport.TrainSchedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

func (m *MockTrainScheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*transport.TrainSchedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transport.TrainSchedule), args.Error(1)
}

func (m *MockTrainScheduleRepository) FindOpenByStore(ctx context.Context, storeID uuid.UUID, until time.Time) ([]*transport.TrainSchedule, error) {
	args := m.Called(ctx, storeID, until)
	return args.Get(0).([]*transport.TrainSchedule), args.Error(1)
}

func (m *MockTrainScheduleRepository) FindByStatus(ctx context.Context, status transport.ScheduleStatus) ([]*transport.TrainSchedule, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]*transport.TrainSchedule), args.Error(1)
}

func (m *MockTrainScheduleRepository) FindByTrain(ctx context.Context, trainID uuid.UUID, from, to time.Time) ([]*transport.TrainSchedule, error) {
	args := m.Called(ctx, trainID, from, to)
	return args.Get(0).([]*transport.TrainSchedule), args.Error(1)
}

// MockTruckScheduleRepository is a mock implementation of transport.TruckScheduleRepository
type MockTruckScheduleRepository struct {
	mock.Mock
}

func (m *MockTruckScheduleRepository) Create(ctx context.Context, schedule *transport.TruckSchedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

func (m *MockTruckScheduleRepository) Update(ctx context.Context, schedule *transport.TruckSchedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

func (m *MockTruckScheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*transport.TruckSchedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transport.TruckSchedule), args.Error(1)
}

func (m *MockTruckScheduleRepository) FindOpenByRoute(ctx context.Context, routeID uuid.UUID, until time.Time) ([]*transport.TruckSchedule, error) {
	args := m.Called(ctx, routeID, until)
	return args.Get(0).([]*transport.TruckSchedule), args.Error(1)
}

func (m *MockTruckScheduleRepository) FindByStore(ctx context.Context, storeID uuid.UUID, from, to time.Time) ([]*transport.TruckSchedule, error) {
	args := m.Called(ctx, storeID, from, to)
	return args.Get(0).([]*transport.TruckSchedule), args.Error(1)
}

func (m *MockTruckScheduleRepository) FindByStaff(ctx context.Context, staffID uuid.UUID, from, to time.Time) ([]*transport.TruckSchedule, error) {
	args := m.Called(ctx, staffID, from, to)
	return args.Get(0).([]*transport.TruckSchedule), args.Error(1)
}

// MockStockDeducter is a mock implementation of StockDeducter
type MockStockDeducter struct {
	mock.Mock
}

func (m *MockStockDeducter) DeductForOrder(ctx context.Context, storeID uuid.UUID, lines []ordering.OrderLine, orderNumber string) error {
	args := m.Called(ctx, storeID, lines, orderNumber)
	return args.Error(0)
}
