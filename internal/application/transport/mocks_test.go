package transport

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/inventory"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/transport"
)

type MockTrainRepository struct {
	mock.Mock
}

func (m *MockTrainRepository) Create(ctx context.Context, train *transport.Train) error {
	args := m.Called(ctx, train)
	return args.Error(0)
}

func (m *MockTrainRepository) Update(ctx context.Context, train *transport.Train) error {
	args := m.Called(ctx, train)
	return args.Error(0)
}

func (m *MockTrainRepository) FindByID(ctx context.Context, id uuid.UUID) (*transport.Train, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transport.Train), args.Error(1)
}

func (m *MockTrainRepository) FindAll(ctx context.Context) ([]*transport.Train, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transport.Train), args.Error(1)
}

func (m *MockTrainRepository) FindAvailable(ctx context.Context) ([]*transport.Train, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transport.Train), args.Error(1)
}

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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transport.TrainSchedule), args.Error(1)
}

func (m *MockTrainScheduleRepository) FindByStatus(ctx context.Context, status transport.ScheduleStatus) ([]*transport.TrainSchedule, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transport.TrainSchedule), args.Error(1)
}

func (m *MockTrainScheduleRepository) FindByTrain(ctx context.Context, trainID uuid.UUID, from, to time.Time) ([]*transport.TrainSchedule, error) {
	args := m.Called(ctx, trainID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transport.TrainSchedule), args.Error(1)
}

type MockTruckRepository struct {
	mock.Mock
}

func (m *MockTruckRepository) Create(ctx context.Context, truck *transport.Truck) error {
	args := m.Called(ctx, truck)
	return args.Error(0)
}

func (m *MockTruckRepository) Update(ctx context.Context, truck *transport.Truck) error {
	args := m.Called(ctx, truck)
	return args.Error(0)
}

func (m *MockTruckRepository) FindByID(ctx context.Context, id uuid.UUID) (*transport.Truck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transport.Truck), args.Error(1)
}

func (m *MockTruckRepository) FindByStore(ctx context.Context, storeID uuid.UUID) ([]*transport.Truck, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transport.Truck), args.Error(1)
}

func (m *MockTruckRepository) FindAvailableByStore(ctx context.Context, storeID uuid.UUID) ([]*transport.Truck, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transport.Truck), args.Error(1)
}

func (m *MockTruckRepository) ExistsByPlateNumber(ctx context.Context, plateNumber string) (bool, error) {
	args := m.Called(ctx, plateNumber)
	return args.Bool(0), args.Error(1)
}

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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transport.TruckSchedule), args.Error(1)
}

func (m *MockTruckScheduleRepository) FindByStore(ctx context.Context, storeID uuid.UUID, from, to time.Time) ([]*transport.TruckSchedule, error) {
	args := m.Called(ctx, storeID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transport.TruckSchedule), args.Error(1)
}

func (m *MockTruckScheduleRepository) FindByStaff(ctx context.Context, staffID uuid.UUID, from, to time.Time) ([]*transport.TruckSchedule, error) {
	args := m.Called(ctx, staffID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transport.TruckSchedule), args.Error(1)
}

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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transport.Route), args.Error(1)
}

func (m *MockRouteRepository) FindActiveByStore(ctx context.Context, storeID uuid.UUID) ([]*transport.Route, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transport.Route), args.Error(1)
}

type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) Create(ctx context.Context, staff *transport.TransportStaff) error {
	args := m.Called(ctx, staff)
	return args.Error(0)
}

func (m *MockStaffRepository) Update(ctx context.Context, staff *transport.TransportStaff) error {
	args := m.Called(ctx, staff)
	return args.Error(0)
}

func (m *MockStaffRepository) FindByID(ctx context.Context, id uuid.UUID) (*transport.TransportStaff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transport.TransportStaff), args.Error(1)
}

func (m *MockStaffRepository) FindByStore(ctx context.Context, storeID uuid.UUID) ([]*transport.TransportStaff, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transport.TransportStaff), args.Error(1)
}

func (m *MockStaffRepository) FindAvailableByStore(ctx context.Context, storeID uuid.UUID, role transport.StaffRole) ([]*transport.TransportStaff, error) {
	args := m.Called(ctx, storeID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transport.TransportStaff), args.Error(1)
}

func (m *MockStaffRepository) ResetAllWeeklyHours(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.Store), args.Error(1)
}

func (m *MockStoreRepository) FindActive(ctx context.Context) ([]*inventory.Store, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.Store), args.Error(1)
}
