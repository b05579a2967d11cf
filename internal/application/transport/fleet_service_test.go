package transport

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/inventory"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/ordering"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/transport"
)

func newTestFleetService() (*FleetService, *MockTrainRepository, *MockTruckRepository, *MockRouteRepository, *MockStoreRepository) {
	trainRepo := new(MockTrainRepository)
	truckRepo := new(MockTruckRepository)
	routeRepo := new(MockRouteRepository)
	storeRepo := new(MockStoreRepository)
	service := NewFleetService(trainRepo, truckRepo, routeRepo, storeRepo, zap.NewNop())
	return service, trainRepo, truckRepo, routeRepo, storeRepo
}

func activeStore(t *testing.T) *inventory.Store {
	t.Helper()
	store, err := inventory.NewStore("Matara Regional", "Matara", decimal.NewFromInt(160))
	assert.NoError(t, err)
	store.ClearDomainEvents()
	return store
}

func TestFleetService_RegisterTrain(t *testing.T) {
	service, trainRepo, _, _, _ := newTestFleetService()

	trainRepo.On("Create", mock.Anything, mock.AnythingOfType("*transport.Train")).Return(nil)

	info, err := service.RegisterTrain(context.Background(), RegisterTrainInput{
		Name:           "Ruhunu Kumari",
		CapacityWeight: decimal.NewFromInt(18000),
		CapacityVolume: decimal.NewFromInt(350),
	})

	assert.NoError(t, err)
	assert.Equal(t, "Ruhunu Kumari", info.Name)
	assert.Equal(t, string(transport.VehicleStatusActive), info.Status)
	trainRepo.AssertExpectations(t)
}

func TestFleetService_RegisterTruck_DuplicatePlate(t *testing.T) {
	service, _, truckRepo, _, storeRepo := newTestFleetService()

	store := activeStore(t)
	storeRepo.On("FindByID", mock.Anything, store.ID).Return(store, nil)
	truckRepo.On("ExistsByPlateNumber", mock.Anything, "WP-LH-4521").Return(true, nil)

	_, err := service.RegisterTruck(context.Background(), RegisterTruckInput{
		StoreID:        store.ID,
		PlateNumber:    "WP-LH-4521",
		CapacityWeight: decimal.NewFromInt(3000),
		CapacityVolume: decimal.NewFromInt(25),
	})

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "PLATE_TAKEN", domainErr.Code)
	truckRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFleetService_RegisterTruck_UnknownStore(t *testing.T) {
	service, _, _, _, storeRepo := newTestFleetService()

	storeID := uuid.New()
	storeRepo.On("FindByID", mock.Anything, storeID).Return(nil, shared.ErrNotFound)

	_, err := service.RegisterTruck(context.Background(), RegisterTruckInput{
		StoreID:        storeID,
		PlateNumber:    "SP-NA-1010",
		CapacityWeight: decimal.NewFromInt(3000),
		CapacityVolume: decimal.NewFromInt(25),
	})

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "STORE_NOT_FOUND", domainErr.Code)
}

func TestFleetService_CreateRoute(t *testing.T) {
	service, _, _, routeRepo, storeRepo := newTestFleetService()

	store := activeStore(t)
	storeRepo.On("FindByID", mock.Anything, store.ID).Return(store, nil)
	routeRepo.On("Create", mock.Anything, mock.AnythingOfType("*transport.Route")).Return(nil)

	info, err := service.CreateRoute(context.Background(), CreateRouteInput{
		StoreID:        store.ID,
		Name:           "Matara Coastal",
		Class:          string(ordering.RouteClassLocal),
		DistanceKM:     decimal.NewFromInt(18),
		EstimatedHours: decimal.NewFromFloat(3.5),
	})

	assert.NoError(t, err)
	assert.Equal(t, "Matara Coastal", info.Name)
	assert.Equal(t, string(transport.RouteStatusActive), info.Status)
}

func TestFleetService_CreateRoute_UnknownClass(t *testing.T) {
	service, _, _, routeRepo, storeRepo := newTestFleetService()

	store := activeStore(t)
	storeRepo.On("FindByID", mock.Anything, store.ID).Return(store, nil)

	_, err := service.CreateRoute(context.Background(), CreateRouteInput{
		StoreID:        store.ID,
		Name:           "Matara Coastal",
		Class:          "overnight",
		DistanceKM:     decimal.NewFromInt(18),
		EstimatedHours: decimal.NewFromFloat(3.5),
	})

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_ROUTE_CLASS", domainErr.Code)
	routeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFleetService_TrainMaintenanceCycle(t *testing.T) {
	service, trainRepo, _, _, _ := newTestFleetService()

	train, err := transport.NewTrain("Udarata Menike", decimal.NewFromInt(20000), decimal.NewFromInt(400))
	assert.NoError(t, err)

	trainRepo.On("FindByID", mock.Anything, train.ID).Return(train, nil)
	trainRepo.On("Update", mock.Anything, train).Return(nil)

	info, err := service.SendTrainToMaintenance(context.Background(), train.ID)
	assert.NoError(t, err)
	assert.Equal(t, string(transport.VehicleStatusMaintenance), info.Status)

	info, err = service.ReturnTrainToService(context.Background(), train.ID)
	assert.NoError(t, err)
	assert.Equal(t, string(transport.VehicleStatusActive), info.Status)
}

func TestFleetService_DeactivateRoute(t *testing.T) {
	service, _, _, routeRepo, _ := newTestFleetService()

	route, err := transport.NewRoute(uuid.New(), "Matara Coastal", ordering.RouteClassLocal,
		decimal.NewFromInt(18), decimal.NewFromFloat(3.5))
	assert.NoError(t, err)

	routeRepo.On("FindByID", mock.Anything, route.ID).Return(route, nil)
	routeRepo.On("Update", mock.Anything, route).Return(nil)

	info, err := service.DeactivateRoute(context.Background(), route.ID)

	assert.NoError(t, err)
	assert.Equal(t, string(transport.RouteStatusInactive), info.Status)
	assert.False(t, route.IsActive())
}
