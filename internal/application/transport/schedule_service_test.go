package transport

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/ordering"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/transport"
)

type scheduleFixture struct {
	service        *ScheduleService
	trainRepo      *MockTrainRepository
	truckRepo      *MockTruckRepository
	routeRepo      *MockRouteRepository
	staffRepo      *MockStaffRepository
	trainSchedules *MockTrainScheduleRepository
	truckSchedules *MockTruckScheduleRepository

	storeID   uuid.UUID
	truck     *transport.Truck
	route     *transport.Route
	driver    *transport.TransportStaff
	assistant *transport.TransportStaff
}

func newScheduleFixture(t *testing.T) *scheduleFixture {
	t.Helper()

	f := &scheduleFixture{
		trainRepo:      new(MockTrainRepository),
		truckRepo:      new(MockTruckRepository),
		routeRepo:      new(MockRouteRepository),
		staffRepo:      new(MockStaffRepository),
		trainSchedules: new(MockTrainScheduleRepository),
		truckSchedules: new(MockTruckScheduleRepository),
		storeID:        uuid.New(),
	}
	f.service = NewScheduleService(f.trainRepo, f.truckRepo, f.routeRepo, f.staffRepo,
		f.trainSchedules, f.truckSchedules, zap.NewNop())

	var err error
	f.truck, err = transport.NewTruck(f.storeID, "CP-KL-7788", decimal.NewFromInt(3500), decimal.NewFromInt(28))
	assert.NoError(t, err)
	f.route, err = transport.NewRoute(f.storeID, "Kandy Central", ordering.RouteClassRegional,
		decimal.NewFromInt(15), decimal.NewFromFloat(4.5))
	assert.NoError(t, err)
	f.driver, err = transport.NewTransportStaff(f.storeID, "Sunil Bandara", transport.StaffRoleDriver)
	assert.NoError(t, err)
	f.assistant, err = transport.NewTransportStaff(f.storeID, "Kasun Silva", transport.StaffRoleAssistant)
	assert.NoError(t, err)

	return f
}

func TestScheduleService_ScheduleTrain(t *testing.T) {
	f := newScheduleFixture(t)

	train, err := transport.NewTrain("Udarata Menike", decimal.NewFromInt(20000), decimal.NewFromInt(400))
	assert.NoError(t, err)

	f.trainRepo.On("FindByID", mock.Anything, train.ID).Return(train, nil)
	f.trainSchedules.On("Create", mock.Anything, mock.AnythingOfType("*transport.TrainSchedule")).Return(nil)

	departure := time.Now().Add(72 * time.Hour)
	info, err := f.service.ScheduleTrain(context.Background(), ScheduleTrainInput{
		TrainID:     train.ID,
		StoreID:     f.storeID,
		DepartureAt: departure,
	})

	assert.NoError(t, err)
	assert.Equal(t, train.ID, info.TrainID)
	assert.True(t, info.CapacityWeight.Equal(train.CapacityWeight))
	assert.Equal(t, string(transport.ScheduleStatusScheduled), info.Status)
}

func TestScheduleService_ScheduleTrain_UnavailableTrain(t *testing.T) {
	f := newScheduleFixture(t)

	train, err := transport.NewTrain("Udarata Menike", decimal.NewFromInt(20000), decimal.NewFromInt(400))
	assert.NoError(t, err)
	assert.NoError(t, train.SendToMaintenance())

	f.trainRepo.On("FindByID", mock.Anything, train.ID).Return(train, nil)

	_, err = f.service.ScheduleTrain(context.Background(), ScheduleTrainInput{
		TrainID:     train.ID,
		StoreID:     f.storeID,
		DepartureAt: time.Now().Add(72 * time.Hour),
	})

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "TRAIN_UNAVAILABLE", domainErr.Code)
	f.trainSchedules.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestScheduleService_ScheduleTruck_BooksCrewHours(t *testing.T) {
	f := newScheduleFixture(t)

	f.truckRepo.On("FindByID", mock.Anything, f.truck.ID).Return(f.truck, nil)
	f.routeRepo.On("FindByID", mock.Anything, f.route.ID).Return(f.route, nil)
	f.staffRepo.On("FindByID", mock.Anything, f.driver.ID).Return(f.driver, nil)
	f.staffRepo.On("FindByID", mock.Anything, f.assistant.ID).Return(f.assistant, nil)
	f.truckSchedules.On("Create", mock.Anything, mock.AnythingOfType("*transport.TruckSchedule")).Return(nil)
	f.staffRepo.On("Update", mock.Anything, f.driver).Return(nil)
	f.staffRepo.On("Update", mock.Anything, f.assistant).Return(nil)

	info, err := f.service.ScheduleTruck(context.Background(), ScheduleTruckInput{
		TruckID:     f.truck.ID,
		RouteID:     f.route.ID,
		DriverID:    f.driver.ID,
		AssistantID: f.assistant.ID,
		DepartureAt: time.Now().Add(48 * time.Hour),
	})

	assert.NoError(t, err)
	assert.True(t, info.Hours.Equal(decimal.NewFromFloat(4.5)))
	assert.True(t, f.driver.WeeklyHours.Equal(decimal.NewFromFloat(4.5)))
	assert.True(t, f.assistant.WeeklyHours.Equal(decimal.NewFromFloat(4.5)))
}

func TestScheduleService_ScheduleTruck_DriverOverWeeklyCap(t *testing.T) {
	f := newScheduleFixture(t)

	// 36 + 4.5 would break the 40 hour driver cap
	assert.NoError(t, f.driver.AddHours(decimal.NewFromInt(36)))

	f.truckRepo.On("FindByID", mock.Anything, f.truck.ID).Return(f.truck, nil)
	f.routeRepo.On("FindByID", mock.Anything, f.route.ID).Return(f.route, nil)
	f.staffRepo.On("FindByID", mock.Anything, f.driver.ID).Return(f.driver, nil)
	f.staffRepo.On("FindByID", mock.Anything, f.assistant.ID).Return(f.assistant, nil)

	_, err := f.service.ScheduleTruck(context.Background(), ScheduleTruckInput{
		TruckID:     f.truck.ID,
		RouteID:     f.route.ID,
		DriverID:    f.driver.ID,
		AssistantID: f.assistant.ID,
		DepartureAt: time.Now().Add(48 * time.Hour),
	})

	assert.ErrorIs(t, err, shared.ErrWeeklyHoursExceeded)
	f.truckSchedules.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestScheduleService_ScheduleTruck_SwappedCrewRoles(t *testing.T) {
	f := newScheduleFixture(t)

	f.truckRepo.On("FindByID", mock.Anything, f.truck.ID).Return(f.truck, nil)
	f.routeRepo.On("FindByID", mock.Anything, f.route.ID).Return(f.route, nil)
	f.staffRepo.On("FindByID", mock.Anything, f.assistant.ID).Return(f.assistant, nil)
	f.staffRepo.On("FindByID", mock.Anything, f.driver.ID).Return(f.driver, nil)

	_, err := f.service.ScheduleTruck(context.Background(), ScheduleTruckInput{
		TruckID:     f.truck.ID,
		RouteID:     f.route.ID,
		DriverID:    f.assistant.ID,
		AssistantID: f.driver.ID,
		DepartureAt: time.Now().Add(48 * time.Hour),
	})

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_DRIVER", domainErr.Code)
}

func TestScheduleService_CancelTruck_ReleasesCrewHours(t *testing.T) {
	f := newScheduleFixture(t)

	assert.NoError(t, f.driver.AddHours(f.route.EstimatedHours))
	assert.NoError(t, f.assistant.AddHours(f.route.EstimatedHours))
	schedule, err := transport.NewTruckSchedule(f.truck, f.route, f.driver, f.assistant, time.Now().Add(48*time.Hour))
	assert.NoError(t, err)

	f.truckSchedules.On("FindByID", mock.Anything, schedule.ID).Return(schedule, nil)
	f.truckSchedules.On("Update", mock.Anything, schedule).Return(nil)
	f.staffRepo.On("FindByID", mock.Anything, f.driver.ID).Return(f.driver, nil)
	f.staffRepo.On("FindByID", mock.Anything, f.assistant.ID).Return(f.assistant, nil)
	f.staffRepo.On("Update", mock.Anything, f.driver).Return(nil)
	f.staffRepo.On("Update", mock.Anything, f.assistant).Return(nil)

	info, err := f.service.CancelTruck(context.Background(), schedule.ID)

	assert.NoError(t, err)
	assert.Equal(t, string(transport.ScheduleStatusCancelled), info.Status)
	assert.True(t, f.driver.WeeklyHours.IsZero())
	assert.True(t, f.assistant.WeeklyHours.IsZero())
}

func TestScheduleService_DepartAndCompleteTruck(t *testing.T) {
	f := newScheduleFixture(t)

	assert.NoError(t, f.driver.AddHours(f.route.EstimatedHours))
	assert.NoError(t, f.assistant.AddHours(f.route.EstimatedHours))
	schedule, err := transport.NewTruckSchedule(f.truck, f.route, f.driver, f.assistant, time.Now().Add(48*time.Hour))
	assert.NoError(t, err)

	f.truckSchedules.On("FindByID", mock.Anything, schedule.ID).Return(schedule, nil)
	f.truckSchedules.On("Update", mock.Anything, schedule).Return(nil)

	info, err := f.service.DepartTruck(context.Background(), schedule.ID)
	assert.NoError(t, err)
	assert.Equal(t, string(transport.ScheduleStatusDeparted), info.Status)
	assert.NotNil(t, info.DepartedAt)

	info, err = f.service.CompleteTruck(context.Background(), schedule.ID)
	assert.NoError(t, err)
	assert.Equal(t, string(transport.ScheduleStatusCompleted), info.Status)

	// A completed run cannot be cancelled
	_, err = f.service.CancelTruck(context.Background(), schedule.ID)
	assert.Error(t, err)
}
