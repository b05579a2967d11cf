package transport

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/transport"
)

// ScheduleService plans train and truck runs. Planning a truck run
// books the route's hours against both crew members, and cancelling
// it releases them.
type ScheduleService struct {
	trainRepo      transport.TrainRepository
	truckRepo      transport.TruckRepository
	routeRepo      transport.RouteRepository
	staffRepo      transport.StaffRepository
	trainSchedules transport.TrainScheduleRepository
	truckSchedules transport.TruckScheduleRepository
	logger         *zap.Logger
}

// NewScheduleService creates a new schedule service
func NewScheduleService(
	trainRepo transport.TrainRepository,
	truckRepo transport.TruckRepository,
	routeRepo transport.RouteRepository,
	staffRepo transport.StaffRepository,
	trainSchedules transport.TrainScheduleRepository,
	truckSchedules transport.TruckScheduleRepository,
	logger *zap.Logger,
) *ScheduleService {
	return &ScheduleService{
		trainRepo:      trainRepo,
		truckRepo:      truckRepo,
		routeRepo:      routeRepo,
		staffRepo:      staffRepo,
		trainSchedules: trainSchedules,
		truckSchedules: truckSchedules,
		logger:         logger,
	}
}

// ScheduleTrain plans a train run to a regional store
func (s *ScheduleService) ScheduleTrain(ctx context.Context, input ScheduleTrainInput) (*TrainScheduleInfo, error) {
	train, err := s.trainRepo.FindByID(ctx, input.TrainID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("TRAIN_NOT_FOUND", "Train not found")
		}
		return nil, err
	}

	schedule, err := transport.NewTrainSchedule(train, input.StoreID, input.DepartureAt)
	if err != nil {
		return nil, err
	}
	if err := s.trainSchedules.Create(ctx, schedule); err != nil {
		s.logger.Error("Failed to create train schedule", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Train run scheduled",
		zap.String("schedule_id", schedule.ID.String()),
		zap.String("train_id", train.ID.String()),
		zap.String("store_id", input.StoreID.String()),
		zap.Time("departure_at", input.DepartureAt))

	info := NewTrainScheduleInfo(schedule)
	return &info, nil
}

// GetTrainSchedule returns a train schedule by ID
func (s *ScheduleService) GetTrainSchedule(ctx context.Context, id uuid.UUID) (*TrainScheduleInfo, error) {
	schedule, err := s.findTrainSchedule(ctx, id)
	if err != nil {
		return nil, err
	}
	info := NewTrainScheduleInfo(schedule)
	return &info, nil
}

// ListOpenTrainSchedules returns train runs to a store still taking
// reservations and departing before the horizon.
func (s *ScheduleService) ListOpenTrainSchedules(ctx context.Context, storeID uuid.UUID, until time.Time) ([]TrainScheduleInfo, error) {
	schedules, err := s.trainSchedules.FindOpenByStore(ctx, storeID, until)
	if err != nil {
		return nil, err
	}
	infos := make([]TrainScheduleInfo, 0, len(schedules))
	for _, schedule := range schedules {
		infos = append(infos, NewTrainScheduleInfo(schedule))
	}
	return infos, nil
}

// DepartTrain marks a train run as having left the central warehouse
func (s *ScheduleService) DepartTrain(ctx context.Context, id uuid.UUID) (*TrainScheduleInfo, error) {
	return s.mutateTrainSchedule(ctx, id, func(sc *transport.TrainSchedule) error { return sc.Depart() })
}

// CompleteTrain marks a train run as arrived at the store
func (s *ScheduleService) CompleteTrain(ctx context.Context, id uuid.UUID) (*TrainScheduleInfo, error) {
	return s.mutateTrainSchedule(ctx, id, func(sc *transport.TrainSchedule) error { return sc.Complete() })
}

// CancelTrain cancels a train run that has not yet departed. Orders
// reserved on it keep their assignment and must be rebooked.
func (s *ScheduleService) CancelTrain(ctx context.Context, id uuid.UUID) (*TrainScheduleInfo, error) {
	info, err := s.mutateTrainSchedule(ctx, id, func(sc *transport.TrainSchedule) error { return sc.Cancel() })
	if err != nil {
		return nil, err
	}
	if info.OrderCount > 0 {
		s.logger.Warn("Cancelled train run had reserved orders",
			zap.String("schedule_id", id.String()),
			zap.Int("order_count", info.OrderCount))
	}
	return info, nil
}

// ScheduleTruck plans a truck run over a route with a two-person crew.
// The route's estimated hours are booked against both crew members.
func (s *ScheduleService) ScheduleTruck(ctx context.Context, input ScheduleTruckInput) (*TruckScheduleInfo, error) {
	truck, err := s.truckRepo.FindByID(ctx, input.TruckID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("TRUCK_NOT_FOUND", "Truck not found")
		}
		return nil, err
	}
	route, err := s.routeRepo.FindByID(ctx, input.RouteID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("ROUTE_NOT_FOUND", "Route not found")
		}
		return nil, err
	}
	driver, err := s.findStaff(ctx, input.DriverID)
	if err != nil {
		return nil, err
	}
	assistant, err := s.findStaff(ctx, input.AssistantID)
	if err != nil {
		return nil, err
	}

	schedule, err := transport.NewTruckSchedule(truck, route, driver, assistant, input.DepartureAt)
	if err != nil {
		return nil, err
	}

	if err := driver.AddHours(route.EstimatedHours); err != nil {
		return nil, err
	}
	if err := assistant.AddHours(route.EstimatedHours); err != nil {
		return nil, err
	}

	if err := s.truckSchedules.Create(ctx, schedule); err != nil {
		s.logger.Error("Failed to create truck schedule", zap.Error(err))
		return nil, err
	}
	if err := s.staffRepo.Update(ctx, driver); err != nil {
		return nil, err
	}
	if err := s.staffRepo.Update(ctx, assistant); err != nil {
		return nil, err
	}

	s.logger.Info("Truck run scheduled",
		zap.String("schedule_id", schedule.ID.String()),
		zap.String("truck_id", truck.ID.String()),
		zap.String("route_id", route.ID.String()),
		zap.Time("departure_at", input.DepartureAt))

	info := NewTruckScheduleInfo(schedule)
	return &info, nil
}

// GetTruckSchedule returns a truck schedule by ID
func (s *ScheduleService) GetTruckSchedule(ctx context.Context, id uuid.UUID) (*TruckScheduleInfo, error) {
	schedule, err := s.findTruckSchedule(ctx, id)
	if err != nil {
		return nil, err
	}
	info := NewTruckScheduleInfo(schedule)
	return &info, nil
}

// ListOpenTruckSchedules returns truck runs on a route still taking
// reservations and departing before the horizon.
func (s *ScheduleService) ListOpenTruckSchedules(ctx context.Context, routeID uuid.UUID, until time.Time) ([]TruckScheduleInfo, error) {
	schedules, err := s.truckSchedules.FindOpenByRoute(ctx, routeID, until)
	if err != nil {
		return nil, err
	}
	infos := make([]TruckScheduleInfo, 0, len(schedules))
	for _, schedule := range schedules {
		infos = append(infos, NewTruckScheduleInfo(schedule))
	}
	return infos, nil
}

// ListTruckSchedulesByStore returns a store's truck runs within a window
func (s *ScheduleService) ListTruckSchedulesByStore(ctx context.Context, storeID uuid.UUID, from, to time.Time) ([]TruckScheduleInfo, error) {
	schedules, err := s.truckSchedules.FindByStore(ctx, storeID, from, to)
	if err != nil {
		return nil, err
	}
	infos := make([]TruckScheduleInfo, 0, len(schedules))
	for _, schedule := range schedules {
		infos = append(infos, NewTruckScheduleInfo(schedule))
	}
	return infos, nil
}

// DepartTruck marks a truck run as having left the store
func (s *ScheduleService) DepartTruck(ctx context.Context, id uuid.UUID) (*TruckScheduleInfo, error) {
	return s.mutateTruckSchedule(ctx, id, func(sc *transport.TruckSchedule) error { return sc.Depart() })
}

// CompleteTruck marks a truck run as finished
func (s *ScheduleService) CompleteTruck(ctx context.Context, id uuid.UUID) (*TruckScheduleInfo, error) {
	return s.mutateTruckSchedule(ctx, id, func(sc *transport.TruckSchedule) error { return sc.Complete() })
}

// CancelTruck cancels a truck run that has not yet departed and
// releases the crew's booked hours.
func (s *ScheduleService) CancelTruck(ctx context.Context, id uuid.UUID) (*TruckScheduleInfo, error) {
	schedule, err := s.findTruckSchedule(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := schedule.Cancel(); err != nil {
		return nil, err
	}
	if err := s.truckSchedules.Update(ctx, schedule); err != nil {
		return nil, err
	}

	s.releaseCrewHours(ctx, schedule)

	info := NewTruckScheduleInfo(schedule)
	return &info, nil
}

// releaseCrewHours gives the route hours back to both crew members.
// The run is already cancelled, so failures are logged rather than
// returned.
func (s *ScheduleService) releaseCrewHours(ctx context.Context, schedule *transport.TruckSchedule) {
	for _, staffID := range []uuid.UUID{schedule.DriverID, schedule.AssistantID} {
		member, err := s.staffRepo.FindByID(ctx, staffID)
		if err != nil {
			s.logger.Error("Failed to load crew member for hour release",
				zap.String("staff_id", staffID.String()), zap.Error(err))
			continue
		}
		if err := member.ReleaseHours(schedule.Hours); err != nil {
			s.logger.Error("Failed to release crew hours",
				zap.String("staff_id", staffID.String()), zap.Error(err))
			continue
		}
		if err := s.staffRepo.Update(ctx, member); err != nil {
			s.logger.Error("Failed to persist crew hour release",
				zap.String("staff_id", staffID.String()), zap.Error(err))
		}
	}
}

func (s *ScheduleService) findStaff(ctx context.Context, id uuid.UUID) (*transport.TransportStaff, error) {
	member, err := s.staffRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("STAFF_NOT_FOUND", "Staff member not found")
		}
		return nil, err
	}
	return member, nil
}

func (s *ScheduleService) findTrainSchedule(ctx context.Context, id uuid.UUID) (*transport.TrainSchedule, error) {
	schedule, err := s.trainSchedules.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("SCHEDULE_NOT_FOUND", "Train schedule not found")
		}
		return nil, err
	}
	return schedule, nil
}

func (s *ScheduleService) findTruckSchedule(ctx context.Context, id uuid.UUID) (*transport.TruckSchedule, error) {
	schedule, err := s.truckSchedules.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("SCHEDULE_NOT_FOUND", "Truck schedule not found")
		}
		return nil, err
	}
	return schedule, nil
}

func (s *ScheduleService) mutateTrainSchedule(ctx context.Context, id uuid.UUID, fn func(*transport.TrainSchedule) error) (*TrainScheduleInfo, error) {
	schedule, err := s.findTrainSchedule(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(schedule); err != nil {
		return nil, err
	}
	if err := s.trainSchedules.Update(ctx, schedule); err != nil {
		return nil, err
	}
	info := NewTrainScheduleInfo(schedule)
	return &info, nil
}

func (s *ScheduleService) mutateTruckSchedule(ctx context.Context, id uuid.UUID, fn func(*transport.TruckSchedule) error) (*TruckScheduleInfo, error) {
	schedule, err := s.findTruckSchedule(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(schedule); err != nil {
		return nil, err
	}
	if err := s.truckSchedules.Update(ctx, schedule); err != nil {
		return nil, err
	}
	info := NewTruckScheduleInfo(schedule)
	return &info, nil
}
