package transport

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/inventory"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/ordering"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/transport"
)

// FleetService manages the company's trains, the stores' trucks, and
// the delivery routes trucks run.
type FleetService struct {
	trainRepo transport.TrainRepository
	truckRepo transport.TruckRepository
	routeRepo transport.RouteRepository
	storeRepo inventory.StoreRepository
	logger    *zap.Logger
}

// NewFleetService creates a new fleet service
func NewFleetService(
	trainRepo transport.TrainRepository,
	truckRepo transport.TruckRepository,
	routeRepo transport.RouteRepository,
	storeRepo inventory.StoreRepository,
	logger *zap.Logger,
) *FleetService {
	return &FleetService{
		trainRepo: trainRepo,
		truckRepo: truckRepo,
		routeRepo: routeRepo,
		storeRepo: storeRepo,
		logger:    logger,
	}
}

// RegisterTrain adds a train to the company fleet
func (s *FleetService) RegisterTrain(ctx context.Context, input RegisterTrainInput) (*TrainInfo, error) {
	train, err := transport.NewTrain(input.Name, input.CapacityWeight, input.CapacityVolume)
	if err != nil {
		return nil, err
	}
	if err := s.trainRepo.Create(ctx, train); err != nil {
		s.logger.Error("Failed to register train", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Train registered",
		zap.String("train_id", train.ID.String()),
		zap.String("name", train.Name))

	info := NewTrainInfo(train)
	return &info, nil
}

// GetTrain returns a train by ID
func (s *FleetService) GetTrain(ctx context.Context, id uuid.UUID) (*TrainInfo, error) {
	train, err := s.findTrain(ctx, id)
	if err != nil {
		return nil, err
	}
	info := NewTrainInfo(train)
	return &info, nil
}

// ListTrains returns the whole train fleet
func (s *FleetService) ListTrains(ctx context.Context) ([]TrainInfo, error) {
	trains, err := s.trainRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]TrainInfo, 0, len(trains))
	for _, train := range trains {
		infos = append(infos, NewTrainInfo(train))
	}
	return infos, nil
}

// SendTrainToMaintenance takes a train out of scheduling
func (s *FleetService) SendTrainToMaintenance(ctx context.Context, id uuid.UUID) (*TrainInfo, error) {
	return s.mutateTrain(ctx, id, func(t *transport.Train) error { return t.SendToMaintenance() })
}

// ReturnTrainToService brings a train back from maintenance
func (s *FleetService) ReturnTrainToService(ctx context.Context, id uuid.UUID) (*TrainInfo, error) {
	return s.mutateTrain(ctx, id, func(t *transport.Train) error { return t.ReturnToService() })
}

// RetireTrain permanently removes a train from the fleet
func (s *FleetService) RetireTrain(ctx context.Context, id uuid.UUID) (*TrainInfo, error) {
	return s.mutateTrain(ctx, id, func(t *transport.Train) error { return t.Retire() })
}

// RegisterTruck registers a truck at a store
func (s *FleetService) RegisterTruck(ctx context.Context, input RegisterTruckInput) (*TruckInfo, error) {
	if _, err := s.storeRepo.FindByID(ctx, input.StoreID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("STORE_NOT_FOUND", "Store not found")
		}
		return nil, err
	}

	taken, err := s.truckRepo.ExistsByPlateNumber(ctx, input.PlateNumber)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewDomainError("PLATE_TAKEN", "A truck with this plate number is already registered")
	}

	truck, err := transport.NewTruck(input.StoreID, input.PlateNumber, input.CapacityWeight, input.CapacityVolume)
	if err != nil {
		return nil, err
	}
	if err := s.truckRepo.Create(ctx, truck); err != nil {
		s.logger.Error("Failed to register truck", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Truck registered",
		zap.String("truck_id", truck.ID.String()),
		zap.String("plate_number", truck.PlateNumber),
		zap.String("store_id", truck.StoreID.String()))

	info := NewTruckInfo(truck)
	return &info, nil
}

// GetTruck returns a truck by ID
func (s *FleetService) GetTruck(ctx context.Context, id uuid.UUID) (*TruckInfo, error) {
	truck, err := s.findTruck(ctx, id)
	if err != nil {
		return nil, err
	}
	info := NewTruckInfo(truck)
	return &info, nil
}

// ListTrucksByStore returns all trucks registered at a store
func (s *FleetService) ListTrucksByStore(ctx context.Context, storeID uuid.UUID) ([]TruckInfo, error) {
	trucks, err := s.truckRepo.FindByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	infos := make([]TruckInfo, 0, len(trucks))
	for _, truck := range trucks {
		infos = append(infos, NewTruckInfo(truck))
	}
	return infos, nil
}

// SendTruckToMaintenance takes a truck out of scheduling
func (s *FleetService) SendTruckToMaintenance(ctx context.Context, id uuid.UUID) (*TruckInfo, error) {
	return s.mutateTruck(ctx, id, func(t *transport.Truck) error { return t.SendToMaintenance() })
}

// ReturnTruckToService brings a truck back from maintenance
func (s *FleetService) ReturnTruckToService(ctx context.Context, id uuid.UUID) (*TruckInfo, error) {
	return s.mutateTruck(ctx, id, func(t *transport.Truck) error { return t.ReturnToService() })
}

// RetireTruck permanently removes a truck from a store's fleet
func (s *FleetService) RetireTruck(ctx context.Context, id uuid.UUID) (*TruckInfo, error) {
	return s.mutateTruck(ctx, id, func(t *transport.Truck) error { return t.Retire() })
}

// CreateRoute opens a delivery route for a store
func (s *FleetService) CreateRoute(ctx context.Context, input CreateRouteInput) (*RouteInfo, error) {
	if _, err := s.storeRepo.FindByID(ctx, input.StoreID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("STORE_NOT_FOUND", "Store not found")
		}
		return nil, err
	}

	route, err := transport.NewRoute(input.StoreID, input.Name, ordering.RouteClass(input.Class), input.DistanceKM, input.EstimatedHours)
	if err != nil {
		return nil, err
	}
	if err := s.routeRepo.Create(ctx, route); err != nil {
		s.logger.Error("Failed to create route", zap.Error(err))
		return nil, err
	}

	info := NewRouteInfo(route)
	return &info, nil
}

// GetRoute returns a route by ID
func (s *FleetService) GetRoute(ctx context.Context, id uuid.UUID) (*RouteInfo, error) {
	route, err := s.findRoute(ctx, id)
	if err != nil {
		return nil, err
	}
	info := NewRouteInfo(route)
	return &info, nil
}

// ListRoutesByStore returns a store's routes, optionally only active ones
func (s *FleetService) ListRoutesByStore(ctx context.Context, storeID uuid.UUID, activeOnly bool) ([]RouteInfo, error) {
	var (
		routes []*transport.Route
		err    error
	)
	if activeOnly {
		routes, err = s.routeRepo.FindActiveByStore(ctx, storeID)
	} else {
		routes, err = s.routeRepo.FindByStore(ctx, storeID)
	}
	if err != nil {
		return nil, err
	}
	infos := make([]RouteInfo, 0, len(routes))
	for _, route := range routes {
		infos = append(infos, NewRouteInfo(route))
	}
	return infos, nil
}

// UpdateRoute changes a route's parameters
func (s *FleetService) UpdateRoute(ctx context.Context, input UpdateRouteInput) (*RouteInfo, error) {
	return s.mutateRoute(ctx, input.RouteID, func(r *transport.Route) error {
		return r.Update(input.Name, ordering.RouteClass(input.Class), input.DistanceKM, input.EstimatedHours)
	})
}

// ActivateRoute returns a route to service
func (s *FleetService) ActivateRoute(ctx context.Context, id uuid.UUID) (*RouteInfo, error) {
	return s.mutateRoute(ctx, id, func(r *transport.Route) error { return r.Activate() })
}

// DeactivateRoute takes a route out of service
func (s *FleetService) DeactivateRoute(ctx context.Context, id uuid.UUID) (*RouteInfo, error) {
	return s.mutateRoute(ctx, id, func(r *transport.Route) error { return r.Deactivate() })
}

func (s *FleetService) findTrain(ctx context.Context, id uuid.UUID) (*transport.Train, error) {
	train, err := s.trainRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("TRAIN_NOT_FOUND", "Train not found")
		}
		return nil, err
	}
	return train, nil
}

func (s *FleetService) findTruck(ctx context.Context, id uuid.UUID) (*transport.Truck, error) {
	truck, err := s.truckRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("TRUCK_NOT_FOUND", "Truck not found")
		}
		return nil, err
	}
	return truck, nil
}

func (s *FleetService) findRoute(ctx context.Context, id uuid.UUID) (*transport.Route, error) {
	route, err := s.routeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("ROUTE_NOT_FOUND", "Route not found")
		}
		return nil, err
	}
	return route, nil
}

func (s *FleetService) mutateTrain(ctx context.Context, id uuid.UUID, fn func(*transport.Train) error) (*TrainInfo, error) {
	train, err := s.findTrain(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(train); err != nil {
		return nil, err
	}
	if err := s.trainRepo.Update(ctx, train); err != nil {
		return nil, err
	}
	info := NewTrainInfo(train)
	return &info, nil
}

func (s *FleetService) mutateTruck(ctx context.Context, id uuid.UUID, fn func(*transport.Truck) error) (*TruckInfo, error) {
	truck, err := s.findTruck(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(truck); err != nil {
		return nil, err
	}
	if err := s.truckRepo.Update(ctx, truck); err != nil {
		return nil, err
	}
	info := NewTruckInfo(truck)
	return &info, nil
}

func (s *FleetService) mutateRoute(ctx context.Context, id uuid.UUID, fn func(*transport.Route) error) (*RouteInfo, error) {
	route, err := s.findRoute(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(route); err != nil {
		return nil, err
	}
	if err := s.routeRepo.Update(ctx, route); err != nil {
		return nil, err
	}
	info := NewRouteInfo(route)
	return &info, nil
}
