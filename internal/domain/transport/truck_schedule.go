package transport

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared/valueobject"
)

// TruckSchedule represents one planned truck run over a delivery
// route, crewed by a driver and an assistant. The run's hours count
// against both crew members' weekly allowances.
type TruckSchedule struct {
	shared.BaseAggregateRoot
	TruckID        uuid.UUID
	StoreID        uuid.UUID
	RouteID        uuid.UUID
	DriverID       uuid.UUID
	AssistantID    uuid.UUID
	DepartureAt    time.Time
	Hours          decimal.Decimal // Route's estimated hours, booked against the crew
	CapacityWeight decimal.Decimal
	CapacityVolume decimal.Decimal
	CapacityItems  int
	ReservedWeight decimal.Decimal
	ReservedVolume decimal.Decimal
	ReservedItems  int
	OrderCount     int
	Status         ScheduleStatus
	DepartedAt     *time.Time
	CompletedAt    *time.Time
}

// NewTruckSchedule plans a truck run. The truck, route, and crew must
// all belong to the same store, the crew roles must match, and both
// crew members must have enough weekly hours left for the route.
func NewTruckSchedule(truck *Truck, route *Route, driver, assistant *TransportStaff, departureAt time.Time) (*TruckSchedule, error) {
	if truck == nil || route == nil || driver == nil || assistant == nil {
		return nil, shared.NewDomainError("INVALID_SCHEDULE", "Truck, route, driver, and assistant are required")
	}
	if !truck.IsAvailable() {
		return nil, shared.NewDomainError("TRUCK_UNAVAILABLE", "Truck is not available for scheduling")
	}
	if !route.IsActive() {
		return nil, shared.NewDomainError("ROUTE_INACTIVE", "Route is not in service")
	}
	if truck.StoreID != route.StoreID || driver.StoreID != route.StoreID || assistant.StoreID != route.StoreID {
		return nil, shared.NewDomainError("STORE_MISMATCH", "Truck, route, and crew must belong to the same store")
	}
	if driver.Role != StaffRoleDriver {
		return nil, shared.NewDomainError("INVALID_DRIVER", "Assigned driver does not hold the driver role")
	}
	if assistant.Role != StaffRoleAssistant {
		return nil, shared.NewDomainError("INVALID_ASSISTANT", "Assigned assistant does not hold the assistant role")
	}
	if !driver.CanWork(route.EstimatedHours) || !assistant.CanWork(route.EstimatedHours) {
		return nil, shared.ErrWeeklyHoursExceeded
	}
	if departureAt.Before(time.Now()) {
		return nil, shared.NewDomainError("INVALID_DEPARTURE", "Departure must be in the future")
	}

	return &TruckSchedule{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		TruckID:           truck.ID,
		StoreID:           route.StoreID,
		RouteID:           route.ID,
		DriverID:          driver.ID,
		AssistantID:       assistant.ID,
		DepartureAt:       departureAt,
		Hours:             route.EstimatedHours,
		CapacityWeight:    truck.CapacityWeight,
		CapacityVolume:    truck.CapacityVolume,
		CapacityItems:     TruckCapacityItems,
		ReservedWeight:    decimal.Zero,
		ReservedVolume:    decimal.Zero,
		Status:            ScheduleStatusScheduled,
	}, nil
}

// RemainingCapacity returns the load the run can still take
func (s *TruckSchedule) RemainingCapacity() valueobject.Load {
	load, _ := valueobject.NewLoad(
		s.CapacityWeight.Sub(s.ReservedWeight),
		s.CapacityVolume.Sub(s.ReservedVolume),
		s.CapacityItems-s.ReservedItems,
	)
	return load
}

// CanReserve returns true if the load fits in the remaining capacity
func (s *TruckSchedule) CanReserve(load valueobject.Load) bool {
	if s.Status != ScheduleStatusScheduled {
		return false
	}
	return load.Weight().LessThanOrEqual(s.CapacityWeight.Sub(s.ReservedWeight)) &&
		load.Volume().LessThanOrEqual(s.CapacityVolume.Sub(s.ReservedVolume)) &&
		load.Items() <= s.CapacityItems-s.ReservedItems
}

// Reserve books a slice of the run's capacity for an order
func (s *TruckSchedule) Reserve(load valueobject.Load) error {
	if s.Status != ScheduleStatusScheduled {
		return shared.NewDomainError("SCHEDULE_CLOSED", "Schedule is no longer taking reservations")
	}
	if !s.CanReserve(load) {
		return shared.ErrInsufficientCapacity
	}

	s.ReservedWeight = s.ReservedWeight.Add(load.Weight())
	s.ReservedVolume = s.ReservedVolume.Add(load.Volume())
	s.ReservedItems += load.Items()
	s.OrderCount++
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// Release frees capacity reserved by a cancelled order
func (s *TruckSchedule) Release(load valueobject.Load) error {
	if s.Status != ScheduleStatusScheduled {
		return shared.NewDomainError("SCHEDULE_CLOSED", "Schedule is no longer open")
	}

	s.ReservedWeight = s.ReservedWeight.Sub(load.Weight())
	s.ReservedVolume = s.ReservedVolume.Sub(load.Volume())
	if s.ReservedWeight.IsNegative() {
		s.ReservedWeight = decimal.Zero
	}
	if s.ReservedVolume.IsNegative() {
		s.ReservedVolume = decimal.Zero
	}
	s.ReservedItems -= load.Items()
	if s.ReservedItems < 0 {
		s.ReservedItems = 0
	}
	if s.OrderCount > 0 {
		s.OrderCount--
	}
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// Depart marks the truck as having left the store
func (s *TruckSchedule) Depart() error {
	if !s.Status.CanTransitionTo(ScheduleStatusDeparted) {
		return shared.NewDomainError("INVALID_TRANSITION",
			fmt.Sprintf("Cannot depart a %s schedule", s.Status))
	}

	now := time.Now()
	s.Status = ScheduleStatusDeparted
	s.DepartedAt = &now
	s.UpdatedAt = now
	s.IncrementVersion()

	return nil
}

// Complete marks the run as finished
func (s *TruckSchedule) Complete() error {
	if !s.Status.CanTransitionTo(ScheduleStatusCompleted) {
		return shared.NewDomainError("INVALID_TRANSITION",
			fmt.Sprintf("Cannot complete a %s schedule", s.Status))
	}

	now := time.Now()
	s.Status = ScheduleStatusCompleted
	s.CompletedAt = &now
	s.UpdatedAt = now
	s.IncrementVersion()

	return nil
}

// Cancel cancels a run that has not yet departed. Crew hours are
// released by the application service.
func (s *TruckSchedule) Cancel() error {
	if !s.Status.CanTransitionTo(ScheduleStatusCancelled) {
		return shared.NewDomainError("INVALID_TRANSITION",
			fmt.Sprintf("Cannot cancel a %s schedule", s.Status))
	}

	s.Status = ScheduleStatusCancelled
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}
