package transport

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared/valueobject"
)

// ScheduleStatus represents where a scheduled trip is in its lifecycle
type ScheduleStatus string

const (
	ScheduleStatusScheduled ScheduleStatus = "scheduled"
	ScheduleStatusDeparted  ScheduleStatus = "departed"
	ScheduleStatusCompleted ScheduleStatus = "completed"
	ScheduleStatusCancelled ScheduleStatus = "cancelled"
)

// CanTransitionTo checks if the schedule status can move to the target
func (s ScheduleStatus) CanTransitionTo(target ScheduleStatus) bool {
	switch s {
	case ScheduleStatusScheduled:
		return target == ScheduleStatusDeparted || target == ScheduleStatusCancelled
	case ScheduleStatusDeparted:
		return target == ScheduleStatusCompleted
	case ScheduleStatusCompleted, ScheduleStatusCancelled:
		return false
	}
	return false
}

// Per-run item limits, independent of weight and volume. A run full
// of very light items still has a finite number of parcel slots.
const (
	TrainCapacityItems = 1000
	TruckCapacityItems = 200
)

// TrainSchedule represents one planned train run to a regional store.
// Capacity is snapshotted from the train when the run is scheduled,
// and orders reserve slices of it until the train departs.
type TrainSchedule struct {
	shared.BaseAggregateRoot
	TrainID        uuid.UUID
	StoreID        uuid.UUID // Destination store
	DepartureAt    time.Time
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

// NewTrainSchedule plans a train run
func NewTrainSchedule(train *Train, storeID uuid.UUID, departureAt time.Time) (*TrainSchedule, error) {
	if train == nil {
		return nil, shared.NewDomainError("INVALID_TRAIN", "Train is required")
	}
	if !train.IsAvailable() {
		return nil, shared.NewDomainError("TRAIN_UNAVAILABLE", "Train is not available for scheduling")
	}
	if storeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STORE", "Store ID cannot be empty")
	}
	if departureAt.Before(time.Now()) {
		return nil, shared.NewDomainError("INVALID_DEPARTURE", "Departure must be in the future")
	}

	return &TrainSchedule{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		TrainID:           train.ID,
		StoreID:           storeID,
		DepartureAt:       departureAt,
		CapacityWeight:    train.CapacityWeight,
		CapacityVolume:    train.CapacityVolume,
		CapacityItems:     TrainCapacityItems,
		ReservedWeight:    decimal.Zero,
		ReservedVolume:    decimal.Zero,
		Status:            ScheduleStatusScheduled,
	}, nil
}

// RemainingCapacity returns the load the schedule can still take
func (s *TrainSchedule) RemainingCapacity() valueobject.Load {
	load, _ := valueobject.NewLoad(
		s.CapacityWeight.Sub(s.ReservedWeight),
		s.CapacityVolume.Sub(s.ReservedVolume),
		s.CapacityItems-s.ReservedItems,
	)
	return load
}

// CanReserve returns true if the load fits in the remaining capacity
func (s *TrainSchedule) CanReserve(load valueobject.Load) bool {
	if s.Status != ScheduleStatusScheduled {
		return false
	}
	return load.Weight().LessThanOrEqual(s.CapacityWeight.Sub(s.ReservedWeight)) &&
		load.Volume().LessThanOrEqual(s.CapacityVolume.Sub(s.ReservedVolume)) &&
		load.Items() <= s.CapacityItems-s.ReservedItems
}

// Reserve books a slice of the schedule's capacity for an order
func (s *TrainSchedule) Reserve(load valueobject.Load) error {
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
func (s *TrainSchedule) Release(load valueobject.Load) error {
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

// Depart marks the train as having left the central warehouse
func (s *TrainSchedule) Depart() error {
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

// Complete marks the train as arrived at the destination store
func (s *TrainSchedule) Complete() error {
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

// Cancel cancels a schedule that has not yet departed.
// Orders assigned to it must be rebooked by the application service.
func (s *TrainSchedule) Cancel() error {
	if !s.Status.CanTransitionTo(ScheduleStatusCancelled) {
		return shared.NewDomainError("INVALID_TRANSITION",
			fmt.Sprintf("Cannot cancel a %s schedule", s.Status))
	}

	s.Status = ScheduleStatusCancelled
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// UtilizationPercent returns how full the schedule is by weight
func (s *TrainSchedule) UtilizationPercent() decimal.Decimal {
	if s.CapacityWeight.IsZero() {
		return decimal.Zero
	}
	return s.ReservedWeight.Div(s.CapacityWeight).Mul(decimal.NewFromInt(100)).Round(1)
}
