package transport

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/transport"
)

// TrainInfo contains train data exposed to API clients
type TrainInfo struct {
	ID             uuid.UUID
	Name           string
	CapacityWeight decimal.Decimal
	CapacityVolume decimal.Decimal
	Status         string
}

// NewTrainInfo maps a train aggregate to its API representation
func NewTrainInfo(train *transport.Train) TrainInfo {
	return TrainInfo{
		ID:             train.ID,
		Name:           train.Name,
		CapacityWeight: train.CapacityWeight,
		CapacityVolume: train.CapacityVolume,
		Status:         string(train.Status),
	}
}

// RegisterTrainInput contains data for adding a train to the fleet
type RegisterTrainInput struct {
	Name           string
	CapacityWeight decimal.Decimal
	CapacityVolume decimal.Decimal
}

// TruckInfo contains truck data exposed to API clients
type TruckInfo struct {
	ID             uuid.UUID
	StoreID        uuid.UUID
	PlateNumber    string
	CapacityWeight decimal.Decimal
	CapacityVolume decimal.Decimal
	Status         string
}

// NewTruckInfo maps a truck aggregate to its API representation
func NewTruckInfo(truck *transport.Truck) TruckInfo {
	return TruckInfo{
		ID:             truck.ID,
		StoreID:        truck.StoreID,
		PlateNumber:    truck.PlateNumber,
		CapacityWeight: truck.CapacityWeight,
		CapacityVolume: truck.CapacityVolume,
		Status:         string(truck.Status),
	}
}

// RegisterTruckInput contains data for registering a truck at a store
type RegisterTruckInput struct {
	StoreID        uuid.UUID
	PlateNumber    string
	CapacityWeight decimal.Decimal
	CapacityVolume decimal.Decimal
}

// RouteInfo contains route data exposed to API clients
type RouteInfo struct {
	ID             uuid.UUID
	StoreID        uuid.UUID
	Name           string
	Class          string
	DistanceKM     decimal.Decimal
	EstimatedHours decimal.Decimal
	Status         string
}

// NewRouteInfo maps a route aggregate to its API representation
func NewRouteInfo(route *transport.Route) RouteInfo {
	return RouteInfo{
		ID:             route.ID,
		StoreID:        route.StoreID,
		Name:           route.Name,
		Class:          string(route.Class),
		DistanceKM:     route.DistanceKM,
		EstimatedHours: route.EstimatedHours,
		Status:         string(route.Status),
	}
}

// CreateRouteInput contains data for opening a delivery route
type CreateRouteInput struct {
	StoreID        uuid.UUID
	Name           string
	Class          string
	DistanceKM     decimal.Decimal
	EstimatedHours decimal.Decimal
}

// UpdateRouteInput contains route fields a store manager may change
type UpdateRouteInput struct {
	RouteID        uuid.UUID
	Name           string
	Class          string
	DistanceKM     decimal.Decimal
	EstimatedHours decimal.Decimal
}

// StaffInfo contains transport staff data exposed to API clients
type StaffInfo struct {
	ID             uuid.UUID
	StoreID        uuid.UUID
	Name           string
	Role           string
	Phone          string
	WeeklyHours    decimal.Decimal
	RemainingHours decimal.Decimal
	Status         string
}

// NewStaffInfo maps a staff aggregate to its API representation
func NewStaffInfo(staff *transport.TransportStaff) StaffInfo {
	return StaffInfo{
		ID:             staff.ID,
		StoreID:        staff.StoreID,
		Name:           staff.Name,
		Role:           string(staff.Role),
		Phone:          staff.Phone,
		WeeklyHours:    staff.WeeklyHours,
		RemainingHours: staff.RemainingHours(),
		Status:         string(staff.Status),
	}
}

// HireStaffInput contains data for hiring a driver or assistant
type HireStaffInput struct {
	StoreID uuid.UUID
	Name    string
	Role    string
	Phone   string
}

// TrainScheduleInfo contains train schedule data exposed to API clients
type TrainScheduleInfo struct {
	ID                 uuid.UUID
	TrainID            uuid.UUID
	StoreID            uuid.UUID
	DepartureAt        time.Time
	CapacityWeight     decimal.Decimal
	CapacityVolume     decimal.Decimal
	CapacityItems      int
	ReservedWeight     decimal.Decimal
	ReservedVolume     decimal.Decimal
	ReservedItems      int
	OrderCount         int
	UtilizationPercent decimal.Decimal
	Status             string
	DepartedAt         *time.Time
	CompletedAt        *time.Time
}

// NewTrainScheduleInfo maps a train schedule to its API representation
func NewTrainScheduleInfo(schedule *transport.TrainSchedule) TrainScheduleInfo {
	return TrainScheduleInfo{
		ID:                 schedule.ID,
		TrainID:            schedule.TrainID,
		StoreID:            schedule.StoreID,
		DepartureAt:        schedule.DepartureAt,
		CapacityWeight:     schedule.CapacityWeight,
		CapacityVolume:     schedule.CapacityVolume,
		CapacityItems:      schedule.CapacityItems,
		ReservedWeight:     schedule.ReservedWeight,
		ReservedVolume:     schedule.ReservedVolume,
		ReservedItems:      schedule.ReservedItems,
		OrderCount:         schedule.OrderCount,
		UtilizationPercent: schedule.UtilizationPercent(),
		Status:             string(schedule.Status),
		DepartedAt:         schedule.DepartedAt,
		CompletedAt:        schedule.CompletedAt,
	}
}

// ScheduleTrainInput contains data for planning a train run
type ScheduleTrainInput struct {
	TrainID     uuid.UUID
	StoreID     uuid.UUID
	DepartureAt time.Time
}

// TruckScheduleInfo contains truck schedule data exposed to API clients
type TruckScheduleInfo struct {
	ID             uuid.UUID
	TruckID        uuid.UUID
	StoreID        uuid.UUID
	RouteID        uuid.UUID
	DriverID       uuid.UUID
	AssistantID    uuid.UUID
	DepartureAt    time.Time
	Hours          decimal.Decimal
	CapacityWeight decimal.Decimal
	CapacityVolume decimal.Decimal
	CapacityItems  int
	ReservedWeight decimal.Decimal
	ReservedVolume decimal.Decimal
	ReservedItems  int
	OrderCount     int
	Status         string
	DepartedAt     *time.Time
	CompletedAt    *time.Time
}

// NewTruckScheduleInfo maps a truck schedule to its API representation
func NewTruckScheduleInfo(schedule *transport.TruckSchedule) TruckScheduleInfo {
	return TruckScheduleInfo{
		ID:             schedule.ID,
		TruckID:        schedule.TruckID,
		StoreID:        schedule.StoreID,
		RouteID:        schedule.RouteID,
		DriverID:       schedule.DriverID,
		AssistantID:    schedule.AssistantID,
		DepartureAt:    schedule.DepartureAt,
		Hours:          schedule.Hours,
		CapacityWeight: schedule.CapacityWeight,
		CapacityVolume: schedule.CapacityVolume,
		CapacityItems:  schedule.CapacityItems,
		ReservedWeight: schedule.ReservedWeight,
		ReservedVolume: schedule.ReservedVolume,
		ReservedItems:  schedule.ReservedItems,
		OrderCount:     schedule.OrderCount,
		Status:         string(schedule.Status),
		DepartedAt:     schedule.DepartedAt,
		CompletedAt:    schedule.CompletedAt,
	}
}

// ScheduleTruckInput contains data for planning a truck run
type ScheduleTruckInput struct {
	TruckID     uuid.UUID
	RouteID     uuid.UUID
	DriverID    uuid.UUID
	AssistantID uuid.UUID
	DepartureAt time.Time
}
