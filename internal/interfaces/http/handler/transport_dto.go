package handler

import (
	"time"

	transportapp "github.com/RaminduDJay/supply-chain-management/internal/application/transport"
)

// TrainResponse represents a train in API responses
type TrainResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	CapacityWeight string `json:"capacity_weight"`
	CapacityVolume string `json:"capacity_volume"`
	Status         string `json:"status"`
}

func newTrainResponse(info transportapp.TrainInfo) TrainResponse {
	return TrainResponse{
		ID:             info.ID.String(),
		Name:           info.Name,
		CapacityWeight: info.CapacityWeight.StringFixed(2),
		CapacityVolume: info.CapacityVolume.StringFixed(2),
		Status:         info.Status,
	}
}

// TruckResponse represents a truck in API responses
type TruckResponse struct {
	ID             string `json:"id"`
	StoreID        string `json:"store_id"`
	PlateNumber    string `json:"plate_number"`
	CapacityWeight string `json:"capacity_weight"`
	CapacityVolume string `json:"capacity_volume"`
	Status         string `json:"status"`
}

func newTruckResponse(info transportapp.TruckInfo) TruckResponse {
	return TruckResponse{
		ID:             info.ID.String(),
		StoreID:        info.StoreID.String(),
		PlateNumber:    info.PlateNumber,
		CapacityWeight: info.CapacityWeight.StringFixed(2),
		CapacityVolume: info.CapacityVolume.StringFixed(2),
		Status:         info.Status,
	}
}

// RouteResponse represents a delivery route in API responses
type RouteResponse struct {
	ID             string `json:"id"`
	StoreID        string `json:"store_id"`
	Name           string `json:"name"`
	Class          string `json:"class"`
	DistanceKM     string `json:"distance_km"`
	EstimatedHours string `json:"estimated_hours"`
	Status         string `json:"status"`
}

func newRouteResponse(info transportapp.RouteInfo) RouteResponse {
	return RouteResponse{
		ID:             info.ID.String(),
		StoreID:        info.StoreID.String(),
		Name:           info.Name,
		Class:          info.Class,
		DistanceKM:     info.DistanceKM.StringFixed(1),
		EstimatedHours: info.EstimatedHours.StringFixed(1),
		Status:         info.Status,
	}
}

// StaffResponse represents a transport staff member in API responses
type StaffResponse struct {
	ID             string `json:"id"`
	StoreID        string `json:"store_id"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	Phone          string `json:"phone,omitempty"`
	WeeklyHours    string `json:"weekly_hours"`
	RemainingHours string `json:"remaining_hours"`
	Status         string `json:"status"`
}

func newStaffResponse(info transportapp.StaffInfo) StaffResponse {
	return StaffResponse{
		ID:             info.ID.String(),
		StoreID:        info.StoreID.String(),
		Name:           info.Name,
		Role:           info.Role,
		Phone:          info.Phone,
		WeeklyHours:    info.WeeklyHours.StringFixed(1),
		RemainingHours: info.RemainingHours.StringFixed(1),
		Status:         info.Status,
	}
}

// TrainScheduleResponse represents a train run in API responses
type TrainScheduleResponse struct {
	ID                 string     `json:"id"`
	TrainID            string     `json:"train_id"`
	StoreID            string     `json:"store_id"`
	DepartureAt        time.Time  `json:"departure_at"`
	CapacityWeight     string     `json:"capacity_weight"`
	CapacityVolume     string     `json:"capacity_volume"`
	CapacityItems      int        `json:"capacity_items"`
	ReservedWeight     string     `json:"reserved_weight"`
	ReservedVolume     string     `json:"reserved_volume"`
	ReservedItems      int        `json:"reserved_items"`
	OrderCount         int        `json:"order_count"`
	UtilizationPercent string     `json:"utilization_percent"`
	Status             string     `json:"status"`
	DepartedAt         *time.Time `json:"departed_at,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
}

func newTrainScheduleResponse(info transportapp.TrainScheduleInfo) TrainScheduleResponse {
	return TrainScheduleResponse{
		ID:                 info.ID.String(),
		TrainID:            info.TrainID.String(),
		StoreID:            info.StoreID.String(),
		DepartureAt:        info.DepartureAt,
		CapacityWeight:     info.CapacityWeight.StringFixed(2),
		CapacityVolume:     info.CapacityVolume.StringFixed(2),
		CapacityItems:      info.CapacityItems,
		ReservedWeight:     info.ReservedWeight.StringFixed(2),
		ReservedVolume:     info.ReservedVolume.StringFixed(2),
		ReservedItems:      info.ReservedItems,
		OrderCount:         info.OrderCount,
		UtilizationPercent: info.UtilizationPercent.StringFixed(1),
		Status:             info.Status,
		DepartedAt:         info.DepartedAt,
		CompletedAt:        info.CompletedAt,
	}
}

// TruckScheduleResponse represents a truck run in API responses
type TruckScheduleResponse struct {
	ID             string     `json:"id"`
	TruckID        string     `json:"truck_id"`
	StoreID        string     `json:"store_id"`
	RouteID        string     `json:"route_id"`
	DriverID       string     `json:"driver_id"`
	AssistantID    string     `json:"assistant_id"`
	DepartureAt    time.Time  `json:"departure_at"`
	Hours          string     `json:"hours"`
	CapacityWeight string     `json:"capacity_weight"`
	CapacityVolume string     `json:"capacity_volume"`
	CapacityItems  int        `json:"capacity_items"`
	ReservedWeight string     `json:"reserved_weight"`
	ReservedVolume string     `json:"reserved_volume"`
	ReservedItems  int        `json:"reserved_items"`
	OrderCount     int        `json:"order_count"`
	Status         string     `json:"status"`
	DepartedAt     *time.Time `json:"departed_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

func newTruckScheduleResponse(info transportapp.TruckScheduleInfo) TruckScheduleResponse {
	return TruckScheduleResponse{
		ID:             info.ID.String(),
		TruckID:        info.TruckID.String(),
		StoreID:        info.StoreID.String(),
		RouteID:        info.RouteID.String(),
		DriverID:       info.DriverID.String(),
		AssistantID:    info.AssistantID.String(),
		DepartureAt:    info.DepartureAt,
		Hours:          info.Hours.StringFixed(1),
		CapacityWeight: info.CapacityWeight.StringFixed(2),
		CapacityVolume: info.CapacityVolume.StringFixed(2),
		CapacityItems:  info.CapacityItems,
		ReservedWeight: info.ReservedWeight.StringFixed(2),
		ReservedVolume: info.ReservedVolume.StringFixed(2),
		ReservedItems:  info.ReservedItems,
		OrderCount:     info.OrderCount,
		Status:         info.Status,
		DepartedAt:     info.DepartedAt,
		CompletedAt:    info.CompletedAt,
	}
}
