package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TrainUtilization reports how full each train run was
type TrainUtilization struct {
	ScheduleID     uuid.UUID       `json:"schedule_id"`
	TrainName      string          `json:"train_name"`
	StoreName      string          `json:"store_name"`
	DepartureAt    time.Time       `json:"departure_at"`
	OrderCount     int             `json:"order_count"`
	CapacityWeight decimal.Decimal `json:"capacity_weight"`
	ReservedWeight decimal.Decimal `json:"reserved_weight"`
	Utilization    decimal.Decimal `json:"utilization"` // Percent of weight capacity used
	Status         string          `json:"status"`
}

// TruckRouteUsage reports deliveries per route
type TruckRouteUsage struct {
	RouteID    uuid.UUID       `json:"route_id"`
	RouteName  string          `json:"route_name"`
	StoreName  string          `json:"store_name"`
	RunCount   int64           `json:"run_count"`
	OrderCount int64           `json:"order_count"`
	TotalHours decimal.Decimal `json:"total_hours"`
}

// StaffHours reports weekly hour consumption per crew member
type StaffHours struct {
	StaffID        uuid.UUID       `json:"staff_id"`
	Name           string          `json:"name"`
	Role           string          `json:"role"`
	StoreName      string          `json:"store_name"`
	WeeklyHours    decimal.Decimal `json:"weekly_hours"`
	MaxWeeklyHours decimal.Decimal `json:"max_weekly_hours"`
	RunCount       int64           `json:"run_count"`
}

// TransportReportRepository reads fleet and crew figures from the
// transport tables
type TransportReportRepository interface {
	TrainUtilization(ctx context.Context, from, to time.Time) ([]TrainUtilization, error)
	TruckRouteUsage(ctx context.Context, storeID *uuid.UUID, from, to time.Time) ([]TruckRouteUsage, error)
	StaffHours(ctx context.Context, storeID *uuid.UUID) ([]StaffHours, error)
}
