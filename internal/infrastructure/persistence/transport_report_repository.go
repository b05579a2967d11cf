package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/report"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/transport"
)

var oneHundred = decimal.NewFromInt(100)

// GormTransportReportRepository implements report.TransportReportRepository using GORM
type GormTransportReportRepository struct {
	db *gorm.DB
}

// NewGormTransportReportRepository creates a new GormTransportReportRepository
func NewGormTransportReportRepository(db *gorm.DB) *GormTransportReportRepository {
	return &GormTransportReportRepository{db: db}
}

// TrainUtilization reports how full each train run was in the window
func (r *GormTransportReportRepository) TrainUtilization(ctx context.Context, from, to time.Time) ([]report.TrainUtilization, error) {
	type utilizationResult struct {
		ScheduleID     uuid.UUID
		TrainName      string
		StoreName      string
		DepartureAt    time.Time
		OrderCount     int
		CapacityWeight decimal.Decimal
		ReservedWeight decimal.Decimal
		Status         string
	}

	var results []utilizationResult

	err := r.db.WithContext(ctx).Table("train_schedules ts").
		Select(`
			ts.id as schedule_id,
			t.name as train_name,
			s.name as store_name,
			ts.departure_at as departure_at,
			ts.order_count as order_count,
			ts.capacity_weight as capacity_weight,
			ts.reserved_weight as reserved_weight,
			ts.status as status
		`).
		Joins("JOIN trains t ON t.id = ts.train_id").
		Joins("JOIN stores s ON s.id = ts.store_id").
		Where("ts.departure_at BETWEEN ? AND ?", from, to).
		Order("ts.departure_at ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	rows := make([]report.TrainUtilization, len(results))
	for i, res := range results {
		var utilization decimal.Decimal
		if res.CapacityWeight.IsPositive() {
			utilization = res.ReservedWeight.Div(res.CapacityWeight).Mul(oneHundred).Round(2)
		}
		rows[i] = report.TrainUtilization{
			ScheduleID:     res.ScheduleID,
			TrainName:      res.TrainName,
			StoreName:      res.StoreName,
			DepartureAt:    res.DepartureAt,
			OrderCount:     res.OrderCount,
			CapacityWeight: res.CapacityWeight,
			ReservedWeight: res.ReservedWeight,
			Utilization:    utilization,
			Status:         res.Status,
		}
	}
	return rows, nil
}

// TruckRouteUsage reports run and delivery counts per route in the window
func (r *GormTransportReportRepository) TruckRouteUsage(ctx context.Context, storeID *uuid.UUID, from, to time.Time) ([]report.TruckRouteUsage, error) {
	type usageResult struct {
		RouteID    uuid.UUID
		RouteName  string
		StoreName  string
		RunCount   int64
		OrderCount int64
		TotalHours decimal.Decimal
	}

	var results []usageResult

	query := r.db.WithContext(ctx).Table("truck_schedules tks").
		Select(`
			tks.route_id as route_id,
			r.name as route_name,
			s.name as store_name,
			COUNT(tks.id) as run_count,
			COALESCE(SUM(tks.order_count), 0) as order_count,
			COALESCE(SUM(tks.hours), 0) as total_hours
		`).
		Joins("JOIN routes r ON r.id = tks.route_id").
		Joins("JOIN stores s ON s.id = tks.store_id").
		Where("tks.departure_at BETWEEN ? AND ?", from, to).
		Where("tks.status <> ?", transport.ScheduleStatusCancelled)

	if storeID != nil {
		query = query.Where("tks.store_id = ?", *storeID)
	}

	err := query.
		Group("tks.route_id, r.name, s.name").
		Order("run_count DESC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	rows := make([]report.TruckRouteUsage, len(results))
	for i, res := range results {
		rows[i] = report.TruckRouteUsage{
			RouteID:    res.RouteID,
			RouteName:  res.RouteName,
			StoreName:  res.StoreName,
			RunCount:   res.RunCount,
			OrderCount: res.OrderCount,
			TotalHours: res.TotalHours,
		}
	}
	return rows, nil
}

// StaffHours reports current weekly hour consumption per crew member.
// The cap comes from the role, it is not stored per row.
func (r *GormTransportReportRepository) StaffHours(ctx context.Context, storeID *uuid.UUID) ([]report.StaffHours, error) {
	type hoursResult struct {
		StaffID     uuid.UUID
		Name        string
		Role        string
		StoreName   string
		WeeklyHours decimal.Decimal
		RunCount    int64
	}

	var results []hoursResult

	query := r.db.WithContext(ctx).Table("transport_staff st").
		Select(`
			st.id as staff_id,
			st.name as name,
			st.role as role,
			s.name as store_name,
			st.weekly_hours as weekly_hours,
			COUNT(tks.id) as run_count
		`).
		Joins("JOIN stores s ON s.id = st.store_id").
		Joins("LEFT JOIN truck_schedules tks ON (tks.driver_id = st.id OR tks.assistant_id = st.id) AND tks.status <> 'cancelled'")

	if storeID != nil {
		query = query.Where("st.store_id = ?", *storeID)
	}

	err := query.
		Group("st.id, st.name, st.role, s.name, st.weekly_hours").
		Order("weekly_hours DESC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	rows := make([]report.StaffHours, len(results))
	for i, res := range results {
		rows[i] = report.StaffHours{
			StaffID:        res.StaffID,
			Name:           res.Name,
			Role:           res.Role,
			StoreName:      res.StoreName,
			WeeklyHours:    res.WeeklyHours,
			MaxWeeklyHours: transport.StaffRole(res.Role).MaxWeeklyHours(),
			RunCount:       res.RunCount,
		}
	}
	return rows, nil
}

var _ report.TransportReportRepository = (*GormTransportReportRepository)(nil)
