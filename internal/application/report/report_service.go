package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/report"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
)

const defaultTopN = 10

// ReportService serves the management reports. Reports are read
// straight from the transactional tables at query time, there is no
// separate reporting store.
type ReportService struct {
	salesRepo     report.SalesReportRepository
	inventoryRepo report.InventoryReportRepository
	transportRepo report.TransportReportRepository
	logger        *zap.Logger
}

// NewReportService creates a new report service
func NewReportService(
	salesRepo report.SalesReportRepository,
	inventoryRepo report.InventoryReportRepository,
	transportRepo report.TransportReportRepository,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		salesRepo:     salesRepo,
		inventoryRepo: inventoryRepo,
		transportRepo: transportRepo,
		logger:        logger,
	}
}

// PeriodFilter bounds a report to a time window
type PeriodFilter struct {
	From time.Time
	To   time.Time
}

func (f PeriodFilter) validate() error {
	if f.From.IsZero() || f.To.IsZero() {
		return shared.NewDomainError("INVALID_PERIOD", "Report period is required")
	}
	if !f.To.After(f.From) {
		return shared.NewDomainError("INVALID_PERIOD", "Period end must be after period start")
	}
	return nil
}

// SalesSummary returns company-wide sales figures for the period
func (s *ReportService) SalesSummary(ctx context.Context, filter PeriodFilter) (*report.SalesSummary, error) {
	if err := filter.validate(); err != nil {
		return nil, err
	}
	return s.salesRepo.Summary(ctx, filter.From, filter.To)
}

// SalesByStore breaks the period's sales down per store
func (s *ReportService) SalesByStore(ctx context.Context, filter PeriodFilter) ([]report.SalesByStore, error) {
	if err := filter.validate(); err != nil {
		return nil, err
	}
	return s.salesRepo.ByStore(ctx, filter.From, filter.To)
}

// TopItems ranks items by quantity sold over the period
func (s *ReportService) TopItems(ctx context.Context, filter PeriodFilter, limit int) ([]report.SalesByItem, error) {
	if err := filter.validate(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultTopN
	}
	return s.salesRepo.TopItems(ctx, filter.From, filter.To, limit)
}

// SalesByCustomerType breaks the period's sales down per pricing tier
func (s *ReportService) SalesByCustomerType(ctx context.Context, filter PeriodFilter) ([]report.SalesByCustomerType, error) {
	if err := filter.validate(); err != nil {
		return nil, err
	}
	return s.salesRepo.ByCustomerType(ctx, filter.From, filter.To)
}

// QuarterlySales returns the four quarters of a year
func (s *ReportService) QuarterlySales(ctx context.Context, year int) ([]report.QuarterlySales, error) {
	if year < 2000 || year > time.Now().Year()+1 {
		return nil, shared.NewDomainError("INVALID_YEAR", "Year is out of range")
	}
	return s.salesRepo.Quarterly(ctx, year)
}

// StockLevels returns current stock, company-wide or for one store
func (s *ReportService) StockLevels(ctx context.Context, storeID *uuid.UUID) ([]report.StockLevel, error) {
	return s.inventoryRepo.StockLevels(ctx, storeID)
}

// LowStock returns stock records under their reorder level
func (s *ReportService) LowStock(ctx context.Context, storeID *uuid.UUID) ([]report.StockLevel, error) {
	return s.inventoryRepo.LowStock(ctx, storeID)
}

// StockMovements aggregates a store's movement log per item
func (s *ReportService) StockMovements(ctx context.Context, storeID uuid.UUID, filter PeriodFilter) ([]report.MovementSummary, error) {
	if err := filter.validate(); err != nil {
		return nil, err
	}
	return s.inventoryRepo.Movements(ctx, storeID, filter.From, filter.To)
}

// TrainUtilization reports how full each train run was over the period
func (s *ReportService) TrainUtilization(ctx context.Context, filter PeriodFilter) ([]report.TrainUtilization, error) {
	if err := filter.validate(); err != nil {
		return nil, err
	}
	return s.transportRepo.TrainUtilization(ctx, filter.From, filter.To)
}

// TruckRouteUsage reports runs and deliveries per route over the period
func (s *ReportService) TruckRouteUsage(ctx context.Context, storeID *uuid.UUID, filter PeriodFilter) ([]report.TruckRouteUsage, error) {
	if err := filter.validate(); err != nil {
		return nil, err
	}
	return s.transportRepo.TruckRouteUsage(ctx, storeID, filter.From, filter.To)
}

// StaffHours reports weekly hour consumption per crew member
func (s *ReportService) StaffHours(ctx context.Context, storeID *uuid.UUID) ([]report.StaffHours, error) {
	return s.transportRepo.StaffHours(ctx, storeID)
}
