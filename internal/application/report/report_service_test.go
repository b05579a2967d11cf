package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/report"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
)

type MockSalesReportRepository struct {
	mock.Mock
}

func (m *MockSalesReportRepository) Summary(ctx context.Context, from, to time.Time) (*report.SalesSummary, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.SalesSummary), args.Error(1)
}

func (m *MockSalesReportRepository) ByStore(ctx context.Context, from, to time.Time) ([]report.SalesByStore, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.SalesByStore), args.Error(1)
}

func (m *MockSalesReportRepository) TopItems(ctx context.Context, from, to time.Time, limit int) ([]report.SalesByItem, error) {
	args := m.Called(ctx, from, to, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.SalesByItem), args.Error(1)
}

func (m *MockSalesReportRepository) ByCustomerType(ctx context.Context, from, to time.Time) ([]report.SalesByCustomerType, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.SalesByCustomerType), args.Error(1)
}

func (m *MockSalesReportRepository) Quarterly(ctx context.Context, year int) ([]report.QuarterlySales, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.QuarterlySales), args.Error(1)
}

type MockInventoryReportRepository struct {
	mock.Mock
}

func (m *MockInventoryReportRepository) StockLevels(ctx context.Context, storeID *uuid.UUID) ([]report.StockLevel, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.StockLevel), args.Error(1)
}

func (m *MockInventoryReportRepository) LowStock(ctx context.Context, storeID *uuid.UUID) ([]report.StockLevel, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.StockLevel), args.Error(1)
}

func (m *MockInventoryReportRepository) Movements(ctx context.Context, storeID uuid.UUID, from, to time.Time) ([]report.MovementSummary, error) {
	args := m.Called(ctx, storeID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.MovementSummary), args.Error(1)
}

type MockTransportReportRepository struct {
	mock.Mock
}

func (m *MockTransportReportRepository) TrainUtilization(ctx context.Context, from, to time.Time) ([]report.TrainUtilization, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.TrainUtilization), args.Error(1)
}

func (m *MockTransportReportRepository) TruckRouteUsage(ctx context.Context, storeID *uuid.UUID, from, to time.Time) ([]report.TruckRouteUsage, error) {
	args := m.Called(ctx, storeID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.TruckRouteUsage), args.Error(1)
}

func (m *MockTransportReportRepository) StaffHours(ctx context.Context, storeID *uuid.UUID) ([]report.StaffHours, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.StaffHours), args.Error(1)
}

func newTestReportService() (*ReportService, *MockSalesReportRepository, *MockInventoryReportRepository, *MockTransportReportRepository) {
	salesRepo := new(MockSalesReportRepository)
	inventoryRepo := new(MockInventoryReportRepository)
	transportRepo := new(MockTransportReportRepository)
	service := NewReportService(salesRepo, inventoryRepo, transportRepo, zap.NewNop())
	return service, salesRepo, inventoryRepo, transportRepo
}

func validPeriod() PeriodFilter {
	return PeriodFilter{
		From: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC),
	}
}

func TestReportService_SalesSummary(t *testing.T) {
	service, salesRepo, _, _ := newTestReportService()

	period := validPeriod()
	expected := &report.SalesSummary{
		PeriodStart:  period.From,
		PeriodEnd:    period.To,
		OrderCount:   412,
		GrossRevenue: decimal.NewFromInt(1845000),
	}
	salesRepo.On("Summary", mock.Anything, period.From, period.To).Return(expected, nil)

	summary, err := service.SalesSummary(context.Background(), period)

	assert.NoError(t, err)
	assert.Equal(t, int64(412), summary.OrderCount)
}

func TestReportService_SalesSummary_InvertedPeriod(t *testing.T) {
	service, salesRepo, _, _ := newTestReportService()

	period := validPeriod()
	period.From, period.To = period.To, period.From

	_, err := service.SalesSummary(context.Background(), period)

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_PERIOD", domainErr.Code)
	salesRepo.AssertNotCalled(t, "Summary", mock.Anything, mock.Anything, mock.Anything)
}

func TestReportService_TopItems_DefaultsLimit(t *testing.T) {
	service, salesRepo, _, _ := newTestReportService()

	period := validPeriod()
	salesRepo.On("TopItems", mock.Anything, period.From, period.To, defaultTopN).
		Return([]report.SalesByItem{{ItemCode: "RICE-5KG", QuantitySold: 950}}, nil)

	items, err := service.TopItems(context.Background(), period, 0)

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	salesRepo.AssertExpectations(t)
}

func TestReportService_QuarterlySales_RejectsBadYear(t *testing.T) {
	service, _, _, _ := newTestReportService()

	_, err := service.QuarterlySales(context.Background(), 1987)

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_YEAR", domainErr.Code)
}

func TestReportService_LowStock_ScopedToStore(t *testing.T) {
	service, _, inventoryRepo, _ := newTestReportService()

	storeID := uuid.New()
	inventoryRepo.On("LowStock", mock.Anything, &storeID).
		Return([]report.StockLevel{{ItemCode: "FLOUR-1KG", Quantity: 4, ReorderLevel: 25, BelowReorder: true}}, nil)

	levels, err := service.LowStock(context.Background(), &storeID)

	assert.NoError(t, err)
	assert.Len(t, levels, 1)
	assert.True(t, levels[0].BelowReorder)
}

func TestReportService_TrainUtilization(t *testing.T) {
	service, _, _, transportRepo := newTestReportService()

	period := validPeriod()
	transportRepo.On("TrainUtilization", mock.Anything, period.From, period.To).
		Return([]report.TrainUtilization{{TrainName: "Udarata Menike", Utilization: decimal.NewFromFloat(72.5)}}, nil)

	rows, err := service.TrainUtilization(context.Background(), period)

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.True(t, rows[0].Utilization.Equal(decimal.NewFromFloat(72.5)))
}
