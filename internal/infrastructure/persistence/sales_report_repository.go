package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/ordering"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/report"
)

// revenueStatuses are the order statuses counted as realized or
// in-flight revenue. Cancelled and returned orders are excluded from
// revenue sums and reported as separate counts.
var revenueStatuses = []ordering.OrderStatus{
	ordering.OrderStatusConfirmed,
	ordering.OrderStatusAssignedTrain,
	ordering.OrderStatusInTransitRail,
	ordering.OrderStatusAtWarehouse,
	ordering.OrderStatusAssignedTruck,
	ordering.OrderStatusOutForDelivery,
	ordering.OrderStatusDelivered,
}

// GormSalesReportRepository implements report.SalesReportRepository using GORM
type GormSalesReportRepository struct {
	db *gorm.DB
}

// NewGormSalesReportRepository creates a new GormSalesReportRepository
func NewGormSalesReportRepository(db *gorm.DB) *GormSalesReportRepository {
	return &GormSalesReportRepository{db: db}
}

// Summary returns company-wide sales figures for the period
func (r *GormSalesReportRepository) Summary(ctx context.Context, from, to time.Time) (*report.SalesSummary, error) {
	type summaryResult struct {
		OrderCount     int64
		DeliveredCount int64
		CancelledCount int64
		ReturnedCount  int64
		GrossRevenue   decimal.Decimal
		TotalDiscount  decimal.Decimal
		ShippingIncome decimal.Decimal
	}

	var result summaryResult

	err := r.db.WithContext(ctx).Table("orders o").
		Select(`
			COUNT(o.id) as order_count,
			COUNT(o.id) FILTER (WHERE o.status = 'delivered') as delivered_count,
			COUNT(o.id) FILTER (WHERE o.status = 'cancelled') as cancelled_count,
			COUNT(o.id) FILTER (WHERE o.status = 'returned') as returned_count,
			COALESCE(SUM(o.subtotal) FILTER (WHERE o.status IN ?), 0) as gross_revenue,
			COALESCE(SUM(o.discount_amount) FILTER (WHERE o.status IN ?), 0) as total_discount,
			COALESCE(SUM(o.shipping_cost) FILTER (WHERE o.status IN ?), 0) as shipping_income
		`, revenueStatuses, revenueStatuses, revenueStatuses).
		Where("o.created_at BETWEEN ? AND ?", from, to).
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return &report.SalesSummary{
		PeriodStart:    from,
		PeriodEnd:      to,
		OrderCount:     result.OrderCount,
		DeliveredCount: result.DeliveredCount,
		CancelledCount: result.CancelledCount,
		ReturnedCount:  result.ReturnedCount,
		GrossRevenue:   result.GrossRevenue,
		TotalDiscount:  result.TotalDiscount,
		ShippingIncome: result.ShippingIncome,
		NetRevenue:     result.GrossRevenue.Sub(result.TotalDiscount).Add(result.ShippingIncome),
	}, nil
}

// ByStore breaks sales down per regional store
func (r *GormSalesReportRepository) ByStore(ctx context.Context, from, to time.Time) ([]report.SalesByStore, error) {
	type storeResult struct {
		StoreID    uuid.UUID
		StoreName  string
		City       string
		OrderCount int64
		NetRevenue decimal.Decimal
	}

	var results []storeResult

	err := r.db.WithContext(ctx).Table("orders o").
		Select(`
			o.store_id as store_id,
			s.name as store_name,
			s.city as city,
			COUNT(o.id) as order_count,
			COALESCE(SUM(o.total_amount), 0) as net_revenue
		`).
		Joins("JOIN stores s ON s.id = o.store_id").
		Where("o.created_at BETWEEN ? AND ?", from, to).
		Where("o.status IN ?", revenueStatuses).
		Group("o.store_id, s.name, s.city").
		Order("net_revenue DESC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	rows := make([]report.SalesByStore, len(results))
	for i, res := range results {
		rows[i] = report.SalesByStore{
			StoreID:    res.StoreID,
			StoreName:  res.StoreName,
			City:       res.City,
			OrderCount: res.OrderCount,
			NetRevenue: res.NetRevenue,
		}
	}
	return rows, nil
}

// TopItems ranks catalog items by quantity sold in the period
func (r *GormSalesReportRepository) TopItems(ctx context.Context, from, to time.Time, limit int) ([]report.SalesByItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	type itemResult struct {
		ItemID       uuid.UUID
		ItemCode     string
		ItemName     string
		QuantitySold int64
		NetRevenue   decimal.Decimal
	}

	var results []itemResult

	err := r.db.WithContext(ctx).Table("order_items oi").
		Select(`
			oi.item_id as item_id,
			oi.item_code as item_code,
			oi.item_name as item_name,
			COALESCE(SUM(oi.quantity), 0) as quantity_sold,
			COALESCE(SUM(oi.amount), 0) as net_revenue
		`).
		Joins("JOIN orders o ON o.id = oi.order_id").
		Where("o.created_at BETWEEN ? AND ?", from, to).
		Where("o.status IN ?", revenueStatuses).
		Group("oi.item_id, oi.item_code, oi.item_name").
		Order("quantity_sold DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	rows := make([]report.SalesByItem, len(results))
	for i, res := range results {
		rows[i] = report.SalesByItem{
			ItemID:       res.ItemID,
			ItemCode:     res.ItemCode,
			ItemName:     res.ItemName,
			QuantitySold: res.QuantitySold,
			NetRevenue:   res.NetRevenue,
		}
	}
	return rows, nil
}

// ByCustomerType breaks sales down per pricing tier
func (r *GormSalesReportRepository) ByCustomerType(ctx context.Context, from, to time.Time) ([]report.SalesByCustomerType, error) {
	type typeResult struct {
		CustomerType  string
		CustomerCount int64
		OrderCount    int64
		NetRevenue    decimal.Decimal
		TotalDiscount decimal.Decimal
	}

	var results []typeResult

	err := r.db.WithContext(ctx).Table("orders o").
		Select(`
			c.type as customer_type,
			COUNT(DISTINCT o.customer_id) as customer_count,
			COUNT(o.id) as order_count,
			COALESCE(SUM(o.total_amount), 0) as net_revenue,
			COALESCE(SUM(o.discount_amount), 0) as total_discount
		`).
		Joins("JOIN customers c ON c.id = o.customer_id").
		Where("o.created_at BETWEEN ? AND ?", from, to).
		Where("o.status IN ?", revenueStatuses).
		Group("c.type").
		Order("net_revenue DESC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	rows := make([]report.SalesByCustomerType, len(results))
	for i, res := range results {
		rows[i] = report.SalesByCustomerType{
			CustomerType:  res.CustomerType,
			CustomerCount: res.CustomerCount,
			OrderCount:    res.OrderCount,
			NetRevenue:    res.NetRevenue,
			TotalDiscount: res.TotalDiscount,
		}
	}
	return rows, nil
}

// Quarterly returns one row per quarter of the given year
func (r *GormSalesReportRepository) Quarterly(ctx context.Context, year int) ([]report.QuarterlySales, error) {
	type quarterResult struct {
		Quarter    int
		OrderCount int64
		NetRevenue decimal.Decimal
	}

	var results []quarterResult

	err := r.db.WithContext(ctx).Table("orders o").
		Select(`
			EXTRACT(QUARTER FROM o.created_at)::int as quarter,
			COUNT(o.id) as order_count,
			COALESCE(SUM(o.total_amount), 0) as net_revenue
		`).
		Where("EXTRACT(YEAR FROM o.created_at) = ?", year).
		Where("o.status IN ?", revenueStatuses).
		Group("quarter").
		Order("quarter ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	rows := make([]report.QuarterlySales, len(results))
	for i, res := range results {
		rows[i] = report.QuarterlySales{
			Year:       year,
			Quarter:    res.Quarter,
			OrderCount: res.OrderCount,
			NetRevenue: res.NetRevenue,
		}
	}
	return rows, nil
}

var _ report.SalesReportRepository = (*GormSalesReportRepository)(nil)
