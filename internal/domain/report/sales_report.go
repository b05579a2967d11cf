package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesSummary is a read model for company-wide sales over a period
type SalesSummary struct {
	PeriodStart    time.Time       `json:"period_start"`
	PeriodEnd      time.Time       `json:"period_end"`
	OrderCount     int64           `json:"order_count"`
	DeliveredCount int64           `json:"delivered_count"`
	CancelledCount int64           `json:"cancelled_count"`
	ReturnedCount  int64           `json:"returned_count"`
	GrossRevenue   decimal.Decimal `json:"gross_revenue"`   // Sum of order subtotals
	TotalDiscount  decimal.Decimal `json:"total_discount"`  // Discounts given by customer type
	ShippingIncome decimal.Decimal `json:"shipping_income"` // Shipping charged to customers
	NetRevenue     decimal.Decimal `json:"net_revenue"`     // GrossRevenue - TotalDiscount + ShippingIncome
}

// SalesByStore breaks sales down per regional store
type SalesByStore struct {
	StoreID    uuid.UUID       `json:"store_id"`
	StoreName  string          `json:"store_name"`
	City       string          `json:"city"`
	OrderCount int64           `json:"order_count"`
	NetRevenue decimal.Decimal `json:"net_revenue"`
}

// SalesByItem ranks catalog items by quantity sold
type SalesByItem struct {
	ItemID       uuid.UUID       `json:"item_id"`
	ItemCode     string          `json:"item_code"`
	ItemName     string          `json:"item_name"`
	QuantitySold int64           `json:"quantity_sold"`
	NetRevenue   decimal.Decimal `json:"net_revenue"`
}

// SalesByCustomerType breaks sales down per pricing tier
type SalesByCustomerType struct {
	CustomerType  string          `json:"customer_type"`
	CustomerCount int64           `json:"customer_count"`
	OrderCount    int64           `json:"order_count"`
	NetRevenue    decimal.Decimal `json:"net_revenue"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
}

// QuarterlySales is one quarter's figures for the year view
type QuarterlySales struct {
	Year       int             `json:"year"`
	Quarter    int             `json:"quarter"`
	OrderCount int64           `json:"order_count"`
	NetRevenue decimal.Decimal `json:"net_revenue"`
}

// SalesReportRepository reads sales figures straight from the order
// tables. Reports are query-time aggregates, not stored state.
type SalesReportRepository interface {
	Summary(ctx context.Context, from, to time.Time) (*SalesSummary, error)
	ByStore(ctx context.Context, from, to time.Time) ([]SalesByStore, error)
	TopItems(ctx context.Context, from, to time.Time, limit int) ([]SalesByItem, error)
	ByCustomerType(ctx context.Context, from, to time.Time) ([]SalesByCustomerType, error)
	Quarterly(ctx context.Context, year int) ([]QuarterlySales, error)
}
