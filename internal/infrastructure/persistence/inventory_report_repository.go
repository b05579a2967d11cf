package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/report"
)

// GormInventoryReportRepository implements report.InventoryReportRepository using GORM
type GormInventoryReportRepository struct {
	db *gorm.DB
}

// NewGormInventoryReportRepository creates a new GormInventoryReportRepository
func NewGormInventoryReportRepository(db *gorm.DB) *GormInventoryReportRepository {
	return &GormInventoryReportRepository{db: db}
}

type stockLevelResult struct {
	StoreID      uuid.UUID
	StoreName    string
	ItemID       uuid.UUID
	ItemCode     string
	ItemName     string
	Quantity     int
	ReorderLevel int
}

func (r *GormInventoryReportRepository) stockLevelQuery(ctx context.Context, storeID *uuid.UUID) *gorm.DB {
	query := r.db.WithContext(ctx).Table("store_inventories si").
		Select(`
			si.store_id as store_id,
			s.name as store_name,
			si.item_id as item_id,
			i.code as item_code,
			i.name as item_name,
			si.quantity as quantity,
			si.reorder_level as reorder_level
		`).
		Joins("JOIN stores s ON s.id = si.store_id").
		Joins("JOIN items i ON i.id = si.item_id")

	if storeID != nil {
		query = query.Where("si.store_id = ?", *storeID)
	}
	return query
}

func toStockLevels(results []stockLevelResult) []report.StockLevel {
	levels := make([]report.StockLevel, len(results))
	for i, res := range results {
		levels[i] = report.StockLevel{
			StoreID:      res.StoreID,
			StoreName:    res.StoreName,
			ItemID:       res.ItemID,
			ItemCode:     res.ItemCode,
			ItemName:     res.ItemName,
			Quantity:     res.Quantity,
			ReorderLevel: res.ReorderLevel,
			BelowReorder: res.ReorderLevel > 0 && res.Quantity < res.ReorderLevel,
		}
	}
	return levels
}

// StockLevels returns current stock, optionally scoped to one store
func (r *GormInventoryReportRepository) StockLevels(ctx context.Context, storeID *uuid.UUID) ([]report.StockLevel, error) {
	var results []stockLevelResult
	err := r.stockLevelQuery(ctx, storeID).
		Order("s.name ASC, i.name ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return toStockLevels(results), nil
}

// LowStock returns stock records under their reorder level
func (r *GormInventoryReportRepository) LowStock(ctx context.Context, storeID *uuid.UUID) ([]report.StockLevel, error) {
	var results []stockLevelResult
	err := r.stockLevelQuery(ctx, storeID).
		Where("si.reorder_level > 0 AND si.quantity < si.reorder_level").
		Order("s.name ASC, i.name ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return toStockLevels(results), nil
}

// Movements aggregates the movement log per item over a window
func (r *GormInventoryReportRepository) Movements(ctx context.Context, storeID uuid.UUID, from, to time.Time) ([]report.MovementSummary, error) {
	type movementResult struct {
		ItemID   uuid.UUID
		ItemCode string
		ItemName string
		Received int64
		Deducted int64
		Restored int64
		Adjusted int64
	}

	var results []movementResult

	err := r.db.WithContext(ctx).Table("stock_movements sm").
		Select(`
			sm.item_id as item_id,
			i.code as item_code,
			i.name as item_name,
			COALESCE(SUM(sm.quantity) FILTER (WHERE sm.type = 'receive'), 0) as received,
			COALESCE(SUM(ABS(sm.quantity)) FILTER (WHERE sm.type = 'deduct'), 0) as deducted,
			COALESCE(SUM(sm.quantity) FILTER (WHERE sm.type = 'restore'), 0) as restored,
			COALESCE(SUM(sm.quantity) FILTER (WHERE sm.type = 'adjust'), 0) as adjusted
		`).
		Joins("JOIN items i ON i.id = sm.item_id").
		Where("sm.store_id = ?", storeID).
		Where("sm.created_at BETWEEN ? AND ?", from, to).
		Group("sm.item_id, i.code, i.name").
		Order("item_name ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]report.MovementSummary, len(results))
	for i, res := range results {
		summaries[i] = report.MovementSummary{
			ItemID:   res.ItemID,
			ItemCode: res.ItemCode,
			ItemName: res.ItemName,
			Received: res.Received,
			Deducted: res.Deducted,
			Restored: res.Restored,
			Adjusted: res.Adjusted,
		}
	}
	return summaries, nil
}

var _ report.InventoryReportRepository = (*GormInventoryReportRepository)(nil)
