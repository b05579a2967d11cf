package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reportapp "github.com/RaminduDJay/supply-chain-management/internal/application/report"
	"github.com/RaminduDJay/supply-chain-management/internal/interfaces/http/middleware"
)

// ReportHandler handles reporting HTTP requests. Report rows are
// query-time aggregates and carry their own serialization tags, so
// they are returned as-is.
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// PeriodRequest bounds a report to a date window
type PeriodRequest struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}

func (h *ReportHandler) periodFilter(c *gin.Context) (reportapp.PeriodFilter, bool) {
	var req PeriodRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.ValidationError(c, err)
		return reportapp.PeriodFilter{}, false
	}

	from, _ := time.Parse("2006-01-02", req.From)
	to, _ := time.Parse("2006-01-02", req.To)
	return reportapp.PeriodFilter{
		From: from,
		To:   to.Add(24*time.Hour - time.Nanosecond),
	}, true
}

// storeScope resolves the optional store filter. Store managers are
// pinned to their own store.
func (h *ReportHandler) storeScope(c *gin.Context) (*uuid.UUID, bool) {
	if scoped := middleware.GetJWTStoreID(c); scoped != "" {
		id, err := uuid.Parse(scoped)
		if err == nil {
			return &id, true
		}
	}
	if raw := c.Query("store_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid store ID")
			return nil, false
		}
		return &id, true
	}
	return nil, true
}

// SalesSummary returns company-wide sales figures for a period
func (h *ReportHandler) SalesSummary(c *gin.Context) {
	filter, ok := h.periodFilter(c)
	if !ok {
		return
	}

	summary, err := h.reportService.SalesSummary(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// SalesByStore breaks period sales down per store
func (h *ReportHandler) SalesByStore(c *gin.Context) {
	filter, ok := h.periodFilter(c)
	if !ok {
		return
	}

	rows, err := h.reportService.SalesByStore(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}

// TopItems ranks catalog items by quantity sold in a period
func (h *ReportHandler) TopItems(c *gin.Context) {
	filter, ok := h.periodFilter(c)
	if !ok {
		return
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			h.BadRequest(c, "Invalid limit, expected 1-100")
			return
		}
		limit = parsed
	}

	rows, err := h.reportService.TopItems(c.Request.Context(), filter, limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}

// SalesByCustomerType breaks period sales down per pricing tier
func (h *ReportHandler) SalesByCustomerType(c *gin.Context) {
	filter, ok := h.periodFilter(c)
	if !ok {
		return
	}

	rows, err := h.reportService.SalesByCustomerType(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}

// QuarterlySales returns per-quarter figures for a year
func (h *ReportHandler) QuarterlySales(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2200 {
		h.BadRequest(c, "Invalid year")
		return
	}

	rows, err := h.reportService.QuarterlySales(c.Request.Context(), year)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}

// StockLevels returns current stock, optionally scoped to one store
func (h *ReportHandler) StockLevels(c *gin.Context) {
	storeID, ok := h.storeScope(c)
	if !ok {
		return
	}

	rows, err := h.reportService.StockLevels(c.Request.Context(), storeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}

// LowStock returns stock records under their reorder level
func (h *ReportHandler) LowStock(c *gin.Context) {
	storeID, ok := h.storeScope(c)
	if !ok {
		return
	}

	rows, err := h.reportService.LowStock(c.Request.Context(), storeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}

// StockMovements aggregates a store's stock movements over a period
func (h *ReportHandler) StockMovements(c *gin.Context) {
	storeID, ok := h.storeScope(c)
	if !ok {
		return
	}
	if storeID == nil {
		h.BadRequest(c, "store_id is required")
		return
	}
	filter, ok := h.periodFilter(c)
	if !ok {
		return
	}

	rows, err := h.reportService.StockMovements(c.Request.Context(), *storeID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}

// TrainUtilization reports capacity usage per train run in a period
func (h *ReportHandler) TrainUtilization(c *gin.Context) {
	filter, ok := h.periodFilter(c)
	if !ok {
		return
	}

	rows, err := h.reportService.TrainUtilization(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}

// TruckRouteUsage reports deliveries per route in a period
func (h *ReportHandler) TruckRouteUsage(c *gin.Context) {
	storeID, ok := h.storeScope(c)
	if !ok {
		return
	}
	filter, ok := h.periodFilter(c)
	if !ok {
		return
	}

	rows, err := h.reportService.TruckRouteUsage(c.Request.Context(), storeID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}

// StaffHours reports the week's hour consumption per crew member
func (h *ReportHandler) StaffHours(c *gin.Context) {
	storeID, ok := h.storeScope(c)
	if !ok {
		return
	}

	rows, err := h.reportService.StaffHours(c.Request.Context(), storeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}
