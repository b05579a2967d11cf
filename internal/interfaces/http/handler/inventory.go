package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	inventoryapp "github.com/RaminduDJay/supply-chain-management/internal/application/inventory"
	"github.com/RaminduDJay/supply-chain-management/internal/interfaces/http/middleware"
)

// InventoryHandler handles store stock HTTP requests
type InventoryHandler struct {
	BaseHandler
	inventoryService *inventoryapp.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *inventoryapp.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

// StockResponse represents one store-item stock record
type StockResponse struct {
	ID           string `json:"id"`
	StoreID      string `json:"store_id"`
	ItemID       string `json:"item_id"`
	Quantity     int    `json:"quantity"`
	ReorderLevel int    `json:"reorder_level"`
	BelowReorder bool   `json:"below_reorder"`
}

func newStockResponse(info inventoryapp.StockInfo) StockResponse {
	return StockResponse{
		ID:           info.ID.String(),
		StoreID:      info.StoreID.String(),
		ItemID:       info.ItemID.String(),
		Quantity:     info.Quantity,
		ReorderLevel: info.ReorderLevel,
		BelowReorder: info.BelowReorder,
	}
}

// MovementResponse represents one stock movement log entry
type MovementResponse struct {
	ID            string    `json:"id"`
	StoreID       string    `json:"store_id"`
	ItemID        string    `json:"item_id"`
	Type          string    `json:"type"`
	Quantity      int       `json:"quantity"`
	QuantityAfter int       `json:"quantity_after"`
	Reference     string    `json:"reference,omitempty"`
	ActorID       *string   `json:"actor_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func newMovementResponse(info inventoryapp.MovementInfo) MovementResponse {
	resp := MovementResponse{
		ID:            info.ID.String(),
		StoreID:       info.StoreID.String(),
		ItemID:        info.ItemID.String(),
		Type:          info.Type,
		Quantity:      info.Quantity,
		QuantityAfter: info.QuantityAfter,
		Reference:     info.Reference,
		CreatedAt:     info.CreatedAt,
	}
	if info.ActorID != nil {
		s := info.ActorID.String()
		resp.ActorID = &s
	}
	return resp
}

// ReceiveStockRequest records goods arriving at a store
type ReceiveStockRequest struct {
	ItemID    string `json:"item_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Reference string `json:"reference" binding:"max=100"`
}

// AdjustStockRequest corrects the on-hand quantity after a stock count
type AdjustStockRequest struct {
	ItemID         string `json:"item_id" binding:"required,uuid"`
	ActualQuantity int    `json:"actual_quantity" binding:"min=0"`
	Reason         string `json:"reason" binding:"required,max=200"`
}

// SetReorderLevelRequest changes the low-stock threshold
type SetReorderLevelRequest struct {
	ItemID       string `json:"item_id" binding:"required,uuid"`
	ReorderLevel int    `json:"reorder_level" binding:"min=0"`
}

// ListMovementsRequest represents a movement log query
type ListMovementsRequest struct {
	ItemID string `form:"item_id" binding:"omitempty,uuid"`
	From   string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To     string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=500"`
}

// Receive records a stock delivery into a store
func (h *InventoryHandler) Receive(c *gin.Context) {
	storeID, ok := h.storeIDParam(c)
	if !ok {
		return
	}

	var req ReceiveStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	info, err := h.inventoryService.ReceiveStock(c.Request.Context(), inventoryapp.ReceiveStockInput{
		StoreID:   storeID,
		ItemID:    itemID,
		Quantity:  req.Quantity,
		Reference: req.Reference,
		ActorID:   h.actorID(c),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newStockResponse(*info))
}

// Adjust corrects the on-hand quantity after a stock count
func (h *InventoryHandler) Adjust(c *gin.Context) {
	storeID, ok := h.storeIDParam(c)
	if !ok {
		return
	}

	var req AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	info, err := h.inventoryService.AdjustStock(c.Request.Context(), inventoryapp.AdjustStockInput{
		StoreID:        storeID,
		ItemID:         itemID,
		ActualQuantity: req.ActualQuantity,
		Reason:         req.Reason,
		ActorID:        h.actorID(c),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newStockResponse(*info))
}

// SetReorderLevel changes the low-stock threshold for a store item
func (h *InventoryHandler) SetReorderLevel(c *gin.Context) {
	storeID, ok := h.storeIDParam(c)
	if !ok {
		return
	}

	var req SetReorderLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	info, err := h.inventoryService.SetReorderLevel(c.Request.Context(), inventoryapp.SetReorderLevelInput{
		StoreID:      storeID,
		ItemID:       itemID,
		ReorderLevel: req.ReorderLevel,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newStockResponse(*info))
}

// GetStock returns one store-item stock record
func (h *InventoryHandler) GetStock(c *gin.Context) {
	storeID, ok := h.storeIDParam(c)
	if !ok {
		return
	}
	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	info, err := h.inventoryService.GetStock(c.Request.Context(), storeID, itemID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newStockResponse(*info))
}

// ListByStore returns all stock records for a store
func (h *InventoryHandler) ListByStore(c *gin.Context) {
	storeID, ok := h.storeIDParam(c)
	if !ok {
		return
	}

	h.listStock(c, func(ctx context.Context) ([]inventoryapp.StockInfo, error) {
		return h.inventoryService.ListByStore(ctx, storeID)
	})
}

// ListLowStock returns stock records at or below their reorder level.
// Main managers see all stores, store managers only their own.
func (h *InventoryHandler) ListLowStock(c *gin.Context) {
	var storeID *uuid.UUID
	if raw := c.Query("store_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid store ID")
			return
		}
		storeID = &id
	}
	if scoped := middleware.GetJWTStoreID(c); scoped != "" {
		id, err := uuid.Parse(scoped)
		if err == nil {
			storeID = &id
		}
	}

	h.listStock(c, func(ctx context.Context) ([]inventoryapp.StockInfo, error) {
		return h.inventoryService.ListLowStock(ctx, storeID)
	})
}

func (h *InventoryHandler) listStock(c *gin.Context, fetch func(context.Context) ([]inventoryapp.StockInfo, error)) {
	infos, err := fetch(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	stocks := make([]StockResponse, 0, len(infos))
	for _, info := range infos {
		stocks = append(stocks, newStockResponse(info))
	}
	h.Success(c, stocks)
}

// ListMovements returns the stock movement log for a store
func (h *InventoryHandler) ListMovements(c *gin.Context) {
	storeID, ok := h.storeIDParam(c)
	if !ok {
		return
	}

	var req ListMovementsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	input := inventoryapp.ListMovementsInput{
		StoreID: &storeID,
		Limit:   req.Limit,
	}
	if req.ItemID != "" {
		itemID, err := uuid.Parse(req.ItemID)
		if err != nil {
			h.BadRequest(c, "Invalid item ID")
			return
		}
		input.ItemID = &itemID
	}
	if req.From != "" {
		input.From, _ = time.Parse("2006-01-02", req.From)
	}
	if req.To != "" {
		to, _ := time.Parse("2006-01-02", req.To)
		input.To = to.Add(24*time.Hour - time.Nanosecond)
	}

	infos, err := h.inventoryService.ListMovements(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	movements := make([]MovementResponse, 0, len(infos))
	for _, info := range infos {
		movements = append(movements, newMovementResponse(info))
	}
	h.Success(c, movements)
}

// storeIDParam resolves the store scope for the request. Store managers
// are pinned to their own store regardless of the path parameter.
func (h *InventoryHandler) storeIDParam(c *gin.Context) (uuid.UUID, bool) {
	if scoped := middleware.GetJWTStoreID(c); scoped != "" {
		id, err := uuid.Parse(scoped)
		if err == nil {
			return id, true
		}
	}
	id, err := uuid.Parse(c.Param("store_id"))
	if err != nil {
		h.BadRequest(c, "Invalid store ID")
		return uuid.Nil, false
	}
	return id, true
}
