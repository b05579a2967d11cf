package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	catalogapp "github.com/RaminduDJay/supply-chain-management/internal/application/catalog"
	"github.com/RaminduDJay/supply-chain-management/internal/interfaces/http/dto"
)

// ItemHandler handles catalog item HTTP requests
type ItemHandler struct {
	BaseHandler
	itemService *catalogapp.ItemService
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemService *catalogapp.ItemService) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
	}
}

// ItemResponse represents a catalog item in API responses
type ItemResponse struct {
	ID             uuid.UUID `json:"id"`
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	Category       string    `json:"category,omitempty"`
	Subcategory    string    `json:"subcategory,omitempty"`
	UnitPrice      string    `json:"unit_price"`
	UnitWeight     string    `json:"unit_weight"`
	UnitVolume     string    `json:"unit_volume"`
	Fragile        bool      `json:"fragile"`
	Hazardous      bool      `json:"hazardous"`
	StockThreshold int       `json:"stock_threshold"`
	Status         string    `json:"status"`
	ImageURL       string    `json:"image_url,omitempty"`
}

func newItemResponse(info catalogapp.ItemInfo) ItemResponse {
	return ItemResponse{
		ID:             info.ID,
		Code:           info.Code,
		Name:           info.Name,
		Description:    info.Description,
		Category:       info.Category,
		Subcategory:    info.Subcategory,
		UnitPrice:      info.UnitPrice.StringFixed(2),
		UnitWeight:     info.UnitWeight.String(),
		UnitVolume:     info.UnitVolume.String(),
		Fragile:        info.Fragile,
		Hazardous:      info.Hazardous,
		StockThreshold: info.StockThreshold,
		Status:         info.Status,
		ImageURL:       info.ImageURL,
	}
}

// CreateItemRequest represents the request body for creating an item
type CreateItemRequest struct {
	Code           string          `json:"code" binding:"required,max=50"`
	Name           string          `json:"name" binding:"required,max=200"`
	Description    string          `json:"description" binding:"max=2000"`
	Category       string          `json:"category" binding:"max=100"`
	Subcategory    string          `json:"subcategory" binding:"max=100"`
	UnitPrice      decimal.Decimal `json:"unit_price" binding:"required"`
	UnitWeight     decimal.Decimal `json:"unit_weight" binding:"required"`
	UnitVolume     decimal.Decimal `json:"unit_volume" binding:"required"`
	Fragile        bool            `json:"fragile"`
	Hazardous      bool            `json:"hazardous"`
	StockThreshold int             `json:"stock_threshold" binding:"omitempty,gte=0"`
	ImageURL       string          `json:"image_url" binding:"omitempty,url,max=500"`
}

// UpdateItemRequest represents the request body for updating an item
type UpdateItemRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"max=2000"`
	Category    string `json:"category" binding:"max=100"`
	Subcategory string `json:"subcategory" binding:"max=100"`
}

// SetItemHandlingRequest represents a handling profile change
type SetItemHandlingRequest struct {
	Fragile        bool `json:"fragile"`
	Hazardous      bool `json:"hazardous"`
	StockThreshold int  `json:"stock_threshold" binding:"gte=0"`
}

// SetItemPriceRequest represents a price change
type SetItemPriceRequest struct {
	UnitPrice decimal.Decimal `json:"unit_price" binding:"required"`
}

// SetItemDimensionsRequest represents a weight and volume change
type SetItemDimensionsRequest struct {
	UnitWeight decimal.Decimal `json:"unit_weight" binding:"required"`
	UnitVolume decimal.Decimal `json:"unit_volume" binding:"required"`
}

// ListItemsRequest represents query parameters for the catalog listing
type ListItemsRequest struct {
	dto.ListRequest
	Keyword  string `form:"keyword"`
	Category string `form:"category"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive discontinued"`
}

// Create creates a catalog item
func (h *ItemHandler) Create(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	info, err := h.itemService.CreateItem(c.Request.Context(), catalogapp.CreateItemInput{
		Code:           req.Code,
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		Subcategory:    req.Subcategory,
		UnitPrice:      req.UnitPrice,
		UnitWeight:     req.UnitWeight,
		UnitVolume:     req.UnitVolume,
		Fragile:        req.Fragile,
		Hazardous:      req.Hazardous,
		StockThreshold: req.StockThreshold,
		ImageURL:       req.ImageURL,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, newItemResponse(*info))
}

// List returns a page of catalog items
func (h *ItemHandler) List(c *gin.Context) {
	var req ListItemsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	req.Normalize()

	result, err := h.itemService.ListItems(c.Request.Context(), catalogapp.ListItemsInput{
		Keyword:  req.Keyword,
		Category: req.Category,
		Status:   req.Status,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	items := make([]ItemResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, newItemResponse(item))
	}

	h.SuccessWithMeta(c, items, result.Total, result.Page, result.PageSize)
}

// GetByID returns a single catalog item
func (h *ItemHandler) GetByID(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	info, err := h.itemService.GetItem(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newItemResponse(*info))
}

// GetByCode returns a single catalog item by its code
func (h *ItemHandler) GetByCode(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		h.BadRequest(c, "Item code is required")
		return
	}

	info, err := h.itemService.GetItemByCode(c.Request.Context(), code)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newItemResponse(*info))
}

// Update changes an item's descriptive fields
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	info, err := h.itemService.UpdateItem(c.Request.Context(), catalogapp.UpdateItemInput{
		ItemID:      id,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Subcategory: req.Subcategory,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newItemResponse(*info))
}

// SetPrice changes an item's unit price
func (h *ItemHandler) SetPrice(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req SetItemPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	info, err := h.itemService.SetItemPrice(c.Request.Context(), catalogapp.SetItemPriceInput{
		ItemID:    id,
		UnitPrice: req.UnitPrice,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newItemResponse(*info))
}

// SetHandling changes an item's handling flags and stock threshold
func (h *ItemHandler) SetHandling(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req SetItemHandlingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	info, err := h.itemService.SetItemHandling(c.Request.Context(), catalogapp.SetItemHandlingInput{
		ItemID:         id,
		Fragile:        req.Fragile,
		Hazardous:      req.Hazardous,
		StockThreshold: req.StockThreshold,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newItemResponse(*info))
}

// SetDimensions changes an item's shipping weight and volume
func (h *ItemHandler) SetDimensions(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req SetItemDimensionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	info, err := h.itemService.SetItemDimensions(c.Request.Context(), catalogapp.SetItemDimensionsInput{
		ItemID:     id,
		UnitWeight: req.UnitWeight,
		UnitVolume: req.UnitVolume,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newItemResponse(*info))
}

// Activate makes an item orderable
func (h *ItemHandler) Activate(c *gin.Context) {
	h.mutate(c, h.itemService.ActivateItem)
}

// Deactivate hides an item from the catalog
func (h *ItemHandler) Deactivate(c *gin.Context) {
	h.mutate(c, h.itemService.DeactivateItem)
}

// Discontinue permanently retires an item
func (h *ItemHandler) Discontinue(c *gin.Context) {
	h.mutate(c, h.itemService.DiscontinueItem)
}

func (h *ItemHandler) mutate(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) error) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := fn(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Updated"})
}
