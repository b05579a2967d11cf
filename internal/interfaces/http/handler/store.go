package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	inventoryapp "github.com/RaminduDJay/supply-chain-management/internal/application/inventory"
)

// StoreHandler handles store management HTTP requests
type StoreHandler struct {
	BaseHandler
	storeService *inventoryapp.StoreService
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(storeService *inventoryapp.StoreService) *StoreHandler {
	return &StoreHandler{
		storeService: storeService,
	}
}

// StoreResponse represents a store in API responses
type StoreResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Address   string  `json:"address"`
	Phone     string  `json:"phone,omitempty"`
	RailKM    string  `json:"rail_km"`
	Status    string  `json:"status"`
	ManagerID *string `json:"manager_id,omitempty"`
}

func newStoreResponse(info inventoryapp.StoreInfo) StoreResponse {
	resp := StoreResponse{
		ID:      info.ID.String(),
		Name:    info.Name,
		City:    info.City,
		Address: info.Address,
		Phone:   info.Phone,
		RailKM:  info.RailKM.StringFixed(1),
		Status:  info.Status,
	}
	if info.ManagerID != nil {
		s := info.ManagerID.String()
		resp.ManagerID = &s
	}
	return resp
}

// CreateStoreRequest represents a store creation request
type CreateStoreRequest struct {
	Name    string          `json:"name" binding:"required,max=100"`
	City    string          `json:"city" binding:"required,max=100"`
	Address string          `json:"address" binding:"required,max=200"`
	Phone   string          `json:"phone" binding:"max=20"`
	RailKM  decimal.Decimal `json:"rail_km" binding:"required"`
}

// UpdateStoreRequest represents a store update request
type UpdateStoreRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Address string `json:"address" binding:"required,max=200"`
	Phone   string `json:"phone" binding:"max=20"`
}

// AssignManagerRequest assigns a store manager to a store
type AssignManagerRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

// Create opens a new store
func (h *StoreHandler) Create(c *gin.Context) {
	var req CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	info, err := h.storeService.CreateStore(c.Request.Context(), inventoryapp.CreateStoreInput{
		Name:    req.Name,
		City:    req.City,
		Address: req.Address,
		Phone:   req.Phone,
		RailKM:  req.RailKM,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, newStoreResponse(*info))
}

// List returns all stores
func (h *StoreHandler) List(c *gin.Context) {
	infos, err := h.storeService.ListStores(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	stores := make([]StoreResponse, 0, len(infos))
	for _, info := range infos {
		stores = append(stores, newStoreResponse(info))
	}
	h.Success(c, stores)
}

// GetByID returns a single store
func (h *StoreHandler) GetByID(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	info, err := h.storeService.GetStore(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newStoreResponse(*info))
}

// Update changes a store's contact details
func (h *StoreHandler) Update(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	info, err := h.storeService.UpdateStore(c.Request.Context(), inventoryapp.UpdateStoreInput{
		StoreID: id,
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newStoreResponse(*info))
}

// AssignManager puts a store manager in charge of a store
func (h *StoreHandler) AssignManager(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req AssignManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	info, err := h.storeService.AssignManager(c.Request.Context(), id, userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newStoreResponse(*info))
}

// Activate reopens a store
func (h *StoreHandler) Activate(c *gin.Context) {
	h.mutate(c, h.storeService.ActivateStore)
}

// Deactivate closes a store
func (h *StoreHandler) Deactivate(c *gin.Context) {
	h.mutate(c, h.storeService.DeactivateStore)
}

func (h *StoreHandler) mutate(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) (*inventoryapp.StoreInfo, error)) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	info, err := fn(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newStoreResponse(*info))
}
