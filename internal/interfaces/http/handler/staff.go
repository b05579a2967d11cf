package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	transportapp "github.com/RaminduDJay/supply-chain-management/internal/application/transport"
)

// StaffHandler handles transport staff HTTP requests
type StaffHandler struct {
	BaseHandler
	staffService *transportapp.StaffService
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(staffService *transportapp.StaffService) *StaffHandler {
	return &StaffHandler{
		staffService: staffService,
	}
}

// HireStaffRequest hires a driver or driver assistant at a store
type HireStaffRequest struct {
	StoreID string `json:"store_id" binding:"required,uuid"`
	Name    string `json:"name" binding:"required,max=100"`
	Role    string `json:"role" binding:"required,oneof=driver assistant"`
	Phone   string `json:"phone" binding:"max=20"`
}

// Hire adds a driver or assistant to a store's transport staff
func (h *StaffHandler) Hire(c *gin.Context) {
	var req HireStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		h.BadRequest(c, "Invalid store ID")
		return
	}

	info, err := h.staffService.HireStaff(c.Request.Context(), transportapp.HireStaffInput{
		StoreID: storeID,
		Name:    req.Name,
		Role:    req.Role,
		Phone:   req.Phone,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, newStaffResponse(*info))
}

// GetByID returns a single staff member
func (h *StaffHandler) GetByID(c *gin.Context) {
	h.mutate(c, h.staffService.GetStaff)
}

// ListByStore returns a store's transport staff
func (h *StaffHandler) ListByStore(c *gin.Context) {
	storeID, err := uuid.Parse(c.Query("store_id"))
	if err != nil {
		h.BadRequest(c, "Invalid store ID")
		return
	}

	infos, err := h.staffService.ListStaffByStore(c.Request.Context(), storeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.staffList(c, infos)
}

// ListAvailable returns active staff with weekly hours remaining,
// optionally filtered by role.
func (h *StaffHandler) ListAvailable(c *gin.Context) {
	storeID, err := uuid.Parse(c.Query("store_id"))
	if err != nil {
		h.BadRequest(c, "Invalid store ID")
		return
	}
	role := c.Query("role")
	if role != "" && role != "driver" && role != "assistant" {
		h.BadRequest(c, "Invalid role, expected driver or assistant")
		return
	}

	infos, err := h.staffService.ListAvailableStaff(c.Request.Context(), storeID, role)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.staffList(c, infos)
}

// SetOnLeave marks a staff member as on leave
func (h *StaffHandler) SetOnLeave(c *gin.Context) {
	h.mutate(c, h.staffService.SetStaffOnLeave)
}

// ReturnFromLeave marks a staff member as back at work
func (h *StaffHandler) ReturnFromLeave(c *gin.Context) {
	h.mutate(c, h.staffService.ReturnStaffFromLeave)
}

// Deactivate removes a staff member from the active roster
func (h *StaffHandler) Deactivate(c *gin.Context) {
	h.mutate(c, h.staffService.DeactivateStaff)
}

// ResetWeeklyHours zeroes all staff weekly hour counters. The scheduler
// runs this automatically, the endpoint covers manual correction.
func (h *StaffHandler) ResetWeeklyHours(c *gin.Context) {
	affected, err := h.staffService.ResetWeeklyHours(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"reset_count": affected})
}

func (h *StaffHandler) staffList(c *gin.Context, infos []transportapp.StaffInfo) {
	staff := make([]StaffResponse, 0, len(infos))
	for _, info := range infos {
		staff = append(staff, newStaffResponse(info))
	}
	h.Success(c, staff)
}

func (h *StaffHandler) mutate(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) (*transportapp.StaffInfo, error)) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	info, err := fn(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, newStaffResponse(*info))
}
