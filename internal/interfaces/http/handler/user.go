package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	identityapp "github.com/RaminduDJay/supply-chain-management/internal/application/identity"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/identity"
	"github.com/RaminduDJay/supply-chain-management/internal/interfaces/http/dto"
)

// UserHandler handles staff account management HTTP requests
type UserHandler struct {
	BaseHandler
	userService *identityapp.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *identityapp.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateStaffRequest represents the request body for creating a staff account
type CreateStaffRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Password string `json:"password" binding:"required,min=8,max=128"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role" binding:"required,oneof=store_manager main_manager"`
	StoreID  string `json:"store_id" binding:"omitempty,uuid"`
}

// ListUsersRequest represents query parameters for listing users
type ListUsersRequest struct {
	dto.ListRequest
	Keyword string `form:"keyword"`
	Role    string `form:"role" binding:"omitempty,oneof=customer store_manager main_manager"`
	Status  string `form:"status" binding:"omitempty,oneof=active locked deactivated"`
}

// ResetPasswordRequest represents an administrative password reset
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8,max=128"`
}

// AssignStoreRequest assigns a store manager to a store
type AssignStoreRequest struct {
	StoreID string `json:"store_id" binding:"required,uuid"`
}

// Create creates a staff account
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	input := identityapp.CreateStaffInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Role:     identity.Role(req.Role),
	}
	if req.StoreID != "" {
		storeID, err := uuid.Parse(req.StoreID)
		if err != nil {
			h.BadRequest(c, "Invalid store ID")
			return
		}
		input.StoreID = &storeID
	}

	info, err := h.userService.CreateStaff(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, newUserResponse(*info))
}

// List returns a page of user accounts
func (h *UserHandler) List(c *gin.Context) {
	var req ListUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	req.Normalize()

	result, err := h.userService.ListUsers(c.Request.Context(), identityapp.ListUsersInput{
		Keyword:  req.Keyword,
		Role:     req.Role,
		Status:   req.Status,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	users := make([]UserResponse, 0, len(result.Users))
	for _, u := range result.Users {
		users = append(users, newUserResponse(u))
	}

	h.SuccessWithMeta(c, users, result.Total, result.Page, result.PageSize)
}

// GetByID returns a single user account
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	info, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newUserResponse(*info))
}

// Activate re-enables a deactivated account
func (h *UserHandler) Activate(c *gin.Context) {
	h.mutate(c, h.userService.ActivateUser)
}

// Deactivate disables an account without deleting it
func (h *UserHandler) Deactivate(c *gin.Context) {
	h.mutate(c, h.userService.DeactivateUser)
}

// Unlock clears a login-failure lockout
func (h *UserHandler) Unlock(c *gin.Context) {
	h.mutate(c, h.userService.UnlockUser)
}

// ResetPassword sets a temporary password the owner must change
func (h *UserHandler) ResetPassword(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	err := h.userService.ResetPassword(c.Request.Context(), identityapp.ResetPasswordInput{
		UserID:      id,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Password reset successfully"})
}

// AssignStore binds a store manager to the store they run
func (h *UserHandler) AssignStore(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req AssignStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		h.BadRequest(c, "Invalid store ID")
		return
	}

	if err := h.userService.AssignStore(c.Request.Context(), id, storeID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Store assigned"})
}

// Delete removes an account
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

func (h *UserHandler) mutate(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) error) {
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
