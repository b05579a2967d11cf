package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	auditapp "github.com/RaminduDJay/supply-chain-management/internal/application/audit"
)

// AuditHandler exposes the audit log to main managers
type AuditHandler struct {
	BaseHandler
	auditService *auditapp.Service
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditService *auditapp.Service) *AuditHandler {
	return &AuditHandler{
		auditService: auditService,
	}
}

// AuditEntryResponse represents one audit log entry
type AuditEntryResponse struct {
	ID        string    `json:"id"`
	UserID    *string   `json:"user_id,omitempty"`
	Username  string    `json:"username,omitempty"`
	Role      string    `json:"role,omitempty"`
	Action    string    `json:"action"`
	Resource  string    `json:"resource"`
	TargetID  string    `json:"target_id,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	IP        string    `json:"ip,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func newAuditEntryResponse(info auditapp.EntryInfo) AuditEntryResponse {
	resp := AuditEntryResponse{
		ID:        info.ID.String(),
		Username:  info.Username,
		Role:      info.Role,
		Action:    info.Action,
		Resource:  info.Resource,
		TargetID:  info.TargetID,
		Detail:    info.Detail,
		IP:        info.IP,
		RequestID: info.RequestID,
		CreatedAt: info.CreatedAt,
	}
	if info.UserID != nil {
		s := info.UserID.String()
		resp.UserID = &s
	}
	return resp
}

// ListByUserRequest queries a user's audit trail
type ListByUserRequest struct {
	From  string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To    string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=500"`
}

// ListByResourceRequest queries entries touching one resource
type ListByResourceRequest struct {
	Resource string `form:"resource" binding:"required,max=50"`
	TargetID string `form:"target_id" binding:"max=100"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=500"`
}

// ListByUser returns a user's audit entries, newest first. Defaults to
// the last 30 days.
func (h *AuditHandler) ListByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req ListByUserRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	from := time.Now().AddDate(0, 0, -30)
	to := time.Now()
	if req.From != "" {
		from, _ = time.Parse("2006-01-02", req.From)
	}
	if req.To != "" {
		parsed, _ := time.Parse("2006-01-02", req.To)
		to = parsed.Add(24*time.Hour - time.Nanosecond)
	}

	infos, err := h.auditService.ListByUser(c.Request.Context(), userID, from, to, req.Limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.entryList(c, infos)
}

// ListByResource returns entries touching a resource, newest first
func (h *AuditHandler) ListByResource(c *gin.Context) {
	var req ListByResourceRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	infos, err := h.auditService.ListByResource(c.Request.Context(), req.Resource, req.TargetID, req.Limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.entryList(c, infos)
}

func (h *AuditHandler) entryList(c *gin.Context, infos []auditapp.EntryInfo) {
	entries := make([]AuditEntryResponse, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, newAuditEntryResponse(info))
	}
	h.Success(c, entries)
}
