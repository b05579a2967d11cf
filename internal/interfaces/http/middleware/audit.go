package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	auditapp "github.com/RaminduDJay/supply-chain-management/internal/application/audit"
)

// AuditLog records every successful state-changing request on a route
// group to the audit trail. GET requests and failed calls are skipped;
// the resource name comes from the group, the action from the method
// and path.
func AuditLog(auditService *auditapp.Service, resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodOptions {
			return
		}
		status := c.Writer.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}

		input := auditapp.RecordInput{
			Username:  GetJWTUsername(c),
			Role:      GetJWTRole(c),
			Action:    c.Request.Method + " " + c.FullPath(),
			Resource:  resource,
			TargetID:  c.Param("id"),
			IP:        c.ClientIP(),
			RequestID: GetRequestID(c),
		}
		if userID, err := uuid.Parse(GetJWTUserID(c)); err == nil {
			input.UserID = &userID
		}

		// The write runs after the response; a client disconnect must not
		// cancel it and drop the record.
		auditService.Record(context.WithoutCancel(c.Request.Context()), input)
	}
}
