package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/identity"
	"github.com/RaminduDJay/supply-chain-management/internal/interfaces/http/dto"
)

// RequireRoles allows the request through only when the authenticated
// role is one of the given roles. Must run after JWTAuth.
func RequireRoles(roles ...identity.Role) gin.HandlerFunc {
	allowed := make(map[identity.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role := identity.Role(GetJWTRole(c))
		if role == "" {
			abortForbidden(c, "Authentication required")
			return
		}
		if _, ok := allowed[role]; !ok {
			abortForbidden(c, "Role not permitted for this operation")
			return
		}
		c.Next()
	}
}

// RequireStaff restricts an endpoint to store and main managers
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !identity.Role(GetJWTRole(c)).IsStaff() {
			abortForbidden(c, "Staff access required")
			return
		}
		c.Next()
	}
}

// RequireMainManager restricts an endpoint to company-level managers
func RequireMainManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !identity.Role(GetJWTRole(c)).CanManageCompany() {
			abortForbidden(c, "Main manager access required")
			return
		}
		c.Next()
	}
}

// RequireCustomer restricts an endpoint to customer accounts
func RequireCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		if identity.Role(GetJWTRole(c)) != identity.RoleCustomer {
			abortForbidden(c, "Customer account required")
			return
		}
		c.Next()
	}
}

func abortForbidden(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusForbidden,
		dto.NewErrorResponseWithRequestID(dto.ErrCodeForbidden, message, GetRequestID(c)))
}
