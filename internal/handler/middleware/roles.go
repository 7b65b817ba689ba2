package middleware

import (
	"github.com/gin-gonic/gin"

	"edukamer/bootcamphub/internal/model"
	jwtpkg "edukamer/bootcamphub/pkg/jwt"
	"edukamer/bootcamphub/pkg/response"
)

// RequireRoles allows the request through only when the authenticated user's
// role is in the given set. Must be used after JWTAuth middleware.
func RequireRoles(roles ...model.Role) gin.HandlerFunc {
	allowed := make(map[model.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		claimsVal, exists := c.Get(ContextKeyUserClaims)
		if !exists {
			response.Unauthorized(c, "missing authentication")
			c.Abort()
			return
		}
		claims, ok := claimsVal.(*jwtpkg.Claims)
		if !ok {
			response.Unauthorized(c, "invalid claims")
			c.Abort()
			return
		}

		if _, ok := allowed[model.Role(claims.Role)]; !ok {
			response.Forbidden(c, "insufficient role")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireStaff restricts the route to admin and sales roles.
func RequireStaff() gin.HandlerFunc {
	return RequireRoles(model.RoleAdmin, model.RoleSalesAgent, model.RoleSalesRep, model.RoleSalesManager)
}
