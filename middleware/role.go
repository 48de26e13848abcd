package middleware

import (
	"cabtour/utils"

	"github.com/gin-gonic/gin"
)

// RequireRole lets through principals holding one of roles. It must run
// after one of the JWT middlewares.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := MustPrincipal(c)
		if !ok {
			return
		}
		for _, r := range roles {
			if p.Role == r {
				c.Next()
				return
			}
		}
		utils.RespondError(c, utils.Forbidden("your role may not perform this action"))
	}
}
