package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"cabtour/database/repository"
	"cabtour/models"
	"cabtour/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PrincipalKey is the gin context key holding the authenticated models.Principal.
const PrincipalKey = "principal"

// TokenVerifier checks bearer tokens. auth.AuthService satisfies it.
type TokenVerifier interface {
	VerifyCustomer(token string) (models.Principal, error)
	VerifyAdmin(token string) (models.Principal, error)
}

// AccountLookup resolves the customer behind a token.
type AccountLookup interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	return token, token != ""
}

// JWTAuthCustomerMiddleware admits customer tokens whose account still
// exists and is active. users may be nil to skip the account lookup.
func JWTAuthCustomerMiddleware(verifier TokenVerifier, users AccountLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			utils.RespondError(c, utils.Unauthorized("Missing or invalid Authorization header"))
			return
		}
		principal, err := verifier.VerifyCustomer(token)
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		if users != nil {
			usr, err := users.GetByID(c.Request.Context(), principal.ID)
			switch {
			case errors.Is(err, repository.ErrNotFound):
				utils.RespondError(c, utils.Unauthorized("account no longer exists"))
				return
			case err != nil:
				utils.RespondError(c, utils.Dependency("failed to load account", err))
				return
			case !usr.IsActive:
				utils.RespondError(c, utils.Forbidden("account is disabled"))
				return
			}
		}

		c.Set(PrincipalKey, principal)
		c.Next()
	}
}

// JWTAuthAdminMiddleware admits admin tokens only.
func JWTAuthAdminMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			utils.RespondError(c, utils.Unauthorized("Missing or invalid Authorization header"))
			return
		}
		principal, err := verifier.VerifyAdmin(token)
		if err != nil {
			zap.L().Warn("Rejected admin token", zap.String("ip", getClientIP(c)), zap.Error(err))
			utils.RespondError(c, err)
			return
		}
		c.Set(PrincipalKey, principal)
		c.Next()
	}
}

// CurrentPrincipal returns the principal set by the auth middleware.
func CurrentPrincipal(c *gin.Context) (models.Principal, bool) {
	v, ok := c.Get(PrincipalKey)
	if !ok {
		return models.Principal{}, false
	}
	p, ok := v.(models.Principal)
	return p, ok
}

// MustPrincipal is CurrentPrincipal for handlers mounted behind an auth
// middleware. It writes a 401 and returns false when none is present.
func MustPrincipal(c *gin.Context) (models.Principal, bool) {
	p, ok := CurrentPrincipal(c)
	if !ok || p.ID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Insufficient authorization"})
		return models.Principal{}, false
	}
	return p, true
}
