package middleware

import (
	"context"
	"strings"

	"cabtour/models"
	"cabtour/utils"

	"github.com/gin-gonic/gin"
)

// CompletionChecker reports a customer's profile completion. user.UserService satisfies it.
type CompletionChecker interface {
	GetCompletion(ctx context.Context, userID string) (models.ProfileCompletion, error)
}

// RequireCompleteProfile rejects customers whose name, phone or address is missing.
func RequireCompleteProfile(profiles CompletionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := MustPrincipal(c)
		if !ok {
			return
		}
		pc, err := profiles.GetCompletion(c.Request.Context(), p.ID)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		if !pc.Complete {
			utils.RespondError(c, &utils.AppError{
				Kind:    utils.KindValidation,
				Code:    "profile_incomplete",
				Field:   pc.Missing[0],
				Message: "complete your profile (" + strings.Join(pc.Missing, ", ") + ") before booking",
			})
			return
		}
		c.Next()
	}
}
