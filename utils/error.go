package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err), zap.String("path", c.Request.URL.Path))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// RespondError renders err using its classification. Unclassified and
// dependency errors are logged in full and reported generically.
func RespondError(c *gin.Context, err error) {
	status := HTTPStatus(err)
	ae, ok := AsAppError(err)
	if !ok || ae.Kind == KindDependency {
		GetLogger().Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Error(err),
		)
		c.AbortWithStatusJSON(status, ErrorResponse{Message: "Internal Server Error"})
		return
	}
	GetLogger().Debug("request rejected",
		zap.String("path", c.Request.URL.Path),
		zap.String("kind", string(ae.Kind)),
		zap.String("message", ae.Message),
	)
	c.AbortWithStatusJSON(status, ErrorResponse{Message: ae.Message, Code: ae.Code, Field: ae.Field})
}
