package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body every error path writes.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler recovers panics anywhere below it in the chain and converts
// them into a JSON 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				GetLogger().Error("unhandled panic", zap.Any("error", rec))
				JSONError(c, http.StatusInternalServerError, "Internal Server Error",
					"An unexpected error occurred. Please try again later.")
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError writes a standardized error body.
func JSONError(c *gin.Context, status int, message, details string) {
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}
