package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/votetally/internal/domain/entity"
	"github.com/mikiasgoitom/votetally/internal/handler/http/dto"
	"github.com/mikiasgoitom/votetally/internal/handler/http/middleware"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// UsecaseErrorHandler maps domain errors to status codes.
func UsecaseErrorHandler(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrInvalidAction), errors.Is(err, entity.ErrInvalidInput):
		ErrorHandler(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, entity.ErrItemNotFound):
		ErrorHandler(c, http.StatusNotFound, "Item not found")
	case errors.Is(err, entity.ErrInvalidClientToken):
		ErrorHandler(c, http.StatusUnauthorized, "Invalid client token")
	case errors.Is(err, entity.ErrPersistence):
		ErrorHandler(c, http.StatusServiceUnavailable, "Storage temporarily unavailable, please retry")
	default:
		ErrorHandler(c, http.StatusInternalServerError, "Internal server error")
	}
}

// clientIDFrom reads the client id placed in the context by the client auth middleware.
func clientIDFrom(c *gin.Context) (string, bool) {
	clientID, exists := c.Get(middleware.ClientIDKey)
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "Client not authenticated")
		return "", false
	}
	clientIDStr, ok := clientID.(string)
	if !ok || clientIDStr == "" {
		ErrorHandler(c, http.StatusBadRequest, "Invalid client ID format in token")
		return "", false
	}
	return clientIDStr, true
}
