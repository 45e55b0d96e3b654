// File: internal/common/response.go
package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SuccessResponse wraps successful API responses.
type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// MessageResponse is the bare {"message": ...} body used by the catalog API.
type MessageResponse struct {
	Message string `json:"message"`
}

// RespondWithError sends a JSON error response.
func RespondWithError(c *gin.Context, err error) {
	apiErr, ok := IsAPIError(err)
	if !ok {
		LoggerFromContext(c, zap.NewNop()).Error("Unhandled internal error being wrapped", zap.Error(err))
		apiErr = ErrInternalServer.WithDetails(err.Error())
	}

	c.AbortWithStatusJSON(apiErr.StatusCode, apiErr)
}

// RespondMessage aborts with a bare message body.
func RespondMessage(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, MessageResponse{Message: message})
}

// RespondSuccess sends a JSON success response.
func RespondSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	response := SuccessResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	}
	c.JSON(statusCode, response)
}

// RespondOK sends a 200 OK response.
func RespondOK(c *gin.Context, message string, data interface{}) {
	RespondSuccess(c, http.StatusOK, message, data)
}

// RespondAccepted sends a 202 Accepted response.
func RespondAccepted(c *gin.Context, message string, data interface{}) {
	RespondSuccess(c, http.StatusAccepted, message, data)
}
