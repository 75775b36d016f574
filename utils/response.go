package utils

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error body returned by every endpoint
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Error aborts the request with an error body
func Error(c *gin.Context, status int, message, code string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message, Code: code})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message, "BAD_REQUEST")
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message, "AUTH_FAILED")
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message, "NOT_FOUND")
}

func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message, "CONFLICT")
}

// ValidationFailed reports malformed input with 422
func ValidationFailed(c *gin.Context, message string) {
	Error(c, http.StatusUnprocessableEntity, message, "VALIDATION_FAILED")
}

func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message, "INTERNAL_ERROR")
}

// RateLimitResponse adds the seconds until the window resets
type RateLimitResponse struct {
	ErrorResponse
	RetryAfter float64 `json:"retry_after"`
}

func TooManyRequests(c *gin.Context, message string, retryAfter time.Duration) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, RateLimitResponse{
		ErrorResponse: ErrorResponse{Error: message, Code: "RATE_LIMITED"},
		RetryAfter:    retryAfter.Seconds(),
	})
}
