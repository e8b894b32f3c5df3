package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope wraps all API responses in a consistent structure
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// ErrorInfo contains error details for failed responses
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Meta carries list metadata
type Meta struct {
	Total int `json:"total"`
}

// OK sends a successful response with data
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    data,
	})
}

// OKWithMeta sends a successful response with data and list metadata
func OKWithMeta(c *gin.Context, data interface{}, meta *Meta) {
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

// Created sends a 201 response for successfully created resources
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{
		Success: true,
		Data:    data,
	})
}

// Message sends a success response with just a message
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    gin.H{"message": message},
	})
}

func errorResponse(c *gin.Context, status int, code, message string) {
	c.JSON(status, Envelope{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	})
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	errorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "unauthorized"
	}
	errorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", message)
}

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, message string) {
	errorResponse(c, http.StatusForbidden, "FORBIDDEN", message)
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "resource not found"
	}
	errorResponse(c, http.StatusNotFound, "NOT_FOUND", message)
}

// StoreError sends a 500 response carrying the storage collaborator's
// message. Store failures surface as-is and are never retried here.
func StoreError(c *gin.Context, err error) {
	errorResponse(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "internal server error"
	}
	errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", message)
}

// TooManyRequests sends a 429 response
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "rate limit exceeded, please try again later"
	}
	errorResponse(c, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", message)
}
