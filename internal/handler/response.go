package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"aeroxfer/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrEmptyFile):
		return http.StatusBadRequest, "EMPTY_FILE", "file contains no readable lines"
	case errors.Is(err, domain.ErrNotBlockFile):
		return http.StatusBadRequest, "NOT_BLOCK_FILE", "file does not look like a block-table text file"
	case errors.Is(err, domain.ErrUndecodableFile):
		return http.StatusBadRequest, "UNDECODABLE_FILE", "file could not be decoded with any supported encoding"
	case errors.Is(err, domain.ErrNoBlocks):
		return http.StatusUnprocessableEntity, "NO_BLOCKS", "no data blocks found in file"
	case errors.Is(err, domain.ErrUnknownPart):
		return http.StatusBadRequest, "UNKNOWN_PART", "part not defined in project"
	case errors.Is(err, domain.ErrInvalidReference):
		return http.StatusBadRequest, "INVALID_REFERENCE", "part has a non-positive reference quantity"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
