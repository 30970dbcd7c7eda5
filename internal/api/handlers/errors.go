package handlers

import (
	"net/http"

	apperrors "lead-dashboard-backend/internal/errors"
	"lead-dashboard-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string         `json:"error" example:"error message"`
	Kind  apperrors.Kind `json:"kind" swaggertype:"string" example:"forbidden"`
}

// OKResponse is returned by mutations that have no payload
type OKResponse struct {
	OK bool `json:"ok" example:"true"`
}

func statusForKind(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindUnauthorized:
		return http.StatusUnauthorized
	case apperrors.KindForbidden:
		return http.StatusForbidden
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindInvalidInput, apperrors.KindInvalidOperation, apperrors.KindInvalidState, apperrors.KindAlreadyExists:
		return http.StatusBadRequest
	case apperrors.KindResourceExhausted:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as {"error","kind"} with the status its kind maps to.
// Internal errors are logged and their detail is not exposed.
func respondError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	status := statusForKind(kind)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).Error("request failed")
		message = "internal server error"
	}
	c.JSON(status, ErrorResponse{Error: message, Kind: kind})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Kind: apperrors.KindInvalidInput})
}
