package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mymaterio/pkg/logger"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	traceID := c.GetString("trace_id")

	switch {
	case errors.Is(err, ErrDatabaseError):
		logger.Error().Err(err).Str("trace_id", traceID).Msg("Database error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	case errors.Is(err, ErrExportFailed):
		logger.Error().Err(err).Str("trace_id", traceID).Msg("Export error")
		RespondError(c, http.StatusInternalServerError, "Failed to write export file")
	default:
		logger.Error().Err(err).Str("trace_id", traceID).Msg("Unknown error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
