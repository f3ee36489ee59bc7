package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/taxpro/taxpro-api/internal/constants"
	"github.com/taxpro/taxpro-api/internal/interfaces"
	"github.com/taxpro/taxpro-api/internal/logger"
	"github.com/taxpro/taxpro-api/internal/services"
	"github.com/taxpro/taxpro-api/internal/types/api/responses"
	"go.uber.org/zap"
)

// Use types from the centralized packages
type (
	ErrorResponse   = responses.ErrorResponse
	SuccessResponse = responses.SuccessResponse
)

// CommonServices holds the dependencies shared by all handlers
type CommonServices struct {
	TaxService      interfaces.TaxService
	DocumentService interfaces.DocumentService
	logger          *zap.Logger
}

// CommonServicesConfig contains all dependencies needed to create CommonServices
type CommonServicesConfig struct {
	TaxService      interfaces.TaxService
	DocumentService interfaces.DocumentService
	Logger          *zap.Logger
}

// NewCommonServices creates a new instance of CommonServices
func NewCommonServices(config CommonServicesConfig) *CommonServices {
	if config.Logger == nil {
		config.Logger = logger.Log
	}
	return &CommonServices{
		TaxService:      config.TaxService,
		DocumentService: config.DocumentService,
		logger:          config.Logger,
	}
}

// GetLogger returns the logger
func (s *CommonServices) GetLogger() *zap.Logger {
	return s.logger
}

// sendError logs err and writes a JSON error carrying the request's
// correlation id.
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := ""
	if id, exists := c.Get(constants.CorrelationIDKey); exists {
		correlationID, _ = id.(string)
	}

	fields := []zap.Field{
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", correlationID),
		zap.Int("status", statusCode),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	if statusCode >= http.StatusInternalServerError {
		logger.Error(message, fields...)
	} else {
		logger.Debug(message, fields...)
	}

	c.JSON(statusCode, ErrorResponse{
		Error:         message,
		CorrelationID: correlationID,
	})
}

// handleServiceError maps service errors to status codes. Validation errors
// surface their message, missing records become 404 and anything else is a
// 500 with a generic message.
func handleServiceError(c *gin.Context, err error, notFoundMsg string) {
	if err == nil {
		return
	}

	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		sendError(c, http.StatusBadRequest, ve.Error(), err)
	case errors.Is(err, services.ErrNotFound), errors.Is(err, pgx.ErrNoRows):
		sendError(c, http.StatusNotFound, notFoundMsg, err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// parseLimit reads the optional ?limit= query parameter. Missing or invalid
// values yield 0, which the services replace with their default.
func parseLimit(c *gin.Context) int32 {
	raw := c.Query("limit")
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	if n > constants.MaxListLimit {
		n = constants.MaxListLimit
	}
	return int32(n)
}
