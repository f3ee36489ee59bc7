package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taxpro/taxpro-api/internal/logger"
	"github.com/taxpro/taxpro-api/internal/taxengine"
	"github.com/taxpro/taxpro-api/internal/types/api/responses"
	"go.uber.org/zap"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	stage  string
	tables *taxengine.Tables
	db     Pinger
}

// NewHealthHandler creates a health handler. tables and db may be nil.
func NewHealthHandler(stage string, tables *taxengine.Tables, db Pinger) *HealthHandler {
	return &HealthHandler{stage: stage, tables: tables, db: db}
}

// Use types from the centralized packages
type HealthResponse = responses.HealthResponse

// Health godoc
// @Summary Check the health of the server
// @Description Reports the loaded tax tables and, when configured, database reachability.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	resp := HealthResponse{
		Status: "ok",
		Stage:  h.stage,
	}
	if h.tables != nil {
		resp.TaxYear = h.tables.Year()
		resp.TablesVersion = h.tables.Version()
	}
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			resp.Database = "unavailable"
			logger.Warn("Health check database ping failed", zap.Error(err))
		} else {
			resp.Database = "ok"
		}
	}
	c.JSON(http.StatusOK, resp)
}
