package handlers

import (
	"net/http"
	"time"

	"salesdash/internal/database"
	"salesdash/internal/documentstore"
	"salesdash/internal/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db    *database.DB
	store *documentstore.Store
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db *database.DB, store *documentstore.Store) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, store: store}
}

// HealthCheck adds the health check endpoint
// @Summary Health check
// @Description Check API, relational database, and sales store connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 or STORE_001 - dependency unreachable"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if err := h.db.HealthCheck(); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	if err := h.store.HealthCheck(c.Request().Context()); err != nil {
		return SendError(c, errors.StoreUnavailable, errors.WithDetails("Sales data store connection failed"))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
