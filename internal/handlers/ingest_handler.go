package handlers

import (
	stderrors "errors"
	"net/http"

	"salesdash/internal/dto"
	"salesdash/internal/errors"
	"salesdash/internal/repositories"
	"salesdash/internal/services"

	"github.com/labstack/echo/v4"
)

// IngestHandler handles raw sales record uploads
type IngestHandler struct {
	ingestService services.IngestServiceInterface
}

// NewIngestHandler creates a new ingest handler
func NewIngestHandler(ingestService services.IngestServiceInterface) *IngestHandler {
	return &IngestHandler{
		ingestService: ingestService,
	}
}

// IngestRecords accepts a batch of raw sales records for the document store
// @Summary Upload raw sales records
// @Description Write a batch of raw per-order sales records; the batch is all-or-nothing
// @Tags Records
// @Accept json
// @Produce json
// @Param request body dto.IngestRequest true "Record batch"
// @Success 201 {object} dto.IngestResponse "Inserted count"
// @Failure 400 {object} errors.ErrorResponse "Invalid batch - VALIDATION_001 or VALIDATION_004"
// @Failure 503 {object} errors.ErrorResponse "Sales store unreachable - STORE_001"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /records [post]
func (h *IngestHandler) IngestRecords(c echo.Context) error {
	var req dto.IngestRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	result, err := h.ingestService.IngestRecords(c.Request().Context(), &req)
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidRecordDate) {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
		}
		if stderrors.Is(err, repositories.ErrDocumentStoreUnavailable) {
			return SendError(c, errors.StoreUnavailable)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, result)
}
