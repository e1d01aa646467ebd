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

// ReportHandler handles dashboard report endpoints
type ReportHandler struct {
	reportService services.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService services.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// GetSalesReport serves the tender-wise sales report
// @Summary Tender-wise sales report
// @Description Aggregate sales for an inclusive date window, grouped by tender, with an ungrouped summary
// @Tags Reports
// @Produce json
// @Param start_date query string true "Window start (YYYY-MM-DD)"
// @Param end_date query string true "Window end (YYYY-MM-DD, inclusive)"
// @Param stores query string false "Comma-separated store codes"
// @Success 200 {object} dto.SalesReportResponse "Report payload"
// @Failure 400 {object} errors.ErrorResponse "Invalid window - REPORT_001 or VALIDATION_001"
// @Failure 503 {object} errors.ErrorResponse "Sales store unreachable - STORE_001"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /reports/sales [get]
func (h *ReportHandler) GetSalesReport(c echo.Context) error {
	var req dto.SalesReportRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	report, err := h.reportService.GetSalesReport(c.Request().Context(), &req)
	if err != nil {
		return h.mapReportError(c, err)
	}

	return c.JSON(http.StatusOK, report)
}

// GetDailyTrend serves the per-date sales trend from the rollup table
// @Summary Daily sales trend
// @Description Per-date in-store and aggregator totals from the daily rollup
// @Tags Reports
// @Produce json
// @Param start_date query string true "Window start (YYYY-MM-DD)"
// @Param end_date query string true "Window end (YYYY-MM-DD, inclusive)"
// @Param stores query string false "Comma-separated store codes"
// @Success 200 {object} dto.DailyTrendResponse "Trend payload"
// @Failure 400 {object} errors.ErrorResponse "Invalid window - REPORT_001 or VALIDATION_001"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /reports/daily [get]
func (h *ReportHandler) GetDailyTrend(c echo.Context) error {
	var req dto.DailyTrendRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	trend, err := h.reportService.GetDailyTrend(c.Request().Context(), &req)
	if err != nil {
		return h.mapReportError(c, err)
	}

	return c.JSON(http.StatusOK, trend)
}

func (h *ReportHandler) mapReportError(c echo.Context, err error) error {
	if stderrors.Is(err, services.ErrInvalidDateRange) {
		return SendError(c, errors.ReportInvalidDateRange, errors.WithDetails(err.Error()))
	}
	if stderrors.Is(err, repositories.ErrDocumentStoreUnavailable) {
		return SendError(c, errors.StoreUnavailable)
	}
	return SendSystemError(c, err)
}
