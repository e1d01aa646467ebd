package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"salesdash/internal/dto"
	"salesdash/internal/models"
	"salesdash/internal/repositories"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidDateRange = errors.New("invalid date range")
)

type reportService struct {
	salesRecordRepo repositories.SalesRecordRepositoryInterface
	summaryRepo     repositories.DailySalesSummaryRepositoryInterface
	metrics         MetricsRecorderInterface
}

func NewReportService(
	salesRecordRepo repositories.SalesRecordRepositoryInterface,
	summaryRepo repositories.DailySalesSummaryRepositoryInterface,
	metrics MetricsRecorderInterface,
) ReportServiceInterface {
	return &reportService{
		salesRecordRepo: salesRecordRepo,
		summaryRepo:     summaryRepo,
		metrics:         metrics,
	}
}

// GetSalesReport produces the tender-wise sales report for an inclusive
// calendar date window. An empty window yields a zero summary with empty
// breakdown arrays, never nulls.
func (s *reportService) GetSalesReport(ctx context.Context, req *dto.SalesReportRequest) (*dto.SalesReportResponse, error) {
	started := time.Now()

	start, end, err := parseReportWindow(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	storeCodes := splitStoreCodes(req.Stores)

	// The store query uses a half-open window, so the inclusive end date
	// becomes an exclusive bound one day later.
	aggregates, err := s.salesRecordRepo.AggregateByTender(ctx, start, end.AddDate(0, 0, 1), storeCodes)
	if err != nil {
		s.metrics.IncrementCounter("report_request", map[string]string{"report": "sales", "status": "failed"})
		slog.Error("failed to aggregate sales records",
			"start_date", req.StartDate,
			"end_date", req.EndDate,
			"store_count", len(storeCodes),
			"error", err)
		return nil, fmt.Errorf("failed to generate sales report: %w", err)
	}

	response := s.buildSalesReport(req.StartDate, req.EndDate, aggregates)

	s.metrics.IncrementCounter("report_request", map[string]string{"report": "sales", "status": "success"})
	s.metrics.RecordProcessingTime("report_generation", time.Since(started))
	slog.Info("sales report generated",
		"start_date", req.StartDate,
		"end_date", req.EndDate,
		"tender_count", len(response.TenderBreakdown),
		"order_count", response.Summary.OrderCount)

	return response, nil
}

// GetDailyTrend serves the per-date trend from the relational rollup
// table, collapsing store rows into one point per sales date.
func (s *reportService) GetDailyTrend(ctx context.Context, req *dto.DailyTrendRequest) (*dto.DailyTrendResponse, error) {
	start, end, err := parseReportWindow(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	storeCodes := splitStoreCodes(req.Stores)

	summaries, err := s.summaryRepo.GetByDateRange(start, end, storeCodes)
	if err != nil {
		s.metrics.IncrementCounter("report_request", map[string]string{"report": "daily_trend", "status": "failed"})
		slog.Error("failed to load daily summaries",
			"start_date", req.StartDate,
			"end_date", req.EndDate,
			"error", err)
		return nil, fmt.Errorf("failed to generate daily trend: %w", err)
	}

	points := buildTrendPoints(summaries)

	s.metrics.IncrementCounter("report_request", map[string]string{"report": "daily_trend", "status": "success"})
	slog.Info("daily trend generated",
		"start_date", req.StartDate,
		"end_date", req.EndDate,
		"point_count", len(points))

	return &dto.DailyTrendResponse{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Points:      points,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (s *reportService) buildSalesReport(startDate, endDate string, aggregates []models.TenderAggregate) *dto.SalesReportResponse {
	breakdown := make([]dto.TenderBreakdownEntry, 0, len(aggregates))
	summary := dto.SalesReportSummary{}

	var (
		grossAmount, discount, tax         decimal.Decimal
		serviceCharge, packaging, delivery decimal.Decimal
		roundOff, totalCharges, netAmount  decimal.Decimal
	)

	for _, agg := range aggregates {
		breakdown = append(breakdown, buildBreakdownEntry(agg))

		grossAmount = grossAmount.Add(agg.GrossAmount)
		discount = discount.Add(agg.Discount)
		tax = tax.Add(agg.Tax)
		serviceCharge = serviceCharge.Add(agg.ServiceCharge)
		packaging = packaging.Add(agg.PackagingCharge)
		delivery = delivery.Add(agg.DeliveryCharge)
		roundOff = roundOff.Add(agg.RoundOff)
		totalCharges = totalCharges.Add(agg.TotalCharges())
		netAmount = netAmount.Add(agg.NetAmount())
		summary.OrderCount += agg.OrderCount
	}

	summary.GrossAmount = grossAmount.InexactFloat64()
	summary.Discount = discount.InexactFloat64()
	summary.Tax = tax.InexactFloat64()
	summary.ServiceCharge = serviceCharge.InexactFloat64()
	summary.PackagingCharge = packaging.InexactFloat64()
	summary.DeliveryCharge = delivery.InexactFloat64()
	summary.RoundOff = roundOff.InexactFloat64()
	summary.TotalCharges = totalCharges.InexactFloat64()
	summary.NetAmount = netAmount.InexactFloat64()

	return &dto.SalesReportResponse{
		StartDate:       startDate,
		EndDate:         endDate,
		Summary:         summary,
		TenderBreakdown: breakdown,
		ChartSeries:     breakdown,
		GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
	}
}

func buildBreakdownEntry(agg models.TenderAggregate) dto.TenderBreakdownEntry {
	return dto.TenderBreakdownEntry{
		Tender:          agg.Tender,
		GrossAmount:     agg.GrossAmount.InexactFloat64(),
		Discount:        agg.Discount.InexactFloat64(),
		Tax:             agg.Tax.InexactFloat64(),
		ServiceCharge:   agg.ServiceCharge.InexactFloat64(),
		PackagingCharge: agg.PackagingCharge.InexactFloat64(),
		DeliveryCharge:  agg.DeliveryCharge.InexactFloat64(),
		RoundOff:        agg.RoundOff.InexactFloat64(),
		TotalCharges:    agg.TotalCharges().InexactFloat64(),
		NetAmount:       agg.NetAmount().InexactFloat64(),
		OrderCount:      agg.OrderCount,
	}
}

func buildTrendPoints(summaries []models.DailySalesSummary) []dto.DailyTrendPoint {
	points := make([]dto.DailyTrendPoint, 0)

	var (
		current    *dto.DailyTrendPoint
		instore    decimal.Decimal
		aggregator decimal.Decimal
		total      decimal.Decimal
	)

	flush := func() {
		if current == nil {
			return
		}
		current.InstoreTotal = instore.InexactFloat64()
		current.AggregatorTotal = aggregator.InexactFloat64()
		current.TotalSales = total.InexactFloat64()
		points = append(points, *current)
	}

	// Rows arrive ordered by sales_date, so one pass groups them.
	for i := range summaries {
		row := &summaries[i]
		date := row.SalesDate.Format(dateLayout)

		if current == nil || current.SalesDate != date {
			flush()
			current = &dto.DailyTrendPoint{SalesDate: date}
			instore, aggregator, total = decimal.Zero, decimal.Zero, decimal.Zero
		}

		instore = instore.Add(row.InstoreTotal)
		aggregator = aggregator.Add(row.AggregatorTotal)
		total = total.Add(row.TotalSales)
		current.OrderCount += row.TotalOrderCount
		current.StoreCount++
	}
	flush()

	return points
}

// parseReportWindow validates the inclusive [start, end] calendar window.
func parseReportWindow(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid start_date %q", ErrInvalidDateRange, startDate)
	}

	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid end_date %q", ErrInvalidDateRange, endDate)
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date %s is after end_date %s", ErrInvalidDateRange, startDate, endDate)
	}

	return start, end, nil
}

// splitStoreCodes parses the comma-separated store filter, dropping empty
// segments. A nil result means no store restriction.
func splitStoreCodes(stores string) []string {
	if strings.TrimSpace(stores) == "" {
		return nil
	}

	parts := strings.Split(stores, ",")
	codes := make([]string, 0, len(parts))
	for _, part := range parts {
		if code := strings.TrimSpace(part); code != "" {
			codes = append(codes, code)
		}
	}
	if len(codes) == 0 {
		return nil
	}
	return codes
}
