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
)

// ErrInvalidRecordDate marks an ingest row whose business_date cannot be
// parsed. The whole batch is rejected; partial writes would make the
// report and the raw store disagree.
var ErrInvalidRecordDate = errors.New("invalid record business date")

// ingestService writes raw sales record batches into the document store.
// Rows land exactly as uploaded; measure coalescing happens at query time.
type ingestService struct {
	salesRecordRepo repositories.SalesRecordRepositoryInterface
	metrics         MetricsRecorderInterface
}

// NewIngestService creates a new ingest service
func NewIngestService(
	salesRecordRepo repositories.SalesRecordRepositoryInterface,
	metrics MetricsRecorderInterface,
) IngestServiceInterface {
	return &ingestService{
		salesRecordRepo: salesRecordRepo,
		metrics:         metrics,
	}
}

// IngestRecords validates and writes one batch of raw sales records.
func (s *ingestService) IngestRecords(ctx context.Context, req *dto.IngestRequest) (*dto.IngestResponse, error) {
	startedAt := time.Now()

	records := make([]models.SalesRecord, 0, len(req.Records))
	for i, in := range req.Records {
		businessDate, err := time.ParseInLocation(dateLayout, in.BusinessDate, time.UTC)
		if err != nil {
			s.metrics.IncrementCounter("ingest_batch", map[string]string{"status": "rejected"})
			return nil, fmt.Errorf("record %d: %w: %q", i, ErrInvalidRecordDate, in.BusinessDate)
		}

		records = append(records, models.SalesRecord{
			Tender:          strings.ToUpper(strings.TrimSpace(in.Tender)),
			StoreCode:       strings.TrimSpace(in.StoreCode),
			BusinessDate:    businessDate,
			GrossAmount:     in.GrossAmount,
			Discount:        in.Discount,
			Tax:             in.Tax,
			ServiceCharge:   in.ServiceCharge,
			PackagingCharge: in.PackagingCharge,
			DeliveryCharge:  in.DeliveryCharge,
			RoundOff:        in.RoundOff,
		})
	}

	if err := s.salesRecordRepo.InsertRecords(ctx, records); err != nil {
		s.metrics.IncrementCounter("ingest_batch", map[string]string{"status": "error"})
		slog.Error("Failed to ingest sales records", "count", len(records), "error", err.Error())
		return nil, err
	}

	s.metrics.IncrementCounter("ingest_batch", map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime("ingest_batch", time.Since(startedAt))
	slog.Info("Sales records ingested", "count", len(records))

	return &dto.IngestResponse{
		Inserted:   len(records),
		ReceivedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
