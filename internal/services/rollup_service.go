package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"salesdash/internal/config"
	"salesdash/internal/models"
	"salesdash/internal/repositories"

	"github.com/shopspring/decimal"
)

type rollupService struct {
	orderRepo   repositories.OrderRepositoryInterface
	storeRepo   repositories.StoreRepositoryInterface
	summaryRepo repositories.DailySalesSummaryRepositoryInterface
	cfg         config.SchedulerConfig
	metrics     MetricsRecorderInterface
}

func NewRollupService(
	orderRepo repositories.OrderRepositoryInterface,
	storeRepo repositories.StoreRepositoryInterface,
	summaryRepo repositories.DailySalesSummaryRepositoryInterface,
	cfg config.SchedulerConfig,
	metrics MetricsRecorderInterface,
) RollupServiceInterface {
	return &rollupService{
		orderRepo:   orderRepo,
		storeRepo:   storeRepo,
		summaryRepo: summaryRepo,
		cfg:         cfg,
		metrics:     metrics,
	}
}

// rollupKey identifies one summary row within a run.
type rollupKey struct {
	date      string
	storeCode string
}

// rollupBucket accumulates one (date, store) partition before it becomes
// a summary row.
type rollupBucket struct {
	salesDate time.Time
	storeCode string

	instoreCash  decimal.Decimal
	instoreCard  decimal.Decimal
	instoreUPI   decimal.Decimal
	instoreOther decimal.Decimal
	instoreCount int64

	aggregatorZomato   decimal.Decimal
	aggregatorSwiggy   decimal.Decimal
	aggregatorMagicpin decimal.Decimal
	aggregatorCount    int64
}

// Run recomputes the daily rollup over the recent order window and
// upserts one row per (sales_date, store_code). Re-running over the same
// window is idempotent.
func (s *rollupService) Run(ctx context.Context) error {
	started := time.Now()

	start, end, ok, err := s.resolveWindow()
	if err != nil {
		s.metrics.IncrementCounter("rollup_run", map[string]string{"status": "failed"})
		return err
	}
	if !ok {
		slog.Info("rollup skipped, no orders present")
		return nil
	}

	orders, err := s.orderRepo.GetByDateRange(start, end)
	if err != nil {
		s.metrics.IncrementCounter("rollup_run", map[string]string{"status": "failed"})
		slog.Error("failed to load orders for rollup", "error", err)
		return fmt.Errorf("failed to load orders for rollup: %w", err)
	}

	buckets := partitionOrders(orders)
	stores, err := s.loadStoreMetadata(buckets)
	if err != nil {
		s.metrics.IncrementCounter("rollup_run", map[string]string{"status": "failed"})
		return err
	}

	upserted := 0
	for _, bucket := range buckets {
		if err := ctx.Err(); err != nil {
			return err
		}

		summary := buildSummaryRow(bucket, stores[bucket.storeCode])
		if err := s.summaryRepo.Upsert(summary); err != nil {
			s.metrics.IncrementCounter("rollup_run", map[string]string{"status": "failed"})
			slog.Error("failed to upsert rollup row",
				"sales_date", summary.SalesDate.Format(dateLayout),
				"store_code", summary.StoreCode,
				"error", err)
			return fmt.Errorf("failed to upsert rollup row: %w", err)
		}
		upserted++
	}

	s.metrics.IncrementCounter("rollup_run", map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime("rollup_run", time.Since(started))
	s.metrics.RecordGauge("rollup_rows_upserted", float64(upserted), nil)
	slog.Info("rollup completed",
		"window_start", start.Format(dateLayout),
		"window_end", end.Format(dateLayout),
		"order_count", len(orders),
		"rows_upserted", upserted,
		"duration_ms", time.Since(started).Milliseconds())

	return nil
}

// resolveWindow clamps the rollup window to the configured lookback so a
// long order history does not make every run a full-table recompute.
func (s *rollupService) resolveWindow() (time.Time, time.Time, bool, error) {
	minDate, maxDate, err := s.orderRepo.GetDateRange()
	if err != nil {
		slog.Error("failed to resolve order date range", "error", err)
		return time.Time{}, time.Time{}, false, fmt.Errorf("failed to resolve order date range: %w", err)
	}
	if minDate == nil || maxDate == nil {
		return time.Time{}, time.Time{}, false, nil
	}

	start := *minDate
	if s.cfg.LookbackDays > 0 {
		cutoff := maxDate.AddDate(0, 0, -s.cfg.LookbackDays)
		if cutoff.After(start) {
			start = cutoff
		}
	}

	return start, *maxDate, true, nil
}

func partitionOrders(orders []models.SalesOrder) map[rollupKey]*rollupBucket {
	buckets := make(map[rollupKey]*rollupBucket)

	for i := range orders {
		order := &orders[i]
		key := rollupKey{
			date:      order.BusinessDate.Format(dateLayout),
			storeCode: order.StoreCode,
		}

		bucket, exists := buckets[key]
		if !exists {
			bucket = &rollupBucket{
				salesDate: order.BusinessDate,
				storeCode: order.StoreCode,
			}
			buckets[key] = bucket
		}

		bucket.add(order)
	}

	return buckets
}

// add assigns the order amount to its tender or aggregator bucket. The
// channel value is normalized before comparison; anything unrecognized
// lands in the in-store other bucket.
func (b *rollupBucket) add(order *models.SalesOrder) {
	amount := order.PaymentOrZero()

	switch strings.ToUpper(strings.TrimSpace(order.Channel)) {
	case models.TenderCash:
		b.instoreCash = b.instoreCash.Add(amount)
		b.instoreCount++
	case models.TenderCard:
		b.instoreCard = b.instoreCard.Add(amount)
		b.instoreCount++
	case models.TenderUPI:
		b.instoreUPI = b.instoreUPI.Add(amount)
		b.instoreCount++
	case strings.ToUpper(models.ChannelZomato):
		b.aggregatorZomato = b.aggregatorZomato.Add(amount)
		b.aggregatorCount++
	case strings.ToUpper(models.ChannelSwiggy):
		b.aggregatorSwiggy = b.aggregatorSwiggy.Add(amount)
		b.aggregatorCount++
	case strings.ToUpper(models.ChannelMagicPin):
		b.aggregatorMagicpin = b.aggregatorMagicpin.Add(amount)
		b.aggregatorCount++
	default:
		b.instoreOther = b.instoreOther.Add(amount)
		b.instoreCount++
	}
}

func (s *rollupService) loadStoreMetadata(buckets map[rollupKey]*rollupBucket) (map[string]models.Store, error) {
	seen := make(map[string]bool)
	codes := make([]string, 0)
	for key := range buckets {
		if !seen[key.storeCode] {
			seen[key.storeCode] = true
			codes = append(codes, key.storeCode)
		}
	}

	stores, err := s.storeRepo.GetByCodes(codes)
	if err != nil {
		slog.Error("failed to load store metadata for rollup", "error", err)
		return nil, fmt.Errorf("failed to load store metadata: %w", err)
	}

	byCode := make(map[string]models.Store, len(stores))
	for _, store := range stores {
		byCode[store.StoreCode] = store
	}
	return byCode, nil
}

func buildSummaryRow(bucket *rollupBucket, store models.Store) *models.DailySalesSummary {
	instoreTotal := bucket.instoreCash.
		Add(bucket.instoreCard).
		Add(bucket.instoreUPI).
		Add(bucket.instoreOther)
	aggregatorTotal := bucket.aggregatorZomato.
		Add(bucket.aggregatorSwiggy).
		Add(bucket.aggregatorMagicpin)

	return &models.DailySalesSummary{
		SalesDate: bucket.salesDate,
		StoreCode: bucket.storeCode,
		CityID:    store.CityID,
		Zone:      store.Zone,

		InstoreCash:  bucket.instoreCash,
		InstoreCard:  bucket.instoreCard,
		InstoreUPI:   bucket.instoreUPI,
		InstoreOther: bucket.instoreOther,
		InstoreTotal: instoreTotal,
		InstoreCount: bucket.instoreCount,

		AggregatorZomato:   bucket.aggregatorZomato,
		AggregatorSwiggy:   bucket.aggregatorSwiggy,
		AggregatorMagicpin: bucket.aggregatorMagicpin,
		AggregatorTotal:    aggregatorTotal,
		AggregatorCount:    bucket.aggregatorCount,

		TotalSales:      instoreTotal.Add(aggregatorTotal),
		TotalOrderCount: bucket.instoreCount + bucket.aggregatorCount,
	}
}
