package repositories

import (
	"fmt"
	"time"

	"salesdash/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// dailySalesSummaryRepository implements DailySalesSummaryRepositoryInterface
type dailySalesSummaryRepository struct {
	db *gorm.DB
}

// NewDailySalesSummaryRepository creates a new daily sales summary repository
func NewDailySalesSummaryRepository(db *gorm.DB) DailySalesSummaryRepositoryInterface {
	return &dailySalesSummaryRepository{
		db: db,
	}
}

// summaryValueColumns are the columns refreshed on conflict; the
// (sales_date, store_code) key itself never changes.
var summaryValueColumns = []string{
	"city_id", "zone",
	"instore_cash", "instore_card", "instore_upi", "instore_other", "instore_total", "instore_count",
	"aggregator_zomato", "aggregator_swiggy", "aggregator_magicpin", "aggregator_total", "aggregator_count",
	"total_sales", "total_order_count",
	"updated_at",
}

// Upsert inserts or refreshes the rollup row for (sales_date, store_code).
func (r *dailySalesSummaryRepository) Upsert(summary *models.DailySalesSummary) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "sales_date"}, {Name: "store_code"}},
		DoUpdates: clause.AssignmentColumns(summaryValueColumns),
	}).Create(summary).Error
	if err != nil {
		return fmt.Errorf("failed to upsert daily sales summary: %w", err)
	}
	return nil
}

// GetByDateRange retrieves rollup rows with sales_date in [start, end]
// ordered by date then store, optionally restricted to a store set.
func (r *dailySalesSummaryRepository) GetByDateRange(start, end time.Time, storeCodes []string) ([]models.DailySalesSummary, error) {
	query := r.db.Where("sales_date BETWEEN ? AND ?", start, end)
	if len(storeCodes) > 0 {
		query = query.Where("store_code IN ?", storeCodes)
	}

	var summaries []models.DailySalesSummary
	if err := query.Order("sales_date, store_code").Find(&summaries).Error; err != nil {
		return nil, fmt.Errorf("failed to get daily sales summaries: %w", err)
	}
	return summaries, nil
}
