package repositories

import (
	"errors"
	"fmt"
	"time"

	"salesdash/internal/models"

	"gorm.io/gorm"
)

// orderRepository implements OrderRepositoryInterface
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) OrderRepositoryInterface {
	return &orderRepository{
		db: db,
	}
}

// GetDateRange returns the min and max business dates present in the
// orders table. Both are nil when the table is empty. The boundaries are
// read through the model rather than MIN/MAX aggregates, which lose the
// column type on some drivers.
func (r *orderRepository) GetDateRange() (*time.Time, *time.Time, error) {
	var first models.SalesOrder
	err := r.db.Order("business_date asc").First(&first).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get order date range: %w", err)
	}

	var last models.SalesOrder
	if err := r.db.Order("business_date desc").First(&last).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to get order date range: %w", err)
	}

	return &first.BusinessDate, &last.BusinessDate, nil
}

// GetByDateRange retrieves orders with business_date in [start, end]
// (inclusive calendar dates, matching the rollup window).
func (r *orderRepository) GetByDateRange(start, end time.Time) ([]models.SalesOrder, error) {
	var orders []models.SalesOrder
	if err := r.db.Where("business_date BETWEEN ? AND ?", start, end).
		Order("business_date, store_code").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get orders by date range: %w", err)
	}
	return orders, nil
}
