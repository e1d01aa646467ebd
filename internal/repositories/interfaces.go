package repositories

import (
	"context"
	"time"

	"salesdash/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=repository_mocks/mocks.go -package=repository_mocks

// SalesRecordRepositoryInterface aggregates raw sales documents from the
// document store. The store's query language is an implementation detail;
// the contract is: rows with business_date in [start, end) and, when the
// filter is non-empty, store_code in storeCodes, grouped by tender, with
// every measure null-coalesced to zero before summing.
type SalesRecordRepositoryInterface interface {
	AggregateByTender(ctx context.Context, start, end time.Time, storeCodes []string) ([]models.TenderAggregate, error)
	InsertRecords(ctx context.Context, records []models.SalesRecord) error
}

// OrderRepositoryInterface reads processed orders from the relational store.
type OrderRepositoryInterface interface {
	GetDateRange() (minDate, maxDate *time.Time, err error)
	GetByDateRange(start, end time.Time) ([]models.SalesOrder, error)
}

// StoreRepositoryInterface reads store metadata.
type StoreRepositoryInterface interface {
	GetByCodes(codes []string) ([]models.Store, error)
}

// DailySalesSummaryRepositoryInterface maintains the daily rollup table.
type DailySalesSummaryRepositoryInterface interface {
	Upsert(summary *models.DailySalesSummary) error
	GetByDateRange(start, end time.Time, storeCodes []string) ([]models.DailySalesSummary, error)
}
