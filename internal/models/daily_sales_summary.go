package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySalesSummary is one rollup row per (sales_date, store_code),
// maintained by the rollup scheduler. Totals are derived columns:
// instore_total and aggregator_total sum their tender columns, and
// total_sales = instore_total + aggregator_total.
type DailySalesSummary struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SalesDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_daily_sales_summary_date_store" json:"sales_date"`
	StoreCode string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_daily_sales_summary_date_store" json:"store_code"`
	CityID    *int64    `json:"city_id,omitempty"`
	Zone      *string   `gorm:"type:varchar(100)" json:"zone,omitempty"`

	InstoreCash  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"instore_cash"`
	InstoreCard  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"instore_card"`
	InstoreUPI   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0;column:instore_upi" json:"instore_upi"`
	InstoreOther decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"instore_other"`
	InstoreTotal decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"instore_total"`
	InstoreCount int64           `gorm:"not null;default:0" json:"instore_count"`

	AggregatorZomato   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"aggregator_zomato"`
	AggregatorSwiggy   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"aggregator_swiggy"`
	AggregatorMagicpin decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"aggregator_magicpin"`
	AggregatorTotal    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"aggregator_total"`
	AggregatorCount    int64           `gorm:"not null;default:0" json:"aggregator_count"`

	TotalSales      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"total_sales"`
	TotalOrderCount int64           `gorm:"not null;default:0" json:"total_order_count"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (DailySalesSummary) TableName() string {
	return "daily_sales_summary"
}
