package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SalesOrder is a processed order row in the relational store. Payment is
// nullable at the schema level; rollup aggregation coalesces it to zero.
type SalesOrder struct {
	ID           uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	BusinessDate time.Time           `gorm:"type:date;not null;index" json:"business_date"`
	StoreCode    string              `gorm:"type:varchar(50);not null;index" json:"store_code"`
	Channel      string              `gorm:"type:varchar(50);not null" json:"channel"`
	Payment      decimal.NullDecimal `gorm:"type:decimal(15,2)" json:"payment"`
	Reference    string              `gorm:"type:varchar(100)" json:"reference,omitempty"`
	CreatedAt    time.Time           `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time           `gorm:"not null" json:"updated_at"`
}

func (SalesOrder) TableName() string {
	return "orders"
}

// BeforeCreate hook for SalesOrder
func (o *SalesOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// PaymentOrZero returns the payment amount with null coalesced to zero.
func (o *SalesOrder) PaymentOrZero() decimal.Decimal {
	if !o.Payment.Valid {
		return decimal.Zero
	}
	return o.Payment.Decimal
}
