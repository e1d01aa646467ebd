package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRecord is a single raw sales document as persisted in the document
// store. Measure fields are pointers because source rows routinely omit
// them; a nil measure contributes zero to every aggregate, it is never an
// error. The exact field names are an external contract to be confirmed
// against the live store (see the field constants in the repository).
type SalesRecord struct {
	ID              string    `bson:"_id,omitempty" json:"id,omitempty"`
	Tender          string    `bson:"tender" json:"tender"`
	StoreCode       string    `bson:"store_code" json:"store_code"`
	BusinessDate    time.Time `bson:"business_date" json:"business_date"`
	GrossAmount     *float64  `bson:"gross_amount,omitempty" json:"gross_amount,omitempty"`
	Discount        *float64  `bson:"discount,omitempty" json:"discount,omitempty"`
	Tax             *float64  `bson:"tax,omitempty" json:"tax,omitempty"`
	ServiceCharge   *float64  `bson:"service_charge,omitempty" json:"service_charge,omitempty"`
	PackagingCharge *float64  `bson:"packaging_charge,omitempty" json:"packaging_charge,omitempty"`
	DeliveryCharge  *float64  `bson:"delivery_charge,omitempty" json:"delivery_charge,omitempty"`
	RoundOff        *float64  `bson:"round_off,omitempty" json:"round_off,omitempty"`
}

// TenderAggregate holds the per-tender sums produced by the aggregation
// query. Every measure has already been null-coalesced to zero by the
// time it lands here.
type TenderAggregate struct {
	Tender          string
	GrossAmount     decimal.Decimal
	Discount        decimal.Decimal
	Tax             decimal.Decimal
	ServiceCharge   decimal.Decimal
	PackagingCharge decimal.Decimal
	DeliveryCharge  decimal.Decimal
	RoundOff        decimal.Decimal
	OrderCount      int64
}

// TotalCharges is the fixed derived combination of the charge measures.
// The formula is part of the output contract and must not vary by group.
func (a TenderAggregate) TotalCharges() decimal.Decimal {
	return a.ServiceCharge.Add(a.PackagingCharge).Add(a.DeliveryCharge).Add(a.RoundOff)
}

// NetAmount is the fixed derived net: gross - discount + tax + total charges.
func (a TenderAggregate) NetAmount() decimal.Decimal {
	return a.GrossAmount.Sub(a.Discount).Add(a.Tax).Add(a.TotalCharges())
}
