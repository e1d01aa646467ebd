package dto

// SalesRecordInput is one raw sales row in an ingest batch. Measure
// fields are optional; an omitted measure is stored as missing and
// aggregates as zero downstream.
type SalesRecordInput struct {
	Tender          string   `json:"tender" validate:"required,max=50"`
	StoreCode       string   `json:"store_code" validate:"required,max=50"`
	BusinessDate    string   `json:"business_date" validate:"required,datetime=2006-01-02"`
	GrossAmount     *float64 `json:"gross_amount,omitempty"`
	Discount        *float64 `json:"discount,omitempty"`
	Tax             *float64 `json:"tax,omitempty"`
	ServiceCharge   *float64 `json:"service_charge,omitempty"`
	PackagingCharge *float64 `json:"packaging_charge,omitempty"`
	DeliveryCharge  *float64 `json:"delivery_charge,omitempty"`
	RoundOff        *float64 `json:"round_off,omitempty"`
}

// IngestRequest is a batch of raw sales records for the document store.
type IngestRequest struct {
	Records []SalesRecordInput `json:"records" validate:"required,min=1,max=1000,dive"`
}

// IngestResponse reports how many records were written.
type IngestResponse struct {
	Inserted   int    `json:"inserted"`
	ReceivedAt string `json:"received_at"`
}
