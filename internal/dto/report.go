package dto

// SalesReportRequest carries the query parameters for the tender report.
// Dates are inclusive calendar dates in YYYY-MM-DD form; Stores is an
// optional comma-separated store-code filter.
type SalesReportRequest struct {
	StartDate string `query:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"required,datetime=2006-01-02"`
	Stores    string `query:"stores" validate:"omitempty,max=2000"`
}

// TenderBreakdownEntry is one per-tender record of the report. The field
// set and types are the documented widget contract: monetary fields are
// floats, order_count is an integer.
type TenderBreakdownEntry struct {
	Tender          string  `json:"tender"`
	GrossAmount     float64 `json:"gross_amount"`
	Discount        float64 `json:"discount"`
	Tax             float64 `json:"tax"`
	ServiceCharge   float64 `json:"service_charge"`
	PackagingCharge float64 `json:"packaging_charge"`
	DeliveryCharge  float64 `json:"delivery_charge"`
	RoundOff        float64 `json:"round_off"`
	TotalCharges    float64 `json:"total_charges"`
	NetAmount       float64 `json:"net_amount"`
	OrderCount      int64   `json:"order_count"`
}

// SalesReportSummary is the ungrouped top-level aggregate. Every field
// equals the sum of the corresponding field across all breakdown entries.
type SalesReportSummary struct {
	GrossAmount     float64 `json:"gross_amount"`
	Discount        float64 `json:"discount"`
	Tax             float64 `json:"tax"`
	ServiceCharge   float64 `json:"service_charge"`
	PackagingCharge float64 `json:"packaging_charge"`
	DeliveryCharge  float64 `json:"delivery_charge"`
	RoundOff        float64 `json:"round_off"`
	TotalCharges    float64 `json:"total_charges"`
	NetAmount       float64 `json:"net_amount"`
	OrderCount      int64   `json:"order_count"`
}

// SalesReportResponse is the dashboard payload. TenderBreakdown feeds the
// table widget and ChartSeries feeds the chart widget; both carry the
// same records. Arrays are always present, never null.
type SalesReportResponse struct {
	StartDate       string                 `json:"start_date"`
	EndDate         string                 `json:"end_date"`
	Summary         SalesReportSummary     `json:"summary"`
	TenderBreakdown []TenderBreakdownEntry `json:"tender_breakdown"`
	ChartSeries     []TenderBreakdownEntry `json:"chart_series"`
	GeneratedAt     string                 `json:"generated_at"`
}

// DailyTrendRequest carries query parameters for the daily trend report
// served from the relational rollup table.
type DailyTrendRequest struct {
	StartDate string `query:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"required,datetime=2006-01-02"`
	Stores    string `query:"stores" validate:"omitempty,max=2000"`
}

// DailyTrendPoint is one per-date record of the daily trend.
type DailyTrendPoint struct {
	SalesDate       string  `json:"sales_date"`
	InstoreTotal    float64 `json:"instore_total"`
	AggregatorTotal float64 `json:"aggregator_total"`
	TotalSales      float64 `json:"total_sales"`
	OrderCount      int64   `json:"order_count"`
	StoreCount      int64   `json:"store_count"`
}

// DailyTrendResponse is the daily trend payload.
type DailyTrendResponse struct {
	StartDate   string            `json:"start_date"`
	EndDate     string            `json:"end_date"`
	Points      []DailyTrendPoint `json:"points"`
	GeneratedAt string            `json:"generated_at"`
}
