package services

import (
	"context"
	"time"

	"salesdash/internal/dto"
	"salesdash/internal/models"
)

// ReportServiceInterface defines the contract for dashboard report generation
type ReportServiceInterface interface {
	GetSalesReport(ctx context.Context, req *dto.SalesReportRequest) (*dto.SalesReportResponse, error)
	GetDailyTrend(ctx context.Context, req *dto.DailyTrendRequest) (*dto.DailyTrendResponse, error)
}

// RollupServiceInterface defines the contract for the daily sales rollup
type RollupServiceInterface interface {
	Run(ctx context.Context) error
}

// IngestServiceInterface defines the contract for writing raw sales
// record batches into the document store
type IngestServiceInterface interface {
	IngestRecords(ctx context.Context, req *dto.IngestRequest) (*dto.IngestResponse, error)
}

type AuthServiceInterface interface {
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type TokenServiceInterface interface {
	GenerateToken(username string) (string, time.Time, error)
	ValidateToken(tokenString string) (*models.AuthClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
