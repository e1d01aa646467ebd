package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"salesdash/internal/dto"
	"salesdash/internal/models"
	"salesdash/internal/repositories"
	"salesdash/internal/repositories/repository_mocks"
	"salesdash/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type IngestServiceSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	salesRecordRepo *repository_mocks.MockSalesRecordRepositoryInterface
	metrics         *service_mocks.MockMetricsRecorderInterface
	service         IngestServiceInterface
	ctx             context.Context
}

func TestIngestServiceSuite(t *testing.T) {
	suite.Run(t, new(IngestServiceSuite))
}

func (s *IngestServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.salesRecordRepo = repository_mocks.NewMockSalesRecordRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = NewIngestService(s.salesRecordRepo, s.metrics)
	s.ctx = context.Background()

	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
}

func (s *IngestServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func amount(v float64) *float64 {
	return &v
}

func (s *IngestServiceSuite) TestIngestRecords_MapsAndNormalizes() {
	req := &dto.IngestRequest{
		Records: []dto.SalesRecordInput{
			{
				Tender:       " cash ",
				StoreCode:    " BLR001 ",
				BusinessDate: "2026-01-10",
				GrossAmount:  amount(100.50),
				Tax:          amount(5),
			},
			{
				Tender:       "CARD",
				StoreCode:    "BLR002",
				BusinessDate: "2026-01-11",
			},
		},
	}

	var inserted []models.SalesRecord
	s.salesRecordRepo.EXPECT().
		InsertRecords(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, records []models.SalesRecord) error {
			inserted = records
			return nil
		})

	result, err := s.service.IngestRecords(s.ctx, req)

	s.NoError(err)
	s.Equal(2, result.Inserted)
	s.NotEmpty(result.ReceivedAt)

	s.Require().Len(inserted, 2)
	s.Equal("CASH", inserted[0].Tender)
	s.Equal("BLR001", inserted[0].StoreCode)
	s.Equal(time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), inserted[0].BusinessDate)
	s.Require().NotNil(inserted[0].GrossAmount)
	s.Equal(100.50, *inserted[0].GrossAmount)

	// omitted measures stay missing; they coalesce to zero at query time
	s.Nil(inserted[1].GrossAmount)
	s.Nil(inserted[1].Discount)
	s.Equal("CARD", inserted[1].Tender)
}

func (s *IngestServiceSuite) TestIngestRecords_RejectsBadDate() {
	req := &dto.IngestRequest{
		Records: []dto.SalesRecordInput{
			{Tender: "CASH", StoreCode: "BLR001", BusinessDate: "2026-01-10"},
			{Tender: "CASH", StoreCode: "BLR001", BusinessDate: "10/01/2026"},
		},
	}

	// no write may happen for a batch with a bad row
	result, err := s.service.IngestRecords(s.ctx, req)

	s.Nil(result)
	s.ErrorIs(err, ErrInvalidRecordDate)
	s.Contains(err.Error(), "record 1")
}

func (s *IngestServiceSuite) TestIngestRecords_StoreUnavailable() {
	req := &dto.IngestRequest{
		Records: []dto.SalesRecordInput{
			{Tender: "CASH", StoreCode: "BLR001", BusinessDate: "2026-01-10"},
		},
	}

	s.salesRecordRepo.EXPECT().
		InsertRecords(gomock.Any(), gomock.Any()).
		Return(repositories.ErrDocumentStoreUnavailable)

	result, err := s.service.IngestRecords(s.ctx, req)

	s.Nil(result)
	s.ErrorIs(err, repositories.ErrDocumentStoreUnavailable)
}

func (s *IngestServiceSuite) TestIngestRecords_RepoError() {
	req := &dto.IngestRequest{
		Records: []dto.SalesRecordInput{
			{Tender: "CASH", StoreCode: "BLR001", BusinessDate: "2026-01-10"},
		},
	}

	s.salesRecordRepo.EXPECT().
		InsertRecords(gomock.Any(), gomock.Any()).
		Return(errors.New("write concern failed"))

	result, err := s.service.IngestRecords(s.ctx, req)

	s.Nil(result)
	s.Error(err)
	s.NotErrorIs(err, ErrInvalidRecordDate)
}
