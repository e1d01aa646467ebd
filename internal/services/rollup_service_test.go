package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"salesdash/internal/config"
	"salesdash/internal/models"
	"salesdash/internal/repositories/repository_mocks"
	"salesdash/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RollupServiceSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	orderRepo   *repository_mocks.MockOrderRepositoryInterface
	storeRepo   *repository_mocks.MockStoreRepositoryInterface
	summaryRepo *repository_mocks.MockDailySalesSummaryRepositoryInterface
	metrics     *service_mocks.MockMetricsRecorderInterface
	service     RollupServiceInterface
	ctx         context.Context
}

func TestRollupServiceSuite(t *testing.T) {
	suite.Run(t, new(RollupServiceSuite))
}

func (s *RollupServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.orderRepo = repository_mocks.NewMockOrderRepositoryInterface(s.ctrl)
	s.storeRepo = repository_mocks.NewMockStoreRepositoryInterface(s.ctrl)
	s.summaryRepo = repository_mocks.NewMockDailySalesSummaryRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = NewRollupService(s.orderRepo, s.storeRepo, s.summaryRepo, config.SchedulerConfig{
		Enabled:      true,
		LookbackDays: 90,
	}, s.metrics)
	s.ctx = context.Background()

	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
}

func (s *RollupServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func testOrder(date time.Time, storeCode, channel string, payment float64) models.SalesOrder {
	return models.SalesOrder{
		BusinessDate: date,
		StoreCode:    storeCode,
		Channel:      channel,
		Payment:      decimal.NullDecimal{Decimal: decimal.NewFromFloat(payment), Valid: true},
	}
}

func (s *RollupServiceSuite) TestRun_AggregatesByTenderAndChannel() {
	day := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	zone := "South"
	cityID := int64(1)

	orders := []models.SalesOrder{
		testOrder(day, "BLR001", "CASH", 100),
		testOrder(day, "BLR001", "CARD", 200),
		testOrder(day, "BLR001", "UPI", 50),
		testOrder(day, "BLR001", "Zomato", 300),
		testOrder(day, "BLR001", "Swiggy", 150),
		testOrder(day, "BLR001", "MagicPin", 75),
		// Null payment counts as an order with zero amount
		{BusinessDate: day, StoreCode: "BLR001", Channel: "CASH"},
		// Unrecognized channel lands in the in-store other bucket
		testOrder(day, "BLR001", "GIFTCARD", 25),
	}

	s.orderRepo.EXPECT().GetDateRange().Return(&day, &day, nil)
	s.orderRepo.EXPECT().GetByDateRange(day, day).Return(orders, nil)
	s.storeRepo.EXPECT().GetByCodes([]string{"BLR001"}).Return([]models.Store{
		{StoreCode: "BLR001", CityID: &cityID, Zone: &zone},
	}, nil)

	var captured *models.DailySalesSummary
	s.summaryRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(summary *models.DailySalesSummary) error {
		captured = summary
		return nil
	})

	s.NoError(s.service.Run(s.ctx))
	s.Require().NotNil(captured)

	s.Equal("BLR001", captured.StoreCode)
	s.Equal(&cityID, captured.CityID)
	s.Equal(&zone, captured.Zone)

	s.True(captured.InstoreCash.Equal(decimal.NewFromInt(100)))
	s.True(captured.InstoreCard.Equal(decimal.NewFromInt(200)))
	s.True(captured.InstoreUPI.Equal(decimal.NewFromInt(50)))
	s.True(captured.InstoreOther.Equal(decimal.NewFromInt(25)))
	s.True(captured.InstoreTotal.Equal(decimal.NewFromInt(375)))
	s.Equal(int64(5), captured.InstoreCount)

	s.True(captured.AggregatorZomato.Equal(decimal.NewFromInt(300)))
	s.True(captured.AggregatorSwiggy.Equal(decimal.NewFromInt(150)))
	s.True(captured.AggregatorMagicpin.Equal(decimal.NewFromInt(75)))
	s.True(captured.AggregatorTotal.Equal(decimal.NewFromInt(525)))
	s.Equal(int64(3), captured.AggregatorCount)

	s.True(captured.TotalSales.Equal(decimal.NewFromInt(900)))
	s.Equal(int64(8), captured.TotalOrderCount)
}

func (s *RollupServiceSuite) TestRun_NormalizesChannelCase() {
	day := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	orders := []models.SalesOrder{
		testOrder(day, "BLR001", " cash ", 10),
		testOrder(day, "BLR001", "zomato", 20),
	}

	s.orderRepo.EXPECT().GetDateRange().Return(&day, &day, nil)
	s.orderRepo.EXPECT().GetByDateRange(day, day).Return(orders, nil)
	s.storeRepo.EXPECT().GetByCodes([]string{"BLR001"}).Return([]models.Store{}, nil)

	var captured *models.DailySalesSummary
	s.summaryRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(summary *models.DailySalesSummary) error {
		captured = summary
		return nil
	})

	s.NoError(s.service.Run(s.ctx))
	s.Require().NotNil(captured)
	s.True(captured.InstoreCash.Equal(decimal.NewFromInt(10)))
	s.True(captured.AggregatorZomato.Equal(decimal.NewFromInt(20)))
	s.Nil(captured.Zone)
}

func (s *RollupServiceSuite) TestRun_OneRowPerDateAndStore() {
	day1 := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC)

	orders := []models.SalesOrder{
		testOrder(day1, "BLR001", "CASH", 10),
		testOrder(day1, "BLR002", "CASH", 20),
		testOrder(day2, "BLR001", "CASH", 30),
	}

	s.orderRepo.EXPECT().GetDateRange().Return(&day1, &day2, nil)
	s.orderRepo.EXPECT().GetByDateRange(day1, day2).Return(orders, nil)
	s.storeRepo.EXPECT().GetByCodes(gomock.Any()).Return([]models.Store{}, nil)
	s.summaryRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(3)

	s.NoError(s.service.Run(s.ctx))
}

func (s *RollupServiceSuite) TestRun_LookbackClampsWindow() {
	minDate := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	maxDate := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	expectedStart := maxDate.AddDate(0, 0, -90)

	s.orderRepo.EXPECT().GetDateRange().Return(&minDate, &maxDate, nil)
	s.orderRepo.EXPECT().GetByDateRange(expectedStart, maxDate).Return([]models.SalesOrder{}, nil)
	s.storeRepo.EXPECT().GetByCodes([]string{}).Return([]models.Store{}, nil)

	s.NoError(s.service.Run(s.ctx))
}

func (s *RollupServiceSuite) TestRun_NoOrders() {
	s.orderRepo.EXPECT().GetDateRange().Return(nil, nil, nil)

	s.NoError(s.service.Run(s.ctx))
}

func (s *RollupServiceSuite) TestRun_UpsertFailure() {
	day := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	s.orderRepo.EXPECT().GetDateRange().Return(&day, &day, nil)
	s.orderRepo.EXPECT().GetByDateRange(day, day).Return([]models.SalesOrder{
		testOrder(day, "BLR001", "CASH", 10),
	}, nil)
	s.storeRepo.EXPECT().GetByCodes([]string{"BLR001"}).Return([]models.Store{}, nil)
	s.summaryRepo.EXPECT().Upsert(gomock.Any()).Return(errors.New("constraint violation"))

	s.Error(s.service.Run(s.ctx))
}
