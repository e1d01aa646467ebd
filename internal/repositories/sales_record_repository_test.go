package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"salesdash/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
)

func measure(v float64) *float64 {
	return &v
}

type SalesRecordRepositorySuite struct {
	suite.Suite
	start time.Time
	end   time.Time
}

func TestSalesRecordRepositorySuite(t *testing.T) {
	suite.Run(t, new(SalesRecordRepositorySuite))
}

func (s *SalesRecordRepositorySuite) SetupTest() {
	s.start = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.end = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
}

func (s *SalesRecordRepositorySuite) TestBuildTenderPipeline_Stages() {
	pipeline := buildTenderPipeline(s.start, s.end, nil)
	s.Require().Len(pipeline, 3)

	s.Equal("$match", pipeline[0][0].Key)
	s.Equal("$group", pipeline[1][0].Key)
	s.Equal("$sort", pipeline[2][0].Key)
}

func (s *SalesRecordRepositorySuite) TestBuildTenderPipeline_MatchWindow() {
	pipeline := buildTenderPipeline(s.start, s.end, nil)

	match, ok := pipeline[0][0].Value.(bson.M)
	s.Require().True(ok)

	window, ok := match[fieldBusinessDate].(bson.M)
	s.Require().True(ok)
	s.Equal(s.start, window["$gte"])
	s.Equal(s.end, window["$lt"])

	_, hasStoreFilter := match[fieldStoreCode]
	s.False(hasStoreFilter)
}

func (s *SalesRecordRepositorySuite) TestBuildTenderPipeline_StoreFilter() {
	pipeline := buildTenderPipeline(s.start, s.end, []string{"BLR001", "BLR002"})

	match := pipeline[0][0].Value.(bson.M)
	filter, ok := match[fieldStoreCode].(bson.M)
	s.Require().True(ok)
	s.Equal([]string{"BLR001", "BLR002"}, filter["$in"])
}

// Each measure must be summed through $ifNull so missing and null values
// count as zero, and order_count must count rows.
func (s *SalesRecordRepositorySuite) TestBuildTenderPipeline_GroupCoalescesNulls() {
	pipeline := buildTenderPipeline(s.start, s.end, nil)

	group, ok := pipeline[1][0].Value.(bson.D)
	s.Require().True(ok)

	s.Equal("_id", group[0].Key)
	s.Equal("$"+fieldTender, group[0].Value)

	// one _id, seven measures, one order count
	s.Require().Len(group, 2+len(measureFields))

	for i, field := range measureFields {
		entry := group[i+1]
		s.Equal(field, entry.Key)

		sum, ok := entry.Value.(bson.D)
		s.Require().True(ok)
		s.Equal("$sum", sum[0].Key)

		ifNull, ok := sum[0].Value.(bson.D)
		s.Require().True(ok)
		s.Equal("$ifNull", ifNull[0].Key)
		s.Equal(bson.A{"$" + field, 0}, ifNull[0].Value)
	}

	count := group[len(group)-1]
	s.Equal(fieldOrderCount, count.Key)
	s.Equal(bson.D{{Key: "$sum", Value: 1}}, count.Value)
}

func (s *SalesRecordRepositorySuite) TestBuildTenderPipeline_SortsByTender() {
	pipeline := buildTenderPipeline(s.start, s.end, nil)

	sort, ok := pipeline[2][0].Value.(bson.D)
	s.Require().True(ok)
	s.Equal(bson.D{{Key: "_id", Value: 1}}, sort)
}

// In-memory grouping must mirror the pipeline: missing measures sum as
// zero while the row still counts toward order_count.
func (s *SalesRecordRepositorySuite) TestAggregateRecords_NullSubstitution() {
	day := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	records := []models.SalesRecord{
		{Tender: "CASH", StoreCode: "BLR001", BusinessDate: day,
			GrossAmount: measure(100), Tax: measure(5)},
		{Tender: "CASH", StoreCode: "BLR001", BusinessDate: day,
			Discount: measure(7.50)},
		{Tender: "CARD", StoreCode: "BLR002", BusinessDate: day,
			GrossAmount: measure(250), ServiceCharge: measure(12.50), RoundOff: measure(-0.50)},
	}

	aggregates := AggregateRecords(records)
	s.Require().Len(aggregates, 2)

	// sorted by tender, like the pipeline's $sort on _id
	card := aggregates[0]
	s.Equal("CARD", card.Tender)
	s.True(card.GrossAmount.Equal(decimal.NewFromInt(250)))
	s.True(card.ServiceCharge.Equal(decimal.NewFromFloat(12.50)))
	s.True(card.RoundOff.Equal(decimal.NewFromFloat(-0.50)))
	s.True(card.Discount.IsZero())
	s.Equal(int64(1), card.OrderCount)

	cash := aggregates[1]
	s.Equal("CASH", cash.Tender)
	s.True(cash.GrossAmount.Equal(decimal.NewFromInt(100)))
	s.True(cash.Discount.Equal(decimal.NewFromFloat(7.50)))
	s.True(cash.Tax.Equal(decimal.NewFromInt(5)))
	s.Equal(int64(2), cash.OrderCount)
}

func (s *SalesRecordRepositorySuite) TestAggregateRecords_Empty() {
	aggregates := AggregateRecords(nil)
	s.NotNil(aggregates)
	s.Empty(aggregates)
}

// Summing the groups must reproduce the ungrouped totals exactly.
func (s *SalesRecordRepositorySuite) TestAggregateRecords_SumOfGroupsMatchesUngrouped() {
	day := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	records := []models.SalesRecord{
		{Tender: "CASH", BusinessDate: day, GrossAmount: measure(100.10), Discount: measure(3.33)},
		{Tender: "CARD", BusinessDate: day, GrossAmount: measure(200.20), Tax: measure(18)},
		{Tender: "UPI", BusinessDate: day, GrossAmount: measure(50.05)},
		{Tender: "UPI", BusinessDate: day, DeliveryCharge: measure(25)},
	}

	grouped := AggregateRecords(records)

	var groupedGross, groupedDiscount, groupedTax, groupedDelivery decimal.Decimal
	var groupedCount int64
	for _, agg := range grouped {
		groupedGross = groupedGross.Add(agg.GrossAmount)
		groupedDiscount = groupedDiscount.Add(agg.Discount)
		groupedTax = groupedTax.Add(agg.Tax)
		groupedDelivery = groupedDelivery.Add(agg.DeliveryCharge)
		groupedCount += agg.OrderCount
	}

	s.True(groupedGross.Equal(decimal.NewFromFloat(350.35)))
	s.True(groupedDiscount.Equal(decimal.NewFromFloat(3.33)))
	s.True(groupedTax.Equal(decimal.NewFromInt(18)))
	s.True(groupedDelivery.Equal(decimal.NewFromInt(25)))
	s.Equal(int64(len(records)), groupedCount)
}

func (s *SalesRecordRepositorySuite) TestWrapStoreError_Classification() {
	err := wrapStoreError("aggregate sales records", context.DeadlineExceeded)
	s.ErrorIs(err, ErrDocumentStoreUnavailable)

	err = wrapStoreError("aggregate sales records", errors.New("cursor decode failed"))
	s.NotErrorIs(err, ErrDocumentStoreUnavailable)
	s.Contains(err.Error(), "aggregate sales records")
}
