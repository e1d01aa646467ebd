package repositories

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"salesdash/internal/models"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrDocumentStoreUnavailable marks connectivity-class failures
	// (server selection timeout, pool exhaustion). Handlers map it to a
	// service-unavailable response.
	ErrDocumentStoreUnavailable = errors.New("document store unavailable")
)

// Source document field names. The mapping analysis flags these as
// unverified assumptions ("actual field names may differ"), so they live
// here as a single external contract to confirm against the live store.
const (
	fieldTender          = "tender"
	fieldStoreCode       = "store_code"
	fieldBusinessDate    = "business_date"
	fieldGrossAmount     = "gross_amount"
	fieldDiscount        = "discount"
	fieldTax             = "tax"
	fieldServiceCharge   = "service_charge"
	fieldPackagingCharge = "packaging_charge"
	fieldDeliveryCharge  = "delivery_charge"
	fieldRoundOff        = "round_off"
	fieldOrderCount      = "order_count"
)

// measureFields are the summed measures, in output order.
var measureFields = []string{
	fieldGrossAmount,
	fieldDiscount,
	fieldTax,
	fieldServiceCharge,
	fieldPackagingCharge,
	fieldDeliveryCharge,
	fieldRoundOff,
}

// salesRecordRepository implements SalesRecordRepositoryInterface over a
// document store collection.
type salesRecordRepository struct {
	collection *mongo.Collection
}

// NewSalesRecordRepository creates a new sales record repository
func NewSalesRecordRepository(collection *mongo.Collection) SalesRecordRepositoryInterface {
	return &salesRecordRepository{
		collection: collection,
	}
}

// tenderGroupRow is the decoded shape of one $group result.
type tenderGroupRow struct {
	Tender          string  `bson:"_id"`
	GrossAmount     float64 `bson:"gross_amount"`
	Discount        float64 `bson:"discount"`
	Tax             float64 `bson:"tax"`
	ServiceCharge   float64 `bson:"service_charge"`
	PackagingCharge float64 `bson:"packaging_charge"`
	DeliveryCharge  float64 `bson:"delivery_charge"`
	RoundOff        float64 `bson:"round_off"`
	OrderCount      int64   `bson:"order_count"`
}

// buildTenderPipeline constructs the aggregation pipeline: match the
// half-open date window (and optional store set), group by tender, sum
// each measure with null coalesced to zero, count rows, sort by tender.
func buildTenderPipeline(start, end time.Time, storeCodes []string) mongo.Pipeline {
	match := bson.M{
		fieldBusinessDate: bson.M{"$gte": start, "$lt": end},
	}
	if len(storeCodes) > 0 {
		match[fieldStoreCode] = bson.M{"$in": storeCodes}
	}

	group := bson.D{{Key: "_id", Value: "$" + fieldTender}}
	for _, field := range measureFields {
		group = append(group, bson.E{
			Key:   field,
			Value: bson.D{{Key: "$sum", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$" + field, 0}}}}},
		})
	}
	group = append(group, bson.E{
		Key:   fieldOrderCount,
		Value: bson.D{{Key: "$sum", Value: 1}},
	})

	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$group", Value: group}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}

// AggregateRecords computes the same per-tender sums as the store-side
// pipeline, in memory. It is the reference implementation of the grouping
// contract: a missing measure counts as zero, every row counts toward
// order_count, and groups come back sorted by tender.
func AggregateRecords(records []models.SalesRecord) []models.TenderAggregate {
	groups := make(map[string]*models.TenderAggregate)

	for _, rec := range records {
		agg, ok := groups[rec.Tender]
		if !ok {
			agg = &models.TenderAggregate{Tender: rec.Tender}
			groups[rec.Tender] = agg
		}

		agg.GrossAmount = agg.GrossAmount.Add(measureOrZero(rec.GrossAmount))
		agg.Discount = agg.Discount.Add(measureOrZero(rec.Discount))
		agg.Tax = agg.Tax.Add(measureOrZero(rec.Tax))
		agg.ServiceCharge = agg.ServiceCharge.Add(measureOrZero(rec.ServiceCharge))
		agg.PackagingCharge = agg.PackagingCharge.Add(measureOrZero(rec.PackagingCharge))
		agg.DeliveryCharge = agg.DeliveryCharge.Add(measureOrZero(rec.DeliveryCharge))
		agg.RoundOff = agg.RoundOff.Add(measureOrZero(rec.RoundOff))
		agg.OrderCount++
	}

	tenders := make([]string, 0, len(groups))
	for tender := range groups {
		tenders = append(tenders, tender)
	}
	sort.Strings(tenders)

	aggregates := make([]models.TenderAggregate, 0, len(tenders))
	for _, tender := range tenders {
		aggregates = append(aggregates, *groups[tender])
	}
	return aggregates
}

func measureOrZero(v *float64) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*v)
}

// AggregateByTender runs the grouping query and converts the result rows
// into domain aggregates.
func (r *salesRecordRepository) AggregateByTender(ctx context.Context, start, end time.Time, storeCodes []string) ([]models.TenderAggregate, error) {
	pipeline := buildTenderPipeline(start, end, storeCodes)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, wrapStoreError("aggregate sales records", err)
	}
	defer cursor.Close(ctx)

	var rows []tenderGroupRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, wrapStoreError("decode sales aggregates", err)
	}

	aggregates := make([]models.TenderAggregate, 0, len(rows))
	for _, row := range rows {
		aggregates = append(aggregates, models.TenderAggregate{
			Tender:          row.Tender,
			GrossAmount:     decimal.NewFromFloat(row.GrossAmount),
			Discount:        decimal.NewFromFloat(row.Discount),
			Tax:             decimal.NewFromFloat(row.Tax),
			ServiceCharge:   decimal.NewFromFloat(row.ServiceCharge),
			PackagingCharge: decimal.NewFromFloat(row.PackagingCharge),
			DeliveryCharge:  decimal.NewFromFloat(row.DeliveryCharge),
			RoundOff:        decimal.NewFromFloat(row.RoundOff),
			OrderCount:      row.OrderCount,
		})
	}

	return aggregates, nil
}

// InsertRecords writes raw sales documents. Used by the upload path and
// test fixtures.
func (r *salesRecordRepository) InsertRecords(ctx context.Context, records []models.SalesRecord) error {
	if len(records) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(records))
	for i := range records {
		docs = append(docs, records[i])
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return wrapStoreError("insert sales records", err)
	}

	return nil
}

// wrapStoreError classifies connectivity failures so callers can surface
// them as service-unavailable instead of internal errors.
func wrapStoreError(op string, err error) error {
	if mongo.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("failed to %s: %w: %v", op, ErrDocumentStoreUnavailable, err)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
