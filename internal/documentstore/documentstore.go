package documentstore

import (
	"context"
	"fmt"
	"log"

	"salesdash/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// SalesRecordsCollection is the collection holding raw per-order sales
// documents uploaded by stores.
const SalesRecordsCollection = "sales_records"

// Store wraps the document store client. The client maintains a bounded
// connection pool shared by all concurrent requests; acquisition blocks
// at most the configured server selection timeout.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	config *config.MongoConfig
}

func New(ctx context.Context, cfg *config.MongoConfig) (*Store, error) {
	opts := options.Client().
		ApplyURI(cfg.URI()).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping document store at %s:%s: %w", cfg.Host, cfg.Port, err)
	}

	log.Printf("Document store connected: %s:%s/%s (pool %d-%d)",
		cfg.Host, cfg.Port, cfg.Database, cfg.MinPoolSize, cfg.MaxPoolSize)

	return &Store{
		client: client,
		db:     client.Database(cfg.Database),
		config: cfg,
	}, nil
}

// Collection returns a collection handle by name.
func (s *Store) Collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// HealthCheck verifies connectivity with a ping.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close releases the client and its connection pool.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates the query indexes the report pipeline relies on.
// Index creation failures are logged, not fatal.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "business_date", Value: 1}}},
		{Keys: bson.D{{Key: "store_code", Value: 1}}},
		{Keys: bson.D{{Key: "tender", Value: 1}}},
		{Keys: bson.D{{Key: "store_code", Value: 1}, {Key: "business_date", Value: -1}}},
	}

	if _, err := s.Collection(SalesRecordsCollection).Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("Warning: failed to create document store indexes: %v", err)
		return err
	}

	return nil
}
