package database

import (
	"testing"
	"time"

	"salesdash/internal/config"
	"salesdash/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Close(); err != nil {
		t.Logf("failed to close test database: %v", err)
	}
}

func CreateTestStore(t *testing.T, db *DB, storeCode string, zone string) *models.Store {
	t.Helper()

	cityID := int64(1)
	store := &models.Store{
		StoreCode: storeCode,
		Name:      "Store " + storeCode,
		CityID:    &cityID,
	}
	if zone != "" {
		store.Zone = &zone
	}

	if err := db.Create(store).Error; err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}

	return store
}

func CreateTestOrder(t *testing.T, db *DB, date time.Time, storeCode, channel string, payment *decimal.Decimal) *models.SalesOrder {
	t.Helper()

	order := &models.SalesOrder{
		BusinessDate: date,
		StoreCode:    storeCode,
		Channel:      channel,
	}
	if payment != nil {
		order.Payment = decimal.NullDecimal{Decimal: *payment, Valid: true}
	}

	if err := db.Create(order).Error; err != nil {
		t.Fatalf("failed to create test order: %v", err)
	}

	return order
}
