package repositories

import (
	"fmt"

	"salesdash/internal/models"

	"gorm.io/gorm"
)

// storeRepository implements StoreRepositoryInterface
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository creates a new store repository
func NewStoreRepository(db *gorm.DB) StoreRepositoryInterface {
	return &storeRepository{
		db: db,
	}
}

// GetByCodes retrieves store metadata for the given store codes. Codes
// with no matching row are simply absent from the result.
func (r *storeRepository) GetByCodes(codes []string) ([]models.Store, error) {
	if len(codes) == 0 {
		return []models.Store{}, nil
	}

	var stores []models.Store
	if err := r.db.Where("store_code IN ?", codes).Find(&stores).Error; err != nil {
		return nil, fmt.Errorf("failed to get stores by codes: %w", err)
	}
	return stores, nil
}
