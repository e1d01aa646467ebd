package models

import "time"

// Store holds per-store metadata joined into the daily rollup.
// Zone is a pointer because the column was added by a later migration
// and older deployments may carry rows without it.
type Store struct {
	StoreCode string    `gorm:"type:varchar(50);primary_key" json:"store_code"`
	Name      string    `gorm:"type:varchar(255)" json:"name"`
	CityID    *int64    `json:"city_id,omitempty"`
	Zone      *string   `gorm:"type:varchar(100)" json:"zone,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Store) TableName() string {
	return "stores"
}
