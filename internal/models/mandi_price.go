package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MandiPrice is a wholesale-market reference price per kg for a crop name.
// Names are stored lowercase and looked up case-insensitively.
type MandiPrice struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CropName   string    `gorm:"not null;size:100;uniqueIndex" json:"crop_name"`
	PricePerKg float64   `gorm:"type:decimal(10,2);not null" json:"price_per_kg"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (m *MandiPrice) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
