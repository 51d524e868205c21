package models

import (
	"time"

	"github.com/google/uuid"
)

// Crop is a farmer's crop listing. Rows are write-once except Sold, which is
// flipped by a completed purchase.
type Crop struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FarmerID    uuid.UUID `gorm:"type:uuid;not null;index" json:"farmer_id"`
	CropName    string    `gorm:"not null;size:255" json:"crop_name"`
	QuantityKg  int       `gorm:"not null" json:"quantity_kg"`
	PricePerKg  float64   `gorm:"type:decimal(10,2);not null" json:"price_per_kg"`
	Location    string    `gorm:"size:255" json:"location"`
	Description string    `gorm:"size:1000" json:"description,omitempty"`
	Sold        bool      `gorm:"default:false;index" json:"is_sold"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	Farmer      User      `gorm:"foreignKey:FarmerID" json:"-"`
}

type CropSale struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CropID     uuid.UUID `gorm:"type:uuid;not null;index" json:"crop_id"`
	BuyerID    uuid.UUID `gorm:"type:uuid;not null;index" json:"buyer_id"`
	QuantityKg int       `gorm:"not null" json:"quantity_kg"`
	SalePrice  float64   `gorm:"type:decimal(12,2);not null" json:"sale_price"`
	CreatedAt  time.Time `json:"created_at"`
	Crop       Crop      `gorm:"foreignKey:CropID" json:"-"`
	Buyer      User      `gorm:"foreignKey:BuyerID" json:"-"`
}
