package models

import (
	"time"

	"github.com/google/uuid"
)

// Listing modes for equipment.
const (
	ListingRent = "rent"
	ListingSale = "sale"
	ListingBoth = "both"
)

// Equipment is a farmer's machinery listing, offered for rent, sale, or both.
type Equipment struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID       uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	EquipmentName string    `gorm:"not null;size:255" json:"equipment_name"`
	EquipmentType string    `gorm:"not null;size:100" json:"equipment_type"`
	PricePerDay   *float64  `gorm:"type:decimal(10,2)" json:"price_per_day,omitempty"`
	SalePrice     *float64  `gorm:"type:decimal(12,2)" json:"sale_price,omitempty"`
	ListingType   string    `gorm:"not null;size:10" json:"listing_type"`
	Location      string    `gorm:"size:255" json:"location"`
	Description   string    `gorm:"size:1000" json:"description,omitempty"`
	Available     bool      `gorm:"default:true;index" json:"is_available"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
	Owner         User      `gorm:"foreignKey:OwnerID" json:"-"`
}

func (Equipment) TableName() string {
	return "equipment"
}

type EquipmentSale struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EquipmentID uuid.UUID `gorm:"type:uuid;not null;index" json:"equipment_id"`
	BuyerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"buyer_id"`
	SalePrice   float64   `gorm:"type:decimal(12,2);not null" json:"sale_price"`
	CreatedAt   time.Time `json:"created_at"`
	Equipment   Equipment `gorm:"foreignKey:EquipmentID" json:"-"`
	Buyer       User      `gorm:"foreignKey:BuyerID" json:"-"`
}

type EquipmentRental struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EquipmentID uuid.UUID `gorm:"type:uuid;not null;index" json:"equipment_id"`
	RenterID    uuid.UUID `gorm:"type:uuid;not null;index" json:"renter_id"`
	Days        int       `gorm:"not null" json:"days"`
	TotalPrice  float64   `gorm:"type:decimal(12,2);not null" json:"total_price"`
	CreatedAt   time.Time `json:"created_at"`
	Equipment   Equipment `gorm:"foreignKey:EquipmentID" json:"-"`
	Renter      User      `gorm:"foreignKey:RenterID" json:"-"`
}
