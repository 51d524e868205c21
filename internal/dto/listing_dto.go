package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateProfileRequest struct {
	Role     string `json:"role"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type CreateCropRequest struct {
	CropName    string  `json:"crop_name"`
	QuantityKg  int     `json:"quantity_kg"`
	PricePerKg  float64 `json:"price_per_kg"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
}

// PriceComparison relates a crop's asking price to its mandi reference
// price. Omitted entirely when no reference exists for the crop name.
type PriceComparison struct {
	MandiPrice float64 `json:"mandi_price"`
	Difference float64 `json:"difference"`
	Percentage string  `json:"percentage"`
}

// CropResponse is a crop row joined with its owner's display fields.
type CropResponse struct {
	ID             uuid.UUID        `json:"id"`
	FarmerID       uuid.UUID        `json:"farmer_id"`
	CropName       string           `json:"crop_name"`
	QuantityKg     int              `json:"quantity_kg"`
	PricePerKg     float64          `json:"price_per_kg"`
	Location       string           `json:"location"`
	Description    string           `json:"description,omitempty"`
	Sold           bool             `json:"is_sold"`
	CreatedAt      time.Time        `json:"created_at"`
	FarmerName     string           `json:"farmer_name"`
	FarmerLocation string           `json:"farmer_location"`
	Comparison     *PriceComparison `json:"mandi_comparison,omitempty" gorm:"-"`
}

type CropsListResponse struct {
	Crops []CropResponse `json:"crops"`
}

type CreateEquipmentRequest struct {
	EquipmentName string   `json:"equipment_name"`
	EquipmentType string   `json:"equipment_type"`
	PricePerDay   *float64 `json:"price_per_day"`
	SalePrice     *float64 `json:"sale_price"`
	ListingType   string   `json:"listing_type"`
	Location      string   `json:"location"`
	Description   string   `json:"description"`
}

type EquipmentResponse struct {
	ID            uuid.UUID `json:"id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	EquipmentName string    `json:"equipment_name"`
	EquipmentType string    `json:"equipment_type"`
	PricePerDay   *float64  `json:"price_per_day,omitempty"`
	SalePrice     *float64  `json:"sale_price,omitempty"`
	ListingType   string    `json:"listing_type"`
	Location      string    `json:"location"`
	Description   string    `json:"description,omitempty"`
	Available     bool      `json:"is_available"`
	CreatedAt     time.Time `json:"created_at"`
	OwnerName     string    `json:"farmer_name"`
	OwnerLocation string    `json:"farmer_location"`
}

type EquipmentListResponse struct {
	Equipment []EquipmentResponse `json:"equipment"`
}

type PurchaseCropRequest struct {
	QuantityKg int `json:"quantity_kg"`
}

type RentEquipmentRequest struct {
	Days int `json:"days"`
}

type SetMandiPriceRequest struct {
	PricePerKg float64 `json:"price"`
}
