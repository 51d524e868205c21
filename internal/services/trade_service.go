package services

import (
	"errors"
	"fmt"

	"github.com/annadata/backend/internal/dto"
	"github.com/annadata/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotBuyer         = errors.New("only buyers and distributors can trade")
	ErrOwnListing       = errors.New("cannot trade your own listing")
	ErrCropSold         = errors.New("crop is already sold")
	ErrEquipmentTaken   = errors.New("equipment is not available")
	ErrNotRentable      = errors.New("equipment is listed for sale only")
	ErrNotForSale       = errors.New("equipment is listed for rent only")
	ErrInvalidRentDays  = errors.New("rental days must be positive")
	ErrInvalidBuyAmount = errors.New("purchase quantity exceeds listed quantity")
)

// TradeService records settled trades. Each settle path runs in a single
// transaction and guards the listing state with a conditional write, so a
// listing settles at most once even under concurrent purchases.
type TradeService struct {
	db *gorm.DB
}

func NewTradeService(db *gorm.DB) *TradeService {
	return &TradeService{db: db}
}

// PurchaseCrop settles a crop purchase at the asking price. Quantity
// defaults to the full listed amount.
func (s *TradeService) PurchaseCrop(buyerID, cropID uuid.UUID, req *dto.PurchaseCropRequest) (*models.CropSale, error) {
	buyer, err := s.resolveBuyer(buyerID)
	if err != nil {
		return nil, err
	}

	var sale models.CropSale
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var crop models.Crop
		if err := tx.First(&crop, "id = ?", cropID).Error; err != nil {
			return ErrCropNotFound
		}
		if crop.FarmerID == buyer.ID {
			return ErrOwnListing
		}

		quantity := req.QuantityKg
		if quantity == 0 {
			quantity = crop.QuantityKg
		}
		if quantity < 0 || quantity > crop.QuantityKg {
			return ErrInvalidBuyAmount
		}

		// Conditional write: only the transaction that flips sold records a
		// sale, so two racing purchases cannot both settle the same crop.
		res := tx.Model(&models.Crop{}).
			Where("id = ? AND sold = ?", crop.ID, false).
			Update("sold", true)
		if res.Error != nil {
			return fmt.Errorf("failed to mark crop sold: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrCropSold
		}

		sale = models.CropSale{
			ID:         uuid.New(),
			CropID:     crop.ID,
			BuyerID:    buyer.ID,
			QuantityKg: quantity,
			SalePrice:  float64(quantity) * crop.PricePerKg,
		}
		if err := tx.Create(&sale).Error; err != nil {
			return fmt.Errorf("failed to record sale: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &sale, nil
}

// RentEquipment settles a rental of days x price_per_day. Listings in sale
// mode cannot be rented; rentals leave the listing available for further
// rentals.
func (s *TradeService) RentEquipment(renterID, equipmentID uuid.UUID, req *dto.RentEquipmentRequest) (*models.EquipmentRental, error) {
	renter, err := s.resolveBuyer(renterID)
	if err != nil {
		return nil, err
	}

	if req.Days <= 0 {
		return nil, ErrInvalidRentDays
	}

	var rental models.EquipmentRental
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var eq models.Equipment
		if err := tx.First(&eq, "id = ?", equipmentID).Error; err != nil {
			return ErrEquipmentNotFound
		}
		if eq.OwnerID == renter.ID {
			return ErrOwnListing
		}
		if eq.ListingType == models.ListingSale || eq.PricePerDay == nil {
			return ErrNotRentable
		}

		// Same-value conditional write: the row lock serializes against a
		// concurrent purchase flipping availability mid-rental.
		res := tx.Model(&models.Equipment{}).
			Where("id = ? AND available = ?", eq.ID, true).
			Update("available", true)
		if res.Error != nil {
			return fmt.Errorf("failed to verify availability: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrEquipmentTaken
		}

		rental = models.EquipmentRental{
			ID:          uuid.New(),
			EquipmentID: eq.ID,
			RenterID:    renter.ID,
			Days:        req.Days,
			TotalPrice:  float64(req.Days) * *eq.PricePerDay,
		}
		return tx.Create(&rental).Error
	})
	if err != nil {
		return nil, err
	}

	return &rental, nil
}

// PurchaseEquipment settles an equipment sale at the listed sale price and
// takes the listing off the marketplace.
func (s *TradeService) PurchaseEquipment(buyerID, equipmentID uuid.UUID) (*models.EquipmentSale, error) {
	buyer, err := s.resolveBuyer(buyerID)
	if err != nil {
		return nil, err
	}

	var sale models.EquipmentSale
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var eq models.Equipment
		if err := tx.First(&eq, "id = ?", equipmentID).Error; err != nil {
			return ErrEquipmentNotFound
		}
		if eq.OwnerID == buyer.ID {
			return ErrOwnListing
		}
		if eq.ListingType == models.ListingRent || eq.SalePrice == nil {
			return ErrNotForSale
		}

		// Conditional write: only the transaction that takes the listing off
		// the marketplace records the sale.
		res := tx.Model(&models.Equipment{}).
			Where("id = ? AND available = ?", eq.ID, true).
			Update("available", false)
		if res.Error != nil {
			return fmt.Errorf("failed to mark equipment unavailable: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrEquipmentTaken
		}

		sale = models.EquipmentSale{
			ID:          uuid.New(),
			EquipmentID: eq.ID,
			BuyerID:     buyer.ID,
			SalePrice:   *eq.SalePrice,
		}
		return tx.Create(&sale).Error
	})
	if err != nil {
		return nil, err
	}

	return &sale, nil
}

func (s *TradeService) resolveBuyer(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrNotBuyer
	}
	if user.Role != models.RoleBuyer && user.Role != models.RoleDistributor {
		return nil, ErrNotBuyer
	}
	return &user, nil
}
