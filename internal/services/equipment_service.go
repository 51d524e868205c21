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
	ErrEquipmentFieldsMissing = errors.New("equipment name, type and location are required")
	ErrInvalidListingType     = errors.New("listing type must be rent, sale or both")
	ErrRentPriceRequired      = errors.New("price per day is required for rental listings")
	ErrSalePriceRequired      = errors.New("sale price is required for sale listings")
	ErrNotFarmerEquipment     = errors.New("only farmers can list equipment")
	ErrEquipmentNotFound      = errors.New("equipment not found")
)

type EquipmentService struct {
	db *gorm.DB
}

func NewEquipmentService(db *gorm.DB) *EquipmentService {
	return &EquipmentService{db: db}
}

func (s *EquipmentService) Create(userID uuid.UUID, req *dto.CreateEquipmentRequest) (*models.Equipment, error) {
	if err := validateEquipmentInput(req); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil || user.Role != models.RoleFarmer {
		return nil, ErrNotFarmerEquipment
	}

	eq := models.Equipment{
		ID:            uuid.New(),
		OwnerID:       user.ID,
		EquipmentName: req.EquipmentName,
		EquipmentType: req.EquipmentType,
		PricePerDay:   req.PricePerDay,
		SalePrice:     req.SalePrice,
		ListingType:   req.ListingType,
		Location:      req.Location,
		Description:   req.Description,
		Available:     true,
	}

	if err := s.db.Create(&eq).Error; err != nil {
		return nil, fmt.Errorf("failed to create equipment listing: %w", err)
	}

	return &eq, nil
}

// ListOwn returns all of the caller's equipment listings regardless of
// availability, newest first. No profile means an empty slice.
func (s *EquipmentService) ListOwn(userID uuid.UUID) ([]dto.EquipmentResponse, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil || !user.HasProfile() {
		return []dto.EquipmentResponse{}, nil
	}

	return s.query(s.db.Where("equipment.owner_id = ?", user.ID))
}

// ListMarketplace returns all available equipment across all owners, newest first.
func (s *EquipmentService) ListMarketplace() ([]dto.EquipmentResponse, error) {
	return s.query(s.db.Where("equipment.available = ?", true))
}

func (s *EquipmentService) query(tx *gorm.DB) ([]dto.EquipmentResponse, error) {
	rows := []dto.EquipmentResponse{}
	err := tx.Model(&models.Equipment{}).
		Select("equipment.*, users.name AS owner_name, users.location AS owner_location").
		Joins("JOIN users ON users.id = equipment.owner_id AND users.deleted_at IS NULL").
		Order("equipment.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch equipment: %w", err)
	}
	return rows, nil
}

func validateEquipmentInput(req *dto.CreateEquipmentRequest) error {
	if req.EquipmentName == "" || req.EquipmentType == "" || req.Location == "" {
		return ErrEquipmentFieldsMissing
	}

	switch req.ListingType {
	case models.ListingRent, models.ListingSale, models.ListingBoth:
	default:
		return ErrInvalidListingType
	}

	if req.ListingType != models.ListingSale {
		if req.PricePerDay == nil || *req.PricePerDay <= 0 {
			return ErrRentPriceRequired
		}
	}
	if req.ListingType != models.ListingRent {
		if req.SalePrice == nil || *req.SalePrice <= 0 {
			return ErrSalePriceRequired
		}
	}

	return nil
}
