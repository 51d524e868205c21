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
	ErrCropNameRequired = errors.New("crop name is required")
	ErrInvalidQuantity  = errors.New("quantity must be a positive number of kilograms")
	ErrInvalidPrice     = errors.New("price must be positive")
	ErrNotFarmerCrop    = errors.New("only farmers can list crops")
	ErrCropNotFound     = errors.New("crop not found")
)

type CropService struct {
	db *gorm.DB
}

func NewCropService(db *gorm.DB) *CropService {
	return &CropService{db: db}
}

// Create inserts a crop listing owned by the caller. Repeated identical
// submissions create duplicate rows; there is no dedup.
func (s *CropService) Create(userID uuid.UUID, req *dto.CreateCropRequest) (*models.Crop, error) {
	if req.CropName == "" {
		return nil, ErrCropNameRequired
	}
	if req.QuantityKg <= 0 {
		return nil, ErrInvalidQuantity
	}
	if req.PricePerKg <= 0 {
		return nil, ErrInvalidPrice
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil || user.Role != models.RoleFarmer {
		return nil, ErrNotFarmerCrop
	}

	crop := models.Crop{
		ID:          uuid.New(),
		FarmerID:    user.ID,
		CropName:    req.CropName,
		QuantityKg:  req.QuantityKg,
		PricePerKg:  req.PricePerKg,
		Location:    req.Location,
		Description: req.Description,
	}

	if err := s.db.Create(&crop).Error; err != nil {
		return nil, fmt.Errorf("failed to create crop listing: %w", err)
	}

	return &crop, nil
}

// ListOwn returns all of the caller's crop listings regardless of status,
// newest first. A caller without a profile gets an empty slice, not an error.
func (s *CropService) ListOwn(userID uuid.UUID) ([]dto.CropResponse, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil || !user.HasProfile() {
		return []dto.CropResponse{}, nil
	}

	return s.query(s.db.Where("crops.farmer_id = ?", user.ID))
}

// ListMarketplace returns all unsold crops across all farmers, newest first.
func (s *CropService) ListMarketplace() ([]dto.CropResponse, error) {
	return s.query(s.db.Where("crops.sold = ?", false))
}

func (s *CropService) query(tx *gorm.DB) ([]dto.CropResponse, error) {
	rows := []dto.CropResponse{}
	err := tx.Model(&models.Crop{}).
		Select("crops.*, users.name AS farmer_name, users.location AS farmer_location").
		Joins("JOIN users ON users.id = crops.farmer_id AND users.deleted_at IS NULL").
		Order("crops.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch crops: %w", err)
	}
	return rows, nil
}
