package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/annadata/backend/internal/dto"
	"github.com/annadata/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrInvalidMandiPrice = errors.New("price must be positive")

// Default reference prices (rupees per kg) seeded at startup. Admins can
// overwrite them at runtime; deployments with a live feed replace the table.
var defaultMandiPrices = map[string]float64{
	"wheat":     1750,
	"rice":      2200,
	"corn":      1600,
	"barley":    1500,
	"soybean":   3500,
	"cotton":    5200,
	"sugarcane": 350,
	"potato":    800,
	"onion":     1200,
	"tomato":    1500,
}

// MarketService owns the mandi (wholesale market) reference price table and
// the asking-vs-reference comparison shown on marketplace listings.
type MarketService struct {
	db *gorm.DB
}

func NewMarketService(db *gorm.DB) *MarketService {
	return &MarketService{db: db}
}

// SeedDefaults inserts the default reference prices, leaving existing rows
// untouched.
func (s *MarketService) SeedDefaults() {
	for name, price := range defaultMandiPrices {
		row := models.MandiPrice{CropName: name, PricePerKg: price}
		if err := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "crop_name"}},
			DoNothing: true,
		}).Create(&row).Error; err != nil {
			slog.Error("failed to seed mandi price", "crop", name, "error", err)
		}
	}
}

func (s *MarketService) List() ([]models.MandiPrice, error) {
	prices := []models.MandiPrice{}
	if err := s.db.Order("crop_name ASC").Find(&prices).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch mandi prices: %w", err)
	}
	return prices, nil
}

// Set upserts the reference price for a crop name.
func (s *MarketService) Set(cropName string, price float64) (*models.MandiPrice, error) {
	name := strings.ToLower(strings.TrimSpace(cropName))
	if name == "" {
		return nil, ErrCropNameRequired
	}
	if price <= 0 {
		return nil, ErrInvalidMandiPrice
	}

	row := models.MandiPrice{CropName: name, PricePerKg: price}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "crop_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"price_per_kg", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to set mandi price: %w", err)
	}

	var saved models.MandiPrice
	if err := s.db.Where("crop_name = ?", name).First(&saved).Error; err != nil {
		return nil, fmt.Errorf("failed to read back mandi price: %w", err)
	}
	return &saved, nil
}

// Compare relates an asking price to the reference price for a crop name,
// case-insensitively. A missing reference yields nil, not an error.
func (s *MarketService) Compare(cropName string, askingPrice float64) *dto.PriceComparison {
	var row models.MandiPrice
	err := s.db.Where("crop_name = ?", strings.ToLower(cropName)).First(&row).Error
	if err != nil {
		return nil
	}

	difference := askingPrice - row.PricePerKg
	return &dto.PriceComparison{
		MandiPrice: row.PricePerKg,
		Difference: difference,
		Percentage: fmt.Sprintf("%.1f", difference/row.PricePerKg*100),
	}
}
