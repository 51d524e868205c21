package services

import (
	"fmt"

	"github.com/annadata/backend/internal/dto"
	"github.com/annadata/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Demo projection constants: 15% of listed crop value counts as projected
// sales, each equipment item rents five days a month, and costs eat 30%
// of earnings.
const (
	projectedSalesRatio = 0.15
	projectedRentDays   = 5
	costRatio           = 0.30
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// Stats returns role-dependent dashboard aggregates for the caller.
// The settled figures sum recorded trades; the projected figures are the
// explicitly fictional demo estimate and carry no authority.
func (s *DashboardService) Stats(userID uuid.UUID) (*dto.DashboardResponse, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil || !user.HasProfile() {
		return nil, ErrProfileMissing
	}

	if user.Role == models.RoleFarmer {
		stats, err := s.farmerStats(user.ID)
		if err != nil {
			return nil, err
		}
		return &dto.DashboardResponse{Role: user.Role, Stats: stats}, nil
	}

	stats, err := s.buyerStats(user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{Role: user.Role, Stats: stats}, nil
}

func (s *DashboardService) farmerStats(farmerID uuid.UUID) (*dto.FarmerStats, error) {
	var (
		cropCount      int64
		equipmentCount int64
		saleEarnings   float64
		eqSaleEarnings float64
		rentalEarnings float64
		crops          []models.Crop
		equipment      []models.Equipment
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Crop{}).Where("farmer_id = ?", farmerID).Count(&cropCount).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Equipment{}).Where("owner_id = ?", farmerID).Count(&equipmentCount).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.CropSale{}).
			Joins("JOIN crops ON crops.id = crop_sales.crop_id").
			Where("crops.farmer_id = ?", farmerID).
			Select("COALESCE(SUM(crop_sales.sale_price), 0)").
			Scan(&saleEarnings).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.EquipmentSale{}).
			Joins("JOIN equipment ON equipment.id = equipment_sales.equipment_id").
			Where("equipment.owner_id = ?", farmerID).
			Select("COALESCE(SUM(equipment_sales.sale_price), 0)").
			Scan(&eqSaleEarnings).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.EquipmentRental{}).
			Joins("JOIN equipment ON equipment.id = equipment_rentals.equipment_id").
			Where("equipment.owner_id = ?", farmerID).
			Select("COALESCE(SUM(equipment_rentals.total_price), 0)").
			Scan(&rentalEarnings).Error; err != nil {
			return err
		}
		if err := tx.Where("farmer_id = ?", farmerID).Find(&crops).Error; err != nil {
			return err
		}
		return tx.Where("owner_id = ?", farmerID).Find(&equipment).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch farmer stats: %w", err)
	}

	earnings := saleEarnings + eqSaleEarnings + rentalEarnings

	projected := 0.0
	for _, c := range crops {
		projected += float64(c.QuantityKg) * c.PricePerKg * projectedSalesRatio
	}
	for _, e := range equipment {
		if e.PricePerDay != nil {
			projected += *e.PricePerDay * projectedRentDays
		}
	}

	return &dto.FarmerStats{
		CropListings:       cropCount,
		EquipmentListings:  equipmentCount,
		TotalListings:      cropCount + equipmentCount,
		TotalEarnings:      fmt.Sprintf("%.2f", earnings),
		NetProfit:          fmt.Sprintf("%.2f", earnings*(1-costRatio)),
		ProjectedEarnings:  fmt.Sprintf("%.2f", projected),
		ProjectedNetProfit: fmt.Sprintf("%.2f", projected*(1-costRatio)),
	}, nil
}

func (s *DashboardService) buyerStats(buyerID uuid.UUID) (*dto.BuyerStats, error) {
	var cropPurchases, equipmentPurchases, rentals int64

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.CropSale{}).Where("buyer_id = ?", buyerID).Count(&cropPurchases).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.EquipmentSale{}).Where("buyer_id = ?", buyerID).Count(&equipmentPurchases).Error; err != nil {
			return err
		}
		return tx.Model(&models.EquipmentRental{}).Where("renter_id = ?", buyerID).Count(&rentals).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch buyer stats: %w", err)
	}

	return &dto.BuyerStats{
		TotalPurchases: cropPurchases + equipmentPurchases,
		TotalRentals:   rentals,
	}, nil
}
