package services

import (
	"testing"
	"time"

	"github.com/annadata/backend/internal/dto"
	"github.com/annadata/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTradeService_PurchaseCrop(t *testing.T) {
	db := newTestDB(t)
	svc := NewTradeService(db)

	farmer := createUser(t, db, models.RoleFarmer, "A", "Punjab")
	buyer := createUser(t, db, models.RoleBuyer, "B", "Delhi")
	distributor := createUser(t, db, models.RoleDistributor, "D", "Mumbai")

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("buyer purchase settles at asking price and marks sold", func(t *testing.T) {
		crop := createCrop(t, db, farmer.ID, "Wheat", 1000, 18, now)

		sale, err := svc.PurchaseCrop(buyer.ID, crop.ID, &dto.PurchaseCropRequest{})
		require.NoError(t, err)
		assert.Equal(t, 1000, sale.QuantityKg)
		assert.InDelta(t, 18000, sale.SalePrice, 0.001)

		var updated models.Crop
		require.NoError(t, db.First(&updated, "id = ?", crop.ID).Error)
		assert.True(t, updated.Sold)
	})

	t.Run("sold crops cannot settle twice", func(t *testing.T) {
		crop := createCrop(t, db, farmer.ID, "Rice", 500, 25, now)
		_, err := svc.PurchaseCrop(buyer.ID, crop.ID, &dto.PurchaseCropRequest{})
		require.NoError(t, err)

		_, err = svc.PurchaseCrop(distributor.ID, crop.ID, &dto.PurchaseCropRequest{})
		assert.ErrorIs(t, err, ErrCropSold)

		var sales int64
		require.NoError(t, db.Model(&models.CropSale{}).Where("crop_id = ?", crop.ID).Count(&sales).Error)
		assert.EqualValues(t, 1, sales)
	})

	t.Run("settle is guarded by the sold flag, not the stale read", func(t *testing.T) {
		crop := createCrop(t, db, farmer.ID, "Cotton", 100, 52, now)
		require.NoError(t, db.Model(&models.Crop{}).Where("id = ?", crop.ID).Update("sold", true).Error)

		_, err := svc.PurchaseCrop(buyer.ID, crop.ID, &dto.PurchaseCropRequest{})
		assert.ErrorIs(t, err, ErrCropSold)

		var sales int64
		require.NoError(t, db.Model(&models.CropSale{}).Where("crop_id = ?", crop.ID).Count(&sales).Error)
		assert.Zero(t, sales)
	})

	t.Run("farmers cannot trade", func(t *testing.T) {
		crop := createCrop(t, db, farmer.ID, "Corn", 200, 15, now)
		_, err := svc.PurchaseCrop(farmer.ID, crop.ID, &dto.PurchaseCropRequest{})
		assert.ErrorIs(t, err, ErrNotBuyer)
	})

	t.Run("partial quantity settles proportionally", func(t *testing.T) {
		crop := createCrop(t, db, farmer.ID, "Barley", 300, 14, now)
		sale, err := svc.PurchaseCrop(distributor.ID, crop.ID, &dto.PurchaseCropRequest{QuantityKg: 100})
		require.NoError(t, err)
		assert.InDelta(t, 1400, sale.SalePrice, 0.001)
	})

	t.Run("quantity above the listing is rejected", func(t *testing.T) {
		crop := createCrop(t, db, farmer.ID, "Soybean", 50, 35, now)
		_, err := svc.PurchaseCrop(buyer.ID, crop.ID, &dto.PurchaseCropRequest{QuantityKg: 60})
		assert.ErrorIs(t, err, ErrInvalidBuyAmount)
	})

	t.Run("unknown crop", func(t *testing.T) {
		_, err := svc.PurchaseCrop(buyer.ID, farmer.ID, &dto.PurchaseCropRequest{})
		assert.ErrorIs(t, err, ErrCropNotFound)
	})
}

func TestTradeService_RentEquipment(t *testing.T) {
	db := newTestDB(t)
	svc := NewTradeService(db)
	eqSvc := NewEquipmentService(db)

	farmer := createUser(t, db, models.RoleFarmer, "A", "Punjab")
	buyer := createUser(t, db, models.RoleBuyer, "B", "Delhi")

	t.Run("rental totals days times the daily price", func(t *testing.T) {
		eq, err := eqSvc.Create(farmer.ID, validEquipmentRequest())
		require.NoError(t, err)

		rental, err := svc.RentEquipment(buyer.ID, eq.ID, &dto.RentEquipmentRequest{Days: 3})
		require.NoError(t, err)
		assert.Equal(t, 3, rental.Days)
		assert.InDelta(t, 3600, rental.TotalPrice, 0.001)
	})

	t.Run("zero days is rejected", func(t *testing.T) {
		eq, err := eqSvc.Create(farmer.ID, validEquipmentRequest())
		require.NoError(t, err)

		_, err = svc.RentEquipment(buyer.ID, eq.ID, &dto.RentEquipmentRequest{})
		assert.ErrorIs(t, err, ErrInvalidRentDays)
	})

	t.Run("sale-only listings cannot be rented", func(t *testing.T) {
		req := validEquipmentRequest()
		req.ListingType = models.ListingSale
		req.PricePerDay = nil
		eq, err := eqSvc.Create(farmer.ID, req)
		require.NoError(t, err)

		_, err = svc.RentEquipment(buyer.ID, eq.ID, &dto.RentEquipmentRequest{Days: 2})
		assert.ErrorIs(t, err, ErrNotRentable)
	})

	t.Run("owners cannot rent their own equipment", func(t *testing.T) {
		eq, err := eqSvc.Create(farmer.ID, validEquipmentRequest())
		require.NoError(t, err)

		_, err = svc.RentEquipment(farmer.ID, eq.ID, &dto.RentEquipmentRequest{Days: 2})
		assert.ErrorIs(t, err, ErrNotBuyer)
	})

	t.Run("purchased equipment cannot be rented", func(t *testing.T) {
		eq, err := eqSvc.Create(farmer.ID, validEquipmentRequest())
		require.NoError(t, err)
		_, err = svc.PurchaseEquipment(buyer.ID, eq.ID)
		require.NoError(t, err)

		_, err = svc.RentEquipment(buyer.ID, eq.ID, &dto.RentEquipmentRequest{Days: 2})
		assert.ErrorIs(t, err, ErrEquipmentTaken)
	})
}

func TestTradeService_PurchaseEquipment(t *testing.T) {
	db := newTestDB(t)
	svc := NewTradeService(db)
	eqSvc := NewEquipmentService(db)

	farmer := createUser(t, db, models.RoleFarmer, "A", "Punjab")
	buyer := createUser(t, db, models.RoleBuyer, "B", "Delhi")
	distributor := createUser(t, db, models.RoleDistributor, "D", "Mumbai")

	t.Run("purchase settles at the sale price and takes the listing off", func(t *testing.T) {
		eq, err := eqSvc.Create(farmer.ID, validEquipmentRequest())
		require.NoError(t, err)

		sale, err := svc.PurchaseEquipment(buyer.ID, eq.ID)
		require.NoError(t, err)
		assert.InDelta(t, 450000, sale.SalePrice, 0.001)

		var updated models.Equipment
		require.NoError(t, db.First(&updated, "id = ?", eq.ID).Error)
		assert.False(t, updated.Available)

		marketplace, err := eqSvc.ListMarketplace()
		require.NoError(t, err)
		assert.Empty(t, marketplace)
	})

	t.Run("sold equipment cannot settle twice", func(t *testing.T) {
		eq, err := eqSvc.Create(farmer.ID, validEquipmentRequest())
		require.NoError(t, err)
		_, err = svc.PurchaseEquipment(buyer.ID, eq.ID)
		require.NoError(t, err)

		_, err = svc.PurchaseEquipment(distributor.ID, eq.ID)
		assert.ErrorIs(t, err, ErrEquipmentTaken)

		var sales int64
		require.NoError(t, db.Model(&models.EquipmentSale{}).Where("equipment_id = ?", eq.ID).Count(&sales).Error)
		assert.EqualValues(t, 1, sales)
	})

	t.Run("rent-only listings cannot be bought", func(t *testing.T) {
		req := validEquipmentRequest()
		req.ListingType = models.ListingRent
		req.SalePrice = nil
		eq, err := eqSvc.Create(farmer.ID, req)
		require.NoError(t, err)

		_, err = svc.PurchaseEquipment(buyer.ID, eq.ID)
		assert.ErrorIs(t, err, ErrNotForSale)
	})

	t.Run("owners cannot buy their own equipment", func(t *testing.T) {
		eq, err := eqSvc.Create(farmer.ID, validEquipmentRequest())
		require.NoError(t, err)

		_, err = svc.PurchaseEquipment(farmer.ID, eq.ID)
		assert.ErrorIs(t, err, ErrNotBuyer)
	})

	t.Run("unknown equipment", func(t *testing.T) {
		_, err := svc.PurchaseEquipment(buyer.ID, farmer.ID)
		assert.ErrorIs(t, err, ErrEquipmentNotFound)
	})
}
