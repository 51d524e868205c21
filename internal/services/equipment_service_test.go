package services

import (
	"testing"

	"github.com/annadata/backend/internal/dto"
	"github.com/annadata/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func validEquipmentRequest() *dto.CreateEquipmentRequest {
	return &dto.CreateEquipmentRequest{
		EquipmentName: "John Deere 5050D",
		EquipmentType: "tractor",
		PricePerDay:   floatPtr(1200),
		SalePrice:     floatPtr(450000),
		ListingType:   models.ListingBoth,
		Location:      "Punjab",
	}
}

func TestEquipmentService_Create(t *testing.T) {
	db := newTestDB(t)
	svc := NewEquipmentService(db)

	farmer := createUser(t, db, models.RoleFarmer, "A", "Punjab")
	buyer := createUser(t, db, models.RoleBuyer, "B", "Delhi")

	equipmentCount := func() int64 {
		var n int64
		require.NoError(t, db.Model(&models.Equipment{}).Count(&n).Error)
		return n
	}

	t.Run("validates required fields", func(t *testing.T) {
		req := validEquipmentRequest()
		req.EquipmentName = ""
		_, err := svc.Create(farmer.ID, req)
		assert.ErrorIs(t, err, ErrEquipmentFieldsMissing)
		assert.EqualValues(t, 0, equipmentCount())
	})

	t.Run("rejects unknown listing type", func(t *testing.T) {
		req := validEquipmentRequest()
		req.ListingType = "lease"
		_, err := svc.Create(farmer.ID, req)
		assert.ErrorIs(t, err, ErrInvalidListingType)
	})

	t.Run("rent listings need a daily price", func(t *testing.T) {
		req := validEquipmentRequest()
		req.ListingType = models.ListingRent
		req.PricePerDay = nil
		_, err := svc.Create(farmer.ID, req)
		assert.ErrorIs(t, err, ErrRentPriceRequired)
	})

	t.Run("sale listings need a sale price", func(t *testing.T) {
		req := validEquipmentRequest()
		req.ListingType = models.ListingSale
		req.SalePrice = floatPtr(0)
		_, err := svc.Create(farmer.ID, req)
		assert.ErrorIs(t, err, ErrSalePriceRequired)
	})

	t.Run("non-farmer is forbidden", func(t *testing.T) {
		_, err := svc.Create(buyer.ID, validEquipmentRequest())
		assert.ErrorIs(t, err, ErrNotFarmerEquipment)
		assert.EqualValues(t, 0, equipmentCount())
	})

	t.Run("farmer creates a listing", func(t *testing.T) {
		eq, err := svc.Create(farmer.ID, validEquipmentRequest())
		require.NoError(t, err)
		assert.Equal(t, farmer.ID, eq.OwnerID)
		assert.True(t, eq.Available)
		assert.Equal(t, models.ListingBoth, eq.ListingType)
	})
}

func TestEquipmentService_List(t *testing.T) {
	db := newTestDB(t)
	svc := NewEquipmentService(db)

	farmer := createUser(t, db, models.RoleFarmer, "A", "Punjab")
	other := createUser(t, db, models.RoleFarmer, "C", "Haryana")

	mine, err := svc.Create(farmer.ID, validEquipmentRequest())
	require.NoError(t, err)
	_, err = svc.Create(other.ID, validEquipmentRequest())
	require.NoError(t, err)

	taken, err := svc.Create(other.ID, validEquipmentRequest())
	require.NoError(t, err)
	require.NoError(t, db.Model(taken).Update("available", false).Error)

	t.Run("owner mode returns only the caller's rows", func(t *testing.T) {
		rows, err := svc.ListOwn(farmer.ID)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, mine.ID, rows[0].ID)
		assert.Equal(t, "A", rows[0].OwnerName)
	})

	t.Run("marketplace mode filters unavailable rows", func(t *testing.T) {
		rows, err := svc.ListMarketplace()
		require.NoError(t, err)
		require.Len(t, rows, 2)
		for _, r := range rows {
			assert.True(t, r.Available)
		}
	})

	t.Run("no profile yields empty collection", func(t *testing.T) {
		account := createUser(t, db, "", "", "")
		rows, err := svc.ListOwn(account.ID)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("deleted accounts take their listings with them", func(t *testing.T) {
		require.NoError(t, db.Delete(other).Error)
		rows, err := svc.ListMarketplace()
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, mine.ID, rows[0].ID)
	})
}
