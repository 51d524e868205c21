package services

import (
	"testing"
	"time"

	"github.com/annadata/backend/internal/dto"
	"github.com/annadata/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCropRequest() *dto.CreateCropRequest {
	return &dto.CreateCropRequest{
		CropName:   "Wheat",
		QuantityKg: 1000,
		PricePerKg: 18,
		Location:   "Punjab",
	}
}

func TestCropService_Create(t *testing.T) {
	db := newTestDB(t)
	svc := NewCropService(db)

	farmer := createUser(t, db, models.RoleFarmer, "A", "Punjab")
	buyer := createUser(t, db, models.RoleBuyer, "B", "Delhi")

	cropCount := func() int64 {
		var n int64
		require.NoError(t, db.Model(&models.Crop{}).Count(&n).Error)
		return n
	}

	t.Run("missing fields persist nothing", func(t *testing.T) {
		cases := []*dto.CreateCropRequest{
			{QuantityKg: 1000, PricePerKg: 18},
			{CropName: "Wheat", PricePerKg: 18},
			{CropName: "Wheat", QuantityKg: 1000},
			{CropName: "Wheat", QuantityKg: -5, PricePerKg: 18},
			{CropName: "Wheat", QuantityKg: 1000, PricePerKg: -1},
		}
		for _, req := range cases {
			_, err := svc.Create(farmer.ID, req)
			assert.Error(t, err)
		}
		assert.EqualValues(t, 0, cropCount())
	})

	t.Run("non-farmer is forbidden and persists nothing", func(t *testing.T) {
		_, err := svc.Create(buyer.ID, validCropRequest())
		assert.ErrorIs(t, err, ErrNotFarmerCrop)
		assert.EqualValues(t, 0, cropCount())
	})

	t.Run("farmer creates a listing", func(t *testing.T) {
		crop, err := svc.Create(farmer.ID, validCropRequest())
		require.NoError(t, err)
		assert.Equal(t, farmer.ID, crop.FarmerID)
		assert.Equal(t, "Wheat", crop.CropName)
		assert.False(t, crop.Sold)
		assert.NotZero(t, crop.CreatedAt)
	})

	t.Run("identical submissions create duplicate rows", func(t *testing.T) {
		before := cropCount()
		_, err := svc.Create(farmer.ID, validCropRequest())
		require.NoError(t, err)
		_, err = svc.Create(farmer.ID, validCropRequest())
		require.NoError(t, err)
		assert.Equal(t, before+2, cropCount())
	})
}

func TestCropService_ListOwn(t *testing.T) {
	db := newTestDB(t)
	svc := NewCropService(db)

	farmer := createUser(t, db, models.RoleFarmer, "A", "Punjab")
	other := createUser(t, db, models.RoleFarmer, "C", "Haryana")

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	createCrop(t, db, farmer.ID, "Wheat", 1000, 18, base)
	createCrop(t, db, farmer.ID, "Rice", 500, 25, base.Add(2*time.Hour))
	sold := createCrop(t, db, farmer.ID, "Corn", 200, 15, base.Add(1*time.Hour))
	require.NoError(t, db.Model(sold).Update("sold", true).Error)
	createCrop(t, db, other.ID, "Barley", 300, 14, base.Add(3*time.Hour))

	t.Run("returns only the caller's rows, any status, newest first", func(t *testing.T) {
		crops, err := svc.ListOwn(farmer.ID)
		require.NoError(t, err)
		require.Len(t, crops, 3)
		for _, c := range crops {
			assert.Equal(t, farmer.ID, c.FarmerID)
		}
		assert.Equal(t, "Rice", crops[0].CropName)
		assert.Equal(t, "Corn", crops[1].CropName)
		assert.Equal(t, "Wheat", crops[2].CropName)
		for i := 1; i < len(crops); i++ {
			assert.False(t, crops[i-1].CreatedAt.Before(crops[i].CreatedAt))
		}
		assert.Equal(t, "A", crops[0].FarmerName)
		assert.Equal(t, "Punjab", crops[0].FarmerLocation)
	})

	t.Run("no profile yields empty collection, not an error", func(t *testing.T) {
		account := createUser(t, db, "", "", "")
		crops, err := svc.ListOwn(account.ID)
		require.NoError(t, err)
		assert.Empty(t, crops)
	})
}

func TestCropService_ListMarketplace(t *testing.T) {
	db := newTestDB(t)
	svc := NewCropService(db)

	farmer := createUser(t, db, models.RoleFarmer, "A", "Punjab")
	other := createUser(t, db, models.RoleFarmer, "C", "Haryana")

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	createCrop(t, db, farmer.ID, "Wheat", 1000, 18, base)
	sold := createCrop(t, db, farmer.ID, "Rice", 500, 25, base.Add(time.Hour))
	require.NoError(t, db.Model(sold).Update("sold", true).Error)
	createCrop(t, db, other.ID, "Barley", 300, 14, base.Add(2*time.Hour))

	crops, err := svc.ListMarketplace()
	require.NoError(t, err)
	require.Len(t, crops, 2)

	// Sold rows never appear, all owners do, newest first.
	assert.Equal(t, "Barley", crops[0].CropName)
	assert.Equal(t, "C", crops[0].FarmerName)
	assert.Equal(t, "Wheat", crops[1].CropName)
	for _, c := range crops {
		assert.False(t, c.Sold)
	}

	// A deleted account takes its listings off the marketplace with it.
	require.NoError(t, db.Delete(other).Error)
	crops, err = svc.ListMarketplace()
	require.NoError(t, err)
	require.Len(t, crops, 1)
	assert.Equal(t, "Wheat", crops[0].CropName)
}
