package services

import (
	"testing"
	"time"

	"github.com/annadata/backend/internal/config"
	"github.com/annadata/backend/internal/database"
	"github.com/annadata/backend/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	}
}

func createUser(t *testing.T, db *gorm.DB, role, name, location string) *models.User {
	t.Helper()

	user := models.User{
		ID:       uuid.New(),
		Email:    uuid.NewString() + "@example.com",
		Password: "hashed",
		Role:     role,
		Name:     name,
		Location: location,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createCrop(t *testing.T, db *gorm.DB, farmerID uuid.UUID, name string, quantity int, price float64, createdAt time.Time) *models.Crop {
	t.Helper()

	crop := models.Crop{
		ID:         uuid.New(),
		FarmerID:   farmerID,
		CropName:   name,
		QuantityKg: quantity,
		PricePerKg: price,
		Location:   "Punjab",
		CreatedAt:  createdAt,
	}
	require.NoError(t, db.Create(&crop).Error)
	return &crop
}
