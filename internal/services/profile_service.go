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
	ErrInvalidRole    = errors.New("role must be farmer, buyer or distributor")
	ErrNameRequired   = errors.New("name is required")
	ErrProfileExists  = errors.New("profile already created")
	ErrProfileMissing = errors.New("profile not yet created")
)

// ProfileService manages the marketplace profile attached to an account.
// Role is set exactly once; there is no update path.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

func (s *ProfileService) Create(userID uuid.UUID, req *dto.CreateProfileRequest) (*models.User, error) {
	switch req.Role {
	case models.RoleFarmer, models.RoleBuyer, models.RoleDistributor:
	default:
		return nil, ErrInvalidRole
	}
	if req.Name == "" {
		return nil, ErrNameRequired
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}
	if user.HasProfile() {
		return nil, ErrProfileExists
	}

	updates := map[string]interface{}{
		"role":     req.Role,
		"name":     req.Name,
		"location": req.Location,
	}
	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return &user, nil
}

// Get returns the caller's profile, or nil without error when the onboarding
// step has not happened yet.
func (s *ProfileService) Get(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}
	if !user.HasProfile() {
		return nil, nil
	}
	return &user, nil
}

// Resolve returns the caller's profile, failing when it does not exist.
// Write paths use this; list paths special-case the missing profile instead.
func (s *ProfileService) Resolve(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrProfileMissing
	}
	if !user.HasProfile() {
		return nil, ErrProfileMissing
	}
	return &user, nil
}
