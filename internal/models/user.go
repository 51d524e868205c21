package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Marketplace roles. Role stays empty until the profile is created and is
// immutable afterwards.
const (
	RoleFarmer      = "farmer"
	RoleBuyer       = "buyer"
	RoleDistributor = "distributor"
	RoleAdmin       = "admin"
)

// User is an account plus its marketplace profile. Registration creates the
// account row; the profile fields (role, name, location) are filled in by a
// separate onboarding step.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Role      string         `gorm:"size:20;default:''" json:"role"`
	Name      string         `gorm:"size:255" json:"name"`
	Location  string         `gorm:"size:255" json:"location"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// HasProfile reports whether the onboarding step has been completed.
func (u *User) HasProfile() bool {
	return u.Role != ""
}
