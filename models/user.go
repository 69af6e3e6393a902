package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email       string    `json:"email" gorm:"unique;not null"`
	PhoneNumber string    `json:"phone_number" gorm:"unique"`
	Password    string    `json:"-"`
	IsProvider  bool      `json:"is_provider"`
	IsAdmin     bool      `json:"-"`
	IsVerified  bool      `json:"is_verified"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	ProviderProfile *ProviderProfile `json:"provider_profile,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	CustomerProfile *CustomerProfile `json:"customer_profile,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// BeforeSave keeps stored emails lowercase so lookups stay case-insensitive
func (u *User) BeforeSave(tx *gorm.DB) error {
	u.Email = NormalizeEmail(u.Email)
	return nil
}

// NormalizeEmail lowercases and trims an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Role returns the capability name carried in the user's tokens
func (u *User) Role() string {
	if u.IsProvider {
		return "provider"
	}
	return "customer"
}
