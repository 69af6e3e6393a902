package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProviderProfile is the 1:1 extension of a provider user
type ProviderProfile struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Address        string    `json:"address"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	Documents      string    `json:"documents,omitempty"`
}

func (p *ProviderProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// CustomerProfile is the 1:1 extension of a customer user
type CustomerProfile struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Address        string    `json:"address"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
}

func (p *CustomerProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
