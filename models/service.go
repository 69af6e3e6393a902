package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID                uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Price             float64         `json:"price" gorm:"type:numeric(10,2)"`
	ProviderProfileID uuid.UUID       `json:"provider_profile_id" gorm:"type:uuid;not null"`
	Provider          ProviderProfile `json:"provider" gorm:"foreignKey:ProviderProfileID"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
