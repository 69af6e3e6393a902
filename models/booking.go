package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

type Booking struct {
	ID                uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	CustomerProfileID uuid.UUID       `json:"customer_profile_id" gorm:"type:uuid;not null"`
	Customer          CustomerProfile `json:"customer" gorm:"foreignKey:CustomerProfileID"`
	ServiceID         uuid.UUID       `json:"service_id" gorm:"type:uuid;not null"`
	Service           Service         `json:"service" gorm:"foreignKey:ServiceID"`
	Schedule          time.Time       `json:"schedule"`
	Status            BookingStatus   `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Status == "" {
		b.Status = StatusPending
	}
	return nil
}

// IsValidStatus reports whether s is one of the four booking statuses
func IsValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// ValidTransition reports whether moving from one status to another follows
// the booking lifecycle: pending -> confirmed/cancelled, confirmed ->
// completed/cancelled, terminal states allow nothing.
//
// TODO: enforce this in the status update endpoint once product confirms
// whether providers may reopen completed bookings.
func ValidTransition(from, to BookingStatus) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCompleted || to == StatusCancelled
	}
	return false
}
