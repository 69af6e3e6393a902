package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/meinhoongagan/service-marketplace/db"
	"github.com/meinhoongagan/service-marketplace/models"
	"github.com/meinhoongagan/service-marketplace/utils"
)

// BookService creates a pending booking for the calling customer
func BookService(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)
	if role != "customer" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Only customers can create bookings.",
		})
	}

	userID := c.Locals("userID").(uuid.UUID)
	var customer models.CustomerProfile
	if db.DB.Where("user_id = ?", userID).First(&customer).RowsAffected == 0 {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Only customers can create bookings.",
		})
	}

	type BookingInput struct {
		Service  string    `json:"service"`
		Schedule time.Time `json:"schedule"`
	}

	input := new(BookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	serviceID, err := uuid.Parse(input.Service)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid service id",
		})
	}

	var service models.Service
	if db.DB.Where("id = ?", serviceID).First(&service).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	if !input.Schedule.After(time.Now()) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Booking time must be in the future.",
		})
	}

	booking := models.Booking{
		CustomerProfileID: customer.ID,
		ServiceID:         service.ID,
		Schedule:          input.Schedule,
	}
	if err := db.DB.Create(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create booking",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(booking)
}

// MyBookings lists the calling customer's own bookings
func MyBookings(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uuid.UUID)

	bookings := []models.Booking{}

	var customer models.CustomerProfile
	if db.DB.Where("user_id = ?", userID).First(&customer).RowsAffected == 0 {
		// not a customer, nothing to list
		return c.JSON(bookings)
	}

	if err := db.DB.Preload("Service").Preload("Service.Provider").
		Where("customer_profile_id = ?", customer.ID).
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}
	return c.JSON(bookings)
}

// ProviderBookings lists bookings against the calling provider's services
func ProviderBookings(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uuid.UUID)

	bookings := []models.Booking{}

	var provider models.ProviderProfile
	if db.DB.Where("user_id = ?", userID).First(&provider).RowsAffected == 0 {
		return c.JSON(bookings)
	}

	if err := db.DB.Preload("Service").Preload("Customer").
		Joins("JOIN services ON services.id = bookings.service_id").
		Where("services.provider_profile_id = ?", provider.ID).
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}
	return c.JSON(bookings)
}

// UpdateBookingStatus lets the provider owning the booked service change the
// booking status. Only enum membership is checked here, not lifecycle order;
// see models.ValidTransition.
func UpdateBookingStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	var booking models.Booking
	if db.DB.Preload("Service").Where("id = ?", id).First(&booking).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	userID := c.Locals("userID").(uuid.UUID)
	var provider models.ProviderProfile
	if db.DB.Where("user_id = ?", userID).First(&provider).RowsAffected == 0 {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You are not authorized to update this booking.",
		})
	}
	if booking.Service.ProviderProfileID != provider.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You are not authorized to update this booking.",
		})
	}

	type StatusInput struct {
		Status models.BookingStatus `json:"status"`
	}
	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if !models.IsValidStatus(input.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status",
		})
	}

	booking.Status = input.Status
	if err := db.DB.Save(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update booking",
			Error:   err.Error(),
		})
	}
	return c.JSON(booking)
}
