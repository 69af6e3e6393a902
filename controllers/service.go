package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/service-marketplace/db"
	"github.com/meinhoongagan/service-marketplace/models"
	"github.com/meinhoongagan/service-marketplace/utils"
)

// ListServices returns all services with their provider
func ListServices(c *fiber.Ctx) error {
	var services []models.Service
	if err := db.DB.Preload("Provider").Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}
	return c.JSON(services)
}

// CreateService creates a new service (admin only)
func CreateService(c *fiber.Ctx) error {
	type ServiceInput struct {
		Name              string  `json:"name"`
		Description       string  `json:"description"`
		Price             float64 `json:"price"`
		ProviderProfileID string  `json:"provider_profile_id"`
	}

	input := new(ServiceInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Name == "" || input.ProviderProfileID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and provider_profile_id are required",
		})
	}

	var provider models.ProviderProfile
	if db.DB.Where("id = ?", input.ProviderProfileID).First(&provider).RowsAffected == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Provider profile not found",
		})
	}

	service := models.Service{
		Name:              input.Name,
		Description:       input.Description,
		Price:             input.Price,
		ProviderProfileID: provider.ID,
	}
	if err := db.DB.Create(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create service: " + err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// UpdateService applies a partial update to a service (admin only)
func UpdateService(c *fiber.Ctx) error {
	id := c.Params("id")

	var service models.Service
	if db.DB.Where("id = ?", id).First(&service).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	type ServiceUpdate struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
	}

	input := new(ServiceUpdate)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.Price != nil {
		service.Price = *input.Price
	}

	if err := db.DB.Save(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update service: " + err.Error(),
		})
	}
	return c.JSON(service)
}
