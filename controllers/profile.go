package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/meinhoongagan/service-marketplace/db"
	"github.com/meinhoongagan/service-marketplace/models"
	"github.com/meinhoongagan/service-marketplace/utils"
)

// UpdateProfile updates display attributes on the caller's profile
func UpdateProfile(c *fiber.Ctx) error {
	type ProfileInput struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Address   *string `json:"address"`
	}

	input := new(ProfileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	userID := c.Locals("userID").(uuid.UUID)
	role, _ := c.Locals("role").(string)

	apply := func(first, last, addr *string) {
		if input.FirstName != nil {
			*first = *input.FirstName
		}
		if input.LastName != nil {
			*last = *input.LastName
		}
		if input.Address != nil {
			*addr = *input.Address
		}
	}

	if role == "provider" {
		var profile models.ProviderProfile
		if db.DB.Where("user_id = ?", userID).First(&profile).RowsAffected == 0 {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Profile not found",
			})
		}
		apply(&profile.FirstName, &profile.LastName, &profile.Address)
		if err := db.DB.Save(&profile).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update profile",
			})
		}
		return c.JSON(profile)
	}

	var profile models.CustomerProfile
	if db.DB.Where("user_id = ?", userID).First(&profile).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Profile not found",
		})
	}
	apply(&profile.FirstName, &profile.LastName, &profile.Address)
	if err := db.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update profile",
		})
	}
	return c.JSON(profile)
}

// UpdateProfilePicture uploads a new profile picture and stores its URL
func UpdateProfilePicture(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("picture")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Picture file is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to read picture",
		})
	}
	defer file.Close()

	userID := c.Locals("userID").(uuid.UUID)
	role, _ := c.Locals("role").(string)

	folder := "customer_pictures"
	if role == "provider" {
		folder = "provider_pictures"
	}

	url, err := utils.UploadProfilePicture(file, userID.String(), folder)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload picture",
			Error:   err.Error(),
		})
	}

	if role == "provider" {
		if err := db.DB.Model(&models.ProviderProfile{}).
			Where("user_id = ?", userID).
			Update("profile_picture", url).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to save picture URL",
			})
		}
	} else {
		if err := db.DB.Model(&models.CustomerProfile{}).
			Where("user_id = ?", userID).
			Update("profile_picture", url).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to save picture URL",
			})
		}
	}

	return c.JSON(fiber.Map{
		"profile_picture": url,
	})
}
