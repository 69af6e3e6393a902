package controllers

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/meinhoongagan/service-marketplace/db"
	"github.com/meinhoongagan/service-marketplace/models"
	"github.com/meinhoongagan/service-marketplace/otp"
	"github.com/meinhoongagan/service-marketplace/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// OTPGate is wired in main before the routes are mounted
var OTPGate *otp.Gate

func getSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "solid_secret_key" // Replace with secure key in production
	}
	return secret
}

// Register handles user registration
func Register(c *fiber.Ctx) error {
	type SignUpInput struct {
		Email       string `json:"email"`
		PhoneNumber string `json:"phone_number"`
		Password    string `json:"password"`
		Password2   string `json:"password2"`
		IsProvider  bool   `json:"is_provider"`
	}

	input := new(SignUpInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.Password != input.Password2 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Passwords do not match.",
		})
	}
	if len(input.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Password must be at least 8 characters.",
		})
	}
	if !utils.ValidateEmail(input.Email) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid email address.",
		})
	}
	if input.PhoneNumber != "" && !utils.ValidatePhone(input.PhoneNumber) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid phone number.",
		})
	}

	email := models.NormalizeEmail(input.Email)

	var existing models.User
	if db.DB.Where("email = ?", email).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email already exists.",
		})
	}
	if input.PhoneNumber != "" &&
		db.DB.Where("phone_number = ?", input.PhoneNumber).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Phone number already exists.",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}

	user := models.User{
		Email:       email,
		PhoneNumber: input.PhoneNumber,
		Password:    string(hashedPassword),
		IsProvider:  input.IsProvider,
	}

	// User and its matching profile are one unit of work
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if user.IsProvider {
			return tx.Create(&models.ProviderProfile{UserID: user.ID}).Error
		}
		return tx.Create(&models.CustomerProfile{UserID: user.ID}).Error
	})
	if err != nil {
		log.Printf("Error creating user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create user: " + err.Error(),
		})
	}

	code, err := OTPGate.Issue(c.Context(), user.Email)
	if err != nil {
		log.Printf("Failed to issue OTP for %s: %v", user.Email, err)
	} else if err := utils.SendOTPEmail(user.Email, code); err != nil {
		// verification can be retried later, registration stands
		log.Printf("Failed to send OTP email to %s: %v", user.Email, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// VerifyOTP flips the account's verification flag when the submitted code
// matches the latest issued one
func VerifyOTP(c *fiber.Ctx) error {
	type VerifyInput struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}

	input := new(VerifyInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Email == "" || input.OTP == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and OTP are required",
		})
	}

	email := models.NormalizeEmail(input.Email)

	var user models.User
	if db.DB.Where("email = ?", email).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User does not exist",
		})
	}

	ok, err := OTPGate.Verify(c.Context(), email, input.OTP)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check OTP",
		})
	}
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid OTP",
		})
	}

	if !user.IsVerified {
		user.IsVerified = true
		if err := db.DB.Save(&user).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update user",
			})
		}
	}
	if err := OTPGate.Consume(c.Context(), email); err != nil {
		log.Printf("Failed to consume OTP for %s: %v", email, err)
	}

	return c.JSON(fiber.Map{
		"message": "OTP verified successfully",
	})
}

// Login handles user authentication
func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var user models.User
	if db.DB.Where("email = ?", models.NormalizeEmail(input.Email)).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	if !user.IsVerified {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not verified",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	secret := getSecret()

	// Create access token
	claims := jwt.MapClaims{
		"id":       user.ID.String(),
		"email":    user.Email,
		"role":     user.Role(),
		"is_admin": user.IsAdmin,
		"exp":      time.Now().Add(time.Hour * 24).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	// Create refresh token with longer expiration
	refreshClaims := jwt.MapClaims{
		"id":    user.ID.String(),
		"email": user.Email,
		"exp":   time.Now().Add(time.Hour * 24 * 7).Unix(),
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(secret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate refresh token",
		})
	}

	return c.JSON(fiber.Map{
		"token":        tokenString,
		"refreshToken": refreshTokenString,
		"user": fiber.Map{
			"id":          user.ID,
			"email":       user.Email,
			"role":        user.Role(),
			"is_verified": user.IsVerified,
		},
	})
}

// GetUserProfile returns the current user's record with its profile
func GetUserProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID")

	var user models.User
	if err := db.DB.Preload("ProviderProfile").Preload("CustomerProfile").
		First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	return c.JSON(user)
}

// RefreshToken generates a new access token using a refresh token
func RefreshToken(c *fiber.Ctx) error {
	type RefreshRequest struct {
		RefreshToken string `json:"refreshToken"`
	}

	refreshRequest := new(RefreshRequest)
	if err := c.BodyParser(refreshRequest); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	secret := getSecret()
	token, err := jwt.Parse(refreshRequest.RefreshToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid refresh token",
		})
	}

	claims := token.Claims.(jwt.MapClaims)
	id, _ := claims["id"].(string)

	// Re-read the user so the new token carries current capabilities
	var user models.User
	if db.DB.Where("id = ?", id).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid refresh token",
		})
	}

	newClaims := jwt.MapClaims{
		"id":       user.ID.String(),
		"email":    user.Email,
		"role":     user.Role(),
		"is_admin": user.IsAdmin,
		"exp":      time.Now().Add(time.Hour * 24).Unix(),
	}
	newToken := jwt.NewWithClaims(jwt.SigningMethodHS256, newClaims)
	tokenString, err := newToken.SignedString([]byte(secret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"token": tokenString,
	})
}
