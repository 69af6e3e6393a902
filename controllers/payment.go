package controllers

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/service-marketplace/payments"
)

// PaymentGateway is wired in main before the routes are mounted
var PaymentGateway payments.Gateway

// CreateOrder creates a payment order with the gateway
func CreateOrder(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	amountPaise, err := payments.ParseAmountPaise(body["amount"])
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Amount is required",
		})
	}

	orderID, err := PaymentGateway.CreateOrder(amountPaise, "INR")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"order_id":     orderID,
		"razorpay_key": os.Getenv("RAZORPAY_KEY_ID"),
		"amount":       amountPaise,
		"currency":     "INR",
	})
}

// VerifyPayment checks the gateway signature on a payment confirmation
func VerifyPayment(c *fiber.Ctx) error {
	type VerifyInput struct {
		OrderID   string `json:"razorpay_order_id"`
		PaymentID string `json:"razorpay_payment_id"`
		Signature string `json:"razorpay_signature"`
	}

	input := new(VerifyInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid data",
		})
	}
	if input.OrderID == "" || input.PaymentID == "" || input.Signature == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid data",
		})
	}

	secret := os.Getenv("RAZORPAY_KEY_SECRET")
	if !payments.VerifySignature(input.OrderID, input.PaymentID, input.Signature, secret) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Signature mismatch",
		})
	}

	return c.JSON(fiber.Map{
		"status": "Payment verified successfully",
	})
}
