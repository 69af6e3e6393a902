package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/meinhoongagan/service-marketplace/db"
	"github.com/meinhoongagan/service-marketplace/models"
	"github.com/meinhoongagan/service-marketplace/utils"
	"github.com/robfig/cron/v3"
)

// StartCronJobs initializes and starts the cron scheduler for booking reminders
func StartCronJobs() {
	c := cron.New()
	_, err := c.AddFunc("*/10 * * * *", sendBookingReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for booking reminders")
}

// sendBookingReminders emails customers whose confirmed booking is about an
// hour away
func sendBookingReminders() {
	now := time.Now()
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	var bookings []models.Booking
	err := db.DB.Preload("Customer").Preload("Service").Preload("Service.Provider").
		Where("status = ? AND schedule BETWEEN ? AND ?", models.StatusConfirmed, startWindow, endWindow).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error fetching bookings for reminders: %v", err)
		return
	}

	for _, booking := range bookings {
		var user models.User
		if err := db.DB.First(&user, "id = ?", booking.Customer.UserID).Error; err != nil {
			log.Printf("No user for customer profile %s: %v", booking.CustomerProfileID, err)
			continue
		}
		if err := sendReminderEmail(user.Email, &booking); err != nil {
			log.Printf("Failed to send reminder for booking %s: %v", booking.ID, err)
			continue
		}
		log.Printf("Sent reminder for booking %s to %s", booking.ID, user.Email)
	}
}

func sendReminderEmail(to string, booking *models.Booking) error {
	subject := fmt.Sprintf("Reminder: Upcoming Booking - %s", booking.Service.Name)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your booking scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Scheduled:</strong> %s</li>
			<li><strong>Status:</strong> %s</li>
		</ul>
		<p>If you need to cancel, contact the provider as soon as possible.</p>
	`, booking.Customer.FirstName, booking.Service.Name,
		booking.Schedule.Format("2006-01-02 15:04:05"),
		booking.Status)

	return utils.SendEmail(to, subject, body)
}
