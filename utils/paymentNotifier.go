package utils

import (
	"log"
	"time"

	"coursehub/config"
	"coursehub/models"

	"github.com/go-resty/resty/v2"
)

// NotifyPaymentRecorded posts the recorded payment to the bookkeeping
// webhook, when one is configured. Fire and forget: the enrollment
// transaction has already committed, so failures are only logged. Payment
// capture itself happens outside this system.
func NotifyPaymentRecorded(payment *models.Payment) {
	if payment == nil || config.AppConfig.PaymentWebhookURL == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"transaction_id": payment.TransactionID,
			"user_id":        payment.UserID,
			"course_id":      payment.CourseID,
			"amount":         payment.Amount,
			"currency":       payment.Currency,
			"status":         payment.Status,
			"paid_at":        payment.PaidAt,
		}).
		Post(config.AppConfig.PaymentWebhookURL)
	if err != nil {
		log.Printf("Error notifying payment webhook: %v", err)
		return
	}

	if resp.StatusCode() >= 300 {
		log.Printf("Payment webhook returned %d: %s", resp.StatusCode(), resp.String())
	}
}
