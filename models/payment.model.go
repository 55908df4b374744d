package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment statuses. Capture itself happens outside this system; we only
// record the transaction alongside the enrollment.
const (
	PaymentCompleted = "COMPLETED"
	PaymentPending   = "PENDING"
	PaymentRefunded  = "REFUNDED"
)

type Payment struct {
	gorm.Model
	UserID        uint       `json:"user_id" gorm:"index;not null"`
	CourseID      uint       `json:"course_id" gorm:"index;not null"`
	Amount        float64    `json:"amount" gorm:"type:decimal(10,2);not null"`
	Currency      string     `json:"currency" gorm:"size:3;default:'USD'"`
	PaymentMethod string     `json:"payment_method" gorm:"default:''"`
	Status        string     `json:"status" gorm:"default:'COMPLETED'"`
	TransactionID string     `json:"transaction_id" gorm:"default:''"`
	PaidAt        *time.Time `json:"paid_at"`
	IsDeleted     bool       `json:"is_deleted" gorm:"default:false"`
}
