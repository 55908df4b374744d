package models

import (
	"time"

	"gorm.io/gorm"
)

// Certificate is issued once per (user, course) after completion.
type Certificate struct {
	gorm.Model
	UserID           uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_cert_user_course"`
	CourseID         uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_cert_user_course"`
	CertificateURL   string    `json:"certificate_url" gorm:"default:''"`
	VerificationCode string    `json:"verification_code" gorm:"uniqueIndex;not null"`
	IssuedAt         time.Time `json:"issued_at"`
	IsDeleted        bool      `json:"is_deleted" gorm:"default:false"`
}
