package course

import (
	"time"

	"coursehub/models"

	"gorm.io/gorm"
)

// Enrollment statuses
const (
	EnrollActive    = "ACTIVE"
	EnrollCompleted = "COMPLETED"
	EnrollCancelled = "CANCELLED"
)

// Enrollment tracks a user's relationship to a course, one per (user, course).
// ProgressPct is a denormalized cache; the progress computation over graded
// submissions is the source of truth.
type Enrollment struct {
	gorm.Model
	UserID      uint            `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID    uint            `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	PaymentID   *uint           `json:"payment_id"`
	Status      string          `json:"status" gorm:"default:'ACTIVE'"`
	ProgressPct int             `json:"progress_pct" gorm:"default:0"`
	EnrolledAt  time.Time       `json:"enrolled_at"`
	CompletedAt *time.Time      `json:"completed_at"`
	IsDeleted   bool            `json:"is_deleted" gorm:"default:false"`
	User        models.User     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Course      Course          `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Payment     *models.Payment `json:"-" gorm:"foreignKey:PaymentID"`
}
