package course

import (
	"time"

	"coursehub/models"

	"gorm.io/gorm"
)

// Submission is the learner's answer to an assignment, one per
// (assignment, user). Score, Feedback and IsGraded are written only by the
// grading workflow.
type Submission struct {
	gorm.Model
	AssignmentID uint        `json:"assignment_id" gorm:"not null;uniqueIndex:idx_submission_assignment_user"`
	UserID       uint        `json:"user_id" gorm:"not null;uniqueIndex:idx_submission_assignment_user"`
	SubmittedAt  time.Time   `json:"submitted_at"`
	Content      string      `json:"content" gorm:"type:text;default:''"`
	FileURL      string      `json:"file_url" gorm:"default:''"`
	Score        *int        `json:"score"`
	Feedback     string      `json:"feedback" gorm:"type:text;default:''"`
	IsGraded     bool        `json:"is_graded" gorm:"default:false"`
	IsDeleted    bool        `json:"is_deleted" gorm:"default:false"`
	Assignment   Assignment  `json:"-" gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE"`
	User         models.User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
