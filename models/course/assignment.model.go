package course

import (
	"time"

	"gorm.io/gorm"
)

// Assignment defines the graded work attached to a lesson (at most one).
type Assignment struct {
	gorm.Model
	LessonID    uint       `json:"lesson_id" gorm:"uniqueIndex;not null"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description" gorm:"type:text;default:''"`
	DueDate     *time.Time `json:"due_date"`
	MaxScore    int        `json:"max_score" gorm:"not null"`
	IsRequired  bool       `json:"is_required" gorm:"default:true"`
	IsDeleted   bool       `json:"is_deleted" gorm:"default:false"`
	Lesson      Lesson     `json:"-" gorm:"foreignKey:LessonID;constraint:OnDelete:CASCADE"`
}
