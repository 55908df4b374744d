package course

import (
	"coursehub/models"

	"gorm.io/gorm"
)

// Course represents a catalog item owned by one instructor
type Course struct {
	gorm.Model
	Title         string          `json:"title" gorm:"not null"`
	Slug          string          `json:"slug" gorm:"uniqueIndex;not null"`
	Description   string          `json:"description" gorm:"type:text;default:''"`
	ShortDesc     string          `json:"short_desc" gorm:"size:300;default:''"`
	InstructorID  uint            `json:"instructor_id" gorm:"index;not null"`
	CategoryID    uint            `json:"category_id" gorm:"index;not null"`
	Price         float64         `json:"price" gorm:"type:decimal(10,2);default:0"`
	ThumbnailURL  string          `json:"thumbnail_url" gorm:"default:''"`
	DurationHours int             `json:"duration_hours" gorm:"default:0"`
	IsPublished   bool            `json:"is_published" gorm:"default:false"`
	IsDeleted     bool            `json:"is_deleted" gorm:"default:false"`
	Instructor    models.User     `json:"-" gorm:"foreignKey:InstructorID"`
	Category      models.Category `json:"-" gorm:"foreignKey:CategoryID"`
}
