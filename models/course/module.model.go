package course

import "gorm.io/gorm"

// Module represents a section within a course; OrderNum is the 1-based
// position and is unique inside the course.
type Module struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null;uniqueIndex:idx_module_course_order"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text;default:''"`
	OrderNum    int    `json:"order_num" gorm:"not null;uniqueIndex:idx_module_course_order"`
	IsDeleted   bool   `json:"is_deleted" gorm:"default:false"`
	Course      Course `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
