package models

import "gorm.io/gorm"

// Comment threads on a course, optionally pinned to one of its lessons.
type Comment struct {
	gorm.Model
	ParentID  *uint  `json:"parent_id" gorm:"index"`
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	LessonID  *uint  `json:"lesson_id" gorm:"index"`
	Content   string `json:"content" gorm:"type:text;not null"`
	IsDeleted bool   `json:"is_deleted" gorm:"default:false"`
}
