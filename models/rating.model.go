package models

import "gorm.io/gorm"

type Rating struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_rating_user_course"`
	CourseID  uint   `json:"course_id" gorm:"not null;uniqueIndex:idx_rating_user_course"`
	Rating    int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment   string `json:"comment" gorm:"type:text;default:''"`
	IsDeleted bool   `json:"is_deleted" gorm:"default:false"`
}
