package models

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	Name     string    `json:"name" gorm:"not null"`
	Slug     string    `json:"slug" gorm:"uniqueIndex;not null"`
	ParentID *uint     `json:"parent_id" gorm:"index"`
	Parent   *Category `json:"-" gorm:"foreignKey:ParentID"`
}
