package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"not null"`
	FirstName    string     `json:"first_name" gorm:"default:''"`
	LastName     string     `json:"last_name" gorm:"default:''"`
	Phone        string     `json:"phone" gorm:"default:''"`
	AvatarURL    string     `json:"avatar_url" gorm:"default:''"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	LastLogin    *time.Time `json:"last_login"`
	IsDeleted    bool       `json:"is_deleted" gorm:"default:false"`
}
