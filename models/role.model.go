package models

// Role ids are small fixed codes, not generated keys.
const (
	RoleAdmin      uint = 1
	RoleInstructor uint = 2
	RoleStudent    uint = 3
)

type Role struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"uniqueIndex;not null"`
	Description string `json:"description" gorm:"type:text;default:''"`
}

// UserRole assigns a role to a user; a user may hold several roles.
type UserRole struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"user_id" gorm:"index;not null;uniqueIndex:idx_user_role"`
	RoleID uint `json:"role_id" gorm:"not null;uniqueIndex:idx_user_role"`
	User   User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Role   Role `json:"-" gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
}
