package course

import "gorm.io/gorm"

// Lesson belongs to one module. A locked lesson is only viewable once every
// lesson before it in the module is completed.
type Lesson struct {
	gorm.Model
	ModuleID    uint   `json:"module_id" gorm:"index;not null;uniqueIndex:idx_lesson_module_order"`
	Title       string `json:"title" gorm:"not null"`
	Content     string `json:"content" gorm:"type:text;default:''"`
	VideoURL    string `json:"video_url" gorm:"default:''"`
	OrderNum    int    `json:"order_num" gorm:"not null;uniqueIndex:idx_lesson_module_order"`
	IsLocked    bool   `json:"is_locked" gorm:"default:false"`
	DurationMin int    `json:"duration_min" gorm:"default:0"`
	IsDeleted   bool   `json:"is_deleted" gorm:"default:false"`
	Module      Module `json:"-" gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE"`
}
