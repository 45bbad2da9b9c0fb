package models

import (
	"time"

	"gorm.io/gorm"
)

// Milestone has no owner column of its own; ownership is resolved through
// the parent goal.
type Milestone struct {
	gorm.Model
	GoalID      uint       `gorm:"index;not null" json:"goalId"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
	OrderIndex  int        `gorm:"default:0" json:"orderIndex"`
}
