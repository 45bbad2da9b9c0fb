package models

import (
	"time"

	"gorm.io/gorm"
)

// Goal statuses form a closed set; anything else is rejected at validation.
const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusPaused    = "paused"
	GoalStatusCancelled = "cancelled"
)

// IsValidGoalStatus reports whether s is one of the accepted goal statuses.
func IsValidGoalStatus(s string) bool {
	switch s {
	case GoalStatusActive, GoalStatusCompleted, GoalStatusPaused, GoalStatusCancelled:
		return true
	}
	return false
}

type Goal struct {
	gorm.Model
	UserID      uint        `gorm:"index;not null" json:"userId"`
	Title       string      `gorm:"size:255;not null" json:"title"`
	Description string      `gorm:"type:text" json:"description"`
	Category    string      `gorm:"size:100" json:"category"`
	TargetDate  *time.Time  `json:"targetDate"`
	Status      string      `gorm:"size:50;default:'active'" json:"status"`
	Progress    int         `gorm:"default:0" json:"progress"` // 0..100
	Milestones  []Milestone `gorm:"constraint:OnDelete:CASCADE" json:"milestones,omitempty"`
}
