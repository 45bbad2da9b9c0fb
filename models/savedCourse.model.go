package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SavedCourse snapshots an externally-sourced course a user bookmarked.
// A user can save a given external course only once.
type SavedCourse struct {
	gorm.Model
	UserID       uint           `gorm:"not null;uniqueIndex:idx_saved_courses_user_external" json:"userId"`
	ExternalID   string         `gorm:"size:255;not null;uniqueIndex:idx_saved_courses_user_external" json:"externalId"`
	Title        string         `gorm:"size:500;not null" json:"title"`
	Provider     string         `gorm:"size:100" json:"provider"`
	URL          string         `json:"url"`
	ThumbnailURL string         `json:"thumbnailUrl"`
	Skills       datatypes.JSON `json:"skills"`
	GoalID       *uint          `json:"goalId"`
	Goal         *Goal          `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}
