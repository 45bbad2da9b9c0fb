package models

import (
	"gorm.io/gorm"
)

// User is created on first Google sign-in and refreshed on every login.
// It is never deleted by the application.
type User struct {
	gorm.Model
	GoogleID  string `gorm:"uniqueIndex;not null" json:"googleId"`
	Email     string `gorm:"size:255;not null" json:"email"`
	Name      string `gorm:"size:255;default:''" json:"name"`
	AvatarURL string `gorm:"default:''" json:"avatarUrl"`
}
