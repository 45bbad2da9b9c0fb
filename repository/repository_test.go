package repository

import (
	"context"
	"testing"

	"github.com/DengXianqi/learning-tracker/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Goal{},
		&models.Milestone{},
		&models.SavedCourse{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, googleID string) *models.User {
	t.Helper()

	user := models.User{GoogleID: googleID, Email: googleID + "@example.com", Name: "Test User"}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedGoal(t *testing.T, db *gorm.DB, userID uint, title string) *models.Goal {
	t.Helper()

	goal := models.Goal{UserID: userID, Title: title, Status: models.GoalStatusActive}
	require.NoError(t, db.Create(&goal).Error)
	return &goal
}

func seedMilestone(t *testing.T, db *gorm.DB, goalID uint, title string, orderIndex int) *models.Milestone {
	t.Helper()

	milestone := models.Milestone{GoalID: goalID, Title: title, OrderIndex: orderIndex}
	require.NoError(t, db.Create(&milestone).Error)
	return &milestone
}

func TestTranslateMapsRecordNotFound(t *testing.T) {
	require.ErrorIs(t, translate(gorm.ErrRecordNotFound), ErrNotFound)
	require.ErrorIs(t, translate(gorm.ErrDuplicatedKey), ErrDuplicate)
	require.NoError(t, translate(nil))
	require.Equal(t, context.Canceled, translate(context.Canceled))
}
