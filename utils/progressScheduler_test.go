package utils

import (
	"testing"

	"github.com/DengXianqi/learning-tracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newSchedulerDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Goal{}, &models.Milestone{}))
	return db
}

func TestSyncGoalProgressDerivesPercentage(t *testing.T) {
	db := newSchedulerDB(t)

	user := models.User{GoogleID: "sync-user", Email: "sync@example.com"}
	require.NoError(t, db.Create(&user).Error)

	goal := models.Goal{UserID: user.ID, Title: "Halfway", Status: models.GoalStatusActive}
	require.NoError(t, db.Create(&goal).Error)

	for i, completed := range []bool{true, true, false, false} {
		m := models.Milestone{GoalID: goal.ID, Title: "m", OrderIndex: i, Completed: completed}
		require.NoError(t, db.Create(&m).Error)
	}

	SyncGoalProgress(db)

	var reloaded models.Goal
	require.NoError(t, db.First(&reloaded, goal.ID).Error)
	assert.Equal(t, 50, reloaded.Progress)
}

func TestSyncGoalProgressLeavesMilestonelessGoalsAlone(t *testing.T) {
	db := newSchedulerDB(t)

	user := models.User{GoogleID: "empty-user", Email: "empty@example.com"}
	require.NoError(t, db.Create(&user).Error)

	goal := models.Goal{UserID: user.ID, Title: "Untracked", Status: models.GoalStatusActive, Progress: 30}
	require.NoError(t, db.Create(&goal).Error)

	SyncGoalProgress(db)

	var reloaded models.Goal
	require.NoError(t, db.First(&reloaded, goal.ID).Error)
	assert.Equal(t, 30, reloaded.Progress)
}

func TestSyncGoalProgressRoundsToNearest(t *testing.T) {
	db := newSchedulerDB(t)

	user := models.User{GoogleID: "round-user", Email: "round@example.com"}
	require.NoError(t, db.Create(&user).Error)

	goal := models.Goal{UserID: user.ID, Title: "Thirds", Status: models.GoalStatusActive}
	require.NoError(t, db.Create(&goal).Error)

	for i, completed := range []bool{true, false, false} {
		m := models.Milestone{GoalID: goal.ID, Title: "m", OrderIndex: i, Completed: completed}
		require.NoError(t, db.Create(&m).Error)
	}

	SyncGoalProgress(db)

	var reloaded models.Goal
	require.NoError(t, db.First(&reloaded, goal.ID).Error)
	assert.Equal(t, 33, reloaded.Progress)
}
