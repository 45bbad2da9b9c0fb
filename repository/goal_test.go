package repository

import (
	"context"
	"testing"

	"github.com/DengXianqi/learning-tracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteGoalCascades(t *testing.T) {
	db := newTestDB(t)
	goals := NewGoalRepo(db)
	milestones := NewMilestoneRepo(db)

	user := seedUser(t, db, "cascade-user")
	goal := seedGoal(t, db, user.ID, "Doomed")
	seedMilestone(t, db, goal.ID, "A", 0)
	seedMilestone(t, db, goal.ID, "B", 1)

	saved := models.SavedCourse{UserID: user.ID, ExternalID: "course-1", Title: "Python", GoalID: &goal.ID}
	require.NoError(t, db.Create(&saved).Error)

	require.NoError(t, goals.Delete(context.Background(), goal.ID))

	_, err := goals.FindByID(context.Background(), goal.ID)
	require.ErrorIs(t, err, ErrNotFound)

	remaining, err := milestones.ListByGoal(context.Background(), goal.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	// The saved course survives with its goal reference cleared.
	var reloaded models.SavedCourse
	require.NoError(t, db.First(&reloaded, saved.ID).Error)
	assert.Nil(t, reloaded.GoalID)
}

func TestDeleteGoalNotFound(t *testing.T) {
	db := newTestDB(t)
	goals := NewGoalRepo(db)

	require.ErrorIs(t, goals.Delete(context.Background(), 424242), ErrNotFound)
}

func TestUpdateGoalKeepsUnsetFields(t *testing.T) {
	db := newTestDB(t)
	goals := NewGoalRepo(db)

	user := seedUser(t, db, "partial-user")
	goal := models.Goal{UserID: user.ID, Title: "Original", Description: "keep", Category: "go", Status: models.GoalStatusActive}
	require.NoError(t, db.Create(&goal).Error)

	status := models.GoalStatusPaused
	updated, err := goals.Update(context.Background(), goal.ID, GoalUpdate{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, models.GoalStatusPaused, updated.Status)
	assert.Equal(t, "Original", updated.Title)
	assert.Equal(t, "keep", updated.Description)
	assert.Equal(t, "go", updated.Category)
}

func TestUpdateGoalNotFound(t *testing.T) {
	db := newTestDB(t)
	goals := NewGoalRepo(db)

	title := "nope"
	_, err := goals.Update(context.Background(), 424242, GoalUpdate{Title: &title})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListByUserCountsMilestones(t *testing.T) {
	db := newTestDB(t)
	goals := NewGoalRepo(db)
	milestones := NewMilestoneRepo(db)

	user := seedUser(t, db, "count-user")
	goal := seedGoal(t, db, user.ID, "Counted")
	seedMilestone(t, db, goal.ID, "A", 0)
	done := seedMilestone(t, db, goal.ID, "B", 1)

	_, err := milestones.Complete(context.Background(), done.ID)
	require.NoError(t, err)

	listed, err := goals.ListByUser(context.Background(), user.ID, GoalFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 1)

	assert.Equal(t, int64(2), listed[0].MilestoneCount)
	assert.Equal(t, int64(1), listed[0].CompletedMilestoneCount)
}

func TestListByUserFiltersStatus(t *testing.T) {
	db := newTestDB(t)
	goals := NewGoalRepo(db)

	user := seedUser(t, db, "filter-user")
	seedGoal(t, db, user.ID, "Active one")
	paused := models.Goal{UserID: user.ID, Title: "Paused one", Status: models.GoalStatusPaused}
	require.NoError(t, db.Create(&paused).Error)

	listed, err := goals.ListByUser(context.Background(), user.ID, GoalFilter{Status: models.GoalStatusPaused})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Paused one", listed[0].Title)
}

func TestListByUserExcludesOtherUsers(t *testing.T) {
	db := newTestDB(t)
	goals := NewGoalRepo(db)

	owner := seedUser(t, db, "owner")
	stranger := seedUser(t, db, "stranger")
	seedGoal(t, db, owner.ID, "Private")

	listed, err := goals.ListByUser(context.Background(), stranger.ID, GoalFilter{})
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestFindWithMilestonesOrdersAscending(t *testing.T) {
	db := newTestDB(t)
	goals := NewGoalRepo(db)

	user := seedUser(t, db, "aggregate-user")
	goal := seedGoal(t, db, user.ID, "Aggregate")
	seedMilestone(t, db, goal.ID, "third", 2)
	seedMilestone(t, db, goal.ID, "first", 0)
	seedMilestone(t, db, goal.ID, "second", 1)

	fetched, err := goals.FindWithMilestones(context.Background(), goal.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Milestones, 3)

	assert.Equal(t, "first", fetched.Milestones[0].Title)
	assert.Equal(t, "second", fetched.Milestones[1].Title)
	assert.Equal(t, "third", fetched.Milestones[2].Title)
}

func TestOwnerIDResolvesAndFails(t *testing.T) {
	db := newTestDB(t)
	goals := NewGoalRepo(db)

	user := seedUser(t, db, "owner-id")
	goal := seedGoal(t, db, user.ID, "Owned")

	ownerID, err := goals.OwnerID(context.Background(), goal.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, ownerID)

	_, err = goals.OwnerID(context.Background(), 424242)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStatsByStatus(t *testing.T) {
	db := newTestDB(t)
	goals := NewGoalRepo(db)

	user := seedUser(t, db, "stats-user")
	seedGoal(t, db, user.ID, "One")
	seedGoal(t, db, user.ID, "Two")
	completed := models.Goal{UserID: user.ID, Title: "Done", Status: models.GoalStatusCompleted, Progress: 100}
	require.NoError(t, db.Create(&completed).Error)

	stats, err := goals.StatsByStatus(context.Background(), user.ID)
	require.NoError(t, err)

	byStatus := map[string]StatusStat{}
	for _, s := range stats {
		byStatus[s.Status] = s
	}
	assert.Equal(t, int64(2), byStatus[models.GoalStatusActive].Count)
	assert.Equal(t, int64(1), byStatus[models.GoalStatusCompleted].Count)
	assert.Equal(t, float64(100), byStatus[models.GoalStatusCompleted].AvgProgress)
}

func TestCategoriesDistinctNonEmpty(t *testing.T) {
	db := newTestDB(t)
	goals := NewGoalRepo(db)

	user := seedUser(t, db, "category-user")
	for _, category := range []string{"python", "python", "", "design"} {
		goal := models.Goal{UserID: user.ID, Title: "g", Category: category, Status: models.GoalStatusActive}
		require.NoError(t, db.Create(&goal).Error)
	}

	categories, err := goals.Categories(context.Background(), user.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"python", "design"}, categories)
}

func TestRecentActivityNewestFirst(t *testing.T) {
	db := newTestDB(t)
	goals := NewGoalRepo(db)
	milestones := NewMilestoneRepo(db)

	user := seedUser(t, db, "activity-user")
	goal := seedGoal(t, db, user.ID, "Tracked")
	m := seedMilestone(t, db, goal.ID, "Step", 0)

	_, err := milestones.Complete(context.Background(), m.ID)
	require.NoError(t, err)

	activity, err := goals.RecentActivity(context.Background(), user.ID, 10)
	require.NoError(t, err)
	require.NotEmpty(t, activity)

	types := map[string]bool{}
	for _, a := range activity {
		types[a.Type] = true
	}
	assert.True(t, types["goal"])
	assert.True(t, types["milestone"])

	for i := 1; i < len(activity); i++ {
		assert.False(t, activity[i].ActivityDate.After(activity[i-1].ActivityDate))
	}
}
