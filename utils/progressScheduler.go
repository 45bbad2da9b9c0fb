package utils

import (
	"log"
	"math"
	"time"

	"github.com/DengXianqi/learning-tracker/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[PROGRESS-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartProgressScheduler runs the hourly goal-progress sync. Nothing in the
// request path writes goals.progress; this job derives it from milestone
// completion so the column stays meaningful.
func StartProgressScheduler(db *gorm.DB) *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("@hourly", func() { SyncGoalProgress(db) }); err != nil {
		log.Fatalf("Failed to register progress scheduler: %v", err)
	}
	c.Start()

	logScheduler("Progress scheduler started.")
	return c
}

// SyncGoalProgress recomputes progress for every goal that has milestones.
// Goals without milestones keep their stored value.
func SyncGoalProgress(db *gorm.DB) {
	type progressRow struct {
		GoalID    uint
		Total     int64
		Completed int64
	}

	var rows []progressRow
	err := db.Model(&models.Milestone{}).
		Select("goal_id, COUNT(*) AS total, COUNT(CASE WHEN completed THEN 1 END) AS completed").
		Group("goal_id").
		Scan(&rows).Error
	if err != nil {
		logScheduler("Error fetching milestone tallies: " + err.Error())
		return
	}

	updated := 0
	for _, row := range rows {
		if row.Total == 0 {
			continue
		}
		progress := int(math.Round(float64(row.Completed) / float64(row.Total) * 100))

		result := db.Model(&models.Goal{}).
			Where("id = ? AND progress <> ?", row.GoalID, progress).
			Update("progress", progress)
		if result.Error != nil {
			logScheduler("Error updating goal progress: " + result.Error.Error())
			continue
		}
		updated += int(result.RowsAffected)
	}

	if updated > 0 {
		logScheduler("Progress sync complete.")
	}
}
