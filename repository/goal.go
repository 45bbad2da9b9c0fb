package repository

import (
	"context"
	"time"

	"github.com/DengXianqi/learning-tracker/models"

	"gorm.io/gorm"
)

type GoalRepo struct {
	db *gorm.DB
}

func NewGoalRepo(db *gorm.DB) *GoalRepo {
	return &GoalRepo{db: db}
}

// GoalFilter narrows ListByUser. A zero value lists everything.
type GoalFilter struct {
	Status string
	Limit  int
	Offset int
}

// GoalWithCounts carries a goal plus its milestone tallies for list views.
type GoalWithCounts struct {
	models.Goal
	MilestoneCount          int64 `json:"milestoneCount"`
	CompletedMilestoneCount int64 `json:"completedMilestoneCount"`
}

// GoalUpdate applies partial updates; nil fields keep the stored value.
type GoalUpdate struct {
	Title       *string
	Description *string
	Category    *string
	TargetDate  *time.Time
	Status      *string
}

// StatusStat is one row of the per-status breakdown.
type StatusStat struct {
	Status      string  `json:"status"`
	Count       int64   `json:"count"`
	AvgProgress float64 `json:"avgProgress"`
}

// CategoryStat is one row of the per-category breakdown.
type CategoryStat struct {
	Category    string  `json:"category"`
	Count       int64   `json:"count"`
	AvgProgress float64 `json:"avgProgress"`
}

// Activity is a recent goal or milestone event for the dashboard feed.
type Activity struct {
	Type         string    `json:"type"`
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Status       string    `json:"status"`
	ActivityDate time.Time `json:"activityDate"`
}

func (r *GoalRepo) ListByUser(ctx context.Context, userID uint, filter GoalFilter) ([]GoalWithCounts, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Model(&models.Goal{}).
		Select("goals.*, COUNT(milestones.id) AS milestone_count, COUNT(CASE WHEN milestones.completed THEN 1 END) AS completed_milestone_count").
		Joins("LEFT JOIN milestones ON milestones.goal_id = goals.id AND milestones.deleted_at IS NULL").
		Where("goals.user_id = ?", userID).
		Group("goals.id").
		Order("goals.created_at DESC")

	if filter.Status != "" {
		query = query.Where("goals.status = ?", filter.Status)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var goals []GoalWithCounts
	if err := query.Scan(&goals).Error; err != nil {
		return nil, translate(err)
	}
	return goals, nil
}

func (r *GoalRepo) FindByID(ctx context.Context, id uint) (*models.Goal, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var goal models.Goal
	if err := r.db.WithContext(ctx).First(&goal, id).Error; err != nil {
		return nil, translate(err)
	}
	return &goal, nil
}

// FindWithMilestones returns the goal with its milestones ordered by
// order index, creation time breaking ties.
func (r *GoalRepo) FindWithMilestones(ctx context.Context, id uint) (*models.Goal, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var goal models.Goal
	err := r.db.WithContext(ctx).
		Preload("Milestones", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("order_index ASC, created_at ASC")
		}).
		First(&goal, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &goal, nil
}

func (r *GoalRepo) Create(ctx context.Context, goal *models.Goal) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if goal.Status == "" {
		goal.Status = models.GoalStatusActive
	}
	return translate(r.db.WithContext(ctx).Create(goal).Error)
}

func (r *GoalRepo) Update(ctx context.Context, id uint, in GoalUpdate) (*models.Goal, error) {
	updates := map[string]interface{}{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Category != nil {
		updates["category"] = *in.Category
	}
	if in.TargetDate != nil {
		updates["target_date"] = *in.TargetDate
	}
	if in.Status != nil {
		updates["status"] = *in.Status
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if len(updates) > 0 {
		result := r.db.WithContext(ctx).Model(&models.Goal{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, translate(result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}

	var goal models.Goal
	if err := r.db.WithContext(ctx).First(&goal, id).Error; err != nil {
		return nil, translate(err)
	}
	return &goal, nil
}

// Delete removes the goal, its milestones, and clears any saved-course
// references to it, in one transaction.
func (r *GoalRepo) Delete(ctx context.Context, id uint) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.SavedCourse{}).
			Where("goal_id = ?", id).
			Update("goal_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("goal_id = ?", id).Delete(&models.Milestone{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Goal{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	}))
}

// OwnerID resolves the owning user of a goal.
func (r *GoalRepo) OwnerID(ctx context.Context, goalID uint) (uint, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var goal models.Goal
	err := r.db.WithContext(ctx).Select("id", "user_id").First(&goal, goalID).Error
	if err != nil {
		return 0, translate(err)
	}
	return goal.UserID, nil
}

func (r *GoalRepo) StatsByStatus(ctx context.Context, userID uint) ([]StatusStat, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var stats []StatusStat
	err := r.db.WithContext(ctx).Model(&models.Goal{}).
		Select("status, COUNT(*) AS count, AVG(progress) AS avg_progress").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&stats).Error
	if err != nil {
		return nil, translate(err)
	}
	return stats, nil
}

func (r *GoalRepo) StatsByCategory(ctx context.Context, userID uint) ([]CategoryStat, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var stats []CategoryStat
	err := r.db.WithContext(ctx).Model(&models.Goal{}).
		Select("category, COUNT(*) AS count, AVG(progress) AS avg_progress").
		Where("user_id = ? AND category <> ''", userID).
		Group("category").
		Order("count DESC").
		Scan(&stats).Error
	if err != nil {
		return nil, translate(err)
	}
	return stats, nil
}

// Categories returns the distinct non-empty categories of a user's goals.
func (r *GoalRepo) Categories(ctx context.Context, userID uint) ([]string, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var categories []string
	err := r.db.WithContext(ctx).Model(&models.Goal{}).
		Distinct("category").
		Where("user_id = ? AND category <> ''", userID).
		Pluck("category", &categories).Error
	if err != nil {
		return nil, translate(err)
	}
	return categories, nil
}

// RecentActivity interleaves goal updates and milestone completions,
// newest first.
func (r *GoalRepo) RecentActivity(ctx context.Context, userID uint, limit int) ([]Activity, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if limit <= 0 {
		limit = 10
	}

	var activity []Activity
	err := r.db.WithContext(ctx).Raw(`
		SELECT 'goal' AS type, g.id, g.title, g.status, g.updated_at AS activity_date
		FROM goals g
		WHERE g.user_id = ? AND g.deleted_at IS NULL
		UNION ALL
		SELECT 'milestone' AS type, m.id, m.title,
			CASE WHEN m.completed THEN 'completed' ELSE 'pending' END AS status,
			COALESCE(m.completed_at, m.updated_at) AS activity_date
		FROM milestones m
		JOIN goals g ON m.goal_id = g.id AND g.deleted_at IS NULL
		WHERE g.user_id = ? AND m.deleted_at IS NULL
		ORDER BY activity_date DESC
		LIMIT ?`, userID, userID, limit).
		Scan(&activity).Error
	if err != nil {
		return nil, translate(err)
	}
	return activity, nil
}
