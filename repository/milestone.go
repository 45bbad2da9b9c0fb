package repository

import (
	"context"
	"time"

	"github.com/DengXianqi/learning-tracker/models"

	"gorm.io/gorm"
)

type MilestoneRepo struct {
	db *gorm.DB
}

func NewMilestoneRepo(db *gorm.DB) *MilestoneRepo {
	return &MilestoneRepo{db: db}
}

// MilestoneUpdate applies partial updates; nil fields keep the stored value.
type MilestoneUpdate struct {
	Title       *string
	Description *string
	OrderIndex  *int
}

// MilestoneSeed is one milestone of a bulk create.
type MilestoneSeed struct {
	Title       string
	Description string
}

func (r *MilestoneRepo) ListByGoal(ctx context.Context, goalID uint) ([]models.Milestone, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var milestones []models.Milestone
	err := r.db.WithContext(ctx).
		Where("goal_id = ?", goalID).
		Order("order_index ASC, created_at ASC").
		Find(&milestones).Error
	if err != nil {
		return nil, translate(err)
	}
	return milestones, nil
}

func (r *MilestoneRepo) FindByID(ctx context.Context, id uint) (*models.Milestone, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var milestone models.Milestone
	if err := r.db.WithContext(ctx).First(&milestone, id).Error; err != nil {
		return nil, translate(err)
	}
	return &milestone, nil
}

// Create inserts a milestone. When orderIndex is nil the milestone is
// appended after the goal's current highest index.
func (r *MilestoneRepo) Create(ctx context.Context, milestone *models.Milestone, orderIndex *int) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if orderIndex != nil {
		milestone.OrderIndex = *orderIndex
		return translate(r.db.WithContext(ctx).Create(milestone).Error)
	}

	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var next int
		err := tx.Model(&models.Milestone{}).
			Where("goal_id = ?", milestone.GoalID).
			Select("COALESCE(MAX(order_index), -1) + 1").
			Scan(&next).Error
		if err != nil {
			return err
		}
		milestone.OrderIndex = next
		return tx.Create(milestone).Error
	}))
}

// BulkCreate inserts milestones with positional order indices.
func (r *MilestoneRepo) BulkCreate(ctx context.Context, goalID uint, seeds []MilestoneSeed) ([]models.Milestone, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	milestones := make([]models.Milestone, 0, len(seeds))
	for i, seed := range seeds {
		milestones = append(milestones, models.Milestone{
			GoalID:      goalID,
			Title:       seed.Title,
			Description: seed.Description,
			OrderIndex:  i,
		})
	}
	if len(milestones) == 0 {
		return milestones, nil
	}

	if err := r.db.WithContext(ctx).Create(&milestones).Error; err != nil {
		return nil, translate(err)
	}
	return milestones, nil
}

func (r *MilestoneRepo) Update(ctx context.Context, id uint, in MilestoneUpdate) (*models.Milestone, error) {
	updates := map[string]interface{}{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.OrderIndex != nil {
		updates["order_index"] = *in.OrderIndex
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if len(updates) > 0 {
		result := r.db.WithContext(ctx).Model(&models.Milestone{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, translate(result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}

	var milestone models.Milestone
	if err := r.db.WithContext(ctx).First(&milestone, id).Error; err != nil {
		return nil, translate(err)
	}
	return &milestone, nil
}

// Complete marks the milestone done and stamps the completion time.
func (r *MilestoneRepo) Complete(ctx context.Context, id uint) (*models.Milestone, error) {
	return r.setCompleted(ctx, id, true)
}

// Uncomplete marks the milestone pending and clears the completion time.
func (r *MilestoneRepo) Uncomplete(ctx context.Context, id uint) (*models.Milestone, error) {
	return r.setCompleted(ctx, id, false)
}

// ToggleComplete flips the completed flag. This is a read-then-write
// without a compare-and-swap guard; concurrent toggles on the same
// milestone are last-writer-wins.
func (r *MilestoneRepo) ToggleComplete(ctx context.Context, id uint) (*models.Milestone, error) {
	milestone, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.setCompleted(ctx, id, !milestone.Completed)
}

func (r *MilestoneRepo) setCompleted(ctx context.Context, id uint, completed bool) (*models.Milestone, error) {
	updates := map[string]interface{}{
		"completed":    completed,
		"completed_at": nil,
	}
	if completed {
		updates["completed_at"] = time.Now()
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Model(&models.Milestone{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var milestone models.Milestone
	if err := r.db.WithContext(ctx).First(&milestone, id).Error; err != nil {
		return nil, translate(err)
	}
	return &milestone, nil
}

func (r *MilestoneRepo) Delete(ctx context.Context, id uint) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Delete(&models.Milestone{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GoalID resolves the parent goal of a milestone.
func (r *MilestoneRepo) GoalID(ctx context.Context, milestoneID uint) (uint, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var milestone models.Milestone
	err := r.db.WithContext(ctx).Select("id", "goal_id").First(&milestone, milestoneID).Error
	if err != nil {
		return 0, translate(err)
	}
	return milestone.GoalID, nil
}

// Reorder assigns each id its position in ids as the new order index,
// atomically. Updates are scoped to the given goal, so ids belonging to
// another goal are silently skipped. Duplicate ids resolve to the last
// occurrence. An empty sequence is a no-op.
func (r *MilestoneRepo) Reorder(ctx context.Context, goalID uint, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			err := tx.Model(&models.Milestone{}).
				Where("id = ? AND goal_id = ?", id, goalID).
				Update("order_index", i).Error
			if err != nil {
				return err
			}
		}
		return nil
	}))
}
