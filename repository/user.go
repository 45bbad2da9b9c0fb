package repository

import (
	"context"

	"github.com/DengXianqi/learning-tracker/models"

	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// UserStats aggregates goal and milestone counts for the profile view.
type UserStats struct {
	TotalGoals          int64 `json:"totalGoals"`
	CompletedGoals      int64 `json:"completedGoals"`
	TotalMilestones     int64 `json:"totalMilestones"`
	CompletedMilestones int64 `json:"completedMilestones"`
}

func (r *UserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepo) FindByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var user models.User
	if err := r.db.WithContext(ctx).Where("google_id = ?", googleID).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// FindOrCreate upserts the user record on Google sign-in. Name and avatar
// are refreshed on every login. The returned flag reports whether the user
// was created by this call.
func (r *UserRepo) FindOrCreate(ctx context.Context, googleID, email, name, avatarURL string) (*models.User, bool, error) {
	user, err := r.FindByGoogleID(ctx, googleID)
	if err == nil {
		updates := map[string]interface{}{
			"name":       name,
			"avatar_url": avatarURL,
		}

		ctx, cancel := withTimeout(ctx)
		defer cancel()
		if err := r.db.WithContext(ctx).Model(user).Updates(updates).Error; err != nil {
			return nil, false, translate(err)
		}
		return user, false, nil
	}
	if err != ErrNotFound {
		return nil, false, err
	}

	created := models.User{
		GoogleID:  googleID,
		Email:     email,
		Name:      name,
		AvatarURL: avatarURL,
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()
	if err := r.db.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, false, translate(err)
	}
	return &created, true, nil
}

func (r *UserRepo) Stats(ctx context.Context, userID uint) (*UserStats, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)
	var stats UserStats

	if err := db.Model(&models.Goal{}).
		Where("user_id = ?", userID).
		Count(&stats.TotalGoals).Error; err != nil {
		return nil, translate(err)
	}
	if err := db.Model(&models.Goal{}).
		Where("user_id = ? AND status = ?", userID, models.GoalStatusCompleted).
		Count(&stats.CompletedGoals).Error; err != nil {
		return nil, translate(err)
	}

	if err := db.Model(&models.Milestone{}).
		Joins("JOIN goals ON goals.id = milestones.goal_id AND goals.deleted_at IS NULL").
		Where("goals.user_id = ?", userID).
		Count(&stats.TotalMilestones).Error; err != nil {
		return nil, translate(err)
	}
	if err := db.Model(&models.Milestone{}).
		Joins("JOIN goals ON goals.id = milestones.goal_id AND goals.deleted_at IS NULL").
		Where("goals.user_id = ? AND milestones.completed = ?", userID, true).
		Count(&stats.CompletedMilestones).Error; err != nil {
		return nil, translate(err)
	}

	return &stats, nil
}
