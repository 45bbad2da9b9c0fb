package repository

import (
	"context"

	"github.com/DengXianqi/learning-tracker/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SavedCourseRepo struct {
	db *gorm.DB
}

func NewSavedCourseRepo(db *gorm.DB) *SavedCourseRepo {
	return &SavedCourseRepo{db: db}
}

// Save bookmarks a course for a user. Saving the same course twice is a
// silent no-op (insert-or-ignore on the user/external-id pair).
func (r *SavedCourseRepo) Save(ctx context.Context, course *models.SavedCourse) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return translate(r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "external_id"}},
			DoNothing: true,
		}).
		Create(course).Error)
}

func (r *SavedCourseRepo) ListByUser(ctx context.Context, userID uint) ([]models.SavedCourse, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var courses []models.SavedCourse
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&courses).Error
	if err != nil {
		return nil, translate(err)
	}
	return courses, nil
}

// DeleteByExternalID removes a bookmark. The row is dropped for real so the
// course can be saved again later without tripping the unique index.
func (r *SavedCourseRepo) DeleteByExternalID(ctx context.Context, userID uint, externalID string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Unscoped().
		Where("user_id = ? AND external_id = ?", userID, externalID).
		Delete(&models.SavedCourse{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
