package repository

import (
	"context"

	"github.com/lshigami/classroom-portal/internal/model"
	"gorm.io/gorm"
)

type ExerciseRepository interface {
	Create(ctx context.Context, exercise *model.Exercise) error
	FindAll(ctx context.Context) ([]model.Exercise, error)
	FindByID(ctx context.Context, id uint) (*model.Exercise, error)
	Update(ctx context.Context, exercise *model.Exercise) error
	Delete(ctx context.Context, id uint, teacherID string) error
}

type exerciseRepository struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) ExerciseRepository {
	return &exerciseRepository{db: db}
}

func (r *exerciseRepository) Create(ctx context.Context, exercise *model.Exercise) error {
	return translateError(r.db.WithContext(ctx).Create(exercise).Error)
}

func (r *exerciseRepository) FindAll(ctx context.Context) ([]model.Exercise, error) {
	var exercises []model.Exercise
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&exercises).Error
	return exercises, translateError(err)
}

func (r *exerciseRepository) FindByID(ctx context.Context, id uint) (*model.Exercise, error) {
	var exercise model.Exercise
	if err := r.db.WithContext(ctx).First(&exercise, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &exercise, nil
}

// Update overwrites the editable fields of an exercise owned by exercise.TeacherID.
func (r *exerciseRepository) Update(ctx context.Context, exercise *model.Exercise) error {
	res := r.db.WithContext(ctx).
		Model(&model.Exercise{}).
		Where("id = ? AND teacher_id = ?", exercise.ID, exercise.TeacherID).
		Select("title", "description", "html_content", "difficulty", "tags", "updated_at").
		Updates(exercise)
	return affectedOrNotFound(res)
}

func (r *exerciseRepository) Delete(ctx context.Context, id uint, teacherID string) error {
	return affectedOrNotFound(r.db.WithContext(ctx).Where("teacher_id = ?", teacherID).Delete(&model.Exercise{}, id))
}
