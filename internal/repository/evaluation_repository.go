package repository

import (
	"context"

	"github.com/lshigami/classroom-portal/internal/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EvaluationRepository stores Evaluation aggregates. Result order of the
// Find methods is unspecified; callers sort.
type EvaluationRepository interface {
	Create(ctx context.Context, evaluation *model.Evaluation) error
	FindByID(ctx context.Context, id string) (*model.Evaluation, error)
	FindAll(ctx context.Context) ([]model.Evaluation, error)
	FindByTeacher(ctx context.Context, teacherID string) ([]model.Evaluation, error)
	UpdateContent(ctx context.Context, evaluation *model.Evaluation) error
	UpdateAssignedGroups(ctx context.Context, id, teacherID string, groupIDs []string) error
	Delete(ctx context.Context, id, teacherID string) error
}

type evaluationRepository struct {
	db *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) EvaluationRepository {
	return &evaluationRepository{db: db}
}

func (r *evaluationRepository) Create(ctx context.Context, evaluation *model.Evaluation) error {
	return translateError(r.db.WithContext(ctx).Create(evaluation).Error)
}

func (r *evaluationRepository) FindByID(ctx context.Context, id string) (*model.Evaluation, error) {
	if !validIDs(id) {
		return nil, ErrNotFound
	}
	var evaluation model.Evaluation
	if err := r.db.WithContext(ctx).First(&evaluation, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &evaluation, nil
}

func (r *evaluationRepository) FindAll(ctx context.Context) ([]model.Evaluation, error) {
	var evaluations []model.Evaluation
	if err := r.db.WithContext(ctx).Find(&evaluations).Error; err != nil {
		return nil, translateError(err)
	}
	return evaluations, nil
}

func (r *evaluationRepository) FindByTeacher(ctx context.Context, teacherID string) ([]model.Evaluation, error) {
	var evaluations []model.Evaluation
	if err := r.db.WithContext(ctx).Where("teacher_id = ?", teacherID).Find(&evaluations).Error; err != nil {
		return nil, translateError(err)
	}
	return evaluations, nil
}

// UpdateContent writes topic, dates and questions of an evaluation owned by
// evaluation.TeacherID. Group assignment and createdAt are left untouched.
func (r *evaluationRepository) UpdateContent(ctx context.Context, evaluation *model.Evaluation) error {
	if !validIDs(evaluation.ID) {
		return ErrNotFound
	}
	res := r.db.WithContext(ctx).
		Model(&model.Evaluation{}).
		Where("id = ? AND teacher_id = ?", evaluation.ID, evaluation.TeacherID).
		Select("topic", "start_date", "end_date", "questions", "updated_at").
		Updates(evaluation)
	return affectedOrNotFound(res)
}

func (r *evaluationRepository) UpdateAssignedGroups(ctx context.Context, id, teacherID string, groupIDs []string) error {
	if !validIDs(id) {
		return ErrNotFound
	}
	res := r.db.WithContext(ctx).
		Model(&model.Evaluation{}).
		Where("id = ? AND teacher_id = ?", id, teacherID).
		Update("assigned_group_ids", datatypes.JSONSlice[string](groupIDs))
	return affectedOrNotFound(res)
}

func (r *evaluationRepository) Delete(ctx context.Context, id, teacherID string) error {
	if !validIDs(id) {
		return ErrNotFound
	}
	res := r.db.WithContext(ctx).
		Where("id = ? AND teacher_id = ?", id, teacherID).
		Delete(&model.Evaluation{})
	return affectedOrNotFound(res)
}
