package repository

import (
	"context"

	"github.com/lshigami/classroom-portal/internal/model"
	"gorm.io/gorm"
)

// SubmissionRepository is append-only: there is no update or delete path.
type SubmissionRepository interface {
	Create(ctx context.Context, submission *model.StudentSubmission) error
	FindByID(ctx context.Context, id string) (*model.StudentSubmission, error)
	FindByStudent(ctx context.Context, studentID string) ([]model.StudentSubmission, error)
	FindByEvaluation(ctx context.Context, evaluationID string) ([]model.StudentSubmission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

// Create returns ErrDuplicate when the student already has a submission for
// the evaluation.
func (r *submissionRepository) Create(ctx context.Context, submission *model.StudentSubmission) error {
	return translateError(r.db.WithContext(ctx).Create(submission).Error)
}

func (r *submissionRepository) FindByID(ctx context.Context, id string) (*model.StudentSubmission, error) {
	if !validIDs(id) {
		return nil, ErrNotFound
	}
	var submission model.StudentSubmission
	if err := r.db.WithContext(ctx).First(&submission, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &submission, nil
}

func (r *submissionRepository) FindByStudent(ctx context.Context, studentID string) ([]model.StudentSubmission, error) {
	var submissions []model.StudentSubmission
	err := r.db.WithContext(ctx).Where("student_id = ?", studentID).Find(&submissions).Error
	return submissions, translateError(err)
}

func (r *submissionRepository) FindByEvaluation(ctx context.Context, evaluationID string) ([]model.StudentSubmission, error) {
	var submissions []model.StudentSubmission
	err := r.db.WithContext(ctx).Where("evaluation_id = ?", evaluationID).Find(&submissions).Error
	return submissions, translateError(err)
}
