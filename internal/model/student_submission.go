package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StudentSubmission is written once per (student, evaluation) pair. The
// composite unique index rejects a second attempt at the storage layer.
type StudentSubmission struct {
	ID                  string                                `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID           string                                `gorm:"not null;uniqueIndex:idx_submission_student_evaluation" json:"student_id"`
	StudentName         string                                `json:"student_name"`
	EvaluationID        string                                `gorm:"not null;uniqueIndex:idx_submission_student_evaluation;index" json:"evaluation_id"`
	EvaluationTopic     string                                `json:"evaluation_topic"`
	GroupID             string                                `json:"group_id"`
	SelectedAnswers     datatypes.JSONType[map[string]string] `gorm:"type:jsonb;not null" json:"selected_answers"`
	Score               float64                               `gorm:"not null" json:"score"`
	CorrectAnswersCount int                                   `gorm:"not null" json:"correct_answers_count"`
	TotalQuestions      int                                   `gorm:"not null" json:"total_questions"`
	SubmittedAt         time.Time                             `gorm:"autoCreateTime" json:"submitted_at"`
}

func (s *StudentSubmission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
