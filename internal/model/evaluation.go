package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Evaluation struct {
	ID               string                        `gorm:"type:uuid;primaryKey" json:"id"`
	TeacherID        string                        `gorm:"not null;index" json:"teacher_id"`
	Topic            string                        `gorm:"not null" json:"topic"`
	StartDate        time.Time                     `gorm:"not null" json:"start_date"`
	EndDate          time.Time                     `gorm:"not null" json:"end_date"`
	Questions        datatypes.JSONSlice[Question] `gorm:"type:jsonb;not null" json:"questions"`
	AssignedGroupIDs datatypes.JSONSlice[string]   `gorm:"type:jsonb;not null" json:"assigned_group_ids"`
	CreatedAt        time.Time                     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time                     `json:"updated_at"`
}

func (e *Evaluation) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.AssignedGroupIDs == nil {
		e.AssignedGroupIDs = datatypes.JSONSlice[string]{}
	}
	return nil
}

// IsOpenAt reports whether now lies strictly inside (StartDate, EndDate).
func (e Evaluation) IsOpenAt(now time.Time) bool {
	return now.After(e.StartDate) && now.Before(e.EndDate)
}

func (e Evaluation) QuestionIDs() []string {
	ids := make([]string, 0, len(e.Questions))
	for _, q := range e.Questions {
		ids = append(ids, q.ID)
	}
	return ids
}
