package model

import (
	"time"

	"gorm.io/datatypes"
)

var ExerciseDifficulties = []string{"Easy", "Medium", "Hard"}

type Exercise struct {
	ID          uint                        `gorm:"primarykey" json:"id"`
	TeacherID   string                      `gorm:"not null;index" json:"teacher_id"`
	Title       string                      `gorm:"not null" json:"title"`
	Description string                      `gorm:"type:text" json:"description,omitempty"`
	HTMLContent string                      `gorm:"type:text" json:"html_content,omitempty"`
	Difficulty  string                      `json:"difficulty,omitempty"`
	Tags        datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}
