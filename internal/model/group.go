package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceExcused = "excused"
)

// GradesPerMomento is the number of grade slots in each momento.
const GradesPerMomento = 3

type Group struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	TeacherID string    `gorm:"not null;index" json:"teacher_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (g *Group) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// Grades holds three grading periods ("momentos") of three slots each. A nil
// slot has not been graded yet.
type Grades struct {
	M1 [GradesPerMomento]*float64 `json:"m1"`
	M2 [GradesPerMomento]*float64 `json:"m2"`
	M3 [GradesPerMomento]*float64 `json:"m3"`
}

// Momento returns the slots of the named period ("m1", "m2" or "m3").
func (g *Grades) Momento(name string) (*[GradesPerMomento]*float64, bool) {
	switch name {
	case "m1":
		return &g.M1, true
	case "m2":
		return &g.M2, true
	case "m3":
		return &g.M3, true
	}
	return nil, false
}

type GroupStudent struct {
	ID         string                                `gorm:"type:uuid;primaryKey" json:"id"`
	GroupID    string                                `gorm:"type:uuid;not null;index" json:"group_id"`
	Name       string                                `gorm:"not null" json:"name"`
	Grades     datatypes.JSONType[Grades]            `gorm:"type:jsonb;not null" json:"grades"`
	Attendance datatypes.JSONType[map[string]string] `gorm:"type:jsonb;not null" json:"attendance"`
	CreatedAt  time.Time                             `json:"created_at"`
	UpdatedAt  time.Time                             `json:"updated_at"`
}

func (s *GroupStudent) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
