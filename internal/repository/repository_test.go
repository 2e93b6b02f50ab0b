package repository

import (
	"context"
	"testing"

	"github.com/lshigami/classroom-portal/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	groupID   = "7b0e6c1e-3f57-4c55-9a43-5f3f3c1a9d10"
	studentID = "c2f1a8d4-1b2e-4f6a-8d3c-9e7b6a5f4c21"
)

// Repositories built on a nil *gorm.DB panic on any query, so these cases
// also show that malformed ids never reach postgres.
func TestMalformedIDsAreNotFound(t *testing.T) {
	ctx := context.Background()
	evaluations := NewEvaluationRepository(nil)
	submissions := NewSubmissionRepository(nil)
	groups := NewGroupRepository(nil)

	cases := map[string]func() error{
		"evaluation find": func() error { _, err := evaluations.FindByID(ctx, "abc"); return err },
		"evaluation update": func() error {
			return evaluations.UpdateContent(ctx, &model.Evaluation{ID: "foo", TeacherID: "t-1"})
		},
		"evaluation assign": func() error { return evaluations.UpdateAssignedGroups(ctx, "foo", "t-1", []string{"g"}) },
		"evaluation delete": func() error { return evaluations.Delete(ctx, "foo", "t-1") },
		"submission find":   func() error { _, err := submissions.FindByID(ctx, "abc"); return err },
		"group find":        func() error { _, err := groups.FindByIDForTeacher(ctx, "5to-a", "t-1"); return err },
		"student find":      func() error { _, err := groups.FindStudent(ctx, groupID, "ana"); return err },
		"student grades": func() error {
			return groups.UpdateStudentGrades(ctx, &model.GroupStudent{ID: "ana", GroupID: groupID})
		},
		"attendance group": func() error {
			return groups.SaveAttendance(ctx, "5to-a", "2024-03-15", map[string]string{studentID: model.AttendancePresent})
		},
		"attendance student": func() error {
			return groups.SaveAttendance(ctx, groupID, "2024-03-15", map[string]string{studentID: model.AttendancePresent, "ana": model.AttendanceAbsent})
		},
	}
	for name, call := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, call(), ErrNotFound)
		})
	}

	students, err := groups.FindStudents(ctx, "5to-a")
	assert.NoError(t, err)
	assert.Empty(t, students)
}

func TestValidIDs(t *testing.T) {
	assert.True(t, validIDs(groupID, studentID))
	assert.True(t, validIDs())
	assert.False(t, validIDs(groupID, ""))
	assert.False(t, validIDs("eval-1"))
}

func TestSetAttendanceMergesOneDate(t *testing.T) {
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost user=portal dbname=portal sslmode=disable"}),
		&gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return setAttendance(tx, groupID, studentID, "2024-03-15", model.AttendanceExcused)
	})

	assert.Contains(t, sql, `UPDATE "group_students" SET "attendance"=COALESCE(attendance, '{}'::jsonb) || jsonb_build_object('2024-03-15'::text, 'excused'::text)`)
	assert.Contains(t, sql, "id = '"+studentID+"' AND group_id = '"+groupID+"'")
}
