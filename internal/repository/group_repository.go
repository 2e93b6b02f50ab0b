package repository

import (
	"context"

	"github.com/lshigami/classroom-portal/internal/model"
	"gorm.io/gorm"
)

type GroupRepository interface {
	Create(ctx context.Context, group *model.Group) error
	FindByTeacher(ctx context.Context, teacherID string) ([]model.Group, error)
	FindByIDForTeacher(ctx context.Context, id, teacherID string) (*model.Group, error)

	CreateStudent(ctx context.Context, student *model.GroupStudent) error
	FindStudents(ctx context.Context, groupID string) ([]model.GroupStudent, error)
	FindStudent(ctx context.Context, groupID, studentID string) (*model.GroupStudent, error)
	UpdateStudentGrades(ctx context.Context, student *model.GroupStudent) error
	// SaveAttendance sets the status for date on every listed student in one
	// transaction. An unknown student id aborts the whole batch.
	SaveAttendance(ctx context.Context, groupID, date string, records map[string]string) error
}

type groupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Create(ctx context.Context, group *model.Group) error {
	return translateError(r.db.WithContext(ctx).Create(group).Error)
}

func (r *groupRepository) FindByTeacher(ctx context.Context, teacherID string) ([]model.Group, error) {
	var groups []model.Group
	err := r.db.WithContext(ctx).Where("teacher_id = ?", teacherID).Find(&groups).Error
	return groups, translateError(err)
}

func (r *groupRepository) FindByIDForTeacher(ctx context.Context, id, teacherID string) (*model.Group, error) {
	if !validIDs(id) {
		return nil, ErrNotFound
	}
	var group model.Group
	if err := r.db.WithContext(ctx).First(&group, "id = ? AND teacher_id = ?", id, teacherID).Error; err != nil {
		return nil, translateError(err)
	}
	return &group, nil
}

func (r *groupRepository) CreateStudent(ctx context.Context, student *model.GroupStudent) error {
	return translateError(r.db.WithContext(ctx).Create(student).Error)
}

func (r *groupRepository) FindStudents(ctx context.Context, groupID string) ([]model.GroupStudent, error) {
	if !validIDs(groupID) {
		return nil, nil
	}
	var students []model.GroupStudent
	err := r.db.WithContext(ctx).Where("group_id = ?", groupID).Order("name ASC").Find(&students).Error
	return students, translateError(err)
}

func (r *groupRepository) FindStudent(ctx context.Context, groupID, studentID string) (*model.GroupStudent, error) {
	if !validIDs(groupID, studentID) {
		return nil, ErrNotFound
	}
	var student model.GroupStudent
	if err := r.db.WithContext(ctx).First(&student, "id = ? AND group_id = ?", studentID, groupID).Error; err != nil {
		return nil, translateError(err)
	}
	return &student, nil
}

func (r *groupRepository) UpdateStudentGrades(ctx context.Context, student *model.GroupStudent) error {
	if !validIDs(student.ID, student.GroupID) {
		return ErrNotFound
	}
	res := r.db.WithContext(ctx).
		Model(&model.GroupStudent{}).
		Where("id = ? AND group_id = ?", student.ID, student.GroupID).
		Update("grades", student.Grades)
	return affectedOrNotFound(res)
}

func (r *groupRepository) SaveAttendance(ctx context.Context, groupID, date string, records map[string]string) error {
	if !validIDs(groupID) {
		return ErrNotFound
	}
	for studentID := range records {
		if !validIDs(studentID) {
			return ErrNotFound
		}
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for studentID, status := range records {
			if err := affectedOrNotFound(setAttendance(tx, groupID, studentID, date, status)); err != nil {
				return err
			}
		}
		return nil
	})
}

// setAttendance merges {date: status} into the stored attendance document in
// one statement. Entries for other dates are left as they are in the row.
func setAttendance(tx *gorm.DB, groupID, studentID, date, status string) *gorm.DB {
	return tx.Model(&model.GroupStudent{}).
		Where("id = ? AND group_id = ?", studentID, groupID).
		Update("attendance", gorm.Expr("COALESCE(attendance, '{}'::jsonb) || jsonb_build_object(?::text, ?::text)", date, status))
}
