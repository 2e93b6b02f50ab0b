package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/classroom-portal/internal/dto"
	"github.com/lshigami/classroom-portal/internal/model"
	"github.com/lshigami/classroom-portal/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

const (
	MinGrade = 0.0
	MaxGrade = 10.0

	attendanceDateLayout = "2006-01-02"
)

var attendanceStatuses = map[string]struct{}{
	model.AttendancePresent: {},
	model.AttendanceAbsent:  {},
	model.AttendanceExcused: {},
}

// GroupService manages a teacher's class groups, their roster, grade book
// and attendance. Groups of other teachers behave as not found.
type GroupService interface {
	CreateGroup(ctx context.Context, teacherID, name string) (*dto.GroupResponse, error)
	ListGroups(ctx context.Context, teacherID string) ([]dto.GroupResponse, error)
	AddStudent(ctx context.Context, teacherID, groupID, name string) (*dto.GroupStudentResponse, error)
	ListStudents(ctx context.Context, teacherID, groupID string) ([]dto.GroupStudentResponse, error)
	SetGrade(ctx context.Context, teacherID, groupID, studentID string, req dto.SetGradeRequest) (*dto.GroupStudentResponse, error)
	SaveAttendance(ctx context.Context, teacherID, groupID string, req dto.SaveAttendanceRequest) error
}

type groupService struct {
	groupRepo repository.GroupRepository
}

func NewGroupService(groupRepo repository.GroupRepository) GroupService {
	return &groupService{groupRepo: groupRepo}
}

func (s *groupService) CreateGroup(ctx context.Context, teacherID, name string) (*dto.GroupResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, newValidationError("name", "must not be blank")
	}
	group := model.Group{Name: name, TeacherID: teacherID}
	if err := s.groupRepo.Create(ctx, &group); err != nil {
		return nil, storeError(err, "create group", teacherID)
	}
	log.Info().Str("groupID", group.ID).Str("teacherID", teacherID).Msg("Group created")

	var resp dto.GroupResponse
	if err := copier.Copy(&resp, &group); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *groupService) ListGroups(ctx context.Context, teacherID string) ([]dto.GroupResponse, error) {
	groups, err := s.groupRepo.FindByTeacher(ctx, teacherID)
	if err != nil {
		return nil, storeError(err, "list groups", teacherID)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].CreatedAt.After(groups[j].CreatedAt)
	})

	resp := make([]dto.GroupResponse, 0, len(groups))
	if err := copier.Copy(&resp, &groups); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *groupService) AddStudent(ctx context.Context, teacherID, groupID, name string) (*dto.GroupStudentResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, newValidationError("name", "must not be blank")
	}
	if err := s.ownGroup(ctx, teacherID, groupID); err != nil {
		return nil, err
	}

	student := model.GroupStudent{
		GroupID:    groupID,
		Name:       name,
		Grades:     datatypes.NewJSONType(model.Grades{}),
		Attendance: datatypes.NewJSONType(map[string]string{}),
	}
	if err := s.groupRepo.CreateStudent(ctx, &student); err != nil {
		return nil, storeError(err, "add student", groupID)
	}
	log.Info().Str("groupID", groupID).Str("studentID", student.ID).Msg("Student added to group")

	resp := toGroupStudentResponse(student)
	return &resp, nil
}

func (s *groupService) ListStudents(ctx context.Context, teacherID, groupID string) ([]dto.GroupStudentResponse, error) {
	if err := s.ownGroup(ctx, teacherID, groupID); err != nil {
		return nil, err
	}
	students, err := s.groupRepo.FindStudents(ctx, groupID)
	if err != nil {
		return nil, storeError(err, "list students", groupID)
	}
	sort.SliceStable(students, func(i, j int) bool {
		return strings.ToLower(students[i].Name) < strings.ToLower(students[j].Name)
	})

	resp := make([]dto.GroupStudentResponse, 0, len(students))
	for _, st := range students {
		resp = append(resp, toGroupStudentResponse(st))
	}
	return resp, nil
}

// SetGrade writes one slot of one momento. A nil value clears the slot.
func (s *groupService) SetGrade(ctx context.Context, teacherID, groupID, studentID string, req dto.SetGradeRequest) (*dto.GroupStudentResponse, error) {
	verr := &ValidationError{}
	if req.Index == nil || *req.Index < 0 || *req.Index >= model.GradesPerMomento {
		verr.add("index", "must be between 0 and 2")
	}
	if req.Value != nil && (*req.Value < MinGrade || *req.Value > MaxGrade) {
		verr.add("value", "must be between 0 and 10")
	}
	grades := model.Grades{}
	if _, ok := grades.Momento(req.Momento); !ok {
		verr.add("momento", "must be one of m1, m2, m3")
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	if err := s.ownGroup(ctx, teacherID, groupID); err != nil {
		return nil, err
	}
	student, err := s.groupRepo.FindStudent(ctx, groupID, studentID)
	if err != nil {
		return nil, storeError(err, "get student", studentID)
	}

	grades = student.Grades.Data()
	slots, _ := grades.Momento(req.Momento)
	if req.Value == nil {
		slots[*req.Index] = nil
	} else {
		v := *req.Value
		slots[*req.Index] = &v
	}
	student.Grades = datatypes.NewJSONType(grades)

	if err := s.groupRepo.UpdateStudentGrades(ctx, student); err != nil {
		return nil, storeError(err, "set grade", studentID)
	}
	resp := toGroupStudentResponse(*student)
	return &resp, nil
}

// SaveAttendance records the status of several students for one day in a
// single write batch.
func (s *groupService) SaveAttendance(ctx context.Context, teacherID, groupID string, req dto.SaveAttendanceRequest) error {
	verr := &ValidationError{}
	if _, err := time.Parse(attendanceDateLayout, req.Date); err != nil {
		verr.add("date", "must be formatted as yyyy-MM-dd")
	}
	for studentID, status := range req.Records {
		if _, ok := attendanceStatuses[status]; !ok {
			verr.add("records."+studentID, "must be one of present, absent, excused")
		}
	}
	if err := verr.orNil(); err != nil {
		return err
	}
	if err := s.ownGroup(ctx, teacherID, groupID); err != nil {
		return err
	}
	if len(req.Records) == 0 {
		return nil
	}
	if err := s.groupRepo.SaveAttendance(ctx, groupID, req.Date, req.Records); err != nil {
		return storeError(err, "save attendance", groupID)
	}
	log.Info().Str("groupID", groupID).Str("date", req.Date).Int("records", len(req.Records)).Msg("Attendance saved")
	return nil
}

func (s *groupService) ownGroup(ctx context.Context, teacherID, groupID string) error {
	if _, err := s.groupRepo.FindByIDForTeacher(ctx, groupID, teacherID); err != nil {
		return storeError(err, "get group", groupID)
	}
	return nil
}

func toGroupStudentResponse(st model.GroupStudent) dto.GroupStudentResponse {
	grades := st.Grades.Data()
	attendance := st.Attendance.Data()
	if attendance == nil {
		attendance = map[string]string{}
	}
	return dto.GroupStudentResponse{
		ID:         st.ID,
		GroupID:    st.GroupID,
		Name:       st.Name,
		Grades:     dto.GradesDTO{M1: grades.M1, M2: grades.M2, M3: grades.M3},
		Attendance: attendance,
	}
}
