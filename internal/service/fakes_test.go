package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/lshigami/classroom-portal/internal/model"
	"github.com/lshigami/classroom-portal/internal/repository"
	"gorm.io/datatypes"
)

/* ---------------- In-memory fakes that satisfy the repository interfaces ---------------- */

var errStoreDown = errors.New("connection refused")

type fakeEvaluationRepo struct {
	mu          sync.Mutex
	evaluations map[string]model.Evaluation
	failWith    error
}

func newFakeEvaluationRepo() *fakeEvaluationRepo {
	return &fakeEvaluationRepo{evaluations: map[string]model.Evaluation{}}
}

func (r *fakeEvaluationRepo) Create(_ context.Context, e *model.Evaluation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.AssignedGroupIDs == nil {
		e.AssignedGroupIDs = datatypes.JSONSlice[string]{}
	}
	r.evaluations[e.ID] = *e
	return nil
}

func (r *fakeEvaluationRepo) FindByID(_ context.Context, id string) (*model.Evaluation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	e, ok := r.evaluations[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &e, nil
}

func (r *fakeEvaluationRepo) FindAll(_ context.Context) ([]model.Evaluation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]model.Evaluation, 0, len(r.evaluations))
	for _, e := range r.evaluations {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEvaluationRepo) FindByTeacher(ctx context.Context, teacherID string) ([]model.Evaluation, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []model.Evaluation
	for _, e := range all {
		if e.TeacherID == teacherID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEvaluationRepo) UpdateContent(_ context.Context, e *model.Evaluation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.evaluations[e.ID]
	if !ok || cur.TeacherID != e.TeacherID {
		return repository.ErrNotFound
	}
	cur.Topic, cur.StartDate, cur.EndDate, cur.Questions, cur.UpdatedAt = e.Topic, e.StartDate, e.EndDate, e.Questions, e.UpdatedAt
	r.evaluations[e.ID] = cur
	return nil
}

func (r *fakeEvaluationRepo) UpdateAssignedGroups(_ context.Context, id, teacherID string, groupIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.evaluations[id]
	if !ok || cur.TeacherID != teacherID {
		return repository.ErrNotFound
	}
	cur.AssignedGroupIDs = append(datatypes.JSONSlice[string]{}, groupIDs...)
	r.evaluations[id] = cur
	return nil
}

func (r *fakeEvaluationRepo) Delete(_ context.Context, id, teacherID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.evaluations[id]
	if !ok || cur.TeacherID != teacherID {
		return repository.ErrNotFound
	}
	delete(r.evaluations, id)
	return nil
}

// fakeSubmissionRepo enforces the (student, evaluation) uniqueness the
// postgres index provides.
type fakeSubmissionRepo struct {
	mu          sync.Mutex
	submissions []model.StudentSubmission
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{}
}

func (r *fakeSubmissionRepo) Create(_ context.Context, s *model.StudentSubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.submissions {
		if existing.StudentID == s.StudentID && existing.EvaluationID == s.EvaluationID {
			return repository.ErrDuplicate
		}
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	r.submissions = append(r.submissions, *s)
	return nil
}

func (r *fakeSubmissionRepo) FindByID(_ context.Context, id string) (*model.StudentSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.submissions {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeSubmissionRepo) FindByStudent(_ context.Context, studentID string) ([]model.StudentSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.StudentSubmission
	for _, s := range r.submissions {
		if s.StudentID == studentID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSubmissionRepo) FindByEvaluation(_ context.Context, evaluationID string) ([]model.StudentSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.StudentSubmission
	for _, s := range r.submissions {
		if s.EvaluationID == evaluationID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSubmissionRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.submissions)
}

type fakeGroupRepo struct {
	groups   map[string]model.Group
	students map[string]model.GroupStudent
}

func newFakeGroupRepo() *fakeGroupRepo {
	return &fakeGroupRepo{groups: map[string]model.Group{}, students: map[string]model.GroupStudent{}}
}

func (r *fakeGroupRepo) Create(_ context.Context, g *model.Group) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	r.groups[g.ID] = *g
	return nil
}

func (r *fakeGroupRepo) FindByTeacher(_ context.Context, teacherID string) ([]model.Group, error) {
	var out []model.Group
	for _, g := range r.groups {
		if g.TeacherID == teacherID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGroupRepo) FindByIDForTeacher(_ context.Context, id, teacherID string) (*model.Group, error) {
	g, ok := r.groups[id]
	if !ok || g.TeacherID != teacherID {
		return nil, repository.ErrNotFound
	}
	return &g, nil
}

func (r *fakeGroupRepo) CreateStudent(_ context.Context, s *model.GroupStudent) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	r.students[s.ID] = *s
	return nil
}

func (r *fakeGroupRepo) FindStudents(_ context.Context, groupID string) ([]model.GroupStudent, error) {
	var out []model.GroupStudent
	for _, s := range r.students {
		if s.GroupID == groupID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeGroupRepo) FindStudent(_ context.Context, groupID, studentID string) (*model.GroupStudent, error) {
	s, ok := r.students[studentID]
	if !ok || s.GroupID != groupID {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (r *fakeGroupRepo) UpdateStudentGrades(_ context.Context, s *model.GroupStudent) error {
	cur, ok := r.students[s.ID]
	if !ok || cur.GroupID != s.GroupID {
		return repository.ErrNotFound
	}
	cur.Grades = s.Grades
	r.students[s.ID] = cur
	return nil
}

// SaveAttendance validates every student before writing, like the
// transactional repository does.
func (r *fakeGroupRepo) SaveAttendance(_ context.Context, groupID, date string, records map[string]string) error {
	for id := range records {
		if s, ok := r.students[id]; !ok || s.GroupID != groupID {
			return repository.ErrNotFound
		}
	}
	for id, status := range records {
		s := r.students[id]
		att := s.Attendance.Data()
		if att == nil {
			att = map[string]string{}
		}
		att[date] = status
		s.Attendance = datatypes.NewJSONType(att)
		r.students[id] = s
	}
	return nil
}

type fakeVideoRepo struct {
	videos []model.Video
	nextID uint
}

func (r *fakeVideoRepo) Create(_ context.Context, v *model.Video) error {
	for _, existing := range r.videos {
		if existing.VideoID == v.VideoID {
			return repository.ErrDuplicate
		}
	}
	r.nextID++
	v.ID = r.nextID
	r.videos = append(r.videos, *v)
	return nil
}

func (r *fakeVideoRepo) FindAll(_ context.Context) ([]model.Video, error) {
	out := make([]model.Video, len(r.videos))
	copy(out, r.videos)
	return out, nil
}

func (r *fakeVideoRepo) Delete(_ context.Context, id uint) error {
	for i, v := range r.videos {
		if v.ID == id {
			r.videos = append(r.videos[:i], r.videos[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeExerciseRepo struct {
	exercises map[uint]model.Exercise
	nextID    uint
}

func newFakeExerciseRepo() *fakeExerciseRepo {
	return &fakeExerciseRepo{exercises: map[uint]model.Exercise{}}
}

func (r *fakeExerciseRepo) Create(_ context.Context, e *model.Exercise) error {
	r.nextID++
	e.ID = r.nextID
	r.exercises[e.ID] = *e
	return nil
}

func (r *fakeExerciseRepo) FindAll(_ context.Context) ([]model.Exercise, error) {
	var out []model.Exercise
	for _, e := range r.exercises {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeExerciseRepo) FindByID(_ context.Context, id uint) (*model.Exercise, error) {
	e, ok := r.exercises[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &e, nil
}

func (r *fakeExerciseRepo) Update(_ context.Context, e *model.Exercise) error {
	cur, ok := r.exercises[e.ID]
	if !ok || cur.TeacherID != e.TeacherID {
		return repository.ErrNotFound
	}
	e.CreatedAt = cur.CreatedAt
	r.exercises[e.ID] = *e
	return nil
}

func (r *fakeExerciseRepo) Delete(_ context.Context, id uint, teacherID string) error {
	cur, ok := r.exercises[id]
	if !ok || cur.TeacherID != teacherID {
		return repository.ErrNotFound
	}
	delete(r.exercises, id)
	return nil
}
