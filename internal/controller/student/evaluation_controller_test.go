package student

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/classroom-portal/internal/dto"
	"github.com/lshigami/classroom-portal/internal/middleware"
	"github.com/lshigami/classroom-portal/internal/repository"
	"github.com/lshigami/classroom-portal/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEvaluationService records the last submission and answers with the
// configured error. Methods not overridden panic through the nil interface.
type fakeEvaluationService struct {
	service.EvaluationService

	err         error
	gotStudent  string
	gotName     string
	gotEval     string
	gotAnswers  map[string]string
	submissions map[string]dto.SubmissionResponse
}

func (f *fakeEvaluationService) ListAvailableForStudent(_ context.Context, studentID string) (*dto.StudentDashboardResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.gotStudent = studentID
	return &dto.StudentDashboardResponse{
		Available: []dto.StudentEvaluationResponse{{ID: "eval-1", Topic: "Fracciones", QuestionCount: 2}},
		Completed: []dto.SubmissionResponse{},
	}, nil
}

func (f *fakeEvaluationService) GetEvaluationForStudent(_ context.Context, evaluationID, studentID string) (*dto.StudentEvaluationResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.StudentEvaluationResponse{ID: evaluationID, Topic: "Fracciones", QuestionCount: 1}, nil
}

func (f *fakeEvaluationService) SubmitForEvaluation(_ context.Context, studentID, studentName, evaluationID string, selected map[string]string) (*dto.SubmissionResponse, error) {
	f.gotStudent, f.gotName, f.gotEval, f.gotAnswers = studentID, studentName, evaluationID, selected
	if f.err != nil {
		return nil, f.err
	}
	return &dto.SubmissionResponse{ID: "sub-1", EvaluationID: evaluationID, StudentID: studentID, Score: 5, CorrectAnswersCount: 2, TotalQuestions: 2, Percentage: 100}, nil
}

func (f *fakeEvaluationService) GetSubmission(_ context.Context, submissionID, studentID string) (*dto.SubmissionResponse, error) {
	s, ok := f.submissions[submissionID]
	if !ok || s.StudentID != studentID {
		return nil, fmt.Errorf("submission %s: %w", submissionID, service.ErrNotFound)
	}
	return &s, nil
}

func newRouter(svc service.EvaluationService, p *middleware.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	middleware.RegisterValidators()
	r := gin.New()
	rg := r.Group("/student", func(c *gin.Context) {
		if p != nil {
			middleware.SetPrincipal(c, *p)
		}
	})
	NewEvaluationController(svc).RegisterRoutes(rg)
	return r
}

func do(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var ana = &middleware.Principal{UID: "stu-1", Role: "student", Email: "ana@colegio.edu", Name: "Ana"}

func TestSubmitEvaluation(t *testing.T) {
	svc := &fakeEvaluationService{}
	r := newRouter(svc, ana)

	w := do(r, http.MethodPost, "/student/evaluations/eval-1/submissions", dto.SubmitAttemptRequest{
		SelectedAnswers: map[string]string{"q1": "a1", "q2": "a3"},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	var resp dto.SubmissionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5.0, resp.Score)
	assert.Equal(t, "stu-1", svc.gotStudent)
	assert.Equal(t, "ana@colegio.edu", svc.gotName)
	assert.Equal(t, "eval-1", svc.gotEval)
	assert.Equal(t, "a3", svc.gotAnswers["q2"])
}

func TestSubmitEvaluationErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"already submitted", service.ErrAlreadySubmitted, http.StatusConflict},
		{"window closed", service.ErrEvaluationClosed, http.StatusConflict},
		{"incomplete", fmt.Errorf("%w: unanswered q2", service.ErrIncompleteAttempt), http.StatusBadRequest},
		{"unknown evaluation", fmt.Errorf("evaluation x: %w", service.ErrNotFound), http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRouter(&fakeEvaluationService{err: tc.err}, ana)
			w := do(r, http.MethodPost, "/student/evaluations/eval-1/submissions", dto.SubmitAttemptRequest{
				SelectedAnswers: map[string]string{"q1": "a1"},
			})
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestSubmitEvaluationRequiresBody(t *testing.T) {
	svc := &fakeEvaluationService{}
	r := newRouter(svc, ana)

	w := do(r, http.MethodPost, "/student/evaluations/eval-1/submissions", map[string]any{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.gotEval, "service must not be called")
}

func TestSubmitEvaluationWithoutDisplayName(t *testing.T) {
	svc := &fakeEvaluationService{}
	r := newRouter(svc, &middleware.Principal{UID: "stu-2", Role: "student"})

	w := do(r, http.MethodPost, "/student/evaluations/eval-1/submissions", dto.SubmitAttemptRequest{
		SelectedAnswers: map[string]string{"q1": "a1"},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, svc.gotName)
}

func TestListEvaluations(t *testing.T) {
	svc := &fakeEvaluationService{}
	r := newRouter(svc, ana)

	w := do(r, http.MethodGet, "/student/evaluations", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.StudentDashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Available, 1)
	assert.Equal(t, "stu-1", svc.gotStudent)
}

func TestListEvaluationsWithoutPrincipal(t *testing.T) {
	r := newRouter(&fakeEvaluationService{}, nil)
	w := do(r, http.MethodGet, "/student/evaluations", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetEvaluationClosed(t *testing.T) {
	r := newRouter(&fakeEvaluationService{err: service.ErrEvaluationClosed}, ana)
	w := do(r, http.MethodGet, "/student/evaluations/eval-1", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetSubmissionOwnership(t *testing.T) {
	svc := &fakeEvaluationService{submissions: map[string]dto.SubmissionResponse{
		"sub-1": {ID: "sub-1", StudentID: "stu-1", Score: 3.4},
		"sub-2": {ID: "sub-2", StudentID: "stu-9", Score: 5},
	}}
	r := newRouter(svc, ana)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/student/submissions/sub-1", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/student/submissions/sub-2", nil).Code)
}

func TestMalformedIDsAnswerNotFound(t *testing.T) {
	svc := service.NewEvaluationService(repository.NewEvaluationRepository(nil), repository.NewSubmissionRepository(nil))
	r := newRouter(svc, ana)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/student/submissions/abc", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/student/evaluations/abc", nil).Code)
	w := do(r, http.MethodPost, "/student/evaluations/abc/submissions", dto.SubmitAttemptRequest{
		SelectedAnswers: map[string]string{"q1": "a1"},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
