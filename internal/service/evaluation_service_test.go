package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/lshigami/classroom-portal/internal/dto"
	"github.com/lshigami/classroom-portal/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

var testNow = time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)

func newTestEvaluationService() (*evaluationService, *fakeEvaluationRepo, *fakeSubmissionRepo) {
	evalRepo := newFakeEvaluationRepo()
	subRepo := newFakeSubmissionRepo()
	svc := &evaluationService{
		evaluationRepo: evalRepo,
		submissionRepo: subRepo,
		now:            func() time.Time { return testNow },
	}
	return svc, evalRepo, subRepo
}

func timePtr(t time.Time) *time.Time { return &t }

func validRequest() dto.EvaluationRequest {
	return dto.EvaluationRequest{
		Topic:     "Fractions",
		StartDate: timePtr(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		EndDate:   timePtr(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)),
		Questions: []dto.QuestionDTO{
			{ID: "q1", Text: "1/2 + 1/2?", Answers: []dto.AnswerDTO{
				{ID: "a1", Text: "1", IsCorrect: true},
				{ID: "a2", Text: "2"},
			}},
		},
	}
}

// seedOpen stores an evaluation whose window contains testNow.
func seedOpen(repo *fakeEvaluationRepo, id string, questions int) model.Evaluation {
	e := makeEvaluation(id, questions)
	e.StartDate = testNow.Add(-24 * time.Hour)
	e.EndDate = testNow.Add(24 * time.Hour)
	e.AssignedGroupIDs = datatypes.JSONSlice[string]{}
	repo.evaluations[id] = e
	return e
}

func TestCreateEvaluation_Persists(t *testing.T) {
	svc, repo, _ := newTestEvaluationService()

	resp, err := svc.CreateEvaluation(context.Background(), "teacher-1", validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "teacher-1", resp.TeacherID)
	assert.Empty(t, resp.AssignedGroupIDs)
	assert.NotNil(t, resp.AssignedGroupIDs)
	require.Contains(t, repo.evaluations, resp.ID)
	assert.Equal(t, "Fractions", repo.evaluations[resp.ID].Topic)
}

func TestCreateEvaluation_BackfillsBlankIDs(t *testing.T) {
	svc, _, _ := newTestEvaluationService()
	req := validRequest()
	req.Questions[0].ID = ""
	req.Questions[0].Answers[1].ID = "  "

	resp, err := svc.CreateEvaluation(context.Background(), "teacher-1", req)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Questions[0].ID)
	assert.NotEmpty(t, resp.Questions[0].Answers[1].ID)
	assert.Equal(t, "a1", resp.Questions[0].Answers[0].ID)
}

func TestCreateEvaluation_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *dto.EvaluationRequest)
		field  string
	}{
		{"blank topic", func(r *dto.EvaluationRequest) { r.Topic = "   " }, "topic"},
		{"missing start", func(r *dto.EvaluationRequest) { r.StartDate = nil }, "start_date"},
		{"missing end", func(r *dto.EvaluationRequest) { r.EndDate = nil }, "end_date"},
		{"start equals end", func(r *dto.EvaluationRequest) { r.EndDate = timePtr(*r.StartDate) }, "end_date"},
		{"start after end", func(r *dto.EvaluationRequest) { r.StartDate = timePtr(r.EndDate.Add(time.Hour)) }, "end_date"},
		{"no questions", func(r *dto.EvaluationRequest) { r.Questions = nil }, "questions"},
		{"question without answers", func(r *dto.EvaluationRequest) { r.Questions[0].Answers = nil }, "questions[0].answers"},
		{"no correct answer", func(r *dto.EvaluationRequest) { r.Questions[0].Answers[0].IsCorrect = false }, "questions[0].answers"},
		{"two correct answers", func(r *dto.EvaluationRequest) { r.Questions[0].Answers[1].IsCorrect = true }, "questions[0].answers"},
		{"duplicate answer id", func(r *dto.EvaluationRequest) { r.Questions[0].Answers[1].ID = "a1" }, "questions[0].answers[1].id"},
		{"duplicate question id", func(r *dto.EvaluationRequest) { r.Questions = append(r.Questions, r.Questions[0]) }, "questions[1].id"},
		{"blank question text", func(r *dto.EvaluationRequest) { r.Questions[0].Text = "" }, "questions[0].text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestEvaluationService()
			req := validRequest()
			tt.mutate(&req)

			resp, err := svc.CreateEvaluation(context.Background(), "teacher-1", req)
			assert.Nil(t, resp)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			fields := make([]string, 0, len(verr.Fields))
			for _, f := range verr.Fields {
				fields = append(fields, f.Field)
			}
			assert.Contains(t, fields, tt.field)
			assert.Empty(t, repo.evaluations)
		})
	}
}

func TestCreateEvaluation_StoreFailure(t *testing.T) {
	svc, repo, _ := newTestEvaluationService()
	repo.failWith = errStoreDown

	_, err := svc.CreateEvaluation(context.Background(), "teacher-1", validRequest())
	assert.ErrorIs(t, err, ErrOperationFailed)
}

func TestUpdateEvaluation_KeepsGroupsAndCreatedAt(t *testing.T) {
	svc, repo, _ := newTestEvaluationService()
	created := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	e := seedOpen(repo, "e1", 2)
	e.CreatedAt = created
	e.AssignedGroupIDs = datatypes.JSONSlice[string]{"g1"}
	repo.evaluations["e1"] = e

	req := validRequest()
	req.Topic = "Decimals"
	resp, err := svc.UpdateEvaluation(context.Background(), "e1", "teacher-1", req)
	require.NoError(t, err)
	assert.Equal(t, "Decimals", resp.Topic)
	assert.Equal(t, []string{"g1"}, resp.AssignedGroupIDs)
	assert.Equal(t, created, resp.CreatedAt)
	assert.Len(t, resp.Questions, 1)
}

func TestUpdateEvaluation_OtherTeacherIsNotFound(t *testing.T) {
	svc, repo, _ := newTestEvaluationService()
	seedOpen(repo, "e1", 1)

	_, err := svc.UpdateEvaluation(context.Background(), "e1", "teacher-2", validRequest())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Topic e1", repo.evaluations["e1"].Topic)
}

func TestAssignGroups_Overwrites(t *testing.T) {
	svc, repo, _ := newTestEvaluationService()
	seedOpen(repo, "e1", 1)
	ctx := context.Background()

	_, err := svc.AssignGroups(ctx, "e1", "teacher-1", []string{"g1", "g2"})
	require.NoError(t, err)
	resp, err := svc.AssignGroups(ctx, "e1", "teacher-1", []string{"g3", "g3", "g2"})
	require.NoError(t, err)

	assert.Equal(t, []string{"g3", "g2"}, resp.AssignedGroupIDs)
	assert.Equal(t, []string{"g3", "g2"}, []string(repo.evaluations["e1"].AssignedGroupIDs))
}

func TestAssignGroups_EmptyClears(t *testing.T) {
	svc, repo, _ := newTestEvaluationService()
	seedOpen(repo, "e1", 1)

	_, err := svc.AssignGroups(context.Background(), "e1", "teacher-1", []string{"g1"})
	require.NoError(t, err)
	resp, err := svc.AssignGroups(context.Background(), "e1", "teacher-1", nil)
	require.NoError(t, err)
	assert.Empty(t, resp.AssignedGroupIDs)
}

func TestDeleteEvaluation_LeavesSubmissions(t *testing.T) {
	svc, repo, subs := newTestEvaluationService()
	e := seedOpen(repo, "e1", 1)
	ctx := context.Background()

	_, err := svc.SubmitAttempt(ctx, "s1", "ana@school.test", e, answersWithCorrect(1, 1))
	require.NoError(t, err)
	require.NoError(t, svc.DeleteEvaluation(ctx, "e1", "teacher-1"))

	assert.NotContains(t, repo.evaluations, "e1")
	assert.Equal(t, 1, subs.count())
	assert.ErrorIs(t, svc.DeleteEvaluation(ctx, "e1", "teacher-1"), ErrNotFound)
}

func TestListOwnedByTeacher_NewestFirst(t *testing.T) {
	svc, repo, _ := newTestEvaluationService()
	for i, id := range []string{"old", "new", "mid"} {
		e := seedOpen(repo, id, 1)
		e.CreatedAt = testNow.Add(time.Duration([]int{-3, -1, -2}[i]) * time.Hour)
		repo.evaluations[id] = e
	}
	other := seedOpen(repo, "foreign", 1)
	other.TeacherID = "teacher-2"
	repo.evaluations["foreign"] = other

	list, err := svc.ListOwnedByTeacher(context.Background(), "teacher-1")
	require.NoError(t, err)
	got := make([]string, 0, len(list))
	for _, e := range list {
		got = append(got, e.ID)
	}
	assert.Equal(t, []string{"new", "mid", "old"}, got)
}

func TestSubmitAttempt_IncompleteIsNotStored(t *testing.T) {
	svc, repo, subs := newTestEvaluationService()
	e := seedOpen(repo, "e1", 4)
	answers := answersWithCorrect(4, 4)
	delete(answers, "q4")

	resp, err := svc.SubmitAttempt(context.Background(), "s1", "ana", e, answers)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrIncompleteAttempt)
	assert.Zero(t, subs.count())
}

func TestSubmitAttempt_GradesAndStores(t *testing.T) {
	svc, repo, subs := newTestEvaluationService()
	e := seedOpen(repo, "e1", 4)

	resp, err := svc.SubmitAttempt(context.Background(), "s1", "ana@school.test", e, answersWithCorrect(4, 3))
	require.NoError(t, err)
	assert.Equal(t, 3, resp.CorrectAnswersCount)
	assert.Equal(t, 4, resp.TotalQuestions)
	assert.InDelta(t, 4.0, resp.Score, 1e-9)
	assert.InDelta(t, 75.0, resp.Percentage, 1e-9)
	assert.Equal(t, testNow, resp.SubmittedAt)
	assert.Equal(t, "Topic e1", resp.EvaluationTopic)
	assert.Equal(t, "", resp.GroupID)
	assert.Equal(t, 1, subs.count())
}

func TestSubmitAttempt_AnonymousName(t *testing.T) {
	svc, repo, _ := newTestEvaluationService()
	e := seedOpen(repo, "e1", 1)

	resp, err := svc.SubmitAttempt(context.Background(), "s1", "", e, answersWithCorrect(1, 0))
	require.NoError(t, err)
	assert.Equal(t, AnonymousStudentName, resp.StudentName)
}

func TestSubmitAttempt_SecondAttemptRejected(t *testing.T) {
	svc, repo, subs := newTestEvaluationService()
	e := seedOpen(repo, "e1", 2)
	ctx := context.Background()

	_, err := svc.SubmitAttempt(ctx, "s1", "ana", e, answersWithCorrect(2, 2))
	require.NoError(t, err)
	_, err = svc.SubmitAttempt(ctx, "s1", "ana", e, answersWithCorrect(2, 0))
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.Equal(t, 1, subs.count())

	_, err = svc.SubmitAttempt(ctx, "s2", "ben", e, answersWithCorrect(2, 0))
	assert.NoError(t, err)
}

func TestSubmitForEvaluation_ClosedWindow(t *testing.T) {
	svc, repo, subs := newTestEvaluationService()
	e := seedOpen(repo, "e1", 1)
	e.EndDate = testNow
	repo.evaluations["e1"] = e

	_, err := svc.SubmitForEvaluation(context.Background(), "s1", "ana", "e1", answersWithCorrect(1, 1))
	assert.ErrorIs(t, err, ErrEvaluationClosed)
	assert.Zero(t, subs.count())

	_, err = svc.SubmitForEvaluation(context.Background(), "s1", "ana", "missing", answersWithCorrect(1, 1))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListAvailableForStudent_SubmittedMovesToCompleted(t *testing.T) {
	svc, repo, _ := newTestEvaluationService()
	seedOpen(repo, "e1", 2)
	seedOpen(repo, "e2", 1)
	ctx := context.Background()

	before, err := svc.ListAvailableForStudent(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, before.Available, 2)
	assert.Empty(t, before.Completed)

	_, err = svc.SubmitForEvaluation(ctx, "s1", "ana", "e1", answersWithCorrect(2, 1))
	require.NoError(t, err)

	after, err := svc.ListAvailableForStudent(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, after.Available, 1)
	assert.Equal(t, "e2", after.Available[0].ID)
	require.Len(t, after.Completed, 1)
	assert.Equal(t, "e1", after.Completed[0].EvaluationID)

	other, err := svc.ListAvailableForStudent(ctx, "s2")
	require.NoError(t, err)
	assert.Len(t, other.Available, 2)
}

func TestListAvailableForStudent_CompletedNewestFirst(t *testing.T) {
	svc, _, subs := newTestEvaluationService()
	subs.submissions = []model.StudentSubmission{
		{ID: "old", StudentID: "s1", EvaluationID: "e1", SubmittedAt: testNow.Add(-2 * time.Hour)},
		{ID: "new", StudentID: "s1", EvaluationID: "e2", SubmittedAt: testNow.Add(-time.Hour)},
	}

	resp, err := svc.ListAvailableForStudent(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, resp.Completed, 2)
	assert.Equal(t, "new", resp.Completed[0].ID)
	assert.Equal(t, "old", resp.Completed[1].ID)
}

func TestGetEvaluationForStudent_HidesAnswerKey(t *testing.T) {
	svc, repo, _ := newTestEvaluationService()
	seedOpen(repo, "e1", 3)

	resp, err := svc.GetEvaluationForStudent(context.Background(), "e1", "s1")
	require.NoError(t, err)
	require.Len(t, resp.Questions, 3)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "is_correct")

	dashboard, err := svc.ListAvailableForStudent(context.Background(), "s1")
	require.NoError(t, err)
	raw, err = json.Marshal(dashboard)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "is_correct")
}

func TestGetEvaluationForStudent_AfterSubmission(t *testing.T) {
	svc, repo, _ := newTestEvaluationService()
	e := seedOpen(repo, "e1", 1)
	ctx := context.Background()
	_, err := svc.SubmitAttempt(ctx, "s1", "ana", e, answersWithCorrect(1, 1))
	require.NoError(t, err)

	_, err = svc.GetEvaluationForStudent(ctx, "e1", "s1")
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
}

func TestGetSubmission_OnlyOwner(t *testing.T) {
	svc, repo, _ := newTestEvaluationService()
	e := seedOpen(repo, "e1", 1)
	ctx := context.Background()
	sub, err := svc.SubmitAttempt(ctx, "s1", "ana", e, answersWithCorrect(1, 1))
	require.NoError(t, err)

	got, err := svc.GetSubmission(ctx, sub.ID, "s1")
	require.NoError(t, err)
	assert.Equal(t, 5.0, got.Score)

	_, err = svc.GetSubmission(ctx, sub.ID, "s2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListSubmissionsForEvaluation_ScoreThenName(t *testing.T) {
	svc, repo, _ := newTestEvaluationService()
	e := seedOpen(repo, "e1", 2)
	ctx := context.Background()
	for _, s := range []struct {
		id, name string
		correct  int
	}{{"s1", "Carla", 1}, {"s2", "Ana", 2}, {"s3", "Bruno", 1}} {
		_, err := svc.SubmitAttempt(ctx, s.id, s.name, e, answersWithCorrect(2, s.correct))
		require.NoError(t, err)
	}

	list, err := svc.ListSubmissionsForEvaluation(ctx, "e1", "teacher-1")
	require.NoError(t, err)
	names := []string{}
	for _, s := range list {
		names = append(names, s.StudentName)
	}
	assert.Equal(t, []string{"Ana", "Bruno", "Carla"}, names)

	_, err = svc.ListSubmissionsForEvaluation(ctx, "e1", "teacher-2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestToEvaluationResponse_CopiesJSONColumns(t *testing.T) {
	e := makeEvaluation("e1", 2)
	e.AssignedGroupIDs = datatypes.JSONSlice[string]{"g1", "g2"}
	e.StartDate = testNow.Add(-time.Hour)

	resp, err := toEvaluationResponse(e)
	require.NoError(t, err)
	assert.Equal(t, "e1", resp.ID)
	assert.Equal(t, "teacher-1", resp.TeacherID)
	assert.Equal(t, e.StartDate, resp.StartDate)
	assert.Equal(t, []string{"g1", "g2"}, resp.AssignedGroupIDs)
	require.Len(t, resp.Questions, 2)
	assert.Equal(t, "q2", resp.Questions[1].ID)
	require.Len(t, resp.Questions[1].Answers, 2)
	assert.Equal(t, dto.AnswerDTO{ID: "q2-a", Text: "right", IsCorrect: true}, resp.Questions[1].Answers[0])

	empty, err := toEvaluationResponse(model.Evaluation{ID: "e2"})
	require.NoError(t, err)
	assert.NotNil(t, empty.AssignedGroupIDs)
}

func TestToSubmissionResponse_CopiesAnswersAndPercentage(t *testing.T) {
	sub := model.StudentSubmission{
		ID:                  "s1",
		StudentID:           "student-1",
		StudentName:         "Ana",
		EvaluationID:        "e1",
		EvaluationTopic:     "Fracciones",
		SelectedAnswers:     datatypes.NewJSONType(map[string]string{"q1": "q1-a", "q2": "q2-b"}),
		Score:               3,
		CorrectAnswersCount: 1,
		TotalQuestions:      2,
		SubmittedAt:         testNow,
	}

	resp, err := toSubmissionResponse(sub)
	require.NoError(t, err)
	assert.Equal(t, "Fracciones", resp.EvaluationTopic)
	assert.Equal(t, map[string]string{"q1": "q1-a", "q2": "q2-b"}, resp.SelectedAnswers)
	assert.Equal(t, 3.0, resp.Score)
	assert.Equal(t, 1, resp.CorrectAnswersCount)
	assert.InDelta(t, 50.0, resp.Percentage, 1e-9)
	assert.Equal(t, testNow, resp.SubmittedAt)

	none, err := toSubmissionResponse(model.StudentSubmission{ID: "s2"})
	require.NoError(t, err)
	assert.NotNil(t, none.SelectedAnswers)
}
