package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/classroom-portal/internal/dto"
	"github.com/lshigami/classroom-portal/internal/metrics"
	"github.com/lshigami/classroom-portal/internal/model"
	"github.com/lshigami/classroom-portal/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// AnonymousStudentName is stored when the student has no display name.
const AnonymousStudentName = "Estudiante Anónimo"

// EvaluationService covers authoring, group assignment, attempts and result
// retrieval. It is the only evaluation component that talks to storage.
type EvaluationService interface {
	CreateEvaluation(ctx context.Context, teacherID string, req dto.EvaluationRequest) (*dto.EvaluationResponse, error)
	UpdateEvaluation(ctx context.Context, evaluationID, teacherID string, req dto.EvaluationRequest) (*dto.EvaluationResponse, error)
	AssignGroups(ctx context.Context, evaluationID, teacherID string, groupIDs []string) (*dto.EvaluationResponse, error)
	DeleteEvaluation(ctx context.Context, evaluationID, teacherID string) error
	GetEvaluationForTeacher(ctx context.Context, evaluationID, teacherID string) (*dto.EvaluationResponse, error)
	ListOwnedByTeacher(ctx context.Context, teacherID string) ([]dto.EvaluationResponse, error)
	ListSubmissionsForEvaluation(ctx context.Context, evaluationID, teacherID string) ([]dto.SubmissionResponse, error)

	ListAvailableForStudent(ctx context.Context, studentID string) (*dto.StudentDashboardResponse, error)
	GetEvaluationForStudent(ctx context.Context, evaluationID, studentID string) (*dto.StudentEvaluationResponse, error)
	SubmitForEvaluation(ctx context.Context, studentID, studentName, evaluationID string, selectedAnswers map[string]string) (*dto.SubmissionResponse, error)
	SubmitAttempt(ctx context.Context, studentID, studentName string, evaluation model.Evaluation, selectedAnswers map[string]string) (*dto.SubmissionResponse, error)
	GetSubmission(ctx context.Context, submissionID, studentID string) (*dto.SubmissionResponse, error)
}

type evaluationService struct {
	evaluationRepo repository.EvaluationRepository
	submissionRepo repository.SubmissionRepository
	now            func() time.Time
}

func NewEvaluationService(evaluationRepo repository.EvaluationRepository, submissionRepo repository.SubmissionRepository) EvaluationService {
	return &evaluationService{
		evaluationRepo: evaluationRepo,
		submissionRepo: submissionRepo,
		now:            time.Now,
	}
}

func (s *evaluationService) CreateEvaluation(ctx context.Context, teacherID string, req dto.EvaluationRequest) (*dto.EvaluationResponse, error) {
	questions, err := validateEvaluationRequest(req)
	if err != nil {
		log.Warn().Err(err).Str("teacherID", teacherID).Msg("CreateEvaluation: validation failed")
		return nil, err
	}

	evaluation := model.Evaluation{
		TeacherID:        teacherID,
		Topic:            strings.TrimSpace(req.Topic),
		StartDate:        req.StartDate.UTC(),
		EndDate:          req.EndDate.UTC(),
		Questions:        questions,
		AssignedGroupIDs: datatypes.JSONSlice[string]{},
	}
	if err := s.evaluationRepo.Create(ctx, &evaluation); err != nil {
		return nil, storeError(err, "create evaluation", teacherID)
	}

	log.Info().Str("evaluationID", evaluation.ID).Str("teacherID", teacherID).Int("questions", len(questions)).Msg("Evaluation created")
	return toEvaluationResponse(evaluation)
}

// UpdateEvaluation rewrites topic, dates and questions. Group assignment and
// createdAt keep their stored values.
func (s *evaluationService) UpdateEvaluation(ctx context.Context, evaluationID, teacherID string, req dto.EvaluationRequest) (*dto.EvaluationResponse, error) {
	questions, err := validateEvaluationRequest(req)
	if err != nil {
		log.Warn().Err(err).Str("evaluationID", evaluationID).Msg("UpdateEvaluation: validation failed")
		return nil, err
	}

	update := model.Evaluation{
		ID:        evaluationID,
		TeacherID: teacherID,
		Topic:     strings.TrimSpace(req.Topic),
		StartDate: req.StartDate.UTC(),
		EndDate:   req.EndDate.UTC(),
		Questions: questions,
		UpdatedAt: s.now().UTC(),
	}
	if err := s.evaluationRepo.UpdateContent(ctx, &update); err != nil {
		return nil, storeError(err, "update evaluation", evaluationID)
	}
	return s.GetEvaluationForTeacher(ctx, evaluationID, teacherID)
}

// AssignGroups replaces the assigned groups wholesale. Repeated ids keep
// their first position.
func (s *evaluationService) AssignGroups(ctx context.Context, evaluationID, teacherID string, groupIDs []string) (*dto.EvaluationResponse, error) {
	seen := make(map[string]struct{}, len(groupIDs))
	ids := make([]string, 0, len(groupIDs))
	for _, id := range groupIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	if err := s.evaluationRepo.UpdateAssignedGroups(ctx, evaluationID, teacherID, ids); err != nil {
		return nil, storeError(err, "assign groups", evaluationID)
	}
	log.Info().Str("evaluationID", evaluationID).Strs("groupIDs", ids).Msg("Evaluation groups assigned")
	return s.GetEvaluationForTeacher(ctx, evaluationID, teacherID)
}

// DeleteEvaluation removes the evaluation. Existing submissions stay and keep
// pointing at the deleted id.
func (s *evaluationService) DeleteEvaluation(ctx context.Context, evaluationID, teacherID string) error {
	if err := s.evaluationRepo.Delete(ctx, evaluationID, teacherID); err != nil {
		return storeError(err, "delete evaluation", evaluationID)
	}
	log.Info().Str("evaluationID", evaluationID).Str("teacherID", teacherID).Msg("Evaluation deleted")
	return nil
}

func (s *evaluationService) GetEvaluationForTeacher(ctx context.Context, evaluationID, teacherID string) (*dto.EvaluationResponse, error) {
	evaluation, err := s.evaluationRepo.FindByID(ctx, evaluationID)
	if err != nil {
		return nil, storeError(err, "get evaluation", evaluationID)
	}
	if evaluation.TeacherID != teacherID {
		return nil, ErrNotFound
	}
	return toEvaluationResponse(*evaluation)
}

func (s *evaluationService) ListOwnedByTeacher(ctx context.Context, teacherID string) ([]dto.EvaluationResponse, error) {
	evaluations, err := s.evaluationRepo.FindByTeacher(ctx, teacherID)
	if err != nil {
		return nil, storeError(err, "list teacher evaluations", teacherID)
	}
	sort.SliceStable(evaluations, func(i, j int) bool {
		return evaluations[i].CreatedAt.After(evaluations[j].CreatedAt)
	})

	out := make([]dto.EvaluationResponse, 0, len(evaluations))
	for _, e := range evaluations {
		item, err := toEvaluationResponse(e)
		if err != nil {
			return nil, err
		}
		out = append(out, *item)
	}
	return out, nil
}

// ListSubmissionsForEvaluation is the teacher's results table: best score
// first, ties by student name.
func (s *evaluationService) ListSubmissionsForEvaluation(ctx context.Context, evaluationID, teacherID string) ([]dto.SubmissionResponse, error) {
	if _, err := s.GetEvaluationForTeacher(ctx, evaluationID, teacherID); err != nil {
		return nil, err
	}
	submissions, err := s.submissionRepo.FindByEvaluation(ctx, evaluationID)
	if err != nil {
		return nil, storeError(err, "list evaluation submissions", evaluationID)
	}
	sort.SliceStable(submissions, func(i, j int) bool {
		if submissions[i].Score != submissions[j].Score {
			return submissions[i].Score > submissions[j].Score
		}
		return submissions[i].StudentName < submissions[j].StudentName
	})

	out := make([]dto.SubmissionResponse, 0, len(submissions))
	for _, sub := range submissions {
		item, err := toSubmissionResponse(sub)
		if err != nil {
			return nil, err
		}
		out = append(out, *item)
	}
	return out, nil
}

func (s *evaluationService) ListAvailableForStudent(ctx context.Context, studentID string) (*dto.StudentDashboardResponse, error) {
	evaluations, err := s.evaluationRepo.FindAll(ctx)
	if err != nil {
		return nil, storeError(err, "list evaluations", studentID)
	}
	submissions, err := s.submissionRepo.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, storeError(err, "list student submissions", studentID)
	}

	set := ComputeAvailable(evaluations, submissions, s.now())

	sort.SliceStable(submissions, func(i, j int) bool {
		return submissions[i].SubmittedAt.After(submissions[j].SubmittedAt)
	})

	resp := &dto.StudentDashboardResponse{
		Available: make([]dto.StudentEvaluationResponse, 0, len(set.Available)),
		Completed: make([]dto.SubmissionResponse, 0, len(submissions)),
	}
	for _, e := range set.Available {
		summary := toStudentEvaluationResponse(e)
		summary.Questions = nil
		resp.Available = append(resp.Available, summary)
	}
	for _, sub := range submissions {
		item, err := toSubmissionResponse(sub)
		if err != nil {
			return nil, err
		}
		resp.Completed = append(resp.Completed, *item)
	}
	return resp, nil
}

// GetEvaluationForStudent returns the evaluation without its answer key, and
// only while the student can still attempt it.
func (s *evaluationService) GetEvaluationForStudent(ctx context.Context, evaluationID, studentID string) (*dto.StudentEvaluationResponse, error) {
	evaluation, err := s.evaluationRepo.FindByID(ctx, evaluationID)
	if err != nil {
		return nil, storeError(err, "get evaluation", evaluationID)
	}
	submissions, err := s.submissionRepo.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, storeError(err, "list student submissions", studentID)
	}
	for _, sub := range submissions {
		if sub.EvaluationID == evaluationID {
			return nil, ErrAlreadySubmitted
		}
	}
	if !evaluation.IsOpenAt(s.now()) {
		return nil, ErrEvaluationClosed
	}
	resp := toStudentEvaluationResponse(*evaluation)
	return &resp, nil
}

func (s *evaluationService) SubmitForEvaluation(ctx context.Context, studentID, studentName, evaluationID string, selectedAnswers map[string]string) (*dto.SubmissionResponse, error) {
	evaluation, err := s.evaluationRepo.FindByID(ctx, evaluationID)
	if err != nil {
		return nil, storeError(err, "get evaluation", evaluationID)
	}
	if !evaluation.IsOpenAt(s.now()) {
		metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeClosed).Inc()
		log.Warn().Str("evaluationID", evaluationID).Str("studentID", studentID).Msg("SubmitForEvaluation: window is not open")
		return nil, ErrEvaluationClosed
	}
	return s.SubmitAttempt(ctx, studentID, studentName, *evaluation, selectedAnswers)
}

// SubmitAttempt grades a complete attempt and stores it once per
// (student, evaluation) pair. Incomplete attempts are never stored.
func (s *evaluationService) SubmitAttempt(ctx context.Context, studentID, studentName string, evaluation model.Evaluation, selectedAnswers map[string]string) (*dto.SubmissionResponse, error) {
	if missing := missingQuestionIDs(evaluation, selectedAnswers); len(missing) > 0 {
		metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeIncomplete).Inc()
		log.Warn().Str("evaluationID", evaluation.ID).Strs("missing", missing).Msg("SubmitAttempt: incomplete attempt")
		return nil, fmt.Errorf("%w: %d of %d questions unanswered", ErrIncompleteAttempt, len(missing), len(evaluation.Questions))
	}

	result := Grade(evaluation, selectedAnswers)
	if unknown := result.UnknownSelections(); len(unknown) > 0 {
		log.Warn().Str("evaluationID", evaluation.ID).Strs("questionIDs", unknown).Msg("SubmitAttempt: selections outside the options graded as incorrect")
	}

	if strings.TrimSpace(studentName) == "" {
		studentName = AnonymousStudentName
	}
	answers := make(map[string]string, len(evaluation.Questions))
	for _, id := range evaluation.QuestionIDs() {
		answers[id] = selectedAnswers[id]
	}
	submission := model.StudentSubmission{
		StudentID:           studentID,
		StudentName:         studentName,
		EvaluationID:        evaluation.ID,
		EvaluationTopic:     evaluation.Topic,
		SelectedAnswers:     datatypes.NewJSONType(answers),
		Score:               result.FinalScore,
		CorrectAnswersCount: result.CorrectCount,
		TotalQuestions:      result.TotalQuestions,
		SubmittedAt:         s.now().UTC(),
	}
	if err := s.submissionRepo.Create(ctx, &submission); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeDuplicate).Inc()
			log.Warn().Str("evaluationID", evaluation.ID).Str("studentID", studentID).Msg("SubmitAttempt: duplicate submission rejected")
			return nil, ErrAlreadySubmitted
		}
		return nil, storeError(err, "store submission", evaluation.ID)
	}

	metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeAccepted).Inc()
	metrics.SubmissionScore.Observe(result.FinalScore)
	log.Info().
		Str("submissionID", submission.ID).
		Str("evaluationID", evaluation.ID).
		Str("studentID", studentID).
		Int("correct", result.CorrectCount).
		Int("total", result.TotalQuestions).
		Float64("score", result.FinalScore).
		Msg("Submission graded")

	return toSubmissionResponse(submission)
}

// GetSubmission returns a submission only to the student who made it.
func (s *evaluationService) GetSubmission(ctx context.Context, submissionID, studentID string) (*dto.SubmissionResponse, error) {
	submission, err := s.submissionRepo.FindByID(ctx, submissionID)
	if err != nil {
		return nil, storeError(err, "get submission", submissionID)
	}
	if submission.StudentID != studentID {
		return nil, ErrNotFound
	}
	return toSubmissionResponse(*submission)
}

func missingQuestionIDs(evaluation model.Evaluation, selectedAnswers map[string]string) []string {
	var missing []string
	for _, id := range evaluation.QuestionIDs() {
		if strings.TrimSpace(selectedAnswers[id]) == "" {
			missing = append(missing, id)
		}
	}
	return missing
}

// validateEvaluationRequest checks every field and returns the questions to
// store, with blank ids replaced by fresh UUIDs.
func validateEvaluationRequest(req dto.EvaluationRequest) ([]model.Question, error) {
	verr := &ValidationError{}

	if strings.TrimSpace(req.Topic) == "" {
		verr.add("topic", "must not be blank")
	}
	if req.StartDate == nil {
		verr.add("start_date", "is required")
	}
	if req.EndDate == nil {
		verr.add("end_date", "is required")
	}
	if req.StartDate != nil && req.EndDate != nil && !req.StartDate.Before(*req.EndDate) {
		verr.add("end_date", "must be after start_date")
	}
	if len(req.Questions) == 0 {
		verr.add("questions", "at least one question is required")
	}

	questions := make([]model.Question, 0, len(req.Questions))
	questionIDs := make(map[string]struct{}, len(req.Questions))
	for i, q := range req.Questions {
		field := fmt.Sprintf("questions[%d]", i)
		question := model.Question{ID: strings.TrimSpace(q.ID), Text: strings.TrimSpace(q.Text)}
		if question.ID == "" {
			question.ID = uuid.NewString()
		}
		if _, dup := questionIDs[question.ID]; dup {
			verr.add(field+".id", "duplicate question id")
		}
		questionIDs[question.ID] = struct{}{}
		if question.Text == "" {
			verr.add(field+".text", "must not be blank")
		}
		if len(q.Answers) == 0 {
			verr.add(field+".answers", "at least one answer is required")
		}

		correct := 0
		answerIDs := make(map[string]struct{}, len(q.Answers))
		for j, a := range q.Answers {
			answerField := fmt.Sprintf("%s.answers[%d]", field, j)
			answer := model.Answer{ID: strings.TrimSpace(a.ID), Text: strings.TrimSpace(a.Text), IsCorrect: a.IsCorrect}
			if answer.ID == "" {
				answer.ID = uuid.NewString()
			}
			if _, dup := answerIDs[answer.ID]; dup {
				verr.add(answerField+".id", "duplicate answer id")
			}
			answerIDs[answer.ID] = struct{}{}
			if answer.Text == "" {
				verr.add(answerField+".text", "must not be blank")
			}
			if answer.IsCorrect {
				correct++
			}
			question.Answers = append(question.Answers, answer)
		}
		if len(q.Answers) > 0 && correct != 1 {
			verr.add(field+".answers", "exactly one answer must be marked correct")
		}
		questions = append(questions, question)
	}

	if err := verr.orNil(); err != nil {
		return nil, err
	}
	return questions, nil
}

// storeError logs a repository failure and converts it into a service error.
// Not-found stays distinguishable; everything else becomes ErrOperationFailed.
func storeError(err error, op, id string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return ErrDuplicate
	}
	log.Error().Err(err).Str("id", id).Msgf("%s failed", op)
	return fmt.Errorf("%s: %w", op, ErrOperationFailed)
}

// jsonColumnConverters let copier read the datatypes wrappers, which it
// would otherwise skip without error.
var jsonColumnConverters = copier.Option{Converters: []copier.TypeConverter{
	{
		SrcType: datatypes.JSONSlice[model.Question]{},
		DstType: []dto.QuestionDTO{},
		Fn: func(src interface{}) (interface{}, error) {
			questions := make([]dto.QuestionDTO, 0)
			err := copier.Copy(&questions, []model.Question(src.(datatypes.JSONSlice[model.Question])))
			return questions, err
		},
	},
	{
		SrcType: datatypes.JSONType[map[string]string]{},
		DstType: map[string]string{},
		Fn: func(src interface{}) (interface{}, error) {
			answers := src.(datatypes.JSONType[map[string]string]).Data()
			if answers == nil {
				answers = map[string]string{}
			}
			return answers, nil
		},
	},
}}

// toEvaluationResponse is the teacher view, answer key included.
func toEvaluationResponse(e model.Evaluation) (*dto.EvaluationResponse, error) {
	var resp dto.EvaluationResponse
	if err := copier.CopyWithOption(&resp, &e, jsonColumnConverters); err != nil {
		return nil, fmt.Errorf("map evaluation %s: %w", e.ID, err)
	}
	if resp.AssignedGroupIDs == nil {
		resp.AssignedGroupIDs = []string{}
	}
	return &resp, nil
}

func toStudentEvaluationResponse(e model.Evaluation) dto.StudentEvaluationResponse {
	resp := dto.StudentEvaluationResponse{
		ID:            e.ID,
		Topic:         e.Topic,
		StartDate:     e.StartDate,
		EndDate:       e.EndDate,
		QuestionCount: len(e.Questions),
		Questions:     make([]dto.StudentQuestionDTO, 0, len(e.Questions)),
	}
	for _, q := range e.Questions {
		question := dto.StudentQuestionDTO{ID: q.ID, Text: q.Text, Answers: make([]dto.StudentAnswerDTO, 0, len(q.Answers))}
		for _, a := range q.Answers {
			question.Answers = append(question.Answers, dto.StudentAnswerDTO{ID: a.ID, Text: a.Text})
		}
		resp.Questions = append(resp.Questions, question)
	}
	return resp
}

func toSubmissionResponse(s model.StudentSubmission) (*dto.SubmissionResponse, error) {
	var resp dto.SubmissionResponse
	if err := copier.CopyWithOption(&resp, &s, jsonColumnConverters); err != nil {
		return nil, fmt.Errorf("map submission %s: %w", s.ID, err)
	}
	if resp.SelectedAnswers == nil {
		resp.SelectedAnswers = map[string]string{}
	}
	resp.Percentage = GradeResult{CorrectCount: s.CorrectAnswersCount, TotalQuestions: s.TotalQuestions}.Percentage()
	return &resp, nil
}
