package dto

import "time"

// --- Authoring (teacher) ---

type AnswerDTO struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

type QuestionDTO struct {
	ID      string      `json:"id"`
	Text    string      `json:"text"`
	Answers []AnswerDTO `json:"answers"`
}

// EvaluationRequest is the body of create and update. Field rules are
// checked by the service so every failure is reported per field.
type EvaluationRequest struct {
	Topic     string        `json:"topic"`
	StartDate *time.Time    `json:"start_date"`
	EndDate   *time.Time    `json:"end_date"`
	Questions []QuestionDTO `json:"questions"`
}

type AssignGroupsRequest struct {
	GroupIDs []string `json:"group_ids"`
}

// EvaluationResponse is the teacher view and includes the answer key.
type EvaluationResponse struct {
	ID               string        `json:"id"`
	TeacherID        string        `json:"teacher_id"`
	Topic            string        `json:"topic"`
	StartDate        time.Time     `json:"start_date"`
	EndDate          time.Time     `json:"end_date"`
	Questions        []QuestionDTO `json:"questions"`
	AssignedGroupIDs []string      `json:"assigned_group_ids"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// --- Student views ---

type StudentAnswerDTO struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type StudentQuestionDTO struct {
	ID      string             `json:"id"`
	Text    string             `json:"text"`
	Answers []StudentAnswerDTO `json:"answers"`
}

// StudentEvaluationResponse never carries which answer is correct.
type StudentEvaluationResponse struct {
	ID            string               `json:"id"`
	Topic         string               `json:"topic"`
	StartDate     time.Time            `json:"start_date"`
	EndDate       time.Time            `json:"end_date"`
	QuestionCount int                  `json:"question_count"`
	Questions     []StudentQuestionDTO `json:"questions,omitempty"`
}

type SubmitAttemptRequest struct {
	SelectedAnswers map[string]string `json:"selected_answers" binding:"required"`
}

type SubmissionResponse struct {
	ID                  string            `json:"id"`
	StudentID           string            `json:"student_id"`
	StudentName         string            `json:"student_name"`
	EvaluationID        string            `json:"evaluation_id"`
	EvaluationTopic     string            `json:"evaluation_topic"`
	GroupID             string            `json:"group_id"`
	SelectedAnswers     map[string]string `json:"selected_answers"`
	Score               float64           `json:"score"`
	CorrectAnswersCount int               `json:"correct_answers_count"`
	TotalQuestions      int               `json:"total_questions"`
	Percentage          float64           `json:"percentage"`
	SubmittedAt         time.Time         `json:"submitted_at"`
}

// StudentDashboardResponse splits what a student can attempt now from their
// submission history.
type StudentDashboardResponse struct {
	Available []StudentEvaluationResponse `json:"available"`
	Completed []SubmissionResponse        `json:"completed"`
}
