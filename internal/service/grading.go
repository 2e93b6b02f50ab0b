package service

import (
	"math"

	"github.com/lshigami/classroom-portal/internal/model"
)

const (
	MinScore = 1.0
	MaxScore = 5.0
)

// QuestionOutcome records how one question was answered.
type QuestionOutcome struct {
	QuestionID       string `json:"question_id"`
	SelectedAnswerID string `json:"selected_answer_id"`
	CorrectAnswerID  string `json:"correct_answer_id"`
	Correct          bool   `json:"correct"`
	// Known is false when the selection is not one of the question's options.
	Known bool `json:"known"`
}

type GradeResult struct {
	CorrectCount   int
	TotalQuestions int
	FinalScore     float64
	Outcomes       []QuestionOutcome
}

// Percentage is the share of correct answers in [0, 100].
func (r GradeResult) Percentage() float64 {
	if r.TotalQuestions == 0 {
		return 0
	}
	return float64(r.CorrectCount) / float64(r.TotalQuestions) * 100
}

// UnknownSelections lists the questions whose selection is not one of their
// options.
func (r GradeResult) UnknownSelections() []string {
	var ids []string
	for _, o := range r.Outcomes {
		if !o.Known {
			ids = append(ids, o.QuestionID)
		}
	}
	return ids
}

// Grade compares each selected answer with the question's correct answer and
// maps the ratio linearly onto [1, 5]: 0% gives 1, 100% gives 5. The score is
// not rounded. Callers must check completeness first; a missing or unknown
// selection simply counts as incorrect here.
func Grade(evaluation model.Evaluation, selectedAnswers map[string]string) GradeResult {
	result := GradeResult{
		TotalQuestions: len(evaluation.Questions),
		Outcomes:       make([]QuestionOutcome, 0, len(evaluation.Questions)),
	}
	for _, q := range evaluation.Questions {
		selected := selectedAnswers[q.ID]
		outcome := QuestionOutcome{QuestionID: q.ID, SelectedAnswerID: selected, Known: q.HasAnswer(selected)}
		if correct, ok := q.CorrectAnswer(); ok {
			outcome.CorrectAnswerID = correct.ID
			outcome.Correct = selected != "" && selected == correct.ID
		}
		if outcome.Correct {
			result.CorrectCount++
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}
	result.FinalScore = ConvertToScore(result.CorrectCount, result.TotalQuestions)
	return result
}

// ConvertToScore maps correct/total onto the [1, 5] scale. A zero total
// yields the minimum score.
func ConvertToScore(correct, total int) float64 {
	if total <= 0 {
		return MinScore
	}
	raw := float64(correct)/float64(total)*4 + 1
	return math.Max(MinScore, math.Min(MaxScore, raw))
}
