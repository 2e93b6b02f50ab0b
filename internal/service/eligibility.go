package service

import (
	"time"

	"github.com/lshigami/classroom-portal/internal/model"
)

// AvailableSet partitions evaluations for one student at one instant.
type AvailableSet struct {
	Available   []model.Evaluation
	Unavailable []model.Evaluation
}

// ComputeAvailable keeps the evaluations whose window is open at now and
// that the student has not submitted yet. Window boundaries are excluded.
// Input order is preserved in both partitions.
func ComputeAvailable(evaluations []model.Evaluation, submissions []model.StudentSubmission, now time.Time) AvailableSet {
	submitted := make(map[string]struct{}, len(submissions))
	for _, s := range submissions {
		submitted[s.EvaluationID] = struct{}{}
	}

	set := AvailableSet{
		Available:   []model.Evaluation{},
		Unavailable: []model.Evaluation{},
	}
	for _, e := range evaluations {
		_, done := submitted[e.ID]
		if e.IsOpenAt(now) && !done {
			set.Available = append(set.Available, e)
			continue
		}
		set.Unavailable = append(set.Unavailable, e)
	}
	return set
}
