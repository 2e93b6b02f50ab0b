package model

// Question is a value object inside an Evaluation. Its ID is generated by
// the authoring client and stays stable across edits.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Answers []Answer `json:"answers"`
}

// CorrectAnswer returns the answer flagged as correct. Validated questions
// have exactly one.
func (q Question) CorrectAnswer() (Answer, bool) {
	for _, a := range q.Answers {
		if a.IsCorrect {
			return a, true
		}
	}
	return Answer{}, false
}

// HasAnswer reports whether answerID is one of the question's options.
func (q Question) HasAnswer(answerID string) bool {
	for _, a := range q.Answers {
		if a.ID == answerID {
			return true
		}
	}
	return false
}
