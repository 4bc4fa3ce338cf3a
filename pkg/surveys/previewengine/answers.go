package previewengine

import (
	surveyTypes "github.com/repo-sumit/survey-builder-be/pkg/surveys/types"
)

// AnswerStore holds the per question answer state of one preview session.
// Mutations are synchronous; the next visibility computation sees them
// immediately. No type specific validation happens here.
type AnswerStore struct {
	answers map[string]surveyTypes.Answer
}

func NewAnswerStore() *AnswerStore {
	return &AnswerStore{
		answers: map[string]surveyTypes.Answer{},
	}
}

// SetAnswer records the value for a question. The answered flag is
// optional; when nil it is derived from the value on read.
func (s *AnswerStore) SetAnswer(questionID string, value interface{}, answered *bool) {
	s.answers[questionID] = surveyTypes.Answer{
		Value:    value,
		Answered: answered,
	}
}

func (s *AnswerStore) Answer(questionID string) (surveyTypes.Answer, bool) {
	answer, ok := s.answers[questionID]
	return answer, ok
}

func (s *AnswerStore) IsAnswered(questionID string) bool {
	answer, ok := s.answers[questionID]
	if !ok {
		return false
	}
	return answer.IsAnswered()
}

// All exposes the answer map for visibility computation.
func (s *AnswerStore) All() map[string]surveyTypes.Answer {
	return s.answers
}

// Reset drops all recorded answers.
func (s *AnswerStore) Reset() {
	s.answers = map[string]surveyTypes.Answer{}
}
