package previewengine

import (
	"fmt"

	surveyTypes "github.com/repo-sumit/survey-builder-be/pkg/surveys/types"
)

// MandatoryValidationMessage is shown when advancing past an unanswered
// mandatory question.
const MandatoryValidationMessage = "Please answer this question before continuing."

// Session drives one in-memory preview of a survey: ordered traversal of
// the visible questions, one question at a time, with mandatory field
// gating before advancing. Each session is an independent instance; a new
// survey means a new session. Sessions are not safe for concurrent use.
type Session struct {
	survey             surveyTypes.Survey
	questions          []surveyTypes.Question
	answers            *AnswerStore
	availableLanguages []string
	selectedLanguage   string

	currentIndex      int
	validationMessage string
	completed         bool
}

// NewSession sorts the question list into display order and starts at the
// first visible question with an empty answer set.
func NewSession(survey surveyTypes.Survey, questions []surveyTypes.Question) *Session {
	sorted := make([]surveyTypes.Question, len(questions))
	copy(sorted, questions)
	surveyTypes.SortQuestionsByID(sorted)

	languages := survey.AvailableMediums.Languages()

	return &Session{
		survey:             survey,
		questions:          sorted,
		answers:            NewAnswerStore(),
		availableLanguages: languages,
		selectedLanguage:   languages[0],
	}
}

func (s *Session) Survey() surveyTypes.Survey {
	return s.survey
}

func (s *Session) AvailableLanguages() []string {
	return s.availableLanguages
}

// EffectiveLanguage is the selected language when it is available,
// otherwise the first configured one.
func (s *Session) EffectiveLanguage() string {
	for _, lang := range s.availableLanguages {
		if lang == s.selectedLanguage {
			return s.selectedLanguage
		}
	}
	return s.availableLanguages[0]
}

// SelectLanguage switches the preview language. Unknown selections are
// kept but resolved to the first available language until they become
// available.
func (s *Session) SelectLanguage(language string) {
	s.selectedLanguage = language
	s.clampIndex()
}

// VisibleQuestions recomputes the visible subset from the current answers.
func (s *Session) VisibleQuestions() []surveyTypes.Question {
	return VisibleQuestions(s.questions, s.answers.All(), s.EffectiveLanguage())
}

// CurrentQuestion returns the question at the current index, or false when
// nothing is visible or the session is complete.
func (s *Session) CurrentQuestion() (surveyTypes.Question, bool) {
	if s.completed {
		return surveyTypes.Question{}, false
	}
	visible := s.VisibleQuestions()
	if s.currentIndex < 0 || s.currentIndex >= len(visible) {
		return surveyTypes.Question{}, false
	}
	return visible[s.currentIndex], true
}

func (s *Session) CurrentIndex() int {
	return s.currentIndex
}

func (s *Session) ValidationMessage() string {
	return s.validationMessage
}

func (s *Session) Completed() bool {
	return s.completed
}

// SetAnswer records an answer and synchronously recomputes visibility.
// When the change shrinks the visible set below the current index, the
// session resets to the first question.
func (s *Session) SetAnswer(questionID string, value interface{}, answered *bool) {
	s.answers.SetAnswer(questionID, value, answered)
	s.clampIndex()
}

func (s *Session) IsAnswered(questionID string) bool {
	return s.answers.IsAnswered(questionID)
}

func (s *Session) Answer(questionID string) (surveyTypes.Answer, bool) {
	return s.answers.Answer(questionID)
}

// Advance moves to the next visible question. On an unanswered mandatory
// question it stays put and surfaces a validation message instead; past
// the last question the session completes.
func (s *Session) Advance() {
	visible := s.VisibleQuestions()
	if s.currentIndex >= len(visible) {
		return
	}

	current := visible[s.currentIndex]
	if current.Mandatory() && !s.answers.IsAnswered(current.QuestionID) {
		s.validationMessage = MandatoryValidationMessage
		return
	}
	s.validationMessage = ""

	if s.currentIndex+1 < len(visible) {
		s.currentIndex += 1
		return
	}
	s.completed = true
}

// JumpTo moves to any visible question by index, clearing a pending
// validation message. Used by the question index navigator.
func (s *Session) JumpTo(index int) error {
	visible := s.VisibleQuestions()
	if index < 0 || index >= len(visible) {
		return fmt.Errorf("question index %d out of range", index)
	}
	s.currentIndex = index
	s.validationMessage = ""
	s.completed = false
	return nil
}

// Restart clears answers, index and validation state.
func (s *Session) Restart() {
	s.answers.Reset()
	s.currentIndex = 0
	s.validationMessage = ""
	s.completed = false
}

// clampIndex resets to the first question when the current index fell out
// of the (non-empty) visible range.
func (s *Session) clampIndex() {
	visibleCount := len(s.VisibleQuestions())
	if s.currentIndex >= visibleCount && visibleCount > 0 {
		s.currentIndex = 0
	}
}
