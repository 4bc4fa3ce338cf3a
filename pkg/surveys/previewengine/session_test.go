package previewengine

import (
	"testing"

	surveyTypes "github.com/repo-sumit/survey-builder-be/pkg/surveys/types"
)

func newTestSession() *Session {
	survey := surveyTypes.Survey{
		SurveyID:         "SB_2026",
		SurveyName:       "School feedback",
		AvailableMediums: surveyTypes.MediumList{"English", "Hindi"},
	}
	questions := []surveyTypes.Question{
		{
			QuestionID:   "Q2",
			QuestionType: surveyTypes.QUESTION_TYPE_TEXT_RESPONSE,
		},
		{
			QuestionID:   "Q1",
			QuestionType: surveyTypes.QUESTION_TYPE_MULTIPLE_CHOICE_SINGLE_SELECT,
			IsMandatory:  surveyTypes.YES,
			Options: []surveyTypes.QuestionOption{
				{Text: "A", Children: "Q1.1"},
				{Text: "B"},
			},
		},
		{
			QuestionID:     "Q1.1",
			QuestionType:   surveyTypes.QUESTION_TYPE_TEXT_RESPONSE,
			SourceQuestion: "Q1",
		},
	}
	return NewSession(survey, questions)
}

func TestSessionInitialState(t *testing.T) {
	session := newTestSession()

	if session.CurrentIndex() != 0 {
		t.Errorf("unexpected index: %d", session.CurrentIndex())
	}
	current, ok := session.CurrentQuestion()
	if !ok || current.QuestionID != "Q1" {
		t.Errorf("expected Q1 first, but got %v", current.QuestionID)
	}
	if ids := visibleIDs(session.VisibleQuestions()); len(ids) != 2 {
		t.Errorf("unexpected visible set: %v", ids)
	}
}

func TestSessionMandatoryGate(t *testing.T) {
	session := newTestSession()

	session.Advance()
	if session.CurrentIndex() != 0 {
		t.Errorf("index should not move, but got %d", session.CurrentIndex())
	}
	if session.ValidationMessage() != MandatoryValidationMessage {
		t.Errorf("expected validation message, but got %q", session.ValidationMessage())
	}

	session.SetAnswer("Q1", 1, nil)
	session.Advance()
	if session.CurrentIndex() != 1 {
		t.Errorf("expected index 1, but got %d", session.CurrentIndex())
	}
	if session.ValidationMessage() != "" {
		t.Errorf("validation message should clear, but got %q", session.ValidationMessage())
	}
}

func TestSessionBranchingUpdatesVisibleSet(t *testing.T) {
	session := newTestSession()

	session.SetAnswer("Q1", 0, nil)
	ids := visibleIDs(session.VisibleQuestions())
	if len(ids) != 3 || ids[1] != "Q1.1" {
		t.Errorf("unexpected visible set after trigger: %v", ids)
	}

	session.SetAnswer("Q1", 1, nil)
	ids = visibleIDs(session.VisibleQuestions())
	if len(ids) != 2 {
		t.Errorf("unexpected visible set after change: %v", ids)
	}
}

func TestSessionIndexResetWhenVisibleSetShrinks(t *testing.T) {
	session := newTestSession()

	session.SetAnswer("Q1", 0, nil)
	if err := session.JumpTo(2); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	// deselect the branching option: Q1.1 disappears, index 2 is out of range
	session.SetAnswer("Q1", 1, nil)
	if session.CurrentIndex() != 0 {
		t.Errorf("expected index reset to 0, but got %d", session.CurrentIndex())
	}
}

func TestSessionCompletion(t *testing.T) {
	session := newTestSession()

	session.SetAnswer("Q1", 1, nil)
	session.Advance()
	session.Advance()

	if !session.Completed() {
		t.Error("session should be complete")
	}
	if _, ok := session.CurrentQuestion(); ok {
		t.Error("no current question expected after completion")
	}

	// jumping back re-opens the session
	if err := session.JumpTo(0); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if session.Completed() {
		t.Error("session should be active again")
	}
}

func TestSessionJumpToOutOfRange(t *testing.T) {
	session := newTestSession()

	if err := session.JumpTo(5); err == nil {
		t.Error("should produce error")
	}
	if err := session.JumpTo(-1); err == nil {
		t.Error("should produce error")
	}
}

func TestSessionLanguageSelection(t *testing.T) {
	session := newTestSession()

	if session.EffectiveLanguage() != "English" {
		t.Errorf("unexpected default language: %s", session.EffectiveLanguage())
	}

	session.SelectLanguage("Hindi")
	if session.EffectiveLanguage() != "Hindi" {
		t.Errorf("unexpected language: %s", session.EffectiveLanguage())
	}

	// unavailable selection falls back to the first configured language
	session.SelectLanguage("Tamil")
	if session.EffectiveLanguage() != "English" {
		t.Errorf("unexpected fallback language: %s", session.EffectiveLanguage())
	}
}

func TestSessionRestart(t *testing.T) {
	session := newTestSession()

	session.SetAnswer("Q1", 0, nil)
	session.Advance()
	session.Restart()

	if session.CurrentIndex() != 0 {
		t.Errorf("unexpected index after restart: %d", session.CurrentIndex())
	}
	if session.IsAnswered("Q1") {
		t.Error("answers should be cleared")
	}
}

func TestSessionExplicitAnsweredFlag(t *testing.T) {
	session := newTestSession()

	answered := true
	session.SetAnswer("Q1", true, &answered)
	if !session.IsAnswered("Q1") {
		t.Error("explicitly answered question should count as answered")
	}
}
