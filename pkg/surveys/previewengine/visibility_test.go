package previewengine

import (
	"testing"

	surveyTypes "github.com/repo-sumit/survey-builder-be/pkg/surveys/types"
)

func branchingQuestions() []surveyTypes.Question {
	return []surveyTypes.Question{
		{
			QuestionID:   "Q1",
			QuestionType: surveyTypes.QUESTION_TYPE_MULTIPLE_CHOICE_SINGLE_SELECT,
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
		{
			QuestionID:   "Q2",
			QuestionType: surveyTypes.QUESTION_TYPE_TEXT_RESPONSE,
		},
	}
}

func visibleIDs(questions []surveyTypes.Question) []string {
	ids := make([]string, len(questions))
	for i, q := range questions {
		ids[i] = q.QuestionID
	}
	return ids
}

func TestVisibleQuestions(t *testing.T) {
	questions := branchingQuestions()

	t.Run("roots always visible, child hidden without answer", func(t *testing.T) {
		visible := VisibleQuestions(questions, map[string]surveyTypes.Answer{}, "English")
		if ids := visibleIDs(visible); len(ids) != 2 || ids[0] != "Q1" || ids[1] != "Q2" {
			t.Errorf("unexpected visible set: %v", ids)
		}
	})

	t.Run("child appears when triggering option selected", func(t *testing.T) {
		answers := map[string]surveyTypes.Answer{
			"Q1": {Value: 0},
		}
		visible := VisibleQuestions(questions, answers, "English")
		if ids := visibleIDs(visible); len(ids) != 3 || ids[1] != "Q1.1" {
			t.Errorf("unexpected visible set: %v", ids)
		}
	})

	t.Run("child disappears when answer changes", func(t *testing.T) {
		answers := map[string]surveyTypes.Answer{
			"Q1": {Value: 1},
		}
		visible := VisibleQuestions(questions, answers, "English")
		if ids := visibleIDs(visible); len(ids) != 2 {
			t.Errorf("unexpected visible set: %v", ids)
		}
	})

	t.Run("multi select triggers on any selected option", func(t *testing.T) {
		answers := map[string]surveyTypes.Answer{
			"Q1": {Value: []interface{}{float64(1), float64(0)}},
		}
		visible := VisibleQuestions(questions, answers, "English")
		if ids := visibleIDs(visible); len(ids) != 3 {
			t.Errorf("unexpected visible set: %v", ids)
		}
	})

	t.Run("out of range option index is ignored", func(t *testing.T) {
		answers := map[string]surveyTypes.Answer{
			"Q1": {Value: 7},
		}
		visible := VisibleQuestions(questions, answers, "English")
		if ids := visibleIDs(visible); len(ids) != 2 {
			t.Errorf("unexpected visible set: %v", ids)
		}
	})

	t.Run("missing parent is never visible", func(t *testing.T) {
		orphaned := []surveyTypes.Question{
			{QuestionID: "Q3.1", SourceQuestion: "Q3"},
		}
		visible := VisibleQuestions(orphaned, map[string]surveyTypes.Answer{
			"Q3": {Value: 0},
		}, "English")
		if len(visible) != 0 {
			t.Errorf("expected empty visible set, but got %v", visibleIDs(visible))
		}
	})

	t.Run("cyclic references do not loop", func(t *testing.T) {
		cyclic := []surveyTypes.Question{
			{QuestionID: "Q1", SourceQuestion: "Q2", Options: []surveyTypes.QuestionOption{{Text: "A", Children: "Q2"}}},
			{QuestionID: "Q2", SourceQuestion: "Q1", Options: []surveyTypes.QuestionOption{{Text: "A", Children: "Q1"}}},
		}
		answers := map[string]surveyTypes.Answer{
			"Q1": {Value: 0},
			"Q2": {Value: 0},
		}
		visible := VisibleQuestions(cyclic, answers, "English")
		// single pass: both are revealed by each other's recorded answer
		if len(visible) != 2 {
			t.Errorf("unexpected visible set: %v", visibleIDs(visible))
		}
	})

	t.Run("translated options keep index semantics", func(t *testing.T) {
		translated := branchingQuestions()
		translated[0].Translations = map[string]surveyTypes.QuestionTranslation{
			"Hindi": {
				Options: []surveyTypes.QuestionOption{
					{Text: "हाँ", Children: "Q1.1"},
					{Text: "नहीं"},
				},
			},
		}
		answers := map[string]surveyTypes.Answer{
			"Q1": {Value: 0},
		}
		visible := VisibleQuestions(translated, answers, "Hindi")
		if ids := visibleIDs(visible); len(ids) != 3 || ids[1] != "Q1.1" {
			t.Errorf("unexpected visible set: %v", ids)
		}
	})
}
