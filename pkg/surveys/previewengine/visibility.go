package previewengine

import (
	surveyTypes "github.com/repo-sumit/survey-builder-be/pkg/surveys/types"
)

// VisibleQuestions computes the currently visible subset of the question
// list, preserving its order. It is a pure function of its inputs and is
// recomputed on every answer change.
//
// A question without a source question is always visible. A dependent
// question is visible only while its parent's answer selects at least one
// option that lists it as a child. Dangling parent references render the
// question never visible; a single linear pass over the flat list keeps
// cyclic references harmless.
func VisibleQuestions(
	questions []surveyTypes.Question,
	answers map[string]surveyTypes.Answer,
	language string,
) []surveyTypes.Question {
	byID := make(map[string]surveyTypes.Question, len(questions))
	for _, q := range questions {
		byID[q.QuestionID] = q
	}

	visible := []surveyTypes.Question{}
	for _, q := range questions {
		if q.SourceQuestion == "" {
			visible = append(visible, q)
			continue
		}

		parent, ok := byID[q.SourceQuestion]
		if !ok {
			continue
		}
		answer, ok := answers[q.SourceQuestion]
		if !ok {
			continue
		}
		if isChildTriggered(parent, answer, q.QuestionID, language) {
			visible = append(visible, q)
		}
	}
	return visible
}

// isChildTriggered checks whether any selected option of the parent
// reveals the child. Options are resolved through the active language;
// option indices are language invariant as long as translated option
// lists keep the base ordering.
func isChildTriggered(parent surveyTypes.Question, answer surveyTypes.Answer, childQuestionID string, language string) bool {
	options := ResolveOptions(parent, language)

	for _, index := range answer.SelectedOptionIndices() {
		if index < 0 || index >= len(options) {
			continue
		}
		if options[index].RevealsChild(childQuestionID) {
			return true
		}
	}
	return false
}
