package surveys

import (
	"testing"

	surveyTypes "github.com/repo-sumit/survey-builder-be/pkg/surveys/types"
)

func TestEditorStateDerivations(t *testing.T) {
	tests := []struct {
		name             string
		lockStatus       string
		publishStatus    string
		readOnly         bool
		canEditQuestions bool
		canPublish       bool
	}{
		{
			name:             "granted draft",
			lockStatus:       surveyTypes.LOCK_STATUS_GRANTED,
			publishStatus:    surveyTypes.PUBLISH_STATUS_DRAFT,
			readOnly:         false,
			canEditQuestions: true,
			canPublish:       true,
		},
		{
			name:             "granted published",
			lockStatus:       surveyTypes.LOCK_STATUS_GRANTED,
			publishStatus:    surveyTypes.PUBLISH_STATUS_PUBLISHED,
			readOnly:         false,
			canEditQuestions: false,
			canPublish:       true,
		},
		{
			name:             "conflict draft",
			lockStatus:       surveyTypes.LOCK_STATUS_CONFLICT,
			publishStatus:    surveyTypes.PUBLISH_STATUS_DRAFT,
			readOnly:         true,
			canEditQuestions: false,
			canPublish:       false,
		},
		{
			name:             "unknown draft",
			lockStatus:       surveyTypes.LOCK_STATUS_UNKNOWN,
			publishStatus:    surveyTypes.PUBLISH_STATUS_DRAFT,
			readOnly:         false,
			canEditQuestions: false,
			canPublish:       false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			state := NewEditorState(test.lockStatus, test.publishStatus)
			if state.ReadOnly() != test.readOnly {
				t.Errorf("ReadOnly: expected %v, but got %v", test.readOnly, state.ReadOnly())
			}
			if state.CanEditQuestions() != test.canEditQuestions {
				t.Errorf("CanEditQuestions: expected %v, but got %v", test.canEditQuestions, state.CanEditQuestions())
			}
			if state.CanPublish() != test.canPublish {
				t.Errorf("CanPublish: expected %v, but got %v", test.canPublish, state.CanPublish())
			}
		})
	}
}
