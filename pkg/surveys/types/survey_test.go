package types

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestMediumListUnmarshal(t *testing.T) {
	t.Run("from array", func(t *testing.T) {
		var survey Survey
		if err := json.Unmarshal([]byte(`{"surveyId":"S1","availableMediums":["English","Hindi"]}`), &survey); err != nil {
			t.Errorf("unexpected error: %v", err)
			return
		}
		if !reflect.DeepEqual(survey.AvailableMediums.Languages(), []string{"English", "Hindi"}) {
			t.Errorf("unexpected mediums: %v", survey.AvailableMediums)
		}
	})

	t.Run("from comma string", func(t *testing.T) {
		var survey Survey
		if err := json.Unmarshal([]byte(`{"surveyId":"S1","availableMediums":"English, Hindi ,,Tamil"}`), &survey); err != nil {
			t.Errorf("unexpected error: %v", err)
			return
		}
		if !reflect.DeepEqual(survey.AvailableMediums.Languages(), []string{"English", "Hindi", "Tamil"}) {
			t.Errorf("unexpected mediums: %v", survey.AvailableMediums)
		}
	})
}

func TestMediumListLanguagesDefault(t *testing.T) {
	tests := []struct {
		name     string
		mediums  MediumList
		expected []string
	}{
		{"nil list", nil, []string{"English"}},
		{"empty entries", MediumList{"", "  "}, []string{"English"}},
		{"embedded commas", MediumList{"English,Hindi"}, []string{"English", "Hindi"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if result := test.mediums.Languages(); !reflect.DeepEqual(result, test.expected) {
				t.Errorf("expected %v, but got %v", test.expected, result)
			}
		})
	}
}

func TestSurveyPublishStatus(t *testing.T) {
	draft := Survey{SurveyID: "S1"}
	if draft.PublishStatus() != PUBLISH_STATUS_DRAFT {
		t.Errorf("expected DRAFT, but got %s", draft.PublishStatus())
	}
	if draft.IsPublished() {
		t.Error("draft survey should not be published")
	}

	published := Survey{SurveyID: "S1", Publish: PublishInfo{Status: PUBLISH_STATUS_PUBLISHED}}
	if published.PublishStatus() != PUBLISH_STATUS_PUBLISHED {
		t.Errorf("expected PUBLISHED, but got %s", published.PublishStatus())
	}
	if !published.IsPublished() {
		t.Error("published survey should report published")
	}
}
