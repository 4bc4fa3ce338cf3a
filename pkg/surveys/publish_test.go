package surveys

import (
	"errors"
	"testing"

	surveyTypes "github.com/repo-sumit/survey-builder-be/pkg/surveys/types"
)

func TestCanPublish(t *testing.T) {
	draft := surveyTypes.Survey{SurveyID: "S1"}
	published := surveyTypes.Survey{
		SurveyID: "S1",
		Publish:  surveyTypes.PublishInfo{Status: surveyTypes.PUBLISH_STATUS_PUBLISHED},
	}

	t.Run("draft with questions", func(t *testing.T) {
		if err := CanPublish(draft, 3); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("empty question list rejected", func(t *testing.T) {
		if err := CanPublish(draft, 0); !errors.Is(err, ErrNoQuestionsToPublish) {
			t.Errorf("expected ErrNoQuestionsToPublish, but got %v", err)
		}
	})

	t.Run("already published rejected", func(t *testing.T) {
		if err := CanPublish(published, 3); !errors.Is(err, ErrSurveyAlreadyPublished) {
			t.Errorf("expected ErrSurveyAlreadyPublished, but got %v", err)
		}
	})
}

func TestCanUnpublish(t *testing.T) {
	draft := surveyTypes.Survey{SurveyID: "S1"}
	published := surveyTypes.Survey{
		SurveyID: "S1",
		Publish:  surveyTypes.PublishInfo{Status: surveyTypes.PUBLISH_STATUS_PUBLISHED},
	}

	if err := CanUnpublish(published); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := CanUnpublish(draft); !errors.Is(err, ErrSurveyNotPublished) {
		t.Errorf("expected ErrSurveyNotPublished, but got %v", err)
	}
}
