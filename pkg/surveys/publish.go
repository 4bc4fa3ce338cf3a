package surveys

import (
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	surveyTypes "github.com/repo-sumit/survey-builder-be/pkg/surveys/types"
)

// CanPublish is the pure publish gate: only a draft survey with at least
// one question may be published.
func CanPublish(survey surveyTypes.Survey, questionCount int64) error {
	if survey.IsPublished() {
		return ErrSurveyAlreadyPublished
	}
	if questionCount < 1 {
		return ErrNoQuestionsToPublish
	}
	return nil
}

// CanUnpublish is the pure unpublish gate.
func CanUnpublish(survey surveyTypes.Survey) error {
	if !survey.IsPublished() {
		return ErrSurveyNotPublished
	}
	return nil
}

// PublishSurvey transitions a survey from DRAFT to PUBLISHED, recording
// actor and time. The DB update re-checks the expected status so a racing
// publish is reported, not applied twice.
func PublishSurvey(instanceID string, surveyID string, actorID string) (*surveyTypes.Survey, error) {
	survey, err := surveyDBService.GetSurvey(instanceID, surveyID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSurveyNotFound
		}
		return nil, err
	}

	questionCount, err := surveyDBService.CountQuestions(instanceID, surveyID)
	if err != nil {
		return nil, err
	}

	if err := CanPublish(*survey, questionCount); err != nil {
		return nil, err
	}

	publish := surveyTypes.PublishInfo{
		Status:      surveyTypes.PUBLISH_STATUS_PUBLISHED,
		PublishedAt: time.Now().Unix(),
		PublishedBy: actorID,
	}
	if err := surveyDBService.SetPublishInfo(instanceID, surveyID, surveyTypes.PUBLISH_STATUS_DRAFT, publish); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSurveyAlreadyPublished
		}
		return nil, err
	}

	slog.Info("survey published",
		slog.String("instanceID", instanceID),
		slog.String("surveyID", surveyID),
		slog.String("publishedBy", actorID))

	survey.Publish = publish
	return survey, nil
}

// UnpublishSurvey returns a published survey to DRAFT, reopening it for
// edits.
func UnpublishSurvey(instanceID string, surveyID string, actorID string) (*surveyTypes.Survey, error) {
	survey, err := surveyDBService.GetSurvey(instanceID, surveyID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSurveyNotFound
		}
		return nil, err
	}

	if err := CanUnpublish(*survey); err != nil {
		return nil, err
	}

	publish := surveyTypes.PublishInfo{
		Status: surveyTypes.PUBLISH_STATUS_DRAFT,
	}
	if err := surveyDBService.SetPublishInfo(instanceID, surveyID, surveyTypes.PUBLISH_STATUS_PUBLISHED, publish); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSurveyNotPublished
		}
		return nil, err
	}

	slog.Info("survey unpublished",
		slog.String("instanceID", instanceID),
		slog.String("surveyID", surveyID),
		slog.String("actor", actorID))

	survey.Publish = publish
	return survey, nil
}
