package surveys

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	surveyTypes "github.com/repo-sumit/survey-builder-be/pkg/surveys/types"
)

// ValidateSurvey checks the authoring invariants of a survey record.
func ValidateSurvey(survey surveyTypes.Survey) error {
	if strings.TrimSpace(survey.SurveyID) == "" {
		return ErrSurveyIDRequired
	}
	if strings.TrimSpace(survey.SurveyName) == "" {
		return ErrSurveyNameRequired
	}
	return nil
}

func CreateSurvey(instanceID string, survey surveyTypes.Survey) (*surveyTypes.Survey, error) {
	survey.SurveyID = strings.TrimSpace(survey.SurveyID)
	if err := ValidateSurvey(survey); err != nil {
		return nil, err
	}

	exists, err := surveyDBService.SurveyExists(instanceID, survey.SurveyID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSurveyIDTaken
	}

	// New surveys always start out as drafts.
	survey.Publish = surveyTypes.PublishInfo{
		Status: surveyTypes.PUBLISH_STATUS_DRAFT,
	}

	if err := surveyDBService.CreateSurvey(instanceID, &survey); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrSurveyIDTaken
		}
		return nil, err
	}
	return &survey, nil
}

func UpdateSurvey(instanceID string, survey surveyTypes.Survey) (*surveyTypes.Survey, error) {
	if _, err := requireDraftSurvey(instanceID, survey.SurveyID); err != nil {
		return nil, err
	}
	if err := ValidateSurvey(survey); err != nil {
		return nil, err
	}

	if err := surveyDBService.UpdateSurvey(instanceID, &survey); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSurveyNotFound
		}
		return nil, err
	}
	return &survey, nil
}

func DeleteSurvey(instanceID string, surveyID string) error {
	err := surveyDBService.DeleteSurvey(instanceID, surveyID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrSurveyNotFound
		}
		return err
	}
	// Questions and a possibly held lock are cleaned up with the survey.
	if _, err := surveyDBService.DeleteQuestionsForSurvey(instanceID, surveyID); err != nil {
		return err
	}
	return surveyDBService.DeleteEditLocksForSurvey(instanceID, surveyID)
}

// DuplicateSurvey copies a survey and all of its questions under a new
// survey ID. The copy starts as a draft regardless of the source state.
func DuplicateSurvey(instanceID string, surveyID string, newSurveyID string) (*surveyTypes.Survey, error) {
	newSurveyID = strings.TrimSpace(newSurveyID)
	if newSurveyID == "" {
		return nil, ErrSurveyIDRequired
	}

	original, err := surveyDBService.GetSurvey(instanceID, surveyID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSurveyNotFound
		}
		return nil, err
	}

	exists, err := surveyDBService.SurveyExists(instanceID, newSurveyID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSurveyIDTaken
	}

	duplicate := *original
	duplicate.ID = primitive.NilObjectID
	duplicate.SurveyID = newSurveyID
	duplicate.SurveyName = original.SurveyName + " (Copy)"
	duplicate.Publish = surveyTypes.PublishInfo{
		Status: surveyTypes.PUBLISH_STATUS_DRAFT,
	}
	duplicate.CreatedAt = time.Now().Unix()
	duplicate.UpdatedAt = 0

	if err := surveyDBService.CreateSurvey(instanceID, &duplicate); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrSurveyIDTaken
		}
		return nil, err
	}

	questions, err := surveyDBService.GetQuestions(instanceID, surveyID)
	if err != nil {
		return nil, err
	}
	for _, question := range questions {
		copied := question
		copied.ID = primitive.NilObjectID
		copied.SurveyID = newSurveyID
		if err := surveyDBService.CreateQuestion(instanceID, &copied); err != nil {
			return nil, err
		}
	}

	return &duplicate, nil
}
