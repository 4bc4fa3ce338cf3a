package surveys

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	surveyTypes "github.com/repo-sumit/survey-builder-be/pkg/surveys/types"
)

// ValidateQuestion checks the authoring invariants of a question record.
func ValidateQuestion(question surveyTypes.Question) error {
	if !surveyTypes.IsValidQuestionID(question.QuestionID) {
		return ErrInvalidQuestionID
	}
	validType := false
	for _, t := range surveyTypes.QuestionTypes {
		if question.QuestionType == t {
			validType = true
			break
		}
	}
	if !validType {
		return ErrInvalidQuestionType
	}
	return nil
}

// requireDraftSurvey loads the survey and rejects mutation attempts while
// it is published. The publish gate applies regardless of lock state.
func requireDraftSurvey(instanceID string, surveyID string) (*surveyTypes.Survey, error) {
	survey, err := surveyDBService.GetSurvey(instanceID, surveyID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSurveyNotFound
		}
		return nil, err
	}
	if survey.IsPublished() {
		return nil, ErrSurveyPublished
	}
	return survey, nil
}

func CreateQuestion(instanceID string, surveyID string, question surveyTypes.Question) (*surveyTypes.Question, error) {
	if _, err := requireDraftSurvey(instanceID, surveyID); err != nil {
		return nil, err
	}

	question.SurveyID = surveyID
	question.QuestionID = surveyTypes.NormalizeQuestionID(question.QuestionID)
	if err := ValidateQuestion(question); err != nil {
		return nil, err
	}

	exists, err := surveyDBService.QuestionExists(instanceID, surveyID, question.QuestionID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrQuestionIDTaken
	}

	if err := surveyDBService.CreateQuestion(instanceID, &question); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrQuestionIDTaken
		}
		return nil, err
	}
	return &question, nil
}

func UpdateQuestion(instanceID string, surveyID string, question surveyTypes.Question) (*surveyTypes.Question, error) {
	if _, err := requireDraftSurvey(instanceID, surveyID); err != nil {
		return nil, err
	}

	question.SurveyID = surveyID
	if err := ValidateQuestion(question); err != nil {
		return nil, err
	}

	if err := surveyDBService.UpdateQuestion(instanceID, &question); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return &question, nil
}

func DeleteQuestion(instanceID string, surveyID string, questionID string) error {
	if _, err := requireDraftSurvey(instanceID, surveyID); err != nil {
		return err
	}
	if err := surveyDBService.DeleteQuestion(instanceID, surveyID, questionID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrQuestionNotFound
		}
		return err
	}
	return nil
}

// DuplicateQuestion copies an existing question under a new ID. When the
// caller does not name a target ID, the next free root level ID is used.
func DuplicateQuestion(instanceID string, surveyID string, questionID string, newQuestionID string) (*surveyTypes.Question, error) {
	if _, err := requireDraftSurvey(instanceID, surveyID); err != nil {
		return nil, err
	}

	original, err := surveyDBService.GetQuestion(instanceID, surveyID, questionID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}

	if newQuestionID == "" {
		existing, err := surveyDBService.GetQuestions(instanceID, surveyID)
		if err != nil {
			return nil, err
		}
		newQuestionID = surveyTypes.NextAvailableQuestionID(existing)
	} else {
		newQuestionID = surveyTypes.NormalizeQuestionID(newQuestionID)
		if !surveyTypes.IsValidQuestionID(newQuestionID) {
			return nil, ErrInvalidQuestionID
		}
		exists, err := surveyDBService.QuestionExists(instanceID, surveyID, newQuestionID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrQuestionIDTaken
		}
	}

	duplicate := *original
	duplicate.ID = primitive.NilObjectID
	duplicate.QuestionID = newQuestionID

	if err := surveyDBService.CreateQuestion(instanceID, &duplicate); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrQuestionIDTaken
		}
		return nil, err
	}
	return &duplicate, nil
}
