package survey

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	surveyTypes "github.com/repo-sumit/survey-builder-be/pkg/surveys/types"
)

func (dbService *SurveyDBService) CreateQuestion(instanceID string, question *surveyTypes.Question) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	now := time.Now().Unix()
	question.CreatedAt = now
	question.UpdatedAt = now

	ret, err := dbService.collectionQuestions(instanceID).InsertOne(ctx, question)
	if err != nil {
		return err
	}
	question.ID = ret.InsertedID.(primitive.ObjectID)
	return nil
}

func (dbService *SurveyDBService) GetQuestions(instanceID string, surveyID string) (questions []surveyTypes.Question, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	cur, err := dbService.collectionQuestions(instanceID).Find(ctx, bson.M{"surveyId": surveyID})
	if err != nil {
		return questions, err
	}
	if err = cur.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (dbService *SurveyDBService) GetQuestion(instanceID string, surveyID string, questionID string) (question *surveyTypes.Question, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"surveyId": surveyID, "questionId": questionID}
	err = dbService.collectionQuestions(instanceID).FindOne(ctx, filter).Decode(&question)
	if err != nil {
		return nil, err
	}
	return question, nil
}

func (dbService *SurveyDBService) QuestionExists(instanceID string, surveyID string, questionID string) (bool, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	count, err := dbService.collectionQuestions(instanceID).CountDocuments(ctx, bson.M{"surveyId": surveyID, "questionId": questionID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (dbService *SurveyDBService) CountQuestions(instanceID string, surveyID string) (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	return dbService.collectionQuestions(instanceID).CountDocuments(ctx, bson.M{"surveyId": surveyID})
}

func (dbService *SurveyDBService) UpdateQuestion(instanceID string, question *surveyTypes.Question) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	question.UpdatedAt = time.Now().Unix()

	filter := bson.M{"surveyId": question.SurveyID, "questionId": question.QuestionID}
	update := bson.M{"$set": bson.M{
		"questionType":                 question.QuestionType,
		"isMandatory":                  question.IsMandatory,
		"sourceQuestion":               question.SourceQuestion,
		"questionDescription":          question.QuestionDescription,
		"questionDescriptionOptional":  question.QuestionDescriptionOptional,
		"questionDescriptionInEnglish": question.QuestionDescriptionInEnglish,
		"options":                      question.Options,
		"tableHeaderValue":             question.TableHeaderValue,
		"tableQuestionValue":           question.TableQuestionValue,
		"textInputType":                question.TextInputType,
		"textLimitCharacters":          question.TextLimitCharacters,
		"medium":                       question.Medium,
		"translations":                 question.Translations,
		"updatedAt":                    question.UpdatedAt,
	}}

	res, err := dbService.collectionQuestions(instanceID).UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount < 1 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (dbService *SurveyDBService) DeleteQuestion(instanceID string, surveyID string, questionID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	res, err := dbService.collectionQuestions(instanceID).DeleteOne(ctx, bson.M{"surveyId": surveyID, "questionId": questionID})
	if err != nil {
		return err
	}
	if res.DeletedCount < 1 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (dbService *SurveyDBService) DeleteQuestionsForSurvey(instanceID string, surveyID string) (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	res, err := dbService.collectionQuestions(instanceID).DeleteMany(ctx, bson.M{"surveyId": surveyID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
