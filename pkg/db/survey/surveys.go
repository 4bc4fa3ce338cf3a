package survey

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	surveyTypes "github.com/repo-sumit/survey-builder-be/pkg/surveys/types"
)

var sortByCreatedAtDesc = bson.D{
	primitive.E{Key: "createdAt", Value: -1},
}

func (dbService *SurveyDBService) CreateSurvey(instanceID string, survey *surveyTypes.Survey) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	now := time.Now().Unix()
	survey.CreatedAt = now
	survey.UpdatedAt = now

	ret, err := dbService.collectionSurveys(instanceID).InsertOne(ctx, survey)
	if err != nil {
		return err
	}
	survey.ID = ret.InsertedID.(primitive.ObjectID)
	return nil
}

func (dbService *SurveyDBService) GetSurveys(instanceID string, page int64, limit int64, filter bson.M) (surveys []*surveyTypes.Survey, totalCount int64, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	collection := dbService.collectionSurveys(instanceID)
	if filter == nil {
		filter = bson.M{}
	}

	totalCount, err = collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := &options.FindOptions{}
	opts.SetSort(sortByCreatedAtDesc)
	if limit > 0 {
		opts.SetSkip((page - 1) * limit)
		opts.SetLimit(limit)
	}

	cur, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	if err = cur.All(ctx, &surveys); err != nil {
		return nil, 0, err
	}
	return surveys, totalCount, nil
}

func (dbService *SurveyDBService) GetSurvey(instanceID string, surveyID string) (survey *surveyTypes.Survey, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"surveyId": surveyID}
	err = dbService.collectionSurveys(instanceID).FindOne(ctx, filter).Decode(&survey)
	if err != nil {
		return nil, err
	}
	return survey, nil
}

func (dbService *SurveyDBService) SurveyExists(instanceID string, surveyID string) (bool, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	count, err := dbService.collectionSurveys(instanceID).CountDocuments(ctx, bson.M{"surveyId": surveyID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (dbService *SurveyDBService) UpdateSurvey(instanceID string, survey *surveyTypes.Survey) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	survey.UpdatedAt = time.Now().Unix()

	filter := bson.M{"surveyId": survey.SurveyID}
	update := bson.M{"$set": bson.M{
		"surveyName":              survey.SurveyName,
		"surveyDescription":       survey.SurveyDescription,
		"availableMediums":        survey.AvailableMediums,
		"hierarchicalAccessLevel": survey.HierarchicalAccessLevel,
		"public":                  survey.Public,
		"isActive":                survey.IsActive,
		"acceptMultipleEntries":   survey.AcceptMultipleEntries,
		"launchDate":              survey.LaunchDate,
		"closeDate":               survey.CloseDate,
		"updatedAt":               survey.UpdatedAt,
	}}

	res, err := dbService.collectionSurveys(instanceID).UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount < 1 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (dbService *SurveyDBService) DeleteSurvey(instanceID string, surveyID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	res, err := dbService.collectionSurveys(instanceID).DeleteOne(ctx, bson.M{"surveyId": surveyID})
	if err != nil {
		return err
	}
	if res.DeletedCount < 1 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SetPublishInfo applies a publish state transition. The filter requires
// the expected current status, so a concurrent transition loses and is
// reported instead of applied twice.
func (dbService *SurveyDBService) SetPublishInfo(instanceID string, surveyID string, expectedStatus string, publish surveyTypes.PublishInfo) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"surveyId": surveyID}
	if expectedStatus == surveyTypes.PUBLISH_STATUS_DRAFT {
		filter["publish.status"] = bson.M{"$ne": surveyTypes.PUBLISH_STATUS_PUBLISHED}
	} else {
		filter["publish.status"] = expectedStatus
	}

	update := bson.M{"$set": bson.M{
		"publish":   publish,
		"updatedAt": time.Now().Unix(),
	}}

	res, err := dbService.collectionSurveys(instanceID).UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount < 1 {
		return mongo.ErrNoDocuments
	}
	return nil
}
