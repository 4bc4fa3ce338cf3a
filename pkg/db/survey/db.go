package survey

import (
	"context"
	"log/slog"
	"time"

	"github.com/repo-sumit/survey-builder-be/pkg/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collection names
const (
	COLLECTION_NAME_SURVEYS    = "surveys"
	COLLECTION_NAME_QUESTIONS  = "questions"
	COLLECTION_NAME_EDIT_LOCKS = "editLocks"
)

type SurveyDBService struct {
	DBClient        *mongo.Client
	timeout         int
	noCursorTimeout bool
	DBNamePrefix    string
	InstanceIDs     []string
}

func NewSurveyDBService(configs db.DBConfig) (*SurveyDBService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	defer cancel()

	dbClient, err := mongo.Connect(ctx,
		options.Client().ApplyURI(configs.URI),
		options.Client().SetMaxConnIdleTime(time.Duration(configs.IdleConnTimeout)*time.Second),
		options.Client().SetMaxPoolSize(configs.MaxPoolSize),
	)
	if err != nil {
		return nil, err
	}

	ctx, conCancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	err = dbClient.Ping(ctx, nil)
	defer conCancel()

	if err != nil {
		return nil, err
	}

	surveyDBSc := &SurveyDBService{
		DBClient:        dbClient,
		timeout:         configs.Timeout,
		noCursorTimeout: configs.NoCursorTimeout,
		DBNamePrefix:    configs.DBNamePrefix,
		InstanceIDs:     configs.InstanceIDs,
	}

	if configs.RunIndexCreation {
		if err := surveyDBSc.ensureIndexes(); err != nil {
			slog.Error("Error ensuring indexes for survey DB", slog.String("error", err.Error()))
		}
	}

	return surveyDBSc, nil
}

func (dbService *SurveyDBService) getDBName(instanceID string) string {
	return dbService.DBNamePrefix + instanceID + "_surveyDB"
}

func (dbService *SurveyDBService) collectionSurveys(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_SURVEYS)
}

func (dbService *SurveyDBService) collectionQuestions(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_QUESTIONS)
}

func (dbService *SurveyDBService) collectionEditLocks(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_EDIT_LOCKS)
}

func (dbService *SurveyDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *SurveyDBService) ensureIndexes() error {
	slog.Debug("Ensuring indexes for survey DB")
	for _, instanceID := range dbService.InstanceIDs {
		ctx, cancel := dbService.getContext()
		defer cancel()

		_, err := dbService.collectionSurveys(instanceID).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "surveyId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("surveyId_1"),
		})
		if err != nil {
			return err
		}

		_, err = dbService.collectionQuestions(instanceID).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{
				{Key: "surveyId", Value: 1},
				{Key: "questionId", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("surveyId_questionId_1"),
		})
		if err != nil {
			return err
		}

		// the unique surveyId index is what arbitrates the single-editor lock
		_, err = dbService.collectionEditLocks(instanceID).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "surveyId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("surveyId_1"),
		})
		if err != nil {
			return err
		}
	}
	return nil
}
