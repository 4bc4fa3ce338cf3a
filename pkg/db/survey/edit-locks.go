package survey

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	surveyTypes "github.com/repo-sumit/survey-builder-be/pkg/surveys/types"
)

// AcquireEditLock implements the single-editor protocol: the upsert only
// matches a lock held by the same holder (re-entrant refresh) or no lock at
// all; an existing lock with a different holder makes the upsert collide
// with the unique surveyId index, which signals the conflict.
func (dbService *SurveyDBService) AcquireEditLock(instanceID string, surveyID string, holderID string) (lock *surveyTypes.EditLock, acquired bool, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"surveyId": surveyID, "holderId": holderID}
	update := bson.M{"$set": bson.M{
		"surveyId":   surveyID,
		"holderId":   holderID,
		"acquiredAt": time.Now().Unix(),
	}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	err = dbService.collectionEditLocks(instanceID).FindOneAndUpdate(ctx, filter, update, opts).Decode(&lock)
	if err == nil {
		return lock, true, nil
	}

	if mongo.IsDuplicateKeyError(err) {
		current, getErr := dbService.GetEditLock(instanceID, surveyID)
		if getErr != nil {
			return nil, false, getErr
		}
		return current, false, nil
	}
	return nil, false, err
}

func (dbService *SurveyDBService) GetEditLock(instanceID string, surveyID string) (lock *surveyTypes.EditLock, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	err = dbService.collectionEditLocks(instanceID).FindOne(ctx, bson.M{"surveyId": surveyID}).Decode(&lock)
	if err != nil {
		return nil, err
	}
	return lock, nil
}

// ReleaseEditLock removes the holder's lock. Releasing a lock that is not
// held (anymore) is not an error.
func (dbService *SurveyDBService) ReleaseEditLock(instanceID string, surveyID string, holderID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionEditLocks(instanceID).DeleteOne(ctx, bson.M{"surveyId": surveyID, "holderId": holderID})
	return err
}

// DeleteEditLocksForSurvey removes any lock held on the survey, used when
// the survey itself is deleted.
func (dbService *SurveyDBService) DeleteEditLocksForSurvey(instanceID string, surveyID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionEditLocks(instanceID).DeleteMany(ctx, bson.M{"surveyId": surveyID})
	return err
}

// DeleteStaleEditLocks drops locks acquired before the cutoff. Lock expiry
// is a server side responsibility; editor clients never time locks out.
func (dbService *SurveyDBService) DeleteStaleEditLocks(instanceID string, olderThan time.Time) (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"acquiredAt": bson.M{"$lt": olderThan.Unix()}}
	res, err := dbService.collectionEditLocks(instanceID).DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
