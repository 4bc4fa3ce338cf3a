package types

import "go.mongodb.org/mongo-driver/bson/primitive"

// Lock status tags as observed by the editor client. Modelled as tagged
// values rather than booleans so the read-only UI derivation stays a pure
// function of the tag.
const (
	LOCK_STATUS_GRANTED  = "GRANTED"
	LOCK_STATUS_CONFLICT = "CONFLICT"
	LOCK_STATUS_UNKNOWN  = "UNKNOWN"
)

// EditLock is the server arbitrated single-editor token for one survey.
// At most one active holder per survey exists at any time.
type EditLock struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	SurveyID   string             `bson:"surveyId" json:"surveyId"`
	HolderID   string             `bson:"holderId" json:"holderId"`
	AcquiredAt int64              `bson:"acquiredAt" json:"acquiredAt"`
}

// LockResult is the outcome of an acquire attempt. On conflict, Lock
// describes the current holder so the UI can name it.
type LockResult struct {
	Status string    `json:"status"`
	Lock   *EditLock `json:"lock,omitempty"`
}

func (r LockResult) Granted() bool {
	return r.Status == LOCK_STATUS_GRANTED
}
