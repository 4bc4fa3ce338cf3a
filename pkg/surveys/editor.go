package surveys

import (
	"errors"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"

	surveyTypes "github.com/repo-sumit/survey-builder-be/pkg/surveys/types"
)

// EditorState is what the authoring UI derives its controls from: the
// lock tag and the publish tag, nothing else. All derivations are pure
// functions of those two tags.
type EditorState struct {
	LockStatus    string `json:"lockStatus"`
	PublishStatus string `json:"publishStatus"`
}

func NewEditorState(lockStatus string, publishStatus string) EditorState {
	return EditorState{
		LockStatus:    lockStatus,
		PublishStatus: publishStatus,
	}
}

// ReadOnly reports whether the editor is in read-only mode because
// another holder owns the lock. Publish state does not factor in here.
func (s EditorState) ReadOnly() bool {
	return s.LockStatus == surveyTypes.LOCK_STATUS_CONFLICT
}

// CanEditQuestions gates question create/edit/delete/duplicate: requires
// the lock and a draft survey.
func (s EditorState) CanEditQuestions() bool {
	return s.LockStatus == surveyTypes.LOCK_STATUS_GRANTED &&
		s.PublishStatus != surveyTypes.PUBLISH_STATUS_PUBLISHED
}

// CanPublish gates the publish/unpublish actions: blocked in read-only
// mode, independent of the current publish state.
func (s EditorState) CanPublish() bool {
	return s.LockStatus == surveyTypes.LOCK_STATUS_GRANTED
}

// AcquireEditLock attempts to take the single-editor lock for a survey.
// The outcome is a state tag, not an error: a conflict is a first-class
// result carrying the current holder.
func AcquireEditLock(instanceID string, surveyID string, holderID string) (surveyTypes.LockResult, error) {
	lock, acquired, err := surveyDBService.AcquireEditLock(instanceID, surveyID, holderID)
	if err != nil {
		return surveyTypes.LockResult{Status: surveyTypes.LOCK_STATUS_UNKNOWN}, err
	}

	if acquired {
		return surveyTypes.LockResult{
			Status: surveyTypes.LOCK_STATUS_GRANTED,
			Lock:   lock,
		}, nil
	}

	return surveyTypes.LockResult{
		Status: surveyTypes.LOCK_STATUS_CONFLICT,
		Lock:   lock,
	}, nil
}

// ReleaseEditLock is fire-and-forget: the editor calls it on unmount,
// navigation or error, and a failed release is only logged.
func ReleaseEditLock(instanceID string, surveyID string, holderID string) {
	if err := surveyDBService.ReleaseEditLock(instanceID, surveyID, holderID); err != nil {
		slog.Warn("failed to release edit lock",
			slog.String("instanceID", instanceID),
			slog.String("surveyID", surveyID),
			slog.String("holderID", holderID),
			slog.String("error", err.Error()))
	}
}

// EditorStateFor loads the lock and publish tags a mounted editor should
// render with. A missing lock resolves to UNKNOWN (the editor has not
// acquired yet or the lock expired server side).
func EditorStateFor(instanceID string, surveyID string, holderID string) (EditorState, error) {
	survey, err := surveyDBService.GetSurvey(instanceID, surveyID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return EditorState{}, ErrSurveyNotFound
		}
		return EditorState{}, err
	}

	lockStatus := surveyTypes.LOCK_STATUS_UNKNOWN
	lock, err := surveyDBService.GetEditLock(instanceID, surveyID)
	if err == nil {
		if lock.HolderID == holderID {
			lockStatus = surveyTypes.LOCK_STATUS_GRANTED
		} else {
			lockStatus = surveyTypes.LOCK_STATUS_CONFLICT
		}
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return EditorState{}, err
	}

	return NewEditorState(lockStatus, survey.PublishStatus()), nil
}
