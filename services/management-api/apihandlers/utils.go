package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/repo-sumit/survey-builder-be/pkg/surveys"
)

// requireNotLockedByOther rejects mutations while another editor holds the
// survey's edit lock. Callers holding the lock themselves, or surveys with
// no lock at all, pass through.
func (h *HttpEndpoints) requireNotLockedByOther(c *gin.Context, instanceID string, surveyID string, userID string) bool {
	state, err := surveys.EditorStateFor(instanceID, surveyID, userID)
	if err != nil {
		if errors.Is(err, surveys.ErrSurveyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "survey not found"})
			return false
		}
		slog.Error("error deriving editor state", slog.String("error", err.Error()), slog.String("surveyID", surveyID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error getting editor state"})
		return false
	}
	if state.ReadOnly() {
		c.JSON(http.StatusConflict, gin.H{"error": "survey is being edited by another user"})
		return false
	}
	return true
}

// writeSurveyMutationError maps the service level rejections onto HTTP
// status codes. Unexpected errors are logged and hidden behind a 500.
func (h *HttpEndpoints) writeSurveyMutationError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, surveys.ErrSurveyNotFound),
		errors.Is(err, surveys.ErrQuestionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, surveys.ErrSurveyPublished),
		errors.Is(err, surveys.ErrSurveyAlreadyPublished),
		errors.Is(err, surveys.ErrSurveyNotPublished),
		errors.Is(err, surveys.ErrNoQuestionsToPublish):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, surveys.ErrInvalidQuestionID),
		errors.Is(err, surveys.ErrInvalidQuestionType),
		errors.Is(err, surveys.ErrSurveyIDRequired),
		errors.Is(err, surveys.ErrSurveyNameRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, surveys.ErrQuestionIDTaken),
		errors.Is(err, surveys.ErrSurveyIDTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		slog.Error(op+": unexpected error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected error"})
	}
}
