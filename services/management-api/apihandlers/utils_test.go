package apihandlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/repo-sumit/survey-builder-be/pkg/surveys"
)

func TestWriteSurveyMutationError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &HttpEndpoints{}

	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "missing survey yields 404",
			err:        surveys.ErrSurveyNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "missing question yields 404",
			err:        surveys.ErrQuestionNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "published survey yields 409",
			err:        surveys.ErrSurveyPublished,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "invalid question ID yields 400",
			err:        surveys.ErrInvalidQuestionID,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "taken question ID yields 409",
			err:        surveys.ErrQuestionIDTaken,
			wantStatus: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			h.writeSurveyMutationError(c, "test", tc.err)

			if rec.Code != tc.wantStatus {
				t.Errorf("expected status %d, but got %d", tc.wantStatus, rec.Code)
			}
		})
	}
}
