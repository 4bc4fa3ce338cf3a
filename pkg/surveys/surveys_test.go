package surveys

import (
	"testing"

	surveyTypes "github.com/repo-sumit/survey-builder-be/pkg/surveys/types"
)

func TestValidateSurvey(t *testing.T) {
	testCases := []struct {
		name    string
		survey  surveyTypes.Survey
		wantErr error
	}{
		{
			name:    "valid survey",
			survey:  surveyTypes.Survey{SurveyID: "household-2026", SurveyName: "Household Survey"},
			wantErr: nil,
		},
		{
			name:    "missing survey ID",
			survey:  surveyTypes.Survey{SurveyName: "Household Survey"},
			wantErr: ErrSurveyIDRequired,
		},
		{
			name:    "blank survey ID",
			survey:  surveyTypes.Survey{SurveyID: "   ", SurveyName: "Household Survey"},
			wantErr: ErrSurveyIDRequired,
		},
		{
			name:    "missing name",
			survey:  surveyTypes.Survey{SurveyID: "household-2026"},
			wantErr: ErrSurveyNameRequired,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSurvey(tc.survey)
			if err != tc.wantErr {
				t.Errorf("expected %v, but got %v", tc.wantErr, err)
			}
		})
	}
}
