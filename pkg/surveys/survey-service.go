package surveys

import (
	surveydb "github.com/repo-sumit/survey-builder-be/pkg/db/survey"
)

var (
	surveyDBService *surveydb.SurveyDBService
)

func Init(surveyDB *surveydb.SurveyDBService) {
	surveyDBService = surveyDB
}
