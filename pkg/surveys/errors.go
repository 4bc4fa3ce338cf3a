package surveys

import "errors"

// User visible rejections. None of these are fatal; handlers translate
// them into 4xx responses and the state stays unchanged.
var (
	ErrSurveyNotFound         = errors.New("survey not found")
	ErrSurveyIDRequired       = errors.New("survey ID is required")
	ErrSurveyNameRequired     = errors.New("survey name is required")
	ErrSurveyIDTaken          = errors.New("a survey with this ID already exists")
	ErrQuestionNotFound       = errors.New("question not found")
	ErrSurveyPublished        = errors.New("survey is published and cannot be modified")
	ErrSurveyAlreadyPublished = errors.New("survey is already published")
	ErrSurveyNotPublished     = errors.New("survey is not published")
	ErrNoQuestionsToPublish   = errors.New("cannot publish a survey without questions")
	ErrInvalidQuestionID      = errors.New("question ID must be in the form Q1, Q1.2, ...")
	ErrQuestionIDTaken        = errors.New("a question with this ID already exists")
	ErrInvalidQuestionType    = errors.New("unknown question type")
)
