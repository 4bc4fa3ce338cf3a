package types

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	QUESTION_TYPE_MULTIPLE_CHOICE_SINGLE_SELECT = "Multiple Choice Single Select"
	QUESTION_TYPE_MULTIPLE_CHOICE_MULTI_SELECT  = "Multiple Choice Multi Select"
	QUESTION_TYPE_TABULAR_TEXT_INPUT            = "Tabular Text Input"
	QUESTION_TYPE_TABULAR_DROP_DOWN             = "Tabular Drop Down"
	QUESTION_TYPE_TABULAR_CHECK_BOX             = "Tabular Check Box"
	QUESTION_TYPE_TEXT_RESPONSE                 = "Text Response"
	QUESTION_TYPE_IMAGE_UPLOAD                  = "Image Upload"
	QUESTION_TYPE_VIDEO_UPLOAD                  = "Video Upload"
	QUESTION_TYPE_VOICE_RESPONSE                = "Voice Response"
	QUESTION_TYPE_LIKERT_SCALE                  = "Likert Scale"
	QUESTION_TYPE_CALENDAR                      = "Calendar"
	QUESTION_TYPE_DROP_DOWN                     = "Drop Down"
)

var QuestionTypes = []string{
	QUESTION_TYPE_MULTIPLE_CHOICE_SINGLE_SELECT,
	QUESTION_TYPE_MULTIPLE_CHOICE_MULTI_SELECT,
	QUESTION_TYPE_TABULAR_TEXT_INPUT,
	QUESTION_TYPE_TABULAR_DROP_DOWN,
	QUESTION_TYPE_TABULAR_CHECK_BOX,
	QUESTION_TYPE_TEXT_RESPONSE,
	QUESTION_TYPE_IMAGE_UPLOAD,
	QUESTION_TYPE_VIDEO_UPLOAD,
	QUESTION_TYPE_VOICE_RESPONSE,
	QUESTION_TYPE_LIKERT_SCALE,
	QUESTION_TYPE_CALENDAR,
	QUESTION_TYPE_DROP_DOWN,
}

var TextInputTypes = []string{"Numeric", "Alphanumeric", "Alphabets", "None"}

const (
	YES = "Yes"
	NO  = "No"
)

type Question struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	SurveyID       string             `bson:"surveyId" json:"surveyId"`
	QuestionID     string             `bson:"questionId" json:"questionId"`
	QuestionType   string             `bson:"questionType" json:"questionType"`
	IsMandatory    string             `bson:"isMandatory,omitempty" json:"isMandatory,omitempty"`
	SourceQuestion string             `bson:"sourceQuestion,omitempty" json:"sourceQuestion,omitempty"`

	QuestionDescription          string `bson:"questionDescription,omitempty" json:"questionDescription,omitempty"`
	QuestionDescriptionOptional  string `bson:"questionDescriptionOptional,omitempty" json:"questionDescriptionOptional,omitempty"`
	QuestionDescriptionInEnglish string `bson:"questionDescriptionInEnglish,omitempty" json:"questionDescriptionInEnglish,omitempty"`

	Options []QuestionOption `bson:"options,omitempty" json:"options,omitempty"`

	TableHeaderValue   string `bson:"tableHeaderValue,omitempty" json:"tableHeaderValue,omitempty"`
	TableQuestionValue string `bson:"tableQuestionValue,omitempty" json:"tableQuestionValue,omitempty"`

	TextInputType       string `bson:"textInputType,omitempty" json:"textInputType,omitempty"`
	TextLimitCharacters int    `bson:"textLimitCharacters,omitempty" json:"textLimitCharacters,omitempty"`
	Medium              string `bson:"medium,omitempty" json:"medium,omitempty"`

	Translations map[string]QuestionTranslation `bson:"translations,omitempty" json:"translations,omitempty"`

	CreatedAt int64 `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt int64 `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// QuestionOption is one selectable option of a choice type question.
// Children holds a comma separated list of question IDs that become
// visible when this option is selected.
type QuestionOption struct {
	Text     string `bson:"text" json:"text"`
	Children string `bson:"children,omitempty" json:"children,omitempty"`
}

// ChildQuestionIDs splits the children reference list, trimming entries
// and dropping empty ones.
func (o QuestionOption) ChildQuestionIDs() []string {
	if o.Children == "" {
		return nil
	}
	ids := []string{}
	for _, part := range strings.Split(o.Children, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		ids = append(ids, trimmed)
	}
	return ids
}

// RevealsChild reports whether selecting this option makes the given
// question visible.
func (o QuestionOption) RevealsChild(questionID string) bool {
	for _, id := range o.ChildQuestionIDs() {
		if id == questionID {
			return true
		}
	}
	return false
}

// QuestionTranslation is a partial, per language override of a question's
// displayable fields. Empty fields fall back to the base question.
type QuestionTranslation struct {
	QuestionDescription         string           `bson:"questionDescription,omitempty" json:"questionDescription,omitempty"`
	QuestionDescriptionOptional string           `bson:"questionDescriptionOptional,omitempty" json:"questionDescriptionOptional,omitempty"`
	Options                     []QuestionOption `bson:"options,omitempty" json:"options,omitempty"`
	TableHeaderValue            string           `bson:"tableHeaderValue,omitempty" json:"tableHeaderValue,omitempty"`
	TableQuestionValue          string           `bson:"tableQuestionValue,omitempty" json:"tableQuestionValue,omitempty"`
}

func (q Question) Mandatory() bool {
	return q.IsMandatory == YES
}
