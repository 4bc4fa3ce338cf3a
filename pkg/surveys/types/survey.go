package types

import (
	"encoding/json"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PUBLISH_STATUS_DRAFT     = "DRAFT"
	PUBLISH_STATUS_PUBLISHED = "PUBLISHED"
)

const DEFAULT_MEDIUM = "English"

// AvailableMediums lists the languages a survey can be authored in.
var AvailableMediums = []string{
	"English", "Hindi", "Gujarati", "Marathi", "Tamil",
	"Telugu", "Bengali", "Bodo", "Punjabi", "Assamese",
}

type Survey struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	SurveyID          string             `bson:"surveyId" json:"surveyId"`
	SurveyName        string             `bson:"surveyName" json:"surveyName"`
	SurveyDescription string             `bson:"surveyDescription,omitempty" json:"surveyDescription,omitempty"`
	AvailableMediums  MediumList         `bson:"availableMediums,omitempty" json:"availableMediums,omitempty"`

	HierarchicalAccessLevel string `bson:"hierarchicalAccessLevel,omitempty" json:"hierarchicalAccessLevel,omitempty"`
	Public                  string `bson:"public,omitempty" json:"public,omitempty"`
	IsActive                string `bson:"isActive,omitempty" json:"isActive,omitempty"`
	AcceptMultipleEntries   string `bson:"acceptMultipleEntries,omitempty" json:"acceptMultipleEntries,omitempty"`
	LaunchDate              string `bson:"launchDate,omitempty" json:"launchDate,omitempty"`
	CloseDate               string `bson:"closeDate,omitempty" json:"closeDate,omitempty"`

	Publish PublishInfo `bson:"publish,omitempty" json:"publish,omitempty"`

	CreatedAt int64 `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt int64 `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// PublishInfo records the publish state of a survey. A survey without
// publish info is in DRAFT.
type PublishInfo struct {
	Status      string `bson:"status,omitempty" json:"status,omitempty"`
	PublishedAt int64  `bson:"publishedAt,omitempty" json:"publishedAt,omitempty"`
	PublishedBy string `bson:"publishedBy,omitempty" json:"publishedBy,omitempty"`
}

func (s Survey) IsPublished() bool {
	return s.Publish.Status == PUBLISH_STATUS_PUBLISHED
}

// PublishStatus returns the effective state tag, treating missing publish
// info as DRAFT.
func (s Survey) PublishStatus() string {
	if s.Publish.Status == PUBLISH_STATUS_PUBLISHED {
		return PUBLISH_STATUS_PUBLISHED
	}
	return PUBLISH_STATUS_DRAFT
}

// MediumList is stored either as a comma separated string or as an array,
// depending on which client wrote the survey. It unmarshals from both.
type MediumList []string

func (m *MediumList) UnmarshalJSON(data []byte) error {
	var asArray []string
	if err := json.Unmarshal(data, &asArray); err == nil {
		*m = MediumList(asArray)
		return nil
	}
	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return err
	}
	*m = MediumList(splitMediums(asString))
	return nil
}

// Languages returns the cleaned up language list, defaulting to English
// when nothing usable was configured.
func (m MediumList) Languages() []string {
	languages := []string{}
	for _, entry := range m {
		for _, lang := range splitMediums(entry) {
			languages = append(languages, lang)
		}
	}
	if len(languages) == 0 {
		return []string{DEFAULT_MEDIUM}
	}
	return languages
}

func splitMediums(value string) []string {
	parts := []string{}
	for _, part := range strings.Split(value, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		parts = append(parts, trimmed)
	}
	return parts
}
