package previewengine

import (
	"strings"

	surveyTypes "github.com/repo-sumit/survey-builder-be/pkg/surveys/types"
)

// ResolvedContent is the displayable content of a question after applying
// the translation for the selected language, falling back to the base
// (English authored) record field by field.
type ResolvedContent struct {
	Description         string
	OptionalDescription string
	Options             []surveyTypes.QuestionOption
	TableHeaders        []string
	TableRows           []TableRow
}

// TableRow is one "key:label" line of a tabular question layout.
type TableRow struct {
	Key   string
	Label string
}

// ResolveQuestionContent never fails: a missing language or empty
// translation field resolves to the base value. The options list is
// replaced all-or-nothing, never merged per option.
func ResolveQuestionContent(question surveyTypes.Question, language string) ResolvedContent {
	translation := question.Translations[language]

	resolved := ResolvedContent{
		Description:         question.QuestionDescription,
		OptionalDescription: question.QuestionDescriptionOptional,
		Options:             question.Options,
	}

	if translation.QuestionDescription != "" {
		resolved.Description = translation.QuestionDescription
	}
	if translation.QuestionDescriptionOptional != "" {
		resolved.OptionalDescription = translation.QuestionDescriptionOptional
	}
	if len(translation.Options) > 0 {
		resolved.Options = translation.Options
	}

	tableHeaderValue := question.TableHeaderValue
	if translation.TableHeaderValue != "" {
		tableHeaderValue = translation.TableHeaderValue
	}
	tableQuestionValue := question.TableQuestionValue
	if translation.TableQuestionValue != "" {
		tableQuestionValue = translation.TableQuestionValue
	}

	resolved.TableHeaders = parseTableHeaders(tableHeaderValue)
	resolved.TableRows = parseTableRows(tableQuestionValue)
	return resolved
}

// ResolveOptions returns the effective option list for the language.
func ResolveOptions(question surveyTypes.Question, language string) []surveyTypes.QuestionOption {
	if translation, ok := question.Translations[language]; ok && len(translation.Options) > 0 {
		return translation.Options
	}
	return question.Options
}

// parseTableHeaders splits a header definition on "|" when present,
// otherwise on ",".
func parseTableHeaders(value string) []string {
	if value == "" {
		return []string{}
	}
	delimiter := ","
	if strings.Contains(value, "|") {
		delimiter = "|"
	}
	headers := []string{}
	for _, header := range strings.Split(value, delimiter) {
		trimmed := strings.TrimSpace(header)
		if trimmed == "" {
			continue
		}
		headers = append(headers, trimmed)
	}
	return headers
}

// parseTableRows parses "key:label" lines; lines missing either part are
// skipped.
func parseTableRows(value string) []TableRow {
	rows := []TableRow{}
	if value == "" {
		return rows
	}
	for _, line := range strings.Split(value, "\n") {
		key, label, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		label = strings.TrimSpace(label)
		if key == "" || label == "" {
			continue
		}
		rows = append(rows, TableRow{Key: key, Label: label})
	}
	return rows
}
