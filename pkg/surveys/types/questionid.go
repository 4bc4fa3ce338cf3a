package types

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var questionIDPattern = regexp.MustCompile(`^Q\d+(\.\d+)*$`)
var bareNumericIDPattern = regexp.MustCompile(`^\d+(\.\d+)*$`)

// ParseQuestionIDSegments splits a question ID such as "Q1.2.3" into its
// numeric segments. A leading "Q" or "q" is stripped, non-numeric segments
// are dropped. A malformed ID yields an empty slice and sorts before all
// well-formed IDs.
func ParseQuestionIDSegments(questionID string) []int {
	cleaned := strings.TrimSpace(questionID)
	if len(cleaned) > 0 && (cleaned[0] == 'Q' || cleaned[0] == 'q') {
		cleaned = cleaned[1:]
	}

	segments := []int{}
	for _, part := range strings.Split(cleaned, ".") {
		num, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		segments = append(segments, num)
	}
	return segments
}

// CompareQuestionIDs orders question IDs numerically segment by segment.
// A missing segment sorts lowest, so "Q1" comes before "Q1.1" and
// "Q1.9" before "Q1.10".
func CompareQuestionIDs(a string, b string) int {
	aParts := ParseQuestionIDSegments(a)
	bParts := ParseQuestionIDSegments(b)

	maxLen := len(aParts)
	if len(bParts) > maxLen {
		maxLen = len(bParts)
	}

	for i := 0; i < maxLen; i++ {
		if i >= len(aParts) {
			return -1
		}
		if i >= len(bParts) {
			return 1
		}
		if aParts[i] != bParts[i] {
			if aParts[i] < bParts[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// QuestionIDDepth returns the nesting depth of a question ID.
// Root questions ("Q1") have depth 0, "Q1.2.3" has depth 2.
func QuestionIDDepth(questionID string) int {
	segments := ParseQuestionIDSegments(questionID)
	if len(segments) < 2 {
		return 0
	}
	return len(segments) - 1
}

// SortQuestionsByID sorts a question list into display order: parents
// immediately precede their numeric children.
func SortQuestionsByID(questions []Question) {
	sort.SliceStable(questions, func(i, j int) bool {
		return CompareQuestionIDs(questions[i].QuestionID, questions[j].QuestionID) < 0
	})
}

// NormalizeQuestionID brings user entered IDs into canonical form:
// "q4" becomes "Q4", a bare "4.1" becomes "Q4.1". Anything else is
// returned trimmed, as typed, to be rejected by validation later.
func NormalizeQuestionID(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if trimmed[0] == 'Q' || trimmed[0] == 'q' {
		return "Q" + trimmed[1:]
	}
	if bareNumericIDPattern.MatchString(trimmed) {
		return "Q" + trimmed
	}
	return trimmed
}

// IsValidQuestionID reports whether the ID is in canonical form
// (leading Q followed by dot separated positive integers).
func IsValidQuestionID(questionID string) bool {
	return questionIDPattern.MatchString(questionID)
}

// NextAvailableQuestionID probes for the smallest free root level ID
// after the currently highest one.
func NextAvailableQuestionID(existing []Question) string {
	maxRoot := 0
	for _, q := range existing {
		segments := ParseQuestionIDSegments(q.QuestionID)
		if len(segments) > 0 && segments[0] > maxRoot {
			maxRoot = segments[0]
		}
	}

	counter := maxRoot + 1
	newID := fmt.Sprintf("Q%d", counter)
	for {
		idAlreadyPresent := false
		for _, q := range existing {
			if q.QuestionID == newID {
				idAlreadyPresent = true
				break
			}
		}
		if !idAlreadyPresent {
			break
		}
		counter += 1
		newID = fmt.Sprintf("Q%d", counter)
	}
	return newID
}
