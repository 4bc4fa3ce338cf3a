package types

import (
	"fmt"
	"strings"
)

// Answer is the per question state of one preview session. Value shape
// depends on the question type: an option index, a list of indices, a
// string, a list of strings or a bool. Answered overrides the derived
// emptiness check when a renderer sets it explicitly.
type Answer struct {
	Value    interface{} `bson:"value" json:"value"`
	Answered *bool       `bson:"answered,omitempty" json:"answered,omitempty"`
}

// IsAnswered reports whether the answer counts as given. The explicit flag
// wins; otherwise a non-empty array or a non-blank scalar counts. Numeric
// zero and false are valid answers.
func (a Answer) IsAnswered() bool {
	if a.Answered != nil {
		return *a.Answered
	}

	switch v := a.Value.(type) {
	case nil:
		return false
	case []interface{}:
		return len(v) > 0
	case []int:
		return len(v) > 0
	case []string:
		return len(v) > 0
	case string:
		return strings.TrimSpace(v) != ""
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v)) != ""
	}
}

// SelectedOptionIndices normalizes the answer value to a list of option
// indices: scalars are wrapped, nil yields an empty list and values that
// are not index-like are dropped.
func (a Answer) SelectedOptionIndices() []int {
	switch v := a.Value.(type) {
	case nil:
		return []int{}
	case []int:
		return v
	case []interface{}:
		indices := []int{}
		for _, entry := range v {
			if idx, ok := toOptionIndex(entry); ok {
				indices = append(indices, idx)
			}
		}
		return indices
	default:
		if idx, ok := toOptionIndex(v); ok {
			return []int{idx}
		}
		return []int{}
	}
}

func toOptionIndex(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		// JSON numbers decode as float64
		return int(v), true
	case float32:
		return int(v), true
	default:
		return 0, false
	}
}
