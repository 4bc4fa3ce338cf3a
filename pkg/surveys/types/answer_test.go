package types

import (
	"reflect"
	"testing"
)

func TestAnswerIsAnswered(t *testing.T) {
	explicitTrue := true
	explicitFalse := false

	tests := []struct {
		name     string
		answer   Answer
		expected bool
	}{
		{"nil value", Answer{Value: nil}, false},
		{"empty array", Answer{Value: []interface{}{}}, false},
		{"blank string", Answer{Value: "  "}, false},
		{"non-empty array", Answer{Value: []interface{}{0}}, true},
		{"string", Answer{Value: "x"}, true},
		{"zero index", Answer{Value: 0}, true},
		{"false value", Answer{Value: false}, true},
		{"explicit answered", Answer{Value: nil, Answered: &explicitTrue}, true},
		{"explicit unanswered", Answer{Value: "x", Answered: &explicitFalse}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if result := test.answer.IsAnswered(); result != test.expected {
				t.Errorf("expected %v, but got %v", test.expected, result)
			}
		})
	}
}

func TestAnswerSelectedOptionIndices(t *testing.T) {
	tests := []struct {
		name     string
		answer   Answer
		expected []int
	}{
		{"nil value", Answer{Value: nil}, []int{}},
		{"scalar index", Answer{Value: 1}, []int{1}},
		{"json number", Answer{Value: float64(2)}, []int{2}},
		{"index list", Answer{Value: []interface{}{0, float64(2)}}, []int{0, 2}},
		{"typed list", Answer{Value: []int{1, 3}}, []int{1, 3}},
		{"string value", Answer{Value: "free text"}, []int{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := test.answer.SelectedOptionIndices()
			if !reflect.DeepEqual(result, test.expected) {
				t.Errorf("expected %v, but got %v", test.expected, result)
			}
		})
	}
}
