package types

import (
	"reflect"
	"testing"
)

func TestParseQuestionIDSegments(t *testing.T) {
	tests := []struct {
		input    string
		expected []int
	}{
		{"Q1", []int{1}},
		{"q1.2", []int{1, 2}},
		{"Q1.2.3", []int{1, 2, 3}},
		{"Q1.10", []int{1, 10}},
		{"3.4", []int{3, 4}},
		{"Qx.y", []int{}},
		{"", []int{}},
		{"Q1.a.3", []int{1, 3}},
	}

	for _, test := range tests {
		result := ParseQuestionIDSegments(test.input)
		if !reflect.DeepEqual(result, test.expected) {
			t.Errorf("expected %v for input %q, but got %v", test.expected, test.input, result)
		}
	}
}

func TestCompareQuestionIDs(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"Q1", "Q1", 0},
		{"Q1", "Q2", -1},
		{"Q2", "Q1", 1},
		{"Q1", "Q1.1", -1},
		{"Q1.1", "Q1", 1},
		{"Q1.2", "Q1.10", -1},
		{"Q1.9", "Q1.10", -1},
		{"Q1.10", "Q1.2", 1},
		{"bogus", "Q1", -1},
		{"Q1", "bogus", 1},
	}

	for _, test := range tests {
		result := CompareQuestionIDs(test.a, test.b)
		if result != test.expected {
			t.Errorf("expected %d for compare(%q, %q), but got %d", test.expected, test.a, test.b, result)
		}
	}
}

func TestQuestionIDDepth(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"Q1", 0},
		{"Q1.2", 1},
		{"Q1.2.3", 2},
		{"bogus", 0},
		{"", 0},
	}

	for _, test := range tests {
		if result := QuestionIDDepth(test.input); result != test.expected {
			t.Errorf("expected depth %d for %q, but got %d", test.expected, test.input, result)
		}
	}
}

func TestSortQuestionsByID(t *testing.T) {
	questions := []Question{
		{QuestionID: "Q2"},
		{QuestionID: "Q1.10"},
		{QuestionID: "Q1"},
		{QuestionID: "Q1.2"},
		{QuestionID: "Q1.2.1"},
	}

	SortQuestionsByID(questions)

	expectedOrder := []string{"Q1", "Q1.2", "Q1.2.1", "Q1.10", "Q2"}
	for i, q := range questions {
		if q.QuestionID != expectedOrder[i] {
			t.Errorf("expected %s at position %d, but got %s", expectedOrder[i], i, q.QuestionID)
		}
	}
}

func TestNormalizeQuestionID(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Q4", "Q4"},
		{"q4", "Q4"},
		{"4", "Q4"},
		{"4.1", "Q4.1"},
		{"  q2.3 ", "Q2.3"},
		{"", ""},
		{"foo", "foo"},
	}

	for _, test := range tests {
		if result := NormalizeQuestionID(test.input); result != test.expected {
			t.Errorf("expected %q for input %q, but got %q", test.expected, test.input, result)
		}
	}
}

func TestIsValidQuestionID(t *testing.T) {
	valid := []string{"Q1", "Q1.2", "Q10.2.33"}
	for _, id := range valid {
		if !IsValidQuestionID(id) {
			t.Errorf("expected %q to be valid", id)
		}
	}

	invalid := []string{"", "q1", "1.2", "Q", "Q1.", "Q1..2", "Q1.a"}
	for _, id := range invalid {
		if IsValidQuestionID(id) {
			t.Errorf("expected %q to be invalid", id)
		}
	}
}

func TestNextAvailableQuestionID(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		if id := NextAvailableQuestionID(nil); id != "Q1" {
			t.Errorf("unexpected id: %s", id)
		}
	})

	t.Run("after highest root", func(t *testing.T) {
		questions := []Question{
			{QuestionID: "Q1"},
			{QuestionID: "Q2.1"},
			{QuestionID: "Q3"},
		}
		if id := NextAvailableQuestionID(questions); id != "Q4" {
			t.Errorf("unexpected id: %s", id)
		}
	})
}
