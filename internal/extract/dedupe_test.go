package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeSkills(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "Exact duplicates removed",
			input:    []string{"Go", "Rust", "Go", "Kafka", "Rust"},
			expected: []string{"Go", "Rust", "Kafka"},
		},
		{
			name:     "First occurrence order preserved",
			input:    []string{"Kafka", "Go", "Kafka", "Go"},
			expected: []string{"Kafka", "Go"},
		},
		{
			name:     "Case variants stay distinct",
			input:    []string{"Python", "python", "PYTHON"},
			expected: []string{"Python", "python", "PYTHON"},
		},
		{
			name:     "Empty input",
			input:    nil,
			expected: []string{},
		},
		{
			name:     "No duplicates unchanged",
			input:    []string{"Go", "Rust"},
			expected: []string{"Go", "Rust"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeSkills(tt.input))
		})
	}
}

func TestDedupeSkillsDoesNotMutateInput(t *testing.T) {
	input := []string{"Go", "Go", "Rust"}
	_ = DedupeSkills(input)
	assert.Equal(t, []string{"Go", "Go", "Rust"}, input)
}
