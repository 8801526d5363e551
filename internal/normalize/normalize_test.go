package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Tomato", "tomato"},
		{" tomato ", "tomato"},
		{"  Cashew Nuts\t", "cashew nuts"},
		{"OLIVE OIL", "olive oil"},
		{"", ""},
		{"   ", ""},
		{"pasta", "pasta"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Name(tt.input), "input %q", tt.input)
	}
}

func TestNameEquivalence(t *testing.T) {
	// Variants of the same food must collapse to one key.
	assert.Equal(t, Name("Tomato"), Name(" tomato "))
	assert.NotEqual(t, Name("tomato"), Name("tomatoes"))
}
