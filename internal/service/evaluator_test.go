package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/cow-flashcards-bot/internal/repository"
)

func TestCheckAnswer(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		input    string
		want     bool
	}{
		{name: "exact", expected: "Benny", input: "Benny", want: true},
		{name: "mixed case", expected: "Benny", input: "bENNY", want: true},
		{name: "surrounding whitespace", expected: "Benny", input: " Benny  ", want: true},
		{name: "tabs and newline", expected: "Benny", input: "\tbenny\n", want: true},
		{name: "two words", expected: "Head Cow", input: "head cow", want: true},
		{name: "extra letter", expected: "Benny", input: "Bennyy", want: false},
		{name: "inner whitespace kept", expected: "Head Cow", input: "Head  Cow", want: false},
		{name: "prefix", expected: "Tomfurry", input: "Tom", want: false},
		{name: "empty", expected: "Benny", input: "", want: false},
		{name: "blank", expected: "Benny", input: "   ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckAnswer(tt.expected, tt.input))
		})
	}
}

func TestCheckAnswerAcceptsEveryCatalogName(t *testing.T) {
	cows, err := repository.NewCowRepository("")
	require.NoError(t, err)

	for _, cow := range cows.All() {
		assert.True(t, CheckAnswer(cow.Name, cow.Name), cow.Name)
		assert.True(t, CheckAnswer(cow.Name, strings.ToUpper(cow.Name)), cow.Name)
		assert.True(t, CheckAnswer(cow.Name, "  "+strings.ToLower(cow.Name)+" "), cow.Name)
	}
}
