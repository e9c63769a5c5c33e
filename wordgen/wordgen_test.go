package wordgen

import (
	"math/rand/v2"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var examples = []string{
	"about", "above", "across", "after", "again", "against", "answer", "around",
	"before", "began", "being", "below", "better", "between", "break", "bring",
	"carry", "center", "change", "children", "close", "color", "consider", "create",
	"under", "until", "water", "where", "which", "while", "white", "whole",
}

func TestNewErrors(t *testing.T) {
	_, err := New(nil, 2, rand.New(rand.NewPCG(1, 1)))
	assert.ErrorIs(t, err, ErrNoExamples)

	_, err = New([]string{" ", ""}, 2, rand.New(rand.NewPCG(1, 1)))
	assert.ErrorIs(t, err, ErrNoExamples)

	_, err = New(examples, 0, rand.New(rand.NewPCG(1, 1)))
	assert.ErrorIs(t, err, ErrDepth)
}

func TestGenerateIsDeterministic(t *testing.T) {
	gen := func() []string {
		g, err := New(examples, 2, rand.New(rand.NewPCG(42, 7)))
		require.NoError(t, err)
		words, err := g.Generate(200)
		require.NoError(t, err)
		return words
	}
	assert.Equal(t, gen(), gen())
}

func TestGeneratedWordsFollowExamples(t *testing.T) {
	g, err := New(examples, 2, rand.New(rand.NewPCG(3, 4)))
	require.NoError(t, err)
	words, err := g.Generate(300)
	require.NoError(t, err)
	require.Len(t, words, 300)

	letters := strings.Join(examples, "")
	seen := make(map[string]bool)
	for _, w := range words {
		assert.False(t, seen[w], "duplicate %q", w)
		seen[w] = true

		n := utf8.RuneCountInString(w)
		assert.True(t, n >= 1 && n <= MaxLength, w)
		for _, r := range w {
			assert.True(t, strings.ContainsRune(letters, r), "%q has a letter no example has", w)
		}
	}
}

func TestGenerateExhausted(t *testing.T) {
	// "ab" is the only word this model can produce.
	g, err := New([]string{"ab"}, 2, rand.New(rand.NewPCG(5, 6)))
	require.NoError(t, err)

	words, err := g.Generate(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"ab"}, words)

	words, err = g.Generate(2)
	assert.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, []string{"ab"}, words)
}

func TestGenerateCount(t *testing.T) {
	g, err := New(examples, 2, rand.New(rand.NewPCG(8, 9)))
	require.NoError(t, err)

	words, err := g.Generate(0)
	require.NoError(t, err)
	assert.Empty(t, words)

	_, err = g.Generate(-1)
	assert.ErrorIs(t, err, ErrCount)
}
