// Package wordgen generates made-up words that follow the letter patterns of
// a small list of real words. Large generated lists stand in for licensed
// dictionaries when building and benchmarking big tries.
package wordgen

import (
	"errors"
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// MaxLength is the longest word the generator emits, in runes.
const MaxLength = 16

const (
	start rune = 0
	end   rune = -1
)

var (
	// ErrNoExamples is returned when the example list holds no usable word.
	ErrNoExamples = errors.New("wordgen: no example words")
	// ErrDepth is returned for a context depth below one.
	ErrDepth = errors.New("wordgen: depth must be at least 1")
	// ErrExhausted is returned when the model keeps producing words it has
	// already produced.
	ErrExhausted = errors.New("wordgen: not enough distinct words")
	// ErrCount is returned when asked for a negative number of words.
	ErrCount = errors.New("wordgen: word count must not be negative")
)

type step struct {
	next  rune
	count int
}

type choices struct {
	steps []step
	total int
}

// Generator picks each next letter from the letters that followed the same
// trailing letters in the examples, weighted by how often they did.
type Generator struct {
	depth int
	rnd   *rand.Rand
	model map[string]choices
}

// New learns from examples, looking back at most depth letters.
func New(examples []string, depth int, rnd *rand.Rand) (*Generator, error) {
	if depth < 1 {
		return nil, ErrDepth
	}
	counts := make(map[string]map[rune]int)
	used := 0
	for _, w := range examples {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		used++
		marked := append(append([]rune{start}, []rune(w)...), end)
		for i := 0; i+1 < len(marked); i++ {
			for d := 1; d <= depth && d <= i+1; d++ {
				key := string(marked[i+1-d : i+1])
				if counts[key] == nil {
					counts[key] = make(map[rune]int)
				}
				counts[key][marked[i+1]]++
			}
		}
	}
	if used == 0 {
		return nil, ErrNoExamples
	}

	model := make(map[string]choices, len(counts))
	for key, next := range counts {
		var c choices
		for _, r := range slices.Sorted(maps.Keys(next)) {
			c.steps = append(c.steps, step{next: r, count: next[r]})
			c.total += next[r]
		}
		model[key] = c
	}
	return &Generator{depth: depth, rnd: rnd, model: model}, nil
}

// Next returns one generated word of 1 to MaxLength runes, or "" when the
// model repeatedly fails to produce one.
func (g *Generator) Next() string {
	for range 100 {
		if w := g.once(); w != "" && utf8.RuneCountInString(w) <= MaxLength {
			return w
		}
	}
	return ""
}

func (g *Generator) once() string {
	word := []rune{start}
	for len(word) <= MaxLength+1 {
		r, ok := g.pick(word)
		if !ok || r == end {
			break
		}
		word = append(word, r)
	}
	return string(word[1:])
}

// pick uses the longest trailing context the examples know about.
func (g *Generator) pick(word []rune) (rune, bool) {
	for d := min(g.depth, len(word)); d >= 1; d-- {
		c, ok := g.model[string(word[len(word)-d:])]
		if !ok {
			continue
		}
		n := g.rnd.IntN(c.total)
		for _, s := range c.steps {
			if n < s.count {
				return s.next, true
			}
			n -= s.count
		}
	}
	return 0, false
}

// Generate returns n distinct words in the order they were generated.
func (g *Generator) Generate(n int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrCount, n)
	}
	words := make([]string, 0, n)
	seen := make(map[string]struct{}, n)
	for attempts := 0; len(words) < n; attempts++ {
		if attempts > 100*n+1000 {
			return words, fmt.Errorf("%w: wanted %d, got %d", ErrExhausted, n, len(words))
		}
		w := g.Next()
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
		if len(words)%10_000 == 0 {
			log.Debug().Int("generated", len(words)).Str("word", w).Msg("wordgen-progress")
		}
	}
	return words, nil
}
