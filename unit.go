package trie

import (
	"cmp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Unit is the atomic symbol consumed by one edge of a Trie. Any ordered type
// works: rune for plain letters, string when a single tile or die face
// carries more than one letter.
type Unit interface {
	cmp.Ordered
}

// Runes splits a word into rune units.
func Runes(word string) []rune {
	return []rune(word)
}

// Tokenizer splits words into string units, treating each configured
// combination (for example "qu") as a single unit.
type Tokenizer struct {
	// combos sorted longest first so Split can take the first match.
	combos []string
}

// NewTokenizer creates a Tokenizer for the given multi-letter combinations.
// Empty combinations are ignored.
func NewTokenizer(combos ...string) *Tokenizer {
	tk := new(Tokenizer)
	for _, c := range combos {
		if c != "" {
			tk.combos = append(tk.combos, c)
		}
	}
	sort.SliceStable(tk.combos, func(i, j int) bool {
		return len(tk.combos[i]) > len(tk.combos[j])
	})
	return tk
}

// Split returns the units of word, longest combination first, falling back
// to one rune per unit.
func (tk *Tokenizer) Split(word string) []string {
	units := make([]string, 0, utf8.RuneCountInString(word))
	for len(word) > 0 {
		matched := false
		for _, c := range tk.combos {
			if strings.HasPrefix(word, c) {
				units = append(units, c)
				word = word[len(c):]
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		_, size := utf8.DecodeRuneInString(word)
		units = append(units, word[:size])
		word = word[size:]
	}
	return units
}

// Join concatenates string units back into a word.
func Join(units []string) string {
	return strings.Join(units, "")
}
