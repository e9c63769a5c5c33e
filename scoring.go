package trie

import "maps"

// Scoring assigns a value to every unit and an extra bonus to words of a
// given length. The score of a word is the sum of its unit values plus the
// bonus for its length.
type Scoring[U Unit] interface {
	Value(u U) int
	Bonus(length int) int
}

// Table is an additive value table. Units missing from the table are worth
// zero.
type Table[U Unit] map[U]int

// Value returns the value of u.
func (tb Table[U]) Value(u U) int { return tb[u] }

// Bonus is always zero for a plain table.
func (tb Table[U]) Bonus(int) int { return 0 }

type lengthBonus[U Unit] struct {
	Scoring[U]
	bonus map[int]int
}

func (lb lengthBonus[U]) Bonus(length int) int {
	return lb.Scoring.Bonus(length) + lb.bonus[length]
}

// WithLengthBonus adds a per-length word bonus on top of base, for example
// 50 points for a word that uses all seven rack tiles.
func WithLengthBonus[U Unit](base Scoring[U], bonus map[int]int) Scoring[U] {
	return lengthBonus[U]{Scoring: base, bonus: maps.Clone(bonus)}
}

// WordScore scores a complete word under s.
func WordScore[U Unit](s Scoring[U], word []U) int {
	score := s.Bonus(len(word))
	for _, u := range word {
		score += s.Value(u)
	}
	return score
}

// EnglishTileValues returns the standard English tile values.
func EnglishTileValues() Table[rune] {
	values := Table[rune]{}
	for letters, value := range map[string]int{
		"aeilnorstu": 1,
		"dg":         2,
		"bcmp":       3,
		"fhvwy":      4,
		"k":          5,
		"jx":         8,
		"qz":         10,
	} {
		for _, r := range letters {
			values[r] = value
		}
	}
	return values
}
