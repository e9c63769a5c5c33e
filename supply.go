package trie

import (
	"fmt"
	"maps"
	"slices"
)

// Supply is the letter constraint of one search: the units that may still
// be consumed as the search descends.
type Supply[U Unit] interface {
	// Draw consumes u if the current state allows it and calls next once for
	// every distinct way of doing so, restoring the state after each call.
	// It returns false as soon as next does, and true otherwise, including
	// when u cannot be drawn at all.
	Draw(u U, next func() bool) bool
	// Fork returns an independent copy of the current state.
	Fork() Supply[U]
}

// Rack is a multiset of units, such as the tiles held by a player. Every
// draw consumes one copy of a unit.
type Rack[U Unit] struct {
	counts map[U]int
	size   int
}

// NewRack creates a rack holding the given units.
func NewRack[U Unit](units ...U) *Rack[U] {
	r := &Rack[U]{counts: make(map[U]int, len(units))}
	for _, u := range units {
		r.counts[u]++
	}
	r.size = len(units)
	return r
}

// Count returns the number of copies of u left on the rack.
func (r *Rack[U]) Count(u U) int { return r.counts[u] }

// Len returns the number of units left on the rack.
func (r *Rack[U]) Len() int { return r.size }

// Draw implements Supply.
func (r *Rack[U]) Draw(u U, next func() bool) bool {
	if r.counts[u] == 0 {
		return true
	}
	r.counts[u]--
	r.size--
	cont := next()
	r.counts[u]++
	r.size++
	return cont
}

// Fork implements Supply.
func (r *Rack[U]) Fork() Supply[U] {
	return &Rack[U]{counts: maps.Clone(r.counts), size: r.size}
}

// Board is a set of dice showing one unit each, where a word is a path of
// distinct dice and every die after the first is adjacent to the previous
// one.
type Board[U Unit] struct {
	faces     []U
	neighbors [][]int
	used      []bool
	last      int
}

// NewBoard creates a square-grid board, width dice per row, with
// horizontal, vertical and diagonal adjacency. It panics if width is not
// positive or faces do not fill whole rows.
func NewBoard[U Unit](width int, faces []U) *Board[U] {
	if width <= 0 || len(faces)%width != 0 {
		panic(fmt.Sprintf("trie: invalid board: %d faces do not fill rows of width %d", len(faces), width))
	}
	return NewBoardFunc(faces, func(i, j int) bool {
		ri, ci := i/width, i%width
		rj, cj := j/width, j%width
		return absInt(ri-rj) <= 1 && absInt(ci-cj) <= 1
	})
}

// NewBoardFunc creates a board with an arbitrary adjacency relation. A die
// is never adjacent to itself.
func NewBoardFunc[U Unit](faces []U, adjacent func(i, j int) bool) *Board[U] {
	b := &Board[U]{
		faces:     slices.Clone(faces),
		neighbors: make([][]int, len(faces)),
		used:      make([]bool, len(faces)),
		last:      -1,
	}
	for i := range faces {
		for j := range faces {
			if i != j && adjacent(i, j) {
				b.neighbors[i] = append(b.neighbors[i], j)
			}
		}
	}
	return b
}

// Len returns the number of dice.
func (b *Board[U]) Len() int { return len(b.faces) }

// Draw implements Supply.
func (b *Board[U]) Draw(u U, next func() bool) bool {
	if b.last < 0 {
		for i := range b.faces {
			if !b.take(i, u, next) {
				return false
			}
		}
		return true
	}
	for _, i := range b.neighbors[b.last] {
		if !b.take(i, u, next) {
			return false
		}
	}
	return true
}

func (b *Board[U]) take(i int, u U, next func() bool) bool {
	if b.used[i] || b.faces[i] != u {
		return true
	}
	prev := b.last
	b.used[i] = true
	b.last = i
	cont := next()
	b.used[i] = false
	b.last = prev
	return cont
}

// Fork implements Supply. Adjacency is shared since it never changes.
func (b *Board[U]) Fork() Supply[U] {
	return &Board[U]{
		faces:     b.faces,
		neighbors: b.neighbors,
		used:      slices.Clone(b.used),
		last:      b.last,
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
