package trie

import (
	"iter"
	"math"
)

// NoScore is the best score to pass to Search when nothing has been found
// yet.
const NoScore = math.MinInt

// Match is a word found by a Searcher together with its score.
type Match[U Unit] struct {
	Word  []U
	Score int
}

// Searcher enumerates the words of an annotated trie that can be spelled
// from a Supply, skipping subtrees whose bound cannot beat the running best
// score.
type Searcher[U Unit] struct {
	annotated *Annotated[U]
}

// NewSearcher creates a Searcher over a.
func NewSearcher[U Unit](a *Annotated[U]) *Searcher[U] {
	return &Searcher[U]{annotated: a}
}

type walkMode uint8

const (
	// every yielded match raises the threshold to its score
	modeImproving walkMode = iota
	// the threshold stays fixed
	modeAbove
	// no pruning, no threshold
	modeExhaustive
)

// Search yields, in depth-first order with children in unit order, every
// word that scores strictly more than the best score seen so far, starting
// from best. Each match raises the best score, so the last match is the
// best word; on ties the first word found wins. Subtrees whose bound plus
// the score accumulated above them does not exceed the best score are
// never entered.
//
// Every range over the returned sequence runs a fresh search on its own
// copy of supply. Search panics if the trie changed since annotation.
func (s *Searcher[U]) Search(supply Supply[U], best int) iter.Seq[Match[U]] {
	return s.walk(supply, best, modeImproving)
}

// Above yields every word that scores strictly more than floor, pruning
// subtrees that cannot.
func (s *Searcher[U]) Above(supply Supply[U], floor int) iter.Seq[Match[U]] {
	return s.walk(supply, floor, modeAbove)
}

// Exhaustive yields every word that can be spelled from supply without any
// pruning. It visits the same words in the same order as Above(supply,
// NoScore) and exists as a reference for the pruned searches.
func (s *Searcher[U]) Exhaustive(supply Supply[U]) iter.Seq[Match[U]] {
	return s.walk(supply, NoScore, modeExhaustive)
}

// Best returns the highest scoring word that can be spelled from supply.
func (s *Searcher[U]) Best(supply Supply[U]) (Match[U], bool) {
	var (
		best  Match[U]
		found bool
	)
	for m := range s.Search(supply, NoScore) {
		best, found = m, true
	}
	return best, found
}

func (s *Searcher[U]) walk(supply Supply[U], threshold int, mode walkMode) iter.Seq[Match[U]] {
	return func(yield func(Match[U]) bool) {
		a := s.annotated
		t := a.trie
		sc := a.scoring

		t.mu.RLock()
		locked := true
		defer func() {
			if locked {
				t.mu.RUnlock()
			}
		}()
		a.mustBeFresh()

		state := supply.Fork()
		best := threshold
		// A board can reach the same node along different dice paths.
		emitted := make(map[NodeID]struct{})

		// The lock is released while the consumer handles a match so that it
		// may call back into the trie.
		emit := func(id NodeID, score int) bool {
			m := Match[U]{Word: t.path(id), Score: score}
			t.mu.RUnlock()
			locked = false
			cont := yield(m)
			t.mu.RLock()
			locked = true
			a.mustBeFresh()
			return cont
		}

		var visit func(id NodeID, acc int) bool
		visit = func(id NodeID, acc int) bool {
			if mode != modeExhaustive {
				b := a.bounds[id]
				if b == noBound || b+acc <= best {
					return true
				}
			}
			n := &t.nodes[id]
			own := acc
			if id != Root {
				own += sc.Value(n.unit)
			}
			if n.isWord {
				score := own + sc.Bonus(n.depth)
				_, dup := emitted[id]
				if !dup && (mode == modeExhaustive || score > best) {
					emitted[id] = struct{}{}
					if mode == modeImproving {
						best = score
					}
					if !emit(id, score) {
						return false
					}
				}
			}
			for _, e := range t.nodes[id].edges {
				child := e.child
				if !state.Draw(e.unit, func() bool { return visit(child, own) }) {
					return false
				}
			}
			return true
		}
		visit(Root, 0)
	}
}
