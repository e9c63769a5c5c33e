package trie

import (
	"fmt"
	"math"
)

// noBound marks nodes whose subtree holds no word. Such nodes are always
// pruned.
const noBound = math.MinInt

// Annotated is a Trie together with, for every node, the best score that
// any word completed in the node's subtree can reach. It is the only input
// a Searcher accepts.
type Annotated[U Unit] struct {
	trie    *Trie[U]
	scoring Scoring[U]
	bounds  []int
	version uint64
}

// Annotate computes the subtree bounds of every node of t under s in one
// post-order pass. For a node n at depth d
//
//	bound(n) = Value(n) + max(Bonus(d) if n is a word, bound(c) for each child c)
//
// which is the exact best completion value and so never underestimates it.
// The root contributes no value of its own. Annotate must be run again
// after t changes or s changes.
func Annotate[U Unit](t *Trie[U], s Scoring[U]) *Annotated[U] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	a := &Annotated[U]{
		trie:    t,
		scoring: s,
		bounds:  make([]int, len(t.nodes)),
		version: t.version,
	}

	// Children are always appended after their parent, so walking the arena
	// backwards visits every child before its parent.
	for i := len(t.nodes) - 1; i >= 0; i-- {
		n := &t.nodes[i]
		best := noBound
		if n.isWord {
			best = s.Bonus(n.depth)
		}
		for _, e := range n.edges {
			if b := a.bounds[e.child]; b != noBound && b > best {
				best = b
			}
		}
		if best != noBound && NodeID(i) != Root {
			best += s.Value(n.unit)
		}
		a.bounds[i] = best
	}
	return a
}

// Trie returns the annotated trie.
func (a *Annotated[U]) Trie() *Trie[U] { return a.trie }

// Scoring returns the scoring the bounds were computed with.
func (a *Annotated[U]) Scoring() Scoring[U] { return a.scoring }

// Bound returns the best score reachable in the subtree of id, counting
// the unit of id itself. It reports false when the subtree holds no word.
func (a *Annotated[U]) Bound(id NodeID) (int, bool) {
	a.trie.mu.RLock()
	defer a.trie.mu.RUnlock()
	a.mustBeFresh()
	a.trie.mustNode(id)
	b := a.bounds[id]
	return b, b != noBound
}

// mustBeFresh panics when the trie changed after annotation. Searching with
// stale bounds would prune words silently. Callers hold the read lock.
func (a *Annotated[U]) mustBeFresh() {
	if a.trie.version != a.version {
		panic(fmt.Sprintf("trie: stale annotation (annotated version %d, trie version %d); call Annotate again",
			a.version, a.trie.version))
	}
}
