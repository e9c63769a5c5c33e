package trie

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Summary describes one node and its subtree with plain values, so that
// nodes of different tries can be compared directly.
type Summary[U Unit] struct {
	Unit       U
	Prefix     []U
	Depth      int
	IsWord     bool
	ChildCount int
	// NodeCount, WordCount and Height cover the subtree rooted at the
	// node, the node included. A leaf has height 1.
	NodeCount int
	WordCount int
	Height    int
}

// String renders the summary on one line. The root has no unit.
func (s Summary[U]) String() string {
	var unit string
	if s.Depth > 0 {
		unit = FormatWord([]U{s.Unit})
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Node: %q %q", unit, FormatWord(s.Prefix))
	if s.IsWord {
		b.WriteString(" (word)")
	}
	fmt.Fprintf(&b, "; children = %d; nodes = %d; words = %d; depth = %d; height = %d",
		s.ChildCount, s.NodeCount, s.WordCount, s.Depth, s.Height)
	return b.String()
}

// FormatWord renders a sequence of units as text: runes, bytes and strings
// are concatenated, anything else is printed as a list.
func FormatWord[U Unit](word []U) string {
	switch w := any(word).(type) {
	case []rune:
		return string(w)
	case []byte:
		return string(w)
	case []string:
		return strings.Join(w, "")
	default:
		return fmt.Sprint(word)
	}
}

type subtreeStats struct {
	nodes, words, height []int
}

// stats returns subtree sizes for every node, computing them at most once
// per version of the Trie. Callers hold the read lock.
func (t *Trie[U]) stats() subtreeStats {
	t.statsMu.Lock()
	defer t.statsMu.Unlock()
	if t.cached.nodes == nil || t.statsVersion != t.version {
		t.cached = t.computeStats()
		t.statsVersion = t.version
	}
	return t.cached
}

func (t *Trie[U]) computeStats() subtreeStats {
	st := subtreeStats{
		nodes:  make([]int, len(t.nodes)),
		words:  make([]int, len(t.nodes)),
		height: make([]int, len(t.nodes)),
	}
	for i := len(t.nodes) - 1; i >= 0; i-- {
		n := &t.nodes[i]
		st.nodes[i] = 1
		if n.isWord {
			st.words[i] = 1
		}
		maxChild := 0
		for _, e := range n.edges {
			st.nodes[i] += st.nodes[e.child]
			st.words[i] += st.words[e.child]
			maxChild = max(maxChild, st.height[e.child])
		}
		st.height[i] = maxChild + 1
	}
	return st
}

func (t *Trie[U]) summary(id NodeID, st subtreeStats) Summary[U] {
	n := t.mustNode(id)
	return Summary[U]{
		Unit:       n.unit,
		Prefix:     t.path(id),
		Depth:      n.depth,
		IsWord:     n.isWord,
		ChildCount: len(n.edges),
		NodeCount:  st.nodes[id],
		WordCount:  st.words[id],
		Height:     st.height[id],
	}
}

// Summary describes the node id.
func (t *Trie[U]) Summary(id NodeID) Summary[U] {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.summary(id, t.stats())
}

// Find describes the node reached by prefix, if any.
func (t *Trie[U]) Find(prefix []U) (Summary[U], bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	id, ok := t.nodeAt(prefix)
	if !ok {
		return Summary[U]{}, false
	}
	return t.summary(id, t.stats()), true
}

// Dump writes one indented line per node, depth first. Nodes deeper than
// maxDepth and children beyond the first maxChildren of a node are left
// out; zero or less means no limit.
func (t *Trie[U]) Dump(w io.Writer, maxDepth, maxChildren int) error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	st := t.stats()
	bw := bufio.NewWriter(w)
	var dump func(id NodeID) error
	dump = func(id NodeID) error {
		n := &t.nodes[id]
		if _, err := fmt.Fprintf(bw, "%s%s\n", strings.Repeat("    ", n.depth), t.summary(id, st)); err != nil {
			return err
		}
		if maxDepth > 0 && n.depth >= maxDepth {
			return nil
		}
		for i, e := range n.edges {
			if maxChildren > 0 && i >= maxChildren {
				break
			}
			if err := dump(e.child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := dump(Root); err != nil {
		return err
	}
	return bw.Flush()
}
