package trie

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"sync"
)

// NodeID identifies a node inside the arena of one Trie. IDs are stable for
// the lifetime of the Trie and are never reused.
type NodeID int

const (
	// Root is the node of the empty prefix.
	Root NodeID = 0
	// NoNode is the parent of the root and the result of failed lookups.
	NoNode NodeID = -1
)

// Trie is a prefix tree over units of type U. All nodes are stored in an
// arena owned by the Trie; a node owns its children through the edge list
// and only refers to its parent by index.
type Trie[U Unit] struct {
	mu      sync.RWMutex
	nodes   []node[U]
	words   int
	version uint64

	// statsMu guards the subtree counts, which readers fill in lazily.
	statsMu      sync.Mutex
	cached       subtreeStats
	statsVersion uint64
}

// node is one prefix in the arena. edges is kept sorted by unit so that
// lookups are binary searches and iteration order is deterministic.
type node[U Unit] struct {
	unit   U
	parent NodeID
	depth  int
	isWord bool
	edges  []edge[U]
}

type edge[U Unit] struct {
	unit  U
	child NodeID
}

func compareEdge[U Unit](e edge[U], u U) int {
	return cmp.Compare(e.unit, u)
}

// New creates an empty trie holding only the root node.
func New[U Unit]() *Trie[U] {
	t := new(Trie[U])
	t.nodes = append(t.nodes, node[U]{parent: NoNode})
	return t
}

// Insert adds words to the Trie. Inserting a word that is already present
// leaves the Trie unchanged; inserting the empty word marks the root.
func (t *Trie[U]) Insert(words ...[]U) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, word := range words {
		t.insertInternal(word)
	}
}

// insertInternal performs the actual insertion without locking.
func (t *Trie[U]) insertInternal(word []U) {
	changed := false
	current := Root
	for _, u := range word {
		next, ok := t.child(current, u)
		if !ok {
			next = t.addChild(current, u)
			changed = true
		}
		current = next
	}
	if !t.nodes[current].isWord {
		t.nodes[current].isWord = true
		t.words++
		changed = true
	}
	if changed {
		t.version++
	}
}

func (t *Trie[U]) child(id NodeID, u U) (NodeID, bool) {
	edges := t.nodes[id].edges
	i, found := slices.BinarySearchFunc(edges, u, compareEdge[U])
	if !found {
		return NoNode, false
	}
	return edges[i].child, true
}

func (t *Trie[U]) addChild(parent NodeID, u U) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node[U]{
		unit:   u,
		parent: parent,
		depth:  t.nodes[parent].depth + 1,
	})
	edges := t.nodes[parent].edges
	i, _ := slices.BinarySearchFunc(edges, u, compareEdge[U])
	t.nodes[parent].edges = slices.Insert(edges, i, edge[U]{unit: u, child: id})
	return id
}

// nodeAt walks path from the root without locking.
func (t *Trie[U]) nodeAt(path []U) (NodeID, bool) {
	current := Root
	for _, u := range path {
		next, ok := t.child(current, u)
		if !ok {
			return NoNode, false
		}
		current = next
	}
	return current, true
}

// NodeAt returns the node reached by following path from the root.
func (t *Trie[U]) NodeAt(path []U) (NodeID, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.nodeAt(path)
}

// Contains reports whether word was inserted.
func (t *Trie[U]) Contains(word []U) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	id, ok := t.nodeAt(word)
	return ok && t.nodes[id].isWord
}

// HasPrefix reports whether prefix is the prefix of at least one inserted
// word. The empty prefix always exists.
func (t *Trie[U]) HasPrefix(prefix []U) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.nodeAt(prefix)
	return ok
}

// mustNode panics on ids that do not belong to this Trie.
func (t *Trie[U]) mustNode(id NodeID) *node[U] {
	if id < 0 || int(id) >= len(t.nodes) {
		panic(fmt.Sprintf("trie: unknown node id %d", id))
	}
	return &t.nodes[id]
}

// Unit returns the unit on the edge leading to id. The root has the zero unit.
func (t *Trie[U]) Unit(id NodeID) U {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.mustNode(id).unit
}

// IsWord reports whether the prefix ending at id is a complete word.
func (t *Trie[U]) IsWord(id NodeID) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.mustNode(id).isWord
}

// Depth returns the length of the path to id.
func (t *Trie[U]) Depth(id NodeID) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.mustNode(id).depth
}

// Parent returns the parent of id, or NoNode for the root.
func (t *Trie[U]) Parent(id NodeID) NodeID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.mustNode(id).parent
}

// Children yields the children of id in unit order.
func (t *Trie[U]) Children(id NodeID) iter.Seq2[U, NodeID] {
	return func(yield func(U, NodeID) bool) {
		t.mu.RLock()
		edges := slices.Clone(t.mustNode(id).edges)
		t.mu.RUnlock()
		for _, e := range edges {
			if !yield(e.unit, e.child) {
				return
			}
		}
	}
}

// Path rebuilds the units from the root to id by following parent links.
func (t *Trie[U]) Path(id NodeID) []U {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.path(id)
}

func (t *Trie[U]) path(id NodeID) []U {
	n := t.mustNode(id)
	path := make([]U, n.depth)
	for i := n.depth - 1; i >= 0; i-- {
		path[i] = n.unit
		n = &t.nodes[n.parent]
	}
	return path
}

// Len returns the number of nodes, including the root.
func (t *Trie[U]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.nodes)
}

// WordCount returns the number of distinct words inserted.
func (t *Trie[U]) WordCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.words
}

// Version changes every time an insertion modifies the Trie.
func (t *Trie[U]) Version() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.version
}

// Words returns up to limit words in lexicographic order. A limit of zero or
// less returns every word.
func (t *Trie[U]) Words(limit int) [][]U {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var words [][]U
	var collect func(id NodeID) bool
	collect = func(id NodeID) bool {
		n := &t.nodes[id]
		if n.isWord {
			words = append(words, t.path(id))
			if limit > 0 && len(words) >= limit {
				return false
			}
		}
		for _, e := range n.edges {
			if !collect(e.child) {
				return false
			}
		}
		return true
	}
	collect(Root)
	return words
}

// PrefixPath yields the node of every leading part of prefix, shortest
// first, and stops where prefix leaves the Trie. The root is not included.
func (t *Trie[U]) PrefixPath(prefix []U) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		t.mu.RLock()
		ids := make([]NodeID, 0, len(prefix))
		current := Root
		for _, u := range prefix {
			next, ok := t.child(current, u)
			if !ok {
				break
			}
			ids = append(ids, next)
			current = next
		}
		t.mu.RUnlock()
		for _, id := range ids {
			if !yield(id) {
				return
			}
		}
	}
}

// BreadthFirst yields every node id level by level, children in unit order.
func (t *Trie[U]) BreadthFirst() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		t.mu.RLock()
		order := make([]NodeID, 0, len(t.nodes))
		order = append(order, Root)
		for i := 0; i < len(order); i++ {
			for _, e := range t.nodes[order[i]].edges {
				order = append(order, e.child)
			}
		}
		t.mu.RUnlock()
		for _, id := range order {
			if !yield(id) {
				return
			}
		}
	}
}

// Merge inserts every word of other into t.
func (t *Trie[U]) Merge(other *Trie[U]) {
	if other == t {
		return
	}
	t.Insert(other.Words(0)...)
}
