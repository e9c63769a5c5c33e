package trie

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var smallWords = []string{"cat", "car", "card", "care", "dog"}

func runeTrie(words ...string) *Trie[rune] {
	t := New[rune]()
	for _, w := range words {
		t.Insert(Runes(w))
	}
	return t
}

func randomWords(rnd *rand.Rand, n int, alphabet string) []string {
	letters := []rune(alphabet)
	words := make([]string, n)
	for i := range words {
		w := make([]rune, 1+rnd.IntN(6))
		for j := range w {
			w[j] = letters[rnd.IntN(len(letters))]
		}
		words[i] = string(w)
	}
	return words
}

func TestLookup(t *testing.T) {
	tr := runeTrie(smallWords...)

	t.Run("Contains", func(t *testing.T) {
		assert.True(t, tr.Contains(Runes("car")))
		assert.True(t, tr.Contains(Runes("card")))
		assert.False(t, tr.Contains(Runes("ca")))
		assert.False(t, tr.Contains(Runes("cars")))
		assert.False(t, tr.Contains(Runes("")))
	})

	t.Run("HasPrefix", func(t *testing.T) {
		assert.True(t, tr.HasPrefix(Runes("ca")))
		assert.True(t, tr.HasPrefix(Runes("card")))
		assert.True(t, tr.HasPrefix(Runes("")))
		assert.False(t, tr.HasPrefix(Runes("cb")))
		assert.False(t, tr.HasPrefix(Runes("xyz")))
	})

	t.Run("NodeAt", func(t *testing.T) {
		id, ok := tr.NodeAt(Runes("car"))
		require.True(t, ok)
		assert.Equal(t, 'r', tr.Unit(id))
		assert.Equal(t, 3, tr.Depth(id))
		assert.True(t, tr.IsWord(id))
		assert.Equal(t, "car", string(tr.Path(id)))

		parent := tr.Parent(id)
		assert.Equal(t, "ca", string(tr.Path(parent)))
		assert.Equal(t, NoNode, tr.Parent(Root))

		_, ok = tr.NodeAt(Runes("cow"))
		assert.False(t, ok)
	})

	t.Run("Children in unit order", func(t *testing.T) {
		id, _ := tr.NodeAt(Runes("car"))
		var units []rune
		for u, child := range tr.Children(id) {
			units = append(units, u)
			assert.Equal(t, id, tr.Parent(child))
		}
		assert.Equal(t, []rune{'d', 'e'}, units)
	})
}

func TestEmptyWord(t *testing.T) {
	tr := runeTrie(smallWords...)
	before := tr.Len()
	tr.Insert(Runes(""))

	assert.True(t, tr.Contains(Runes("")))
	assert.True(t, tr.IsWord(Root))
	assert.Equal(t, before, tr.Len())
	for _, w := range smallWords {
		assert.True(t, tr.Contains(Runes(w)), w)
	}
	assert.False(t, tr.Contains(Runes("ca")))
}

func TestInsertIsIdempotent(t *testing.T) {
	once := runeTrie(smallWords...)
	twice := runeTrie(append(slices.Clone(smallWords), smallWords...)...)

	assert.Equal(t, once.Len(), twice.Len())
	assert.Equal(t, once.WordCount(), twice.WordCount())

	version := twice.Version()
	twice.Insert(Runes("card"))
	assert.Equal(t, version, twice.Version(), "re-inserting a word must not change the trie")
	twice.Insert(Runes("ca"))
	assert.NotEqual(t, version, twice.Version(), "marking a prefix as a word changes the trie")
}

func TestRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	words := randomWords(rnd, 500, "abcde")
	tr := runeTrie(words...)

	inserted := make(map[string]bool)
	for _, w := range words {
		inserted[w] = true
		require.True(t, tr.Contains(Runes(w)), w)
		// Every prefix of a word is a prefix of the trie.
		r := Runes(w)
		for i := range len(r) + 1 {
			require.True(t, tr.HasPrefix(r[:i]), string(r[:i]))
		}
	}
	for _, w := range randomWords(rnd, 500, "abcdef") {
		assert.Equal(t, inserted[w], tr.Contains(Runes(w)), w)
	}
	assert.Equal(t, len(inserted), tr.WordCount())
}

func TestWords(t *testing.T) {
	tr := runeTrie(smallWords...)

	var got []string
	for _, w := range tr.Words(0) {
		got = append(got, string(w))
	}
	if diff := cmp.Diff([]string{"car", "card", "care", "cat", "dog"}, got); diff != "" {
		t.Errorf("Words mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, tr.Words(2), 2)
}

func TestBreadthFirst(t *testing.T) {
	tr := runeTrie("ab", "b", "ac")

	var prefixes []string
	for id := range tr.BreadthFirst() {
		prefixes = append(prefixes, string(tr.Path(id)))
	}
	assert.Equal(t, []string{"", "a", "b", "ab", "ac"}, prefixes)
}

func TestPrefixPath(t *testing.T) {
	tr := runeTrie(smallWords...)

	var prefixes []string
	for id := range tr.PrefixPath(Runes("cards")) {
		prefixes = append(prefixes, string(tr.Path(id)))
	}
	assert.Equal(t, []string{"c", "ca", "car", "card"}, prefixes)

	n := 0
	for range tr.PrefixPath(Runes("xyz")) {
		n++
	}
	assert.Zero(t, n)

	for id := range tr.PrefixPath(Runes("car")) {
		assert.Equal(t, "c", string(tr.Path(id)))
		break
	}
}

func TestMerge(t *testing.T) {
	a := runeTrie("cat", "car")
	b := runeTrie("card", "care", "dog", "cat")
	a.Merge(b)
	a.Merge(a)

	want := runeTrie(smallWords...)
	assert.Equal(t, want.Len(), a.Len())
	assert.Equal(t, want.Words(0), a.Words(0))
}

func TestUnknownNodePanics(t *testing.T) {
	tr := runeTrie("a")
	assert.Panics(t, func() { tr.Unit(NodeID(42)) })
	assert.Panics(t, func() { tr.Path(NoNode) })
}

func TestStringUnits(t *testing.T) {
	tk := NewTokenizer("qu")
	tr := New[string]()
	tr.Insert(tk.Split("queen"), tk.Split("quiz"))

	assert.True(t, tr.Contains([]string{"qu", "e", "e", "n"}))
	assert.False(t, tr.Contains([]string{"q", "u", "e", "e", "n"}))
	assert.Equal(t, 1, tr.Summary(Root).ChildCount)
}

// BenchmarkInsert measures building a trie from 10,000 random short words.
func BenchmarkInsert(b *testing.B) {
	rnd := rand.New(rand.NewPCG(3, 4))
	words := randomWords(rnd, 10_000, "abcdefghijklmnopqrstuvwxyz")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr := New[rune]()
		for _, w := range words {
			tr.Insert(Runes(w))
		}
	}
}

func BenchmarkContains(b *testing.B) {
	rnd := rand.New(rand.NewPCG(3, 4))
	words := randomWords(rnd, 10_000, "abcdefghijklmnopqrstuvwxyz")
	tr := runeTrie(words...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Contains(Runes(words[i%len(words)]))
	}
}
