package trie

import (
	"context"
	"iter"
	"maps"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

// Build creates a trie from a sequence of words.
func Build[U Unit](words iter.Seq[[]U]) *Trie[U] {
	t := New[U]()
	t.mu.Lock()
	defer t.mu.Unlock()
	for word := range words {
		t.insertInternal(word)
	}
	return t
}

// BuildParallel groups words by their first unit, builds one private trie
// per group concurrently and merges the groups, in unit order, into the
// returned trie. No trie is written by more than one goroutine. The result
// answers every query exactly like a trie built with Build.
func BuildParallel[U Unit](ctx context.Context, words [][]U) (*Trie[U], error) {
	ctx, span := otel.Tracer("github.com/sarthakjha889/go-letter-trie").Start(ctx, "trie.BuildParallel")
	defer span.End()
	span.SetAttributes(attribute.Int("trie.input_words", len(words)))

	groups := make(map[U][][]U)
	var withEmpty bool
	for _, w := range words {
		if len(w) == 0 {
			withEmpty = true
			continue
		}
		groups[w[0]] = append(groups[w[0]], w)
	}
	firsts := slices.Sorted(maps.Keys(groups))

	parts := make([]*Trie[U], len(firsts))
	g, ctx := errgroup.WithContext(ctx)
	for i, first := range firsts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			parts[i] = Build(slices.Values(groups[first]))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	t := New[U]()
	if withEmpty {
		t.Insert(nil)
	}
	for _, part := range parts {
		t.Merge(part)
	}
	span.SetAttributes(attribute.Int("trie.nodes", t.Len()))
	return t, nil
}
