package main

import (
	"context"
	"errors"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	trie "github.com/sarthakjha889/go-letter-trie"
	"github.com/sarthakjha889/go-letter-trie/wordlist"
)

// Context is shared by every command. The trie is built on first use, so
// commands that do not need the word file never read it.
type Context struct {
	ctx   context.Context
	out   io.Writer
	tk    *trie.Tokenizer
	built *trie.Trie[string]
}

func newContext(ctx context.Context, out io.Writer) *Context {
	c := &Context{ctx: ctx, out: out, tk: trie.NewTokenizer()}
	if cli.Qu {
		c.tk = trie.NewTokenizer("qu")
	}
	return c
}

// units splits a cleaned word into trie units.
func (c *Context) units(word string) []string {
	if w, ok := wordlist.Clean(word, wordlist.DefaultOptions()); ok {
		word = w
	}
	return c.tk.Split(word)
}

func (c *Context) load() (*trie.Trie[string], error) {
	if c.built != nil {
		return c.built, nil
	}
	if cli.Words == "" {
		return nil, errors.New("no word file: set --words or LETTERTRIE_WORDS")
	}
	words, err := wordlist.Load(c.ctx, cli.Words, wordlist.DefaultOptions())
	if err != nil {
		return nil, err
	}

	start := time.Now()
	split := make([][]string, len(words))
	for i, w := range words {
		split[i] = c.tk.Split(w)
	}
	var t *trie.Trie[string]
	if cli.Parallel {
		if t, err = trie.BuildParallel(c.ctx, split); err != nil {
			return nil, err
		}
	} else {
		t = trie.Build(slices.Values(split))
	}
	log.Info().
		Int("words", t.WordCount()).
		Int("nodes", t.Len()).
		Bool("parallel", cli.Parallel).
		Dur("elapsed", time.Since(start)).
		Msg("trie-built")
	c.built = t
	return t, nil
}

// scoring turns per-letter overrides and length bonuses into a Scoring over
// string units, starting from the English tile values.
func scoring(values map[string]int, bonus map[int]int) trie.Scoring[string] {
	table := trie.Table[string]{}
	for r, v := range trie.EnglishTileValues() {
		table[string(r)] = v
	}
	table["qu"] = table["q"] + table["u"]
	for k, v := range values {
		table[strings.ToLower(k)] = v
	}
	if len(bonus) == 0 {
		return table
	}
	return trie.WithLengthBonus[string](table, bonus)
}
