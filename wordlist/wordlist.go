// Package wordlist reads word files into cleaned, de-duplicated word lists
// ready to be inserted into a trie.
package wordlist

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrEmpty is returned when a source holds no usable words.
var ErrEmpty = errors.New("wordlist: no words")

// Options controls how lines are turned into words.
type Options struct {
	// Normalise strips accents, so "Jürgen" is read as "jurgen".
	Normalise bool
	// CaseSensitive keeps the case of each word instead of lowercasing it.
	CaseSensitive bool
	// MinLength and MaxLength bound the word length in runes. Zero means no bound.
	MinLength, MaxLength int
}

// DefaultOptions normalises and lowercases every word and applies no length limits.
func DefaultOptions() Options {
	return Options{Normalise: true}
}

// WithoutNormalisation keeps accents as they are.
func (o Options) WithoutNormalisation() Options {
	o.Normalise = false
	return o
}

// WithCaseSensitivity keeps the case of each word.
func (o Options) WithCaseSensitivity() Options {
	o.CaseSensitive = true
	return o
}

// WithLength keeps only words of minLen to maxLen runes. A zero bound is ignored.
func (o Options) WithLength(minLen, maxLen int) Options {
	o.MinLength, o.MaxLength = minLen, maxLen
	return o
}

// Clean applies opts to a single word. It reports false when the word is
// blank, a comment, or outside the length limits.
func Clean(word string, opts Options) (string, bool) {
	word = strings.TrimSpace(word)
	if word == "" || strings.HasPrefix(word, "#") {
		return "", false
	}
	if opts.Normalise {
		t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		if s, _, err := transform.String(t, word); err == nil {
			word = s
		}
	}
	if !opts.CaseSensitive {
		word = strings.ToLower(word)
	}
	n := utf8.RuneCountInString(word)
	if opts.MinLength > 0 && n < opts.MinLength {
		return "", false
	}
	if opts.MaxLength > 0 && n > opts.MaxLength {
		return "", false
	}
	return word, true
}

// Read returns the words in r, one per line, in order of first appearance.
func Read(ctx context.Context, r io.Reader, opts Options) ([]string, error) {
	var words []string
	seen := make(map[string]struct{})

	sc := bufio.NewScanner(r)
	for line := 0; sc.Scan(); line++ {
		if line%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		w, ok := Clean(sc.Text(), opts)
		if !ok {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading words: %w", err)
	}
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return words, nil
}

// Load reads the word file at path.
func Load(ctx context.Context, path string, opts Options) (words []string, err error) {
	ctx, span := otel.Tracer("github.com/sarthakjha889/go-letter-trie/wordlist").Start(ctx, "wordlist.Load",
		trace.WithAttributes(attribute.String("path", path)))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	start := time.Now()
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	defer f.Close()

	words, err = Read(ctx, f, opts)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	span.SetAttributes(attribute.Int("words", len(words)))
	log.Info().Str("path", path).Int("words", len(words)).Dur("elapsed", time.Since(start)).Msg("wordlist-loaded")
	return words, nil
}
