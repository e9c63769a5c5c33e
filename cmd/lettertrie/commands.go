package main

import (
	"bufio"
	"fmt"
	"iter"
	"math/rand/v2"
	"strings"

	trie "github.com/sarthakjha889/go-letter-trie"
	"github.com/sarthakjha889/go-letter-trie/wordgen"
	"github.com/sarthakjha889/go-letter-trie/wordlist"
)

type StatsCmd struct{}

func (cmd *StatsCmd) Run(c *Context) error {
	t, err := c.load()
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, t.Summary(trie.Root))
	return nil
}

type FindCmd struct {
	Words []string `arg:"" help:"Words or prefixes to look up."`
}

func (cmd *FindCmd) Run(c *Context) error {
	t, err := c.load()
	if err != nil {
		return err
	}
	for _, w := range cmd.Words {
		s, ok := t.Find(c.units(w))
		switch {
		case !ok:
			fmt.Fprintf(c.out, "%s: not found\n", w)
		case s.IsWord:
			fmt.Fprintf(c.out, "%s: word; %s\n", w, s)
		default:
			fmt.Fprintf(c.out, "%s: prefix; %s\n", w, s)
		}
	}
	return nil
}

type ListCmd struct {
	Limit int `help:"Stop after this many words; 0 lists them all." default:"0"`
}

func (cmd *ListCmd) Run(c *Context) error {
	t, err := c.load()
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(c.out)
	for _, w := range t.Words(cmd.Limit) {
		fmt.Fprintln(bw, trie.Join(w))
	}
	return bw.Flush()
}

// ScoreFlags are the scoring and reporting options shared by rack and dice.
type ScoreFlags struct {
	Values    map[string]int `help:"Letter values overriding the English tile values, as k=v pairs." mapsep:","`
	Bonus     map[int]int    `help:"Extra points by word length, as length=points pairs." mapsep:","`
	Floor     int            `help:"List only words scoring more than this." default:"0"`
	Improving bool           `help:"List only words that beat every word listed before them."`
	Best      bool           `help:"Print only the best word."`
}

func (f ScoreFlags) report(c *Context, t *trie.Trie[string], supply trie.Supply[string]) {
	s := trie.NewSearcher(trie.Annotate(t, scoring(f.Values, f.Bonus)))
	if f.Best {
		if m, ok := s.Best(supply); ok {
			fmt.Fprintf(c.out, "%s %d\n", trie.Join(m.Word), m.Score)
		} else {
			fmt.Fprintln(c.out, "no words")
		}
		return
	}

	var matches iter.Seq[trie.Match[string]]
	if f.Improving {
		matches = s.Search(supply, f.Floor)
	} else {
		matches = s.Above(supply, f.Floor)
	}
	for m := range matches {
		fmt.Fprintf(c.out, "%s %d\n", trie.Join(m.Word), m.Score)
	}
}

type RackCmd struct {
	Letters string `arg:"" help:"Tiles on the rack, such as \"carde\"."`
	ScoreFlags `embed:""`
}

func (cmd *RackCmd) Run(c *Context) error {
	t, err := c.load()
	if err != nil {
		return err
	}
	cmd.report(c, t, trie.NewRack(c.units(cmd.Letters)...))
	return nil
}

type DiceCmd struct {
	Faces string `arg:"" help:"Die faces row by row, as letters (\"catr\") or comma separated (\"qu,i,t,e\")."`
	Width int    `help:"Dice per row." default:"4"`
	ScoreFlags `embed:""`
}

func (cmd *DiceCmd) Run(c *Context) error {
	var faces []string
	if strings.Contains(cmd.Faces, ",") {
		for _, f := range strings.Split(cmd.Faces, ",") {
			f = strings.ToLower(strings.TrimSpace(f))
			if units := c.tk.Split(f); len(units) != 1 {
				return fmt.Errorf("die face %q is not a single unit; multi-letter faces need --qu", f)
			}
			faces = append(faces, f)
		}
	} else {
		faces = c.units(cmd.Faces)
	}
	if cmd.Width <= 0 || len(faces) == 0 || len(faces)%cmd.Width != 0 {
		return fmt.Errorf("%d faces do not fill rows of %d dice", len(faces), cmd.Width)
	}

	t, err := c.load()
	if err != nil {
		return err
	}
	cmd.report(c, t, trie.NewBoard(cmd.Width, faces))
	return nil
}

type GenerateCmd struct {
	Examples string `arg:"" type:"existingfile" help:"Real words to imitate, one per line."`
	Count    int    `help:"Number of distinct words to generate." default:"1000"`
	Depth    int    `help:"Letters of context used to pick the next letter." default:"3"`
	Seed     uint64 `help:"Random seed." default:"1"`
}

func (cmd *GenerateCmd) Run(c *Context) error {
	examples, err := wordlist.Load(c.ctx, cmd.Examples, wordlist.DefaultOptions())
	if err != nil {
		return err
	}
	g, err := wordgen.New(examples, cmd.Depth, rand.New(rand.NewPCG(cmd.Seed, cmd.Seed)))
	if err != nil {
		return err
	}
	words, err := g.Generate(cmd.Count)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(c.out)
	for _, w := range words {
		fmt.Fprintln(bw, w)
	}
	return bw.Flush()
}

type DumpCmd struct {
	Depth    int `help:"Deepest level to print; 0 prints every level." default:"3"`
	Children int `help:"Children to print per node; 0 prints them all." default:"0"`
}

func (cmd *DumpCmd) Run(c *Context) error {
	t, err := c.load()
	if err != nil {
		return err
	}
	return t.Dump(c.out, cmd.Depth, cmd.Children)
}
