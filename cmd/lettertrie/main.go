package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var cli struct {
	LogLevel string `help:"Log level." enum:"trace,debug,info,warn,error" default:"info" env:"LETTERTRIE_LOG_LEVEL"`
	Words    string `help:"Word file, one word per line." env:"LETTERTRIE_WORDS"`
	Parallel bool   `help:"Build the trie concurrently, one group per first letter."`
	Qu       bool   `help:"Treat \"qu\" as a single unit, like the Qu die of a word-search game."`

	Stats    StatsCmd    `cmd:"" help:"Describe the trie built from the word file."`
	Find     FindCmd     `cmd:"" help:"Look up words and prefixes."`
	List     ListCmd     `cmd:"" name:"words" help:"List the words of the trie in order."`
	Rack     RackCmd     `cmd:"" help:"Find the words that can be made from a rack of tiles."`
	Dice     DiceCmd     `cmd:"" help:"Find the words that can be traced on a board of dice."`
	Generate GenerateCmd `cmd:"" help:"Generate made-up words that resemble a list of real words."`
	Dump     DumpCmd     `cmd:"" help:"Print the trie as an indented tree."`
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	parser, err := kong.New(&cli,
		kong.Name("lettertrie"),
		kong.Description("Build a letter trie from a word list and search it with racks and boards."),
		kong.UsageOnError(),
		kong.Writers(out, os.Stderr),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cli.LogLevel)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	return kctx.Run(newContext(ctx, out))
}
