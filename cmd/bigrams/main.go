// Command bigrams ranks the adjacent word pairs of each file by t-score.
package main

import (
	"errors"
	"fmt"
	"os"

	"nlf-go/internal/collocation"
	"nlf-go/internal/mmap"
	"nlf-go/internal/util"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var caseSensitive bool
	var limit int
	var verbose bool

	flagSet := pflag.NewFlagSet("bigrams", pflag.ContinueOnError)
	flagSet.SetInterspersed(false)
	flagSet.BoolVarP(&caseSensitive, "case-sensitive", "c", false, "compare words with exact case")
	flagSet.IntVarP(&limit, "limit", "n", 0, "print at most this many pairs per file (0 prints all)")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
	flagSet.BoolP("help", "h", false, "print detailed help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	args := flagSet.Args()
	if help, _ := flagSet.GetBool("help"); help || len(args) < 1 {
		printHelp(flagSet)
		return nil
	}

	logger, err := util.NewConsoleLogger(verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	for _, file := range args {
		text, err := mmap.ReadText(file)
		if err != nil {
			return fmt.Errorf("cannot read %s: %w", file, err)
		}

		bigrams := collocation.Bigrams(text, caseSensitive)
		logger.Debug("Scored pairs", zap.String("file", file), zap.Int("pairs", len(bigrams)))
		if limit > 0 && len(bigrams) > limit {
			bigrams = bigrams[:limit]
		}
		if err := collocation.Print(os.Stdout, bigrams); err != nil {
			return err
		}
	}
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Usage: bigrams [options] file...

Prints every pair of adjacent words containing a letter, most significant
first, as: t-score, first word count, second word count, pair count, pair.

Options:
%s`, flagSet.FlagUsages())
}
