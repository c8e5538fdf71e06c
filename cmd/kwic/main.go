// Command kwic prints every occurrence of a word in context.
package main

import (
	"errors"
	"fmt"
	"os"

	"nlf-go/internal/kwic"
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
	var window int
	var verbose bool

	flagSet := pflag.NewFlagSet("kwic", pflag.ContinueOnError)
	flagSet.SetInterspersed(false)
	flagSet.IntVarP(&window, "window", "w", kwic.DefaultWindow, "context window width")
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
	if help, _ := flagSet.GetBool("help"); help || len(args) < 2 {
		printHelp(flagSet)
		return nil
	}
	if window < 0 {
		return fmt.Errorf("invalid window %d", window)
	}

	logger, err := util.NewConsoleLogger(verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	word := args[0]
	var segments []kwic.Segment
	for _, file := range args[1:] {
		text, err := mmap.ReadText(file)
		if err != nil {
			return fmt.Errorf("cannot read %s: %w", file, err)
		}
		found := kwic.Segments(text, word, window)
		logger.Debug("Searched file", zap.String("file", file), zap.Int("occurrences", len(found)))
		segments = append(segments, found...)
	}
	return kwic.Print(os.Stdout, segments)
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Usage: kwic [options] word file...

Prints each occurrence of word with up to WIDTH words on either side,
aligned on the word.

Options:
%s`, flagSet.FlagUsages())
}
