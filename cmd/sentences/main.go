// Command sentences trains a sentence boundary model on a tagged corpus and
// prints each following file split into sentences.
package main

import (
	"errors"
	"fmt"
	"os"

	"nlf-go/internal/mmap"
	"nlf-go/internal/segment"
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
	opts := segment.DefaultOptions()
	var width int
	var verbose bool

	flagSet := pflag.NewFlagSet("sentences", pflag.ContinueOnError)
	flagSet.SetInterspersed(false)
	flagSet.IntVarP(&opts.ContextSize, "context", "c", opts.ContextSize, "preceding tokens used as context")
	flagSet.StringVarP(&opts.TrainingMark, "mark", "m", opts.TrainingMark, "marker that tags a sentence boundary in the training file")
	flagSet.IntVarP(&width, "width", "w", segment.DefaultWidth, "output line width")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log training details to stderr")
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

	training, err := mmap.ReadText(args[0])
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", args[0], err)
	}

	segmenter := segment.NewSegmenter(opts, logger)
	model := segmenter.Train(training)
	logger.Debug("Model trained", zap.String("file", args[0]), zap.Any("stats", model.Stats()))

	for _, file := range args[1:] {
		text, err := mmap.ReadText(file)
		if err != nil {
			return fmt.Errorf("cannot read %s: %w", file, err)
		}
		if err := segment.Format(os.Stdout, segmenter.Segment(model, text), width); err != nil {
			return err
		}
	}
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Usage: sentences [options] training-file file...

Trains a sentence boundary model on training-file, where every punctuation
mark that ends a sentence is followed by the training marker (default "+").
Each remaining file is printed with the (pos,neg) log-likelihood of every
punctuation token and a blank line after each detected sentence boundary.

Options:
%s`, flagSet.FlagUsages())
}
