// Package collocation ranks adjacent word pairs by how much more often they
// occur together than chance would predict, using Student's t-test.
package collocation

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"math"
	"slices"

	"nlf-go/internal/keys"
	"nlf-go/internal/wordseq"
)

// Pair is two adjacent token ids.
type Pair struct {
	First, Second keys.Word
}

// Bigram is a scored adjacent word pair.
type Bigram struct {
	First       string  `json:"first"`
	Second      string  `json:"second"`
	T           float64 `json:"t"`
	CountFirst  int     `json:"count_first"`
	CountSecond int     `json:"count_second"`
	Count       int     `json:"count"`
}

// Bigrams tokenizes text, keeping only tokens with an alphabetic character,
// and scores every adjacent pair, highest t first. Comparisons ignore case
// unless caseSensitive is set.
func Bigrams(text string, caseSensitive bool) []Bigram {
	if caseSensitive {
		return score(wordseq.New(text, keys.ExactOf, wordseq.AnyAlphabetic))
	}
	return score(wordseq.New(text, keys.Fold, wordseq.AnyAlphabetic))
}

func score[K keys.Key[K]](ws *wordseq.Sequence[K]) []Bigram {
	words := ws.Words()

	unigrams := NewSample[keys.Word]()
	bigrams := NewSample[Pair]()
	for i, w := range words {
		unigrams.Add(w)
		if i > 0 {
			bigrams.Add(Pair{First: words[i-1], Second: w})
		}
	}

	n := float64(bigrams.Total())
	scored := make([]Bigram, 0)
	for pair, c := range bigrams.Events() {
		pObs := bigrams.P(pair)
		pIndep := unigrams.P(pair.First) * unigrams.P(pair.Second)
		cl, _ := unigrams.Count(pair.First)
		cr, _ := unigrams.Count(pair.Second)
		scored = append(scored, Bigram{
			First:       ws.Text(pair.First),
			Second:      ws.Text(pair.Second),
			T:           tScore(pObs, pIndep, n, pIndep),
			CountFirst:  cl,
			CountSecond: cr,
			Count:       c,
		})
	}

	slices.SortFunc(scored, func(l, r Bigram) int {
		if c := cmp.Compare(r.T, l.T); c != 0 {
			return c
		}
		if c := cmp.Compare(l.First, r.First); c != 0 {
			return c
		}
		return cmp.Compare(l.Second, r.Second)
	})
	return scored
}

// tScore is Student's t for a sample mean against a distribution mean.
func tScore(mean, variance, size, distributionMean float64) float64 {
	return (mean - distributionMean) / math.Sqrt(variance/size)
}

// Print writes one bigram per line: t, both word counts, pair count, words.
func Print(w io.Writer, bigrams []Bigram) error {
	bw := bufio.NewWriter(w)
	for _, b := range bigrams {
		fmt.Fprintf(bw, "%2.2f\t%6d\t%6d\t%6d\t%s %s\n", b.T, b.CountFirst, b.CountSecond, b.Count, b.First, b.Second)
	}
	return bw.Flush()
}
