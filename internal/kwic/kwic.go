// Package kwic builds keyword-in-context concordances.
package kwic

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"nlf-go/internal/keys"
	"nlf-go/internal/wordseq"
)

// DefaultWindow is the number of tokens shown on each side of the keyword.
const DefaultWindow = 8

// Segment is one occurrence of the keyword with its surrounding tokens.
type Segment struct {
	Left  string `json:"left"`
	Word  string `json:"word"`
	Right string `json:"right"`
}

// Segments finds every occurrence of word in text. An unknown word yields no
// segments.
func Segments(text, word string, window int) []Segment {
	if window < 0 {
		window = 0
	}
	ws := wordseq.Exact(text)
	positions := ws.Positions(keys.Exact(word))
	if len(positions) == 0 {
		return nil
	}

	words := ws.Words()
	segments := make([]Segment, 0, len(positions))
	for _, i := range positions {
		start := max(i-window, 0)
		end := min(i+window+1, len(words))
		segments = append(segments, Segment{
			Left:  join(ws, words[start:i]),
			Word:  ws.Text(words[i]),
			Right: join(ws, words[i+1:end]),
		})
	}
	return segments
}

func join(ws *wordseq.Sequence[keys.Exact], seq []keys.Word) string {
	parts := make([]string, len(seq))
	for i, w := range seq {
		parts[i] = ws.Text(w)
	}
	return strings.Join(parts, " ")
}

// Print writes one segment per line with the left context right-justified
// to the widest left context.
func Print(w io.Writer, segments []Segment) error {
	width := 0
	for _, s := range segments {
		width = max(width, len(s.Left))
	}

	bw := bufio.NewWriter(w)
	for _, s := range segments {
		fmt.Fprintf(bw, "%*s  %s  %s\n", width, s.Left, s.Word, s.Right)
	}
	return bw.Flush()
}
