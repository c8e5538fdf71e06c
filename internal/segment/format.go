package segment

import (
	"bufio"
	"fmt"
	"io"
)

// DefaultWidth is the console line width used by Format.
const DefaultWidth = 80

// Format renders a segmented document for the console: tokens separated by
// spaces, wrapped near width columns, each punctuation token followed by its
// (pos,neg) scores and each sentence boundary by a blank line.
func Format(w io.Writer, result *Result, width int) error {
	if width <= 0 {
		width = DefaultWidth
	}
	bw := bufio.NewWriter(w)

	col := 0
	for _, tok := range result.Tokens {
		col += len(tok.Text) + 1
		if col > width {
			col = 0
			fmt.Fprintln(bw, tok.Text)
		} else {
			fmt.Fprint(bw, tok.Text, " ")
		}
		if d := tok.Decision; d != nil {
			fmt.Fprintf(bw, "(%v,%v) ", d.Pos, d.Neg)
			if d.Instance {
				col = 0
				fmt.Fprint(bw, "\n\n")
			}
		}
	}
	fmt.Fprintln(bw)

	return bw.Flush()
}
