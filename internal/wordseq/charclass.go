package wordseq

import "unicode"

// CharClass is the coarse Unicode category that drives token segmentation.
type CharClass int

const (
	Alphabetic CharClass = iota
	Numeric
	Whitespace
	Control
	Other
)

func (c CharClass) String() string {
	switch c {
	case Alphabetic:
		return "alphabetic"
	case Numeric:
		return "numeric"
	case Whitespace:
		return "whitespace"
	case Control:
		return "control"
	default:
		return "other"
	}
}

// Discardable reports whether runs of this class separate tokens without
// becoming tokens themselves.
func (c CharClass) Discardable() bool {
	return c == Whitespace || c == Control
}

// ClassOf classifies a single character. The checks are ordered, so a
// letter-number such as 'Ⅻ' is alphabetic.
func ClassOf(ch rune) CharClass {
	switch {
	case unicode.In(ch, unicode.L, unicode.Nl, unicode.Other_Alphabetic):
		return Alphabetic
	case unicode.IsNumber(ch):
		return Numeric
	case unicode.IsSpace(ch):
		return Whitespace
	case unicode.IsControl(ch):
		return Control
	default:
		return Other
	}
}
