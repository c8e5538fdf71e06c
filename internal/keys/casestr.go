package keys

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CaseStr is a case-insensitive string key. It holds the lowercase-mapped
// form of the text it was built from, so equality, hashing and ordering all
// operate over lowercase characters.
type CaseStr struct {
	folded string
}

// Fold builds a CaseStr from s. Each character is lowercased on its own, so
// context-sensitive rules such as the Greek final sigma never apply. It never
// fails.
func Fold(s string) CaseStr {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x80 || ('A' <= c && c <= 'Z') {
			return CaseStr{folded: foldRunes(s)}
		}
	}
	return CaseStr{folded: s}
}

func foldRunes(s string) string {
	lower := cases.Lower(language.Und)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteString(lower.String(string(r)))
	}
	return b.String()
}

// Compare orders keys lexicographically by lowercase character; when one is
// a prefix of the other the shorter key sorts first.
func (c CaseStr) Compare(other CaseStr) int {
	return strings.Compare(c.folded, other.folded)
}

func (c CaseStr) Equal(other CaseStr) bool { return c.folded == other.folded }

// String returns the lowercase form.
func (c CaseStr) String() string { return c.folded }

// Len is the byte length of the lowercase form. It can differ from the length
// of the text the key was built from: 'İ' lowercases to two runes.
func (c CaseStr) Len() int { return len(c.folded) }

func (c CaseStr) IsEmpty() bool { return c.folded == "" }
