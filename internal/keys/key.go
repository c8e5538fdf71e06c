package keys

import (
	"cmp"
	"strconv"
	"strings"
)

// Key is the capability shared by every token identity type: usable as a map
// key (equality + hashing come from comparable) and totally ordered.
type Key[K any] interface {
	comparable
	Compare(other K) int
	String() string
}

// Word is a document-local token id assigned by the interner.
type Word int

func (w Word) Compare(other Word) int { return cmp.Compare(w, other) }

func (w Word) String() string { return strconv.Itoa(int(w)) }

// Exact is a case-sensitive token key.
type Exact string

func (e Exact) Compare(other Exact) int { return strings.Compare(string(e), string(other)) }

func (e Exact) String() string { return string(e) }

// ExactOf is the identity key transform.
func ExactOf(s string) Exact { return Exact(s) }
