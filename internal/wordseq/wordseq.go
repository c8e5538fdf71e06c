// Package wordseq segments text into classified tokens and interns each
// distinct token under a caller-chosen key transform.
package wordseq

import (
	"nlf-go/internal/keys"
)

// Sequence is the result of one tokenization pass: the id of every emitted
// token in source order plus the bijection between ids and canonical keys.
type Sequence[K keys.Key[K]] struct {
	words   []keys.Word     // Token ids in source order
	keys    []K             // id -> canonical key
	ids     map[K]keys.Word // canonical key -> id
	classes []CharClass     // id -> class at first allocation
}

// New tokenizes text. transform canonicalizes each token's text into its
// key; accept filters token text before it is interned. Whitespace and
// control runs never become tokens.
func New[K keys.Key[K]](text string, transform func(string) K, accept func(string) bool) *Sequence[K] {
	s := &Sequence[K]{
		ids: make(map[K]keys.Word),
	}

	start := 0
	last := Whitespace
	for i, ch := range text {
		cls := ClassOf(ch)
		if i == 0 {
			last = cls
			continue
		}
		if cls != last {
			s.flush(text[start:i], last, transform, accept)
			start = i
			last = cls
		}
	}
	if len(text) > 0 {
		s.flush(text[start:], last, transform, accept)
	}

	return s
}

// Exact tokenizes case-sensitively, accepting every token.
func Exact(text string) *Sequence[keys.Exact] {
	return New(text, keys.ExactOf, AcceptAll)
}

// AcceptAll is the accept-everything predicate.
func AcceptAll(string) bool { return true }

// AnyAlphabetic accepts tokens containing at least one alphabetic character.
func AnyAlphabetic(s string) bool {
	for _, ch := range s {
		if ClassOf(ch) == Alphabetic {
			return true
		}
	}
	return false
}

func (s *Sequence[K]) flush(run string, cls CharClass, transform func(string) K, accept func(string) bool) {
	if cls.Discardable() || !accept(run) {
		return
	}
	s.words = append(s.words, s.InsertWord(transform(run), cls))
}

// InsertWord interns key, returning its existing id when already present.
// The class is recorded only when a new id is allocated. It does not append
// to the word sequence.
func (s *Sequence[K]) InsertWord(key K, cls CharClass) keys.Word {
	if id, ok := s.ids[key]; ok {
		return id
	}
	id := keys.Word(len(s.keys))
	s.ids[key] = id
	s.keys = append(s.keys, key)
	s.classes = append(s.classes, cls)
	return id
}

// Words returns the token ids in source order. The slice must not be
// modified.
func (s *Sequence[K]) Words() []keys.Word { return s.words }

// Len is the number of distinct ids.
func (s *Sequence[K]) Len() int { return len(s.keys) }

// Unseen is the sentinel id reserved for keys this sequence never interned.
func (s *Sequence[K]) Unseen() keys.Word { return keys.Word(len(s.keys)) }

// Key returns the canonical key of id.
func (s *Sequence[K]) Key(id keys.Word) (K, bool) {
	if id < 0 || int(id) >= len(s.keys) {
		var zero K
		return zero, false
	}
	return s.keys[id], true
}

// Word returns the id of key.
func (s *Sequence[K]) Word(key K) (keys.Word, bool) {
	id, ok := s.ids[key]
	return id, ok
}

// WordOrUnseen maps key to its id, or to Unseen when absent.
func (s *Sequence[K]) WordOrUnseen(key K) keys.Word {
	if id, ok := s.ids[key]; ok {
		return id
	}
	return s.Unseen()
}

// Class returns the character class recorded for id.
func (s *Sequence[K]) Class(id keys.Word) (CharClass, bool) {
	if id < 0 || int(id) >= len(s.classes) {
		return Other, false
	}
	return s.classes[id], true
}

// Is reports whether id was interned with class cls.
func (s *Sequence[K]) Is(id keys.Word, cls CharClass) bool {
	c, ok := s.Class(id)
	return ok && c == cls
}

// Text renders id for display, or the empty string when absent.
func (s *Sequence[K]) Text(id keys.Word) string {
	if k, ok := s.Key(id); ok {
		return k.String()
	}
	return ""
}

// Positions returns every index in the word sequence holding key.
func (s *Sequence[K]) Positions(key K) []int {
	id, ok := s.ids[key]
	if !ok {
		return nil
	}
	var positions []int
	for i, w := range s.words {
		if w == id {
			positions = append(positions, i)
		}
	}
	return positions
}
