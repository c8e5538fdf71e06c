package collocation

import (
	"bytes"
	"math"
	"slices"
	"strings"
	"testing"
)

func TestSample(t *testing.T) {
	s := NewSample[string]()
	s.Extend(slices.Values([]string{"a", "b", "a", "c"}))

	if s.Total() != 4 {
		t.Fatalf("Expected total 4, got %d", s.Total())
	}
	if s.P("a") != 0.5 || s.P("z") != 0 {
		t.Fatalf("Unexpected probabilities P(a)=%f P(z)=%f", s.P("a"), s.P("z"))
	}
	if c, ok := s.Count("b"); !ok || c != 1 {
		t.Fatalf("Expected b once, got %d (%v)", c, ok)
	}
}

func TestTScore(t *testing.T) {
	got := tScore(0.5, 0.25, 4, 0.25)
	if math.Abs(got-1.0) > 1e-12 {
		t.Fatalf("Expected t = 1, got %f", got)
	}
}

func TestBigrams_Ranking(t *testing.T) {
	text := "New York is big. I like New York. new york, new york! The city is big."
	scored := Bigrams(text, false)

	if len(scored) == 0 {
		t.Fatalf("Expected scored bigrams")
	}
	// Pairs of singletons score highest; equal scores order by text.
	if scored[0].First != "i" || scored[0].Second != "like" {
		t.Fatalf("Expected 'i like' first, got %q %q", scored[0].First, scored[0].Second)
	}

	idx := slices.IndexFunc(scored, func(b Bigram) bool { return b.First == "new" && b.Second == "york" })
	if idx < 0 {
		t.Fatalf("Expected case-insensitive 'new york' pair")
	}
	ny := scored[idx]
	if ny.Count != 4 || ny.CountFirst != 4 || ny.CountSecond != 4 {
		t.Fatalf("Unexpected counts %+v", ny)
	}
	// 16 words, 15 pairs: (4/15 - 1/16) / sqrt(1/16 / 15)
	if math.Abs(ny.T-49/math.Sqrt(240)) > 1e-9 {
		t.Fatalf("Expected t = %f, got %f", 49/math.Sqrt(240), ny.T)
	}
	for i := 1; i < len(scored); i++ {
		if scored[i].T > scored[i-1].T {
			t.Fatalf("Expected decreasing t at %d", i)
		}
	}
	for _, b := range scored {
		if b.First == "." || b.Second == "," {
			t.Fatalf("Expected punctuation to be filtered, got %+v", b)
		}
	}
}

func TestBigrams_CaseSensitive(t *testing.T) {
	scored := Bigrams("New York new york", true)

	var pairs []string
	for _, b := range scored {
		pairs = append(pairs, b.First+" "+b.Second)
	}
	slices.Sort(pairs)
	if !slices.Equal(pairs, []string{"New York", "York new", "new york"}) {
		t.Fatalf("Unexpected case-sensitive pairs %v", pairs)
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	err := Print(&buf, []Bigram{{First: "new", Second: "york", T: 1.5, CountFirst: 2, CountSecond: 3, Count: 2}})
	if err != nil {
		t.Fatalf("Failed to print: %v", err)
	}
	if got := buf.String(); !strings.HasPrefix(got, "1.50\t     2\t     3\t     2\tnew york") {
		t.Fatalf("Unexpected output %q", got)
	}
}
