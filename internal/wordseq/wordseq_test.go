package wordseq

import (
	"slices"
	"testing"

	"nlf-go/internal/keys"
)

func TestClassOf(t *testing.T) {
	tests := []struct {
		ch   rune
		want CharClass
	}{
		{'a', Alphabetic},
		{'Z', Alphabetic},
		{'é', Alphabetic},
		{'1', Numeric},
		{'½', Numeric},
		{' ', Whitespace},
		{'\n', Whitespace},
		{'\x07', Control},
		{';', Other},
		{'+', Other},
	}

	for _, tt := range tests {
		if got := ClassOf(tt.ch); got != tt.want {
			t.Errorf("ClassOf(%q) = %v, want %v", tt.ch, got, tt.want)
		}
	}
}

func TestNew_Simple(t *testing.T) {
	ws := Exact("abc 123 ")

	if k, ok := ws.Key(0); !ok || k != "abc" {
		t.Fatalf("Expected id 0 = abc, got %q (%v)", k, ok)
	}
	if k, ok := ws.Key(1); !ok || k != "123" {
		t.Fatalf("Expected id 1 = 123, got %q (%v)", k, ok)
	}
	if _, ok := ws.Key(2); ok {
		t.Fatalf("Expected id 2 to be absent")
	}
	if !slices.Equal(ws.Words(), []keys.Word{0, 1}) {
		t.Fatalf("Expected words [0 1], got %v", ws.Words())
	}
}

func TestNew_Punctuation(t *testing.T) {
	ws := Exact("this is a test; 1, 2, three")

	want := []string{"this", "is", "a", "test", ";", "1", ",", "2", "three"}
	if ws.Len() != len(want) {
		t.Fatalf("Expected %d distinct ids, got %d", len(want), ws.Len())
	}
	for i, w := range want {
		if k, ok := ws.Key(keys.Word(i)); !ok || string(k) != w {
			t.Fatalf("Expected id %d = %q, got %q (%v)", i, w, k, ok)
		}
	}
	if !slices.Equal(ws.Words(), []keys.Word{0, 1, 2, 3, 4, 5, 6, 7, 6, 8}) {
		t.Fatalf("Unexpected word sequence %v", ws.Words())
	}

	if c, _ := ws.Class(4); c != Other {
		t.Fatalf("Expected ';' to be Other, got %v", c)
	}
	if c, _ := ws.Class(5); c != Numeric {
		t.Fatalf("Expected '1' to be Numeric, got %v", c)
	}
	if _, ok := ws.Class(9); ok {
		t.Fatalf("Expected class lookup for unknown id to be absent")
	}
}

func TestNew_Deterministic(t *testing.T) {
	text := "One two. Three, four!  Five\tsix\n\nseven."
	a := Exact(text)
	b := Exact(text)

	if !slices.Equal(a.Words(), b.Words()) {
		t.Fatalf("Expected identical word sequences, got %v and %v", a.Words(), b.Words())
	}
	for i := 0; i < a.Len(); i++ {
		ka, _ := a.Key(keys.Word(i))
		kb, _ := b.Key(keys.Word(i))
		if ka != kb {
			t.Fatalf("Expected id %d to match, got %q and %q", i, ka, kb)
		}
	}
}

func TestNew_RoundTrip(t *testing.T) {
	ws := New("The cat saw THE dog, the end.", keys.Fold, AcceptAll)

	for i := 0; i < ws.Len(); i++ {
		k, ok := ws.Key(keys.Word(i))
		if !ok {
			t.Fatalf("Expected key for id %d", i)
		}
		id, ok := ws.Word(k)
		if !ok || id != keys.Word(i) {
			t.Fatalf("Expected round trip of id %d, got %d (%v)", i, id, ok)
		}
	}

	the, ok := ws.Word(keys.Fold("tHe"))
	if !ok {
		t.Fatalf("Expected case-insensitive lookup to succeed")
	}
	if got := ws.Positions(keys.Fold("the")); !slices.Equal(got, []int{0, 3, 6}) {
		t.Fatalf("Expected 'the' at [0 3 6] (id %d), got %v", the, got)
	}
}

func TestNew_SkipsWhitespaceAndControl(t *testing.T) {
	ws := Exact("  a\x07\x07b \r\n ")

	if !slices.Equal(ws.Words(), []keys.Word{0, 1}) {
		t.Fatalf("Expected two tokens, got %v", ws.Words())
	}
	if ws.Text(0) != "a" || ws.Text(1) != "b" {
		t.Fatalf("Unexpected tokens %q %q", ws.Text(0), ws.Text(1))
	}
}

func TestNew_AcceptPredicate(t *testing.T) {
	ws := New("Hello, world 42 times!", keys.ExactOf, AnyAlphabetic)

	var got []string
	for _, w := range ws.Words() {
		got = append(got, ws.Text(w))
	}
	if !slices.Equal(got, []string{"Hello", "world", "times"}) {
		t.Fatalf("Unexpected accepted tokens %v", got)
	}
}

func TestNew_Empty(t *testing.T) {
	ws := Exact("")
	if ws.Len() != 0 || len(ws.Words()) != 0 {
		t.Fatalf("Expected empty sequence, got %d ids", ws.Len())
	}
	if ws.Unseen() != 0 {
		t.Fatalf("Expected unseen sentinel 0, got %d", ws.Unseen())
	}
}

func TestInsertWord(t *testing.T) {
	ws := Exact("stop.+ go.")

	dot, ok := ws.Word(".")
	if !ok {
		t.Fatalf("Expected '.' to be interned")
	}
	if got := ws.InsertWord(".", Other); got != dot {
		t.Fatalf("Expected existing id %d, got %d", dot, got)
	}

	n := ws.Len()
	comma := ws.InsertWord(",", Other)
	if comma != keys.Word(n) || ws.Len() != n+1 {
		t.Fatalf("Expected new id %d, got %d", n, comma)
	}
	if len(ws.Words()) != 4 {
		t.Fatalf("Expected InsertWord to leave the sequence alone, got %v", ws.Words())
	}
	if ws.WordOrUnseen("missing") != ws.Unseen() {
		t.Fatalf("Expected unknown key to map to the unseen sentinel")
	}
	if !ws.Is(comma, Other) {
		t.Fatalf("Expected inserted word to carry its class")
	}
}
