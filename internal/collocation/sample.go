package collocation

import (
	"iter"

	"nlf-go/internal/classify"
)

// Sample is a collection of events with a running total.
type Sample[K comparable] struct {
	counts *classify.Counter[K]
	total  int
}

// NewSample creates an empty sample.
func NewSample[K comparable]() *Sample[K] {
	return &Sample[K]{counts: classify.NewCounter[K]()}
}

// Add records one event.
func (s *Sample[K]) Add(event K) {
	s.counts.Inc(event)
	s.total++
}

// Extend records every event yielded by seq.
func (s *Sample[K]) Extend(seq iter.Seq[K]) {
	for k := range seq {
		s.Add(k)
	}
}

// Count returns the occurrences of event, and false if it never occurred.
func (s *Sample[K]) Count(event K) (int, bool) { return s.counts.Get(event) }

// P is the relative frequency of event in the sample.
func (s *Sample[K]) P(event K) float64 {
	return float64(s.counts.GetOr(event, 0)) / float64(s.total)
}

func (s *Sample[K]) Total() int { return s.total }

// Events yields every distinct event with its count.
func (s *Sample[K]) Events() iter.Seq2[K, int] { return s.counts.All() }
