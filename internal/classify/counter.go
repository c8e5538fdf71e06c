package classify

import "iter"

// Counter maintains a mapping between events of type K and a count of
// occurrences. Counts never decrease.
type Counter[K comparable] struct {
	m map[K]int
}

// NewCounter creates an empty counter.
func NewCounter[K comparable]() *Counter[K] {
	return &Counter[K]{m: make(map[K]int)}
}

// Inc records one occurrence of k.
func (c *Counter[K]) Inc(k K) {
	c.m[k]++
}

// Get returns the count of k, and false if k was never recorded.
func (c *Counter[K]) Get(k K) (int, bool) {
	v, ok := c.m[k]
	return v, ok
}

// GetOr returns the count of k or def when k was never recorded.
func (c *Counter[K]) GetOr(k K, def int) int {
	if v, ok := c.m[k]; ok {
		return v
	}
	return def
}

// Len is the number of distinct events.
func (c *Counter[K]) Len() int { return len(c.m) }

// Sum is the total of all counts.
func (c *Counter[K]) Sum() int {
	sum := 0
	for v := range c.Values() {
		sum += v
	}
	return sum
}

// Values yields every count in unspecified order.
func (c *Counter[K]) Values() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, v := range c.m {
			if !yield(v) {
				return
			}
		}
	}
}

// All yields every event with its count in unspecified order.
func (c *Counter[K]) All() iter.Seq2[K, int] {
	return func(yield func(K, int) bool) {
		for k, v := range c.m {
			if !yield(k, v) {
				return
			}
		}
	}
}
