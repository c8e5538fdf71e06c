package classify

import (
	"iter"
)

// CtxCounter collects statistics about a binary event: how often it was
// observed, how often it occurred, and which context tokens accompanied each
// outcome.
type CtxCounter[K comparable] struct {
	positive   int
	total      int
	posContext *Counter[K] // context tokens seen when the event occurred
	negContext *Counter[K] // context tokens seen when it did not
}

// NewCtxCounter creates an empty context counter.
func NewCtxCounter[K comparable]() *CtxCounter[K] {
	return &CtxCounter[K]{
		posContext: NewCounter[K](),
		negContext: NewCounter[K](),
	}
}

// Record adds one observation of the event together with its context.
func (c *CtxCounter[K]) Record(context []K, pos bool) {
	c.total++
	side := c.negContext
	if pos {
		c.positive++
		side = c.posContext
	}
	for _, k := range context {
		side.Inc(k)
	}
}

// BaseProbability is positive/total. It is NaN when nothing was recorded.
func (c *CtxCounter[K]) BaseProbability() float64 {
	return float64(c.positive) / float64(c.total)
}

func (c *CtxCounter[K]) Total() int    { return c.total }
func (c *CtxCounter[K]) Positive() int { return c.positive }

// PosContext returns the counter of context tokens seen with positive
// observations.
func (c *CtxCounter[K]) PosContext() *Counter[K] { return c.posContext }

// NegContext returns the counter of context tokens seen with negative
// observations.
func (c *CtxCounter[K]) NegContext() *Counter[K] { return c.negContext }

// Evidence computes the smoothed probability of every token in a context
// counter given the event, against the corpus-wide token frequencies. Keys
// are converted with to.
func Evidence[K, U comparable](context, corpus *Counter[K], to func(K) U, smoother Smoother) map[U]float64 {
	sum := corpus.Sum()
	probs := make(map[U]float64, context.Len())
	for k, v := range context.All() {
		probs[to(k)] = smoother.Smooth(v, corpus.GetOr(k, 0), sum)
	}
	return probs
}

// ----------------------------------------

// Trainer maintains a CtxCounter per conditioning token plus the frequency of
// every token in the corpus.
type Trainer[K comparable] struct {
	size     int
	seen     *Counter[K]
	contexts map[K]*CtxCounter[K]
}

// NewTrainer creates a trainer whose context windows hold up to contextSize
// preceding tokens.
func NewTrainer[K comparable](contextSize int) *Trainer[K] {
	if contextSize < 0 {
		contextSize = 0
	}
	return &Trainer[K]{
		size:     contextSize,
		seen:     NewCounter[K](),
		contexts: make(map[K]*CtxCounter[K]),
	}
}

// Train runs a training pass over events. isExample selects conditioning
// tokens, untag maps a token to its trained identity and isTag marks the
// conditioning tokens that are positive examples.
func (t *Trainer[K]) Train(events []K, isExample func(K) bool, untag func(K) K, isTag func(K) bool) {
	window := make([]K, 0, t.size)
	for i, evt := range events {
		t.seen.Inc(untag(evt))
		if !isExample(evt) {
			continue
		}
		window = window[:0]
		for _, w := range Window(t.size, i, events) {
			window = append(window, untag(w))
		}
		t.counter(untag(evt)).Record(window, isTag(evt))
	}
}

// Train is a single training pass with a fresh trainer.
func Train[K comparable](events []K, isExample func(K) bool, untag func(K) K, isTag func(K) bool, contextSize int) *Trainer[K] {
	t := NewTrainer[K](contextSize)
	t.Train(events, isExample, untag, isTag)
	return t
}

func (t *Trainer[K]) Size() int { return t.size }

// Seen is the corpus-wide token frequency counter.
func (t *Trainer[K]) Seen() *Counter[K] { return t.seen }

// PUnseen is the probability given to context tokens never seen in training:
// the reciprocal of all token occurrences.
func (t *Trainer[K]) PUnseen() float64 { return 1.0 / float64(t.seen.Sum()) }

// Counter returns the context counter of conditioning token k.
func (t *Trainer[K]) Counter(k K) (*CtxCounter[K], bool) {
	c, ok := t.contexts[k]
	return c, ok
}

// Contexts yields every conditioning token with its counter.
func (t *Trainer[K]) Contexts() iter.Seq2[K, *CtxCounter[K]] {
	return func(yield func(K, *CtxCounter[K]) bool) {
		for k, c := range t.contexts {
			if !yield(k, c) {
				return
			}
		}
	}
}

func (t *Trainer[K]) counter(k K) *CtxCounter[K] {
	c, ok := t.contexts[k]
	if !ok {
		c = NewCtxCounter[K]()
		t.contexts[k] = c
	}
	return c
}

// Window returns the up to size elements of seq immediately preceding idx.
func Window[K any](size, idx int, seq []K) []K {
	start := max(size, idx) - size
	return seq[start:idx]
}
