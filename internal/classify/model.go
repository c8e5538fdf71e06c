package classify

import (
	"encoding/json"
	"math"
	"slices"

	"nlf-go/internal/keys"
)

// ProbabilityMap maps a context token to its smoothed conditional probability.
type ProbabilityMap[U comparable] map[U]float64

// Ambiguity holds what a Model knows about one conditioning token.
type Ambiguity[U comparable] struct {
	pRaw       float64
	posContext ProbabilityMap[U]
	negContext ProbabilityMap[U]
}

func newAmbiguity[T, U comparable](ctr *CtxCounter[T], corpus *Counter[T], to func(T) U, smoother Smoother) *Ambiguity[U] {
	return &Ambiguity[U]{
		pRaw:       ctr.BaseProbability(),
		posContext: Evidence(ctr.posContext, corpus, to, smoother),
		negContext: Evidence(ctr.negContext, corpus, to, smoother),
	}
}

// BaseProbability is the raw rate at which the event occurs.
func (a *Ambiguity[U]) BaseProbability() float64 { return a.pRaw }

// PosEvidence returns P(token | event occurred), if token was seen in a
// positive context.
func (a *Ambiguity[U]) PosEvidence(token U) (float64, bool) {
	p, ok := a.posContext[token]
	return p, ok
}

// NegEvidence returns P(token | event did not occur), if token was seen in a
// negative context.
func (a *Ambiguity[U]) NegEvidence(token U) (float64, bool) {
	p, ok := a.negContext[token]
	return p, ok
}

func localizeAmbiguity[U, V comparable](a *Ambiguity[U], convert func(U) V) *Ambiguity[V] {
	return &Ambiguity[V]{
		pRaw:       a.pRaw,
		posContext: convertKeys(a.posContext, convert),
		negContext: convertKeys(a.negContext, convert),
	}
}

func convertKeys[U, V comparable](m ProbabilityMap[U], convert func(U) V) ProbabilityMap[V] {
	out := make(ProbabilityMap[V], len(m))
	for k, v := range m {
		out[convert(k)] = v
	}
	return out
}

// LogLikelihood scores the positive and negative hypotheses for a context.
func (a *Ambiguity[U]) LogLikelihood(pUnseen float64, context []U) (float64, float64) {
	pos := math.Log2(a.pRaw)
	neg := math.Log2(1.0 - a.pRaw)
	for _, evt := range context {
		p, ok := a.posContext[evt]
		if !ok {
			p = pUnseen
		}
		n, ok := a.negContext[evt]
		if !ok {
			n = pUnseen
		}
		pos += math.Log2(p)
		neg += math.Log2(n)
	}
	return pos, neg
}

// ----------------------------------------

// Model is an immutable binary-event classifier built from a Trainer. It is
// safe for concurrent readers.
type Model[U keys.Key[U]] struct {
	size     int
	pUnseen  float64
	smoother string
	contexts map[U]*Ambiguity[U]
}

// Decision is the outcome of classifying one token.
type Decision struct {
	Pos      float64 `json:"pos"`
	Neg      float64 `json:"neg"`
	Instance bool    `json:"instance"`
}

// MarshalJSON encodes infinite scores, which arise when an event was always
// or never observed in training, as null.
func (d Decision) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Pos      *float64 `json:"pos"`
		Neg      *float64 `json:"neg"`
		Instance bool     `json:"instance"`
	}{finite(d.Pos), finite(d.Neg), d.Instance})
}

func finite(f float64) *float64 {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil
	}
	return &f
}

// NewModel builds a Model from a completed training pass, converting the
// trainer's keys with to. A nil smoother means Laplace smoothing.
func NewModel[T comparable, U keys.Key[U]](trainer *Trainer[T], to func(T) U, smoother Smoother) *Model[U] {
	if smoother == nil {
		smoother = NewAddKSmoother(1.0)
	}
	m := &Model[U]{
		size:     trainer.Size(),
		pUnseen:  trainer.PUnseen(),
		smoother: smoother.Name(),
		contexts: make(map[U]*Ambiguity[U], len(trainer.contexts)),
	}
	for k, ctr := range trainer.Contexts() {
		m.contexts[to(k)] = newAmbiguity(ctr, trainer.Seen(), to, smoother)
	}
	return m
}

// Localize re-keys m through convert. Probabilities are unchanged and m is
// not modified.
func Localize[U keys.Key[U], V keys.Key[V]](m *Model[U], convert func(U) V) *Model[V] {
	out := &Model[V]{
		size:     m.size,
		pUnseen:  m.pUnseen,
		smoother: m.smoother,
		contexts: make(map[V]*Ambiguity[V], len(m.contexts)),
	}
	for k, a := range m.contexts {
		out.contexts[convert(k)] = localizeAmbiguity(a, convert)
	}
	return out
}

// Size is the context window width used in training.
func (m *Model[U]) Size() int { return m.size }

func (m *Model[U]) PUnseen() float64 { return m.pUnseen }

// Context returns the window of up to Size tokens of seq preceding idx.
func (m *Model[U]) Context(idx int, seq []U) []U {
	return Window(m.size, idx, seq)
}

// Ambiguity returns the statistics for a conditioning token.
func (m *Model[U]) Ambiguity(token U) (*Ambiguity[U], bool) {
	a, ok := m.contexts[token]
	return a, ok
}

// Conditioning lists the conditioning tokens in key order.
func (m *Model[U]) Conditioning() []U {
	out := make([]U, 0, len(m.contexts))
	for k := range m.contexts {
		out = append(out, k)
	}
	slices.SortFunc(out, func(a, b U) int { return a.Compare(b) })
	return out
}

// LogLikelihood returns the positive and negative log2 scores for token in
// context. Tokens the model knows nothing about score (0, 1).
func (m *Model[U]) LogLikelihood(token U, context []U) (float64, float64) {
	a, ok := m.contexts[token]
	if !ok {
		return 0.0, 1.0
	}
	return a.LogLikelihood(m.pUnseen, context)
}

// IsInstance reports whether the positive score strictly beats the negative.
func (m *Model[U]) IsInstance(token U, context []U) bool {
	p, n := m.LogLikelihood(token, context)
	return p > n
}

// Classify scores token and decides in one call.
func (m *Model[U]) Classify(token U, context []U) Decision {
	p, n := m.LogLikelihood(token, context)
	return Decision{Pos: p, Neg: n, Instance: p > n}
}

// Stats returns summary statistics about the model.
func (m *Model[U]) Stats() ModelStats {
	return ModelStats{
		ContextSize:  m.size,
		Conditioning: len(m.contexts),
		PUnseen:      m.pUnseen,
		SmootherName: m.smoother,
	}
}

// ModelStats contains statistics about a model
type ModelStats struct {
	ContextSize  int     `json:"context_size"`
	Conditioning int     `json:"conditioning_tokens"`
	PUnseen      float64 `json:"p_unseen"`
	SmootherName string  `json:"smoother_name"`
}
