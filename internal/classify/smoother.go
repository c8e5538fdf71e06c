package classify

// Smoother estimates the probability of a context token given an event from
// its in-context count and its frequency across the whole corpus.
type Smoother interface {
	// Smooth computes the smoothed probability
	// contextCount: times the token appeared in this event's context
	// corpusCount: times the token appeared anywhere in the corpus
	// corpusTotal: total token occurrences in the corpus
	Smooth(contextCount, corpusCount, corpusTotal int) float64

	// Name returns the name of the smoothing algorithm
	Name() string
}

// AddKSmoother implements add-k smoothing; k = 1 is Laplace smoothing.
//
// The maximum-likelihood estimate is the number of times a token is used in
// a context divided by the number of times it is used overall. Smoothing
// adds k to the numerator and k times the corpus size to the denominator:
//
//	(v + k) / (corpus[token] + k*Sum(corpus))
type AddKSmoother struct {
	k float64
}

// NewAddKSmoother creates a new add-k smoother
func NewAddKSmoother(k float64) *AddKSmoother {
	if k <= 0 {
		k = 1.0 // Default to Laplace smoothing
	}
	return &AddKSmoother{k: k}
}

func (s *AddKSmoother) Smooth(contextCount, corpusCount, corpusTotal int) float64 {
	numerator := float64(contextCount) + s.k
	denominator := float64(corpusCount) + s.k*float64(corpusTotal)
	return numerator / denominator
}

func (s *AddKSmoother) Name() string {
	return "AddK"
}
