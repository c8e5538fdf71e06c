// Package segment trains a sentence-boundary classifier from a corpus whose
// sentence-ending punctuation is tagged, and applies it to untagged text.
//
// In the training corpus every punctuation token that ends a sentence
// carries the training mark, e.g. "The cat sat.+ It ran." tags the first
// period as a boundary and the second as a non-boundary.
package segment

import (
	"strings"

	"nlf-go/internal/classify"
	"nlf-go/internal/keys"
	"nlf-go/internal/wordseq"

	"go.uber.org/zap"
)

const (
	DefaultContextSize  = 2
	DefaultTrainingMark = "+"
)

// Options configures training.
type Options struct {
	ContextSize  int
	TrainingMark string
	Smoother     classify.Smoother
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		ContextSize:  DefaultContextSize,
		TrainingMark: DefaultTrainingMark,
		Smoother:     classify.NewAddKSmoother(1.0),
	}
}

// Model is a trained sentence-boundary classifier keyed by token text, the
// form shared by every document's token-id space.
type Model struct {
	classifier     *classify.Model[keys.Exact]
	trainingTokens int
	boundaries     int
}

// Classifier exposes the underlying binary-event model.
func (m *Model) Classifier() *classify.Model[keys.Exact] { return m.classifier }

// Stats returns summary statistics about the model.
func (m *Model) Stats() ModelStats {
	marks := m.classifier.Conditioning()
	names := make([]string, len(marks))
	for i, k := range marks {
		names[i] = k.String()
	}
	return ModelStats{
		ModelStats:     m.classifier.Stats(),
		Punctuation:    names,
		TrainingTokens: m.trainingTokens,
		Boundaries:     m.boundaries,
	}
}

// ModelStats describes a trained model.
type ModelStats struct {
	classify.ModelStats
	Punctuation    []string `json:"punctuation"`
	TrainingTokens int      `json:"training_tokens"`
	Boundaries     int      `json:"tagged_boundaries"`
}

// Segmenter trains models and segments documents with them.
type Segmenter struct {
	opts   Options
	logger *zap.Logger
}

// NewSegmenter creates a segmenter. Zero-valued options take their defaults.
func NewSegmenter(opts Options, logger *zap.Logger) *Segmenter {
	if opts.ContextSize <= 0 {
		opts.ContextSize = DefaultContextSize
	}
	if opts.TrainingMark == "" {
		opts.TrainingMark = DefaultTrainingMark
	}
	if opts.Smoother == nil {
		opts.Smoother = classify.NewAddKSmoother(1.0)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Segmenter{opts: opts, logger: logger}
}

// Train builds a model from a tagged corpus.
func (s *Segmenter) Train(text string) *Model {
	ws := wordseq.Exact(text)
	mark := s.opts.TrainingMark

	// Map every punctuation token ending in the mark onto its spelling without
	// that trailing mark.
	untagged := make(map[keys.Word]keys.Word)
	for _, w := range ws.Words() {
		if _, done := untagged[w]; done || !ws.Is(w, wordseq.Other) {
			continue
		}
		tok := ws.Text(w)
		if !strings.HasSuffix(tok, mark) {
			continue
		}
		bare := strings.TrimSuffix(tok, mark)
		if bare == "" {
			continue
		}
		untagged[w] = ws.InsertWord(keys.Exact(bare), wordseq.Other)
	}

	boundaries := 0
	isTag := func(w keys.Word) bool {
		_, ok := untagged[w]
		return ok
	}
	for _, w := range ws.Words() {
		if isTag(w) {
			boundaries++
		}
	}

	trainer := classify.Train(ws.Words(),
		func(w keys.Word) bool { return ws.Is(w, wordseq.Other) },
		func(w keys.Word) keys.Word {
			if u, ok := untagged[w]; ok {
				return u
			}
			return w
		},
		isTag,
		s.opts.ContextSize,
	)

	model := &Model{
		classifier: classify.NewModel(trainer, func(w keys.Word) keys.Exact {
			k, _ := ws.Key(w)
			return k
		}, s.opts.Smoother),
		trainingTokens: len(ws.Words()),
		boundaries:     boundaries,
	}

	stats := model.classifier.Stats()
	s.logger.Debug("Trained sentence model",
		zap.Int("tokens", model.trainingTokens),
		zap.Int("boundaries", boundaries),
		zap.Int("punctuation", stats.Conditioning),
		zap.Int("context_size", stats.ContextSize),
		zap.Float64("p_unseen", stats.PUnseen))

	return model
}

// Token is one token of a segmented document. Decision is set for
// punctuation tokens only.
type Token struct {
	Index    int                `json:"index"`
	Text     string             `json:"text"`
	Decision *classify.Decision `json:"decision,omitempty"`
}

// Result is a segmented document.
type Result struct {
	Tokens    []Token  `json:"tokens"`
	Sentences []string `json:"sentences"`
}

// Segment classifies every punctuation token of text with model and splits
// the token stream after each sentence boundary.
func (s *Segmenter) Segment(model *Model, text string) *Result {
	ws := wordseq.Exact(text)
	local := classify.Localize(model.classifier, ws.WordOrUnseen)
	words := ws.Words()

	result := &Result{Tokens: make([]Token, 0, len(words))}
	var sentence []string
	for i, w := range words {
		tok := Token{Index: i, Text: ws.Text(w)}
		sentence = append(sentence, tok.Text)
		if ws.Is(w, wordseq.Other) {
			d := local.Classify(w, local.Context(i, words))
			tok.Decision = &d
			if d.Instance {
				result.Sentences = append(result.Sentences, strings.Join(sentence, " "))
				sentence = sentence[:0]
			}
		}
		result.Tokens = append(result.Tokens, tok)
	}
	if len(sentence) > 0 {
		result.Sentences = append(result.Sentences, strings.Join(sentence, " "))
	}

	s.logger.Debug("Segmented document",
		zap.Int("tokens", len(words)),
		zap.Int("sentences", len(result.Sentences)))

	return result
}
