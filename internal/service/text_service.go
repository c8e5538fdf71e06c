package service

import (
	"context"
	"errors"
	"fmt"

	"nlf-go/internal/classify"
	"nlf-go/internal/collocation"
	"nlf-go/internal/config"
	"nlf-go/internal/kwic"
	"nlf-go/internal/segment"

	"go.uber.org/zap"
)

// ErrTextTooLarge is returned when a request's text exceeds the configured
// limit.
var ErrTextTooLarge = errors.New("text too large")

// TextService runs sentence segmentation, concordance and collocation
// analysis over request text.
type TextService struct {
	registry     *ModelRegistry
	segmenter    *segment.Segmenter
	kwicWindow   int
	maxTextBytes int
	corpusPath   string
	logger       *zap.Logger
}

// NewTextService creates a text service configured from cfg
func NewTextService(cfg *config.Config, logger *zap.Logger) *TextService {
	segmenter := segment.NewSegmenter(segment.Options{
		ContextSize:  cfg.Segmenter.ContextSize,
		TrainingMark: cfg.Segmenter.TrainingMark,
		Smoother:     classify.NewAddKSmoother(cfg.Segmenter.SmoothingK),
	}, logger)

	return &TextService{
		registry:     NewModelRegistry(segmenter, logger),
		segmenter:    segmenter,
		kwicWindow:   cfg.Kwic.Window,
		maxTextBytes: cfg.Segmenter.MaxTextBytes,
		corpusPath:   cfg.Segmenter.TrainingCorpus,
		logger:       logger,
	}
}

// Registry returns the model registry
func (s *TextService) Registry() *ModelRegistry {
	return s.registry
}

// LoadDefaultModel trains the default model from the configured training
// corpus. It does nothing when no corpus is configured.
func (s *TextService) LoadDefaultModel(ctx context.Context) error {
	if s.corpusPath == "" {
		s.logger.Info("No training corpus configured, default model disabled")
		return nil
	}

	info, err := s.registry.TrainFromFile(ctx, "default", s.corpusPath)
	if err != nil {
		return fmt.Errorf("failed to train default model: %w", err)
	}
	return s.registry.SetDefault(info.ID)
}

// SegmentResponse contains a segmented document
type SegmentResponse struct {
	ModelID string `json:"model_id"`
	*segment.Result
}

// Segment splits text into sentences with the given model (the default
// model when modelID is empty).
func (s *TextService) Segment(ctx context.Context, modelID, text string) (*SegmentResponse, error) {
	if err := s.checkText(ctx, text); err != nil {
		return nil, err
	}

	model, info, err := s.registry.Get(modelID)
	if err != nil {
		return nil, err
	}

	result := s.segmenter.Segment(model, text)
	s.logger.Debug("Segmented text",
		zap.String("model_id", info.ID),
		zap.Int("tokens", len(result.Tokens)),
		zap.Int("sentences", len(result.Sentences)))

	return &SegmentResponse{ModelID: info.ID, Result: result}, nil
}

// KWIC returns every occurrence of word in text with its context. A window
// of zero or less uses the configured default.
func (s *TextService) KWIC(ctx context.Context, text, word string, window int) ([]kwic.Segment, error) {
	if err := s.checkText(ctx, text); err != nil {
		return nil, err
	}
	if window <= 0 {
		window = s.kwicWindow
	}

	segments := kwic.Segments(text, word, window)
	s.logger.Debug("Built concordance",
		zap.String("word", word),
		zap.Int("window", window),
		zap.Int("segments", len(segments)))

	return segments, nil
}

// Collocations scores adjacent word pairs in text, keeping the top limit
// (all when limit is zero or less).
func (s *TextService) Collocations(ctx context.Context, text string, caseSensitive bool, limit int) ([]collocation.Bigram, error) {
	if err := s.checkText(ctx, text); err != nil {
		return nil, err
	}

	bigrams := collocation.Bigrams(text, caseSensitive)
	if limit > 0 && len(bigrams) > limit {
		bigrams = bigrams[:limit]
	}
	s.logger.Debug("Scored collocations",
		zap.Bool("case_sensitive", caseSensitive),
		zap.Int("returned", len(bigrams)))

	return bigrams, nil
}

func (s *TextService) checkText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.maxTextBytes > 0 && len(text) > s.maxTextBytes {
		return fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrTextTooLarge, len(text), s.maxTextBytes)
	}
	return nil
}
