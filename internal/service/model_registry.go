package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"nlf-go/internal/mmap"
	"nlf-go/internal/segment"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrModelNotFound is returned for unknown or malformed model ids.
	ErrModelNotFound = errors.New("model not found")
	// ErrEmptyCorpus is returned when a training corpus holds no tokens.
	ErrEmptyCorpus = errors.New("training corpus has no tokens")
)

// ModelInfo describes a registered model
type ModelInfo struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	CreatedAt time.Time          `json:"created_at"`
	IsDefault bool               `json:"is_default"`
	Stats     segment.ModelStats `json:"stats"`
}

type registeredModel struct {
	info  ModelInfo
	model *segment.Model
}

// ModelRegistry holds trained sentence models. Models are immutable once
// registered, so callers may use them without holding the registry lock.
type ModelRegistry struct {
	models    map[uuid.UUID]*registeredModel
	defaultID uuid.UUID
	segmenter *segment.Segmenter
	logger    *zap.Logger
	mu        sync.RWMutex // Protects models and defaultID
}

// NewModelRegistry creates an empty registry
func NewModelRegistry(segmenter *segment.Segmenter, logger *zap.Logger) *ModelRegistry {
	return &ModelRegistry{
		models:    make(map[uuid.UUID]*registeredModel),
		segmenter: segmenter,
		logger:    logger,
	}
}

// Train builds a model from a tagged corpus and registers it. The first
// registered model becomes the default.
func (r *ModelRegistry) Train(ctx context.Context, name, corpus string) (*ModelInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	model := r.segmenter.Train(corpus)
	if model.Stats().TrainingTokens == 0 {
		return nil, ErrEmptyCorpus
	}

	id := uuid.New()
	entry := &registeredModel{
		info: ModelInfo{
			ID:        id.String(),
			Name:      name,
			CreatedAt: time.Now(),
			Stats:     model.Stats(),
		},
		model: model,
	}

	r.mu.Lock()
	r.models[id] = entry
	if r.defaultID == uuid.Nil {
		r.defaultID = id
	}
	info := r.infoLocked(id, entry)
	r.mu.Unlock()

	r.logger.Info("Registered sentence model",
		zap.String("model_id", info.ID),
		zap.String("name", name),
		zap.Int("training_tokens", info.Stats.TrainingTokens),
		zap.Int("boundaries", info.Stats.Boundaries),
		zap.Strings("punctuation", info.Stats.Punctuation),
		zap.Duration("elapsed", time.Since(start)))

	return &info, nil
}

// TrainFromFile trains a model from the tagged corpus at path.
func (r *ModelRegistry) TrainFromFile(ctx context.Context, name, path string) (*ModelInfo, error) {
	text, err := mmap.ReadText(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	return r.Train(ctx, name, text)
}

// Get returns a model by id. An empty id selects the default model.
func (r *ModelRegistry) Get(id string) (*segment.Model, *ModelInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key, err := r.resolveLocked(id)
	if err != nil {
		return nil, nil, err
	}
	entry, ok := r.models[key]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrModelNotFound, id)
	}
	info := r.infoLocked(key, entry)
	return entry.model, &info, nil
}

// SetDefault makes id the model used when requests name none.
func (r *ModelRegistry) SetDefault(id string) error {
	key, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrModelNotFound, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.models[key]; !ok {
		return fmt.Errorf("%w: %s", ErrModelNotFound, id)
	}
	r.defaultID = key
	return nil
}

// List returns every registered model, oldest first.
func (r *ModelRegistry) List() []ModelInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]ModelInfo, 0, len(r.models))
	for id, entry := range r.models {
		infos = append(infos, r.infoLocked(id, entry))
	}
	slices.SortFunc(infos, func(a, b ModelInfo) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return infos
}

func (r *ModelRegistry) resolveLocked(id string) (uuid.UUID, error) {
	if id == "" {
		if r.defaultID == uuid.Nil {
			return uuid.Nil, fmt.Errorf("%w: no default model", ErrModelNotFound)
		}
		return r.defaultID, nil
	}
	key, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrModelNotFound, id)
	}
	return key, nil
}

func (r *ModelRegistry) infoLocked(id uuid.UUID, entry *registeredModel) ModelInfo {
	info := entry.info
	info.IsDefault = id == r.defaultID
	return info
}

