package segment

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"go.uber.org/zap"
)

const trainingCorpus = "Mr. Smith went home.+ He saw Dr. Jones.+ Dr. Jones waved.+ " +
	"Mr. Brown ran.+ It was late.+ Mrs. Green slept.+"

func newTestSegmenter() *Segmenter {
	return NewSegmenter(DefaultOptions(), zap.NewNop())
}

func TestTrain_Stats(t *testing.T) {
	model := newTestSegmenter().Train(trainingCorpus)
	stats := model.Stats()

	if !slices.Equal(stats.Punctuation, []string{"."}) {
		t.Fatalf("Expected only '.' as punctuation, got %v", stats.Punctuation)
	}
	if stats.TrainingTokens != 31 {
		t.Fatalf("Expected 31 training tokens, got %d", stats.TrainingTokens)
	}
	if stats.Boundaries != 6 {
		t.Fatalf("Expected 6 tagged boundaries, got %d", stats.Boundaries)
	}
	if stats.ContextSize != DefaultContextSize {
		t.Fatalf("Expected context size %d, got %d", DefaultContextSize, stats.ContextSize)
	}

	a, ok := model.Classifier().Ambiguity(".")
	if !ok {
		t.Fatalf("Expected statistics for '.'")
	}
	if p := a.BaseProbability(); p != 6.0/11.0 {
		t.Fatalf("Expected base probability 6/11, got %f", p)
	}
}

func TestSegment_Abbreviations(t *testing.T) {
	s := newTestSegmenter()
	model := s.Train(trainingCorpus)

	result := s.Segment(model, "Yesterday Dr. Smith went home. He slept.")

	want := []string{"Yesterday Dr . Smith went home .", "He slept ."}
	if !slices.Equal(result.Sentences, want) {
		t.Fatalf("Expected sentences %q, got %q", want, result.Sentences)
	}

	var decided int
	for _, tok := range result.Tokens {
		if tok.Text == "." {
			if tok.Decision == nil {
				t.Fatalf("Expected a decision for token %d", tok.Index)
			}
			decided++
		} else if tok.Decision != nil {
			t.Fatalf("Expected no decision for %q", tok.Text)
		}
	}
	if decided != 3 {
		t.Fatalf("Expected 3 classified marks, got %d", decided)
	}
	if result.Tokens[2].Decision.Instance {
		t.Fatalf("Expected the period after Dr not to end a sentence")
	}
}

func TestSegment_UntrainedModel(t *testing.T) {
	s := newTestSegmenter()
	model := s.Train("")

	result := s.Segment(model, "One. Two. Three.")
	if len(result.Sentences) != 1 {
		t.Fatalf("Expected a single sentence, got %q", result.Sentences)
	}
	for _, tok := range result.Tokens {
		if tok.Decision != nil && (tok.Decision.Pos != 0 || tok.Decision.Neg != 1) {
			t.Fatalf("Expected the forced (0, 1) decision, got %+v", tok.Decision)
		}
	}
}

func TestSegment_ModelIsReusable(t *testing.T) {
	s := newTestSegmenter()
	model := s.Train(trainingCorpus)

	first := s.Segment(model, "It was late. Mr. Brown ran.")
	second := s.Segment(model, "It was late. Mr. Brown ran.")
	if !slices.Equal(first.Sentences, second.Sentences) {
		t.Fatalf("Expected identical results, got %q and %q", first.Sentences, second.Sentences)
	}
	if _, ok := model.Classifier().Ambiguity("."); !ok {
		t.Fatalf("Expected the shared model to keep its text keys")
	}
}

func TestNewSegmenter_Defaults(t *testing.T) {
	s := NewSegmenter(Options{}, nil)
	if s.opts.ContextSize != DefaultContextSize || s.opts.TrainingMark != DefaultTrainingMark || s.opts.Smoother == nil {
		t.Fatalf("Expected defaults, got %+v", s.opts)
	}
}

func TestTrain_CustomMark(t *testing.T) {
	s := NewSegmenter(Options{ContextSize: 1, TrainingMark: "#"}, zap.NewNop())
	model := s.Train("Stop.# Go. Wait!#")

	got := model.Stats().Punctuation
	if !slices.Equal(got, []string{"!", "."}) {
		t.Fatalf("Expected punctuation [! .], got %v", got)
	}
}

func TestTrain_OnlyTrailingMarkTags(t *testing.T) {
	s := newTestSegmenter()
	model := s.Train("Stop.+. Go. Wait.+")

	stats := model.Stats()
	if stats.Boundaries != 1 {
		t.Fatalf("Expected 1 tagged boundary, got %d", stats.Boundaries)
	}
	if !slices.Equal(stats.Punctuation, []string{".", ".+."}) {
		t.Fatalf("Expected punctuation [. .+.], got %v", stats.Punctuation)
	}
}

func TestFormat(t *testing.T) {
	s := newTestSegmenter()
	result := s.Segment(s.Train(trainingCorpus), "Yesterday Dr. Smith went home. He slept.")

	var buf bytes.Buffer
	if err := Format(&buf, result, 0); err != nil {
		t.Fatalf("Failed to format: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "Yesterday Dr . (") {
		t.Fatalf("Unexpected output prefix %q", out)
	}
	if strings.Count(out, "\n\n") != 2 {
		t.Fatalf("Expected two sentence breaks, got %q", out)
	}
	if strings.Count(out, "(") != 3 {
		t.Fatalf("Expected three score pairs, got %q", out)
	}
}
