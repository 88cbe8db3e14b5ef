package usecase

import (
	"errors"
	"math"
	"strings"
	"testing"

	"spamsift/internal/adapter/analyzer"
	"spamsift/internal/adapter/classifier"
	"spamsift/internal/domain"
)

func trainedClassifier(t *testing.T) *classifier.Classifier {
	t.Helper()
	cfg := domain.DefaultTokenizerConfig()
	trainer := classifier.NewTrainer(analyzer.NewTokenizer(cfg, nil), cfg, "spam", "ham")
	artifact, err := trainer.Train([]domain.Example{
		{Text: "win a free prize today", Label: "spam"},
		{Text: "claim your exclusive reward", Label: "spam"},
		{Text: "let's sync on the proposal", Label: "ham"},
		{Text: "lunch at 1pm", Label: "ham"},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected training error: %v", err)
	}
	return classifier.NewClassifier(artifact)
}

func TestEvaluate_PerfectSeparation(t *testing.T) {
	c := trainedClassifier(t)

	metrics, err := Evaluate(c, []domain.Example{
		{Text: "free reward for you", Label: "spam"},
		{Text: "proposal sync at lunch", Label: "ham"},
	}, "spam")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if metrics.Accuracy != 1.0 {
		t.Errorf("expected accuracy 1.0, got %f", metrics.Accuracy)
	}
	if metrics.Precision != 1.0 || metrics.Recall != 1.0 {
		t.Errorf("expected perfect precision/recall, got %f/%f", metrics.Precision, metrics.Recall)
	}
	if math.Abs(metrics.F1-1.0) > 1e-12 {
		t.Errorf("expected F1 1.0, got %f", metrics.F1)
	}
}

func TestEvaluate_CountsMistakes(t *testing.T) {
	c := trainedClassifier(t)

	// A spam-worded text labeled ham produces one false positive.
	metrics, err := Evaluate(c, []domain.Example{
		{Text: "free prize reward", Label: "ham"},
		{Text: "win a free prize", Label: "spam"},
	}, "spam")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if metrics.Accuracy != 0.5 {
		t.Errorf("expected accuracy 0.5, got %f", metrics.Accuracy)
	}
	if metrics.Precision != 0.5 {
		t.Errorf("expected precision 0.5, got %f", metrics.Precision)
	}
	if metrics.Recall != 1.0 {
		t.Errorf("expected recall 1.0, got %f", metrics.Recall)
	}
}

func TestEvaluate_EmptyDataset(t *testing.T) {
	c := trainedClassifier(t)

	_, err := Evaluate(c, nil, "spam")
	if !errors.Is(err, domain.ErrData) {
		t.Errorf("expected ErrData for empty dataset, got %v", err)
	}
}

func TestBuildModelCard(t *testing.T) {
	c := trainedClassifier(t)

	card := BuildModelCard(c, "spamsift", domain.Metrics{
		Precision: 0.91,
		Recall:    0.88,
		F1:        0.895,
		Accuracy:  0.9,
	})

	for _, want := range []string{
		"# Model Card: spamsift",
		"**Positive Label**: spam",
		"Top tokens for `spam`",
		"Top tokens for `ham`",
		"0.910",
		"## Limitations",
	} {
		if !strings.Contains(card, want) {
			t.Errorf("expected model card to contain %q", want)
		}
	}
}
