package usecase

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"spamsift/internal/adapter/analyzer"
	"spamsift/internal/adapter/classifier"
	"spamsift/internal/adapter/fs"
	"spamsift/internal/adapter/store"
	"spamsift/internal/domain"
)

func newTestTrainer() *classifier.Trainer {
	cfg := domain.DefaultTokenizerConfig()
	tokenizer := analyzer.NewTokenizer(cfg, nil)
	return classifier.NewTrainer(tokenizer, cfg, "spam", "ham")
}

func writeDataset(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestTrain_EndToEnd(t *testing.T) {
	dataDir := t.TempDir()
	writeDataset(t, dataDir, "spam.csv", "text,label\nwin free prizes,spam\nclaim your reward,spam\n")
	writeDataset(t, dataDir, "ham.csv", "text,label\nmeeting at noon,ham\nlunch tomorrow,ham\n")

	outputPath := filepath.Join(t.TempDir(), "model.json")
	uc := NewTrainUseCase(fs.NewWalker(nil, nil), newTestTrainer(), nil)

	result, err := uc.Train(dataDir, outputPath, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FilesLoaded != 2 {
		t.Errorf("expected 2 files loaded, got %d", result.FilesLoaded)
	}
	if result.ExamplesUsed != 4 {
		t.Errorf("expected 4 examples, got %d", result.ExamplesUsed)
	}
	if result.OutputPath != outputPath {
		t.Errorf("expected output path %s, got %s", outputPath, result.OutputPath)
	}

	artifact, err := store.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("failed to read written artifact: %v", err)
	}
	if artifact.TotalDocs() != 4 {
		t.Errorf("expected 4 docs in artifact, got %d", artifact.TotalDocs())
	}
	if artifact.PositiveLabel() != "spam" {
		t.Errorf("expected positive label spam, got %s", artifact.PositiveLabel())
	}
}

func TestTrain_EmptyDirectory(t *testing.T) {
	uc := NewTrainUseCase(fs.NewWalker(nil, nil), newTestTrainer(), nil)

	_, err := uc.Train(t.TempDir(), "", "", nil)
	if err == nil {
		t.Fatal("expected error for empty dataset directory")
	}
	if !errors.Is(err, domain.ErrData) {
		t.Errorf("expected ErrData, got %v", err)
	}
}

func TestTrain_ProgressCallback(t *testing.T) {
	dataDir := t.TempDir()
	writeDataset(t, dataDir, "data.csv", "text,label\nfree money,spam\nsee you soon,ham\n")

	uc := NewTrainUseCase(fs.NewWalker(nil, nil), newTestTrainer(), nil)

	var calls int
	_, err := uc.Train(dataDir, "", "", func(processed, total int) {
		calls++
		if total != 2 {
			t.Errorf("expected total 2, got %d", total)
		}
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls == 0 {
		t.Error("expected the progress callback to be invoked")
	}
}
