package usecase

import (
	"fmt"

	"spamsift/internal/adapter/classifier"
	"spamsift/internal/adapter/dataset"
	"spamsift/internal/adapter/store"
	"spamsift/internal/domain"
	"spamsift/internal/port"
)

// TrainUseCase orchestrates dataset discovery, the training pass, and
// artifact persistence.
type TrainUseCase struct {
	walker   port.DatasetWalker
	trainer  *classifier.Trainer
	registry port.ModelRegistry // optional
}

func NewTrainUseCase(walker port.DatasetWalker, trainer *classifier.Trainer, registry port.ModelRegistry) *TrainUseCase {
	return &TrainUseCase{
		walker:   walker,
		trainer:  trainer,
		registry: registry,
	}
}

// TrainResult contains the results of a training run.
type TrainResult struct {
	Artifact      *domain.Artifact
	FilesLoaded   int
	ExamplesUsed  int
	OutputPath    string
	RegistryEntry string
}

// Train walks dataPath for dataset files, fits an artifact, writes it to
// outputPath, and records it in the registry under name when one is
// configured. progress may be nil.
func (u *TrainUseCase) Train(dataPath, outputPath, name string, progress classifier.ProgressFunc) (*TrainResult, error) {
	files, err := u.walker.Walk(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to scan dataset path: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no dataset files under %s", domain.ErrData, dataPath)
	}

	examples, err := dataset.LoadFiles(files)
	if err != nil {
		return nil, err
	}

	artifact, err := u.trainer.Train(examples, progress)
	if err != nil {
		return nil, err
	}

	result := &TrainResult{
		Artifact:     artifact,
		FilesLoaded:  len(files),
		ExamplesUsed: len(examples),
	}

	if outputPath != "" {
		if err := store.WriteFile(outputPath, artifact); err != nil {
			return nil, fmt.Errorf("failed to write artifact: %w", err)
		}
		result.OutputPath = outputPath
	}

	if u.registry != nil && name != "" {
		if err := u.registry.Put(name, artifact); err != nil {
			return nil, fmt.Errorf("failed to record model in registry: %w", err)
		}
		result.RegistryEntry = name
	}

	return result, nil
}
