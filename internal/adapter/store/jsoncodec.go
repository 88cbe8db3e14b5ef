package store

import (
	"encoding/json"
	"fmt"
	"os"

	"spamsift/internal/domain"
)

// artifactPayload is the canonical serialized form: field-named JSON so
// artifacts stay auditable without tooling.
type artifactPayload struct {
	Version         string                       `json:"version"`
	Labels          []string                     `json:"labels"`
	TokenizerConfig domain.TokenizerConfig       `json:"tokenizer_config"`
	ClassStats      map[string]domain.ClassStats `json:"class_stats"`
	VocabularySize  int                          `json:"vocabulary_size"`
	Smoothing       int                          `json:"smoothing"`
	TrainedAt       string                       `json:"trained_at"`
	DatasetSize     int                          `json:"dataset_size"`
}

// Encode serializes an artifact to its canonical JSON form. Decode(Encode(a))
// is field-for-field equal to a for any valid artifact.
func Encode(artifact *domain.Artifact) ([]byte, error) {
	payload := artifactPayload{
		Version:         artifact.Version,
		Labels:          artifact.Labels,
		TokenizerConfig: artifact.Tokenizer,
		ClassStats:      artifact.ClassStats,
		VocabularySize:  artifact.VocabularySize,
		Smoothing:       artifact.Smoothing,
		TrainedAt:       artifact.TrainedAt,
		DatasetSize:     artifact.DatasetSize,
	}
	return json.MarshalIndent(payload, "", "  ")
}

// Decode parses and validates a serialized artifact.
func Decode(data []byte) (*domain.Artifact, error) {
	var payload artifactPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: invalid artifact JSON: %v", domain.ErrFormat, err)
	}
	if payload.Version != domain.ArtifactVersion {
		return nil, fmt.Errorf("%w: unknown artifact version %q", domain.ErrFormat, payload.Version)
	}
	if len(payload.Labels) != 2 || payload.Labels[0] == payload.Labels[1] {
		return nil, fmt.Errorf("%w: artifact must carry exactly two distinct labels, got %v", domain.ErrFormat, payload.Labels)
	}
	if len(payload.ClassStats) != len(payload.Labels) {
		return nil, fmt.Errorf("%w: class_stats keys must match labels exactly", domain.ErrFormat)
	}
	for _, label := range payload.Labels {
		stats, ok := payload.ClassStats[label]
		if !ok {
			return nil, fmt.Errorf("%w: class_stats missing label %q", domain.ErrFormat, label)
		}
		if stats.TokenCounts == nil {
			stats.TokenCounts = map[string]int{}
			payload.ClassStats[label] = stats
		}
	}

	return &domain.Artifact{
		Version:        payload.Version,
		Labels:         payload.Labels,
		Tokenizer:      payload.TokenizerConfig,
		ClassStats:     payload.ClassStats,
		VocabularySize: payload.VocabularySize,
		Smoothing:      payload.Smoothing,
		TrainedAt:      payload.TrainedAt,
		DatasetSize:    payload.DatasetSize,
	}, nil
}

// WriteFile writes the canonical form to disk.
func WriteFile(path string, artifact *domain.Artifact) error {
	data, err := Encode(artifact)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadFile loads and validates an artifact from disk.
func ReadFile(path string) (*domain.Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}
	return Decode(data)
}
