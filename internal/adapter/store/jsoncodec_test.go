package store

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"spamsift/internal/domain"
)

func sampleArtifact() *domain.Artifact {
	return &domain.Artifact{
		Version: domain.ArtifactVersion,
		Labels:  []string{"spam", "ham"},
		Tokenizer: domain.TokenizerConfig{
			Lowercase:  true,
			UseBigrams: true,
		},
		ClassStats: map[string]domain.ClassStats{
			"spam": {
				DocCount:    2,
				TokenCounts: map[string]int{"free": 3, "prize": 1, "free_prize": 1},
				TotalTokens: 5,
			},
			"ham": {
				DocCount:    3,
				TokenCounts: map[string]int{"meeting": 2},
				TotalTokens: 2,
			},
		},
		VocabularySize: 4,
		Smoothing:      1,
		TrainedAt:      "2024-05-01T12:00:00Z",
		DatasetSize:    5,
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	original := sampleArtifact()

	data, err := Encode(original)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}

	if !reflect.DeepEqual(original, decoded) {
		t.Errorf("round trip mismatch:\n  original: %+v\n  decoded:  %+v", original, decoded)
	}
}

func TestEncode_FieldNames(t *testing.T) {
	data, err := Encode(sampleArtifact())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := string(data)
	for _, field := range []string{
		`"version"`, `"labels"`, `"tokenizer_config"`, `"class_stats"`,
		`"vocabulary_size"`, `"smoothing"`, `"doc_count"`, `"token_counts"`,
		`"total_tokens"`,
	} {
		if !strings.Contains(text, field) {
			t.Errorf("expected serialized artifact to contain %s", field)
		}
	}
}

func TestDecode_UnknownVersion(t *testing.T) {
	artifact := sampleArtifact()
	artifact.Version = "99"
	data, err := Encode(artifact)
	if err != nil {
		t.Fatal(err)
	}

	_, err = Decode(data)
	if !errors.Is(err, domain.ErrFormat) {
		t.Errorf("expected ErrFormat for unknown version, got %v", err)
	}
}

func TestDecode_InvalidJSON(t *testing.T) {
	_, err := Decode([]byte("{not json"))
	if !errors.Is(err, domain.ErrFormat) {
		t.Errorf("expected ErrFormat for invalid JSON, got %v", err)
	}
}

func TestDecode_BadLabels(t *testing.T) {
	for name, mutate := range map[string]func(*artifactPayload){
		"one label":        func(p *artifactPayload) { p.Labels = []string{"spam"} },
		"three labels":     func(p *artifactPayload) { p.Labels = []string{"a", "b", "c"} },
		"duplicate labels": func(p *artifactPayload) { p.Labels = []string{"spam", "spam"} },
	} {
		payload := artifactPayload{
			Version:    domain.ArtifactVersion,
			Labels:     []string{"spam", "ham"},
			ClassStats: sampleArtifact().ClassStats,
		}
		mutate(&payload)
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := Decode(data); !errors.Is(err, domain.ErrFormat) {
			t.Errorf("%s: expected ErrFormat, got %v", name, err)
		}
	}
}

func TestDecode_ClassStatsMismatch(t *testing.T) {
	payload := artifactPayload{
		Version: domain.ArtifactVersion,
		Labels:  []string{"spam", "ham"},
		ClassStats: map[string]domain.ClassStats{
			"spam":  {DocCount: 1, TokenCounts: map[string]int{}},
			"other": {DocCount: 1, TokenCounts: map[string]int{}},
		},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}

	_, err = Decode(data)
	if !errors.Is(err, domain.ErrFormat) {
		t.Errorf("expected ErrFormat for class_stats mismatch, got %v", err)
	}
}

func TestWriteReadFile(t *testing.T) {
	path := t.TempDir() + "/model.json"
	original := sampleArtifact()

	if err := WriteFile(path, original); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}
	loaded, err := ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	if !reflect.DeepEqual(original, loaded) {
		t.Errorf("file round trip mismatch")
	}
}
