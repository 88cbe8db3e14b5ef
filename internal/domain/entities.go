package domain

// ArtifactVersion is the serialized model format tag. Bump on breaking
// changes to the artifact schema.
const ArtifactVersion = "1"

// TokenizerConfig travels inside the artifact so scoring always re-derives
// tokens exactly as training did.
type TokenizerConfig struct {
	Lowercase  bool `json:"lowercase" yaml:"lowercase"`
	UseBigrams bool `json:"use_bigrams" yaml:"use_bigrams"`
	Redact     bool `json:"redact" yaml:"redact"`
}

// DefaultTokenizerConfig returns the default tokenizer options.
func DefaultTokenizerConfig() TokenizerConfig {
	return TokenizerConfig{Lowercase: true}
}

// Example is one labeled training or evaluation row.
type Example struct {
	Text  string
	Label string
}

// ClassStats holds the accumulated token statistics for one label.
// Tokens unseen under the label have implicit count zero.
type ClassStats struct {
	DocCount    int            `json:"doc_count"`
	TokenCounts map[string]int `json:"token_counts"`
	TotalTokens int            `json:"total_tokens"`
}

// Artifact is the complete trained model state. It is immutable after
// training and safe to share across concurrent readers.
type Artifact struct {
	Version        string
	Labels         []string // exactly two, positive first
	Tokenizer      TokenizerConfig
	ClassStats     map[string]ClassStats
	VocabularySize int
	Smoothing      int
	TrainedAt      string
	DatasetSize    int
}

func (a *Artifact) PositiveLabel() string { return a.Labels[0] }

func (a *Artifact) NegativeLabel() string { return a.Labels[1] }

// TotalDocs returns the number of training documents across both classes.
func (a *Artifact) TotalDocs() int {
	total := 0
	for _, stats := range a.ClassStats {
		total += stats.DocCount
	}
	return total
}

// Prediction is the outcome of scoring one text.
type Prediction struct {
	Label         string             `json:"prediction"`
	Confidence    float64            `json:"confidence"`
	Probabilities map[string]float64 `json:"probabilities"`
}

// TokenContribution is one token's signed pull on the log-odds. Positive
// values push toward the positive label.
type TokenContribution struct {
	Token        string  `json:"token"`
	Contribution float64 `json:"contribution"`
}

// Explanation attributes a prediction to its highest-impact tokens.
type Explanation struct {
	Prediction    string              `json:"prediction"`
	Probabilities map[string]float64  `json:"probabilities"`
	TopTokens     []TokenContribution `json:"top_tokens"`
}

// TokenShift reports how much one token's probability moved between the
// training distribution and a new sample.
type TokenShift struct {
	Token   string  `json:"token"`
	RefProb float64 `json:"ref_prob"`
	NewProb float64 `json:"new_prob"`
	Delta   float64 `json:"delta"`
}

// DriftReport summarizes distribution drift on a new sample.
type DriftReport struct {
	Divergence float64      `json:"js_divergence"`
	TopShifts  []TokenShift `json:"top_shifted_tokens"`
	SampleSize int          `json:"sample_size"`
}

// Metrics are binary classification quality numbers against a chosen
// positive label.
type Metrics struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	Accuracy  float64 `json:"accuracy"`
}
