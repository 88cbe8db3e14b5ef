package classifier

import (
	"fmt"
	"math"
	"time"

	"spamsift/internal/adapter/analyzer"
	"spamsift/internal/domain"
	"spamsift/internal/port"
)

// ProgressFunc reports training progress: examples processed out of total.
type ProgressFunc func(processed, total int)

// Trainer fits a multinomial Naive Bayes artifact from labeled examples.
type Trainer struct {
	tokenizer port.Tokenizer
	cfg       domain.TokenizerConfig
	positive  string
	negative  string
}

// NewTrainer creates a Trainer. The positive/negative pair fixes the label
// ordering stored in the artifact; the dataset must use exactly these two
// labels.
func NewTrainer(tokenizer port.Tokenizer, cfg domain.TokenizerConfig, positive, negative string) *Trainer {
	return &Trainer{
		tokenizer: tokenizer,
		cfg:       cfg,
		positive:  positive,
		negative:  negative,
	}
}

// Train makes one counting pass over the dataset and produces an immutable
// artifact. The input is read-only; order of examples does not affect the
// result. progress may be nil.
func (t *Trainer) Train(examples []domain.Example, progress ProgressFunc) (*domain.Artifact, error) {
	if len(examples) == 0 {
		return nil, fmt.Errorf("%w: dataset is empty", domain.ErrData)
	}
	if t.positive == t.negative {
		return nil, fmt.Errorf("%w: positive and negative labels must differ, both are %q", domain.ErrData, t.positive)
	}

	docCounts := make(map[string]int)
	tokenCounts := map[string]map[string]int{
		t.positive: {},
		t.negative: {},
	}
	vocabulary := make(map[string]struct{})

	for i, example := range examples {
		bucket, ok := tokenCounts[example.Label]
		if !ok {
			return nil, fmt.Errorf("%w: label %q is not one of %q/%q", domain.ErrData, example.Label, t.positive, t.negative)
		}
		docCounts[example.Label]++
		for _, token := range t.tokenizer.Tokenize(example.Text) {
			bucket[token]++
			vocabulary[token] = struct{}{}
		}
		if progress != nil {
			progress(i+1, len(examples))
		}
	}

	if len(docCounts) != 2 {
		return nil, fmt.Errorf("%w: expected 2 distinct labels in dataset, got %d", domain.ErrData, len(docCounts))
	}

	classStats := make(map[string]domain.ClassStats, 2)
	for _, label := range []string{t.positive, t.negative} {
		total := 0
		for _, count := range tokenCounts[label] {
			total += count
		}
		classStats[label] = domain.ClassStats{
			DocCount:    docCounts[label],
			TokenCounts: tokenCounts[label],
			TotalTokens: total,
		}
	}

	return &domain.Artifact{
		Version:        domain.ArtifactVersion,
		Labels:         []string{t.positive, t.negative},
		Tokenizer:      t.cfg,
		ClassStats:     classStats,
		VocabularySize: len(vocabulary),
		Smoothing:      1,
		TrainedAt:      time.Now().UTC().Format(time.RFC3339),
		DatasetSize:    len(examples),
	}, nil
}

// Classifier scores texts against a trained artifact. It holds the artifact
// read-only and rebuilds the exact tokenizer the artifact was trained with.
type Classifier struct {
	artifact  *domain.Artifact
	tokenizer port.Tokenizer
}

func NewClassifier(artifact *domain.Artifact) *Classifier {
	return &Classifier{
		artifact:  artifact,
		tokenizer: analyzer.ForArtifact(artifact),
	}
}

func (c *Classifier) Artifact() *domain.Artifact { return c.artifact }

// Score returns the total log-score per label: prior plus the smoothed
// log-likelihood of every token, repeats counted multiply.
func (c *Classifier) Score(tokens []string) (map[string]float64, error) {
	totalDocs := c.artifact.TotalDocs()
	if totalDocs == 0 {
		return nil, fmt.Errorf("%w: artifact has no training documents", domain.ErrModel)
	}

	scores := make(map[string]float64, len(c.artifact.Labels))
	for _, label := range c.artifact.Labels {
		stats := c.artifact.ClassStats[label]
		score := math.Log(float64(stats.DocCount) / float64(totalDocs))
		for _, token := range tokens {
			score += c.tokenLogLikelihood(label, token)
		}
		scores[label] = score
	}
	return scores, nil
}

// ScoreText tokenizes under the artifact's stored config and scores.
func (c *Classifier) ScoreText(text string) (map[string]float64, error) {
	return c.Score(c.tokenizer.Tokenize(text))
}

// Predict returns the winning label and a normalized confidence. On an exact
// score tie the negative label wins; this is the documented policy, not an
// accident of map ordering.
func (c *Classifier) Predict(text string) (domain.Prediction, error) {
	scores, err := c.ScoreText(text)
	if err != nil {
		return domain.Prediction{}, err
	}

	positive := c.artifact.PositiveLabel()
	negative := c.artifact.NegativeLabel()

	// Log-sum-exp keeps the normalization finite even when both raw
	// scores are far below the float underflow threshold.
	maxScore := scores[negative]
	if scores[positive] > maxScore {
		maxScore = scores[positive]
	}
	expPos := math.Exp(scores[positive] - maxScore)
	expNeg := math.Exp(scores[negative] - maxScore)
	sum := expPos + expNeg

	probabilities := map[string]float64{
		positive: expPos / sum,
		negative: expNeg / sum,
	}

	label := negative
	if scores[positive] > scores[negative] {
		label = positive
	}

	return domain.Prediction{
		Label:         label,
		Confidence:    probabilities[label],
		Probabilities: probabilities,
	}, nil
}

// tokenLogLikelihood is the Laplace (+1) smoothed log P(token | label). The
// denominator is fixed from training, so unseen tokens still get a strictly
// positive, finite probability.
func (c *Classifier) tokenLogLikelihood(label, token string) float64 {
	stats := c.artifact.ClassStats[label]
	vocabSize := c.artifact.VocabularySize
	if vocabSize < 1 {
		vocabSize = 1
	}
	return math.Log(float64(stats.TokenCounts[token]+1) / float64(stats.TotalTokens+vocabSize))
}
