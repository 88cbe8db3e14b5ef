package classifier

import (
	"sort"

	"spamsift/internal/domain"
)

const defaultTopTokens = 8

// Explain ranks the input's tokens by how hard they pull the log-odds
// toward either label. A token occurring n times contributes n times its
// single-occurrence value, matching the additive log-score.
func (c *Classifier) Explain(text string, topK int) (domain.Explanation, error) {
	prediction, err := c.Predict(text)
	if err != nil {
		return domain.Explanation{}, err
	}
	if topK <= 0 {
		topK = defaultTopTokens
	}

	positive := c.artifact.PositiveLabel()
	negative := c.artifact.NegativeLabel()

	occurrences := make(map[string]int)
	for _, token := range c.tokenizer.Tokenize(text) {
		occurrences[token]++
	}

	contributions := make([]domain.TokenContribution, 0, len(occurrences))
	for token, count := range occurrences {
		logOdds := c.tokenLogLikelihood(positive, token) - c.tokenLogLikelihood(negative, token)
		contributions = append(contributions, domain.TokenContribution{
			Token:        token,
			Contribution: float64(count) * logOdds,
		})
	}

	sort.Slice(contributions, func(i, j int) bool {
		ai, aj := abs(contributions[i].Contribution), abs(contributions[j].Contribution)
		if ai != aj {
			return ai > aj
		}
		return contributions[i].Token < contributions[j].Token
	})
	if len(contributions) > topK {
		contributions = contributions[:topK]
	}

	return domain.Explanation{
		Prediction:    prediction.Label,
		Probabilities: prediction.Probabilities,
		TopTokens:     contributions,
	}, nil
}

// TopTokens returns the label's strongest vocabulary tokens by smoothed
// log-likelihood, for model cards and reports.
func (c *Classifier) TopTokens(label string, n int) []domain.TokenContribution {
	stats := c.artifact.ClassStats[label]
	scored := make([]domain.TokenContribution, 0, len(stats.TokenCounts))
	for token := range stats.TokenCounts {
		scored = append(scored, domain.TokenContribution{
			Token:        token,
			Contribution: c.tokenLogLikelihood(label, token),
		})
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Contribution != scored[j].Contribution {
			return scored[i].Contribution > scored[j].Contribution
		}
		return scored[i].Token < scored[j].Token
	})
	if len(scored) > n {
		scored = scored[:n]
	}
	return scored
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
