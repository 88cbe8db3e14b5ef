package monitor

import (
	"fmt"
	"math"
	"sort"

	"spamsift/internal/adapter/analyzer"
	"spamsift/internal/domain"
)

const defaultTopShifts = 10

// Report tokenizes the sample under the artifact's own config and compares
// its token distribution against the artifact's training distribution.
// Divergence is Jensen-Shannon with natural log, so it is bounded in
// [0, ln 2]. No smoothing is applied: drift measures raw frequency shift.
func Report(artifact *domain.Artifact, texts []string, topN int) (domain.DriftReport, error) {
	if len(texts) == 0 {
		return domain.DriftReport{}, fmt.Errorf("%w: drift sample is empty", domain.ErrData)
	}
	if topN <= 0 {
		topN = defaultTopShifts
	}

	tokenizer := analyzer.ForArtifact(artifact)
	newCounts := make(map[string]int)
	for _, text := range texts {
		for _, token := range tokenizer.Tokenize(text) {
			newCounts[token]++
		}
	}

	reference := normalize(referenceCounts(artifact))
	current := normalize(newCounts)

	shifts := tokenShifts(reference, current)
	sort.Slice(shifts, func(i, j int) bool {
		di, dj := abs(shifts[i].Delta), abs(shifts[j].Delta)
		if di != dj {
			return di > dj
		}
		return shifts[i].Token < shifts[j].Token
	})
	if len(shifts) > topN {
		shifts = shifts[:topN]
	}

	return domain.DriftReport{
		Divergence: jensenShannon(reference, current),
		TopShifts:  shifts,
		SampleSize: len(texts),
	}, nil
}

// referenceCounts combines both classes' token counts into the artifact's
// overall training distribution.
func referenceCounts(artifact *domain.Artifact) map[string]int {
	counts := make(map[string]int)
	for _, stats := range artifact.ClassStats {
		for token, count := range stats.TokenCounts {
			counts[token] += count
		}
	}
	return counts
}

func normalize(counts map[string]int) map[string]float64 {
	total := 0
	for _, count := range counts {
		total += count
	}
	dist := make(map[string]float64, len(counts))
	if total == 0 {
		return dist
	}
	for token, count := range counts {
		dist[token] = float64(count) / float64(total)
	}
	return dist
}

func tokenShifts(reference, current map[string]float64) []domain.TokenShift {
	union := make(map[string]struct{}, len(reference)+len(current))
	for token := range reference {
		union[token] = struct{}{}
	}
	for token := range current {
		union[token] = struct{}{}
	}

	shifts := make([]domain.TokenShift, 0, len(union))
	for token := range union {
		ref := reference[token]
		cur := current[token]
		shifts = append(shifts, domain.TokenShift{
			Token:   token,
			RefProb: ref,
			NewProb: cur,
			Delta:   cur - ref,
		})
	}
	return shifts
}

// jensenShannon is JSD(P,Q) = (KL(P||M) + KL(Q||M)) / 2 with M = (P+Q)/2,
// natural log. Tokens with zero probability contribute nothing, per the
// 0*log(0/x) = 0 convention.
func jensenShannon(p, q map[string]float64) float64 {
	mid := make(map[string]float64, len(p)+len(q))
	for token, value := range p {
		mid[token] += 0.5 * value
	}
	for token, value := range q {
		mid[token] += 0.5 * value
	}
	return 0.5*klDivergence(p, mid) + 0.5*klDivergence(q, mid)
}

func klDivergence(p, m map[string]float64) float64 {
	score := 0.0
	for token, value := range p {
		if value == 0 {
			continue
		}
		score += value * math.Log(value/m[token])
	}
	return score
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
