package usecase

import (
	"fmt"
	"strings"
	"time"

	"spamsift/internal/adapter/classifier"
	"spamsift/internal/domain"
)

const topTokensPerLabel = 12

// BuildModelCard renders a markdown model card for a trained classifier.
func BuildModelCard(c *classifier.Classifier, modelName string, metrics domain.Metrics) string {
	artifact := c.Artifact()
	var b strings.Builder

	fmt.Fprintf(&b, "# Model Card: %s\n\n", modelName)
	fmt.Fprintf(&b, "**Version**: %s  \n", artifact.Version)
	fmt.Fprintf(&b, "**Trained At**: %s  \n", artifact.TrainedAt)
	fmt.Fprintf(&b, "**Report Generated**: %s\n\n", time.Now().UTC().Format("2006-01-02"))

	b.WriteString("## Overview\n")
	fmt.Fprintf(&b, "- **Labels**: %s\n", strings.Join(artifact.Labels, ", "))
	fmt.Fprintf(&b, "- **Positive Label**: %s\n", artifact.PositiveLabel())
	fmt.Fprintf(&b, "- **Dataset Size**: %d\n", artifact.DatasetSize)
	fmt.Fprintf(&b, "- **Vocabulary Size**: %d\n\n", artifact.VocabularySize)

	b.WriteString("## Metrics\n")
	fmt.Fprintf(&b, "- **Precision**: %.3f\n", metrics.Precision)
	fmt.Fprintf(&b, "- **Recall**: %.3f\n", metrics.Recall)
	fmt.Fprintf(&b, "- **F1 Score**: %.3f\n", metrics.F1)
	fmt.Fprintf(&b, "- **Accuracy**: %.3f\n\n", metrics.Accuracy)

	b.WriteString("## Feature Highlights\n")
	for _, label := range artifact.Labels {
		fmt.Fprintf(&b, "### Top tokens for `%s`\n", label)
		for _, token := range c.TopTokens(label, topTokensPerLabel) {
			fmt.Fprintf(&b, "- `%s` (%.4f)\n", token.Token, token.Contribution)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Intended Use\n")
	b.WriteString("- High-volume SMS/email filtering.\n")
	b.WriteString("- Human-in-the-loop moderation workflows.\n\n")

	b.WriteString("## Limitations\n")
	b.WriteString("- Uses token frequency only; sarcasm and context can be missed.\n")
	b.WriteString("- Drift monitoring is recommended for new domains.\n")

	return b.String()
}
