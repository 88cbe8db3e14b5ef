package usecase

import (
	"fmt"

	"spamsift/internal/adapter/classifier"
	"spamsift/internal/domain"
)

// Evaluate predicts every example and scores the predictions against the
// given positive label.
func Evaluate(c *classifier.Classifier, examples []domain.Example, positiveLabel string) (domain.Metrics, error) {
	if len(examples) == 0 {
		return domain.Metrics{}, fmt.Errorf("%w: evaluation dataset is empty", domain.ErrData)
	}

	var tp, fp, fn, tn int
	for _, example := range examples {
		prediction, err := c.Predict(example.Text)
		if err != nil {
			return domain.Metrics{}, err
		}
		actual := example.Label == positiveLabel
		predicted := prediction.Label == positiveLabel
		switch {
		case actual && predicted:
			tp++
		case !actual && predicted:
			fp++
		case actual && !predicted:
			fn++
		default:
			tn++
		}
	}

	metrics := domain.Metrics{}
	if tp+fp > 0 {
		metrics.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		metrics.Recall = float64(tp) / float64(tp+fn)
	}
	if metrics.Precision+metrics.Recall > 0 {
		metrics.F1 = 2 * metrics.Precision * metrics.Recall / (metrics.Precision + metrics.Recall)
	}
	metrics.Accuracy = float64(tp+tn) / float64(len(examples))

	return metrics, nil
}
