package cache

import (
	"fmt"
	"testing"
	"time"

	"spamsift/internal/domain"
)

func samplePrediction(label string) domain.Prediction {
	return domain.Prediction{
		Label:      label,
		Confidence: 0.9,
		Probabilities: map[string]float64{
			label: 0.9,
		},
	}
}

func TestPredictionCache_HitMiss(t *testing.T) {
	c := NewPredictionCache(10, time.Minute)

	if _, ok := c.Get("free prizes"); ok {
		t.Error("expected miss on empty cache")
	}

	c.Put("free prizes", samplePrediction("spam"))
	prediction, ok := c.Get("free prizes")
	if !ok {
		t.Fatal("expected hit after Put")
	}
	if prediction.Label != "spam" {
		t.Errorf("expected cached label spam, got %s", prediction.Label)
	}

	if _, ok := c.Get("different text"); ok {
		t.Error("expected miss for different text")
	}
}

func TestPredictionCache_TTLExpiry(t *testing.T) {
	c := NewPredictionCache(10, 10*time.Millisecond)

	c.Put("free prizes", samplePrediction("spam"))
	time.Sleep(25 * time.Millisecond)

	if _, ok := c.Get("free prizes"); ok {
		t.Error("expected entry to expire")
	}
}

func TestPredictionCache_ModelInvalidation(t *testing.T) {
	c := NewPredictionCache(10, time.Minute)

	c.Put("free prizes", samplePrediction("spam"))
	c.InvalidateModel()

	if _, ok := c.Get("free prizes"); ok {
		t.Error("expected entries stale after model invalidation")
	}

	c.Put("free prizes", samplePrediction("ham"))
	prediction, ok := c.Get("free prizes")
	if !ok || prediction.Label != "ham" {
		t.Errorf("expected fresh entry after re-put, got %v ok=%v", prediction, ok)
	}
}

func TestPredictionCache_Eviction(t *testing.T) {
	c := NewPredictionCache(2, time.Minute)

	for i := 0; i < 3; i++ {
		c.Put(fmt.Sprintf("text-%d", i), samplePrediction("spam"))
	}

	if _, ok := c.Get("text-0"); ok {
		t.Error("expected oldest entry evicted")
	}
	if _, ok := c.Get("text-2"); !ok {
		t.Error("expected newest entry retained")
	}
}
