package service

import "ratesmart/internal/domain/entity"

// Analysis is the derived classification of a review text.
type Analysis struct {
	Polarity  float64
	Sentiment entity.Sentiment
	IsFake    bool
}

// ReviewAnalyzer classifies review text. Implementations must be deterministic.
type ReviewAnalyzer interface {
	Analyze(text string, rating int) Analysis
}
