// Package analysis classifies review text: a lexicon polarity score mapped to
// a sentiment label, plus heuristics that flag likely fake reviews.
package analysis

import (
	"ratesmart/config"
	"ratesmart/internal/domain/entity"
	"ratesmart/internal/domain/service"
)

const (
	defaultPositiveThreshold = 0.15
	defaultNegativeThreshold = -0.15
)

type reviewAnalyzer struct {
	positive float64
	negative float64
}

// NewReviewAnalyzer builds the analyzer with thresholds from configuration.
func NewReviewAnalyzer(cfg *config.Config) service.ReviewAnalyzer {
	a := &reviewAnalyzer{
		positive: defaultPositiveThreshold,
		negative: defaultNegativeThreshold,
	}
	if cfg != nil && cfg.Analysis != nil && cfg.Analysis.PositiveThreshold > cfg.Analysis.NegativeThreshold {
		a.positive = cfg.Analysis.PositiveThreshold
		a.negative = cfg.Analysis.NegativeThreshold
	}

	return a
}

func (a *reviewAnalyzer) Analyze(text string, rating int) service.Analysis {
	polarity := Polarity(text)

	return service.Analysis{
		Polarity:  polarity,
		Sentiment: a.label(polarity),
		IsFake:    IsFake(text, rating),
	}
}

func (a *reviewAnalyzer) label(polarity float64) entity.Sentiment {
	switch {
	case polarity > a.positive:
		return entity.SentimentPositive
	case polarity < a.negative:
		return entity.SentimentNegative
	default:
		return entity.SentimentNeutral
	}
}
