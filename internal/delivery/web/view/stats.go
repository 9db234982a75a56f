package view

import (
	"math"
	"strconv"

	"ratesmart/internal/delivery/api/dto"
	"ratesmart/internal/domain/entity"
)

// DistributionRow is one bar of the rating histogram.
type DistributionRow struct {
	Stars   int
	Count   int
	Percent float64
}

// Distribution counts reviews per star, listed from 5 down to 1. Ratings
// outside 1..5 are not counted.
func Distribution(reviews []dto.Review) []DistributionRow {
	var counts [6]int
	for _, r := range reviews {
		if r.Rating >= 1 && r.Rating <= 5 {
			counts[r.Rating]++
		}
	}

	rows := make([]DistributionRow, 0, 5)
	for stars := 5; stars >= 1; stars-- {
		row := DistributionRow{Stars: stars, Count: counts[stars]}
		if len(reviews) > 0 {
			row.Percent = float64(counts[stars]) / float64(len(reviews)) * 100
		}
		rows = append(rows, row)
	}

	return rows
}

// AverageRating is the mean rating rounded to one decimal. ok is false when
// there are no reviews.
func AverageRating(reviews []dto.Review) (avg float64, ok bool) {
	if len(reviews) == 0 {
		return 0, false
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}

	return math.Round(float64(sum)/float64(len(reviews))*10) / 10, true
}

// FormatAverage renders the average with one decimal, or empty when there
// are no reviews.
func FormatAverage(reviews []dto.Review, empty string) string {
	avg, ok := AverageRating(reviews)
	if !ok {
		return empty
	}

	return strconv.FormatFloat(avg, 'f', 1, 64)
}

// Stats are the dashboard counters of a set of reviews.
type Stats struct {
	Total    int
	Average  string
	Fake     int
	Positive int
	Neutral  int
	Negative int
}

// Summarize computes the dashboard counters.
func Summarize(reviews []dto.Review) Stats {
	stats := Stats{
		Total:   len(reviews),
		Average: FormatAverage(reviews, "0"),
	}

	for _, r := range reviews {
		if r.IsFake {
			stats.Fake++
		}
		switch r.Sentiment {
		case entity.SentimentPositive:
			stats.Positive++
		case entity.SentimentNeutral:
			stats.Neutral++
		case entity.SentimentNegative:
			stats.Negative++
		}
	}

	return stats
}

// CountFake returns how many reviews were flagged.
func CountFake(reviews []dto.Review) int {
	n := 0
	for _, r := range reviews {
		if r.IsFake {
			n++
		}
	}

	return n
}
