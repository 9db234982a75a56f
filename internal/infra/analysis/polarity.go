package analysis

import (
	"math"
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_']+|[!]`)

// Polarity scores text in [-1, 1]. Each opinion word contributes its lexicon
// value, scaled by a preceding intensifier and flipped by a preceding negation.
// The score is the mean over the opinion words found; text without any scores 0.
func Polarity(text string) float64 {
	tokens := tokenPattern.FindAllString(strings.ToLower(text), -1)

	var (
		sum       float64
		count     int
		exclaims  int
		modifier  = 1.0
		negated   bool
		sinceMark int
	)

	for _, tok := range tokens {
		if tok == "!" {
			exclaims++

			continue
		}

		if negations[tok] {
			negated = true
			sinceMark = 0

			continue
		}

		if m, ok := intensifiers[tok]; ok {
			modifier *= m

			continue
		}

		value, ok := lexicon[tok]
		if !ok {
			sinceMark++
			// A negation only reaches a couple of words ahead.
			if sinceMark > 2 {
				negated = false
				modifier = 1.0
			}

			continue
		}

		score := value * modifier
		if negated {
			score *= -0.5
		}
		sum += clamp(score)
		count++

		modifier = 1.0
		negated = false
		sinceMark = 0
	}

	if count == 0 {
		return 0
	}

	mean := sum / float64(count)
	if exclaims > 0 && mean != 0 {
		mean *= 1 + 0.1*math.Min(float64(exclaims), 3)
	}

	return round2(clamp(mean))
}

func clamp(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
