package analysis

import (
	"regexp"
	"strings"

	"ratesmart/internal/domain/entity"
)

var (
	wordPattern       = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	suspiciousPattern = []*regexp.Regexp{
		regexp.MustCompile(`(?i)https?://\S+`),
		regexp.MustCompile(`(?i)\b[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}\b`),
	}
)

// IsFake reports whether a review looks fabricated. Any one of these flags it:
// fewer than 3 words and fewer than 10 characters, a single word making up
// more than 80% of the text, an extreme rating with fewer than 3 words, or a
// link or email address in the text.
func IsFake(text string, rating int) bool {
	normalized := strings.TrimSpace(strings.ToLower(text))
	words := wordPattern.FindAllString(normalized, -1)
	wordCount := len(words)

	if wordCount < 3 && len([]rune(normalized)) < 10 {
		return true
	}

	if wordCount > 0 {
		counts := make(map[string]int, wordCount)
		top := 0
		for _, w := range words {
			counts[w]++
			top = max(top, counts[w])
		}
		if float64(top) > float64(wordCount)*0.8 {
			return true
		}
	}

	if (rating == entity.MinRating || rating == entity.MaxRating) && wordCount < 3 {
		return true
	}

	for _, p := range suspiciousPattern {
		if p.MatchString(normalized) {
			return true
		}
	}

	return false
}
