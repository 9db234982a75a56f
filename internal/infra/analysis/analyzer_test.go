package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ratesmart/config"
	"ratesmart/internal/domain/entity"
)

func TestIsFake(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		rating int
		want   bool
	}{
		{name: "short and few words", text: "ok", rating: 3, want: true},
		{name: "repeated word", text: "good good good good good", rating: 4, want: true},
		{name: "extreme rating with two words", text: "absolutely wonderful", rating: 5, want: true},
		{name: "middle rating with two long words", text: "absolutely wonderful", rating: 4, want: false},
		{name: "contains url", text: "Visit https://spam.example.com for deals now", rating: 3, want: true},
		{name: "contains email", text: "Write to me at deals@spam.com for more", rating: 3, want: true},
		{name: "normal review", text: "The staff were friendly and the food arrived quickly", rating: 5, want: false},
		{name: "empty text", text: "   ", rating: 3, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFake(tt.text, tt.rating))
		})
	}
}

func TestPolarity(t *testing.T) {
	assert.Greater(t, Polarity("The service was excellent and the food was great"), 0.15)
	assert.Less(t, Polarity("Terrible experience, the food was cold and the staff rude"), -0.15)
	assert.Equal(t, 0.0, Polarity("I ordered a sandwich on Tuesday"))
	assert.Less(t, Polarity("not good"), 0.0)
	assert.Greater(t, Polarity("very good"), Polarity("good"))
}

func TestPolarity_StaysInRange(t *testing.T) {
	for _, text := range []string{
		"extremely extremely extremely excellent!!!!!",
		"absolutely absolutely horrible!!!",
	} {
		p := Polarity(text)
		assert.GreaterOrEqual(t, p, -1.0)
		assert.LessOrEqual(t, p, 1.0)
	}
}

func TestReviewAnalyzer_Analyze(t *testing.T) {
	analyzer := NewReviewAnalyzer(&config.Config{})

	got := analyzer.Analyze("Great products and a friendly team, I recommend them", 5)
	assert.Equal(t, entity.SentimentPositive, got.Sentiment)
	assert.False(t, got.IsFake)

	got = analyzer.Analyze("The delivery was late and the package was broken", 2)
	assert.Equal(t, entity.SentimentNegative, got.Sentiment)

	got = analyzer.Analyze("I bought a chair from this shop last week", 3)
	assert.Equal(t, entity.SentimentNeutral, got.Sentiment)
}

func TestReviewAnalyzer_CustomThresholds(t *testing.T) {
	analyzer := NewReviewAnalyzer(&config.Config{
		Analysis: &config.AnalysisConfig{PositiveThreshold: 0.9, NegativeThreshold: -0.9},
	})

	got := analyzer.Analyze("The food was good and the room was clean", 4)
	assert.Equal(t, entity.SentimentNeutral, got.Sentiment)
}
