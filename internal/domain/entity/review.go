package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sentiment is the polarity label attached to a review by the backend.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// IsValid checks if the Sentiment is one of the known labels.
func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	default:
		return false
	}
}

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a customer's rating of a product. Sentiment and IsFake are
// derived from the text whenever the review is saved.
type Review struct {
	ID           uuid.UUID
	ProductID    uuid.UUID
	ProductName  string    // Read-only join.
	BusinessID   uuid.UUID // Read-only join through the product.
	BusinessName string    // Read-only join through the product.
	CustomerName string
	Rating       int
	Text         string
	Sentiment    Sentiment
	IsFake       bool
	Reply        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasReply reports whether the business has replied with non-blank text.
func (r *Review) HasReply() bool {
	return strings.TrimSpace(r.Reply) != ""
}

// ValidRating reports whether rating is within the 1..5 star range.
func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}

// ReviewUpdate carries a partial review update. Nil fields are left unchanged.
type ReviewUpdate struct {
	CustomerName *string
	Rating       *int
	Text         *string
	Reply        *string
}

// OnlyReply reports whether the update touches the reply and nothing else.
func (u *ReviewUpdate) OnlyReply() bool {
	return u.Reply != nil && u.CustomerName == nil && u.Rating == nil && u.Text == nil
}
