package service

import (
	"context"
	"time"
)

// ReviewEventType names what happened to a review.
type ReviewEventType string

const (
	ReviewCreated ReviewEventType = "review.created"
	ReviewReplied ReviewEventType = "review.replied"
	ReviewDeleted ReviewEventType = "review.deleted"
)

// ReviewEvent is published after a review write has been committed.
type ReviewEvent struct {
	RequestID  string          `json:"request_id,omitempty"` // For distributed tracing
	Type       ReviewEventType `json:"type"`
	ReviewID   string          `json:"review_id"`
	ProductID  string          `json:"product_id,omitempty"`
	BusinessID string          `json:"business_id,omitempty"`
	Rating     int             `json:"rating,omitempty"`
	Sentiment  string          `json:"sentiment,omitempty"`
	IsFake     bool            `json:"is_fake"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishReviewEvent publishes a review event for downstream consumers
	PublishReviewEvent(ctx context.Context, event *ReviewEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
