package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "ratesmart/internal/delivery/context"
	"ratesmart/internal/domain/entity"
	domainerrors "ratesmart/internal/domain/errors"
	"ratesmart/internal/domain/repository"
	"ratesmart/internal/domain/service"
	"ratesmart/internal/usecase"
)

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	analyzer    service.ReviewAnalyzer
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo  repository.ReviewRepository
	ProductRepo repository.ProductRepository
	Analyzer    service.ReviewAnalyzer
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:  params.ReviewRepo,
		productRepo: params.ProductRepo,
		analyzer:    params.Analyzer,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *reviewService) List(ctx context.Context, filter usecase.ReviewListFilter) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.List(ctx, repository.ReviewFilter{
		BusinessID: filter.BusinessID,
		ProductID:  filter.ProductID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

func (srv *reviewService) Get(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return review, nil
}

func (srv *reviewService) Create(ctx context.Context, input usecase.CreateReviewInput) (*entity.Review, error) {
	customerName := strings.TrimSpace(input.CustomerName)
	text := strings.TrimSpace(input.Text)

	switch {
	case input.ProductID == uuid.Nil:
		return nil, domainerrors.ErrValidationFailed.WithDetails("product is required")
	case customerName == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("customer name is required")
	case text == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("review text is required")
	case !entity.ValidRating(input.Rating):
		return nil, domainerrors.ErrInvalidRating
	}

	if _, err := srv.productRepo.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("product does not exist")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	review := &entity.Review{
		ProductID:    input.ProductID,
		CustomerName: customerName,
		Rating:       input.Rating,
		Text:         text,
	}
	srv.classify(review)

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	created, err := srv.Get(ctx, review.ID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Review created",
		slog.String("review_id", created.ID.String()),
		slog.String("product_id", created.ProductID.String()),
		slog.String("sentiment", string(created.Sentiment)),
		slog.Bool("is_fake", created.IsFake),
	)
	srv.publish(ctx, service.ReviewCreated, created)

	return created, nil
}

func (srv *reviewService) Update(ctx context.Context, caller usecase.Principal, id uuid.UUID, update entity.ReviewUpdate) (*entity.Review, error) {
	review, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	previousReply := review.Reply

	switch {
	case caller.IsAdmin():
		if err := applyModeratorUpdate(review, update); err != nil {
			return nil, err
		}
	case caller.Owns(review.BusinessID):
		if update.Reply == nil {
			return nil, domainerrors.ErrReplyOnly
		}
		// Other fields from a business are ignored.
		review.Reply = strings.TrimSpace(*update.Reply)
	default:
		return nil, domainerrors.ErrForbidden
	}

	srv.classify(review)

	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to update review")
	}

	updated, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Review updated",
		slog.String("review_id", id.String()),
		slog.Bool("by_admin", caller.IsAdmin()),
	)
	if updated.Reply != previousReply && updated.HasReply() {
		srv.publish(ctx, service.ReviewReplied, updated)
	}

	return updated, nil
}

func (srv *reviewService) Delete(ctx context.Context, caller usecase.Principal, id uuid.UUID) error {
	review, err := srv.Get(ctx, id)
	if err != nil {
		return err
	}
	if !caller.IsAdmin() {
		return domainerrors.ErrForbidden.WithDetails("only an admin can delete reviews")
	}

	if err := srv.reviewRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}

		return errors.Wrap(err, "failed to delete review")
	}

	srv.log(ctx).Info("Review deleted", slog.String("review_id", id.String()))
	srv.publish(ctx, service.ReviewDeleted, review)

	return nil
}

// classify recomputes the derived fields from the current text and rating.
func (srv *reviewService) classify(review *entity.Review) {
	analysis := srv.analyzer.Analyze(review.Text, review.Rating)
	review.Sentiment = analysis.Sentiment
	review.IsFake = analysis.IsFake
}

// publish emits a review event. Failures are logged and never fail the request.
func (srv *reviewService) publish(ctx context.Context, eventType service.ReviewEventType, review *entity.Review) {
	if srv.publisher == nil {
		return
	}

	event := &service.ReviewEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		ReviewID:   review.ID.String(),
		ProductID:  review.ProductID.String(),
		BusinessID: review.BusinessID.String(),
		Rating:     review.Rating,
		Sentiment:  string(review.Sentiment),
		IsFake:     review.IsFake,
		OccurredAt: time.Now().UTC(),
	}

	if err := srv.publisher.PublishReviewEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish review event",
			slog.String("type", string(eventType)),
			slog.String("review_id", event.ReviewID),
			slog.Any("error", err),
		)
	}
}

func applyModeratorUpdate(review *entity.Review, update entity.ReviewUpdate) error {
	if update.CustomerName != nil {
		name := strings.TrimSpace(*update.CustomerName)
		if name == "" {
			return domainerrors.ErrValidationFailed.WithDetails("customer name cannot be empty")
		}
		review.CustomerName = name
	}
	if update.Text != nil {
		text := strings.TrimSpace(*update.Text)
		if text == "" {
			return domainerrors.ErrValidationFailed.WithDetails("review text cannot be empty")
		}
		review.Text = text
	}
	if update.Rating != nil {
		if !entity.ValidRating(*update.Rating) {
			return domainerrors.ErrInvalidRating
		}
		review.Rating = *update.Rating
	}
	if update.Reply != nil {
		review.Reply = strings.TrimSpace(*update.Reply)
	}

	return nil
}
