package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"ratesmart/internal/domain/entity"
	domainerrors "ratesmart/internal/domain/errors"
	"ratesmart/internal/domain/repository"
	"ratesmart/internal/infra/persistence/model"
)

const reviewColumns = "reviews.*, products.name AS product_name, products.business_id AS business_id, businesses.name AS business_name"

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (repo *reviewRepository) joined(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Table("reviews").
		Select(reviewColumns).
		Joins("JOIN products ON products.id = reviews.product_id").
		Joins("JOIN businesses ON businesses.id = products.business_id")
}

func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var rows []model.ReviewRow
	if err := repo.joined(ctx).Where("reviews.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find review by id")
	}
	if len(rows) == 0 {
		return nil, repository.ErrReviewNotFound
	}

	return toReviewDomain(&rows[0]), nil
}

// List returns reviews newest first.
func (repo *reviewRepository) List(ctx context.Context, filter repository.ReviewFilter) ([]*entity.Review, error) {
	query := repo.joined(ctx)
	if filter.BusinessID != uuid.Nil {
		query = query.Where("products.business_id = ?", filter.BusinessID)
	}
	if filter.ProductID != uuid.Nil {
		query = query.Where("reviews.product_id = ?", filter.ProductID)
	}

	var rows []model.ReviewRow
	if err := query.Order("reviews.created_at DESC").Order("reviews.id DESC").Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	out := make([]*entity.Review, 0, len(rows))
	for i := range rows {
		out = append(out, toReviewDomain(&rows[i]))
	}

	return out, nil
}

func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	m := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("reviewed product does not exist")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRating.WrapMessage("rating out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = m.ID
	review.CreatedAt = m.CreatedAt
	review.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	m := fromReviewDomain(review)
	m.UpdatedAt = time.Now()

	err := repo.db.WithContext(ctx).Model(&model.ReviewModel{ID: review.ID}).
		Select("CustomerName", "Rating", "Text", "Sentiment", "IsFake", "Reply", "UpdatedAt").
		Updates(m).Error
	if err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRating.WrapMessage("rating out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update review")
	}

	review.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ReviewModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

func (repo *reviewRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.ReviewModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete reviews")
	}

	return result.RowsAffected, nil
}

func toReviewDomain(r *model.ReviewRow) *entity.Review {
	return &entity.Review{
		ID:           r.ID,
		ProductID:    r.ProductID,
		ProductName:  r.ProductName,
		BusinessID:   r.BusinessID,
		BusinessName: r.BusinessName,
		CustomerName: r.CustomerName,
		Rating:       r.Rating,
		Text:         r.Text,
		Sentiment:    entity.Sentiment(r.Sentiment),
		IsFake:       r.IsFake,
		Reply:        r.Reply,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func fromReviewDomain(r *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:           r.ID,
		ProductID:    r.ProductID,
		CustomerName: r.CustomerName,
		Rating:       r.Rating,
		Text:         r.Text,
		Sentiment:    string(r.Sentiment),
		IsFake:       r.IsFake,
		Reply:        r.Reply,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
