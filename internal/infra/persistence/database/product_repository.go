package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"ratesmart/internal/domain/entity"
	domainerrors "ratesmart/internal/domain/errors"
	"ratesmart/internal/domain/repository"
	"ratesmart/internal/infra/persistence/model"
)

const productColumns = "products.id, products.business_id, products.name, products.created_at, businesses.name AS business_name"

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) joined(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Table("products").
		Select(productColumns).
		Joins("JOIN businesses ON businesses.id = products.business_id")
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var rows []model.ProductRow
	if err := repo.joined(ctx).Where("products.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find product by id")
	}
	if len(rows) == 0 {
		return nil, repository.ErrProductNotFound
	}

	return toProductDomain(&rows[0]), nil
}

func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := repo.joined(ctx)
	if filter.BusinessID != uuid.Nil {
		query = query.Where("products.business_id = ?", filter.BusinessID)
	}

	var rows []model.ProductRow
	if err := query.Order("products.created_at DESC").Order("products.id DESC").Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	out := make([]*entity.Product, 0, len(rows))
	for i := range rows {
		out = append(out, toProductDomain(&rows[i]))
	}

	return out, nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	m := &model.ProductModel{
		ID:         product.ID,
		BusinessID: product.BusinessID,
		Name:       product.Name,
	}

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBusinessNotFound.WrapMessage("product owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = m.ID
	product.CreatedAt = m.CreatedAt

	return nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	err := repo.db.WithContext(ctx).Model(&model.ProductModel{ID: product.ID}).
		Select("BusinessID", "Name").
		Updates(&model.ProductModel{BusinessID: product.BusinessID, Name: product.Name}).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBusinessNotFound.WrapMessage("product owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&model.ReviewModel{}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to delete product reviews")
		}

		result := tx.Where("id = ?", id).Delete(&model.ProductModel{})
		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
		}
		if result.RowsAffected == 0 {
			return repository.ErrProductNotFound
		}

		return nil
	})
}

func (repo *productRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.ProductModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete products")
	}

	return result.RowsAffected, nil
}

func toProductDomain(r *model.ProductRow) *entity.Product {
	return &entity.Product{
		ID:           r.ID,
		BusinessID:   r.BusinessID,
		BusinessName: r.BusinessName,
		Name:         r.Name,
		CreatedAt:    r.CreatedAt,
	}
}
