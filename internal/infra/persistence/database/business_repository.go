package database

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"ratesmart/internal/domain/entity"
	domainerrors "ratesmart/internal/domain/errors"
	"ratesmart/internal/domain/repository"
	"ratesmart/internal/infra/persistence/model"
)

type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

func (repo *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	var m model.BusinessModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by id")
	}

	return toBusinessDomain(&m), nil
}

func (repo *businessRepository) FindByEmail(ctx context.Context, email string) (*entity.Business, error) {
	var m model.BusinessModel
	err := repo.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by email")
	}

	return toBusinessDomain(&m), nil
}

func (repo *businessRepository) List(ctx context.Context) ([]*entity.Business, error) {
	var models []model.BusinessModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Order("id ASC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	out := make([]*entity.Business, 0, len(models))
	for i := range models {
		out = append(out, toBusinessDomain(&models[i]))
	}

	return out, nil
}

func (repo *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	m := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrBusinessCreationFailed.WrapMessage("missing required business information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	business.ID = m.ID
	business.CreatedAt = m.CreatedAt
	business.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *businessRepository) Update(ctx context.Context, business *entity.Business) error {
	m := fromBusinessDomain(business)
	m.UpdatedAt = time.Now()

	err := repo.db.WithContext(ctx).Model(&model.BusinessModel{ID: business.ID}).
		Select("Name", "Email", "PasswordHash", "Phone", "Country", "State", "Hours", "Description", "IsActive", "IsStaff", "UpdatedAt").
		Updates(m).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update business")
	}

	business.UpdatedAt = m.UpdatedAt

	return nil
}

// Delete removes the business, its products and their reviews. Children are
// removed explicitly so the cascade holds even where foreign keys are not enforced.
func (repo *businessRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := tx.Model(&model.ProductModel{}).Select("id").Where("business_id = ?", id)

		if err := tx.Where("product_id IN (?)", products).Delete(&model.ReviewModel{}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to delete business reviews")
		}
		if err := tx.Where("business_id = ?", id).Delete(&model.ProductModel{}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to delete business products")
		}

		result := tx.Where("id = ?", id).Delete(&model.BusinessModel{})
		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete business")
		}
		if result.RowsAffected == 0 {
			return repository.ErrBusinessNotFound
		}

		return nil
	})
}

func (repo *businessRepository) DeleteNonStaff(ctx context.Context) (int64, error) {
	var deleted int64

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owners := tx.Model(&model.BusinessModel{}).Select("id").Where("is_staff = ?", false)
		products := tx.Model(&model.ProductModel{}).Select("id").Where("business_id IN (?)", owners)

		if err := tx.Where("product_id IN (?)", products).Delete(&model.ReviewModel{}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to delete reviews")
		}
		if err := tx.Where("business_id IN (?)", owners).Delete(&model.ProductModel{}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to delete products")
		}

		result := tx.Where("is_staff = ?", false).Delete(&model.BusinessModel{})
		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete businesses")
		}
		deleted = result.RowsAffected

		return nil
	})

	return deleted, err
}

func toBusinessDomain(m *model.BusinessModel) *entity.Business {
	return &entity.Business{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Phone:        m.Phone,
		Country:      m.Country,
		State:        m.State,
		Hours:        m.Hours,
		Description:  m.Description,
		IsActive:     m.IsActive,
		IsStaff:      m.IsStaff,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromBusinessDomain(b *entity.Business) *model.BusinessModel {
	return &model.BusinessModel{
		ID:           b.ID,
		Name:         b.Name,
		Email:        b.Email,
		PasswordHash: b.PasswordHash,
		Phone:        b.Phone,
		Country:      b.Country,
		State:        b.State,
		Hours:        b.Hours,
		Description:  b.Description,
		IsActive:     b.IsActive,
		IsStaff:      b.IsStaff,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}
