package repository

import (
	"context"
	"errors"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/entity"
	domainRepo "github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).Scopes(StoreScope(ctx)).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

// GetByIDs retrieves multiple products by their IDs in a single query
func (r *productRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	if len(ids) == 0 {
		return []entity.Product{}, nil
	}
	var products []entity.Product
	err := r.db.WithContext(ctx).Scopes(StoreScope(ctx)).
		Where("id IN ?", ids).
		Find(&products).Error
	return products, err
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(StoreScope(ctx)).
		Delete(&entity.Product{}, "id = ?", id).Error
}

func (r *productRepository) List(ctx context.Context, params *domainRepo.ProductFilterParams) ([]entity.Product, int64, error) {
	var products []entity.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Product{}).Scopes(StoreScope(ctx))

	if params.Search != "" {
		query = query.Where("name ILIKE ? OR code ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.LowStock {
		query = query.Where("quantity <= quantity_alert")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order(sortBy + " " + sortOrder).
		Find(&products).Error

	return products, total, err
}

// AdjustStockBatch applies quantity deltas atomically. A negative delta only
// applies when sufficient stock exists; if any product fails, the whole
// transaction rolls back and the failed IDs are returned.
func (r *productRepository) AdjustStockBatch(ctx context.Context, deltas map[uuid.UUID]int) ([]uuid.UUID, error) {
	if len(deltas) == 0 {
		return nil, nil
	}

	var failedIDs []uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, delta := range deltas {
			query := tx.Model(&entity.Product{}).Scopes(StoreScope(ctx)).Where("id = ?", id)
			if delta < 0 {
				query = query.Where("quantity >= ?", -delta)
			}
			result := query.Update("quantity", gorm.Expr("quantity + ?", delta))

			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				failedIDs = append(failedIDs, id)
			}
		}

		if len(failedIDs) > 0 {
			return gorm.ErrInvalidTransaction
		}
		return nil
	})

	if errors.Is(err, gorm.ErrInvalidTransaction) && len(failedIDs) > 0 {
		return failedIDs, nil
	}
	return failedIDs, err
}
