package repository

import (
	"context"
	"errors"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/entity"
	domainRepo "github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type taxPaymentRepository struct {
	db *gorm.DB
}

// NewTaxPaymentRepository creates a new tax payment repository
func NewTaxPaymentRepository(db *gorm.DB) domainRepo.TaxPaymentRepository {
	return &taxPaymentRepository{db: db}
}

func (r *taxPaymentRepository) Create(ctx context.Context, payment *entity.TaxPayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *taxPaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.TaxPayment, error) {
	var payment entity.TaxPayment
	err := r.db.WithContext(ctx).Scopes(StoreScope(ctx)).First(&payment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &payment, err
}

func (r *taxPaymentRepository) Update(ctx context.Context, payment *entity.TaxPayment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

func (r *taxPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(StoreScope(ctx)).
		Delete(&entity.TaxPayment{}, "id = ?", id).Error
}

func (r *taxPaymentRepository) List(ctx context.Context, params *domainRepo.TaxPaymentFilterParams) ([]entity.TaxPayment, int64, error) {
	var payments []entity.TaxPayment
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.TaxPayment{}).Scopes(StoreScope(ctx))

	if params.TaxKind != nil {
		query = query.Where("tax_kind = ?", *params.TaxKind)
	}

	if params.StartDate != nil {
		query = query.Where("date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("date < ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("date DESC").
		Find(&payments).Error

	return payments, total, err
}
