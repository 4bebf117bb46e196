package repository

import (
	"context"
	"errors"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/entity"
	domainRepo "github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale invoice repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

// Create persists the invoice with its line items in one transaction. GORM
// cascades the Items association on create.
func (r *saleRepository) Create(ctx context.Context, invoice *entity.SaleInvoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SaleInvoice, error) {
	var invoice entity.SaleInvoice
	err := r.db.WithContext(ctx).Scopes(StoreScope(ctx)).First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *saleRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.SaleInvoice, error) {
	var invoice entity.SaleInvoice
	err := r.db.WithContext(ctx).Scopes(StoreScope(ctx)).
		Preload("Items").Preload("Items.Product").
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.SaleInvoice, int64, error) {
	var invoices []entity.SaleInvoice
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.SaleInvoice{}).Scopes(StoreScope(ctx))

	if params.Search != "" {
		query = query.Where("code ILIKE ? OR customer_name ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.PaymentMethod != nil {
		query = query.Where("payment_method = ?", *params.PaymentMethod)
	}

	if params.StartDate != nil {
		query = query.Where("sold_at >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("sold_at < ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Order("sold_at DESC").
		Find(&invoices).Error

	return invoices, total, err
}
