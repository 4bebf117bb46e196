package repository

import (
	"context"
	"errors"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/entity"
	domainRepo "github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type importRepository struct {
	db *gorm.DB
}

// NewImportRepository creates a new import receipt repository
func NewImportRepository(db *gorm.DB) domainRepo.ImportRepository {
	return &importRepository{db: db}
}

// Create persists the receipt with its line items in one transaction
func (r *importRepository) Create(ctx context.Context, receipt *entity.ImportReceipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

func (r *importRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ImportReceipt, error) {
	var receipt entity.ImportReceipt
	err := r.db.WithContext(ctx).Scopes(StoreScope(ctx)).First(&receipt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}

func (r *importRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.ImportReceipt, error) {
	var receipt entity.ImportReceipt
	err := r.db.WithContext(ctx).Scopes(StoreScope(ctx)).
		Preload("Items").Preload("Items.Product").
		First(&receipt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}

func (r *importRepository) List(ctx context.Context, params *domainRepo.ImportFilterParams) ([]entity.ImportReceipt, int64, error) {
	var receipts []entity.ImportReceipt
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ImportReceipt{}).Scopes(StoreScope(ctx))

	if params.Search != "" {
		query = query.Where("code ILIKE ? OR supplier ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.StartDate != nil {
		query = query.Where("import_date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("import_date < ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Order("import_date DESC").
		Find(&receipts).Error

	return receipts, total, err
}
