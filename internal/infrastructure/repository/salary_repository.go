package repository

import (
	"context"
	"errors"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/entity"
	domainRepo "github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type salaryRepository struct {
	db *gorm.DB
}

// NewSalaryRepository creates a new salary payment repository
func NewSalaryRepository(db *gorm.DB) domainRepo.SalaryRepository {
	return &salaryRepository{db: db}
}

func (r *salaryRepository) Create(ctx context.Context, payment *entity.SalaryPayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *salaryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SalaryPayment, error) {
	var payment entity.SalaryPayment
	err := r.db.WithContext(ctx).Scopes(StoreScope(ctx)).First(&payment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &payment, err
}

func (r *salaryRepository) Update(ctx context.Context, payment *entity.SalaryPayment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

func (r *salaryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(StoreScope(ctx)).
		Delete(&entity.SalaryPayment{}, "id = ?", id).Error
}

func (r *salaryRepository) List(ctx context.Context, params *domainRepo.SalaryFilterParams) ([]entity.SalaryPayment, int64, error) {
	var payments []entity.SalaryPayment
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.SalaryPayment{}).Scopes(StoreScope(ctx))

	if params.Month != nil {
		query = query.Where("month = ?", *params.Month)
	}

	if params.Year != nil {
		query = query.Where("year = ?", *params.Year)
	}

	if params.Employee != "" {
		query = query.Where("employee_name ILIKE ?", "%"+params.Employee+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("year DESC, month DESC, employee_name ASC").
		Find(&payments).Error

	return payments, total, err
}
