package repository

import (
	"context"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/entity"
	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// SalaryFilterParams contains filtering parameters for salary payment queries
type SalaryFilterParams struct {
	Pagination *pagination.PaginationParams
	Month      *int
	Year       *int
	Employee   string
}

// SalaryRepository defines the interface for salary payment data operations
type SalaryRepository interface {
	Create(ctx context.Context, payment *entity.SalaryPayment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SalaryPayment, error)
	Update(ctx context.Context, payment *entity.SalaryPayment) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *SalaryFilterParams) ([]entity.SalaryPayment, int64, error)
}
