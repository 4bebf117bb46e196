package repository

import (
	"context"
	"time"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/entity"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/enum"
	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// ExpenseFilterParams contains filtering parameters for expense queries
type ExpenseFilterParams struct {
	Pagination *pagination.PaginationParams
	Category   *enum.ExpenseCategory
	StartDate  *time.Time
	EndDate    *time.Time
}

// ExpenseRepository defines the interface for expense voucher data operations
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)
	Update(ctx context.Context, expense *entity.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ExpenseFilterParams) ([]entity.Expense, int64, error)
}
