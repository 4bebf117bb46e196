package repository

import (
	"context"
	"time"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/entity"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/enum"
	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// TaxPaymentFilterParams contains filtering parameters for tax payment queries
type TaxPaymentFilterParams struct {
	Pagination *pagination.PaginationParams
	TaxKind    *enum.TaxKind
	StartDate  *time.Time
	EndDate    *time.Time
}

// TaxPaymentRepository defines the interface for tax payment voucher data operations
type TaxPaymentRepository interface {
	Create(ctx context.Context, payment *entity.TaxPayment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.TaxPayment, error)
	Update(ctx context.Context, payment *entity.TaxPayment) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *TaxPaymentFilterParams) ([]entity.TaxPayment, int64, error)
}
