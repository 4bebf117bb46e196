package repository

import (
	"context"
	"time"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/entity"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/enum"
	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// SaleFilterParams contains filtering parameters for invoice queries
type SaleFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string
	PaymentMethod *enum.PaymentMethod
	StartDate     *time.Time
	EndDate       *time.Time
}

// SaleRepository defines the interface for sales invoice data operations
type SaleRepository interface {
	// Create persists the invoice together with its line items in one
	// transaction.
	Create(ctx context.Context, invoice *entity.SaleInvoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SaleInvoice, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.SaleInvoice, error)
	List(ctx context.Context, params *SaleFilterParams) ([]entity.SaleInvoice, int64, error)
}
