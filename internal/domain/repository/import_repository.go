package repository

import (
	"context"
	"time"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/entity"
	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// ImportFilterParams contains filtering parameters for import receipt queries
type ImportFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	StartDate  *time.Time
	EndDate    *time.Time
}

// ImportRepository defines the interface for import receipt data operations
type ImportRepository interface {
	// Create persists the receipt together with its line items in one
	// transaction.
	Create(ctx context.Context, receipt *entity.ImportReceipt) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ImportReceipt, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.ImportReceipt, error)
	List(ctx context.Context, params *ImportFilterParams) ([]entity.ImportReceipt, int64, error)
}
