package repository

import (
	"context"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/entity"
	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// ProductFilterParams contains filtering parameters for product queries
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	LowStock   bool
	SortBy     string
	SortOrder  string
}

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// GetByIDs fetches a batch of products in one query. Ledger assembly
	// hydrates line-item names through this instead of per-row lookups.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)

	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)

	// AdjustStockBatch applies quantity deltas atomically. Negative deltas
	// fail for products without sufficient stock; the IDs that failed are
	// returned and nothing is applied.
	AdjustStockBatch(ctx context.Context, deltas map[uuid.UUID]int) ([]uuid.UUID, error)
}
