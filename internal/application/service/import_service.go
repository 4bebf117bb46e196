package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/entity"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/repository"
	infraRepo "github.com/Tanner24/cuahangtaphoa-sub001/internal/infrastructure/repository"
	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/apperror"
	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/pagination"
	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ImportService handles goods import receipts
type ImportService struct {
	importRepo  repository.ImportRepository
	productRepo repository.ProductRepository
}

// NewImportService creates a new import service
func NewImportService(importRepo repository.ImportRepository, productRepo repository.ProductRepository) *ImportService {
	return &ImportService{
		importRepo:  importRepo,
		productRepo: productRepo,
	}
}

// ImportItemInput represents one line item on an import receipt
type ImportItemInput struct {
	ProductID       uuid.UUID
	Quantity        int
	ImportUnitPrice decimal.Decimal
}

// CreateImportInput represents the create import receipt input
type CreateImportInput struct {
	UserID     uuid.UUID
	Supplier   string
	ImportDate *time.Time
	Note       *string
	Items      []ImportItemInput
}

// CreateImport records a goods import: one receipt plus an atomic stock
// increment. The receipt total is derived from the line items, never taken
// from the caller, so it always equals the sum of the line totals.
func (s *ImportService) CreateImport(ctx context.Context, input *CreateImportInput) (*entity.ImportReceipt, error) {
	storeID, ok := infraRepo.GetStoreID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Store context required")
	}

	var fieldErrs []apperror.FieldError
	if input.Supplier == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "supplier", Message: "supplier is required"})
	}
	if len(input.Items) == 0 {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "items", Message: "at least one item is required"})
	}
	for i, item := range input.Items {
		if item.Quantity <= 0 {
			fieldErrs = append(fieldErrs, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "quantity must be positive",
			})
		}
		if item.ImportUnitPrice.IsNegative() {
			fieldErrs = append(fieldErrs, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].import_unit_price", i),
				Message: "unit price cannot be negative",
			})
		}
	}
	if len(fieldErrs) > 0 {
		return nil, apperror.NewValidationError(fieldErrs)
	}

	productIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		productIDs[i] = item.ProductID
	}
	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	totalAmount := decimal.Zero
	items := make([]entity.ImportItem, 0, len(input.Items))
	stockDeltas := make(map[uuid.UUID]int)

	for _, item := range input.Items {
		if _, exists := productMap[item.ProductID]; !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
		}

		lineTotal := item.ImportUnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		totalAmount = totalAmount.Add(lineTotal)

		items = append(items, entity.ImportItem{
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			ImportUnitPrice: item.ImportUnitPrice,
			Total:           lineTotal,
		})
		stockDeltas[item.ProductID] += item.Quantity
	}

	importDate := time.Now()
	if input.ImportDate != nil {
		importDate = *input.ImportDate
	}

	receipt := &entity.ImportReceipt{
		StoreID:     storeID,
		UserID:      input.UserID,
		Code:        utils.GenerateReceiptNo("IMP-"),
		Supplier:    input.Supplier,
		ImportDate:  importDate,
		TotalAmount: totalAmount,
		Note:        input.Note,
		Items:       items,
	}

	if err := s.importRepo.Create(ctx, receipt); err != nil {
		return nil, err
	}

	if _, err := s.productRepo.AdjustStockBatch(ctx, stockDeltas); err != nil {
		return nil, err
	}

	return receipt, nil
}

// GetImport retrieves an import receipt with its items
func (s *ImportService) GetImport(ctx context.Context, id uuid.UUID) (*entity.ImportReceipt, error) {
	receipt, err := s.importRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Import receipt")
	}
	return receipt, nil
}

// ListImports lists import receipts with filtering
func (s *ImportService) ListImports(ctx context.Context, params *repository.ImportFilterParams) (*pagination.PaginatedResult[entity.ImportReceipt], error) {
	receipts, total, err := s.importRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(receipts, pag), nil
}
