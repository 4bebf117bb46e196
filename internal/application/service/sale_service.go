package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/entity"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/enum"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/repository"
	infraRepo "github.com/Tanner24/cuahangtaphoa-sub001/internal/infrastructure/repository"
	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/apperror"
	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/pagination"
	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleService handles the POS checkout flow
type SaleService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository, productRepo repository.ProductRepository) *SaleService {
	return &SaleService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
	}
}

// SaleItemInput represents one line item at checkout. UnitPrice overrides
// the catalog sell price when set (negotiated price).
type SaleItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice *decimal.Decimal
}

// CheckoutInput represents the checkout input
type CheckoutInput struct {
	UserID        uuid.UUID
	PaymentMethod enum.PaymentMethod
	CustomerName  *string
	SoldAt        *time.Time
	Items         []SaleItemInput
}

// Checkout records a completed sale: one immutable invoice plus an atomic
// stock decrement. The invoice lands in the revenue ledger and, for cash and
// transfer sales, in the money books.
func (s *SaleService) Checkout(ctx context.Context, input *CheckoutInput) (*entity.SaleInvoice, error) {
	storeID, ok := infraRepo.GetStoreID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Store context required")
	}

	var fieldErrs []apperror.FieldError
	if len(input.Items) == 0 {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "items", Message: "at least one item is required"})
	}
	if !input.PaymentMethod.Valid() {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "payment_method", Message: "unknown payment method"})
	}
	if input.PaymentMethod == enum.PaymentMethodDebt && (input.CustomerName == nil || *input.CustomerName == "") {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "customer_name", Message: "customer name is required for debt sales"})
	}
	for i, item := range input.Items {
		if item.Quantity <= 0 {
			fieldErrs = append(fieldErrs, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "quantity must be positive",
			})
		}
		if item.UnitPrice != nil && item.UnitPrice.IsNegative() {
			fieldErrs = append(fieldErrs, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].unit_price", i),
				Message: "unit price cannot be negative",
			})
		}
	}
	if len(fieldErrs) > 0 {
		return nil, apperror.NewValidationError(fieldErrs)
	}

	// Batch fetch all products in one query
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
	items := make([]entity.SaleItem, 0, len(input.Items))
	stockDeltas := make(map[uuid.UUID]int)

	for _, item := range input.Items {
		product, exists := productMap[item.ProductID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
		}

		unitPrice := product.SellPrice
		if item.UnitPrice != nil {
			unitPrice = *item.UnitPrice
		}
		lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		totalAmount = totalAmount.Add(lineTotal)

		items = append(items, entity.SaleItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
			Total:     lineTotal,
		})
		stockDeltas[product.ID] -= item.Quantity
	}

	// Atomic stock decrement; fails without applying anything when stock
	// is insufficient
	failedIDs, err := s.productRepo.AdjustStockBatch(ctx, stockDeltas)
	if err != nil {
		return nil, err
	}
	if len(failedIDs) > 0 {
		var failedNames []string
		for _, id := range failedIDs {
			if product, exists := productMap[id]; exists {
				failedNames = append(failedNames, product.Name)
			}
		}
		return nil, apperror.NewAppError(400, fmt.Sprintf("Insufficient stock for: %v", failedNames))
	}

	soldAt := time.Now()
	if input.SoldAt != nil {
		soldAt = *input.SoldAt
	}

	invoice := &entity.SaleInvoice{
		StoreID:       storeID,
		UserID:        input.UserID,
		Code:          utils.GenerateInvoiceNo("INV-"),
		SoldAt:        soldAt,
		PaymentMethod: input.PaymentMethod,
		TotalAmount:   totalAmount,
		CustomerName:  input.CustomerName,
		Items:         items,
	}

	if err := s.saleRepo.Create(ctx, invoice); err != nil {
		// Restore the stock taken above
		for id := range stockDeltas {
			stockDeltas[id] = -stockDeltas[id]
		}
		_, _ = s.productRepo.AdjustStockBatch(ctx, stockDeltas)
		return nil, err
	}

	return invoice, nil
}

// GetSale retrieves a sale invoice with its items
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.SaleInvoice, error) {
	invoice, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Sale invoice")
	}
	return invoice, nil
}

// ListSales lists sale invoices with filtering
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.SaleInvoice], error) {
	invoices, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(invoices, pag), nil
}
