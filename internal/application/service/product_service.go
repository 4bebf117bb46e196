package service

import (
	"context"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/entity"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/repository"
	infraRepo "github.com/Tanner24/cuahangtaphoa-sub001/internal/infrastructure/repository"
	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/apperror"
	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductService handles product catalog operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name          string
	Code          string
	Unit          string
	Quantity      int
	QuantityAlert int
	ImportPrice   decimal.Decimal
	SellPrice     decimal.Decimal
	Notes         *string
}

// CreateProduct creates a new product in the current store
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	storeID, ok := infraRepo.GetStoreID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Store context required")
	}

	var fieldErrs []apperror.FieldError
	if input.Name == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "name", Message: "name is required"})
	}
	if input.Code == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "code", Message: "code is required"})
	}
	if input.Quantity < 0 {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "quantity", Message: "quantity cannot be negative"})
	}
	if input.ImportPrice.IsNegative() || input.SellPrice.IsNegative() {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "price", Message: "prices cannot be negative"})
	}
	if len(fieldErrs) > 0 {
		return nil, apperror.NewValidationError(fieldErrs)
	}

	unit := input.Unit
	if unit == "" {
		unit = "unit"
	}

	product := &entity.Product{
		StoreID:       storeID,
		Name:          input.Name,
		Code:          input.Code,
		Unit:          unit,
		Quantity:      input.Quantity,
		QuantityAlert: input.QuantityAlert,
		ImportPrice:   input.ImportPrice,
		SellPrice:     input.SellPrice,
		Notes:         input.Notes,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products with filtering and pagination
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	ID            uuid.UUID
	Name          string
	Unit          string
	QuantityAlert *int
	ImportPrice   *decimal.Decimal
	SellPrice     *decimal.Decimal
	Notes         *string
}

// UpdateProduct updates a product's catalog details. Stock quantity is not
// updatable here; it only moves through sales and imports.
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != "" {
		product.Name = input.Name
	}
	if input.Unit != "" {
		product.Unit = input.Unit
	}
	if input.QuantityAlert != nil {
		product.QuantityAlert = *input.QuantityAlert
	}
	if input.ImportPrice != nil {
		if input.ImportPrice.IsNegative() {
			return nil, apperror.NewBadRequestError("Import price cannot be negative")
		}
		product.ImportPrice = *input.ImportPrice
	}
	if input.SellPrice != nil {
		if input.SellPrice.IsNegative() {
			return nil, apperror.NewBadRequestError("Sell price cannot be negative")
		}
		product.SellPrice = *input.SellPrice
	}
	if input.Notes != nil {
		product.Notes = input.Notes
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct soft-deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}
