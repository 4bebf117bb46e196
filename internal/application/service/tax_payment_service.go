package service

import (
	"context"
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

// TaxPaymentService handles tax payment vouchers
type TaxPaymentService struct {
	taxPaymentRepo repository.TaxPaymentRepository
}

// NewTaxPaymentService creates a new tax payment service
func NewTaxPaymentService(taxPaymentRepo repository.TaxPaymentRepository) *TaxPaymentService {
	return &TaxPaymentService{taxPaymentRepo: taxPaymentRepo}
}

// CreateTaxPaymentInput represents the create tax payment input
type CreateTaxPaymentInput struct {
	UserID        uuid.UUID
	Date          *time.Time
	Amount        decimal.Decimal
	TaxKind       enum.TaxKind
	Description   string
	PaymentMethod enum.PaymentMethod
}

// CreateTaxPayment records a tax payment voucher
func (s *TaxPaymentService) CreateTaxPayment(ctx context.Context, input *CreateTaxPaymentInput) (*entity.TaxPayment, error) {
	storeID, ok := infraRepo.GetStoreID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Store context required")
	}

	var fieldErrs []apperror.FieldError
	if !input.Amount.IsPositive() {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "amount", Message: "amount must be positive"})
	}
	if !input.TaxKind.Valid() {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "tax_kind", Message: "unknown tax kind"})
	}
	if input.PaymentMethod == enum.PaymentMethodDebt {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "payment_method", Message: "tax payments cannot be paid by debt"})
	} else if !input.PaymentMethod.Valid() {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "payment_method", Message: "unknown payment method"})
	}
	if len(fieldErrs) > 0 {
		return nil, apperror.NewValidationError(fieldErrs)
	}

	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}

	payment := &entity.TaxPayment{
		StoreID:       storeID,
		UserID:        input.UserID,
		Date:          date,
		Amount:        input.Amount,
		TaxKind:       input.TaxKind,
		Description:   input.Description,
		PaymentMethod: input.PaymentMethod,
		ReferenceCode: utils.GenerateReferenceCode("TAX"),
	}

	if err := s.taxPaymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// GetTaxPayment retrieves a tax payment by ID
func (s *TaxPaymentService) GetTaxPayment(ctx context.Context, id uuid.UUID) (*entity.TaxPayment, error) {
	payment, err := s.taxPaymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Tax payment")
	}
	return payment, nil
}

// DeleteTaxPayment soft-deletes a tax payment voucher
func (s *TaxPaymentService) DeleteTaxPayment(ctx context.Context, id uuid.UUID) error {
	payment, err := s.taxPaymentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if payment == nil {
		return apperror.NewNotFoundError("Tax payment")
	}
	return s.taxPaymentRepo.Delete(ctx, id)
}

// ListTaxPayments lists tax payment vouchers with filtering
func (s *TaxPaymentService) ListTaxPayments(ctx context.Context, params *repository.TaxPaymentFilterParams) (*pagination.PaginatedResult[entity.TaxPayment], error) {
	payments, total, err := s.taxPaymentRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(payments, pag), nil
}
