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

// ExpenseService handles operating expense vouchers
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// CreateExpenseInput represents the create expense input
type CreateExpenseInput struct {
	UserID        uuid.UUID
	Date          *time.Time
	Amount        decimal.Decimal
	Category      enum.ExpenseCategory
	Description   string
	PaymentMethod enum.PaymentMethod
}

// CreateExpense records an operating expense voucher. Expenses move money
// when booked, so paying one on credit is not supported.
func (s *ExpenseService) CreateExpense(ctx context.Context, input *CreateExpenseInput) (*entity.Expense, error) {
	storeID, ok := infraRepo.GetStoreID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Store context required")
	}

	var fieldErrs []apperror.FieldError
	if !input.Amount.IsPositive() {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "amount", Message: "amount must be positive"})
	}
	if !input.Category.Valid() {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "category", Message: "unknown expense category"})
	}
	if input.PaymentMethod == enum.PaymentMethodDebt {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "payment_method", Message: "expenses cannot be paid by debt"})
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

	expense := &entity.Expense{
		StoreID:       storeID,
		UserID:        input.UserID,
		Date:          date,
		Amount:        input.Amount,
		Category:      input.Category,
		Description:   input.Description,
		PaymentMethod: input.PaymentMethod,
		ReferenceCode: utils.GenerateReferenceCode("EXP"),
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// GetExpense retrieves an expense by ID
func (s *ExpenseService) GetExpense(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}
	return expense, nil
}

// UpdateExpenseInput represents the update expense input
type UpdateExpenseInput struct {
	ID            uuid.UUID
	Date          *time.Time
	Amount        *decimal.Decimal
	Category      *enum.ExpenseCategory
	Description   *string
	PaymentMethod *enum.PaymentMethod
}

// UpdateExpense corrects a previously recorded voucher
func (s *ExpenseService) UpdateExpense(ctx context.Context, input *UpdateExpenseInput) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}

	if input.Date != nil {
		expense.Date = *input.Date
	}
	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, apperror.NewBadRequestError("Amount must be positive")
		}
		expense.Amount = *input.Amount
	}
	if input.Category != nil {
		if !input.Category.Valid() {
			return nil, apperror.NewBadRequestError("Unknown expense category")
		}
		expense.Category = *input.Category
	}
	if input.Description != nil {
		expense.Description = *input.Description
	}
	if input.PaymentMethod != nil {
		if *input.PaymentMethod == enum.PaymentMethodDebt || !input.PaymentMethod.Valid() {
			return nil, apperror.NewBadRequestError("Unsupported payment method for expenses")
		}
		expense.PaymentMethod = *input.PaymentMethod
	}

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// DeleteExpense soft-deletes an expense voucher
func (s *ExpenseService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if expense == nil {
		return apperror.NewNotFoundError("Expense")
	}
	return s.expenseRepo.Delete(ctx, id)
}

// ListExpenses lists expense vouchers with filtering
func (s *ExpenseService) ListExpenses(ctx context.Context, params *repository.ExpenseFilterParams) (*pagination.PaginatedResult[entity.Expense], error) {
	expenses, total, err := s.expenseRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(expenses, pag), nil
}
