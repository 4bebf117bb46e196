package service

import (
	"context"
	"time"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/entity"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/repository"
	infraRepo "github.com/Tanner24/cuahangtaphoa-sub001/internal/infrastructure/repository"
	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/apperror"
	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalaryService handles payroll records
type SalaryService struct {
	salaryRepo repository.SalaryRepository
}

// NewSalaryService creates a new salary service
func NewSalaryService(salaryRepo repository.SalaryRepository) *SalaryService {
	return &SalaryService{salaryRepo: salaryRepo}
}

// CreateSalaryInput represents the create salary payment input
type CreateSalaryInput struct {
	UserID       uuid.UUID
	Month        int
	Year         int
	EmployeeName string
	BaseSalary   decimal.Decimal
	Bonus        decimal.Decimal
	Deduction    decimal.Decimal
	PaymentDate  *time.Time
}

// CreateSalary records one employee's pay for a payroll run. TotalAmount is
// always computed server-side as base + bonus - deduction.
func (s *SalaryService) CreateSalary(ctx context.Context, input *CreateSalaryInput) (*entity.SalaryPayment, error) {
	storeID, ok := infraRepo.GetStoreID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Store context required")
	}

	var fieldErrs []apperror.FieldError
	if input.Month < 1 || input.Month > 12 {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "month", Message: "month must be between 1 and 12"})
	}
	if input.Year < 2000 || input.Year > 2100 {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "year", Message: "year is out of range"})
	}
	if input.EmployeeName == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "employee_name", Message: "employee name is required"})
	}
	if input.BaseSalary.IsNegative() || input.Bonus.IsNegative() || input.Deduction.IsNegative() {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "amounts", Message: "salary amounts cannot be negative"})
	}
	if len(fieldErrs) > 0 {
		return nil, apperror.NewValidationError(fieldErrs)
	}

	paymentDate := time.Now()
	if input.PaymentDate != nil {
		paymentDate = *input.PaymentDate
	}

	payment := &entity.SalaryPayment{
		StoreID:      storeID,
		UserID:       input.UserID,
		Month:        input.Month,
		Year:         input.Year,
		EmployeeName: input.EmployeeName,
		BaseSalary:   input.BaseSalary,
		Bonus:        input.Bonus,
		Deduction:    input.Deduction,
		TotalAmount:  input.BaseSalary.Add(input.Bonus).Sub(input.Deduction),
		PaymentDate:  paymentDate,
	}

	if err := s.salaryRepo.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// GetSalary retrieves a salary payment by ID
func (s *SalaryService) GetSalary(ctx context.Context, id uuid.UUID) (*entity.SalaryPayment, error) {
	payment, err := s.salaryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Salary payment")
	}
	return payment, nil
}

// UpdateSalaryInput represents the update salary payment input
type UpdateSalaryInput struct {
	ID          uuid.UUID
	BaseSalary  *decimal.Decimal
	Bonus       *decimal.Decimal
	Deduction   *decimal.Decimal
	PaymentDate *time.Time
}

// UpdateSalary corrects a payroll record, recomputing the total
func (s *SalaryService) UpdateSalary(ctx context.Context, input *UpdateSalaryInput) (*entity.SalaryPayment, error) {
	payment, err := s.salaryRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Salary payment")
	}

	if input.BaseSalary != nil {
		payment.BaseSalary = *input.BaseSalary
	}
	if input.Bonus != nil {
		payment.Bonus = *input.Bonus
	}
	if input.Deduction != nil {
		payment.Deduction = *input.Deduction
	}
	if payment.BaseSalary.IsNegative() || payment.Bonus.IsNegative() || payment.Deduction.IsNegative() {
		return nil, apperror.NewBadRequestError("Salary amounts cannot be negative")
	}
	if input.PaymentDate != nil {
		payment.PaymentDate = *input.PaymentDate
	}

	payment.TotalAmount = payment.BaseSalary.Add(payment.Bonus).Sub(payment.Deduction)

	if err := s.salaryRepo.Update(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// DeleteSalary soft-deletes a salary payment
func (s *SalaryService) DeleteSalary(ctx context.Context, id uuid.UUID) error {
	payment, err := s.salaryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if payment == nil {
		return apperror.NewNotFoundError("Salary payment")
	}
	return s.salaryRepo.Delete(ctx, id)
}

// ListSalaries lists salary payments with filtering
func (s *SalaryService) ListSalaries(ctx context.Context, params *repository.SalaryFilterParams) (*pagination.PaginatedResult[entity.SalaryPayment], error) {
	payments, total, err := s.salaryRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(payments, pag), nil
}
