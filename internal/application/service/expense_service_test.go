package service

import (
	"context"
	"strings"
	"testing"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/entity"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/enum"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/repository"
	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExpenseRepo struct {
	expenses map[uuid.UUID]*entity.Expense
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: make(map[uuid.UUID]*entity.Expense)}
}

func (f *fakeExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error {
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	f.expenses[expense.ID] = expense
	return nil
}

func (f *fakeExpenseRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	return f.expenses[id], nil
}

func (f *fakeExpenseRepo) Update(ctx context.Context, expense *entity.Expense) error {
	f.expenses[expense.ID] = expense
	return nil
}

func (f *fakeExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.expenses, id)
	return nil
}

func (f *fakeExpenseRepo) List(ctx context.Context, params *repository.ExpenseFilterParams) ([]entity.Expense, int64, error) {
	out := make([]entity.Expense, 0, len(f.expenses))
	for _, e := range f.expenses {
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

func TestCreateExpense(t *testing.T) {
	storeID := uuid.New()
	svc := NewExpenseService(newFakeExpenseRepo())

	expense, err := svc.CreateExpense(storeCtx(storeID), &CreateExpenseInput{
		UserID:        uuid.New(),
		Amount:        price(120_000),
		Category:      enum.ExpenseCategoryElectricity,
		Description:   "Electricity bill",
		PaymentMethod: enum.PaymentMethodCash,
	})
	require.NoError(t, err)

	assert.Equal(t, storeID, expense.StoreID)
	assert.True(t, strings.HasPrefix(expense.ReferenceCode, "EXP"))
}

func TestCreateExpenseRejectsDebt(t *testing.T) {
	storeID := uuid.New()
	svc := NewExpenseService(newFakeExpenseRepo())

	_, err := svc.CreateExpense(storeCtx(storeID), &CreateExpenseInput{
		UserID:        uuid.New(),
		Amount:        price(120_000),
		Category:      enum.ExpenseCategoryRent,
		PaymentMethod: enum.PaymentMethodDebt,
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "payment_method", appErr.Errors[0].Field)
}
