package service

import (
	"testing"

	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSalaryComputesTotal(t *testing.T) {
	storeID := uuid.New()
	repo := newFakeSalaryRepo()
	svc := NewSalaryService(repo)

	payment, err := svc.CreateSalary(storeCtx(storeID), &CreateSalaryInput{
		UserID:       uuid.New(),
		Month:        3,
		Year:         2025,
		EmployeeName: "Tran Binh",
		BaseSalary:   price(5_000_000),
		Bonus:        price(500_000),
		Deduction:    price(200_000),
	})
	require.NoError(t, err)

	assert.True(t, payment.TotalAmount.Equal(price(5_300_000)))
	assert.Equal(t, storeID, payment.StoreID)
}

func TestCreateSalaryIgnoresCallerTotal(t *testing.T) {
	// The input has no total field at all; only the computed value is stored
	storeID := uuid.New()
	svc := NewSalaryService(newFakeSalaryRepo())

	payment, err := svc.CreateSalary(storeCtx(storeID), &CreateSalaryInput{
		UserID:       uuid.New(),
		Month:        1,
		Year:         2026,
		EmployeeName: "Le An",
		BaseSalary:   price(6_000_000),
	})
	require.NoError(t, err)
	assert.True(t, payment.TotalAmount.Equal(price(6_000_000)))
}

func TestCreateSalaryValidation(t *testing.T) {
	storeID := uuid.New()
	svc := NewSalaryService(newFakeSalaryRepo())

	_, err := svc.CreateSalary(storeCtx(storeID), &CreateSalaryInput{
		UserID:       uuid.New(),
		Month:        13,
		Year:         2025,
		EmployeeName: "",
		BaseSalary:   price(5_000_000),
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)

	fields := make([]string, 0, len(appErr.Errors))
	for _, fe := range appErr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"month", "employee_name"}, fields)
}

func TestUpdateSalaryRecomputesTotal(t *testing.T) {
	storeID := uuid.New()
	repo := newFakeSalaryRepo()
	svc := NewSalaryService(repo)

	payment, err := svc.CreateSalary(storeCtx(storeID), &CreateSalaryInput{
		UserID:       uuid.New(),
		Month:        3,
		Year:         2025,
		EmployeeName: "Tran Binh",
		BaseSalary:   price(5_000_000),
	})
	require.NoError(t, err)

	bonus := price(1_000_000)
	updated, err := svc.UpdateSalary(storeCtx(storeID), &UpdateSalaryInput{
		ID:    payment.ID,
		Bonus: &bonus,
	})
	require.NoError(t, err)
	assert.True(t, updated.TotalAmount.Equal(price(6_000_000)))
}
