package service

import (
	"strings"
	"testing"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/entity"
	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateImportDerivesTotalFromItems(t *testing.T) {
	storeID := uuid.New()
	rice := &entity.Product{ID: uuid.New(), StoreID: storeID, Name: "Rice 5kg", Quantity: 3}
	oil := &entity.Product{ID: uuid.New(), StoreID: storeID, Name: "Cooking oil", Quantity: 0}

	products := newFakeProductRepo(rice, oil)
	imports := &fakeImportRepo{}
	svc := NewImportService(imports, products)

	receipt, err := svc.CreateImport(storeCtx(storeID), &CreateImportInput{
		UserID:   uuid.New(),
		Supplier: "Cho Lon wholesale",
		Items: []ImportItemInput{
			{ProductID: rice.ID, Quantity: 20, ImportUnitPrice: price(120_000)},
			{ProductID: oil.ID, Quantity: 10, ImportUnitPrice: price(45_000)},
		},
	})
	require.NoError(t, err)

	// 20 x 120,000 + 10 x 45,000
	assert.True(t, receipt.TotalAmount.Equal(price(2_850_000)))
	assert.True(t, strings.HasPrefix(receipt.Code, "IMP-"))
	require.Len(t, receipt.Items, 2)
	assert.True(t, receipt.Items[0].Total.Equal(price(2_400_000)))

	assert.Equal(t, 23, products.products[rice.ID].Quantity)
	assert.Equal(t, 10, products.products[oil.ID].Quantity)
	require.Len(t, imports.receipts, 1)
}

func TestCreateImportValidation(t *testing.T) {
	storeID := uuid.New()
	rice := &entity.Product{ID: uuid.New(), StoreID: storeID, Name: "Rice 5kg"}
	svc := NewImportService(&fakeImportRepo{}, newFakeProductRepo(rice))

	_, err := svc.CreateImport(storeCtx(storeID), &CreateImportInput{
		UserID:   uuid.New(),
		Supplier: "",
		Items: []ImportItemInput{
			{ProductID: rice.ID, Quantity: 0, ImportUnitPrice: price(120_000)},
		},
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)

	fields := make([]string, 0, len(appErr.Errors))
	for _, fe := range appErr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"supplier", "items[0].quantity"}, fields)
}

func TestCreateImportUnknownProduct(t *testing.T) {
	storeID := uuid.New()
	svc := NewImportService(&fakeImportRepo{}, newFakeProductRepo())

	_, err := svc.CreateImport(storeCtx(storeID), &CreateImportInput{
		UserID:   uuid.New(),
		Supplier: "Cho Lon wholesale",
		Items: []ImportItemInput{
			{ProductID: uuid.New(), Quantity: 5, ImportUnitPrice: price(10_000)},
		},
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
