package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/entity"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/enum"
	infraRepo "github.com/Tanner24/cuahangtaphoa-sub001/internal/infrastructure/repository"
	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeCtx(storeID uuid.UUID) context.Context {
	return infraRepo.WithStore(context.Background(), storeID)
}

func price(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestCheckoutComputesTotalsAndDecrementsStock(t *testing.T) {
	storeID := uuid.New()
	rice := &entity.Product{ID: uuid.New(), StoreID: storeID, Name: "Rice 5kg", Quantity: 10, SellPrice: price(150_000)}
	oil := &entity.Product{ID: uuid.New(), StoreID: storeID, Name: "Cooking oil", Quantity: 4, SellPrice: price(60_000)}

	products := newFakeProductRepo(rice, oil)
	sales := &fakeSaleRepo{}
	svc := NewSaleService(sales, products)

	negotiated := price(55_000)
	invoice, err := svc.Checkout(storeCtx(storeID), &CheckoutInput{
		UserID:        uuid.New(),
		PaymentMethod: enum.PaymentMethodCash,
		Items: []SaleItemInput{
			{ProductID: rice.ID, Quantity: 2},
			{ProductID: oil.ID, Quantity: 3, UnitPrice: &negotiated},
		},
	})
	require.NoError(t, err)

	// 2 x 150,000 catalog + 3 x 55,000 negotiated
	assert.True(t, invoice.TotalAmount.Equal(price(465_000)))
	assert.Equal(t, storeID, invoice.StoreID)
	assert.True(t, strings.HasPrefix(invoice.Code, "INV-"))
	require.Len(t, invoice.Items, 2)
	assert.True(t, invoice.Items[0].UnitPrice.Equal(price(150_000)))
	assert.True(t, invoice.Items[1].UnitPrice.Equal(negotiated))

	assert.Equal(t, 8, products.products[rice.ID].Quantity)
	assert.Equal(t, 1, products.products[oil.ID].Quantity)
	require.Len(t, sales.invoices, 1)
}

func TestCheckoutInsufficientStock(t *testing.T) {
	storeID := uuid.New()
	rice := &entity.Product{ID: uuid.New(), StoreID: storeID, Name: "Rice 5kg", Quantity: 1, SellPrice: price(150_000)}

	products := newFakeProductRepo(rice)
	svc := NewSaleService(&fakeSaleRepo{}, products)

	_, err := svc.Checkout(storeCtx(storeID), &CheckoutInput{
		UserID:        uuid.New(),
		PaymentMethod: enum.PaymentMethodCash,
		Items:         []SaleItemInput{{ProductID: rice.ID, Quantity: 5}},
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
	assert.Contains(t, appErr.Message, "Rice 5kg")
	assert.Equal(t, 1, products.products[rice.ID].Quantity)
}

func TestCheckoutDebtRequiresCustomerName(t *testing.T) {
	storeID := uuid.New()
	rice := &entity.Product{ID: uuid.New(), StoreID: storeID, Name: "Rice 5kg", Quantity: 10, SellPrice: price(150_000)}

	svc := NewSaleService(&fakeSaleRepo{}, newFakeProductRepo(rice))

	_, err := svc.Checkout(storeCtx(storeID), &CheckoutInput{
		UserID:        uuid.New(),
		PaymentMethod: enum.PaymentMethodDebt,
		Items:         []SaleItemInput{{ProductID: rice.ID, Quantity: 1}},
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "customer_name", appErr.Errors[0].Field)
}

func TestCheckoutRestoresStockWhenCreateFails(t *testing.T) {
	storeID := uuid.New()
	rice := &entity.Product{ID: uuid.New(), StoreID: storeID, Name: "Rice 5kg", Quantity: 10, SellPrice: price(150_000)}

	products := newFakeProductRepo(rice)
	sales := &fakeSaleRepo{createErr: errors.New("connection reset")}
	svc := NewSaleService(sales, products)

	_, err := svc.Checkout(storeCtx(storeID), &CheckoutInput{
		UserID:        uuid.New(),
		PaymentMethod: enum.PaymentMethodTransfer,
		Items:         []SaleItemInput{{ProductID: rice.ID, Quantity: 4}},
	})
	require.Error(t, err)

	// The decrement was compensated
	assert.Equal(t, 10, products.products[rice.ID].Quantity)
	assert.Empty(t, sales.invoices)
}

func TestCheckoutRequiresStoreContext(t *testing.T) {
	rice := &entity.Product{ID: uuid.New(), Name: "Rice 5kg", Quantity: 10, SellPrice: price(150_000)}
	svc := NewSaleService(&fakeSaleRepo{}, newFakeProductRepo(rice))

	_, err := svc.Checkout(context.Background(), &CheckoutInput{
		UserID:        uuid.New(),
		PaymentMethod: enum.PaymentMethodCash,
		Items:         []SaleItemInput{{ProductID: rice.ID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
