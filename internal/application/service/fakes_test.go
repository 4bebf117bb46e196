package service

import (
	"context"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/entity"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/repository"
	"github.com/google/uuid"
)

type fakeProductRepo struct {
	products  map[uuid.UUID]*entity.Product
	adjusts   int
	adjustErr error
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[uuid.UUID]*entity.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	var out []entity.Product
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	var out []entity.Product
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProductRepo) AdjustStockBatch(ctx context.Context, deltas map[uuid.UUID]int) ([]uuid.UUID, error) {
	f.adjusts++
	if f.adjustErr != nil {
		return nil, f.adjustErr
	}

	var failedIDs []uuid.UUID
	for id, delta := range deltas {
		p, ok := f.products[id]
		if !ok || p.Quantity+delta < 0 {
			failedIDs = append(failedIDs, id)
		}
	}
	if len(failedIDs) > 0 {
		return failedIDs, nil
	}

	for id, delta := range deltas {
		f.products[id].Quantity += delta
	}
	return nil, nil
}

type fakeSaleRepo struct {
	invoices  []*entity.SaleInvoice
	createErr error
}

func (f *fakeSaleRepo) Create(ctx context.Context, invoice *entity.SaleInvoice) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.invoices = append(f.invoices, invoice)
	return nil
}

func (f *fakeSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.SaleInvoice, error) {
	for _, inv := range f.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, nil
}

func (f *fakeSaleRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.SaleInvoice, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeSaleRepo) List(ctx context.Context, params *repository.SaleFilterParams) ([]entity.SaleInvoice, int64, error) {
	out := make([]entity.SaleInvoice, 0, len(f.invoices))
	for _, inv := range f.invoices {
		out = append(out, *inv)
	}
	return out, int64(len(out)), nil
}

type fakeImportRepo struct {
	receipts []*entity.ImportReceipt
}

func (f *fakeImportRepo) Create(ctx context.Context, receipt *entity.ImportReceipt) error {
	f.receipts = append(f.receipts, receipt)
	return nil
}

func (f *fakeImportRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ImportReceipt, error) {
	for _, r := range f.receipts {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeImportRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.ImportReceipt, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeImportRepo) List(ctx context.Context, params *repository.ImportFilterParams) ([]entity.ImportReceipt, int64, error) {
	out := make([]entity.ImportReceipt, 0, len(f.receipts))
	for _, r := range f.receipts {
		out = append(out, *r)
	}
	return out, int64(len(out)), nil
}

type fakeSalaryRepo struct {
	payments map[uuid.UUID]*entity.SalaryPayment
}

func newFakeSalaryRepo() *fakeSalaryRepo {
	return &fakeSalaryRepo{payments: make(map[uuid.UUID]*entity.SalaryPayment)}
}

func (f *fakeSalaryRepo) Create(ctx context.Context, payment *entity.SalaryPayment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	f.payments[payment.ID] = payment
	return nil
}

func (f *fakeSalaryRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.SalaryPayment, error) {
	return f.payments[id], nil
}

func (f *fakeSalaryRepo) Update(ctx context.Context, payment *entity.SalaryPayment) error {
	f.payments[payment.ID] = payment
	return nil
}

func (f *fakeSalaryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.payments, id)
	return nil
}

func (f *fakeSalaryRepo) List(ctx context.Context, params *repository.SalaryFilterParams) ([]entity.SalaryPayment, int64, error) {
	out := make([]entity.SalaryPayment, 0, len(f.payments))
	for _, p := range f.payments {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}
