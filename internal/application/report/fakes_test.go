package report

import (
	"context"
	"time"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/entity"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/repository"
	"github.com/google/uuid"
)

// fakeLedger is an in-memory LedgerQuery backed by plain slices. Range
// filtering mirrors the production semantics: from inclusive, before
// exclusive, nil meaning unbounded.
type fakeLedger struct {
	sales       []entity.SaleInvoice
	imports     []entity.ImportReceipt
	expenses    []entity.Expense
	taxPayments []entity.TaxPayment
	salaries    []entity.SalaryPayment

	snapshotErr error
	snapshots   int
}

func inRange(date time.Time, from, before *time.Time) bool {
	if from != nil && date.Before(*from) {
		return false
	}
	if before != nil && !date.Before(*before) {
		return false
	}
	return true
}

func (f *fakeLedger) SalesInRange(_ context.Context, storeID uuid.UUID, from, before *time.Time) ([]entity.SaleInvoice, error) {
	var out []entity.SaleInvoice
	for _, inv := range f.sales {
		if inv.StoreID == storeID && inRange(inv.SoldAt, from, before) {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (f *fakeLedger) ImportsInRange(_ context.Context, storeID uuid.UUID, from, before *time.Time) ([]entity.ImportReceipt, error) {
	var out []entity.ImportReceipt
	for _, rcp := range f.imports {
		if rcp.StoreID == storeID && inRange(rcp.ImportDate, from, before) {
			out = append(out, rcp)
		}
	}
	return out, nil
}

func (f *fakeLedger) ExpensesInRange(_ context.Context, storeID uuid.UUID, from, before *time.Time) ([]entity.Expense, error) {
	var out []entity.Expense
	for _, exp := range f.expenses {
		if exp.StoreID == storeID && inRange(exp.Date, from, before) {
			out = append(out, exp)
		}
	}
	return out, nil
}

func (f *fakeLedger) TaxPaymentsInRange(_ context.Context, storeID uuid.UUID, from, before *time.Time) ([]entity.TaxPayment, error) {
	var out []entity.TaxPayment
	for _, pay := range f.taxPayments {
		if pay.StoreID == storeID && inRange(pay.Date, from, before) {
			out = append(out, pay)
		}
	}
	return out, nil
}

func (f *fakeLedger) SalariesForPeriod(_ context.Context, storeID uuid.UUID, month, year int) ([]entity.SalaryPayment, error) {
	var out []entity.SalaryPayment
	for _, pay := range f.salaries {
		if pay.StoreID == storeID && pay.Month == month && pay.Year == year {
			out = append(out, pay)
		}
	}
	return out, nil
}

func (f *fakeLedger) InSnapshot(_ context.Context, fn func(q repository.LedgerQuery) error) error {
	if f.snapshotErr != nil {
		return f.snapshotErr
	}
	f.snapshots++
	return fn(f)
}

// fakeProductRepo implements just enough of ProductRepository for the
// inventory book's batched name lookup.
type fakeProductRepo struct {
	products map[uuid.UUID]entity.Product
	batches  int
}

func (f *fakeProductRepo) Create(context.Context, *entity.Product) error { return nil }
func (f *fakeProductRepo) Update(context.Context, *entity.Product) error { return nil }
func (f *fakeProductRepo) Delete(context.Context, uuid.UUID) error       { return nil }

func (f *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	if p, ok := f.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (f *fakeProductRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	f.batches++
	var out []entity.Product
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) List(context.Context, *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	return nil, 0, nil
}

func (f *fakeProductRepo) AdjustStockBatch(context.Context, map[uuid.UUID]int) ([]uuid.UUID, error) {
	return nil, nil
}
