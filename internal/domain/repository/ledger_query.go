package repository

import (
	"context"
	"time"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/entity"
	"github.com/google/uuid"
)

// LedgerQuery is the read-only view of the transaction stores consumed by
// the accounting report engine. One method per source kind, each scoped to a
// single store and a half-open date range: from is inclusive (nil = no lower
// bound, i.e. all history), before is exclusive (nil = no upper bound).
//
// The exclusive upper bound is deliberate: "last instant of the month" is
// expressed as the first instant of the next month, so the same cutoff is
// applied identically to opening-balance replay and period reads.
type LedgerQuery interface {
	SalesInRange(ctx context.Context, storeID uuid.UUID, from, before *time.Time) ([]entity.SaleInvoice, error)
	ImportsInRange(ctx context.Context, storeID uuid.UUID, from, before *time.Time) ([]entity.ImportReceipt, error)
	ExpensesInRange(ctx context.Context, storeID uuid.UUID, from, before *time.Time) ([]entity.Expense, error)
	TaxPaymentsInRange(ctx context.Context, storeID uuid.UUID, from, before *time.Time) ([]entity.TaxPayment, error)

	// SalariesForPeriod fetches one payroll run. Salary payments are scoped
	// by (month, year) exactly, never by payment-date range.
	SalariesForPeriod(ctx context.Context, storeID uuid.UUID, month, year int) ([]entity.SalaryPayment, error)

	// InSnapshot runs fn against a read-consistent snapshot of all the
	// streams above. Every read a single report performs must go through
	// one snapshot: if writes land between the opening-balance replay and
	// the period fetch, the two become mutually inconsistent at the period
	// boundary. Implementations that cannot guarantee a snapshot must
	// return a consistency error instead of proceeding.
	InSnapshot(ctx context.Context, fn func(q LedgerQuery) error) error
}
