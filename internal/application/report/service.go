package report

import (
	"context"
	"time"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/entity"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/enum"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/repository"
	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportService reconstructs the accounting books of a store for one
// reporting period. It owns no state and performs no writes: every report
// is a fresh projection over the read-only transaction streams.
type ReportService struct {
	ledger      repository.LedgerQuery
	productRepo repository.ProductRepository
}

// NewReportService creates a new report service
func NewReportService(ledger repository.LedgerQuery, productRepo repository.ProductRepository) *ReportService {
	return &ReportService{
		ledger:      ledger,
		productRepo: productRepo,
	}
}

// Summary is the monthly header shared by all books. AccumulatedRevenue,
// TaxThreshold and IsExempt let the dashboard render a progress-to-threshold
// indicator.
type Summary struct {
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	VATAmount          decimal.Decimal `json:"vat_amount"`
	PITAmount          decimal.Decimal `json:"pit_amount"`
	TotalTax           decimal.Decimal `json:"total_tax"`
	AccumulatedRevenue decimal.Decimal `json:"accumulated_revenue"`
	TaxThreshold       decimal.Decimal `json:"tax_threshold"`
	IsExempt           bool            `json:"is_exempt"`
}

// Report is the full payload for one (store, month, year, book) request
type Report struct {
	Summary  Summary       `json:"summary"`
	BookType enum.BookType `json:"book_type"`
	Rows     interface{}   `json:"rows"`
}

// BuildReport validates the request, computes the reporting period and
// assembles the requested book. All ledger reads happen inside one
// read-consistent snapshot; any fault aborts the whole report, because a
// partial financial report is worse than an explicit failure.
func (s *ReportService) BuildReport(ctx context.Context, storeID uuid.UUID, month, year int, book enum.BookType) (*Report, error) {
	var fieldErrs []apperror.FieldError
	if storeID == uuid.Nil {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "store_id", Message: "store is required"})
	}
	if month < 1 || month > 12 {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "month", Message: "month must be between 1 and 12"})
	}
	if year < 2000 || year > 2100 {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "year", Message: "year is out of range"})
	}
	if !book.Valid() {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "book", Message: "unknown book type"})
	}
	if len(fieldErrs) > 0 {
		return nil, apperror.NewValidationError(fieldErrs)
	}

	periodStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)
	yearStart := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)

	var rpt *Report
	err := s.ledger.InSnapshot(ctx, func(q repository.LedgerQuery) error {
		// One fetch covers both the yearly accumulation and the period
		// slice, so the two can never disagree at the period boundary.
		yearSales, err := q.SalesInRange(ctx, storeID, &yearStart, &periodEnd)
		if err != nil {
			return err
		}
		periodSales, summary, err := summarize(storeID, year, periodStart, yearSales)
		if err != nil {
			return err
		}
		policy := ResolvePolicy(year, summary.AccumulatedRevenue)

		var rows interface{}
		switch book {
		case enum.BookRevenue:
			rows = buildRevenueBook(periodSales, policy)
		case enum.BookInventory:
			imports, err := q.ImportsInRange(ctx, storeID, &periodStart, &periodEnd)
			if err != nil {
				return err
			}
			rows, err = s.buildInventoryBook(ctx, storeID, periodSales, imports)
			if err != nil {
				return err
			}
		case enum.BookExpense:
			expenses, err := q.ExpensesInRange(ctx, storeID, &periodStart, &periodEnd)
			if err != nil {
				return err
			}
			rows, err = buildExpenseBook(storeID, expenses)
			if err != nil {
				return err
			}
		case enum.BookTaxPayment:
			payments, err := q.TaxPaymentsInRange(ctx, storeID, &periodStart, &periodEnd)
			if err != nil {
				return err
			}
			rows, err = buildTaxPaymentBook(storeID, payments)
			if err != nil {
				return err
			}
		case enum.BookSalary:
			payments, err := q.SalariesForPeriod(ctx, storeID, month, year)
			if err != nil {
				return err
			}
			rows, err = buildSalaryBook(storeID, payments)
			if err != nil {
				return err
			}
		case enum.BookCash:
			rows, err = buildMoneyBook(ctx, q, storeID, ChannelCash, periodStart, periodEnd)
			if err != nil {
				return err
			}
		case enum.BookBank:
			rows, err = buildMoneyBook(ctx, q, storeID, ChannelBank, periodStart, periodEnd)
			if err != nil {
				return err
			}
		}

		rpt = &Report{Summary: summary, BookType: book, Rows: rows}
		return nil
	})
	if err != nil {
		if apperror.IsAppError(err) {
			return nil, err
		}
		return nil, apperror.NewUpstreamError(err)
	}

	return rpt, nil
}

// BuildSummary computes the monthly summary without assembling book rows,
// for the dashboard threshold indicator.
func (s *ReportService) BuildSummary(ctx context.Context, storeID uuid.UUID, month, year int) (*Summary, error) {
	rpt, err := s.BuildReport(ctx, storeID, month, year, enum.BookRevenue)
	if err != nil {
		return nil, err
	}
	return &rpt.Summary, nil
}

// summarize validates the year-to-date sales stream and splits out the
// period slice while computing revenue totals. Accumulated revenue covers
// Jan 1 through the end of the reporting period; total revenue counts all
// invoices inside the period regardless of payment method, because revenue
// is recognized at sale time even for debt sales.
func summarize(storeID uuid.UUID, year int, periodStart time.Time, yearSales []entity.SaleInvoice) ([]entity.SaleInvoice, Summary, error) {
	accumulated := decimal.Zero
	total := decimal.Zero
	periodSales := make([]entity.SaleInvoice, 0, len(yearSales))

	for _, inv := range yearSales {
		if err := checkRecord(storeID, inv.StoreID, "sale invoice", inv.Code, inv.SoldAt, inv.TotalAmount, false); err != nil {
			return nil, Summary{}, err
		}
		accumulated = accumulated.Add(inv.TotalAmount)
		if !inv.SoldAt.Before(periodStart) {
			total = total.Add(inv.TotalAmount)
			periodSales = append(periodSales, inv)
		}
	}

	policy := ResolvePolicy(year, accumulated)
	vat := total.Mul(policy.VATRate)
	pit := total.Mul(policy.PITRate)

	return periodSales, Summary{
		TotalRevenue:       total,
		VATAmount:          vat,
		PITAmount:          pit,
		TotalTax:           vat.Add(pit),
		AccumulatedRevenue: accumulated,
		TaxThreshold:       policy.Threshold,
		IsExempt:           policy.IsExempt,
	}, nil
}
