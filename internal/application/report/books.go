package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/entity"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/enum"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/repository"
	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RevenueRow is one invoice in the revenue ledger (book s1)
type RevenueRow struct {
	Date      time.Time       `json:"date"`
	Code      string          `json:"code"`
	Buyer     string          `json:"buyer"`
	Revenue   decimal.Decimal `json:"revenue"`
	VATAmount decimal.Decimal `json:"vat_amount"`
	PITAmount decimal.Decimal `json:"pit_amount"`
}

// InventoryRow is one line-item movement in the inventory ledger (book s2).
// StockAfter is a per-product quantity running balance, independent of the
// money ledgers. It is seeded at zero for the period because no
// opening-stock snapshot is modeled.
type InventoryRow struct {
	Date        time.Time `json:"date"`
	DocumentRef string    `json:"document_ref"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Unit        string    `json:"unit"`
	QuantityIn  int       `json:"quantity_in"`
	QuantityOut int       `json:"quantity_out"`
	StockAfter  int       `json:"stock_after"`
}

// ExpenseRow is one voucher in the expense ledger (book s3)
type ExpenseRow struct {
	Date          time.Time            `json:"date"`
	ReferenceCode string               `json:"reference_code"`
	Category      enum.ExpenseCategory `json:"category"`
	Description   string               `json:"description"`
	PaymentMethod enum.PaymentMethod   `json:"payment_method"`
	Amount        decimal.Decimal      `json:"amount"`
}

// TaxPaymentRow is one voucher in the tax payment ledger (book s4)
type TaxPaymentRow struct {
	Date          time.Time          `json:"date"`
	ReferenceCode string             `json:"reference_code"`
	TaxKind       enum.TaxKind       `json:"tax_kind"`
	Description   string             `json:"description"`
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
	Amount        decimal.Decimal    `json:"amount"`
}

// SalaryRow is one employee's pay in the salary ledger (book s5)
type SalaryRow struct {
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	EmployeeName string          `json:"employee_name"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	Bonus        decimal.Decimal `json:"bonus"`
	Deduction    decimal.Decimal `json:"deduction"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	PaymentDate  time.Time       `json:"payment_date"`
}

// buildRevenueBook shapes one row per invoice sold in the period, with VAT
// and PIT computed from the resolved policy
func buildRevenueBook(periodSales []entity.SaleInvoice, policy TaxPolicy) []RevenueRow {
	rows := make([]RevenueRow, 0, len(periodSales))
	for _, inv := range periodSales {
		buyer := "Walk-in customer"
		if inv.CustomerName != nil && *inv.CustomerName != "" {
			buyer = *inv.CustomerName
		}
		rows = append(rows, RevenueRow{
			Date:      inv.SoldAt,
			Code:      inv.Code,
			Buyer:     buyer,
			Revenue:   inv.TotalAmount,
			VATAmount: inv.TotalAmount.Mul(policy.VATRate),
			PITAmount: inv.TotalAmount.Mul(policy.PITRate),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	return rows
}

// stockMove is an intermediate quantity movement used to build the
// inventory ledger
type stockMove struct {
	date      time.Time
	ref       string
	productID uuid.UUID
	in        int
	out       int
}

// buildInventoryBook shapes one row per line item, imports counted in and
// sales counted out, with a per-product running stock quantity. Sales arrive
// already validated by summarize; receipts are checked here before their
// items are booked.
func (s *ReportService) buildInventoryBook(ctx context.Context, storeID uuid.UUID, periodSales []entity.SaleInvoice, imports []entity.ImportReceipt) ([]InventoryRow, error) {
	moves := make([]stockMove, 0)
	for _, rcp := range imports {
		if err := checkRecord(storeID, rcp.StoreID, "import receipt", rcp.Code, rcp.ImportDate, rcp.TotalAmount, true); err != nil {
			return nil, err
		}
		for _, item := range rcp.Items {
			moves = append(moves, stockMove{date: rcp.ImportDate, ref: rcp.Code, productID: item.ProductID, in: item.Quantity})
		}
	}
	for _, inv := range periodSales {
		for _, item := range inv.Items {
			moves = append(moves, stockMove{date: inv.SoldAt, ref: inv.Code, productID: item.ProductID, out: item.Quantity})
		}
	}

	// Receipts before issues on the same date
	sort.SliceStable(moves, func(i, j int) bool { return moves[i].date.Before(moves[j].date) })

	// One batched lookup for the distinct products referenced by the moves
	seen := make(map[uuid.UUID]bool)
	ids := make([]uuid.UUID, 0, len(moves))
	for _, m := range moves {
		if !seen[m.productID] {
			seen[m.productID] = true
			ids = append(ids, m.productID)
		}
	}
	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	productByID := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productByID[products[i].ID] = &products[i]
	}

	stock := make(map[uuid.UUID]int)
	rows := make([]InventoryRow, 0, len(moves))
	for _, m := range moves {
		stock[m.productID] += m.in - m.out
		row := InventoryRow{
			Date:        m.date,
			DocumentRef: m.ref,
			ProductID:   m.productID,
			QuantityIn:  m.in,
			QuantityOut: m.out,
			StockAfter:  stock[m.productID],
		}
		if p, ok := productByID[m.productID]; ok {
			row.ProductName = p.Name
			row.Unit = p.Unit
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// buildExpenseBook shapes one outflow row per expense voucher
func buildExpenseBook(storeID uuid.UUID, expenses []entity.Expense) ([]ExpenseRow, error) {
	rows := make([]ExpenseRow, 0, len(expenses))
	for _, exp := range expenses {
		if err := checkRecord(storeID, exp.StoreID, "expense", exp.ReferenceCode, exp.Date, exp.Amount, true); err != nil {
			return nil, err
		}
		rows = append(rows, ExpenseRow{
			Date:          exp.Date,
			ReferenceCode: exp.ReferenceCode,
			Category:      exp.Category,
			Description:   exp.Description,
			PaymentMethod: exp.PaymentMethod,
			Amount:        exp.Amount,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	return rows, nil
}

// buildTaxPaymentBook shapes one outflow row per tax payment voucher
func buildTaxPaymentBook(storeID uuid.UUID, payments []entity.TaxPayment) ([]TaxPaymentRow, error) {
	rows := make([]TaxPaymentRow, 0, len(payments))
	for _, pay := range payments {
		if err := checkRecord(storeID, pay.StoreID, "tax payment", pay.ReferenceCode, pay.Date, pay.Amount, true); err != nil {
			return nil, err
		}
		rows = append(rows, TaxPaymentRow{
			Date:          pay.Date,
			ReferenceCode: pay.ReferenceCode,
			TaxKind:       pay.TaxKind,
			Description:   pay.Description,
			PaymentMethod: pay.PaymentMethod,
			Amount:        pay.Amount,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	return rows, nil
}

// buildSalaryBook shapes one row per employee for the payroll run
func buildSalaryBook(storeID uuid.UUID, payments []entity.SalaryPayment) ([]SalaryRow, error) {
	rows := make([]SalaryRow, 0, len(payments))
	for _, pay := range payments {
		if pay.StoreID != storeID {
			return nil, apperror.NewDataIntegrityError(
				fmt.Sprintf("salary payment for %s belongs to another store", pay.EmployeeName))
		}
		if !pay.TotalAmount.Equal(pay.BaseSalary.Add(pay.Bonus).Sub(pay.Deduction)) {
			return nil, apperror.NewDataIntegrityError(
				fmt.Sprintf("salary payment for %s has inconsistent total", pay.EmployeeName))
		}
		rows = append(rows, SalaryRow{
			Month:        pay.Month,
			Year:         pay.Year,
			EmployeeName: pay.EmployeeName,
			BaseSalary:   pay.BaseSalary,
			Bonus:        pay.Bonus,
			Deduction:    pay.Deduction,
			TotalAmount:  pay.TotalAmount,
			PaymentDate:  pay.PaymentDate,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].EmployeeName < rows[j].EmployeeName })
	return rows, nil
}

// buildMoneyBook runs the full merge / opening balance / running balance
// pipeline for the cash book (s6) or bank book (s7)
func buildMoneyBook(ctx context.Context, q repository.LedgerQuery, storeID uuid.UUID, ch Channel, periodStart, periodEnd time.Time) ([]BalancedRow, error) {
	prior, err := fetchSources(ctx, q, storeID, nil, &periodStart)
	if err != nil {
		return nil, err
	}
	priorEntries, err := mergeEntries(storeID, ch, prior)
	if err != nil {
		return nil, err
	}
	// Opening balance: replay of everything strictly before the period,
	// on the same channel. Negative values are reported as-is; masking
	// them would hide a data-entry problem upstream.
	opening := sumEntries(priorEntries)

	period, err := fetchSources(ctx, q, storeID, &periodStart, &periodEnd)
	if err != nil {
		return nil, err
	}
	entries, err := mergeEntries(storeID, ch, period)
	if err != nil {
		return nil, err
	}

	return accumulate(opening, periodStart, entries), nil
}

// fetchSources pulls all money-movement streams for one store and range
func fetchSources(ctx context.Context, q repository.LedgerQuery, storeID uuid.UUID, from, before *time.Time) (mergeSources, error) {
	var src mergeSources
	var err error

	if src.Sales, err = q.SalesInRange(ctx, storeID, from, before); err != nil {
		return src, err
	}
	if src.Imports, err = q.ImportsInRange(ctx, storeID, from, before); err != nil {
		return src, err
	}
	if src.Expenses, err = q.ExpensesInRange(ctx, storeID, from, before); err != nil {
		return src, err
	}
	if src.TaxPayments, err = q.TaxPaymentsInRange(ctx, storeID, from, before); err != nil {
		return src, err
	}
	return src, nil
}
