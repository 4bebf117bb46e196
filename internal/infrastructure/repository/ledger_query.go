package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/entity"
	domainRepo "github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/repository"
	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ledgerQuery struct {
	db *gorm.DB
}

// NewLedgerQuery creates the read-only transaction view used by the report
// engine
func NewLedgerQuery(db *gorm.DB) domainRepo.LedgerQuery {
	return &ledgerQuery{db: db}
}

// dateRange applies the half-open range filter on the given column: from
// inclusive, before exclusive, nil meaning unbounded.
func dateRange(column string, from, before *time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if from != nil {
			db = db.Where(column+" >= ?", *from)
		}
		if before != nil {
			db = db.Where(column+" < ?", *before)
		}
		return db
	}
}

func (q *ledgerQuery) SalesInRange(ctx context.Context, storeID uuid.UUID, from, before *time.Time) ([]entity.SaleInvoice, error) {
	var invoices []entity.SaleInvoice
	err := q.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Scopes(dateRange("sold_at", from, before)).
		Preload("Items").
		Order("sold_at ASC, created_at ASC").
		Find(&invoices).Error
	return invoices, err
}

func (q *ledgerQuery) ImportsInRange(ctx context.Context, storeID uuid.UUID, from, before *time.Time) ([]entity.ImportReceipt, error) {
	var receipts []entity.ImportReceipt
	err := q.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Scopes(dateRange("import_date", from, before)).
		Preload("Items").
		Order("import_date ASC, created_at ASC").
		Find(&receipts).Error
	return receipts, err
}

func (q *ledgerQuery) ExpensesInRange(ctx context.Context, storeID uuid.UUID, from, before *time.Time) ([]entity.Expense, error) {
	var expenses []entity.Expense
	err := q.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Scopes(dateRange("date", from, before)).
		Order("date ASC, created_at ASC").
		Find(&expenses).Error
	return expenses, err
}

func (q *ledgerQuery) TaxPaymentsInRange(ctx context.Context, storeID uuid.UUID, from, before *time.Time) ([]entity.TaxPayment, error) {
	var payments []entity.TaxPayment
	err := q.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Scopes(dateRange("date", from, before)).
		Order("date ASC, created_at ASC").
		Find(&payments).Error
	return payments, err
}

func (q *ledgerQuery) SalariesForPeriod(ctx context.Context, storeID uuid.UUID, month, year int) ([]entity.SalaryPayment, error) {
	var payments []entity.SalaryPayment
	err := q.db.WithContext(ctx).
		Where("store_id = ? AND month = ? AND year = ?", storeID, month, year).
		Order("employee_name ASC").
		Find(&payments).Error
	return payments, err
}

// InSnapshot runs fn inside one read-only repeatable-read transaction, so
// every stream a report reads comes from the same database snapshot. Under
// PostgreSQL repeatable read is snapshot isolation, which is exactly the
// guarantee the opening-balance replay needs.
func (q *ledgerQuery) InSnapshot(ctx context.Context, fn func(q domainRepo.LedgerQuery) error) error {
	err := q.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ledgerQuery{db: tx})
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	return mapSnapshotError(err)
}

// mapSnapshotError converts a failed transaction begin into a consistency
// fault. errors.Is covers the case where the driver wraps the sentinel.
func mapSnapshotError(err error) error {
	if errors.Is(err, gorm.ErrInvalidTransaction) {
		return apperror.NewConsistencyError("snapshot transaction could not be started")
	}
	return err
}
