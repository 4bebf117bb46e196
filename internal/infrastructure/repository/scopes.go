package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ctxKey string

const (
	// StoreIDKey is the context key for the current store
	StoreIDKey ctxKey = "store_id"
	// SkipStoreScopeKey is the context key for skipping the store scope (platform admin)
	SkipStoreScopeKey ctxKey = "skip_store_scope"
)

// StoreScope returns a GORM scope that filters by the store carried in the
// request context. It must be applied to every query over store-scoped
// entities: a transaction from one store leaking into another store's books
// is a cross-tenant data breach, not just a wrong number.
func StoreScope(ctx context.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if skipScope, ok := ctx.Value(SkipStoreScopeKey).(bool); ok && skipScope {
			return db
		}

		storeID, ok := ctx.Value(StoreIDKey).(uuid.UUID)
		if !ok {
			// Fail-safe: no store context means no rows, never all rows
			return db.Where("1 = 0")
		}
		return db.Where("store_id = ?", storeID)
	}
}

// WithSkipStoreScope adds the skip-store-scope flag to context (platform admin)
func WithSkipStoreScope(ctx context.Context, skip bool) context.Context {
	return context.WithValue(ctx, SkipStoreScopeKey, skip)
}

// WithStore adds the store ID to context
func WithStore(ctx context.Context, storeID uuid.UUID) context.Context {
	return context.WithValue(ctx, StoreIDKey, storeID)
}

// GetStoreID extracts the store ID from context
func GetStoreID(ctx context.Context) (uuid.UUID, bool) {
	storeID, ok := ctx.Value(StoreIDKey).(uuid.UUID)
	return storeID, ok
}
