package repository

import (
	"context"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/entity"
	"github.com/google/uuid"
)

// StoreRepository defines the interface for store (tenant) data operations
type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Store, error)
	Update(ctx context.Context, store *entity.Store) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListForUser(ctx context.Context, userID uuid.UUID) ([]entity.Store, error)

	AddMember(ctx context.Context, membership *entity.StoreMembership) error
	RemoveMember(ctx context.Context, storeID, userID uuid.UUID) error
	IsMember(ctx context.Context, storeID, userID uuid.UUID) (bool, error)
	ListMembers(ctx context.Context, storeID uuid.UUID) ([]entity.StoreMembership, error)
}
