package repository

import (
	"context"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/entity"
	"github.com/google/uuid"
)

// IdempotencyRepository defines the interface for idempotency key storage
type IdempotencyRepository interface {
	GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error)
	Save(ctx context.Context, key *entity.IdempotencyKey) error
	DeleteExpired(ctx context.Context) error
}
