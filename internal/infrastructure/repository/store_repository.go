package repository

import (
	"context"
	"errors"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/entity"
	domainRepo "github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository creates a new store repository
func NewStoreRepository(db *gorm.DB) domainRepo.StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(store).Error; err != nil {
			return err
		}
		// The creator is always an owner member
		membership := &entity.StoreMembership{
			StoreID: store.ID,
			UserID:  store.OwnerID,
			Role:    "owner",
		}
		return tx.Create(membership).Error
	})
}

func (r *storeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var store entity.Store
	err := r.db.WithContext(ctx).First(&store, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &store, err
}

func (r *storeRepository) GetBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	var store entity.Store
	err := r.db.WithContext(ctx).First(&store, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &store, err
}

func (r *storeRepository) Update(ctx context.Context, store *entity.Store) error {
	return r.db.WithContext(ctx).Save(store).Error
}

func (r *storeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Store{}, "id = ?", id).Error
}

func (r *storeRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]entity.Store, error) {
	var stores []entity.Store
	err := r.db.WithContext(ctx).
		Joins("JOIN store_memberships ON store_memberships.store_id = stores.id").
		Where("store_memberships.user_id = ?", userID).
		Order("stores.name ASC").
		Find(&stores).Error
	return stores, err
}

func (r *storeRepository) AddMember(ctx context.Context, membership *entity.StoreMembership) error {
	return r.db.WithContext(ctx).Create(membership).Error
}

func (r *storeRepository) RemoveMember(ctx context.Context, storeID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&entity.StoreMembership{}, "store_id = ? AND user_id = ?", storeID, userID).Error
}

func (r *storeRepository) IsMember(ctx context.Context, storeID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.StoreMembership{}).
		Where("store_id = ? AND user_id = ?", storeID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *storeRepository) ListMembers(ctx context.Context, storeID uuid.UUID) ([]entity.StoreMembership, error) {
	var memberships []entity.StoreMembership
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("store_id = ?", storeID).
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	for i := range memberships {
		memberships[i].PopulateUserDetails()
	}
	return memberships, nil
}
