package service

import (
	"context"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/entity"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/repository"
	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/apperror"
	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/utils"
	"github.com/google/uuid"
)

// StoreService handles store (tenant) operations
type StoreService struct {
	storeRepo repository.StoreRepository
	userRepo  repository.UserRepository
}

// NewStoreService creates a new store service
func NewStoreService(storeRepo repository.StoreRepository, userRepo repository.UserRepository) *StoreService {
	return &StoreService{storeRepo: storeRepo, userRepo: userRepo}
}

// CreateStoreInput represents the create store input
type CreateStoreInput struct {
	OwnerID uuid.UUID
	Name    string
	Address *string
	Phone   *string
	TaxCode *string
}

// CreateStore creates a new store owned by the given user
func (s *StoreService) CreateStore(ctx context.Context, input *CreateStoreInput) (*entity.Store, error) {
	slug := utils.Slugify(input.Name)
	existing, err := s.storeRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A store with this name already exists")
	}

	store := &entity.Store{
		Name:    input.Name,
		Slug:    slug,
		OwnerID: input.OwnerID,
		Address: input.Address,
		Phone:   input.Phone,
		TaxCode: input.TaxCode,
	}

	if err := s.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}

	return store, nil
}

// GetStore retrieves a store by ID, restricted to members
func (s *StoreService) GetStore(ctx context.Context, storeID, userID uuid.UUID) (*entity.Store, error) {
	isMember, err := s.storeRepo.IsMember(ctx, storeID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, apperror.ErrForbidden
	}

	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}
	return store, nil
}

// ListStores lists all stores the user is a member of
func (s *StoreService) ListStores(ctx context.Context, userID uuid.UUID) ([]entity.Store, error) {
	return s.storeRepo.ListForUser(ctx, userID)
}

// UpdateStoreInput represents the update store input
type UpdateStoreInput struct {
	StoreID uuid.UUID
	UserID  uuid.UUID
	Name    string
	Address *string
	Phone   *string
	TaxCode *string
}

// UpdateStore updates a store's details, owner only
func (s *StoreService) UpdateStore(ctx context.Context, input *UpdateStoreInput) (*entity.Store, error) {
	store, err := s.storeRepo.GetByID(ctx, input.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}
	if store.OwnerID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	if input.Name != "" {
		store.Name = input.Name
	}
	if input.Address != nil {
		store.Address = input.Address
	}
	if input.Phone != nil {
		store.Phone = input.Phone
	}
	if input.TaxCode != nil {
		store.TaxCode = input.TaxCode
	}

	if err := s.storeRepo.Update(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

// AddMemberInput represents the add member input
type AddMemberInput struct {
	StoreID     uuid.UUID
	RequestedBy uuid.UUID
	Email       string
	Role        string
}

// AddMember adds a user to the store's staff, owner only
func (s *StoreService) AddMember(ctx context.Context, input *AddMemberInput) (*entity.StoreMembership, error) {
	store, err := s.storeRepo.GetByID(ctx, input.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}
	if store.OwnerID != input.RequestedBy {
		return nil, apperror.ErrForbidden
	}

	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	isMember, err := s.storeRepo.IsMember(ctx, input.StoreID, user.ID)
	if err != nil {
		return nil, err
	}
	if isMember {
		return nil, apperror.NewConflictError("User is already a member of this store")
	}

	role := input.Role
	if role == "" {
		role = "staff"
	}

	membership := &entity.StoreMembership{
		StoreID: input.StoreID,
		UserID:  user.ID,
		Role:    role,
	}
	if err := s.storeRepo.AddMember(ctx, membership); err != nil {
		return nil, err
	}
	return membership, nil
}

// RemoveMember removes a user from the store's staff, owner only
func (s *StoreService) RemoveMember(ctx context.Context, storeID, requestedBy, memberID uuid.UUID) error {
	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return err
	}
	if store == nil {
		return apperror.NewNotFoundError("Store")
	}
	if store.OwnerID != requestedBy {
		return apperror.ErrForbidden
	}
	if memberID == store.OwnerID {
		return apperror.NewBadRequestError("The owner cannot be removed from the store")
	}

	return s.storeRepo.RemoveMember(ctx, storeID, memberID)
}

// ListMembers lists the store's members
func (s *StoreService) ListMembers(ctx context.Context, storeID, userID uuid.UUID) ([]entity.StoreMembership, error) {
	isMember, err := s.storeRepo.IsMember(ctx, storeID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, apperror.ErrForbidden
	}

	return s.storeRepo.ListMembers(ctx, storeID)
}
