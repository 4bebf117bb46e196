package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store represents one retail shop (a tenant) in the multitenant system.
// Every transaction record is scoped to a store; cross-store reads are an
// isolation violation.
type Store struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	OwnerID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	Address   *string        `gorm:"type:text" json:"address,omitempty"`
	Phone     *string        `gorm:"size:50" json:"phone,omitempty"`
	TaxCode   *string        `gorm:"size:50" json:"tax_code,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Owner   User              `gorm:"foreignKey:OwnerID" json:"-"`
	Members []StoreMembership `gorm:"foreignKey:StoreID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new store
func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Store model
func (Store) TableName() string {
	return "stores"
}

// MemberUser represents a subset of user fields for membership responses
type MemberUser struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

// StoreMembership represents a user's membership in a store
type StoreMembership struct {
	StoreID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"store_id"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Role      string    `gorm:"size:50;default:'staff'" json:"role"` // owner, staff
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Store Store `gorm:"foreignKey:StoreID" json:"-"`
	User  User  `gorm:"foreignKey:UserID" json:"-"`

	// Computed field for JSON response
	MemberUser *MemberUser `gorm:"-" json:"user,omitempty"`
}

// PopulateUserDetails populates the MemberUser field from the User relationship
func (sm *StoreMembership) PopulateUserDetails() {
	if sm.User.ID != uuid.Nil {
		sm.MemberUser = &MemberUser{
			ID:        sm.User.ID,
			FirstName: sm.User.FirstName,
			LastName:  sm.User.LastName,
			Email:     sm.User.Email,
		}
	}
}

// TableName returns the table name for the StoreMembership model
func (StoreMembership) TableName() string {
	return "store_memberships"
}
