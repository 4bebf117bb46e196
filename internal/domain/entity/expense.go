package entity

import (
	"time"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense represents an operating expense voucher
type Expense struct {
	ID            uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	StoreID       uuid.UUID            `gorm:"type:uuid;not null;index" json:"store_id"`
	UserID        uuid.UUID            `gorm:"type:uuid;not null;index" json:"user_id"`
	Date          time.Time            `gorm:"not null;index" json:"date"`
	Amount        decimal.Decimal      `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category      enum.ExpenseCategory `gorm:"default:6" json:"category"`
	Description   string               `gorm:"type:text" json:"description"`
	PaymentMethod enum.PaymentMethod   `gorm:"default:0" json:"payment_method"`
	ReferenceCode string               `gorm:"size:100;not null" json:"reference_code"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
	DeletedAt     gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relationships
	Store Store `gorm:"foreignKey:StoreID" json:"-"`
	User  User  `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}
