package entity

import (
	"time"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TaxPayment represents a tax payment voucher (VAT, PIT, license tax)
type TaxPayment struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	StoreID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"store_id"`
	UserID        uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	Date          time.Time          `gorm:"not null;index" json:"date"`
	Amount        decimal.Decimal    `gorm:"type:decimal(15,2);not null" json:"amount"`
	TaxKind       enum.TaxKind       `gorm:"default:3" json:"tax_kind"`
	Description   string             `gorm:"type:text" json:"description"`
	PaymentMethod enum.PaymentMethod `gorm:"default:0" json:"payment_method"`
	ReferenceCode string             `gorm:"size:100;not null" json:"reference_code"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Store Store `gorm:"foreignKey:StoreID" json:"-"`
	User  User  `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new tax payment
func (t *TaxPayment) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TaxPayment model
func (TaxPayment) TableName() string {
	return "tax_payments"
}
