package entity

import (
	"time"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SaleInvoice represents a completed POS checkout. Invoices are immutable
// once created; the accounting engine treats them as a read-only stream.
type SaleInvoice struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	StoreID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"store_id"`
	UserID        uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	Code          string             `gorm:"size:100;uniqueIndex:idx_invoices_store_code;not null" json:"code"`
	SoldAt        time.Time          `gorm:"not null;index" json:"sold_at"`
	PaymentMethod enum.PaymentMethod `gorm:"default:0" json:"payment_method"`
	TotalAmount   decimal.Decimal    `gorm:"type:decimal(15,2);not null" json:"total_amount"`
	CustomerName  *string            `gorm:"size:255" json:"customer_name,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Store Store      `gorm:"foreignKey:StoreID" json:"-"`
	User  User       `gorm:"foreignKey:UserID" json:"-"`
	Items []SaleItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *SaleInvoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleInvoice model
func (SaleInvoice) TableName() string {
	return "sale_invoices"
}

// SaleItem represents a line item in a sales invoice
type SaleItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID uuid.UUID       `gorm:"type:uuid;not null;index" json:"invoice_id"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	Total     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	// Relationships
	Invoice SaleInvoice `gorm:"foreignKey:InvoiceID" json:"-"`
	Product Product     `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sale item
func (si *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}
