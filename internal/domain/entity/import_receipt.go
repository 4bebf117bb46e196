package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ImportReceipt represents a goods import from a supplier. TotalAmount must
// equal the sum of its line totals; the creation path validates this.
type ImportReceipt struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	StoreID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"store_id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Code        string          `gorm:"size:100;uniqueIndex:idx_imports_store_code;not null" json:"code"`
	Supplier    string          `gorm:"size:255;not null" json:"supplier"`
	ImportDate  time.Time       `gorm:"not null;index" json:"import_date"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total_amount"`
	Note        *string         `gorm:"type:text" json:"note,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Store Store        `gorm:"foreignKey:StoreID" json:"-"`
	User  User         `gorm:"foreignKey:UserID" json:"-"`
	Items []ImportItem `gorm:"foreignKey:ReceiptID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new import receipt
func (r *ImportReceipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ImportReceipt model
func (ImportReceipt) TableName() string {
	return "import_receipts"
}

// ImportItem represents a line item in an import receipt
type ImportItem struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"receipt_id"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity        int             `gorm:"not null" json:"quantity"`
	ImportUnitPrice decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"import_unit_price"`
	Total           decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	// Relationships
	Receipt ImportReceipt `gorm:"foreignKey:ReceiptID" json:"-"`
	Product Product       `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new import item
func (ii *ImportItem) BeforeCreate(tx *gorm.DB) error {
	if ii.ID == uuid.Nil {
		ii.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ImportItem model
func (ImportItem) TableName() string {
	return "import_items"
}
