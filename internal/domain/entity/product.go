package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a product in the store's inventory
type Product struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	StoreID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"store_id"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	Code          string          `gorm:"size:100;uniqueIndex:idx_products_store_code;not null" json:"code"`
	Unit          string          `gorm:"size:50;default:'unit'" json:"unit"`
	Quantity      int             `gorm:"default:0" json:"quantity"`
	QuantityAlert int             `gorm:"default:0" json:"quantity_alert"`
	ImportPrice   decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"import_price"`
	SellPrice     decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"sell_price"`
	Notes         *string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Store Store `gorm:"foreignKey:StoreID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// IsLowStock reports whether the stock has fallen to the alert level
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.QuantityAlert
}
