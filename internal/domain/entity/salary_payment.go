package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SalaryPayment represents one employee's pay for one payroll run.
// It is scoped by (month, year) exactly, not by a date range.
type SalaryPayment struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	StoreID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"store_id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Month        int             `gorm:"not null;index:idx_salaries_period" json:"month"`
	Year         int             `gorm:"not null;index:idx_salaries_period" json:"year"`
	EmployeeName string          `gorm:"size:255;not null" json:"employee_name"`
	BaseSalary   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"base_salary"`
	Bonus        decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"bonus"`
	Deduction    decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"deduction"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total_amount"`
	PaymentDate  time.Time       `gorm:"not null" json:"payment_date"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Store Store `gorm:"foreignKey:StoreID" json:"-"`
	User  User  `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new salary payment
func (s *SalaryPayment) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SalaryPayment model
func (SalaryPayment) TableName() string {
	return "salary_payments"
}
