package enum

// BookType identifies one of the seven accounting report books. The short
// s1..s7 codes are the wire values used by the admin dashboard.
type BookType string

const (
	BookRevenue    BookType = "s1"
	BookInventory  BookType = "s2"
	BookExpense    BookType = "s3"
	BookTaxPayment BookType = "s4"
	BookSalary     BookType = "s5"
	BookCash       BookType = "s6"
	BookBank       BookType = "s7"
)

// Valid reports whether the value is a known book type
func (b BookType) Valid() bool {
	switch b {
	case BookRevenue, BookInventory, BookExpense, BookTaxPayment, BookSalary, BookCash, BookBank:
		return true
	}
	return false
}

// Name returns a human-readable name for the book
func (b BookType) Name() string {
	switch b {
	case BookRevenue:
		return "Revenue ledger"
	case BookInventory:
		return "Inventory ledger"
	case BookExpense:
		return "Expense ledger"
	case BookTaxPayment:
		return "Tax payment ledger"
	case BookSalary:
		return "Salary ledger"
	case BookCash:
		return "Cash book"
	case BookBank:
		return "Bank book"
	}
	return string(b)
}
