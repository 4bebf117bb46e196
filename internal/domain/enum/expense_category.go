package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ExpenseCategory classifies an operating expense entry
type ExpenseCategory int

const (
	ExpenseCategoryElectricity ExpenseCategory = 0
	ExpenseCategoryWater       ExpenseCategory = 1
	ExpenseCategoryRent        ExpenseCategory = 2
	ExpenseCategoryMaterials   ExpenseCategory = 3
	ExpenseCategoryGoodsImport ExpenseCategory = 4
	ExpenseCategoryMarketing   ExpenseCategory = 5
	ExpenseCategoryOther       ExpenseCategory = 6
)

var expenseCategoryNames = [...]string{
	"electricity", "water", "rent", "materials", "goods_import", "marketing", "other",
}

func (c ExpenseCategory) String() string {
	if int(c) < 0 || int(c) >= len(expenseCategoryNames) {
		return "other"
	}
	return expenseCategoryNames[c]
}

// Valid reports whether the value is a known expense category
func (c ExpenseCategory) Valid() bool {
	return c >= ExpenseCategoryElectricity && c <= ExpenseCategoryOther
}

func (c ExpenseCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ExpenseCategory) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*c = ExpenseCategory(i)
		return nil
	}
	for i, name := range expenseCategoryNames {
		if name == str {
			*c = ExpenseCategory(i)
			return nil
		}
	}
	*c = ExpenseCategoryOther
	return nil
}

func (c ExpenseCategory) Value() (driver.Value, error) {
	return int64(c), nil
}

func (c *ExpenseCategory) Scan(value interface{}) error {
	if value == nil {
		*c = ExpenseCategoryOther
		return nil
	}
	switch v := value.(type) {
	case int64:
		*c = ExpenseCategory(v)
	case int:
		*c = ExpenseCategory(v)
	}
	return nil
}
