package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentMethod represents how a transaction was settled
type PaymentMethod int

const (
	PaymentMethodCash     PaymentMethod = 0
	PaymentMethodTransfer PaymentMethod = 1
	PaymentMethodDebt     PaymentMethod = 2
)

func (m PaymentMethod) String() string {
	names := [...]string{"CASH", "TRANSFER", "DEBT"}
	if int(m) < 0 || int(m) >= len(names) {
		return "CASH"
	}
	return names[m]
}

// Valid reports whether the value is a known payment method
func (m PaymentMethod) Valid() bool {
	return m >= PaymentMethodCash && m <= PaymentMethodDebt
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMethod(i)
		return nil
	}
	switch str {
	case "CASH":
		*m = PaymentMethodCash
	case "TRANSFER":
		*m = PaymentMethodTransfer
	case "DEBT":
		*m = PaymentMethodDebt
	}
	return nil
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentMethodCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PaymentMethod(v)
	case int:
		*m = PaymentMethod(v)
	}
	return nil
}
