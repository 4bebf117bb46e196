package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// TaxKind classifies a tax payment voucher
type TaxKind int

const (
	TaxKindVAT     TaxKind = 0
	TaxKindPIT     TaxKind = 1
	TaxKindLicense TaxKind = 2
	TaxKindOther   TaxKind = 3
)

var taxKindNames = [...]string{"vat", "pit", "license", "other"}

func (k TaxKind) String() string {
	if int(k) < 0 || int(k) >= len(taxKindNames) {
		return "other"
	}
	return taxKindNames[k]
}

// Valid reports whether the value is a known tax kind
func (k TaxKind) Valid() bool {
	return k >= TaxKindVAT && k <= TaxKindOther
}

func (k TaxKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *TaxKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*k = TaxKind(i)
		return nil
	}
	for i, name := range taxKindNames {
		if name == str {
			*k = TaxKind(i)
			return nil
		}
	}
	*k = TaxKindOther
	return nil
}

func (k TaxKind) Value() (driver.Value, error) {
	return int64(k), nil
}

func (k *TaxKind) Scan(value interface{}) error {
	if value == nil {
		*k = TaxKindOther
		return nil
	}
	switch v := value.(type) {
	case int64:
		*k = TaxKind(v)
	case int:
		*k = TaxKind(v)
	}
	return nil
}
