package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Amount is a money value. The API serializes decimals as strings
// ("1250.50") but plain JSON numbers are accepted as well.
type Amount float64

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(a))
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		*a = Amount(value)
	case string:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", value, err)
		}
		*a = Amount(f)
	case nil:
		*a = 0
	default:
		return fmt.Errorf("invalid amount: %s", string(b))
	}
	return nil
}

// String formats the amount with two decimals.
func (a Amount) String() string {
	return strconv.FormatFloat(float64(a), 'f', 2, 64)
}
