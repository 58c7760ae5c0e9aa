package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Browser form clients serialize every input as a string, so numeric columns
// arrive either as JSON numbers or as quoted digits ("1"). FlexInt and
// FlexFloat accept both forms and store the coerced value; null and
// unparseable strings coerce to zero. They marshal back as plain numbers.

// FlexInt is an integer column tolerant of string-typed JSON input.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	v, err := coerceNumeric(data)
	if err != nil {
		return err
	}
	*n = FlexInt(int(v))
	return nil
}

// FlexFloat is a decimal column tolerant of string-typed JSON input.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	v, err := coerceNumeric(data)
	if err != nil {
		return err
	}
	*f = FlexFloat(v)
	return nil
}

// coerceNumeric parses a JSON number, a quoted number, or null. A string
// that does not parse as a number coerces to 0; a non-string, non-number
// token is a decode error.
func coerceNumeric(data []byte) (float64, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return 0, nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, nil
		}
		return v, nil
	}
	return strconv.ParseFloat(string(data), 64)
}
