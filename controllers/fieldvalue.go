package controllers

import (
	"bytes"
	"encoding/json"
)

// FieldValue accepts any non-null JSON value. Strings keep their text, every
// other value is kept as its raw JSON.
type FieldValue string

func (v *FieldValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = FieldValue(s)
		return nil
	}
	*v = FieldValue(bytes.TrimSpace(data))
	return nil
}

func (v *FieldValue) StringPtr() *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}
