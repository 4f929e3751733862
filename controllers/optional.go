package controllers

import "encoding/json"

// Optional distinguishes an absent JSON field from an explicit null in
// partial-update payloads: absent means "leave unchanged", null is either a
// caller error or, for nullable FK columns, a request to clear the value.
type Optional[T any] struct {
	Set   bool
	Valid bool // false when the field was an explicit null
	Value T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// Ptr returns the value for an update map: nil clears a nullable column.
func (o Optional[T]) Ptr() *T {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
