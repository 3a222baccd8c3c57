package models

import "encoding/json"

// Nullable is a JSON field that distinguishes three states a pointer cannot:
//   - absent:  Set=false, Valid=false
//   - null:    Set=true,  Valid=false
//   - a value: Set=true,  Valid=true, Value holds it
//
// PATCH requests use it so "notes": null clears a field while an omitted
// field leaves it alone.
type Nullable[T any] struct {
	Value T
	Valid bool
	Set   bool
}

// NullableString is a nullable string field.
type NullableString = Nullable[string]

// NullableFloat64 is a nullable number field.
type NullableFloat64 = Nullable[float64]

// UnmarshalJSON is only invoked when the key is present, which is what
// marks the field as Set.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true

	var zero T
	if string(data) == "null" {
		n.Valid = false
		n.Value = zero
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = v
	n.Valid = true
	return nil
}

// MarshalJSON writes null for an invalid value.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// ToPtr returns nil when the value is null or absent.
func (n Nullable[T]) ToPtr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}
