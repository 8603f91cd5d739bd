package dto

import "encoding/json"

// Optional tracks whether a key appeared in a PATCH payload. encoding/json
// only invokes UnmarshalJSON for keys that are present, so the zero value
// means "omitted". A present null decodes to Set=true with a nil Value,
// which is how a client clears a nullable field.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// Some returns an Optional carrying v. Test helper, mostly.
func Some[T any](v T) Optional[T] { return Optional[T]{Set: true, Value: &v} }

// Null returns an Optional that was explicitly set to null.
func Null[T any]() Optional[T] { return Optional[T]{Set: true} }
