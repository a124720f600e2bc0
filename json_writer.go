package hsa

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// orderedJSON builds the JSON object of a report row or a transaction with
// its keys in the order they are added, so that the JSON output reads in the
// same order as the markdown tables. Its zero value is an empty object.
type orderedJSON struct {
	keys   []string
	values []json.RawMessage
	err    error
}

// Field adds key with the JSON encoding of value.
// The first encoding error is kept and returned by MarshalJSON.
func (o *orderedJSON) Field(key string, value any) *orderedJSON {
	if o.err != nil {
		return o
	}
	raw, err := json.Marshal(value)
	if err != nil {
		o.err = fmt.Errorf("cannot encode %q: %w", key, err)
		return o
	}
	o.keys = append(o.keys, key)
	o.values = append(o.values, raw)
	return o
}

// OmitZero adds key only when value is not the zero value of its type,
// like an empty description or a money without currency.
func (o *orderedJSON) OmitZero(key string, value any) *orderedJSON {
	if v := reflect.ValueOf(value); !v.IsValid() || v.IsZero() {
		return o
	}
	return o.Field(key, value)
}

// MarshalJSON implements json.Marshaler.
func (o *orderedJSON) MarshalJSON() ([]byte, error) {
	if o.err != nil {
		return nil, o.err
	}
	var b bytes.Buffer
	b.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		k, _ := json.Marshal(key)
		b.Write(k)
		b.WriteByte(':')
		b.Write(o.values[i])
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}
