package registrant

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Prop is a single labeled property value.
type Prop struct {
	Key   string
	Value interface{}
}

// Props is an ordered collection of labeled properties. Insertion order is
// preserved, including through JSON marshaling. Values are strings, numbers,
// nested Props (coded-value mappings) or [2]float64 (range pairs).
type Props []Prop

// Get returns the value for key and whether it is present.
func (p Props) Get(key string) (interface{}, bool) {
	for _, prop := range p {
		if prop.Key == key {
			return prop.Value, true
		}
	}
	return nil, false
}

// Keys returns the property keys in order.
func (p Props) Keys() []string {
	keys := make([]string, len(p))
	for i, prop := range p {
		keys[i] = prop.Key
	}
	return keys
}

// Set appends the key/value pair, or replaces the value in place if the key
// is already present.
func (p *Props) Set(key string, value interface{}) {
	for i, prop := range *p {
		if prop.Key == key {
			(*p)[i].Value = value
			return
		}
	}
	*p = append(*p, Prop{Key: key, Value: value})
}

// MarshalJSON encodes the properties as a JSON object whose members appear in
// insertion order. Plain map-based marshaling would sort keys alphabetically
// and break the fixed label order contract.
func (p Props) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, prop := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(prop.Key)
		if err != nil {
			return nil, fmt.Errorf("marshal key %q: %w", prop.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(prop.Value)
		if err != nil {
			return nil, fmt.Errorf("marshal value for %q: %w", prop.Key, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
