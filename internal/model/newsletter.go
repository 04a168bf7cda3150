package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// Newsletter is the only entity the API exposes.
// ID is assigned by the store; Title and Body are required.
type Newsletter struct {
	ID        int64
	Title     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Field is one key/value pair of a FieldMap.
type Field struct {
	Key   string
	Value any
}

// FieldMap is the wire form of an entity: a flat list of fields that
// marshals to a JSON object with keys in declaration order.
type FieldMap []Field

// Fields returns the newsletter's field mapping. Timestamps are only
// present once the newsletter has been stored.
func (n Newsletter) Fields() FieldMap {
	fm := FieldMap{
		{Key: "id", Value: n.ID},
		{Key: "title", Value: n.Title},
		{Key: "body", Value: n.Body},
	}
	if !n.CreatedAt.IsZero() {
		fm = append(fm, Field{Key: "created_at", Value: n.CreatedAt.UTC().Format(time.RFC3339Nano)})
	}
	if !n.UpdatedAt.IsZero() {
		fm = append(fm, Field{Key: "updated_at", Value: n.UpdatedAt.UTC().Format(time.RFC3339Nano)})
	}
	return fm
}

// FieldMaps converts a slice of newsletters, keeping order.
func FieldMaps(items []Newsletter) []FieldMap {
	out := make([]FieldMap, 0, len(items))
	for _, n := range items {
		out = append(out, n.Fields())
	}
	return out
}

// Get returns the value stored under key.
func (fm FieldMap) Get(key string) (any, bool) {
	for _, f := range fm {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Keys lists the field names in order.
func (fm FieldMap) Keys() []string {
	keys := make([]string, 0, len(fm))
	for _, f := range fm {
		keys = append(keys, f.Key)
	}
	return keys
}

// MarshalJSON implements json.Marshaler.
func (fm FieldMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fm {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
