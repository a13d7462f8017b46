// Package store provides keyed storage of whole JSON records.
package store

import "encoding/json"

// Well-known record keys.
const (
	KeyInquiries = "inquiries"
	KeySettings  = "admin_settings"
	KeyAdminFlag = "admin_flag"
)

// Store is a keyed blob store. Every write replaces the whole value under its
// key; there are no partial updates.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// Read unmarshals the record under key into T. A missing key, a read error or
// a value that does not parse all degrade to the fallback; corruption never
// surfaces to the caller.
func Read[T any](s Store, key string, fallback T) T {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return fallback
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return fallback
	}
	return v
}

// Write marshals v and overwrites the record under key.
func Write[T any](s Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Put(key, raw)
}
