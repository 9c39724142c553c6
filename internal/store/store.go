package store

// Adapter persists named collections as serialized text.
//
// Load reports absence (no prior data) separately from failure so callers can
// default to an empty collection without special-casing errors.
type Adapter interface {
	Load(collection string) ([]byte, bool, error)
	Save(collection string, data []byte) error
}
