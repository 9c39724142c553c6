package store

// MemStore is an in-memory Adapter, mainly useful in tests.
type MemStore struct {
	collections map[string][]byte
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{collections: make(map[string][]byte)}
}

func (s *MemStore) Load(collection string) ([]byte, bool, error) {
	data, ok := s.collections[collection]
	return data, ok, nil
}

func (s *MemStore) Save(collection string, data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	s.collections[collection] = cp
	return nil
}
