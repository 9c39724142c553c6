package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps each collection in its own JSON file under baseDir.
type FileStore struct {
	baseDir string
}

// NewFileStore creates a FileStore rooted at baseDir.
func NewFileStore(baseDir string) *FileStore {
	return &FileStore{baseDir: baseDir}
}

// Path returns the on-disk path for a collection.
// Layout: <baseDir>/<collection>.json
func (s *FileStore) Path(collection string) string {
	return filepath.Join(s.baseDir, collection+".json")
}

// Load reads a collection file. A missing file is not an error.
func (s *FileStore) Load(collection string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.Path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading %s: %w", collection, err)
	}
	return data, true, nil
}

// Save writes the collection via a temp file and rename so a crash mid-write
// never leaves a truncated collection behind.
func (s *FileStore) Save(collection string, data []byte) error {
	if err := os.MkdirAll(s.baseDir, 0750); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	destPath := s.Path(collection)
	tmpPath := destPath + ".tmp"

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", collection, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
