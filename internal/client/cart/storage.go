// internal/client/cart/storage.go
package cart

import (
	"os"
	"sync"
)

// Storage reads and writes the serialized cart snapshot. It is the local
// persistence slot for the cart (one key, whole snapshot per write).
type Storage interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

// FileStorage keeps the snapshot in a single JSON file on the client device
type FileStorage struct {
	path string
}

// NewFileStorage creates a file-backed storage at path
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (s *FileStorage) Read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (s *FileStorage) Write(data []byte) error {
	return os.WriteFile(s.path, data, 0o644)
}

// MemoryStorage keeps the snapshot in memory; used in tests
type MemoryStorage struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryStorage creates an empty in-memory storage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Read() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data, nil
}

func (s *MemoryStorage) Write(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
	return nil
}
