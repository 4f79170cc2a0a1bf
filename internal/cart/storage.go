package cart

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// MemoryStorage keeps cart lines in memory. Useful for tests and for sessions
// that do not need to survive a restart.
type MemoryStorage struct {
	mu    sync.Mutex
	lines []Line
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Load() ([]Line, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Line, len(m.lines))
	copy(out, m.lines)
	return out, nil
}

func (m *MemoryStorage) Save(lines []Line) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = make([]Line, len(lines))
	copy(m.lines, lines)
	return nil
}

func (m *MemoryStorage) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = nil
	return nil
}

// FileStorage persists cart lines as a JSON array in a single file, the local
// analogue of a browser's storage key.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (f *FileStorage) Load() ([]Line, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cart file: %w", err)
	}

	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		// A corrupt cart file is treated as empty rather than blocking the
		// whole session.
		return nil, nil
	}
	return lines, nil
}

func (f *FileStorage) Save(lines []Line) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("write cart file: %w", err)
	}
	return nil
}

func (f *FileStorage) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove cart file: %w", err)
	}
	return nil
}
