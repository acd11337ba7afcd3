package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/lisbeauty/storefront/pkg/logger"
)

// File is a durable store persisted as a single JSON document on disk.
// Every Set rewrites the file synchronously, so a write that returned nil
// has reached the filesystem.
type File struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

// NewFile opens or creates a file-backed store at path.
func NewFile(path string) (*File, error) {
	f := &File{path: path, data: make(map[string]json.RawMessage)}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}
	// A corrupt file is treated as empty, matching the read contract.
	if err := json.Unmarshal(raw, &f.data); err != nil {
		f.data = make(map[string]json.RawMessage)
	}
	return f, nil
}

func (f *File) Get(key string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	raw, ok := f.data[key]
	if !ok {
		return nil, false
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return cp, true
}

func (f *File) Set(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := make(json.RawMessage, len(value))
	copy(cp, value)
	f.data[key] = cp
	return f.flush()
}

func (f *File) Remove(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.data[key]; !ok {
		return
	}
	delete(f.data, key)
	if err := f.flush(); err != nil {
		logger.Logger.Warn().Err(err).Str("key", key).Msg("store delete failed")
	}
}

// flush writes the full document through a temp file rename. Caller holds
// the lock.
func (f *File) flush() error {
	raw, err := json.Marshal(f.data)
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	return os.Rename(tmp, f.path)
}
