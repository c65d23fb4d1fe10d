package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileStore keeps each collection in <dir>/<key>.json. Writes go
// through a temp file and rename so a crash mid-write cannot corrupt
// an existing document.
type FileStore struct {
	mu        sync.Mutex
	dir       string
	backupDir string
}

var _ Store = (*FileStore)(nil)

func NewFileStore(dir, backupDir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &FileStore{dir: dir, backupDir: backupDir}, nil
}

func (s *FileStore) Read(key string) (json.RawMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked(key)
}

func (s *FileStore) Write(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked(key, value)
}

func (s *FileStore) Update(key string, fn func(raw json.RawMessage) (any, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.readLocked(key)
	if !ok {
		raw = nil
	}
	value, err := fn(raw)
	if err != nil {
		return err
	}
	return s.writeLocked(key, value)
}

// Snapshot copies every collection file into a timestamped directory
// under the backup dir and returns its path.
func (s *FileStore) Snapshot() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dst := filepath.Join(s.backupDir, time.Now().UTC().Format("20060102T150405Z"))
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return "", fmt.Errorf("read store dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			return "", fmt.Errorf("read %s: %w", e.Name(), err)
		}
		if err := os.WriteFile(filepath.Join(dst, e.Name()), data, 0o644); err != nil {
			return "", fmt.Errorf("write %s: %w", e.Name(), err)
		}
	}
	return dst, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) readLocked(key string) (json.RawMessage, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, false
	}
	if !json.Valid(data) {
		// Corrupt document: treated as absent. The next write
		// overwrites it, so corruption means silent reset, not an error.
		return nil, false
	}
	return data, true
}

func (s *FileStore) writeLocked(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", key, err)
	}
	return nil
}
