package store

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/flavono123/jsonsketch/internal/config"
)

var ErrEmptyKey = errors.New("store key must not be empty")

// KV is a blob store addressed by string keys.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, blob []byte) error
}

// fileData is the JSON file structure.
type fileData struct {
	Entries map[string]string `json:"entries"`
}

// FileStore keeps every entry in one JSON file.
type FileStore struct {
	path string
	data *fileData
	mu   sync.RWMutex
}

// StoreOptions configures the store.
type StoreOptions struct {
	DevMode bool
	// Dir overrides the per-user app directory.
	Dir string
}

// NewFileStore creates a store with the default path and loads it.
func NewFileStore(opts ...StoreOptions) (*FileStore, error) {
	var opt StoreOptions
	if len(opts) > 0 {
		opt = opts[0]
	}

	dir := opt.Dir
	if dir == "" {
		var err error
		dir, err = config.Dir(opt.DevMode)
		if err != nil {
			return nil, err
		}
	} else if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	s := &FileStore{
		path: filepath.Join(dir, "state.json"),
		data: newFileData(),
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

func newFileData() *fileData {
	return &fileData{Entries: map[string]string{}}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the store from disk.
func (s *FileStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.data = newFileData()
		return nil
	}
	if err != nil {
		return err
	}

	var stored fileData
	if err := json.Unmarshal(data, &stored); err != nil {
		// Backup corrupted file and start fresh
		backupPath := s.path + ".backup." + time.Now().Format("20060102150405")
		_ = os.WriteFile(backupPath, data, 0644)
		s.data = newFileData()
		return nil
	}
	if stored.Entries == nil {
		stored.Entries = map[string]string{}
	}

	s.data = &stored
	return nil
}

// Get returns the blob stored under key.
func (s *FileStore) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, ok := s.data.Entries[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(blob), true, nil
}

// Set stores blob under key and writes the file.
func (s *FileStore) Set(key string, blob []byte) error {
	if key == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.data.Entries[key]
	s.data.Entries[key] = string(blob)
	if err := s.save(); err != nil {
		if existed {
			s.data.Entries[key] = prev
		} else {
			delete(s.data.Entries, key)
		}
		return err
	}
	return nil
}

// save writes through a temp file so a failed write keeps the old file.
// Callers hold mu.
func (s *FileStore) save() error {
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
