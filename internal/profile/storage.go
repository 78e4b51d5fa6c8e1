package profile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"hsmanager/pkg/logging"
)

// DefaultFileName is the profiles file used when no path is configured.
const DefaultFileName = "profiles.json"

// Store is the byte source and sink a Registry is persisted to.
type Store interface {
	// Read returns the stored bytes. A store that holds nothing returns an
	// error matching os.ErrNotExist.
	Read() ([]byte, error)
	// Write replaces the stored bytes.
	Write(data []byte) error
	// Location describes where the data lives, for error messages.
	Location() string
}

// FileStore keeps the profiles in a single file.
type FileStore struct {
	path   string
	atomic bool
}

// FileStoreOption configures a FileStore.
type FileStoreOption func(*FileStore)

// WithDirectWrites makes Write truncate and overwrite the file in place
// instead of writing a temporary file and renaming it over the target.
// An interrupted write can then leave a truncated file behind.
func WithDirectWrites() FileStoreOption {
	return func(s *FileStore) {
		s.atomic = false
	}
}

// NewFileStore creates a store backed by the file at path.
func NewFileStore(path string, opts ...FileStoreOption) *FileStore {
	s := &FileStore{
		path:   path,
		atomic: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Location returns the file path.
func (s *FileStore) Location() string {
	return s.path
}

// Read returns the file contents.
func (s *FileStore) Read() ([]byte, error) {
	return os.ReadFile(s.path)
}

// Write stores data in the file, creating parent directories as needed.
func (s *FileStore) Write(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if !s.atomic {
		return os.WriteFile(s.path, data, 0644)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// MemoryStore keeps the profiles in memory.
type MemoryStore struct {
	data    []byte
	present bool
}

// NewMemoryStore creates an empty store. Reading it fails with
// os.ErrNotExist until something is written.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewMemoryStoreWithData creates a store holding a copy of data.
func NewMemoryStoreWithData(data []byte) *MemoryStore {
	return &MemoryStore{
		data:    bytes.Clone(data),
		present: true,
	}
}

// Location returns a fixed marker for in-memory stores.
func (m *MemoryStore) Location() string {
	return "memory"
}

// Read returns a copy of the stored bytes.
func (m *MemoryStore) Read() ([]byte, error) {
	if !m.present {
		return nil, os.ErrNotExist
	}
	return bytes.Clone(m.data), nil
}

// Write replaces the stored bytes with a copy of data.
func (m *MemoryStore) Write(data []byte) error {
	m.data = bytes.Clone(data)
	m.present = true
	return nil
}

// Bytes returns the stored bytes, or nil when nothing was written.
func (m *MemoryStore) Bytes() []byte {
	return bytes.Clone(m.data)
}

// Encode serializes the profiles as a JSON array.
func (r *Registry) Encode() ([]byte, error) {
	profiles := r.profiles
	if profiles == nil {
		profiles = []Profile{}
	}
	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Decode parses a JSON array of profiles into a new registry.
func Decode(data []byte, opts ...Option) (*Registry, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errors.New("expected a JSON array of profiles")
	}

	var profiles []Profile
	if err := json.Unmarshal(trimmed, &profiles); err != nil {
		return nil, err
	}

	r := NewRegistry(opts...)
	for _, p := range profiles {
		r.Add(p)
	}
	return r, nil
}

// Save writes every profile to store, replacing its previous content.
func (r *Registry) Save(store Store) error {
	data, err := r.Encode()
	if err != nil {
		return &StorageError{Op: OpEncode, Path: store.Location(), Err: err}
	}

	if err := store.Write(data); err != nil {
		return &StorageError{Op: OpWrite, Path: store.Location(), Err: err}
	}

	logging.Debug("Registry", "Saved %d profiles to %s", r.Len(), store.Location())
	return nil
}

// Load reads store and returns a new registry holding its profiles in
// document order.
func Load(store Store, opts ...Option) (*Registry, error) {
	data, err := store.Read()
	if err != nil {
		return nil, &StorageError{Op: OpRead, Path: store.Location(), Err: err}
	}

	r, err := Decode(data, opts...)
	if err != nil {
		return nil, &StorageError{Op: OpDecode, Path: store.Location(), Err: err}
	}

	logging.Debug("Registry", "Loaded %d profiles from %s", r.Len(), store.Location())
	return r, nil
}

// LoadOrEmpty behaves like Load but returns an empty registry when the store
// holds nothing yet.
func LoadOrEmpty(store Store, opts ...Option) (*Registry, error) {
	r, err := Load(store, opts...)
	if errors.Is(err, os.ErrNotExist) {
		logging.Info("Registry", "No profiles found at %s, starting empty", store.Location())
		return NewRegistry(opts...), nil
	}
	return r, err
}
