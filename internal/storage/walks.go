package storage

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"ytkit/continuation"
)

const (
	schemaVersion = "1.0"
	lockTimeout   = 5 * time.Second
)

// Walk is a named, resumable walk over one listing.
type Walk struct {
	// ID is assigned when the walk is first stored.
	ID string
	// Name is the key chosen by the caller.
	Name string
	// Command describes what started the walk, e.g. "playlist PL123".
	Command string
	State   *continuation.State
}

// record is the on-disk form of a Walk.
type record struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Command string          `json:"command,omitempty"`
	State   json.RawMessage `json:"state"`
}

type fileData struct {
	Version   string             `json:"version"`
	UpdatedAt time.Time          `json:"updated_at"`
	Walks     map[string]*record `json:"walks"`
}

// WalkStore stores walks in one JSON file. The file is locked for the
// lifetime of the store, and a WalkStore is safe for concurrent use.
type WalkStore struct {
	path string
	lock *fileLock
	mu   sync.RWMutex
	data *fileData
}

// Open opens the store at path, creating it if needed.
func Open(path string) (*WalkStore, error) {
	s := &WalkStore{path: path, lock: newFileLock(path)}
	if err := s.lock.lock(lockTimeout); err != nil {
		return nil, &StorageError{Op: "open", Err: err}
	}
	if err := s.load(); err != nil {
		s.lock.unlock()
		return nil, err
	}
	return s, nil
}

func (s *WalkStore) load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.data = &fileData{Version: schemaVersion, Walks: make(map[string]*record)}
			// Save immediately to catch permission errors early
			return s.save()
		}
		return &StorageError{Op: "read", Err: err}
	}

	s.data = &fileData{}
	if err := json.Unmarshal(raw, s.data); err != nil {
		return &StorageError{Op: "read", Err: ErrStorageCorrupt}
	}
	if s.data.Walks == nil {
		s.data.Walks = make(map[string]*record)
	}
	return nil
}

func (s *WalkStore) save() error {
	s.data.UpdatedAt = time.Now()
	err := writeAtomic(s.path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s.data)
	})
	if err != nil {
		return &StorageError{Op: "write", Err: err}
	}
	return nil
}

// Get returns the walk stored under name.
func (s *WalkStore) Get(name string) (*Walk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.data.Walks[name]
	if !ok {
		return nil, &StorageError{Op: "read", Name: name, Err: ErrNotFound}
	}
	return rec.walk()
}

func (r *record) walk() (*Walk, error) {
	state := &continuation.State{}
	if err := state.UnmarshalText(r.State); err != nil {
		return nil, &StorageError{Op: "read", Name: r.Name, Err: ErrStorageCorrupt}
	}
	return &Walk{ID: r.ID, Name: r.Name, Command: r.Command, State: state}, nil
}

// Put stores w under its name, replacing any earlier walk of that name.
func (s *WalkStore) Put(w *Walk) error {
	if w == nil || w.Name == "" || w.State == nil {
		return &StorageError{Op: "write", Err: ErrInvalidInput}
	}
	raw, err := w.State.MarshalText()
	if err != nil {
		return &StorageError{Op: "write", Name: w.Name, Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if w.ID == "" {
		if old, ok := s.data.Walks[w.Name]; ok {
			w.ID = old.ID
		} else {
			w.ID = uuid.NewString()
		}
	}
	s.data.Walks[w.Name] = &record{ID: w.ID, Name: w.Name, Command: w.Command, State: raw}
	return s.save()
}

// Delete removes the walk stored under name.
func (s *WalkStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data.Walks[name]; !ok {
		return &StorageError{Op: "delete", Name: name, Err: ErrNotFound}
	}
	delete(s.data.Walks, name)
	return s.save()
}

// List returns every stored walk ordered by name. Records that do not
// decode are skipped.
func (s *WalkStore) List() []*Walk {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Walk, 0, len(s.data.Walks))
	for _, rec := range s.data.Walks {
		if w, err := rec.walk(); err == nil {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Close releases the file lock.
func (s *WalkStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lock.unlock()
}
