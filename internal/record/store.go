// Package record persists the best score across runs.
package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"sync"
)

// Store loads and saves the persisted record. Load never fails the caller:
// a missing or unreadable record reads as 0.
type Store interface {
	Load() int
	Save(record int) error
}

// document is the on-disk schema: {"record": N}.
type document struct {
	Record *int `json:"record"`
}

// FileStore keeps the record in a small JSON document. Every call opens,
// reads or writes, and closes the file; nothing is held across frames.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (s *FileStore) Load() int {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("[Record] failed to read %s: %v", s.Path, err)
		}
		return 0
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("[Record] corrupt record file %s: %v", s.Path, err)
		return 0
	}
	if doc.Record == nil {
		return 0
	}
	if *doc.Record < 0 {
		log.Printf("[Record] negative record %d in %s, ignoring", *doc.Record, s.Path)
		return 0
	}
	return *doc.Record
}

func (s *FileStore) Save(record int) error {
	if record < 0 {
		return fmt.Errorf("refusing to save negative record %d", record)
	}
	data, err := json.Marshal(document{Record: &record})
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write record to %s: %w", s.Path, err)
	}
	return nil
}

// MemoryStore keeps the record for the life of the process only.
type MemoryStore struct {
	mu     sync.Mutex
	record int
}

func NewMemoryStore(initial int) *MemoryStore {
	return &MemoryStore{record: max(initial, 0)}
}

func (s *MemoryStore) Load() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record
}

func (s *MemoryStore) Save(record int) error {
	if record < 0 {
		return fmt.Errorf("refusing to save negative record %d", record)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = record
	return nil
}
