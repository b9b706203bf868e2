package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// DocumentKey is the versioned identifier of the application's data document.
// Bump the suffix when the persisted shape changes incompatibly.
const DocumentKey = "life-os-data-v1"

// LocalStore is the durable local mirror of the aggregate: whole-document,
// synchronous, string-keyed. Read reports found=false for an absent document;
// a corrupt document is the caller's problem to degrade gracefully.
type LocalStore interface {
	Read() (doc []byte, found bool, err error)
	Write(doc []byte) error
}

// FileStore keeps the document as a single JSON file under a directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (f *FileStore) path() string {
	return filepath.Join(f.dir, DocumentKey+".json")
}

func (f *FileStore) Read() ([]byte, bool, error) {
	doc, err := os.ReadFile(f.path())
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read data document: %w", err)
	}
	return doc, true, nil
}

func (f *FileStore) Write(doc []byte) error {
	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}
	// Write-then-rename so a crash mid-write never corrupts the document.
	tmp := f.path() + ".tmp"
	if err := os.WriteFile(tmp, doc, 0644); err != nil {
		return fmt.Errorf("failed to write data document: %w", err)
	}
	if err := os.Rename(tmp, f.path()); err != nil {
		return fmt.Errorf("failed to replace data document: %w", err)
	}
	return nil
}
