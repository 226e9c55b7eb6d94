// Package store persists the catalog document to a single JSON file.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/bennettmovies/booking-engine/internal/domain"
)

// FileStore implements domain.CatalogStore over one JSON file. Save writes the
// whole document to a uuid-salted temp file in the same directory, syncs it, and
// renames it over the target, so a torn document is never visible to Load. Saves
// are serialized: the file has a single writer.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(ctx context.Context) (domain.CatalogDocument, error) {
	var doc domain.CatalogDocument

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return doc, nil
		}
		return doc, fmt.Errorf("reading catalog document: %w", err)
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.CatalogDocument{}, fmt.Errorf("decoding catalog document: %w", err)
	}

	return doc, nil
}

func (s *FileStore) Save(ctx context.Context, doc domain.CatalogDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding catalog document: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(s.path), uuid.NewString()))

	if err := writeFileSync(tmp, data); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing catalog document: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing catalog document: %w", err)
	}

	return nil
}

func writeFileSync(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
