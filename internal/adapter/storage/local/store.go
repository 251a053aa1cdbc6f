// Package local stores uploaded files on the local filesystem.
package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/heartmarshall/entomoguide-backend/internal/adapter/storage"
)

// Store writes objects into a single flat directory.
type Store struct {
	dir string
	now func() time.Time
}

// New creates the directory if needed and returns a Store rooted there.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Store{dir: dir, now: time.Now}, nil
}

// Put writes r under a fresh name derived from the current time and the
// extension of filename. Names are claimed with O_EXCL so concurrent writers
// never share a file.
func (s *Store) Put(ctx context.Context, filename string, r io.Reader) (string, error) {
	ext, err := storage.Ext(filename)
	if err != nil {
		return "", err
	}

	now := s.now()
	for n := range storage.MaxNameAttempts {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		name := storage.ObjectName(now, n, ext)
		full := filepath.Join(s.dir, name)

		f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create %s: %w", name, err)
		}

		_, copyErr := io.Copy(f, r)
		closeErr := f.Close()
		if err := errors.Join(copyErr, closeErr); err != nil {
			_ = os.Remove(full)
			return "", fmt.Errorf("write %s: %w", name, err)
		}

		return storage.Locator(name), nil
	}

	return "", fmt.Errorf("no free object name after %d attempts", storage.MaxNameAttempts)
}

// Delete removes the object behind locator. A missing file is not an error.
func (s *Store) Delete(_ context.Context, locator string) error {
	name, err := storage.NameFromLocator(locator)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", name, err)
	}
	return nil
}

// List returns the locators of all stored objects, sorted.
func (s *Store) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read uploads dir: %w", err)
	}

	locators := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			locators = append(locators, storage.Locator(e.Name()))
		}
	}
	sort.Strings(locators)
	return locators, nil
}

// Handler serves stored files under storage.PublicPrefix.
// Directory listings are not exposed.
func (s *Store) Handler() http.Handler {
	files := http.FileServer(http.Dir(s.dir))
	return http.StripPrefix(storage.PublicPrefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || r.URL.Path[len(r.URL.Path)-1] == '/' {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	}))
}
