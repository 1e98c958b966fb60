package siteconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync"
)

/*
Store keeps the config file's raw bytes, served to browsers as
config.json, and its parsed form, used when rendering pages. Reload
replaces both atomically.
*/
type Store struct {
	path string

	mu     sync.RWMutex
	raw    []byte
	exists bool
	config SiteConfig
}

func NewStore(path string) *Store {
	return &Store{
		path:   path,
		config: Empty(),
	}
}

func (s *Store) Path() string {
	return s.path
}

/*
Reload reads the file again. A missing file empties the store and
returns ErrConfigNotFound. An unparseable file keeps its raw bytes, so
browsers see the same document, but pages render with defaults.
*/
func (s *Store) Reload() error {
	var (
		err    error
		b      []byte
		config SiteConfig
	)

	if b, err = os.ReadFile(s.path); err != nil {
		s.set(nil, false, Empty())

		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, s.path)
		}

		return fmt.Errorf("error reading site configuration '%s': %w", s.path, err)
	}

	if config, err = Parse(b); err != nil {
		s.set(b, true, Empty())
		return fmt.Errorf("error parsing site configuration '%s': %w", s.path, err)
	}

	s.set(b, true, config)
	slog.Debug("site configuration loaded", "path", s.path, "bytes", len(b))
	return nil
}

func (s *Store) Config() SiteConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.config
}

/*
Raw returns the file contents as last read, and false when there was no
file.
*/
func (s *Store) Raw() ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.raw, s.exists
}

func (s *Store) set(raw []byte, exists bool, config SiteConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.raw = raw
	s.exists = exists
	s.config = config
}
