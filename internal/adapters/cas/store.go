// Package cas implements the file-backed result cache store.
package cas

import (
	"context"
	"encoding/binary"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/rolegraph/internal/core/domain"
	"go.trai.ch/rolegraph/internal/core/ports"
	"go.trai.ch/zerr"
)

// headerSize is the length of the checksum prefix of every cache file.
const headerSize = 8

// Store implements ports.BlobStore with one file per cache kind.
// The file modification time is the write timestamp.
type Store struct {
	dir string
	mu  sync.RWMutex
}

var _ ports.BlobStore = (*Store)(nil)

// NewStore creates a new Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: filepath.Clean(dir)}
}

// Path returns the file backing kind.
func (s *Store) Path(kind domain.CacheKind) string {
	return filepath.Join(s.dir, kind.String()+".gob")
}

// Load returns the blob stored for kind.
func (s *Store) Load(_ context.Context, kind domain.CacheKind) (domain.Blob, error) {
	if !kind.Valid() {
		return domain.Blob{}, zerr.With(domain.ErrInvalidCacheKind, "kind", int(kind))
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	path := s.Path(kind)
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.Blob{}, domain.ErrCacheMiss
	}
	if err != nil {
		return domain.Blob{}, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", path)
	}

	//nolint:gosec // path is derived from the configured cache directory
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Blob{}, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", path)
	}

	data, err := verify(raw)
	if err != nil {
		return domain.Blob{}, zerr.With(err, "path", path)
	}

	return domain.Blob{Data: data, WrittenAt: info.ModTime()}, nil
}

// Save writes data for kind through a temporary file and an atomic rename.
func (s *Store) Save(_ context.Context, kind domain.CacheKind, data []byte) error {
	if !kind.Valid() {
		return zerr.With(domain.ErrInvalidCacheKind, "kind", int(kind))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create cache directory"), "dir", s.dir)
	}

	tmp, err := os.CreateTemp(s.dir, kind.String()+"-*.tmp")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp file")
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	var header [headerSize]byte
	binary.BigEndian.PutUint64(header[:], xxhash.Sum64(data))

	if _, err := tmp.Write(header[:]); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write cache header")
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write cache payload")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to close temp file")
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to set cache file permissions")
	}

	path := s.Path(kind)
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to rename temp file"), "path", path)
	}
	return nil
}

// Close does nothing.
func (s *Store) Close() error {
	return nil
}

// verify checks the checksum header of raw and returns the payload.
func verify(raw []byte) ([]byte, error) {
	if len(raw) < headerSize {
		return nil, zerr.With(domain.ErrCacheCorrupt, "reason", "truncated header")
	}
	want := binary.BigEndian.Uint64(raw[:headerSize])
	data := raw[headerSize:]
	if got := xxhash.Sum64(data); got != want {
		return nil, zerr.With(domain.ErrCacheCorrupt, "reason", "checksum mismatch")
	}
	return data, nil
}
