package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StorageTier = (*FileTier)(nil)

// fileExt is appended to every stored key.
const fileExt = ".json"

// FileTier is the durable storage tier. Each key is one JSON file in a flat
// directory; writes are atomic so a crash never leaves a torn entry.
type FileTier struct {
	dir string
}

// NewFileTier creates the tier rooted at dir, creating the directory if
// needed.
func NewFileTier(dir string) (*FileTier, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, zerr.Wrap(err, "failed to create storage directory")
	}
	return &FileTier{dir: dir}, nil
}

// Dir returns the directory backing the tier.
func (t *FileTier) Dir() string {
	return t.dir
}

func (t *FileTier) path(key string) string {
	return filepath.Join(t.dir, key+fileExt)
}

// Read returns the stored bytes for key.
func (t *FileTier) Read(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(t.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, zerr.Wrap(err, domain.ErrStorageRead.Error())
	}
	return data, true, nil
}

// Write stores the bytes under key atomically.
func (t *FileTier) Write(key string, data []byte) error {
	if err := atomic.WriteFile(t.path(key), bytes.NewReader(data)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStorageWrite.Error()), "key", key)
	}
	return nil
}

// Delete removes the key. Deleting an absent key is not an error.
func (t *FileTier) Delete(key string) error {
	err := os.Remove(t.path(key))
	if err != nil && !os.IsNotExist(err) {
		return zerr.Wrap(err, domain.ErrStorageWrite.Error())
	}
	return nil
}

// Keys returns every stored key with the given prefix.
func (t *FileTier) Keys(prefix string) ([]string, error) {
	entries, err := os.ReadDir(t.dir)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStorageRead.Error())
	}

	var keys []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileExt) {
			continue
		}
		key := strings.TrimSuffix(entry.Name(), fileExt)
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

// Clear removes every key in the tier.
func (t *FileTier) Clear() error {
	keys, err := t.Keys("")
	if err != nil {
		return err
	}
	for _, key := range keys {
		if err := t.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
