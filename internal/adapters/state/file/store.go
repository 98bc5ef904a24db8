package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/TomoakiAbebe/rac-tourist/internal/domain"
	"github.com/TomoakiAbebe/rac-tourist/internal/ports"
)

const (
	storeDirMode = 0o700
	valueFileMod = 0o600
)

// Store keeps one file per key under root. Each value is replaced whole.
type Store struct {
	root string
	mu   sync.RWMutex
}

var _ ports.StateStore = (*Store)(nil)

func NewStore(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathForKey(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), storeDirMode); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	if err := writeAtomic(path, []byte(value)); err != nil {
		return fmt.Errorf("write state %q: %w", key, err)
	}

	return nil
}

// writeAtomic stages data next to path and renames it into place, so a
// reader sees either the old value or the new one.
func writeAtomic(path string, data []byte) error {
	tempFile, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}

	tempName := tempFile.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return err
	}
	if err := tempFile.Chmod(valueFileMod); err != nil {
		_ = tempFile.Close()
		return err
	}
	if err := tempFile.Close(); err != nil {
		return err
	}
	if err := os.Rename(tempName, path); err != nil {
		return err
	}

	committed = true
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := s.pathForKey(key)
	if err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("state %q: %w", key, domain.ErrStateKeyNotFound)
		}
		return "", fmt.Errorf("read state %q: %w", key, err)
	}

	return string(data), nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathForKey(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete state %q: %w", key, err)
	}

	return nil
}

func (s *Store) pathForKey(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return "", errors.New("state key is empty")
	}

	cleaned := filepath.Clean(trimmed)
	if filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") || cleaned == "." {
		return "", fmt.Errorf("invalid state key %q", key)
	}

	return filepath.Join(s.root, cleaned), nil
}
