package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/TomoakiAbebe/rac-tourist/internal/domain"
	"github.com/TomoakiAbebe/rac-tourist/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	StatePathKey    = "state.path"
	stateFileMode   = 0o600
	stateDirMode    = 0o700
	stateConfigDir  = ".rac-tourist"
	stateConfigFile = "state.toml"
	tempFilePattern = ".state-*.toml.tmp"
)

// Store keeps every key in a single TOML document that is replaced
// atomically on each write.
type Store struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.BatchStateStore = (*Store)(nil)

func NewStore(cfg *viper.Viper) (*Store, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := cfg.GetString(StatePathKey)
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(homeDir, stateConfigDir, stateConfigFile)
	}

	path, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &Store{path: path, mu: lockForPath(path)}, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.readSchema()
	if err != nil {
		return err
	}

	file.Values[key] = value

	if err := ctx.Err(); err != nil {
		return err
	}

	return s.writeSchema(file)
}

// PutAll writes every entry with a single document replacement.
func (s *Store) PutAll(ctx context.Context, entries []ports.StateEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.readSchema()
	if err != nil {
		return err
	}

	for _, entry := range entries {
		file.Values[entry.Key] = entry.Value
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return s.writeSchema(file)
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.readSchema()
	if err != nil {
		return "", err
	}

	value, ok := file.Values[key]
	if !ok {
		return "", fmt.Errorf("state %q: %w", key, domain.ErrStateKeyNotFound)
	}

	return value, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.readSchema()
	if errors.Is(err, domain.ErrCorruptSession) {
		// An unreadable document cannot hold the key; replace it with an
		// empty one so the next session can be written.
		return s.writeSchema(fileSchema{})
	}
	if err != nil {
		return err
	}

	if _, ok := file.Values[key]; !ok {
		return nil
	}
	delete(file.Values, key)

	return s.writeSchema(file)
}

func (s *Store) readSchema() (fileSchema, error) {
	var file fileSchema

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read state file: %w", err)
	}

	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("%w: decode state file: %w", domain.ErrCorruptSession, err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, fmt.Errorf("%w: %w", domain.ErrCorruptSession, err)
	}
	file.applyDefaults()

	return file, nil
}

func (s *Store) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(s.path), stateDirMode); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode state file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp state file: %w", err)
	}

	if err := tempFile.Chmod(stateFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp state file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp state file: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}

	cleanup = false

	return nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve state path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
