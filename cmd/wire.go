package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	catalogfile "github.com/TomoakiAbebe/rac-tourist/internal/adapters/catalog/file"
	chainstate "github.com/TomoakiAbebe/rac-tourist/internal/adapters/state/chain"
	filestate "github.com/TomoakiAbebe/rac-tourist/internal/adapters/state/file"
	redisstate "github.com/TomoakiAbebe/rac-tourist/internal/adapters/state/redis"
	sqlitestate "github.com/TomoakiAbebe/rac-tourist/internal/adapters/state/sqlite"
	tomlstate "github.com/TomoakiAbebe/rac-tourist/internal/adapters/state/toml"
	"github.com/TomoakiAbebe/rac-tourist/internal/application"
	"github.com/TomoakiAbebe/rac-tourist/internal/config"
	"github.com/TomoakiAbebe/rac-tourist/internal/domain"
	"github.com/TomoakiAbebe/rac-tourist/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

type app struct {
	config  config.Config
	viper   *viper.Viper
	catalog ports.CatalogLoader
	random  ports.Random
	logger  zerolog.Logger
	plain   bool
	closers []io.Closer

	// openStore overrides the configured state backend when set.
	openStore func(context.Context) (ports.StateStore, error)
}

func wireApp() (*app, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	loader, err := newCatalogLoader(cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("wire catalog loader: %w", err)
	}

	return &app{
		config:  cfg,
		viper:   v,
		catalog: loader,
		random:  ports.SystemRandom{},
		logger:  zerolog.Nop(),
	}, nil
}

func newCatalogLoader(cfg config.CatalogConfig) (ports.CatalogLoader, error) {
	switch cfg.Source {
	case config.CatalogJSON:
		return catalogfile.NewJSONLoader(cfg.Dir)
	case config.CatalogYAML:
		return catalogfile.NewYAMLLoader(cfg.Path)
	default:
		return catalogfile.NewEmbeddedLoader(), nil
	}
}

func (a *app) openStateStore(ctx context.Context) (ports.StateStore, error) {
	state := a.config.State

	switch state.Backend {
	case config.BackendFile:
		return filestate.NewStore(state.Dir), nil
	case config.BackendSQLite:
		return a.openSQLite()
	case config.BackendRedis:
		return a.openRedis(ctx)
	case config.BackendChain:
		fallback := filestate.NewStore(state.Dir)

		var primary ports.StateStore
		var err error
		if state.RedisURL != "" {
			primary, err = a.openRedis(ctx)
		} else {
			primary, err = a.openSQLite()
		}
		if err != nil {
			a.logger.Warn().Err(err).Str("fallback_dir", state.Dir).Msg("primary state backend unavailable, using file store")
			return fallback, nil
		}
		return chainstate.NewStoreChecked(primary, fallback)
	default:
		return tomlstate.NewStore(a.viper)
	}
}

func (a *app) openSQLite() (ports.StateStore, error) {
	store, err := sqlitestate.Open(a.config.State.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite state: %w", err)
	}
	a.closers = append(a.closers, store)
	return store, nil
}

func (a *app) openRedis(ctx context.Context) (ports.StateStore, error) {
	store, client, err := redisstate.Open(ctx, a.config.State.RedisURL, a.config.State.RedisTTL)
	if err != nil {
		return nil, fmt.Errorf("open redis state: %w", err)
	}
	a.closers = append(a.closers, client)
	return store, nil
}

// newInterview loads the catalog and state backend without touching the
// persisted session.
func (a *app) newInterview(ctx context.Context) (*application.InterviewService, error) {
	catalog, err := a.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}

	open := a.openStateStore
	if a.openStore != nil {
		open = a.openStore
	}
	store, err := open(ctx)
	if err != nil {
		return nil, fmt.Errorf("wire state store: %w", err)
	}

	return application.NewInterviewService(catalog, store, a.random, a.logger), nil
}

// openInterview resumes the persisted session or starts a new one. A session
// that exists only in memory because the store rejected the write is still
// returned, with its outcome, together with the write error.
func (a *app) openInterview(ctx context.Context) (*application.InterviewService, application.OpenOutcome, error) {
	svc, err := a.newInterview(ctx)
	if err != nil {
		return nil, "", err
	}

	outcome, err := svc.Open(ctx)
	if err != nil {
		if _, ok := svc.Session(); ok && outcome != "" && errors.Is(err, domain.ErrPersistenceWrite) {
			return svc, outcome, err
		}
		return nil, "", err
	}
	return svc, outcome, nil
}

func (a *app) close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
