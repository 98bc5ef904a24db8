package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	catalogfile "github.com/TomoakiAbebe/rac-tourist/internal/adapters/catalog/file"
	"github.com/TomoakiAbebe/rac-tourist/internal/application"
	"github.com/TomoakiAbebe/rac-tourist/internal/domain"
	"github.com/TomoakiAbebe/rac-tourist/internal/ports"
	"github.com/TomoakiAbebe/rac-tourist/internal/ports/mocks"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestApp(loader ports.CatalogLoader, store ports.StateStore) *app {
	return &app{
		catalog: loader,
		random:  ports.SystemRandom{},
		logger:  zerolog.Nop(),
		plain:   true,
		openStore: func(context.Context) (ports.StateStore, error) {
			return store, nil
		},
	}
}

func runCommand(cmd *cobra.Command) (string, string, error) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCommandsReportCatalogLoadFailure(t *testing.T) {
	loadErr := fmt.Errorf("%w: open places.json: permission denied", domain.ErrCatalogLoad)

	tests := []struct {
		name string
		cmd  func(*app) *cobra.Command
	}{
		{name: "customers", cmd: newCustomersCmd},
		{name: "show", cmd: newShowCmd},
		{name: "start", cmd: newStartCmd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := mocks.NewMockCatalogLoader(t)
			loader.EXPECT().Load(mock.Anything).Return(domain.Catalog{}, loadErr).Once()

			stdout, _, err := runCommand(tt.cmd(newTestApp(loader, mocks.NewMockStateStore(t))))
			require.ErrorIs(t, err, domain.ErrCatalogLoad)
			assert.Empty(t, stdout)
		})
	}
}

func TestShowReportsRecoveryWhenStoreRejectsWrites(t *testing.T) {
	catalog, err := catalogfile.NewEmbeddedLoader().Load(context.Background())
	require.NoError(t, err)

	loader := mocks.NewMockCatalogLoader(t)
	loader.EXPECT().Load(mock.Anything).Return(catalog, nil).Once()

	store := mocks.NewMockStateStore(t)
	store.EXPECT().Get(mock.Anything, application.KeySelectedCustomerID).Return("c-tanaka", nil).Once()
	store.EXPECT().Get(mock.Anything, application.KeyCurrentCategoryIndex).Return("two", nil).Once()
	store.EXPECT().Get(mock.Anything, application.KeySelectedPlaces).Return("{}", nil).Once()
	store.EXPECT().Delete(mock.Anything, mock.Anything).Return(nil)
	store.EXPECT().Put(mock.Anything, application.KeySelectedPlaces, "{}").Return(errors.New("read-only file system")).Once()

	stdout, stderr, err := runCommand(newShowCmd(newTestApp(loader, store)))
	require.NoError(t, err)
	assert.Contains(t, stderr, "warning: progress not saved")
	assert.Contains(t, stderr, "saved session was unreadable")
	assert.NotContains(t, stderr, "New customer:")
	assert.Contains(t, stdout, "step 1/5")
}

func TestOpenInterviewKeepsOutcomeOnWriteFailure(t *testing.T) {
	catalog, err := catalogfile.NewEmbeddedLoader().Load(context.Background())
	require.NoError(t, err)

	loader := mocks.NewMockCatalogLoader(t)
	loader.EXPECT().Load(mock.Anything).Return(catalog, nil).Once()

	store := mocks.NewMockStateStore(t)
	store.EXPECT().Get(mock.Anything, application.KeySelectedCustomerID).Return("", domain.ErrStateKeyNotFound).Once()
	store.EXPECT().Delete(mock.Anything, mock.Anything).Return(nil)
	store.EXPECT().Put(mock.Anything, application.KeySelectedPlaces, "{}").Return(errors.New("disk full")).Once()

	svc, outcome, err := newTestApp(loader, store).openInterview(context.Background())
	require.ErrorIs(t, err, domain.ErrPersistenceWrite)
	require.NotNil(t, svc)
	assert.Equal(t, application.OpenStarted, outcome)
}
