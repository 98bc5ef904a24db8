package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/TomoakiAbebe/rac-tourist/internal/adapters/render/screens"
	"github.com/TomoakiAbebe/rac-tourist/internal/application"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var errNoTerminal = errors.New("play needs an interactive terminal; use show and select instead")

func newPlayCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play the interview interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdin) || !isTerminal(cmd.OutOrStdout()) {
				return errNoTerminal
			}
			defer app.close()

			// Logs would tear the full-screen view.
			app.logger = app.logger.Level(zerolog.Disabled)

			opener := func(ctx context.Context) (screens.Interview, application.OpenOutcome, error) {
				svc, outcome, err := app.openInterview(ctx)
				if svc == nil {
					return nil, outcome, err
				}
				return svc, outcome, err
			}

			p := tea.NewProgram(
				screens.NewPlayModel(cmd.Context(), opener),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithAltScreen(),
			)

			finalModel, err := p.Run()
			if err != nil {
				return err
			}

			result, ok := finalModel.(screens.PlayModel)
			if !ok {
				return fmt.Errorf("unexpected final play model type %T", finalModel)
			}
			return result.Err()
		},
	}
}
