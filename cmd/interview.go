package cmd

import (
	"errors"
	"fmt"

	"github.com/TomoakiAbebe/rac-tourist/internal/adapters/render/screens"
	"github.com/TomoakiAbebe/rac-tourist/internal/application"
	"github.com/TomoakiAbebe/rac-tourist/internal/domain"
	"github.com/spf13/cobra"
)

func newStartCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Discard any saved session and start with a new customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer app.close()

			svc, err := app.newInterview(cmd.Context())
			if err != nil {
				return err
			}
			if err := svc.Restart(cmd.Context()); err != nil {
				warnPersistence(cmd, err)
			}
			if _, err := svc.Start(cmd.Context()); err != nil {
				if !errors.Is(err, domain.ErrPersistenceWrite) {
					return err
				}
				warnPersistence(cmd, err)
			}

			customer, err := svc.Customer()
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "New customer: %s\n\n", customer.Name); err != nil {
				return err
			}
			return writeScreen(cmd, app, svc)
		},
	}
}

func newShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current question, or the plan once every category is chosen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer app.close()

			svc, err := openForCommand(cmd, app)
			if err != nil {
				return err
			}
			return writeScreen(cmd, app, svc)
		},
	}
}

func newSelectCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "select <venue-id>",
		Short: "Choose a venue for the current category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer app.close()

			svc, err := openForCommand(cmd, app)
			if err != nil {
				return err
			}
			if err := svc.SelectVenue(cmd.Context(), domain.VenueID(args[0])); err != nil {
				if !errors.Is(err, domain.ErrPersistenceWrite) {
					return err
				}
				warnPersistence(cmd, err)
			}
			return writeScreen(cmd, app, svc)
		},
	}
}

func newBackCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "back",
		Short: "Return to the previous category and clear its choice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer app.close()

			svc, err := openForCommand(cmd, app)
			if err != nil {
				return err
			}
			if err := svc.GoBack(cmd.Context()); err != nil {
				if errors.Is(err, domain.ErrAtStart) {
					return errors.New("already at the first category")
				}
				if !errors.Is(err, domain.ErrPersistenceWrite) {
					return err
				}
				warnPersistence(cmd, err)
			}
			return writeScreen(cmd, app, svc)
		},
	}
}

func newRestartCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restart",
		Short: "Clear the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer app.close()

			svc, err := app.newInterview(cmd.Context())
			if err != nil {
				return err
			}
			if err := svc.Restart(cmd.Context()); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Session cleared.")
			return err
		},
	}
}

// openForCommand resumes or starts a session and reports recovery and
// persistence problems on stderr.
func openForCommand(cmd *cobra.Command, app *app) (*application.InterviewService, error) {
	svc, outcome, err := app.openInterview(cmd.Context())
	if err != nil {
		if svc == nil {
			return nil, err
		}
		warnPersistence(cmd, err)
	}

	switch outcome {
	case application.OpenRecovered:
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "warning: saved session was unreadable, started a new one")
	case application.OpenStarted:
		if customer, err := svc.Customer(); err == nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "New customer: %s\n", customer.Name)
		}
	}
	return svc, nil
}

func warnPersistence(cmd *cobra.Command, err error) {
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: progress not saved: %v\n", err)
}

func renderOptions(cmd *cobra.Command, app *app) screens.Options {
	return screens.Options{Plain: app.plain || !isTerminal(cmd.OutOrStdout())}
}

func writeScreen(cmd *cobra.Command, app *app, svc *application.InterviewService) error {
	opts := renderOptions(cmd, app)

	var rendered string
	var err error
	switch svc.CurrentScreen() {
	case application.ScreenInterview:
		view, viewErr := svc.InterviewView()
		if viewErr != nil {
			return viewErr
		}
		rendered, err = screens.RenderInterview(view, opts)
		if err == nil {
			rendered += "\n\nChoose with: rac select <venue-id>"
		}
	case application.ScreenPlan:
		view, viewErr := svc.PlanView()
		if viewErr != nil {
			return viewErr
		}
		rendered, err = screens.RenderPlan(view, opts)
		if err == nil {
			rendered += "\n\nSee your score with: rac result"
		}
	default:
		rendered = "No session. Run: rac start"
	}
	if err != nil {
		return fmt.Errorf("render screen: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
