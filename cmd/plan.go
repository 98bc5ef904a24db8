package cmd

import (
	"errors"
	"fmt"

	"github.com/TomoakiAbebe/rac-tourist/internal/adapters/render/screens"
	"github.com/TomoakiAbebe/rac-tourist/internal/application"
	"github.com/TomoakiAbebe/rac-tourist/internal/domain"
	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Show the selected venues on the day's timeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer app.close()

			svc, err := openForCommand(cmd, app)
			if err != nil {
				return err
			}
			view, err := svc.PlanView()
			if err != nil {
				return err
			}

			rendered, err := screens.RenderPlan(view, renderOptions(cmd, app))
			if err != nil {
				return fmt.Errorf("render plan: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}

type resultOutput struct {
	CustomerID      string                 `json:"customer_id"`
	CustomerName    string                 `json:"customer_name"`
	Score           int                    `json:"score"`
	CorrectCount    int                    `json:"correct_count"`
	TotalCategories int                    `json:"total_categories"`
	Tier            string                 `json:"tier"`
	Headline        string                 `json:"headline"`
	Banner          string                 `json:"banner"`
	Categories      []categoryResultOutput `json:"categories"`
	AllTags         []string               `json:"all_tags"`
}

type categoryResultOutput struct {
	Category string `json:"category"`
	Correct  bool   `json:"correct"`
	Selected string `json:"selected,omitempty"`
	Expected string `json:"expected"`
}

func newResultCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "result",
		Short: "Score the finished plan against the customer's wishes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer app.close()

			svc, err := openForCommand(cmd, app)
			if err != nil {
				return err
			}
			view, err := svc.ResultView()
			if err != nil {
				if errors.Is(err, domain.ErrInterviewNotComplete) {
					return fmt.Errorf("choose a venue for all %d categories first: %w", domain.CategoryCount, err)
				}
				return err
			}

			if asJSON {
				customer, err := svc.Customer()
				if err != nil {
					return err
				}
				return writeResultJSON(cmd, customer, view)
			}

			rendered, err := screens.RenderResult(view, renderOptions(cmd, app))
			if err != nil {
				return fmt.Errorf("render result: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output JSON")
	return cmd
}

func writeResultJSON(cmd *cobra.Command, customer domain.Customer, view application.ResultView) error {
	report := view.Report
	out := resultOutput{
		CustomerID:      string(customer.ID),
		CustomerName:    customer.Name,
		Score:           report.Score,
		CorrectCount:    report.CorrectCount,
		TotalCategories: report.TotalCategories,
		Tier:            string(view.Tier),
		Headline:        view.Headline,
		Banner:          view.Banner,
		AllTags:         append([]string{}, report.AllTags...),
	}
	for _, result := range report.Results() {
		entry := categoryResultOutput{
			Category: string(result.Category),
			Correct:  result.Correct,
			Expected: string(result.CorrectVenue.ID),
		}
		if result.Selected != nil {
			entry.Selected = string(result.Selected.ID)
		}
		out.Categories = append(out.Categories, entry)
	}

	data, err := sonic.ConfigStd.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
