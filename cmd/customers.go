package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCustomersCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "customers",
		Short: "List the customers in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := app.catalog.Load(cmd.Context())
			if err != nil {
				return err
			}

			for _, customer := range catalog.Customers() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", customer.ID, customer.Name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
