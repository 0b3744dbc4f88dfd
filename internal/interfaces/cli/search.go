package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turtacn/pharmyrus/internal/bootstrap"
	"github.com/turtacn/pharmyrus/pkg/types/report"
)

func newSearchCommand() *cobra.Command {
	var brand string

	cmd := &cobra.Command{
		Use:   "search <molecule>",
		Short: "Run one patent search and print the report as JSON",
		Long:  "Runs the full discovery pipeline for the given molecule and writes the\nreport to stdout.  A run takes minutes: every upstream call is paced to\nrespect source rate limits.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			// A one-shot process has nothing to scrape.
			cfg.Metrics.Enabled = false

			app, err := bootstrap.New(cfg)
			if err != nil {
				return err
			}

			rep, err := app.Pipeline.Run(cmd.Context(), report.SearchRequest{
				MoleculeName: args[0],
				BrandName:    brand,
			})
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(rep, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&brand, "brand", "b", "", "commercial brand name (nome_comercial)")
	return cmd
}
