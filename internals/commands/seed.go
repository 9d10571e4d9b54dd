package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	seedMonks "monges_backend/internals/seeds/monks"
)

func newSeedCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file.json>",
		Short: "Import record dari file JSON (nama yang sudah ada dilewati)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := OpenApp(opts.cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := seedMonks.SeedMonksFromJSON(cmd.Context(), a.Store, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ %d baru, %d dilewati, %d gagal\n", res.Inserted, res.Skipped, res.Failed)
			return nil
		},
	}
}
