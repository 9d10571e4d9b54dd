package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"monges_backend/internals/features/monks/export"
)

const exportFilePerm = 0o644

func newExportCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export semua record ke CSV (default monges_dados_YYYY-MM-DD.csv)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest := export.FileName(time.Now())
			if len(args) > 0 {
				dest = args[0]
			}

			a, err := OpenApp(opts.cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			records, err := a.Store.GetAll(cmd.Context())
			if err != nil {
				return err
			}
			data, err := export.CSV(records)
			if err != nil {
				return err
			}
			if err := os.WriteFile(dest, data, exportFilePerm); err != nil {
				return fmt.Errorf("write %s: %w", dest, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ %d record → %s (%s)\n", len(records), dest, humanize.Bytes(uint64(len(data))))
			return nil
		},
	}
}
