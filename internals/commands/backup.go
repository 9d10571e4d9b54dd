package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"monges_backend/internals/features/monks/service"
)

func newBackupCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "backup [dest]",
		Short: "Salin file database ke dest (tanpa argumen: tanya di terminal)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := OpenApp(opts.cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			picker := pickerFor(args, cmd.InOrStdin(), out)
			n, err := a.Backup.Backup(cmd.Context(), picker)
			return reportFileOp(out, "Backup", n, err)
		},
	}
}

func newRestoreCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "restore [src]",
		Short: "Ganti database aktif dengan file backup src",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := OpenApp(opts.cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			picker := pickerFor(args, cmd.InOrStdin(), out)
			n, err := a.Backup.Restore(cmd.Context(), picker)
			return reportFileOp(out, "Restore", n, err)
		},
	}
}

// reportFileOp: batal bukan error (exit 0).
func reportFileOp(out io.Writer, op string, n int64, err error) error {
	if errors.Is(err, service.ErrUserCancelled) {
		fmt.Fprintln(out, "⚠️ Dibatalkan.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	fmt.Fprintf(out, "✅ %s selesai (%s)\n", op, humanize.Bytes(uint64(n)))
	return nil
}
