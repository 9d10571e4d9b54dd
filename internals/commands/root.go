package commands

import (
	"github.com/spf13/cobra"

	"monges_backend/internals/configs"
)

const (
	rootCmdUse   = "monges"
	rootCmdShort = "Arsip biografi monges: server HTTP + utilitas backup/export"
	dbFlag       = "db"
	dbFlagUsage  = "path file database SQLite (default dari MONGES_DB_PATH / APP_ENV)"
)

// rootOptions dibagi ke semua subcommand; --db menimpa cfg.DBPath.
type rootOptions struct {
	cfg configs.Config
}

// NewRootCommand: tanpa subcommand → serve.
func NewRootCommand(cfg configs.Config) *cobra.Command {
	opts := &rootOptions{cfg: cfg}

	root := &cobra.Command{
		Use:           rootCmdUse,
		Short:         rootCmdShort,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts.cfg)
		},
	}

	root.PersistentFlags().StringVar(&opts.cfg.DBPath, dbFlag, cfg.DBPath, dbFlagUsage)

	root.AddCommand(
		newServeCommand(opts),
		newBackupCommand(opts),
		newRestoreCommand(opts),
		newExportCommand(opts),
		newStatsCommand(opts),
		newSeedCommand(opts),
	)
	return root
}
