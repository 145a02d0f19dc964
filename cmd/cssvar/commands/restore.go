package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/cssvar/cmd/cssvar/opts"
	"github.com/walteh/cssvar/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewRestoreCmd creates a new restore command
func NewRestoreCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore target stylesheets from their backups",
		Long: `Restore copies each target's backup artifact back over the
original file, undoing the last convert run. Backups are kept on disk
afterwards; the tool never deletes them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "restore").Logger().WithContext(cmd.Context())

			ro.Console.Header("restoring stylesheets from backups")

			op, err := operation.NewRestoreOperation(operation.Options{
				Config:     ro.Config,
				StatusMgr:  ro.StatusMgr,
				UserLogger: ro.UserLogger,
				Logger:     ro.Logger,
			})
			if err != nil {
				return errors.Errorf("creating restore operation: %w", err)
			}

			if err := op.Execute(ctx); err != nil {
				return errors.Errorf("restoring files: %w", err)
			}

			ro.Console.Successf("restored %d files", op.Restored())
			return nil
		},
	}

	return cmd
}
