package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/cssvar/cmd/cssvar/opts"
	"github.com/walteh/cssvar/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewStatusCmd creates a new status command
func NewStatusCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report pending replacements without writing anything",
		Long: `Status is a dry run over the target stylesheets.
It will:
1. Read each target
2. Count the replacements a convert run would make
3. Report per-file and total pending counts

No file is written or backed up.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "status").Logger().WithContext(cmd.Context())

			ro.Console.Header("checking stylesheets for hardcoded colors")

			op, err := operation.NewStatusOperation(operation.Options{
				Config:     ro.Config,
				StatusMgr:  ro.StatusMgr,
				UserLogger: ro.UserLogger,
				Logger:     ro.Logger,
			})
			if err != nil {
				return errors.Errorf("creating status operation: %w", err)
			}

			if err := op.Execute(ctx); err != nil {
				return errors.Errorf("checking status: %w", err)
			}

			if op.Pending() > 0 {
				ro.Console.Warningf("%d replacements pending", op.Pending())
			} else {
				ro.Console.Success("nothing to convert")
			}
			return nil
		},
	}

	return cmd
}
