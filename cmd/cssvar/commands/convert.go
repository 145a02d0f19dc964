package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/cssvar/cmd/cssvar/opts"
	"github.com/walteh/cssvar/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewConvertCmd creates a new convert command
func NewConvertCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Rewrite hardcoded colors in the target stylesheets",
		Long: `Convert processes every target stylesheet in order.
It will:
1. Read the file content
2. Apply the mapping table (built-in rules plus any configured ones)
3. Back up the original when anything changed
4. Overwrite the file with the converted content
5. Report the grand total of replacements

Missing targets and files with nothing to convert are skipped without
failing the run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunConvert(cmd.Context(), ro)
		},
	}

	return cmd
}

// RunConvert runs the convert operation; it is also the root command behavior
func RunConvert(ctx context.Context, ro *opts.RootOpts) error {
	ctx = zerolog.Ctx(ctx).With().Str("command", "convert").Logger().WithContext(ctx)

	ro.Console.Header("rewriting hardcoded colors")

	op, err := operation.NewConvertOperation(operation.Options{
		Config:     ro.Config,
		StatusMgr:  ro.StatusMgr,
		UserLogger: ro.UserLogger,
		Logger:     ro.Logger,
	})
	if err != nil {
		return errors.Errorf("creating convert operation: %w", err)
	}

	runner := operation.NewRunner(ro.Logger, ro.Config.Async)
	if err := runner.Run(ctx, op); err != nil {
		ro.Console.Errorf("convert failed: %s", err)
		return errors.Errorf("converting files: %w", err)
	}

	ro.Console.Success("all targets processed")
	return nil
}
