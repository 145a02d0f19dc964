package operation

import (
	"context"
	"fmt"

	"github.com/walteh/cssvar/pkg/convert"
	"github.com/walteh/cssvar/pkg/log"
	"github.com/walteh/cssvar/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📦 StatusOperation is a dry run: it reports how many substitutions a
// convert run would make, without writing anything
type StatusOperation struct {
	BaseOperation

	pending int
}

// 🏗️ NewStatusOperation creates a new status operation
func NewStatusOperation(opts Options) (*StatusOperation, error) {
	if err := opts.Validate(); err != nil {
		return nil, errors.Errorf("validating options: %w", err)
	}
	return &StatusOperation{BaseOperation: NewBaseOperation(opts)}, nil
}

// Name implements Operation
func (op *StatusOperation) Name() string {
	return "status"
}

// Pending returns the number of substitutions the last Execute found waiting
func (op *StatusOperation) Pending() int {
	return op.pending
}

// 🏃 Execute checks every target and reports pending substitutions
func (op *StatusOperation) Execute(ctx context.Context) error {
	targets, err := op.Config.ResolveTargets(ctx)
	if err != nil {
		return errors.Errorf("resolving targets: %w", err)
	}

	conv, err := convert.New(op.Config.EffectiveRules())
	if err != nil {
		return errors.Errorf("building converter: %w", err)
	}

	op.pending = 0
	for _, path := range targets {
		exists, err := op.StatusMgr.FileExists(ctx, path)
		if err != nil {
			return errors.Errorf("checking target %s: %w", path, err)
		}
		if !exists {
			op.UserLogger.LogFileChange(log.FileChange{
				Type:        log.FileMissing,
				Path:        path,
				Description: "file not found",
			})
			op.StatusMgr.TrackFile(ctx, path, status.FileInfo{Path: path, Status: status.StatusMissing})
			continue
		}

		content, err := op.StatusMgr.ReadFile(ctx, path)
		if err != nil {
			return errors.Errorf("reading target %s: %w", path, err)
		}

		_, count := conv.Convert(string(content))
		op.pending += count

		if count == 0 {
			op.UserLogger.LogFileChange(log.FileChange{
				Type: log.FileUnchanged,
				Path: path,
			})
		} else {
			op.UserLogger.LogFileChange(log.FileChange{
				Type:        log.FileConverted,
				Path:        path,
				Description: fmt.Sprintf("%d replacements pending", count),
			})
		}
	}

	if op.pending == 0 {
		op.UserLogger.LogStateChange("All colors already use variables")
	} else {
		op.UserLogger.LogStateChange(fmt.Sprintf("%d replacements pending, run convert to apply", op.pending))
	}

	return nil
}
