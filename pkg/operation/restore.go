package operation

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/walteh/cssvar/pkg/log"
	"github.com/walteh/cssvar/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📦 RestoreOperation copies each target's backup artifact back over the
// original. Backups are never removed by the tool; restore is the explicit
// human-invoked undo for a convert run.
type RestoreOperation struct {
	BaseOperation

	restored int
}

// 🏗️ NewRestoreOperation creates a new restore operation
func NewRestoreOperation(opts Options) (*RestoreOperation, error) {
	if err := opts.Validate(); err != nil {
		return nil, errors.Errorf("validating options: %w", err)
	}
	return &RestoreOperation{BaseOperation: NewBaseOperation(opts)}, nil
}

// Name implements Operation
func (op *RestoreOperation) Name() string {
	return "restore"
}

// Restored returns the number of files restored by the last Execute
func (op *RestoreOperation) Restored() int {
	return op.restored
}

// 🏃 Execute restores every target that has a backup artifact
func (op *RestoreOperation) Execute(ctx context.Context) error {
	targets, err := op.Config.ResolveTargets(ctx)
	if err != nil {
		return errors.Errorf("resolving targets: %w", err)
	}

	op.restored = 0
	for _, path := range targets {
		backupPath := op.StatusMgr.BackupPath(path)

		exists, err := op.StatusMgr.FileExists(ctx, backupPath)
		if err != nil {
			return errors.Errorf("checking backup for %s: %w", path, err)
		}
		if !exists {
			op.Logger.Debug().Str("file", path).Str("backup", backupPath).Msg("no backup to restore")
			continue
		}

		if err := op.StatusMgr.RestoreFile(ctx, path); err != nil {
			return errors.Errorf("restoring %s: %w", path, err)
		}

		op.restored++
		op.StatusMgr.TrackFile(ctx, path, status.FileInfo{
			Path:       path,
			Status:     status.StatusRestored,
			BackupPath: backupPath,
		})
		op.UserLogger.LogFileChange(log.FileChange{
			Type:        log.FileRestored,
			Path:        path,
			Description: fmt.Sprintf("from %s", filepath.Base(backupPath)),
		})
	}

	if op.restored == 0 {
		op.UserLogger.LogStateChange("No backups found, nothing restored")
	} else {
		op.UserLogger.LogStateChange(fmt.Sprintf("Restored %d files from backups", op.restored))
	}

	return nil
}
