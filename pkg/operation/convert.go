// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/walteh/cssvar/pkg/config"
	"github.com/walteh/cssvar/pkg/convert"
	"github.com/walteh/cssvar/pkg/log"
	"github.com/walteh/cssvar/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📦 ConvertOperation rewrites hardcoded color literals in the target files
type ConvertOperation struct {
	BaseOperation

	total     int
	converted int
}

// 🏗️ NewConvertOperation creates a new convert operation
func NewConvertOperation(opts Options) (*ConvertOperation, error) {
	if err := opts.Validate(); err != nil {
		return nil, errors.Errorf("validating options: %w", err)
	}
	return &ConvertOperation{BaseOperation: NewBaseOperation(opts)}, nil
}

// Name implements Operation
func (op *ConvertOperation) Name() string {
	return "convert"
}

// Total returns the grand total of substitutions made by the last Execute
func (op *ConvertOperation) Total() int {
	return op.total
}

// 🏃 Execute processes every target in list order: read, convert, and when
// anything changed, back up the original and overwrite it. Missing files and
// no-op files are skipped without failing the run.
func (op *ConvertOperation) Execute(ctx context.Context) error {
	targets, err := op.Config.ResolveTargets(ctx)
	if err != nil {
		return errors.Errorf("resolving targets: %w", err)
	}

	conv, err := convert.New(op.Config.EffectiveRules())
	if err != nil {
		return errors.Errorf("building converter: %w", err)
	}

	op.StatusMgr.StartOperation(ctx, len(targets))
	defer op.StatusMgr.FinishOperation(ctx)

	op.total = 0
	op.converted = 0
	entries := make([]status.LockEntry, 0, len(targets))

	for i, path := range targets {
		info, err := op.processFile(ctx, conv, path)
		if err != nil {
			return errors.Errorf("processing file %s: %w", path, err)
		}

		op.StatusMgr.TrackFile(ctx, path, info)
		op.StatusMgr.UpdateProgress(ctx, i+1)

		op.total += info.Replacements
		if info.Status == status.StatusConverted {
			op.converted++
		}

		entries = append(entries, status.LockEntry{
			Path:         path,
			Status:       info.Status.String(),
			Checksum:     info.Checksum,
			Replacements: info.Replacements,
			Backup:       info.BackupPath,
		})
	}

	lockPath := filepath.Join(op.Config.BaseDir, config.DefaultLockFileName)
	if err := op.StatusMgr.UpdateLockFile(ctx, lockPath, status.LockFile{
		TotalReplacements: op.total,
		Files:             entries,
	}); err != nil {
		return errors.Errorf("updating lock file: %w", err)
	}

	op.UserLogger.LogRunSummary(op.total, op.converted)
	return nil
}

// 📄 processFile runs the conversion for a single target
func (op *ConvertOperation) processFile(ctx context.Context, conv *convert.Converter, path string) (status.FileInfo, error) {
	exists, err := op.StatusMgr.FileExists(ctx, path)
	if err != nil {
		return status.FileInfo{}, errors.Errorf("checking target: %w", err)
	}
	if !exists {
		// Missing targets are a warning, not a failure
		op.UserLogger.LogFileChange(log.FileChange{
			Type:        log.FileMissing,
			Path:        path,
			Description: "file not found",
		})
		return status.FileInfo{Path: path, Status: status.StatusMissing}, nil
	}

	original, err := op.StatusMgr.ReadFile(ctx, path)
	if err != nil {
		return status.FileInfo{}, errors.Errorf("reading target: %w", err)
	}

	newContent, count := conv.Convert(string(original))
	if count == 0 {
		op.UserLogger.LogFileChange(log.FileChange{
			Type:        log.FileUnchanged,
			Path:        path,
			Description: "no hardcoded colors",
		})
		return status.FileInfo{
			Path:     path,
			Status:   status.StatusUnchanged,
			Checksum: status.Checksum(original),
		}, nil
	}

	// Backup before overwriting. A backup from a previous run is replaced.
	if err := op.StatusMgr.BackupFile(ctx, path); err != nil {
		return status.FileInfo{}, errors.Errorf("backing up target: %w", err)
	}

	if err := op.StatusMgr.WriteFileAtomic(ctx, path, []byte(newContent)); err != nil {
		return status.FileInfo{}, errors.Errorf("writing target: %w", err)
	}

	backupPath := op.StatusMgr.BackupPath(path)
	op.UserLogger.LogFileChange(log.FileChange{
		Type:        log.FileConverted,
		Path:        path,
		Description: fmt.Sprintf("%d replacements, backup %s", count, filepath.Base(backupPath)),
	})

	return status.FileInfo{
		Path:         path,
		Status:       status.StatusConverted,
		Replacements: count,
		BackupPath:   backupPath,
		Checksum:     status.Checksum([]byte(newContent)),
	}, nil
}
