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

package status

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 FileStatus represents the outcome of processing a file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusConverted            // File was rewritten (backup created)
	StatusUnchanged            // File had no matching literals
	StatusMissing              // File does not exist (skipped)
	StatusRestored             // File was restored from its backup
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusConverted:
		return "converted"
	case StatusUnchanged:
		return "unchanged"
	case StatusMissing:
		return "missing"
	case StatusRestored:
		return "restored"
	default:
		return "unknown"
	}
}

// 📄 FileInfo contains metadata about a processed file
type FileInfo struct {
	Path         string     // Path to the file
	Status       FileStatus // Outcome of processing
	Replacements int        // Number of substitutions made
	BackupPath   string     // Backup artifact path, when one was created
	Checksum     string     // Content hash of the written file
	Error        error      // Any error associated with this file
}

// 💾 FileManager handles all file system operations
type FileManager interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	FileExists(ctx context.Context, path string) (bool, error)

	// Atomic operations
	WriteFileAtomic(ctx context.Context, path string, content []byte) error

	// Backup operations
	BackupFile(ctx context.Context, path string) error
	RestoreFile(ctx context.Context, path string) error
}

// 📈 StatusReporter tracks file status and reports progress
type StatusReporter interface {
	TrackFile(ctx context.Context, path string, info FileInfo)
	GetFileInfo(ctx context.Context, path string) (FileInfo, error)
	ListFiles(ctx context.Context) ([]FileInfo, error)

	StartOperation(ctx context.Context, total int)
	UpdateProgress(ctx context.Context, processed int)
	FinishOperation(ctx context.Context)
}

// 🔧 Manager implements both FileManager and StatusReporter
type Manager struct {
	suffix    string          // Suffix appended to backup file names
	logger    *zerolog.Logger // Logger for status updates
	formatter FileFormatter   // Formatter for status messages

	// Status tracking
	mu    sync.RWMutex
	files map[string]FileInfo

	// Progress tracking
	total     int
	processed int
}

// 🏭 New creates a new status manager
func New(backupSuffix string, logger *zerolog.Logger) *Manager {
	return &Manager{
		suffix:    backupSuffix,
		logger:    logger,
		formatter: NewDefaultFileFormatter(),
		files:     make(map[string]FileInfo),
	}
}

// 🔒 BackupPath returns the backup artifact path for a file: the original
// path with the backup suffix appended after the existing extension
func (m *Manager) BackupPath(path string) string {
	return path + m.suffix
}

// 🔍 Checksum generates a SHA-256 hash of the content
func Checksum(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// FileManager interface implementation

func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

func (m *Manager) FileExists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking file existence: %w", err)
}

func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	tempPath := path + ".tmp"

	// Write to temp file
	if err := os.WriteFile(tempPath, content, 0644); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// BackupFile copies the file's current content to its backup path,
// overwriting any backup from a previous run
func (m *Manager) BackupFile(ctx context.Context, path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return errors.Errorf("checking file existence: %w", err)
	}

	if err := copyFile(path, m.BackupPath(path)); err != nil {
		return errors.Errorf("creating backup: %w", err)
	}

	return nil
}

// RestoreFile copies the backup artifact back over the original. The backup
// is kept: it stays on disk until a human removes it.
func (m *Manager) RestoreFile(ctx context.Context, path string) error {
	backupPath := m.BackupPath(path)

	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return errors.Errorf("backup file does not exist")
	} else if err != nil {
		return errors.Errorf("checking backup existence: %w", err)
	}

	if err := copyFile(backupPath, path); err != nil {
		return errors.Errorf("restoring from backup: %w", err)
	}

	return nil
}

// StatusReporter interface implementation

func (m *Manager) TrackFile(ctx context.Context, path string, info FileInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files[path] = info
	msg := m.formatter.FormatFileOperation(path, info.Status, info.Replacements)
	if info.Error != nil {
		msg = m.formatter.FormatError(info.Error)
	}
	m.logger.Info().
		Str("path", path).
		Str("status", info.Status.String()).
		Int("replacements", info.Replacements).
		Msg(msg)
}

func (m *Manager) GetFileInfo(ctx context.Context, path string) (FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	info, ok := m.files[path]
	if !ok {
		return FileInfo{}, errors.Errorf("file not tracked: %s", path)
	}
	return info, nil
}

func (m *Manager) ListFiles(ctx context.Context) ([]FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make([]FileInfo, 0, len(m.files))
	for _, info := range m.files {
		files = append(files, info)
	}
	return files, nil
}

func (m *Manager) StartOperation(ctx context.Context, total int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total = total
	m.processed = 0
	msg := m.formatter.FormatProgress(0, total)
	m.logger.Info().Int("total", total).Msg(msg)
}

func (m *Manager) UpdateProgress(ctx context.Context, processed int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.processed = processed
	msg := m.formatter.FormatProgress(processed, m.total)
	m.logger.Info().
		Int("processed", processed).
		Int("total", m.total).
		Msg(msg)
}

func (m *Manager) FinishOperation(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	msg := m.formatter.FormatProgress(m.total, m.total)
	m.logger.Info().
		Int("processed", m.total).
		Int("total", m.total).
		Msg(msg)
}

// Helper functions

func copyFile(src, dst string) error {
	source, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source file: %w", err)
	}
	defer source.Close()

	destination, err := os.Create(dst)
	if err != nil {
		return errors.Errorf("creating destination file: %w", err)
	}
	defer destination.Close()

	if _, err := io.Copy(destination, source); err != nil {
		return errors.Errorf("copying file: %w", err)
	}

	return nil
}
