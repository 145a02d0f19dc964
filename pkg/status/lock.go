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
	"os"
	"time"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔒 LockEntry records the outcome for one file in the last run
type LockEntry struct {
	Path         string `yaml:"path"`
	Status       string `yaml:"status"`
	Checksum     string `yaml:"checksum,omitempty"`
	Replacements int    `yaml:"replacements"`
	Backup       string `yaml:"backup,omitempty"`
}

// 📜 LockFile summarizes the last run for inspection and diffing
type LockFile struct {
	GeneratedAt       time.Time   `yaml:"generated_at"`
	TotalReplacements int         `yaml:"total_replacements"`
	Files             []LockEntry `yaml:"files"`
}

// 📝 UpdateLockFile writes the run summary to the lock file path
func (m *Manager) UpdateLockFile(ctx context.Context, path string, lock LockFile) error {
	if lock.GeneratedAt.IsZero() {
		lock.GeneratedAt = time.Now().UTC()
	}

	data, err := yaml.Marshal(&lock)
	if err != nil {
		return errors.Errorf("marshaling lock file: %w", err)
	}

	if err := m.WriteFileAtomic(ctx, path, data); err != nil {
		return errors.Errorf("writing lock file: %w", err)
	}

	return nil
}

// 📖 ReadLockFile reads the last run summary, if one exists
func (m *Manager) ReadLockFile(ctx context.Context, path string) (*LockFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading lock file: %w", err)
	}

	var lock LockFile
	if err := yaml.Unmarshal(data, &lock); err != nil {
		return nil, errors.Errorf("parsing lock file: %w", err)
	}

	return &lock, nil
}
