// Package operation provides the file processing drivers for cssvar
package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/cssvar/pkg/config"
	"github.com/walteh/cssvar/pkg/log"
	"github.com/walteh/cssvar/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a single unit of work runnable by the Runner
type Operation interface {
	// Name identifies the operation in logs and errors
	Name() string
	// Execute runs the operation
	Execute(ctx context.Context) error
}

// 🔧 Options contains the dependencies shared by all operations
type Options struct {
	// Config is the cssvar configuration
	Config *config.Config
	// StatusMgr manages file access, backups and status tracking
	StatusMgr *status.Manager
	// UserLogger provides user-facing feedback
	UserLogger *log.UserLogger
	// Logger is the structured logger
	Logger *zerolog.Logger
}

// 🔍 Validate checks that all required dependencies are present
func (opts Options) Validate() error {
	if opts.Config == nil {
		return errors.Errorf("config is required")
	}
	if opts.StatusMgr == nil {
		return errors.Errorf("status manager is required")
	}
	if opts.UserLogger == nil {
		return errors.Errorf("user logger is required")
	}
	if opts.Logger == nil {
		return errors.Errorf("logger is required")
	}
	return nil
}

// 📦 BaseOperation carries the shared dependencies
type BaseOperation struct {
	Options
}

// 🏗️ NewBaseOperation creates a new base operation
func NewBaseOperation(opts Options) BaseOperation {
	return BaseOperation{Options: opts}
}
