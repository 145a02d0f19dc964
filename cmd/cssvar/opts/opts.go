package opts

import (
	"github.com/rs/zerolog"
	"github.com/walteh/cssvar/pkg/config"
	"github.com/walteh/cssvar/pkg/log"
	"github.com/walteh/cssvar/pkg/status"
)

// 📦 RootOpts holds the dependencies shared by all commands
type RootOpts struct {
	Config     *config.Config
	StatusMgr  *status.Manager
	Console    *log.Logger
	UserLogger *log.UserLogger
	Logger     *zerolog.Logger
}
