package log

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about file conversions
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎨 FileChangeType represents the kind of outcome for a file
type FileChangeType int

const (
	FileConverted FileChangeType = iota
	FileUnchanged
	FileMissing
	FileRestored
	FileError
)

// 🖼️ FileChange represents one file's outcome
type FileChange struct {
	Type        FileChangeType
	Path        string
	Description string
	Error       error
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 LogFileChange logs a file outcome with appropriate emoji and formatting
func (u *UserLogger) LogFileChange(change FileChange) {
	// Base name keeps the output compact
	relPath := filepath.Base(change.Path)

	var prefix, action string
	var printer *pterm.PrefixPrinter
	switch change.Type {
	case FileConverted:
		prefix = "🔄"
		action = "Converted"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: prefix})
	case FileUnchanged:
		prefix = "✓"
		action = "Unchanged"
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: prefix})
	case FileMissing:
		prefix = "⏭️"
		action = "Skipped"
		printer = pterm.Warning.WithPrefix(pterm.Prefix{Text: prefix})
	case FileRestored:
		prefix = "♻️"
		action = "Restored"
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: prefix})
	case FileError:
		prefix = "❌"
		action = "Error"
		printer = pterm.Error.WithPrefix(pterm.Prefix{Text: prefix})
	default:
		prefix = "ℹ️"
		action = "Processed"
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: prefix})
	}

	msg := fmt.Sprintf("%s %s", action, relPath)
	if change.Description != "" {
		msg += fmt.Sprintf(" (%s)", change.Description)
	}

	if change.Error != nil {
		printer.Println(msg)
		pterm.Error.Println(change.Error)
		u.log.Error().Err(change.Error).Msg(msg)
	} else {
		printer.Println(msg)
		u.log.Info().Msg(msg)
	}
}

// 📊 LogRunSummary logs the grand total after all files are processed
func (u *UserLogger) LogRunSummary(total int, files int) {
	var msg string
	if total == 0 {
		msg = "No changes needed - all colors already use variables"
	} else {
		msg = fmt.Sprintf("Converted %d color values to CSS variables across %d files", total, files)
	}
	pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(msg)
	u.log.Info().Int("total_replacements", total).Int("files", files).Msg(msg)
}

// 📦 LogStateChange logs a change to the overall run state
func (u *UserLogger) LogStateChange(description string) {
	printer := pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"})
	printer.Println(description)
	u.log.Info().Msg(description)
}
