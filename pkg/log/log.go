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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent = 4  // spaces to indent file entries
	nameWidth  = 35 // Base width for filename
	countWidth = 18 // Width for the replacement count column
)

// 🎯 FileConversion represents a per-file conversion outcome for logging
type FileConversion struct {
	Path         string // File path
	Status       string // Outcome (converted/unchanged/missing/restored)
	Replacements int    // Number of substitutions made
	BackupPath   string // Backup artifact, when one was created
	IsConverted  bool   // Whether the file was rewritten
	IsMissing    bool   // Whether the file was absent
	IsRestored   bool   // Whether the file was restored from backup
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog        zerolog.Logger
	console     io.Writer
	mu          sync.Mutex
	conversions []FileConversion
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatFileConversion formats a file conversion for display
func (l *Logger) formatFileConversion(op FileConversion) string {
	// Determine symbol and color
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case op.IsMissing:
		symbol = '✗'
		symbolColor = color.FgYellow
	case op.IsRestored:
		symbol = '↩'
		symbolColor = color.FgMagenta
	case op.IsConverted:
		symbol = '⟳'
		symbolColor = color.FgBlue
	default:
		symbol = '-'
		symbolColor = color.FgCyan
	}

	count := ""
	if op.Replacements > 0 {
		count = fmt.Sprintf("%d replacements", op.Replacements)
	}

	// Build the line
	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, op.Path),
		fmt.Sprintf("%-*s", countWidth, count),
		color.New(color.Faint).Sprint(op.Status))
}

// 📝 LogFileConversion logs a per-file conversion outcome
func (l *Logger) LogFileConversion(ctx context.Context, op FileConversion) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.conversions = append(l.conversions, op)

	fmt.Fprintln(l.console, l.formatFileConversion(op))

	l.zlog.Info().
		Str("file", op.Path).
		Str("status", op.Status).
		Int("replacements", op.Replacements).
		Str("backup", op.BackupPath).
		Bool("is_converted", op.IsConverted).
		Bool("is_missing", op.IsMissing).
		Bool("is_restored", op.IsRestored).
		Msg("file conversion")
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	cssvarText := color.New(color.Bold, color.FgCyan).Sprint("cssvar")
	fmt.Fprintf(l.console, "\n%s %s\n\n", cssvarText, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
