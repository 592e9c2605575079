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
	"path/filepath"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/lessoncopy/pkg/status"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 50 // Base width for the destination path
	statusWidth = 10 // Width for status text
)

// 🎯 Logger prints copy progress and user messages to the console and
// mirrors every line to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	base    string
	verbose bool
	mu      sync.Mutex
}

// 🔧 Options configure a Logger
type Options struct {
	// Base is stripped from destination paths before they are printed
	Base string
	// Verbose also prints unchanged and skipped entries
	Verbose bool
}

// 🏭 New creates a new logger writing to console; structured events go to
// the zerolog logger in ctx
func New(ctx context.Context, console io.Writer, opts Options) *Logger {
	return &Logger{
		zlog:    *zerolog.Ctx(ctx),
		console: console,
		base:    opts.Base,
		verbose: opts.Verbose,
	}
}

// 📝 formatEntry formats a copy entry for display
func (l *Logger) formatEntry(entry status.FileEntry) string {
	var symbol rune
	var symbolColor color.Attribute
	switch entry.Status {
	case status.StatusNew:
		symbol = '✓'
		symbolColor = color.FgGreen
	case status.StatusModified:
		symbol = '⟳'
		symbolColor = color.FgBlue
	case status.StatusUnchanged:
		symbol = '•'
		symbolColor = color.FgCyan
	default:
		symbol = '-'
		symbolColor = color.FgYellow
	}

	path := l.display(entry.Destination)
	if entry.IsDir {
		path += "/"
	}

	line := fmt.Sprintf("%s%s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, path),
		fmt.Sprintf("%-*s", statusWidth, entry.Status.String()))

	if entry.Reason != "" {
		line += color.New(color.Faint).Sprint(entry.Reason)
	}
	return line
}

// display returns path relative to the base, when it is below it
func (l *Logger) display(path string) string {
	if l.base == "" {
		return path
	}
	rel, err := filepath.Rel(l.base, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}

// 📝 Track prints one copy entry. Directories that were created or found
// are not printed; unchanged and skipped entries only in verbose mode.
func (l *Logger) Track(ctx context.Context, entry status.FileEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.zlog.Debug().
		Str("source", entry.Source).
		Str("destination", entry.Destination).
		Str("status", entry.Status.String()).
		Bool("dir", entry.IsDir).
		Str("reason", entry.Reason).
		Msg("copy entry")

	switch {
	case entry.IsDir && entry.Status != status.StatusSkipped:
		return
	case entry.Status == status.StatusUnchanged, entry.Status == status.StatusSkipped:
		if !l.verbose {
			return
		}
	}

	fmt.Fprintln(l.console, l.formatEntry(entry))
}

// 📊 Summary prints the totals of a finished copy
func (l *Logger) Summary(s status.Summary) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "📊 %s\n", color.New(color.Bold).Sprint(s.String()))
	l.zlog.Info().
		Int("new", s.New).
		Int("modified", s.Modified).
		Int("unchanged", s.Unchanged).
		Int("skipped", s.Skipped).
		Int64("bytes", s.Bytes).
		Msg("copy summary")
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
	name := color.New(color.Bold, color.FgCyan).Sprint("lessoncopy")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
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

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
