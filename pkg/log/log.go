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
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	embedIndent = 4  // spaces to indent embed entries
	pathWidth   = 35 // Base width for the vault path
	statusWidth = 10 // Width for status text
)

// 🏷️ EmbedStatus is what happened to one embed during a sync or purge
type EmbedStatus string

const (
	EmbedUploaded EmbedStatus = "uploaded"
	EmbedRemoved  EmbedStatus = "removed"
	EmbedKept     EmbedStatus = "kept"
	EmbedFailed   EmbedStatus = "failed"
	EmbedSkipped  EmbedStatus = "skipped"
)

// 🎯 EmbedOperation represents an embed operation for logging
type EmbedOperation struct {
	Path    string      // Vault path of the embedded file
	Status  EmbedStatus // Outcome
	AssetID string      // Remote asset id, when known
	Detail  string      // Url or failure cause
}

// 📦 NoteOperation represents a command run against one note
type NoteOperation struct {
	Note    string // Vault path of the note
	Command string // create/update/delete/purge/status
	Folder  string // Asset folder, when known
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog       zerolog.Logger
	console    io.Writer
	mu         sync.Mutex
	currentOp  *NoteOperation
	operations []EmbedOperation
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(level)
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

// 📝 formatEmbedOperation formats an embed operation for display
func (l *Logger) formatEmbedOperation(op EmbedOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	switch op.Status {
	case EmbedUploaded:
		symbol = '✓'
		symbolColor = color.FgGreen
	case EmbedRemoved:
		symbol = '✗'
		symbolColor = color.FgRed
	case EmbedKept:
		symbol = '⟳'
		symbolColor = color.FgBlue
	case EmbedFailed:
		symbol = '!'
		symbolColor = color.FgYellow
	default:
		symbol = '-'
		symbolColor = color.Faint
	}

	line := fmt.Sprintf("%s%s %s %s",
		fmt.Sprintf("%*s", embedIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", pathWidth, op.Path),
		color.New(symbolColor).Sprint(fmt.Sprintf("%-*s", statusWidth, op.Status)))
	if op.Detail != "" {
		line += " " + color.New(color.Faint).Sprint(op.Detail)
	}
	return line
}

// 📝 LogEmbedOperation logs an embed operation. A nil logger is a no-op.
func (l *Logger) LogEmbedOperation(ctx context.Context, op EmbedOperation) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.operations = append(l.operations, op)

	fmt.Fprintln(l.console, l.formatEmbedOperation(op))

	l.zlog.Info().
		Str("embed", op.Path).
		Str("status", string(op.Status)).
		Str("asset_id", op.AssetID).
		Str("detail", op.Detail).
		Msg("embed operation")
}

// 📝 StartNoteOperation starts a new note operation
func (l *Logger) StartNoteOperation(ctx context.Context, op NoteOperation) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentOp = &op
	l.operations = nil

	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(op.Command),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgCyan).Sprint(op.Note))

	l.zlog.Info().
		Str("note", op.Note).
		Str("command", op.Command).
		Str("folder", op.Folder).
		Msg("starting note operation")
}

// 📝 EndNoteOperation ends the current note operation and returns the
// embed operations logged during it
func (l *Logger) EndNoteOperation(ctx context.Context) []EmbedOperation {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentOp == nil {
		return nil
	}

	ops := l.operations
	l.zlog.Info().
		Str("note", l.currentOp.Note).
		Int("embeds", len(ops)).
		Msg("note operation complete")

	l.currentOp = nil
	l.operations = nil
	return ops
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}
