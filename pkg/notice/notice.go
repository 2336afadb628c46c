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

// Package notice is how commands talk to the person running them: short
// notices, a spinner while work is in flight, and yes/no confirmations.
package notice

import (
	"context"
	"strings"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🤔 Confirmation is the answer to a confirmation prompt.
type Confirmation int

const (
	Cancelled Confirmation = iota
	Confirmed
)

func (c Confirmation) String() string {
	if c == Confirmed {
		return "confirmed"
	}
	return "cancelled"
}

// 📣 Notifier shows notices to the user.
type Notifier interface {
	// Success reports a finished command; url may be empty
	Success(ctx context.Context, message, url string)
	Warning(ctx context.Context, message string)
	Error(ctx context.Context, message string)
	// Confirm asks a yes/no question. Declining is Cancelled, not an error.
	Confirm(ctx context.Context, prompt string) (Confirmation, error)
	// Spin shows label until the returned stop func is called
	Spin(ctx context.Context, label string) (stop func())
}

// 🧾 ErrorMessage renders err as "message: cause", the outermost message and
// its first cause. Deeper causes are left to the debug log.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	parts := ownMessages(err)
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, ": ")
}

// ownMessages splits a wrap chain into each level's own text. Wrappers that
// add no text of their own are skipped.
func ownMessages(err error) []string {
	var parts []string
	for err != nil {
		msg := err.Error()
		next := errors.Unwrap(err)
		if next == nil {
			parts = append(parts, msg)
			break
		}
		inner := next.Error()
		switch {
		case inner == msg:
		case strings.HasSuffix(msg, ": "+inner):
			parts = append(parts, strings.TrimSuffix(msg, ": "+inner))
		default:
			parts = append(parts, msg)
			return parts
		}
		err = next
	}
	return parts
}

// 🖥️ Console is a Notifier printing through pterm.
type Console struct {
	// AutoConfirm answers every prompt with Confirmed
	AutoConfirm bool
}

var _ Notifier = (*Console)(nil)

// 🏭 NewConsole returns a Console.
func NewConsole(autoConfirm bool) *Console {
	return &Console{AutoConfirm: autoConfirm}
}

func (c *Console) Success(ctx context.Context, message, url string) {
	pterm.Success.Println(message)
	if url != "" {
		pterm.Info.WithPrefix(pterm.Prefix{Text: "🔗", Style: pterm.Info.Prefix.Style}).Println(url)
	}
	zerolog.Ctx(ctx).Debug().Str("notice", message).Str("url", url).Msg("success notice")
}

func (c *Console) Warning(ctx context.Context, message string) {
	pterm.Warning.Println(message)
	zerolog.Ctx(ctx).Debug().Str("notice", message).Msg("warning notice")
}

func (c *Console) Error(ctx context.Context, message string) {
	pterm.Error.Println(message)
	zerolog.Ctx(ctx).Debug().Str("notice", message).Msg("error notice")
}

// Confirm prompts on the terminal. A cancelled ctx aborts before prompting.
func (c *Console) Confirm(ctx context.Context, prompt string) (Confirmation, error) {
	if err := ctx.Err(); err != nil {
		return Cancelled, errors.Errorf("confirming: %w", err)
	}
	if c.AutoConfirm {
		zerolog.Ctx(ctx).Debug().Str("prompt", prompt).Msg("auto confirmed")
		return Confirmed, nil
	}

	ok, err := pterm.DefaultInteractiveConfirm.WithDefaultText(prompt).Show()
	if err != nil {
		return Cancelled, errors.Errorf("reading confirmation: %w", err)
	}
	if !ok {
		return Cancelled, nil
	}
	return Confirmed, nil
}

// Spin starts a pterm spinner. A spinner that cannot start is logged and the
// stop func does nothing.
func (c *Console) Spin(ctx context.Context, label string) func() {
	spinner, err := pterm.DefaultSpinner.WithRemoveWhenDone(true).Start(label)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("starting spinner")
		return func() {}
	}
	return func() {
		_ = spinner.Stop()
	}
}
