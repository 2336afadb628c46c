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
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🎬 Command is one operator call bound to its note
type Command func(ctx context.Context) error

// 🏃 Runner executes commands and reports their cancellation
type Runner struct{}

// 🏗️ NewRunner creates a new runner. Request deadlines are set by the remote
// clients.
func NewRunner() *Runner {
	return &Runner{}
}

// 🏃 Run executes cmd. A cancelled ctx still waits for cmd to return, and the
// error then wraps ctx.Err().
func (r *Runner) Run(ctx context.Context, name string, cmd Command) error {
	logger := zerolog.Ctx(ctx).With().Str("command", name).Logger()
	ctx = logger.WithContext(ctx)

	errCh := make(chan error, 1)
	go func() {
		errCh <- cmd(ctx)
	}()

	start := time.Now()
	select {
	case err := <-errCh:
		logger.Debug().Dur("took", time.Since(start)).Bool("ok", err == nil).Msg("command finished")
		return err
	case <-ctx.Done():
		logger.Debug().Dur("after", time.Since(start)).Msg("command cancelled, waiting for it to finish")
	}

	err := <-errCh
	logger.Debug().Err(err).Dur("took", time.Since(start)).Msg("cancelled command finished")
	return errors.Errorf("%s cancelled: %w", name, ctx.Err())
}
