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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/lessoncopy/cmd/lessoncopy/opts"
	"github.com/walteh/lessoncopy/pkg/config"
	"github.com/walteh/lessoncopy/pkg/operation"
	"github.com/walteh/lessoncopy/pkg/selector"
	"gitlab.com/tozd/go/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// stdout is reserved for print-activities output
	pterm.SetDefaultOutput(os.Stderr)

	code := run(ctx, os.Args[1:], &opts.RootOpts{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
	stop()
	os.Exit(code)
}

// run executes the command line in args and returns the exit status
func run(ctx context.Context, args []string, o *opts.RootOpts) int {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: o.Stderr, TimeFormat: "15:04:05"}).
		Level(zerolog.ErrorLevel).
		With().Timestamp().Logger()
	ctx = logger.WithContext(ctx)

	cmd := newRootCmd(o)
	cmd.SetArgs(args)
	cmd.SetOut(o.Stdout)
	cmd.SetErr(o.Stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if o.Debug {
			logger = logger.Level(zerolog.DebugLevel)
		}
		reportError(o.Stderr, logger, err)
		return 1
	}
	return 0
}

// reportError prints err for a person; the debug log keeps the full chain
func reportError(w io.Writer, logger zerolog.Logger, err error) {
	logger.Debug().Err(err).Msg("command failed")

	var missing *config.MissingEnvError
	if errors.As(err, &missing) {
		for _, line := range missing.Lines() {
			fmt.Fprintln(w, line)
		}
		return
	}

	var notCopied *operation.ModuleNotCopiedError
	if errors.As(err, &notCopied) {
		pterm.Error.WithWriter(w).Println(notCopied.Error())
		return
	}

	if errors.Is(err, selector.ErrCancelled) {
		pterm.Warning.WithWriter(w).Println("cancelled")
		return
	}

	pterm.Error.WithWriter(w).Println(err.Error())
}
