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

package selector

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"gitlab.com/tozd/go/errors"
)

var (
	ErrCancelled      = errors.Base("selection cancelled")
	ErrNoOptions      = errors.Base("nothing to choose from")
	ErrNotInteractive = errors.Base("stdin is not a terminal")
)

// 💬 Prompter asks the user to pick one of options
type Prompter interface {
	Select(ctx context.Context, message string, options []string) (string, error)
}

// 🎛️ UI names a Prompter implementation
type UI string

const (
	UIPterm UI = "pterm"
	UITUI   UI = "tui"
)

// 🏭 NewPrompter returns the prompter for ui. Prompts fail with
// ErrNotInteractive when stdin is not a terminal.
//
// The pterm menu can only draw on stdout, so when stdout is redirected the
// tui prompter, which draws on stderr, is used instead.
func NewPrompter(ui UI) (Prompter, error) {
	var p Prompter
	switch ui {
	case UIPterm, "":
		if IsTerminal(os.Stdout) {
			p = &PtermPrompter{}
		} else {
			p = &TUIPrompter{Output: os.Stderr}
		}
	case UITUI:
		p = &TUIPrompter{Output: os.Stderr}
	default:
		return nil, errors.Errorf("unknown ui %q, expected %q or %q", ui, UIPterm, UITUI)
	}
	return RequireTerminal(p, IsTerminal(os.Stdin)), nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// RequireTerminal wraps p so that prompting fails instead of blocking when
// there is no terminal to answer it.
func RequireTerminal(p Prompter, terminal bool) Prompter {
	if terminal {
		return p
	}
	return noTerminal{}
}

type noTerminal struct{}

func (noTerminal) Select(_ context.Context, message string, _ []string) (string, error) {
	return "", errors.Errorf("%w: cannot ask %q, pass the answer as a flag", ErrNotInteractive, message)
}
