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

	"github.com/pterm/pterm"
	"gitlab.com/tozd/go/errors"
)

const defaultMaxHeight = 10

// 📋 PtermPrompter prompts with pterm's fuzzy-filtered select menu
type PtermPrompter struct {
	// MaxHeight is the number of options shown at once
	MaxHeight int
}

func (p *PtermPrompter) Select(ctx context.Context, message string, options []string) (string, error) {
	if len(options) == 0 {
		return "", errors.Errorf("%w: %s", ErrNoOptions, message)
	}
	if err := ctx.Err(); err != nil {
		return "", errors.Errorf("%w: %s", ErrCancelled, err)
	}

	height := p.MaxHeight
	if height <= 0 {
		height = defaultMaxHeight
	}

	interrupted := false
	menu := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultText(message).
		WithMaxHeight(height).
		WithOnInterruptFunc(func() { interrupted = true })

	choice, err := menu.Show()
	if err != nil {
		return "", errors.Errorf("showing select menu: %w", err)
	}
	if interrupted {
		return "", errors.WithStack(ErrCancelled)
	}
	return choice, nil
}
