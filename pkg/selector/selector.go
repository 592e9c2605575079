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

	"github.com/rs/zerolog"
	"github.com/walteh/lessoncopy/pkg/curriculum"
	"gitlab.com/tozd/go/errors"
)

// 🎬 Action is one of the things the tool can do with a selection
type Action string

const (
	ActionCopyLessonSolutions Action = "copyLessonSolutions"
	ActionCopyModule          Action = "copyModule"
	ActionPrintActivities     Action = "printActivities"
)

// Actions lists the actions in menu order.
var Actions = []Action{ActionCopyLessonSolutions, ActionCopyModule, ActionPrintActivities}

// Name is the menu label of the action.
func (a Action) Name() string {
	switch a {
	case ActionCopyLessonSolutions:
		return "Copy Lesson Solutions"
	case ActionCopyModule:
		return "Copy Module - Strip solutions"
	case ActionPrintActivities:
		return "Print Activities"
	default:
		return string(a)
	}
}

// NeedsDay reports whether the action works on a single day's lesson plan.
func (a Action) NeedsDay() bool {
	return a != ActionCopyModule
}

// 🎯 ChooseAction shows the action menu
func ChooseAction(ctx context.Context, p Prompter) (Action, error) {
	names := make([]string, len(Actions))
	for i, a := range Actions {
		names[i] = a.Name()
	}

	choice, err := p.Select(ctx, "Choose an option.", names)
	if err != nil {
		return "", errors.Errorf("choosing action: %w", err)
	}

	for _, a := range Actions {
		if a.Name() == choice {
			return a, nil
		}
	}
	return "", errors.Errorf("unknown action %q", choice)
}

// 📌 Presets answer prompts ahead of time; empty fields are asked
type Presets struct {
	Cohort string
	Module string
	Day    string
}

// 🧭 Selector walks the user from cohort to lesson plan
type Selector struct {
	layout   *curriculum.Layout
	prompter Prompter
	presets  Presets
}

// 🏭 New creates a Selector
func New(layout *curriculum.Layout, prompter Prompter, presets Presets) *Selector {
	return &Selector{layout: layout, prompter: prompter, presets: presets}
}

// 🏃 Select asks for cohort, module and, when the action needs one, the day,
// then finds that day's lesson plan.
func (s *Selector) Select(ctx context.Context, action Action) (*curriculum.Selection, error) {
	cohort, err := s.choose(ctx, "choose a curriculum", "cohort", s.presets.Cohort, s.layout.Cohorts)
	if err != nil {
		return nil, err
	}

	module, err := s.choose(ctx, "choose a module", "module", s.presets.Module, func() ([]string, error) {
		return s.layout.Modules(cohort)
	})
	if err != nil {
		return nil, err
	}

	if !action.NeedsDay() {
		return &curriculum.Selection{
			Cohort:     cohort,
			Module:     module,
			LessonPlan: s.layout.ModuleDir(cohort, module),
		}, nil
	}

	day, err := s.choose(ctx, "choose a lesson plan", "day", s.presets.Day, func() ([]string, error) {
		return s.layout.Days(cohort, module)
	})
	if err != nil {
		return nil, err
	}

	plan, err := s.layout.LessonPlan(cohort, module, day)
	if err != nil {
		return nil, errors.Errorf("selecting lesson plan: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("cohort", cohort).
		Str("module", module).
		Str("day", day).
		Str("lesson_plan", plan).
		Msg("selected lesson plan")

	return &curriculum.Selection{
		Cohort:     cohort,
		Module:     module,
		Day:        day,
		LessonPlan: plan,
	}, nil
}

func (s *Selector) choose(ctx context.Context, message, kind, preset string, list func() ([]string, error)) (string, error) {
	options, err := list()
	if err != nil {
		return "", errors.Errorf("choosing %s: %w", kind, err)
	}

	if preset != "" {
		if err := curriculum.Lookup(kind, preset, options); err != nil {
			return "", err
		}
		zerolog.Ctx(ctx).Debug().Str(kind, preset).Msg("using preset")
		return preset, nil
	}

	if len(options) == 0 {
		return "", errors.Errorf("%w: no %s found", ErrNoOptions, kind)
	}

	choice, err := s.prompter.Select(ctx, message, options)
	if err != nil {
		return "", errors.Errorf("choosing %s: %w", kind, err)
	}
	return choice, nil
}
