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

package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/walteh/lessoncopy/cmd/lessoncopy/opts"
	"github.com/walteh/lessoncopy/pkg/activity"
	"github.com/walteh/lessoncopy/pkg/curriculum"
	"github.com/walteh/lessoncopy/pkg/operation"
	"github.com/walteh/lessoncopy/pkg/selector"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Run selects a lesson plan for action and performs it
func Run(ctx context.Context, o *opts.RootOpts, action selector.Action, presets selector.Presets) error {
	prompter, err := o.GetPrompter()
	if err != nil {
		return errors.Errorf("creating prompter: %w", err)
	}

	sel, err := selector.New(o.Layout, prompter, presets).Select(ctx, action)
	if err != nil {
		return err
	}

	switch action {
	case selector.ActionCopyModule:
		return copyModule(ctx, o, sel)
	case selector.ActionCopyLessonSolutions:
		return copySolutions(ctx, o, sel)
	case selector.ActionPrintActivities:
		return printActivities(ctx, o, sel)
	default:
		return errors.Errorf("unknown action %q", action)
	}
}

// 🎛️ RunInteractive shows the action menu, then runs the chosen action
func RunInteractive(ctx context.Context, o *opts.RootOpts) error {
	prompter, err := o.GetPrompter()
	if err != nil {
		return errors.Errorf("creating prompter: %w", err)
	}

	action, err := selector.ChooseAction(ctx, prompter)
	if err != nil {
		return err
	}
	return Run(ctx, o, action, selector.Presets{})
}

func newOrchestrator(o *opts.RootOpts) (*operation.Orchestrator, error) {
	orch, err := operation.New(operation.Options{
		Layout:   o.Layout,
		DryRun:   o.DryRun,
		Reporter: o.Console,
	})
	if err != nil {
		return nil, errors.Errorf("creating orchestrator: %w", err)
	}
	return orch, nil
}

func copyModule(ctx context.Context, o *opts.RootOpts, sel *curriculum.Selection) error {
	orch, err := newOrchestrator(o)
	if err != nil {
		return err
	}

	o.Console.Header(fmt.Sprintf("copying module %s", sel.Module))

	result, err := orch.CopyModule(ctx, sel)
	if err != nil {
		return errors.Errorf("copying module: %w", err)
	}

	o.Console.LogNewline()
	o.Console.Summary(result.Summary)
	if o.DryRun {
		o.Console.Warningf("dry run, nothing was written to %s", result.Destination)
		return nil
	}
	o.Console.Successf("copied %s to %s", result.Module.Name, result.Destination)
	return nil
}

func copySolutions(ctx context.Context, o *opts.RootOpts, sel *curriculum.Selection) error {
	records, err := activity.ScanFile(ctx, sel.LessonPlan)
	if err != nil {
		return errors.Errorf("reading activities: %w", err)
	}

	orch, err := newOrchestrator(o)
	if err != nil {
		return err
	}

	o.Console.Header(fmt.Sprintf("copying solutions for %s %s (%d activities)", sel.Module, sel.Day, len(records)))
	if len(records) == 0 {
		o.Console.Infof("no student or everyone activities scheduled in %s", filepath.Base(sel.LessonPlan))
	}

	result, err := orch.CopySolutions(ctx, sel, records)
	if err != nil {
		return errors.Errorf("copying solutions: %w", err)
	}

	o.Console.LogNewline()
	o.Console.Summary(result.Summary)
	if o.DryRun {
		o.Console.Warningf("dry run, nothing was written to %s", result.Destination)
		return nil
	}
	o.Console.Successf("solutions copied to %s", result.Destination)
	return nil
}

// 🖨️ printActivities writes the labels to stdout; the title goes to the console
func printActivities(ctx context.Context, o *opts.RootOpts, sel *curriculum.Selection) error {
	records, err := activity.ScanFile(ctx, sel.LessonPlan)
	if err != nil {
		return errors.Errorf("reading activities: %w", err)
	}

	title, err := activity.Title(sel.LessonPlan)
	if err != nil {
		return err
	}
	if title != "" {
		o.Console.Header(title)
	}
	if len(records) == 0 {
		o.Console.Infof("no student or everyone activities scheduled in %s", filepath.Base(sel.LessonPlan))
	}

	return activity.Print(o.Stdout, records)
}
