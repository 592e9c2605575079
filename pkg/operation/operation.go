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
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/rs/zerolog"
	"github.com/walteh/lessoncopy/pkg/copier"
	"github.com/walteh/lessoncopy/pkg/curriculum"
	"github.com/walteh/lessoncopy/pkg/selector"
	"github.com/walteh/lessoncopy/pkg/status"
	"gitlab.com/tozd/go/errors"
)

var (
	// stripped from every module copy: dependencies, solutions and the
	// "main" folders of numbered activities
	moduleExcludeDir = regexp.MustCompile(`(?i)node_modules|/solved|/[0-9].*/main`)
	// OS junk and dotenv files never leave the curriculum
	excludeFile = regexp.MustCompile(`(?i)(^|/)(\.ds_store|\.env(\..*)?)$`)

	activitiesDir       = regexp.MustCompile(`(?i)activities`)
	solutionsInclude    = regexp.MustCompile(`(?i)/solved|/main`)
	solutionsExcludeDir = regexp.MustCompile(`(?i)node_modules|unsolved`)
	algorithmSolved     = regexp.MustCompile(`(?i)/solved`)
)

var ErrModuleNotCopied = errors.Base("module has not been copied to the class repo")

// 🚧 ModuleNotCopiedError is returned by CopySolutions when the module folder
// is missing from the class repo. It matches ErrModuleNotCopied.
type ModuleNotCopiedError struct {
	Module      string
	Destination string
}

func (e *ModuleNotCopiedError) Error() string {
	return fmt.Sprintf("Module '%s' has not been copied over to class repo. Run '%s' first.",
		e.Module, selector.ActionCopyModule.Name())
}

func (e *ModuleNotCopiedError) Is(target error) bool {
	return target == ErrModuleNotCopied
}

// 🔧 Options configure an Orchestrator
type Options struct {
	// Layout resolves the repositories; required
	Layout *curriculum.Layout
	// DryRun reports what would be copied without writing
	DryRun bool
	// Reporter receives every copied or skipped node, in addition to the
	// summary kept for the Result
	Reporter status.Reporter
}

// 📊 Result describes a finished copy
type Result struct {
	Module      *curriculum.Module
	Destination string
	Summary     status.Summary
}

// 🎮 Orchestrator runs the module and solutions copies
type Orchestrator struct {
	layout   *curriculum.Layout
	dryRun   bool
	reporter status.Reporter
}

// 🏭 New creates an Orchestrator
func New(opts Options) (*Orchestrator, error) {
	if opts.Layout == nil {
		return nil, errors.Errorf("layout is required")
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = status.Discard
	}
	return &Orchestrator{
		layout:   opts.Layout,
		dryRun:   opts.DryRun,
		reporter: reporter,
	}, nil
}

// newCopier returns a copier whose entries are also counted by the tracker
func (o *Orchestrator) newCopier() (*copier.Copier, *status.Tracker) {
	tracker := status.NewTracker()
	return copier.New(copier.Options{
		DryRun:   o.dryRun,
		Reporter: status.Tee(tracker, o.reporter),
	}), tracker
}

func (o *Orchestrator) ignore() []string {
	return o.layout.Conventions().Ignore
}

// 📂 listDirs returns the names of the subdirectories of dir in name order
func listDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Errorf("listing %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

func logResult(ctx context.Context, action string, r *Result) {
	zerolog.Ctx(ctx).Info().
		Str("module", r.Module.Name).
		Str("destination", r.Destination).
		Int("new", r.Summary.New).
		Int("modified", r.Summary.Modified).
		Int("unchanged", r.Summary.Unchanged).
		Int("skipped", r.Summary.Skipped).
		Msg(action + " complete")
}

// rel is path relative to root for log fields, or path itself
func rel(root, path string) string {
	if r, err := filepath.Rel(root, path); err == nil {
		return filepath.ToSlash(r)
	}
	return path
}
