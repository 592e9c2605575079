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
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/lessoncopy/pkg/activity"
	"github.com/walteh/lessoncopy/pkg/copier"
	"github.com/walteh/lessoncopy/pkg/curriculum"
	"gitlab.com/tozd/go/errors"
)

// 🔑 CopySolutions restores the solved and main folders of the activities
// scheduled in the lesson plan. On the algorithms day the solved algorithm
// folders are restored too.
//
// The module must already be in the class repo; when it is not, a
// *ModuleNotCopiedError is returned and nothing is written.
func (o *Orchestrator) CopySolutions(ctx context.Context, sel *curriculum.Selection, records []activity.Record) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	mod, err := o.layout.ResolveModule(ctx, sel.Module)
	if err != nil {
		return nil, errors.Errorf("resolving module: %w", err)
	}

	dest := o.layout.ClassModuleDir(mod)
	info, err := os.Stat(dest)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Errorf("checking %s: %w", dest, err)
	}
	if err != nil || !info.IsDir() {
		return nil, errors.WithStack(&ModuleNotCopiedError{Module: mod.Name, Destination: dest})
	}

	prefixes := activity.Prefixes(records)
	logger.Debug().Str("module", mod.Name).Int("activities", len(records)).Int("prefixes", len(prefixes)).Msg("copying solutions")

	c, tracker := o.newCopier()

	if err := o.copyActivitySolutions(ctx, c, mod, dest, prefixes); err != nil {
		return nil, err
	}

	if o.layout.IsAlgorithmsDay(sel.Day) {
		if err := o.copyAlgorithmSolutions(ctx, c, mod, dest); err != nil {
			return nil, err
		}
	}

	result := &Result{Module: mod, Destination: dest, Summary: tracker.Summary()}
	logResult(ctx, "solutions copy", result)
	return result, nil
}

// copyActivitySolutions walks <module>/<category>/<activity>/<inner> and
// copies the inner folders of scheduled activities
func (o *Orchestrator) copyActivitySolutions(ctx context.Context, c *copier.Copier, mod *curriculum.Module, dest string, prefixes map[string]bool) error {
	logger := zerolog.Ctx(ctx)
	filters := copier.Filters{
		Include:     solutionsInclude,
		ExcludeDir:  solutionsExcludeDir,
		ExcludeFile: excludeFile,
		Ignore:      o.ignore(),
		Root:        mod.Path,
	}

	categories, err := listDirs(mod.Path)
	if err != nil {
		return errors.Errorf("listing module %s: %w", mod.Name, err)
	}

	for _, category := range categories {
		categoryPath := filepath.Join(mod.Path, category)
		activities, err := listDirs(categoryPath)
		if err != nil {
			return err
		}

		for _, act := range activities {
			actPath := filepath.Join(categoryPath, act)
			if !activitiesDir.MatchString(filepath.ToSlash(actPath)) || !prefixes[curriculum.Prefix(act)] {
				continue
			}

			inner, err := listDirs(actPath)
			if err != nil {
				return err
			}

			logger.Debug().Str("activity", rel(mod.Path, actPath)).Msg("restoring activity solutions")
			for _, name := range inner {
				src := filepath.Join(actPath, name)
				if err := c.CopyTree(ctx, src, filepath.Join(dest, category, act, name), filters); err != nil {
					return errors.Errorf("copying solutions of %s: %w", act, err)
				}
			}
		}
	}
	return nil
}

// copyAlgorithmSolutions copies <module>/<algorithms>/<topic>/<solved...> to
// <class module>/<topic>/<solved...>
func (o *Orchestrator) copyAlgorithmSolutions(ctx context.Context, c *copier.Copier, mod *curriculum.Module, dest string) error {
	logger := zerolog.Ctx(ctx)
	algoDir := o.layout.Conventions().AlgorithmsDir
	algoSrc := filepath.Join(mod.Path, algoDir)

	info, err := os.Stat(algoSrc)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.IsDir()) {
		logger.Debug().Str("path", algoSrc).Msg("module has no algorithms folder")
		return nil
	}
	if err != nil {
		return errors.Errorf("checking %s: %w", algoSrc, err)
	}

	topics, err := listDirs(algoSrc)
	if err != nil {
		return err
	}

	filters := copier.Filters{Ignore: o.ignore(), Root: mod.Path}
	for _, topic := range topics {
		topicPath := filepath.Join(algoSrc, topic)
		entries, err := os.ReadDir(topicPath)
		if err != nil {
			return errors.Errorf("listing %s: %w", topicPath, err)
		}

		for _, e := range entries {
			src := filepath.Join(topicPath, e.Name())
			if !algorithmSolved.MatchString(filepath.ToSlash(src)) {
				continue
			}
			if err := c.CopyTree(ctx, src, filepath.Join(dest, topic, e.Name()), filters); err != nil {
				return errors.Errorf("copying algorithm %s: %w", topic, err)
			}
		}
	}
	return nil
}
