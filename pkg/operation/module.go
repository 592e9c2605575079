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
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/lessoncopy/pkg/copier"
	"github.com/walteh/lessoncopy/pkg/curriculum"
	"gitlab.com/tozd/go/errors"
)

// 📦 CopyModule copies every entry of the selected module from the
// curriculum into the class repo with solutions stripped. Files already in
// the class repo are overwritten; nothing is deleted.
func (o *Orchestrator) CopyModule(ctx context.Context, sel *curriculum.Selection) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	mod, err := o.layout.ResolveModule(ctx, sel.Module)
	if err != nil {
		return nil, errors.Errorf("resolving module: %w", err)
	}

	entries, err := os.ReadDir(mod.Path)
	if err != nil {
		return nil, errors.Errorf("listing module %s: %w", mod.Name, err)
	}

	dest := o.layout.ClassModuleDir(mod)
	filters := copier.Filters{
		ExcludeDir:  moduleExcludeDir,
		ExcludeFile: excludeFile,
		Ignore:      o.ignore(),
		Root:        mod.Path,
	}

	logger.Debug().Str("module", mod.Name).Str("destination", dest).Bool("dry_run", o.dryRun).Msg("copying module")

	c, tracker := o.newCopier()
	for _, e := range entries {
		src := filepath.Join(mod.Path, e.Name())
		if err := c.CopyTree(ctx, src, filepath.Join(dest, e.Name()), filters); err != nil {
			return nil, errors.Errorf("copying %s: %w", e.Name(), err)
		}
	}

	result := &Result{Module: mod, Destination: dest, Summary: tracker.Summary()}
	logResult(ctx, "module copy", result)
	return result, nil
}
