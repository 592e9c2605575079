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

package curriculum

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/lessoncopy/pkg/config"
	"gitlab.com/tozd/go/errors"
)

const prefixLen = 3

var (
	ErrModuleNotFound     = errors.Base("module not found in curriculum")
	ErrLessonPlanNotFound = errors.Base("unable to find lesson plan")
	ErrNotFound           = errors.Base("no such entry")
)

// 🔢 Prefix returns the first three characters of name ("13-"), or all of
// it when it is shorter.
func Prefix(name string) string {
	runes := []rune(name)
	if len(runes) < prefixLen {
		return name
	}
	return string(runes[:prefixLen])
}

// 🎯 Selection points a run at a cohort, module and (optionally) day
type Selection struct {
	Cohort string
	Module string
	// Day is empty for actions that work on a whole module
	Day string
	// LessonPlan is the lesson-plan file, or the module directory when Day is empty
	LessonPlan string
}

// 📦 Module is a module directory resolved in the curriculum
type Module struct {
	Name string // directory name, e.g. "13-Express-Routing"
	Path string // absolute path below the class content directory
}

// 🗺️ Layout resolves folders in the lesson plans, curriculum and class repos
type Layout struct {
	env  *config.Env
	conv *config.Conventions
}

// 🏭 NewLayout creates a Layout. A nil conv means the default conventions.
func NewLayout(env *config.Env, conv *config.Conventions) *Layout {
	if conv == nil {
		conv = config.DefaultConventions()
	}
	return &Layout{env: env, conv: conv}
}

func (l *Layout) Env() *config.Env                  { return l.env }
func (l *Layout) Conventions() *config.Conventions { return l.conv }

// ClassContentRoot is the curriculum folder modules are resolved in.
func (l *Layout) ClassContentRoot() string {
	return filepath.Join(l.env.CurriculumRoot, l.conv.ClassContentDir)
}

// ClassModuleDir is where m lives in the class repo.
func (l *Layout) ClassModuleDir(m *Module) string {
	return filepath.Join(l.env.ClassRepoRoot, m.Name)
}

// 🔍 ResolveModule finds the curriculum module sharing the prefix of the
// selected lesson-plan module. The first match in name order wins.
func (l *Layout) ResolveModule(ctx context.Context, selected string) (*Module, error) {
	root := l.ClassContentRoot()
	names, err := listDirs(root)
	if err != nil {
		return nil, errors.Errorf("resolving module %q: %w", selected, err)
	}

	want := Prefix(selected)
	for _, name := range names {
		if Prefix(name) == want {
			zerolog.Ctx(ctx).Debug().Str("selected", selected).Str("found", name).Msg("resolved curriculum module")
			return &Module{Name: name, Path: filepath.Join(root, name)}, nil
		}
	}

	return nil, errors.Errorf("%w: nothing in %s starts with %q", ErrModuleNotFound, root, want)
}

// 📚 Cohorts lists the cohort folders of the lesson plans, newest first.
func (l *Layout) Cohorts() ([]string, error) {
	names, err := listDirs(l.env.LessonPlansRoot)
	if err != nil {
		return nil, errors.Errorf("listing cohorts: %w", err)
	}

	re := l.conv.CohortRegexp()
	cohorts := make([]string, 0, len(names))
	for _, name := range names {
		if re.MatchString(name) {
			cohorts = append(cohorts, name)
		}
	}
	slices.Reverse(cohorts)
	return cohorts, nil
}

// Modules lists the module folders of a cohort.
func (l *Layout) Modules(cohort string) ([]string, error) {
	names, err := listDirs(filepath.Join(l.env.LessonPlansRoot, cohort))
	if err != nil {
		return nil, errors.Errorf("listing modules of %s: %w", cohort, err)
	}
	return names, nil
}

// Days lists the day folders of a module.
func (l *Layout) Days(cohort, module string) ([]string, error) {
	names, err := listDirs(l.ModuleDir(cohort, module))
	if err != nil {
		return nil, errors.Errorf("listing days of %s: %w", module, err)
	}
	return names, nil
}

// ModuleDir is the lesson-plans folder of a module.
func (l *Layout) ModuleDir(cohort, module string) string {
	return filepath.Join(l.env.LessonPlansRoot, cohort, module)
}

// 📄 LessonPlan returns the first file of the day folder whose name matches
// the lesson plan pattern.
func (l *Layout) LessonPlan(cohort, module, day string) (string, error) {
	dir := filepath.Join(l.ModuleDir(cohort, module), day)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", errors.Errorf("listing %s: %w", dir, err)
	}

	re := l.conv.LessonPlanRegexp()
	for _, e := range entries {
		if !e.IsDir() && re.MatchString(e.Name()) {
			return filepath.Join(dir, e.Name()), nil
		}
	}
	return "", errors.Errorf("%w in %s", ErrLessonPlanNotFound, dir)
}

// IsAlgorithmsDay reports whether the day folder is the one whose algorithm
// solutions are restored along with the activities.
func (l *Layout) IsAlgorithmsDay(day string) bool {
	return day != "" && strings.HasPrefix(day, l.conv.AlgorithmsDay)
}

// 📂 listDirs returns the visible subdirectories of dir in name order
func listDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Errorf("listing %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// 🔎 Lookup returns an error wrapping ErrNotFound when name is not in names
func Lookup(kind, name string, names []string) error {
	if slices.Contains(names, name) {
		return nil
	}
	return errors.Errorf("%w: %s %q", ErrNotFound, kind, name)
}
