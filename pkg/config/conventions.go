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

package config

import (
	"context"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

const (
	DefaultClassContentDir   = "01-Class-Content"
	DefaultAlgorithmsDir     = "03-Algorithms"
	DefaultAlgorithmsDay     = "03"
	DefaultCohortPattern     = `(?i)-time`
	DefaultLessonPlanPattern = `(?i)lesson[-_]plan|lessonplan`
)

// 📚 Conventions describes how the curriculum and class repositories are laid
// out. Every field has a default, so the conventions file is optional.
type Conventions struct {
	ClassContentDir   string   `json:"class_content_dir,omitempty" yaml:"class_content_dir,omitempty" hcl:"class_content_dir,optional"`
	AlgorithmsDir     string   `json:"algorithms_dir,omitempty" yaml:"algorithms_dir,omitempty" hcl:"algorithms_dir,optional"`
	AlgorithmsDay     string   `json:"algorithms_day,omitempty" yaml:"algorithms_day,omitempty" hcl:"algorithms_day,optional"`
	CohortPattern     string   `json:"cohort_pattern,omitempty" yaml:"cohort_pattern,omitempty" hcl:"cohort_pattern,optional"`
	LessonPlanPattern string   `json:"lesson_plan_pattern,omitempty" yaml:"lesson_plan_pattern,omitempty" hcl:"lesson_plan_pattern,optional"`
	Ignore            []string `json:"ignore,omitempty" yaml:"ignore,omitempty" hcl:"ignore,optional"`

	cohortRe     *regexp.Regexp
	lessonPlanRe *regexp.Regexp
}

// 🏭 DefaultConventions returns the conventions used when no file is given
func DefaultConventions() *Conventions {
	c := &Conventions{}
	if err := c.Validate(); err != nil {
		panic(err)
	}
	return c
}

// 🔍 Validate fills defaults and compiles the patterns
func (c *Conventions) Validate() error {
	if c.ClassContentDir == "" {
		c.ClassContentDir = DefaultClassContentDir
	}
	if c.AlgorithmsDir == "" {
		c.AlgorithmsDir = DefaultAlgorithmsDir
	}
	if c.AlgorithmsDay == "" {
		c.AlgorithmsDay = DefaultAlgorithmsDay
	}
	if c.CohortPattern == "" {
		c.CohortPattern = DefaultCohortPattern
	}
	if c.LessonPlanPattern == "" {
		c.LessonPlanPattern = DefaultLessonPlanPattern
	}

	if strings.ContainsAny(c.ClassContentDir, `/\`) {
		return errors.Errorf("class_content_dir must be a single directory name: %q", c.ClassContentDir)
	}
	if strings.ContainsAny(c.AlgorithmsDir, `/\`) {
		return errors.Errorf("algorithms_dir must be a single directory name: %q", c.AlgorithmsDir)
	}

	var err error
	if c.cohortRe, err = regexp.Compile(c.CohortPattern); err != nil {
		return errors.Errorf("compiling cohort_pattern: %w", err)
	}
	if c.lessonPlanRe, err = regexp.Compile(c.LessonPlanPattern); err != nil {
		return errors.Errorf("compiling lesson_plan_pattern: %w", err)
	}

	for _, pattern := range c.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid ignore pattern: %q", pattern)
		}
	}

	return nil
}

// CohortRegexp matches cohort-time folder names.
func (c *Conventions) CohortRegexp() *regexp.Regexp {
	return c.cohortRe
}

// LessonPlanRegexp matches lesson-plan file names inside a day folder.
func (c *Conventions) LessonPlanRegexp() *regexp.Regexp {
	return c.lessonPlanRe
}

// 🎯 LoadConventions loads the conventions file at path. When the file does
// not exist and required is false the defaults are returned.
func LoadConventions(ctx context.Context, path string, required bool) (*Conventions, error) {
	logger := zerolog.Ctx(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			logger.Debug().Str("path", path).Msg("no conventions file, using defaults")
			return DefaultConventions(), nil
		}
		return nil, errors.Errorf("reading conventions file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	conv, err := p.Parse(ctx, path, data)
	if err != nil {
		return nil, errors.Errorf("parsing conventions: %w", err)
	}

	if err := conv.Validate(); err != nil {
		return nil, errors.Errorf("validating conventions: %w", err)
	}

	logger.Debug().Str("path", path).Msg("loaded conventions file")

	return conv, nil
}
