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
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

const (
	EnvLessonPlansRoot = "LESSON_PLANS_ROOT"
	EnvCurriculumRoot  = "CURRICULUM_ROOT"
	EnvClassRepoRoot   = "CLASS_REPO_ROOT"
)

// 🌍 Env holds the three roots every command works against. It is built once
// at startup and handed to the components that need it.
type Env struct {
	LessonPlansRoot string `envconfig:"LESSON_PLANS_ROOT"`
	CurriculumRoot  string `envconfig:"CURRICULUM_ROOT"`
	ClassRepoRoot   string `envconfig:"CLASS_REPO_ROOT"`
}

// ❌ MissingEnvError lists every required variable that was not set
type MissingEnvError struct {
	Names []string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("missing required environment variables: %s", strings.Join(e.Names, ", "))
}

// Lines returns one user-facing line per missing variable.
func (e *MissingEnvError) Lines() []string {
	lines := make([]string, 0, len(e.Names))
	for _, name := range e.Names {
		lines = append(lines, fmt.Sprintf("Environment variable '%s' required!", name))
	}
	return lines
}

// 📥 LoadEnv reads the optional dotenv file and decodes the process
// environment into an Env. Variables already set in the process win over the
// dotenv file. A missing dotenv file is only an error when required is true.
func LoadEnv(ctx context.Context, envFile string, required bool) (*Env, error) {
	logger := zerolog.Ctx(ctx)

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) || required {
				return nil, errors.Errorf("loading env file %s: %w", envFile, err)
			}
			logger.Debug().Str("path", envFile).Msg("no env file found, using process environment")
		} else {
			logger.Debug().Str("path", envFile).Msg("loaded env file")
		}
	}

	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return nil, errors.Errorf("decoding environment: %w", err)
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}

	return &env, nil
}

// 🔍 Validate reports every unset root at once
func (e *Env) Validate() error {
	var missing []string
	for _, v := range []struct {
		name  string
		value string
	}{
		{EnvLessonPlansRoot, e.LessonPlansRoot},
		{EnvCurriculumRoot, e.CurriculumRoot},
		{EnvClassRepoRoot, e.ClassRepoRoot},
	} {
		if strings.TrimSpace(v.value) == "" {
			missing = append(missing, v.name)
		}
	}

	if len(missing) > 0 {
		return &MissingEnvError{Names: missing}
	}

	e.LessonPlansRoot = filepath.Clean(e.LessonPlansRoot)
	e.CurriculumRoot = filepath.Clean(e.CurriculumRoot)
	e.ClassRepoRoot = filepath.Clean(e.ClassRepoRoot)

	return nil
}
