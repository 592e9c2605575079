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

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/lessoncopy/cmd/lessoncopy/opts"
	"gitlab.com/tozd/go/errors"
)

const lessonPlan = "# 13.1 Lesson Plan - Routing\n" +
	"\n" +
	"## 1. Instructor Demo: routes (5 min)\n" +
	"`01-Ins_Routes/README.md`\n" +
	"\n" +
	"## 2. Student Do: demo (10 min)\n" +
	"`01-Stu_Demo/README.md`\n"

// scripted answers prompts in order and fails on any extra prompt
type scripted struct {
	answers []string
	asked   []string
}

func (s *scripted) Select(_ context.Context, message string, _ []string) (string, error) {
	s.asked = append(s.asked, message)
	if len(s.answers) == 0 {
		return "", errors.New("unexpected prompt: " + message)
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

type roots struct {
	plans      string
	curriculum string
	class      string
}

// setupRoots builds the three repositories and points the environment at them
func setupRoots(t *testing.T) roots {
	t.Helper()
	tmp := t.TempDir()
	r := roots{
		plans:      filepath.Join(tmp, "plans"),
		curriculum: filepath.Join(tmp, "curriculum"),
		class:      filepath.Join(tmp, "class"),
	}

	writeFiles(t, r.plans, map[string]string{
		"2024-part-time/13-Week/01-Day/13.1-lesson-plan.md": lessonPlan,
		"2024-part-time/13-Week/02-Day/13.2-lesson-plan.md": "# 13.2 Lesson Plan - Review\n\nNo exercises today.\n",
	})
	writeFiles(t, filepath.Join(r.curriculum, "01-Class-Content", "13-Express"), map[string]string{
		"README.md":                                   "express",
		"01-Activities/01-Stu_Demo/README.md":         "demo",
		"01-Activities/01-Stu_Demo/Unsolved/index.js": "unsolved",
		"01-Activities/01-Stu_Demo/Solved/index.js":   "solved",
		"01-Activities/02-Stu_Other/Solved/other.js":  "other",
	})
	require.NoError(t, os.MkdirAll(r.class, 0755))

	t.Setenv("LESSON_PLANS_ROOT", r.plans)
	t.Setenv("CURRICULUM_ROOT", r.curriculum)
	t.Setenv("CLASS_REPO_ROOT", r.class)
	return r
}

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func listFiles(t *testing.T, root string) []string {
	t.Helper()
	var out []string
	require.NoError(t, filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	}))
	return out
}

type result struct {
	code   int
	stdout string
	stderr string
}

func execute(t *testing.T, p *scripted, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &opts.RootOpts{
		Stdout:   &stdout,
		Stderr:   &stderr,
		Prompter: p,
	})
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestRunMissingEnv(t *testing.T) {
	tests := []struct {
		name  string
		unset []string
		want  string
	}{
		{
			name:  "all_unset",
			unset: []string{"LESSON_PLANS_ROOT", "CURRICULUM_ROOT", "CLASS_REPO_ROOT"},
			want: "Environment variable 'LESSON_PLANS_ROOT' required!\n" +
				"Environment variable 'CURRICULUM_ROOT' required!\n" +
				"Environment variable 'CLASS_REPO_ROOT' required!\n",
		},
		{
			name:  "one_unset",
			unset: []string{"CURRICULUM_ROOT"},
			want:  "Environment variable 'CURRICULUM_ROOT' required!\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupRoots(t)
			for _, name := range tt.unset {
				t.Setenv(name, "")
			}

			p := &scripted{}
			res := execute(t, p)

			assert.Equal(t, 1, res.code)
			assert.Equal(t, tt.want, res.stderr)
			assert.Empty(t, res.stdout)
			assert.Empty(t, p.asked, "no prompt before the environment is valid")
		})
	}
}

func TestRunPrintActivities(t *testing.T) {
	setupRoots(t)

	res := execute(t, &scripted{}, "print-activities", "--cohort", "2024-part-time", "--module", "13-Week", "--day", "01-Day")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "\nActivity `01-Stu_Demo/README.md` (10 min)\n\n", res.stdout)
	assert.Contains(t, res.stderr, "13.1 Lesson Plan - Routing")
}

func TestRunPrintActivitiesNoneScheduled(t *testing.T) {
	setupRoots(t)

	res := execute(t, &scripted{}, "print-activities", "--cohort", "2024-part-time", "--module", "13-Week", "--day", "02-Day")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "\n\n", res.stdout)
	assert.Contains(t, res.stderr, "no student or everyone activities scheduled in 13.2-lesson-plan.md")
}

func TestRunInteractive(t *testing.T) {
	setupRoots(t)

	p := &scripted{answers: []string{"Print Activities", "2024-part-time", "13-Week", "01-Day"}}
	res := execute(t, p)

	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, []string{"Choose an option.", "choose a curriculum", "choose a module", "choose a lesson plan"}, p.asked)
	assert.Equal(t, "\nActivity `01-Stu_Demo/README.md` (10 min)\n\n", res.stdout)
}

func TestRunCopyModuleThenSolutions(t *testing.T) {
	r := setupRoots(t)
	day := []string{"--cohort", "2024-part-time", "--module", "13-Week", "--day", "01-Day"}

	res := execute(t, &scripted{}, append([]string{"copy-solutions"}, day...)...)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "Module '13-Express' has not been copied over to class repo. Run 'Copy Module - Strip solutions' first.")
	assert.Empty(t, listFiles(t, r.class), "nothing is written before the module is copied")

	res = execute(t, &scripted{}, "copy-module", "--cohort", "2024-part-time", "--module", "13-Week")
	require.Equal(t, 0, res.code, res.stderr)
	assert.ElementsMatch(t, []string{
		"13-Express/README.md",
		"13-Express/01-Activities/01-Stu_Demo/README.md",
		"13-Express/01-Activities/01-Stu_Demo/Unsolved/index.js",
	}, listFiles(t, r.class))

	res = execute(t, &scripted{}, append([]string{"copy-solutions"}, day...)...)
	require.Equal(t, 0, res.code, res.stderr)
	assert.ElementsMatch(t, []string{
		"13-Express/README.md",
		"13-Express/01-Activities/01-Stu_Demo/README.md",
		"13-Express/01-Activities/01-Stu_Demo/Unsolved/index.js",
		"13-Express/01-Activities/01-Stu_Demo/Solved/index.js",
	}, listFiles(t, r.class))
	assert.Empty(t, res.stdout)
}

func TestRunDryRun(t *testing.T) {
	r := setupRoots(t)

	res := execute(t, &scripted{}, "copy-module", "--dry-run", "--cohort", "2024-part-time", "--module", "13-Week")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Empty(t, listFiles(t, r.class))
	assert.Contains(t, res.stderr, "dry run")
}

func TestRunUnknownPreset(t *testing.T) {
	setupRoots(t)

	res := execute(t, &scripted{}, "copy-module", "--cohort", "2023-full-time")

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "2023-full-time")
	assert.Empty(t, res.stdout)
}

func TestRunMissingConventionsFile(t *testing.T) {
	setupRoots(t)

	res := execute(t, &scripted{}, "print-activities", "--config", filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "reading conventions file")
}

func TestRunVersion(t *testing.T) {
	t.Setenv("LESSON_PLANS_ROOT", "")

	res := execute(t, &scripted{}, "version")
	require.Equal(t, 0, res.code, res.stderr)
	assert.True(t, strings.HasPrefix(res.stdout, "lessoncopy "), res.stdout)

	res = execute(t, &scripted{}, "version", "--json")
	require.Equal(t, 0, res.code, res.stderr)
	var info VersionInfo
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &info))
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.Go)
}

func TestVersionInfo(t *testing.T) {
	tests := []struct {
		name string
		bi   *debug.BuildInfo
		want string
	}{
		{
			name: "tagged_release",
			bi: &debug.BuildInfo{
				GoVersion: "go1.23.5",
				Main:      debug.Module{Version: "v1.2.0"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "3f2a9c1d0b7e55aa"},
					{Key: "vcs.time", Value: "2025-01-02T03:04:05Z"},
					{Key: "vcs.modified", Value: "false"},
				},
			},
			want: "lessoncopy v1.2.0 (3f2a9c1d0b7e) 2025-01-02T03:04:05Z go1.23.5 " + runtime.GOOS + "/" + runtime.GOARCH,
		},
		{
			name: "local_dirty_build",
			bi: &debug.BuildInfo{
				GoVersion: "go1.23.5",
				Main:      debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abc123"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			want: "lessoncopy dev (abc123, dirty) go1.23.5 " + runtime.GOOS + "/" + runtime.GOARCH,
		},
		{
			name: "no_build_info",
			bi:   nil,
			want: "lessoncopy dev " + runtime.Version() + " " + runtime.GOOS + "/" + runtime.GOARCH,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, readVersionInfo(tt.bi).String())
		})
	}
}
