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
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/lessoncopy/cmd/lessoncopy/commands"
	"github.com/walteh/lessoncopy/cmd/lessoncopy/opts"
	"github.com/walteh/lessoncopy/pkg/config"
	"github.com/walteh/lessoncopy/pkg/curriculum"
	"github.com/walteh/lessoncopy/pkg/log"
	"github.com/walteh/lessoncopy/pkg/selector"
	"gitlab.com/tozd/go/errors"
)

// newRootCmd builds the command tree around o
func newRootCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lessoncopy",
		Short: "Copy lesson plans and their solutions into a class repo",
		Long: `lessoncopy moves curriculum content into a cohort's class repo.

Run it without a command to pick an action from a menu, or name the action
and pass the cohort, module and day as flags to skip the prompts.

The roots are read from LESSON_PLANS_ROOT, CURRICULUM_ROOT and
CLASS_REPO_ROOT, or from the env file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, o)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunInteractive(cmd.Context(), o)
		},
	}

	addRootFlags(cmd, o)

	cmd.AddCommand(
		commands.NewCopyModuleCmd(o),
		commands.NewCopySolutionsCmd(o),
		commands.NewPrintActivitiesCmd(o),
		newVersionCmd(o),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", ".lessoncopy.yaml", "conventions file path (yaml, hcl or json)")
	cmd.PersistentFlags().StringVar(&o.EnvFile, "env-file", ".env", "dotenv file to load before reading the environment")
	cmd.PersistentFlags().StringVar(&o.UI, "ui", string(selector.UIPterm), "prompt style: pterm or tui")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false, "also list unchanged and skipped files")
	cmd.PersistentFlags().BoolVar(&o.DryRun, "dry-run", false, "report what would be copied without writing")
}

// setup loads the environment and conventions and builds the shared
// dependencies. The environment is checked before anything is shown.
func setup(cmd *cobra.Command, o *opts.RootOpts) error {
	ctx := setupLogging(cmd, o)

	env, err := config.LoadEnv(ctx, o.EnvFile, cmd.Flags().Changed("env-file"))
	if err != nil {
		return err
	}

	conv, err := config.LoadConventions(ctx, o.ConfigFile, cmd.Flags().Changed("config"))
	if err != nil {
		return errors.Errorf("loading conventions: %w", err)
	}

	o.Conventions = conv
	o.Layout = curriculum.NewLayout(env, conv)
	o.Console = newConsole(ctx, o)

	zerolog.Ctx(ctx).Debug().
		Str("lesson_plans", env.LessonPlansRoot).
		Str("curriculum", env.CurriculumRoot).
		Str("class_repo", env.ClassRepoRoot).
		Msg("environment loaded")

	return nil
}

// newConsole prints class repo paths relative to its root
func newConsole(ctx context.Context, o *opts.RootOpts) *log.Logger {
	return log.New(ctx, o.Stderr, log.Options{
		Base:    o.Layout.Env().ClassRepoRoot,
		Verbose: o.Verbose,
	})
}

// setupLogging raises the context logger to debug level when asked to
func setupLogging(cmd *cobra.Command, o *opts.RootOpts) context.Context {
	ctx := cmd.Context()
	if !o.Debug {
		return ctx
	}
	logger := zerolog.Ctx(ctx).Level(zerolog.DebugLevel)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)
	return ctx
}
