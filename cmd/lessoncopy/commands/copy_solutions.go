package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/lessoncopy/cmd/lessoncopy/opts"
	"github.com/walteh/lessoncopy/pkg/selector"
)

// NewCopySolutionsCmd creates the copy-solutions command
func NewCopySolutionsCmd(o *opts.RootOpts) *cobra.Command {
	var presets selector.Presets

	cmd := &cobra.Command{
		Use:   "copy-solutions",
		Short: "Copy the solutions of one day's activities into the class repo",
		Long: `Copy Lesson Solutions restores the solved and main folders of the activities
scheduled in a day's lesson plan. It will:
1. Ask for the cohort, module and day (unless given as flags)
2. Read the scheduled activities from the lesson plan
3. Copy their solutions into the module already in the class repo
4. On the algorithms day, also copy the solved algorithms

The module must have been copied with copy-module first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd.Context(), o, selector.ActionCopyLessonSolutions, presets)
		},
	}

	addDayFlags(cmd, &presets)

	return cmd
}

// addDayFlags adds the flags that preset a lesson plan
func addDayFlags(cmd *cobra.Command, presets *selector.Presets) {
	cmd.Flags().StringVar(&presets.Cohort, "cohort", "", "cohort folder in the lesson plans")
	cmd.Flags().StringVar(&presets.Module, "module", "", "module folder in the cohort")
	cmd.Flags().StringVar(&presets.Day, "day", "", "day folder in the module")
}
