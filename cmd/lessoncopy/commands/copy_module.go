package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/lessoncopy/cmd/lessoncopy/opts"
	"github.com/walteh/lessoncopy/pkg/selector"
)

// NewCopyModuleCmd creates the copy-module command
func NewCopyModuleCmd(o *opts.RootOpts) *cobra.Command {
	var presets selector.Presets

	cmd := &cobra.Command{
		Use:   "copy-module",
		Short: "Copy a module into the class repo with solutions stripped",
		Long: `Copy Module copies every folder and file of a curriculum module into the
class repo. It will:
1. Ask for the cohort and module (unless given as flags)
2. Find the curriculum module with the same numeric prefix
3. Copy it, leaving out solved, main and node_modules folders and dotenv files`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd.Context(), o, selector.ActionCopyModule, presets)
		},
	}

	cmd.Flags().StringVar(&presets.Cohort, "cohort", "", "cohort folder in the lesson plans")
	cmd.Flags().StringVar(&presets.Module, "module", "", "module folder in the cohort")

	return cmd
}
