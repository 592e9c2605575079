package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/lessoncopy/cmd/lessoncopy/opts"
	"github.com/walteh/lessoncopy/pkg/selector"
)

// NewPrintActivitiesCmd creates the print-activities command
func NewPrintActivitiesCmd(o *opts.RootOpts) *cobra.Command {
	var presets selector.Presets

	cmd := &cobra.Command{
		Use:   "print-activities",
		Short: "Print the activities scheduled in a lesson plan",
		Long: `Print Activities lists every student and everyone activity of a day's lesson
plan with its duration, one per line, ready to paste into slack. Only the list
is written to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd.Context(), o, selector.ActionPrintActivities, presets)
		},
	}

	addDayFlags(cmd, &presets)

	return cmd
}
