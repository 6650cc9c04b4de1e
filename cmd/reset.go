package cmd

import (
	"fmt"

	"github.com/abhisek/eform/internal/app"
	"github.com/abhisek/eform/internal/state"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace the saved forms with the demo form",
	Long: "Replace the saved forms and responses with the demo form, or with " +
		"nothing when --empty is given. The previous state stays in the " +
		"snapshot history until pruned.",
	RunE: func(cmd *cobra.Command, args []string) error {
		empty, _ := cmd.Flags().GetBool("empty")

		opts, cleanup, err := appOptions(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		st := state.Default()
		if empty {
			st = state.New()
		}
		if err := app.Save(cmd.Context(), opts, st); err != nil {
			return fmt.Errorf("save: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "State reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("empty", false, "Start with no forms")
}
