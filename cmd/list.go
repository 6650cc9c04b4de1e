package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/abhisek/eform/internal/app"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved forms",
	RunE: func(cmd *cobra.Command, args []string) error {
		history, _ := cmd.Flags().GetBool("history")

		opts, cleanup, err := appOptions(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		w := cmd.OutOrStdout()
		if history {
			snaps, err := opts.Repo.List(cmd.Context(), opts.Key)
			if err != nil {
				return fmt.Errorf("list snapshots: %w", err)
			}
			if len(snaps) == 0 {
				fmt.Fprintln(w, "No snapshots found.")
				return nil
			}
			fmt.Fprintf(w, "%-6s  %-19s  %s\n", "ID", "Saved", "Bytes")
			fmt.Fprintln(w, strings.Repeat("─", 40))
			for _, s := range snaps {
				fmt.Fprintf(w, "%-6d  %-19s  %d\n", s.ID, s.Timestamp.Local().Format("2006-01-02 15:04:05"), len(s.Data))
			}
			return nil
		}

		st := app.Load(cmd.Context(), opts)
		if len(st.Forms) == 0 {
			fmt.Fprintln(w, "No forms found.")
			return nil
		}

		fmt.Fprintf(w, "%-36s  %-30s  %-9s  %s\n", "ID", "Title", "Questions", "Responses")
		fmt.Fprintln(w, strings.Repeat("─", 92))
		for _, f := range st.Forms {
			fmt.Fprintf(w, "%-36s  %s  %-9d  %d\n", f.ID, column(f.DisplayTitle(), 30), len(f.Questions), len(st.ResponsesFor(f.ID)))
		}
		return nil
	},
}

// column fits s into exactly width terminal cells, cutting on a character
// boundary and padding with spaces.
func column(s string, width int) string {
	s = ansi.Truncate(s, width, "…")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func init() {
	listCmd.Flags().Bool("history", false, "List saved snapshots instead of forms")
}
