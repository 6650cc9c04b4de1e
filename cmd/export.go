package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/eform/internal/app"
	"github.com/abhisek/eform/internal/state"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the saved forms and responses as JSON or YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("output")

		opts, cleanup, err := appOptions(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		st := app.Load(cmd.Context(), opts)
		data, err := encodeState(st, format)
		if err != nil {
			return err
		}

		if out == "" || out == "-" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d forms to %s\n", len(st.Forms), out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("format", "f", "json", "Output format: json or yaml")
	exportCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
}

func encodeState(st *state.State, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "json":
		data, err := state.Save(st)
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(data, '\n'), nil
	case "yaml", "yml":
		data, err := state.ExportYAML(st)
		if err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("unknown format %q (want json or yaml)", format)
}
