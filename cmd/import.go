package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhisek/eform/internal/app"
	"github.com/abhisek/eform/internal/state"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the saved state with a JSON or YAML export",
	Long: "Replace the saved state with a JSON or YAML export. Use - to read " +
		"from stdin. The previous state stays in the snapshot history.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		data, err := readInput(cmd, args[0])
		if err != nil {
			return err
		}
		if format == "" {
			format = formatFromPath(args[0])
		}
		st, err := decodeState(data, format)
		if err != nil {
			return err
		}

		opts, cleanup, err := appOptions(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := app.Save(cmd.Context(), opts, st); err != nil {
			return fmt.Errorf("save: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d forms and %d responses.\n", len(st.Forms), len(st.Responses))
		return nil
	},
}

func init() {
	importCmd.Flags().StringP("format", "f", "", "Input format: json or yaml (default from file extension)")
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	}
	return "json"
}

func decodeState(data []byte, format string) (*state.State, error) {
	switch strings.ToLower(format) {
	case "json":
		st, err := state.Load(data)
		if err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return st, nil
	case "yaml", "yml":
		st, err := state.ImportYAML(data)
		if err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		return st, nil
	}
	return nil, fmt.Errorf("unknown format %q (want json or yaml)", format)
}
