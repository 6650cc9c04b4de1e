package cmd

import (
	"errors"
	"os"

	"github.com/abhisek/eform/internal/app"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var errNoTerminal = errors.New("eform needs an interactive terminal; use 'eform export' or 'eform list' from scripts")

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// runApp opens the store, loads the saved state and launches the TUI.
func runApp(cmd *cobra.Command) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errNoTerminal
	}

	opts, cleanup, err := appOptions(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	return app.Run(cmd.Context(), opts)
}
