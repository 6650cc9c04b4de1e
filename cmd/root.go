package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/abhisek/eform/internal/app"
	"github.com/abhisek/eform/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "eform",
	Short: "Terminal form builder",
	Long:  "eform builds forms from ten question kinds, previews them, and collects responses in a local database.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to database file (overrides EFORM_DB env var)")
	rootCmd.PersistentFlags().String("store", "", "Storage backend: sqlite or bolt (overrides EFORM_STORE env var)")
	rootCmd.PersistentFlags().String("log", "", "Path to debug log file (overrides EFORM_LOG env var)")
	rootCmd.PersistentFlags().Int("keep", 5, "Number of saved snapshots to retain")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveBackend returns the --store flag, then EFORM_STORE, then sqlite.
func resolveBackend(cmd *cobra.Command) string {
	if b, _ := cmd.Flags().GetString("store"); b != "" {
		return b
	}
	if b := os.Getenv("EFORM_STORE"); b != "" {
		return b
	}
	return store.BackendSQLite
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then EFORM_DB env var, then the default XDG path. The bolt backend keeps
// its default file next to the SQLite one.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	p, err := store.DefaultDBPath()
	if err != nil {
		return "", err
	}
	if os.Getenv("EFORM_DB") == "" && strings.EqualFold(resolveBackend(cmd), store.BackendBolt) {
		p = strings.TrimSuffix(p, ".db") + ".bolt"
	}
	return p, nil
}

// openBackend opens the configured store.
func openBackend(cmd *cobra.Command) (store.Backend, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	b, err := store.OpenBackend(resolveBackend(cmd), dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return b, nil
}

// newLogger returns a logger writing to --log or EFORM_LOG, or discarding
// output when neither is set. The returned closer is never nil.
func newLogger(cmd *cobra.Command) (*log.Logger, io.Closer, error) {
	p, _ := cmd.Flags().GetString("log")
	if p == "" {
		p = os.Getenv("EFORM_LOG")
	}
	if p == "" {
		return log.New(io.Discard, "", 0), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.New(f, "eform ", log.LstdFlags), f, nil
}

// appOptions opens the store and logger and bundles them for the app
// package. The returned cleanup closes both.
func appOptions(cmd *cobra.Command) (app.Options, func(), error) {
	b, err := openBackend(cmd)
	if err != nil {
		return app.Options{}, nil, err
	}
	lg, lc, err := newLogger(cmd)
	if err != nil {
		b.Close()
		return app.Options{}, nil, err
	}
	keep, _ := cmd.Flags().GetInt("keep")
	opts := app.Options{
		Repo:   b.SnapshotRepo(),
		Key:    store.DefaultKey,
		Keep:   keep,
		Logger: lg,
	}
	return opts, func() {
		lc.Close()
		b.Close()
	}, nil
}
