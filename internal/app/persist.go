package app

import (
	"context"
	"fmt"

	"github.com/abhisek/eform/internal/state"
)

// Load returns the latest saved state. Missing or unreadable data falls back
// to the default state; the failure is logged, never returned.
func Load(ctx context.Context, opts Options) *state.State {
	lg := opts.logger()
	if opts.Repo == nil {
		return state.Default()
	}

	snap, err := opts.Repo.Latest(ctx, opts.key())
	if err != nil {
		lg.Printf("load snapshot: %v", err)
		return state.Default()
	}
	if snap == nil {
		lg.Printf("no saved state under %q, starting with the demo form", opts.key())
		return state.Default()
	}

	st, err := state.LoadOrDefault(snap.Data)
	if err != nil {
		lg.Printf("load state (snapshot %d): %v", snap.ID, err)
	}
	return st
}

// Save writes st as a new snapshot and prunes old ones.
func Save(ctx context.Context, opts Options, st *state.State) error {
	if opts.Repo == nil {
		return nil
	}
	blob, err := state.Save(st)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := opts.Repo.Save(ctx, opts.key(), blob); err != nil {
		return err
	}
	if opts.Keep > 0 {
		if err := opts.Repo.Prune(ctx, opts.key(), opts.Keep); err != nil {
			return err
		}
	}
	opts.logger().Printf("saved %d forms, %d responses", len(st.Forms), len(st.Responses))
	return nil
}
