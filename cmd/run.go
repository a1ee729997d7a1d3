package cmd

import (
	"context"
	"fmt"

	"github.com/camposb/preu/internal/app"
	"github.com/camposb/preu/internal/mastery"
	"github.com/camposb/preu/internal/practice"
	"github.com/camposb/preu/internal/review"
	"github.com/camposb/preu/internal/state"
	"github.com/camposb/preu/internal/store"
	"github.com/spf13/cobra"
)

// openServices opens the store and wires the domain services on top of
// the loaded learner state. The caller owns the returned store.
func openServices(cmd *cobra.Command) (*store.Store, app.Options, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, app.Options{}, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, app.Options{}, fmt.Errorf("open store: %w", err)
	}

	manager := state.NewManager(st.SnapshotRepo(), st.NextSequence)
	if err := manager.Load(context.Background()); err != nil {
		st.Close()
		return nil, app.Options{}, fmt.Errorf("load state: %w", err)
	}

	tracker := mastery.NewTracker(manager)
	sched := review.NewScheduler(manager)
	grader := practice.NewGrader(manager, tracker, sched, st.EventRepo())

	opts := app.Options{
		State:   manager,
		Tracker: tracker,
		Sched:   sched,
		Grader:  grader,
		Events:  st.EventRepo(),
	}
	return st, opts, nil
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, opts, err := openServices(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(opts)
}
