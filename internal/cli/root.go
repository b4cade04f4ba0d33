// Package cli implements the shiftctl command line tool.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/taxometer/backend/config"
	"github.com/taxometer/backend/internal/infra/dependency"
	"github.com/taxometer/backend/internal/infra/storage"
)

// Opener builds a loaded injector for one command run. The returned func releases it.
type Opener func(ctx context.Context) (*dependency.Injector, func() error, error)

// NewOpener returns the Opener used by the binary: it selects storage the same
// way the API server does and loads the shift collection.
func NewOpener(cfg *config.Config) Opener {
	return func(ctx context.Context) (*dependency.Injector, func() error, error) {
		selection, err := storage.Select(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open storage: %w", err)
		}

		injector := dependency.NewInjector(cfg, dependency.Storage{
			Store:       selection.Store,
			Backend:     string(selection.Backend),
			HealthCheck: selection.HealthCheck,
		}, nil)
		injector.Store.Load(ctx)

		return injector, selection.Close, nil
	}
}

// NewRootCommand creates the shiftctl command tree.
func NewRootCommand(open Opener) *cobra.Command {
	root := &cobra.Command{
		Use:           "shiftctl",
		Short:         "Inspect taxi shift earnings from the command line",
		Long:          "shiftctl reads the shift ledger from the configured storage backend and prints period totals, chart series and shift lists.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSummaryCommand(open),
		newChartCommand(open),
		newListCommand(open),
		newTokenCommand(open),
	)

	return root
}

// Execute runs the command tree and returns the first error.
func Execute(ctx context.Context, open Opener, args []string, out io.Writer) error {
	root := NewRootCommand(open)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(out)
	return root.ExecuteContext(ctx)
}

// withInjector opens the injector for the duration of fn.
func withInjector(cmd *cobra.Command, open Opener, fn func(*dependency.Injector) error) (err error) {
	injector, release, err := open(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		if release == nil {
			return
		}
		if closeErr := release(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close storage: %w", closeErr)
		}
	}()
	return fn(injector)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
