package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerkit-dev/ledgerkit/internal/buildinfo"
	"github.com/ledgerkit-dev/ledgerkit/internal/config"
	"github.com/ledgerkit-dev/ledgerkit/internal/ledger"
	"github.com/ledgerkit-dev/ledgerkit/internal/logger"
	"github.com/ledgerkit-dev/ledgerkit/internal/store"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "ledgerkit",
		Short:   "Bank and retailer CSV ingestion with layered categorization",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "ledgerkit.yaml", "path to ledgerkit.yaml")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newImportCommand(&configPath))
	rootCmd.AddCommand(newStageCommand(&configPath))
	rootCmd.AddCommand(newEditCommand(&configPath))
	rootCmd.AddCommand(newListCommand(&configPath))
	rootCmd.AddCommand(newRetailCommand(&configPath))

	return rootCmd
}

// openService loads config, opens the database and builds the ledger
// service. The caller closes the returned store.
func openService(configPath string) (*ledger.Service, *config.Config, store.Store, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config (run init first?): %w", err)
	}

	log := logger.New(cfg.Logging.Level)

	st, err := store.Open(cfg.DatabasePath())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening database: %w", err)
	}

	svc, err := ledger.New(st, log)
	if err != nil {
		st.Close()
		return nil, nil, nil, err
	}
	return svc, cfg, st, nil
}
