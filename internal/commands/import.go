package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ledgerkit-dev/ledgerkit/internal/auditlog"
	"github.com/ledgerkit-dev/ledgerkit/internal/ledger"
)

func newImportCommand(configPath *string) *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "import <csv-file>",
		Short: "Import a bank CSV into history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, st, err := openService(*configPath)
			if err != nil {
				return err
			}
			defer st.Close()

			text, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading csv: %w", err)
			}

			res, err := svc.Import(string(text), account)
			if errors.Is(err, ledger.ErrNoTransactions) {
				return fmt.Errorf("no transactions found in %s, check the CSV format", args[0])
			}
			if err != nil {
				return err
			}

			if err := auditlog.Append(cfg.Data.Dir, []auditlog.Entry{{
				Timestamp:    time.Now(),
				Account:      account,
				Bank:         res.BankDetected,
				Added:        res.Added,
				DupesSkipped: res.DupesSkipped,
				RuleHits:     res.RuleHits,
				RowErrors:    len(res.Errors),
			}}); err != nil {
				return fmt.Errorf("writing import log: %w", err)
			}

			printImportResult(cmd, res)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account label for imported transactions (required)")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

func printImportResult(cmd *cobra.Command, res ledger.ImportResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s · %d added", res.BankDetected, res.Added)
	if res.DupesSkipped > 0 {
		fmt.Fprintf(out, " · %d dupes skipped", res.DupesSkipped)
	}
	if res.RuleHits > 0 {
		fmt.Fprintf(out, " · %d auto-categorized", res.RuleHits)
	}
	if len(res.Errors) > 0 {
		fmt.Fprintf(out, " · %d rows skipped", len(res.Errors))
	}
	fmt.Fprintln(out)
	for _, e := range res.Errors {
		fmt.Fprintf(out, "  %s\n", e)
	}
}
