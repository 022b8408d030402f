package commands

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ledgerkit-dev/ledgerkit/internal/ledger"
	"github.com/ledgerkit-dev/ledgerkit/internal/retail"
)

func newRetailCommand(configPath *string) *cobra.Command {
	retailCmd := &cobra.Command{
		Use:   "retail",
		Short: "Break down retailer order exports by subcategory",
	}
	retailCmd.AddCommand(newRetailWalmartCommand(configPath))
	retailCmd.AddCommand(newRetailAmazonCommand(configPath))
	return retailCmd
}

func newRetailWalmartCommand(configPath *string) *cobra.Command {
	var reconcile bool

	cmd := &cobra.Command{
		Use:   "walmart <csv-file>",
		Short: "Summarize a Walmart order history export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading csv: %w", err)
			}

			items := retail.ParseWalmart(string(text))
			if len(items) == 0 {
				return fmt.Errorf("no Walmart orders found in %s, check the CSV format", args[0])
			}

			summary := retail.SummarizeWalmart(items)
			printSummary(cmd, summary)

			if !reconcile {
				return nil
			}

			svc, _, st, err := openService(*configPath)
			if err != nil {
				return err
			}
			defer st.Close()

			res, err := svc.ReconcileWalmart(items)
			if errors.Is(err, ledger.ErrNoRetailCharges) {
				return fmt.Errorf("no Walmart bank charges found, import bank CSVs first")
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reconciled %d bank charges → %s\n", res.Updated, res.Dominant)
			return nil
		},
	}

	cmd.Flags().BoolVar(&reconcile, "reconcile", false, "re-point matching bank charges at the dominant order category")
	return cmd
}

func newRetailAmazonCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "amazon <csv-file>",
		Short: "Summarize an Amazon order items export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading csv: %w", err)
			}

			items := retail.ParseAmazon(string(text))
			if len(items) == 0 {
				return fmt.Errorf("no Amazon items found in %s, check the CSV format", args[0])
			}

			printSummary(cmd, retail.SummarizeAmazon(items))
			return nil
		},
	}
}

func printSummary(cmd *cobra.Command, s retail.Summary) {
	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SUBCATEGORY\tCATEGORY\tITEMS\tTOTAL")
	for _, b := range s.Subcategories() {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", b.Subcategory, b.LedgerCategory, b.Count, b.Total.StringFixed(2))
	}
	w.Flush()

	fmt.Fprintf(out, "Spend %s", s.TotalSpend.StringFixed(2))
	if s.TotalReturns.IsPositive() {
		fmt.Fprintf(out, " · returns %s · net %s", s.TotalReturns.StringFixed(2), s.NetSpend.StringFixed(2))
	}
	fmt.Fprintln(out)

	for _, item := range s.ReturnItems {
		fmt.Fprintf(out, "  returned: %s (%s)\n", item.Name, item.Total.StringFixed(2))
	}
}
