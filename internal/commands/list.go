package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ledgerkit-dev/ledgerkit/internal/model"
)

func newListCommand(configPath *string) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, st, err := openService(*configPath)
			if err != nil {
				return err
			}
			defer st.Close()

			txns, err := svc.Transactions()
			if err != nil {
				return err
			}

			if month != "" {
				filtered := txns[:0]
				for _, t := range txns {
					if t.Month == month {
						filtered = append(filtered, t)
					}
				}
				txns = filtered
			}

			if len(txns) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No transactions.")
				return nil
			}
			printTransactions(cmd, txns)
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "filter to one month (YYYY-MM)")
	return cmd
}

func printTransactions(cmd *cobra.Command, txns []model.Transaction) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tAMOUNT\tCATEGORY\tDESCRIPTION\tID")
	for _, t := range txns {
		desc := t.Description
		if len(desc) > 40 {
			desc = desc[:40]
		}
		flags := ""
		if t.Excluded {
			flags = " (excluded)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s%s\t%s\t%s\n",
			t.Date.Format("2006-01-02"), t.Amount.StringFixed(2), t.Category, flags, desc, t.ID)
	}
	w.Flush()
}
