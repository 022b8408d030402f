package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerkit-dev/ledgerkit/internal/ledger"
)

func newEditCommand(configPath *string) *cobra.Command {
	var (
		category   string
		note       string
		excluded   bool
		applyToAll bool
	)

	cmd := &cobra.Command{
		Use:   "edit <transaction-id>",
		Short: "Reassign a transaction's category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, st, err := openService(*configPath)
			if err != nil {
				return err
			}
			defer st.Close()

			id := args[0]
			key, others, err := svc.MerchantMatches(id)
			if errors.Is(err, ledger.ErrNotFound) {
				return fmt.Errorf("transaction %s not found", id)
			}
			if err != nil {
				return err
			}

			affected, err := svc.ApplyEdit(ledger.Edit{
				ID:         id,
				Category:   category,
				Note:       note,
				Excluded:   excluded,
				ApplyToAll: applyToAll,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if applyToAll && key != "" {
				fmt.Fprintf(out, "Updated %d transactions · rule saved for %q\n", affected, key)
			} else {
				fmt.Fprintln(out, "Transaction updated")
				if others > 0 {
					fmt.Fprintf(out, "%d more transactions share merchant %q, rerun with --apply-to-all to update them\n", others, key)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "new category id (required)")
	_ = cmd.MarkFlagRequired("category")
	cmd.Flags().StringVar(&note, "note", "", "note on the edited transaction")
	cmd.Flags().BoolVar(&excluded, "excluded", false, "exclude from budget totals")
	cmd.Flags().BoolVar(&applyToAll, "apply-to-all", false, "reassign every transaction with this merchant key and save a rule")

	return cmd
}
