package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ledgerkit-dev/ledgerkit/internal/ledger"
)

func newStageCommand(configPath *string) *cobra.Command {
	stageCmd := &cobra.Command{
		Use:   "stage",
		Short: "Stage a new month's CSV before committing it",
	}
	stageCmd.AddCommand(newStageAddCommand(configPath))
	stageCmd.AddCommand(newStageShowCommand(configPath))
	stageCmd.AddCommand(newStageMergeCommand(configPath))
	return stageCmd
}

func newStageAddCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "add <csv-file>",
		Short: "Parse a CSV into the staging area",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, st, err := openService(*configPath)
			if err != nil {
				return err
			}
			defer st.Close()

			text, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading csv: %w", err)
			}

			res, err := svc.StageMonth(string(text))
			if errors.Is(err, ledger.ErrNoTransactions) {
				return fmt.Errorf("no transactions found in %s, check the CSV format", args[0])
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s · %d transactions staged\n", res.BankDetected, res.Added)
			return nil
		},
	}
}

func newStageShowCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "List staged transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, st, err := openService(*configPath)
			if err != nil {
				return err
			}
			defer st.Close()

			staged, err := svc.Staged()
			if err != nil {
				return err
			}
			if len(staged) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing staged.")
				return nil
			}
			printTransactions(cmd, staged)
			return nil
		},
	}
}

func newStageMergeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "merge",
		Short: "Commit the staged batch into history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, st, err := openService(*configPath)
			if err != nil {
				return err
			}
			defer st.Close()

			added, skipped, err := svc.MergeStaged()
			if errors.Is(err, ledger.ErrNothingStaged) {
				return fmt.Errorf("nothing staged, run stage add first")
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d added", added)
			if skipped > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), " · %d dupes skipped", skipped)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}
