package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/wealth/internal/cli"
	"github.com/theirongolddev/wealth/internal/model"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show transaction history",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	client, sess, err := authClient(cfg)
	if err != nil {
		return err
	}

	var txs []model.Transaction
	if cfg.General.Offline {
		snap := openSnapshot()
		if snap == nil {
			return fmt.Errorf("offline mode requested but no snapshot is available")
		}
		defer snap.Close()
		if txs, err = snap.LoadTransactions(sess.Profile.CustomerID); err != nil {
			return err
		}
	} else {
		ctx, cancel := reqContext()
		defer cancel()
		if txs, err = client.TransactionHistory(ctx, sess.Profile.CustomerID); err != nil {
			return err
		}
		if snap := openSnapshot(); snap != nil {
			_ = snap.SaveTransactions(sess.Profile.CustomerID, txs)
			_ = snap.Close()
		}
	}

	if len(txs) == 0 {
		fmt.Println("  No transactions yet.")
		return nil
	}

	rows := make([][]string, len(txs))
	for i, tx := range txs {
		rows[i] = []string{
			cli.FormatDate(tx.Date),
			tx.Type,
			tx.ProductName,
			cli.FormatRupiah(tx.Amount),
			cli.FormatUnits(tx.Units),
			string(tx.Status),
		}
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("HISTORY"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Type", "Product", "Amount", "Units", "Status"},
		Rows:    rows,
	}))
	return nil
}
