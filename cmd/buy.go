package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/wealth/internal/cli"
	"github.com/theirongolddev/wealth/internal/gateway"
)

var (
	flagBuyProduct string
	flagBuyGoal    string
	flagBuyAmount  float64
)

var buyCmd = &cobra.Command{
	Use:   "buy",
	Short: "Place a buy order against a goal",
	RunE:  runBuy,
}

func init() {
	buyCmd.Flags().StringVar(&flagBuyProduct, "product", "", "Product ID (from `wealth products`)")
	buyCmd.Flags().StringVar(&flagBuyGoal, "goal", "", "Goal ID the order funds")
	buyCmd.Flags().Float64Var(&flagBuyAmount, "amount", 0, "Order amount in rupiah")
	rootCmd.AddCommand(buyCmd)
}

func runBuy(_ *cobra.Command, _ []string) error {
	if flagBuyProduct == "" || flagBuyGoal == "" || flagBuyAmount <= 0 {
		return fmt.Errorf("buy needs --product, --goal, and a positive --amount")
	}

	cfg := loadConfig()
	client, sess, err := authClient(cfg)
	if err != nil {
		return err
	}

	// Show what the amount buys at the current NAV before committing.
	ctx, cancel := reqContext()
	products, err := client.ProductsByRisk(ctx, sess.Profile.RiskProfile)
	cancel()
	if err != nil {
		return err
	}
	amount := decimal.NewFromFloat(flagBuyAmount)
	confirmLabel := fmt.Sprintf("Buy %s of product %s?", cli.FormatRupiah(amount), flagBuyProduct)
	for _, p := range products {
		if p.ID == flagBuyProduct {
			confirmLabel = fmt.Sprintf("Buy %s of %s (~%s units at NAV %s)?",
				cli.FormatRupiah(amount), p.Name,
				cli.FormatUnits(p.UnitsFor(amount)), cli.FormatRupiah(p.NAVPrice))
			break
		}
	}

	var confirmed bool
	if err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(confirmLabel).Value(&confirmed),
	)).Run(); err != nil {
		return err
	}
	if !confirmed {
		fmt.Println("  Order cancelled.")
		return nil
	}

	ctx2, cancel2 := reqContext()
	defer cancel2()

	txID, err := client.Buy(ctx2, gateway.BuyRequest{
		CustomerID: sess.Profile.CustomerID,
		ProductID:  flagBuyProduct,
		GoalID:     flagBuyGoal,
		Amount:     flagBuyAmount,
	})
	if err != nil {
		return err
	}

	fmt.Printf("\n  Order placed. Transaction %s is pending settlement.\n", txID)
	fmt.Println("  Track it with `wealth history`.")
	return nil
}
