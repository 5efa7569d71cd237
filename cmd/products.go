package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/wealth/internal/cli"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List funds available for your risk tier",
	RunE:  runProducts,
}

func init() {
	rootCmd.AddCommand(productsCmd)
}

func runProducts(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	client, sess, err := authClient(cfg)
	if err != nil {
		return err
	}

	if !sess.Profile.CRPComplete {
		return fmt.Errorf("complete the risk questionnaire first: `wealth risk`")
	}

	ctx, cancel := reqContext()
	defer cancel()

	products, err := client.ProductsByRisk(ctx, sess.Profile.RiskProfile)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		fmt.Println("  No products available for your tier right now.")
		return nil
	}

	rows := make([][]string, len(products))
	for i, p := range products {
		rows[i] = []string{p.ID, p.Name, p.Type, cli.FormatRupiah(p.NAVPrice), p.CutOffTime}
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("PRODUCTS"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Matched to %s investors", sess.Profile.RiskProfile),
		Headers: []string{"ID", "Product", "Type", "NAV", "Cut-off"},
		Rows:    rows,
	}))
	fmt.Println("\n  Place an order with `wealth buy --product <id> --goal <id> --amount <rupiah>`.")
	return nil
}
