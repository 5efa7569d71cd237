package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/wealth/internal/cli"
	"github.com/theirongolddev/wealth/internal/projection"
)

var (
	flagSimMonthly float64
	flagSimRate    float64
	flagSimYears   int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Project investment growth with monthly compounding",
	Long:  "Runs entirely offline: contributions compound monthly at the given annual rate.",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().Float64Var(&flagSimMonthly, "monthly", 1_000_000, "Monthly contribution in rupiah")
	simulateCmd.Flags().Float64Var(&flagSimRate, "rate", 6, "Expected annual return, percent")
	simulateCmd.Flags().IntVar(&flagSimYears, "years", 10, "Horizon in years")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(_ *cobra.Command, _ []string) error {
	if flagSimMonthly <= 0 {
		return fmt.Errorf("--monthly must be positive")
	}
	if flagSimRate < 0 || flagSimRate > 100 {
		return fmt.Errorf("--rate must be between 0 and 100")
	}
	if flagSimYears < 1 || flagSimYears > 80 {
		return fmt.Errorf("--years must be between 1 and 80")
	}

	res := projection.Simulate(decimal.NewFromFloat(flagSimMonthly), flagSimRate, flagSimYears)

	fmt.Println()
	fmt.Println(cli.RenderTitle("GROWTH PROJECTION"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Field", "Value"},
		Rows: [][]string{
			{"Monthly", cli.FormatRupiah(decimal.NewFromFloat(flagSimMonthly))},
			{"Rate", cli.FormatPercent(flagSimRate / 100)},
			{"Horizon", fmt.Sprintf("%d years", flagSimYears)},
			{"---"},
			{"Final value", cli.FormatRupiah(res.FinalValue)},
			{"Contributed", cli.FormatRupiah(res.TotalContributions)},
			{"Returns", cli.FormatRupiah(res.TotalReturns)},
			{"Return", cli.FormatPercent(res.ReturnPercentage / 100)},
		},
	}))

	if len(res.Points) > 1 {
		vals := make([]float64, len(res.Points))
		for i, p := range res.Points {
			vals[i] = p.Value.InexactFloat64()
		}
		fmt.Printf("\n  Growth: %s\n\n", cli.RenderSparkline(vals))
	}
	return nil
}
