package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/wealth/internal/cli"
	"github.com/theirongolddev/wealth/internal/gateway"
	"github.com/theirongolddev/wealth/internal/model"
	"github.com/theirongolddev/wealth/internal/projection"
)

var (
	flagGoalType       string
	flagGoalName       string
	flagGoalYear       int
	flagGoalAmount     float64
	flagTargetAge      int
	flagHopeLife       int
	flagMonthlyExpense float64
	flagMonthly        string
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "List goals and their tracking status",
	RunE:  runGoalsList,
}

var goalsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a retirement or savings goal",
	RunE:  runGoalsCreate,
}

var goalsEditCmd = &cobra.Command{
	Use:   "edit <goal-id>",
	Short: "Edit a goal's parameters",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalsEdit,
}

var goalsShowCmd = &cobra.Command{
	Use:   "show <goal-id>",
	Short: "Show goal detail with an affordability projection",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalsShow,
}

var goalsSimCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Preview a goal on the gateway before creating it",
	RunE:  runGoalsSimulate,
}

func init() {
	for _, c := range []*cobra.Command{goalsCreateCmd, goalsSimCmd} {
		c.Flags().StringVar(&flagGoalType, "type", "other", "Goal type: retirement or other")
		c.Flags().StringVar(&flagGoalName, "name", "", "Goal name")
		c.Flags().IntVar(&flagGoalYear, "year", 0, "Target year (other goals)")
		c.Flags().Float64Var(&flagGoalAmount, "amount", 0, "Target amount in rupiah (other goals)")
		c.Flags().IntVar(&flagTargetAge, "age", 0, "Retirement age (retirement goals)")
		c.Flags().IntVar(&flagHopeLife, "hope-life", 0, "Years to fund after retirement")
		c.Flags().Float64Var(&flagMonthlyExpense, "monthly-expense", 0, "Monthly needs in retirement, rupiah")
	}
	goalsEditCmd.Flags().IntVar(&flagGoalYear, "year", 0, "New target year (other goals)")
	goalsEditCmd.Flags().Float64Var(&flagGoalAmount, "amount", 0, "New target amount (other goals)")
	goalsEditCmd.Flags().IntVar(&flagTargetAge, "age", 0, "New retirement age")
	goalsEditCmd.Flags().IntVar(&flagHopeLife, "hope-life", 0, "New post-retirement years")
	goalsEditCmd.Flags().Float64Var(&flagMonthlyExpense, "monthly-expense", 0, "New monthly needs")
	goalsShowCmd.Flags().StringVar(&flagMonthly, "monthly", "", "What-if monthly contribution, rupiah")

	goalsCmd.AddCommand(goalsCreateCmd, goalsEditCmd, goalsShowCmd, goalsSimCmd)
	rootCmd.AddCommand(goalsCmd)
}

func runGoalsList(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	client, sess, err := authClient(cfg)
	if err != nil {
		return err
	}

	var goals []model.Goal
	var tracking []model.GoalTracking

	if cfg.General.Offline {
		snap := openSnapshot()
		if snap == nil {
			return fmt.Errorf("offline mode requested but no snapshot is available")
		}
		defer snap.Close()
		if goals, err = snap.LoadGoals(sess.Profile.CustomerID); err != nil {
			return err
		}
		if tracking, err = snap.LoadTracking(sess.Profile.CustomerID); err != nil {
			return err
		}
		if stamp, _ := snap.RefreshedAt(sess.Profile.CustomerID); !stamp.IsZero() {
			fmt.Printf("  Snapshot from %s\n", stamp.Local().Format("02 Jan 15:04"))
		}
	} else {
		ctx, cancel := reqContext()
		defer cancel()
		if goals, err = client.ListGoals(ctx); err != nil {
			return err
		}
		tracking, _ = client.TrackingGoals(ctx)

		if snap := openSnapshot(); snap != nil {
			_ = snap.SaveGoals(sess.Profile.CustomerID, goals)
			_ = snap.SaveTracking(sess.Profile.CustomerID, tracking)
			_ = snap.Close()
		}
	}

	if len(goals) == 0 {
		fmt.Println("\n  No goals yet. Create one with `wealth goals create`.")
		return nil
	}

	trackingByID := make(map[string]model.GoalTracking, len(tracking))
	for _, tr := range tracking {
		trackingByID[tr.GoalID] = tr
	}

	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		saved := "-"
		status := "-"
		if tr, ok := trackingByID[g.ID]; ok {
			saved = cli.FormatRupiahShort(tr.ActualValueToDate)
			status = string(tr.Status)
		}
		months := projection.MonthsRemaining(g.TargetDate.Year(), int(g.TargetDate.Month()), time.Now())
		rows = append(rows, []string{
			g.ID,
			g.Name,
			cli.FormatRupiahShort(g.TargetAmount),
			saved,
			cli.FormatMonths(months),
			status,
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("GOALS"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Goal", "Target", "Saved", "Left", "Status"},
		Rows:    rows,
	}))
	return nil
}

func runGoalsCreate(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	client, _, err := authClient(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := reqContext()
	defer cancel()

	var goal *model.Goal
	switch flagGoalType {
	case "retirement":
		req, err := retirementRequestFromFlags()
		if err != nil {
			return err
		}
		goal, err = client.CreateRetirementGoal(ctx, req)
		if err != nil {
			return err
		}
	case "other":
		req, err := otherRequestFromFlags()
		if err != nil {
			return err
		}
		goal, err = client.CreateOtherGoal(ctx, req)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown goal type %q (use retirement or other)", flagGoalType)
	}

	fmt.Printf("\n  Goal %q created (id %s).\n", goal.Name, goal.ID)
	fmt.Printf("  Target: %s by %s\n", cli.FormatRupiah(goal.TargetAmount), cli.FormatDate(goal.TargetDate))
	fmt.Println("\n  See the required monthly amount with `wealth goals show " + goal.ID + "`.")
	return nil
}

func runGoalsEdit(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	client, _, err := authClient(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := reqContext()
	defer cancel()

	goalID := args[0]
	var goal *model.Goal

	// Retirement edits carry age fields; other edits carry year/amount.
	if cmd.Flags().Changed("age") || cmd.Flags().Changed("hope-life") || cmd.Flags().Changed("monthly-expense") {
		goal, err = client.EditRetirementGoal(ctx, goalID, gateway.EditRetirementGoalRequest{
			TargetAge:      flagTargetAge,
			HopeLife:       flagHopeLife,
			MonthlyExpense: flagMonthlyExpense,
		})
	} else if cmd.Flags().Changed("year") || cmd.Flags().Changed("amount") {
		goal, err = client.EditOtherGoal(ctx, goalID, gateway.EditOtherGoalRequest{
			TargetYear:   flagGoalYear,
			TargetAmount: flagGoalAmount,
		})
	} else {
		return fmt.Errorf("nothing to change; pass --year/--amount or --age/--hope-life/--monthly-expense")
	}
	if err != nil {
		return err
	}

	fmt.Printf("  Goal %q updated. New target: %s by %s\n",
		goal.Name, cli.FormatRupiah(goal.TargetAmount), cli.FormatDate(goal.TargetDate))
	return nil
}

func runGoalsShow(_ *cobra.Command, args []string) error {
	cfg := loadConfig()
	client, _, err := authClient(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := reqContext()
	defer cancel()

	goal, err := client.GoalDetail(ctx, args[0])
	if err != nil {
		return err
	}

	var current decimal.Decimal
	var tr *model.GoalTracking
	if tracking, err := client.TrackingGoals(ctx); err == nil {
		for i := range tracking {
			if tracking[i].GoalID == goal.ID {
				tr = &tracking[i]
				current = tracking[i].ActualValueToDate
				break
			}
		}
	}

	var monthly decimal.Decimal
	if flagMonthly != "" {
		if monthly, err = decimal.NewFromString(flagMonthly); err != nil {
			return fmt.Errorf("parsing --monthly: %w", err)
		}
	}

	in := projection.Inputs{
		CurrentAmount:       current,
		TargetAmount:        goal.TargetAmount,
		MonthlyContribution: monthly,
	}
	in.TargetYear, in.TargetMonth = goal.TargetYearMonth()
	proj := projection.Compute(in, time.Now())

	fmt.Println()
	fmt.Println(cli.RenderTitle(goal.Name))
	fmt.Println()

	rows := [][]string{
		{"Type", string(goal.Type)},
		{"Category", string(goal.Category)},
		{"Target", cli.FormatRupiah(goal.TargetAmount)},
		{"Deadline", cli.FormatDate(goal.TargetDate)},
		{"Time left", cli.FormatMonths(proj.MonthsRemaining)},
		{"---"},
		{"Saved so far", cli.FormatRupiah(current)},
		{"Required/month", cli.FormatRupiah(proj.RequiredMonthly)},
	}
	if tr != nil {
		rows = append(rows, []string{"Expected now", cli.FormatRupiah(tr.ExpectedValueToDate)})
		rows = append(rows, []string{"Server status", string(tr.Status)})
	}
	if monthly.Sign() > 0 {
		rows = append(rows, []string{"---"})
		rows = append(rows, []string{"Contributing", cli.FormatRupiah(monthly) + "/mo"})
		rows = append(rows, []string{"Projected final", cli.FormatRupiah(proj.ProjectedFinal)})
		if proj.Shortfall.Sign() > 0 {
			rows = append(rows, []string{"Monthly gap", cli.FormatRupiah(proj.Shortfall)})
		}
		if proj.Surplus.Sign() > 0 {
			rows = append(rows, []string{"Surplus", cli.FormatRupiah(proj.Surplus)})
		}
		rows = append(rows, []string{"Status", string(proj.Status)})
	}

	fmt.Print(cli.RenderTable(cli.Table{Headers: []string{"Field", "Value"}, Rows: rows}))

	if goal.TargetAmount.Sign() > 0 {
		pct := current.Div(goal.TargetAmount).InexactFloat64()
		fmt.Printf("\n  Progress: %s\n", cli.RenderMeter(pct, 24))
	}

	// Trajectory sparkline for the what-if contribution
	if monthly.Sign() > 0 && proj.MonthsRemaining > 0 {
		points := projection.Trajectory(current, monthly, proj.MonthsRemaining, 1)
		vals := make([]float64, len(points))
		for i, p := range points {
			vals[i] = p.Value.InexactFloat64()
		}
		fmt.Printf("\n  Trajectory: %s\n", cli.RenderSparkline(vals))
	}

	statusLine := cli.StatusStyle(string(proj.Status)).Render(string(proj.Status))
	if monthly.Sign() > 0 {
		fmt.Printf("\n  %s\n\n", statusLine)
	} else {
		fmt.Printf("\n  Pass %s to project a contribution plan.\n\n",
			lipgloss.NewStyle().Foreground(cli.ColorAccent).Render("--monthly <amount>"))
	}
	return nil
}

func runGoalsSimulate(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	client, _, err := authClient(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := reqContext()
	defer cancel()

	var sim *gateway.Simulation
	switch flagGoalType {
	case "retirement":
		req, err := retirementRequestFromFlags()
		if err != nil {
			return err
		}
		sim, err = client.SimulateRetirementGoal(ctx, req)
		if err != nil {
			return err
		}
	case "other":
		req, err := otherRequestFromFlags()
		if err != nil {
			return err
		}
		sim, err = client.SimulateOtherGoal(ctx, req)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown goal type %q (use retirement or other)", flagGoalType)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("GOAL PREVIEW"))
	fmt.Println()
	fmt.Printf("  %s (%s)\n", sim.GoalName, sim.GoalType)
	if sim.TargetAmountNeeded > 0 {
		fmt.Printf("  Amount needed: %s\n", cli.FormatRupiah(decimal.NewFromFloat(sim.TargetAmountNeeded)))
	}

	if len(sim.Projections) > 0 {
		vals := make([]float64, len(sim.Projections))
		for i, p := range sim.Projections {
			vals[i] = p.Value
		}
		fmt.Printf("\n  Growth: %s\n", cli.RenderSparkline(vals))

		last := sim.Projections[len(sim.Projections)-1]
		fmt.Printf("  Month %d: %s (%.0f%% of target)\n",
			last.Month, cli.FormatRupiah(decimal.NewFromFloat(last.Value)), last.Progress*100)
	}

	fmt.Println("\n  Create it for real with `wealth goals create` and the same flags.")
	return nil
}

// retirementRequestFromFlags validates the retirement flag set.
func retirementRequestFromFlags() (gateway.RetirementGoalRequest, error) {
	if flagTargetAge <= 0 || flagHopeLife <= 0 || flagMonthlyExpense <= 0 {
		return gateway.RetirementGoalRequest{}, fmt.Errorf("retirement goals need --age, --hope-life, and --monthly-expense")
	}
	name := flagGoalName
	if name == "" {
		name = "Retirement"
	}
	return gateway.RetirementGoalRequest{
		GoalType:       string(model.GoalRetirement),
		GoalName:       name,
		TargetAge:      flagTargetAge,
		HopeLife:       flagHopeLife,
		MonthlyExpense: flagMonthlyExpense,
	}, nil
}

// otherRequestFromFlags validates the non-retirement flag set.
func otherRequestFromFlags() (gateway.OtherGoalRequest, error) {
	if flagGoalName == "" || flagGoalYear <= 0 || flagGoalAmount <= 0 {
		return gateway.OtherGoalRequest{}, fmt.Errorf("other goals need --name, --year, and --amount")
	}
	if flagGoalYear < time.Now().Year() {
		return gateway.OtherGoalRequest{}, fmt.Errorf("--year %d is in the past", flagGoalYear)
	}
	return gateway.OtherGoalRequest{
		GoalType:     string(model.GoalOther),
		GoalName:     flagGoalName,
		TargetYear:   flagGoalYear,
		TargetAmount: flagGoalAmount,
	}, nil
}
