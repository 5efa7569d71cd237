package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/wealth/internal/cli"
	"github.com/theirongolddev/wealth/internal/model"
)

// runDashboard is the bare `wealth` invocation: a one-shot portfolio summary
// printed to stdout. The interactive version lives behind `wealth tui`.
func runDashboard(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	client, sess, err := authClient(cfg)
	if err != nil {
		fmt.Println("\n  Not signed in. Run `wealth login` or `wealth register` to get started.")
		return nil
	}

	switch {
	case !sess.Profile.KYCComplete:
		fmt.Println("\n  Identity verification pending. Run `wealth kyc` to continue onboarding.")
		return nil
	case !sess.Profile.CRPComplete:
		fmt.Println("\n  Risk profile pending. Run `wealth risk` to continue onboarding.")
		return nil
	}

	var (
		summary  *model.DashboardSummary
		trend    []model.TrendPoint
		tracking []model.GoalTracking
		goals    []model.Goal
		stale    time.Time
		offline  = cfg.General.Offline
	)

	if !offline {
		ctx, cancel := reqContext()
		summary, err = client.DashboardSummary(ctx, sess.Profile.CustomerID)
		if err == nil {
			trend, _ = client.DashboardTrend(ctx, sess.Profile.CustomerID, cfg.General.TrendDays)
			goals, _ = client.ListGoals(ctx)
			tracking, _ = client.TrackingGoals(ctx)
		}
		cancel()

		if err != nil {
			offline = true
			fmt.Printf("  Gateway unreachable (%v); falling back to the local snapshot.\n", err)
		} else if snap := openSnapshot(); snap != nil {
			_ = snap.SaveGoals(sess.Profile.CustomerID, goals)
			_ = snap.SaveTracking(sess.Profile.CustomerID, tracking)
			_ = snap.Close()
		}
	}

	if offline {
		snap := openSnapshot()
		if snap == nil {
			return fmt.Errorf("no network and no local snapshot; run `wealth` online at least once")
		}
		defer snap.Close()
		goals, _ = snap.LoadGoals(sess.Profile.CustomerID)
		tracking, _ = snap.LoadTracking(sess.Profile.CustomerID)
		stale, _ = snap.RefreshedAt(sess.Profile.CustomerID)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("PORTFOLIO"))
	fmt.Println()

	if summary != nil {
		fmt.Printf("  Total value   %s\n", cli.FormatRupiah(summary.TotalValue))
		if len(summary.Breakdown) > 0 {
			fmt.Printf("  Holdings      %d products\n", len(summary.Breakdown))
		}
	} else {
		fmt.Println("  Portfolio value unavailable offline.")
		if !stale.IsZero() {
			fmt.Printf("  Snapshot from %s\n", stale.Local().Format("02 Jan 15:04"))
		}
	}
	fmt.Printf("  Risk profile  %s\n", sess.Profile.RiskProfile)

	if len(trend) > 1 {
		vals := make([]float64, len(trend))
		for i, p := range trend {
			vals[i] = p.Value.InexactFloat64()
		}
		fmt.Printf("\n  %dd trend  %s\n", cfg.General.TrendDays, cli.RenderSparkline(vals))
	}

	if len(goals) > 0 {
		trackingByID := make(map[string]model.GoalTracking, len(tracking))
		for _, tr := range tracking {
			trackingByID[tr.GoalID] = tr
		}
		rows := make([][]string, 0, len(goals))
		onTrack := 0
		for _, g := range goals {
			saved, status := "-", "-"
			if tr, ok := trackingByID[g.ID]; ok {
				saved = cli.FormatRupiahShort(tr.ActualValueToDate)
				status = string(tr.Status)
				if tr.Status == model.TrackingOnTrack {
					onTrack++
				}
			}
			rows = append(rows, []string{g.Name, cli.FormatRupiahShort(g.TargetAmount), saved, status})
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   fmt.Sprintf("Goals (%d/%d on track)", onTrack, len(goals)),
			Headers: []string{"Goal", "Target", "Saved", "Status"},
			Rows:    rows,
		}))
	} else {
		fmt.Println("\n  No goals yet. Create one with `wealth goals create`.")
	}

	fmt.Println("\n  Full dashboard: `wealth tui`")
	return nil
}
