package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/wealth/internal/cli"
	"github.com/theirongolddev/wealth/internal/gateway"
	"github.com/theirongolddev/wealth/internal/model"
)

// goalFormValues backs the goal-creation form. Retirement and other goals
// share one form; groups are hidden by type.
type goalFormValues struct {
	Type     string // RETIREMENT or OTHER
	Name     string
	Year     string
	Amount   string
	Age      string
	HopeLife string
	Expense  string
}

func newGoalForm(vals *goalFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Goal type").
				Options(
					huh.NewOption("Savings goal", string(model.GoalOther)),
					huh.NewOption("Retirement", string(model.GoalRetirement)),
				).
				Value(&vals.Type),
		).Title("New Goal").Description("Esc to cancel"),
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Validate(validateNonEmpty).
				Value(&vals.Name),
			huh.NewInput().
				Title("Target year").
				Validate(validateFutureYear).
				Value(&vals.Year),
			huh.NewInput().
				Title("Target amount (Rp)").
				Validate(validatePositiveDecimal).
				Value(&vals.Amount),
		).WithHideFunc(func() bool { return vals.Type != string(model.GoalOther) }),
		huh.NewGroup(
			huh.NewInput().
				Title("Retirement age").
				Validate(validateIntRange(18, 100, "enter an age between 18 and 100")).
				Value(&vals.Age),
			huh.NewInput().
				Title("Years to fund after retiring").
				Validate(validateIntRange(1, 60, "enter 1-60 years")).
				Value(&vals.HopeLife),
			huh.NewInput().
				Title("Monthly needs in retirement (Rp)").
				Validate(validatePositiveDecimal).
				Value(&vals.Expense),
		).WithHideFunc(func() bool { return vals.Type != string(model.GoalRetirement) }),
	)
}

func validateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateFutureYear(s string) error {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || y < time.Now().Year() || y > time.Now().Year()+80 {
		return fmt.Errorf("enter a year from %d on", time.Now().Year())
	}
	return nil
}

func validateIntRange(lo, hi int, msg string) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n < lo || n > hi {
			return fmt.Errorf("%s", msg)
		}
		return nil
	}
}

func (a App) updateGoalForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.goalForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.goalForm = f
	}

	if a.goalForm.State == huh.StateCompleted {
		vals := a.goalVals
		a.goalForm = nil
		a.loadingGoals = true

		if vals.Type == string(model.GoalRetirement) {
			age, _ := strconv.Atoi(strings.TrimSpace(vals.Age))
			hope, _ := strconv.Atoi(strings.TrimSpace(vals.HopeLife))
			expense := mustDecimal(vals.Expense).InexactFloat64()
			return a, tea.Batch(a.spinner.Tick, createRetirementGoalCmd(a.client, gateway.RetirementGoalRequest{
				GoalType:       vals.Type,
				GoalName:       "Retirement",
				TargetAge:      age,
				HopeLife:       hope,
				MonthlyExpense: expense,
			}))
		}

		year, _ := strconv.Atoi(strings.TrimSpace(vals.Year))
		return a, tea.Batch(a.spinner.Tick, createOtherGoalCmd(a.client, gateway.OtherGoalRequest{
			GoalType:     vals.Type,
			GoalName:     strings.TrimSpace(vals.Name),
			TargetYear:   year,
			TargetAmount: mustDecimal(vals.Amount).InexactFloat64(),
		}))
	}
	if a.goalForm.State == huh.StateAborted {
		a.goalForm = nil
		return a, nil
	}
	return a, cmd
}

// contribValues backs the per-goal what-if contribution input. The amount is
// local only; the gateway never sees it.
type contribValues struct {
	Amount string
}

func newContribForm(vals *contribValues, goalName string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Monthly contribution for %q (Rp)", goalName)).
				Description("Used for the affordability projection. 0 clears it.").
				Validate(validateNonNegativeDecimal).
				Value(&vals.Amount),
		).Description("Esc to cancel"),
	)
}

func validateNonNegativeDecimal(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.Sign() < 0 {
		return fmt.Errorf("enter an amount of 0 or more")
	}
	return nil
}

func (a App) updateContribForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.contribForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.contribForm = f
	}

	if a.contribForm.State == huh.StateCompleted {
		if a.goalCursor < len(a.goals) {
			a.goals[a.goalCursor].MonthlyContribution = mustDecimal(a.contribVals.Amount)
		}
		a.contribForm = nil
		return a, nil
	}
	if a.contribForm.State == huh.StateAborted {
		a.contribForm = nil
		return a, nil
	}
	return a, cmd
}

// buyFormValues backs the purchase form on the products tab.
type buyFormValues struct {
	GoalID string
	Amount string
}

func newBuyForm(vals *buyFormValues, product model.Product, goals []model.Goal) *huh.Form {
	opts := make([]huh.Option[string], len(goals))
	for i, g := range goals {
		opts[i] = huh.NewOption(g.Name, g.ID)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Fund which goal?").
				Options(opts...).
				Value(&vals.GoalID),
			huh.NewInput().
				Title(fmt.Sprintf("Amount (Rp, NAV %s)", cli.FormatRupiah(product.NAVPrice))).
				Validate(validatePositiveDecimal).
				Value(&vals.Amount),
		).Title("Buy "+product.Name).Description("Esc to cancel"),
	)
}

func (a App) updateBuyForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.buyForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.buyForm = f
	}

	if a.buyForm.State == huh.StateCompleted {
		vals := a.buyVals
		a.buyForm = nil
		if a.prodCursor >= len(a.products) {
			return a, nil
		}
		a.submitting = true
		return a, tea.Batch(a.spinner.Tick, buyCmd(a.client, gateway.BuyRequest{
			CustomerID: a.profile.CustomerID,
			ProductID:  a.products[a.prodCursor].ID,
			GoalID:     vals.GoalID,
			Amount:     mustDecimal(vals.Amount).InexactFloat64(),
		}))
	}
	if a.buyForm.State == huh.StateAborted {
		a.buyForm = nil
		return a, nil
	}
	return a, cmd
}
