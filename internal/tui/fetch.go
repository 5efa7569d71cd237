package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/theirongolddev/wealth/internal/gateway"
	"github.com/theirongolddev/wealth/internal/model"
	"github.com/theirongolddev/wealth/internal/session"
)

const fetchTimeout = 15 * time.Second

// sessionResumedMsg restores a persisted login on startup.
type sessionResumedMsg struct {
	Session session.Session
}

// loginDoneMsg is sent when the login request completes.
type loginDoneMsg struct {
	Data *gateway.LoginData
	Err  error
}

// registerDoneMsg is sent when the registration request completes.
type registerDoneMsg struct {
	Err error
}

// kycDoneMsg is sent when identity verification completes.
type kycDoneMsg struct {
	Data *gateway.KYCData
	Err  error
}

// questionsMsg carries the risk questionnaire items.
type questionsMsg struct {
	Questions []model.CRPQuestion
	Err       error
}

// crpSavedMsg carries the scored questionnaire outcome.
type crpSavedMsg struct {
	Result *gateway.CRPResult
	Err    error
}

// goalsMsg carries the goal list and tracking rows together.
type goalsMsg struct {
	Goals    []model.Goal
	Tracking []model.GoalTracking
	Err      error
}

// dashboardMsg carries the portfolio summary and trend series.
type dashboardMsg struct {
	Summary *model.DashboardSummary
	Trend   []model.TrendPoint
	Err     error
}

// productsMsg carries the risk-filtered product list.
type productsMsg struct {
	Products []model.Product
	Err      error
}

// historyMsg carries the transaction history.
type historyMsg struct {
	History []model.Transaction
	Err     error
}

// goalSavedMsg is sent when a goal create request completes.
type goalSavedMsg struct {
	Goal *model.Goal
	Err  error
}

// buyDoneMsg is sent when a buy order is placed.
type buyDoneMsg struct {
	TxID string
	Err  error
}

func loginCmd(client *gateway.Client, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		data, err := client.Login(ctx, email, password)
		return loginDoneMsg{Data: data, Err: err}
	}
}

func registerCmd(client *gateway.Client, req gateway.RegisterRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return registerDoneMsg{Err: client.Register(ctx, req)}
	}
}

func kycCmd(client *gateway.Client, req gateway.KYCRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		data, err := client.SubmitKYC(ctx, req)
		return kycDoneMsg{Data: data, Err: err}
	}
}

func fetchQuestionsCmd(client *gateway.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		qs, err := client.CRPQuestions(ctx)
		return questionsMsg{Questions: qs, Err: err}
	}
}

func saveCRPCmd(client *gateway.Client, answers []gateway.CRPAnswer) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		res, err := client.SaveCRPAnswers(ctx, answers)
		return crpSavedMsg{Result: res, Err: err}
	}
}

func fetchGoalsCmd(client *gateway.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		goals, err := client.ListGoals(ctx)
		if err != nil {
			return goalsMsg{Err: err}
		}
		tracking, err := client.TrackingGoals(ctx)
		if err != nil {
			// Tracking is an enhancement over the bare list; keep the goals.
			return goalsMsg{Goals: goals}
		}
		return goalsMsg{Goals: goals, Tracking: tracking}
	}
}

func fetchDashboardCmd(client *gateway.Client, customerID string, days int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		summary, err := client.DashboardSummary(ctx, customerID)
		if err != nil {
			return dashboardMsg{Err: err}
		}
		trend, err := client.DashboardTrend(ctx, customerID, days)
		if err != nil {
			return dashboardMsg{Summary: summary}
		}
		return dashboardMsg{Summary: summary, Trend: trend}
	}
}

func fetchProductsCmd(client *gateway.Client, risk model.RiskProfile) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		products, err := client.ProductsByRisk(ctx, risk)
		return productsMsg{Products: products, Err: err}
	}
}

func createRetirementGoalCmd(client *gateway.Client, req gateway.RetirementGoalRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		goal, err := client.CreateRetirementGoal(ctx, req)
		return goalSavedMsg{Goal: goal, Err: err}
	}
}

func createOtherGoalCmd(client *gateway.Client, req gateway.OtherGoalRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		goal, err := client.CreateOtherGoal(ctx, req)
		return goalSavedMsg{Goal: goal, Err: err}
	}
}

func buyCmd(client *gateway.Client, req gateway.BuyRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		txID, err := client.Buy(ctx, req)
		return buyDoneMsg{TxID: txID, Err: err}
	}
}

func fetchHistoryCmd(client *gateway.Client, customerID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		history, err := client.TransactionHistory(ctx, customerID)
		return historyMsg{History: history, Err: err}
	}
}
