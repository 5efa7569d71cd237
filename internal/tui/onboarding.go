package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/wealth/internal/gateway"
	"github.com/theirongolddev/wealth/internal/model"
	"github.com/theirongolddev/wealth/internal/session"
	"github.com/theirongolddev/wealth/internal/tui/theme"
)

type loginValues struct {
	Email    string
	Password string
}

type registerValues struct {
	Name     string
	Email    string
	Password string
	Address  string
}

type kycValues struct {
	NIK string
	POB string
	DOB string
}

func newLoginForm(vals *loginValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Value(&vals.Email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&vals.Password),
		).Title("Sign in").
			Description("Ctrl+N to create an account"),
	)
}

func newRegisterForm(vals *registerValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Full name").
				Value(&vals.Name),
			huh.NewInput().
				Title("Email").
				Value(&vals.Email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&vals.Password),
			huh.NewInput().
				Title("Address").
				Value(&vals.Address),
		).Title("Create account").
			Description("Esc to go back"),
	)
}

func newKYCForm(vals *kycValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("National ID number (NIK)").
				Validate(func(s string) error {
					if len(strings.TrimSpace(s)) != 16 {
						return fmt.Errorf("NIK must be 16 digits")
					}
					return nil
				}).
				Value(&vals.NIK),
			huh.NewInput().
				Title("Place of birth").
				Value(&vals.POB),
			huh.NewInput().
				Title("Date of birth (YYYY-MM-DD)").
				Validate(func(s string) error {
					if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("use YYYY-MM-DD")
					}
					return nil
				}).
				Value(&vals.DOB),
		).Title("Verify your identity").
			Description("Required before investing"),
	)
}

// ─── Form update handlers ───────────────────────────────────────

func (a App) updateLoginForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.submitting {
		return a, nil
	}
	form, cmd := a.loginForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.loginForm = f
	}

	if a.loginForm.State == huh.StateCompleted {
		a.submitting = true
		a.errText = ""
		return a, tea.Batch(a.spinner.Tick,
			loginCmd(a.client, strings.TrimSpace(a.loginVals.Email), a.loginVals.Password))
	}
	if a.loginForm.State == huh.StateAborted {
		return a, tea.Quit
	}
	return a, cmd
}

func (a App) updateRegisterForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.submitting {
		return a, nil
	}
	form, cmd := a.registerForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.registerForm = f
	}

	if a.registerForm.State == huh.StateCompleted {
		a.submitting = true
		a.errText = ""
		return a, tea.Batch(a.spinner.Tick, registerCmd(a.client, gateway.RegisterRequest{
			Name:     strings.TrimSpace(a.registerVals.Name),
			Email:    strings.TrimSpace(a.registerVals.Email),
			Password: a.registerVals.Password,
			Address:  strings.TrimSpace(a.registerVals.Address),
		}))
	}
	if a.registerForm.State == huh.StateAborted {
		_ = a.flow.CancelRegister()
		a.loginForm = newLoginForm(a.loginVals)
		return a, a.loginForm.Init()
	}
	return a, cmd
}

func (a App) updateKYCForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.submitting {
		return a, nil
	}
	form, cmd := a.kycForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.kycForm = f
	}

	if a.kycForm.State == huh.StateCompleted {
		a.submitting = true
		a.errText = ""
		return a, tea.Batch(a.spinner.Tick, kycCmd(a.client, gateway.KYCRequest{
			NIK: strings.TrimSpace(a.kycVals.NIK),
			POB: strings.TrimSpace(a.kycVals.POB),
			DOB: strings.TrimSpace(a.kycVals.DOB),
		}))
	}
	if a.kycForm.State == huh.StateAborted {
		return a, tea.Quit
	}
	return a, cmd
}

// ─── Result handlers ────────────────────────────────────────────

func (a App) handleLogin(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	a.submitting = false
	if msg.Err != nil {
		a.errText = msg.Err.Error()
		a.loginVals.Password = ""
		a.loginForm = newLoginForm(a.loginVals)
		return a, a.loginForm.Init()
	}

	a.profile = msg.Data.Profile()
	a.client.SetAuth(msg.Data.Token, a.profile.CustomerID)
	_ = a.sessions.Save(session.Session{Profile: a.profile, Token: msg.Data.Token})
	_ = a.flow.LoggedIn(a.profile.KYCComplete, a.profile.CRPComplete)
	a.errText = ""
	return a.enterState()
}

func (a App) handleKYC(msg kycDoneMsg) (tea.Model, tea.Cmd) {
	a.submitting = false
	if msg.Err != nil {
		a.errText = msg.Err.Error()
		a.kycForm = newKYCForm(a.kycVals)
		return a, a.kycForm.Init()
	}

	a.profile.KYCComplete = true
	_ = a.sessions.UpdateProfile(a.profile)
	a.kycForm = nil
	a.errText = ""

	// Straight into the risk questionnaire
	a.submitting = true
	return a, tea.Batch(a.spinner.Tick, fetchQuestionsCmd(a.client))
}

func (a App) handleCRPSaved(msg crpSavedMsg) (tea.Model, tea.Cmd) {
	a.submitting = false
	if msg.Err != nil {
		a.errText = msg.Err.Error()
		return a, nil
	}

	a.crpResult = msg.Result
	a.profile.CRPComplete = true
	if risk, ok := msg.Result.Risk(); ok {
		a.profile.RiskProfile = risk
	}
	_ = a.sessions.UpdateProfile(a.profile)
	_ = a.flow.ProfileCompleted()
	a.errText = ""
	return a, nil
}

// ─── CRP questionnaire ──────────────────────────────────────────

func (a App) updateCRPKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.submitting || len(a.crpQuestions) == 0 {
		return a, nil
	}

	q := a.crpQuestions[a.crpIdx]

	switch msg.String() {
	case "j", "down":
		if a.crpCursor < len(q.Answers)-1 {
			a.crpCursor++
		}
	case "k", "up":
		if a.crpCursor > 0 {
			a.crpCursor--
		}
	case "enter":
		if a.crpCursor >= len(q.Answers) {
			return a, nil
		}
		a.crpAnswers = append(a.crpAnswers, gateway.CRPAnswer{
			QuestionID: q.ID,
			AnswerID:   q.Answers[a.crpCursor].ID,
		})
		if a.crpIdx == len(a.crpQuestions)-1 {
			a.submitting = true
			return a, tea.Batch(a.spinner.Tick, saveCRPCmd(a.client, a.crpAnswers))
		}
		a.crpIdx++
		a.crpCursor = 0
	case "esc":
		// Step back one question
		if a.crpIdx > 0 && len(a.crpAnswers) > 0 {
			a.crpIdx--
			a.crpAnswers = a.crpAnswers[:len(a.crpAnswers)-1]
			a.crpCursor = 0
		}
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

// ─── Views ──────────────────────────────────────────────────────

func (a App) onboardFrame(body string) string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	subStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	errStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ wealth"))
	b.WriteString(subStyle.Render(" · Goal-based Investing"))
	b.WriteString("\n\n")
	if a.errText != "" {
		b.WriteString(errStyle.Render(truncStr(a.errText, 60)))
		b.WriteString("\n\n")
	}
	b.WriteString(body)

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewLogin() string {
	if a.submitting {
		return a.onboardFrame(a.spinner.View() + " Signing in...")
	}
	if a.loginForm == nil {
		return ""
	}
	return a.onboardFrame(a.loginForm.View())
}

func (a App) viewRegister() string {
	if a.submitting {
		return a.onboardFrame(a.spinner.View() + " Creating account...")
	}
	if a.registerForm == nil {
		return ""
	}
	return a.onboardFrame(a.registerForm.View())
}

func (a App) viewKYC() string {
	if a.submitting {
		return a.onboardFrame(a.spinner.View() + " Verifying identity...")
	}
	if a.kycForm == nil {
		return ""
	}
	return a.onboardFrame(a.kycForm.View())
}

func (a App) viewCRP() string {
	t := theme.Active

	if a.submitting || len(a.crpQuestions) == 0 {
		return a.onboardFrame(a.spinner.View() + " Loading risk questionnaire...")
	}

	q := a.crpQuestions[a.crpIdx]

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	stepStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	optStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(stepStyle.Render(fmt.Sprintf("Question %d of %d", a.crpIdx+1, len(a.crpQuestions))))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render(q.Text))
	b.WriteString("\n\n")

	for i, opt := range q.Answers {
		if i == a.crpCursor {
			b.WriteString(selStyle.Render("(o) " + opt.Text))
		} else {
			b.WriteString(optStyle.Render("( ) " + opt.Text))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("j/k select · Enter confirm · Esc back"))

	return a.onboardFrame(b.String())
}

func (a App) viewRiskResult() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface).Bold(true)
	riskStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	bodyStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)

	risk := a.profile.RiskProfile
	if risk == "" {
		risk = model.RiskModerate
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Profile complete!"))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render("Your investor profile: "))
	b.WriteString(riskStyle.Render(string(risk)))
	b.WriteString("\n")
	if a.crpResult != nil {
		b.WriteString(bodyStyle.Render(fmt.Sprintf("Score: %d", a.crpResult.TotalScore)))
		b.WriteString("\n")
		if a.crpResult.Insight != "" {
			b.WriteString("\n")
			b.WriteString(bodyStyle.Render(a.crpResult.Insight))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("Press Enter to open your dashboard"))

	return a.onboardFrame(b.String())
}
