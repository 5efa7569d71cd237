// Package tui provides the interactive Bubble Tea dashboard for wealth.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/wealth/internal/config"
	"github.com/theirongolddev/wealth/internal/gateway"
	"github.com/theirongolddev/wealth/internal/model"
	"github.com/theirongolddev/wealth/internal/onboard"
	"github.com/theirongolddev/wealth/internal/projection"
	"github.com/theirongolddev/wealth/internal/session"
	"github.com/theirongolddev/wealth/internal/store"
	"github.com/theirongolddev/wealth/internal/tui/components"
	"github.com/theirongolddev/wealth/internal/tui/theme"
)

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	minContentHeight = 5
)

// App is the root Bubble Tea model. It walks the onboarding flow from the
// login screen through KYC and risk profiling to the dashboard tabs.
type App struct {
	cfg      config.Config
	client   *gateway.Client
	sessions *session.Store
	snap     *store.Snapshot // nil when the snapshot db could not be opened
	offline  bool

	flow    *onboard.Flow
	profile model.Profile

	// Dashboard data, each with its own pending flag
	goals        []model.Goal
	tracking     []model.GoalTracking
	products     []model.Product
	history      []model.Transaction
	summary      *model.DashboardSummary
	trend        []model.TrendPoint
	loadingGoals bool
	loadingProds bool
	loadingHist  bool
	loadingDash  bool
	refreshedAt  time.Time

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	errText   string
	spinner   spinner.Model

	// Onboarding forms. Value structs are pointers so huh's bindings stay
	// valid across Bubble Tea model copies.
	loginForm    *huh.Form
	loginVals    *loginValues
	registerForm *huh.Form
	registerVals *registerValues
	kycForm      *huh.Form
	kycVals      *kycValues
	submitting   bool

	// CRP questionnaire
	crpQuestions []model.CRPQuestion
	crpIdx       int
	crpCursor    int
	crpAnswers   []gateway.CRPAnswer
	crpResult    *gateway.CRPResult

	// Per-tab state
	goalCursor int
	prodCursor int
	simState   simulatorState
	settings   settingsState
	notice     string

	// Dashboard modal forms
	goalForm    *huh.Form
	goalVals    *goalFormValues
	contribForm *huh.Form
	contribVals *contribValues
	buyForm     *huh.Form
	buyVals     *buyFormValues
}

// NewApp creates the TUI model. A nil snapshot store disables offline data.
func NewApp(cfg config.Config, client *gateway.Client, sessions *session.Store, snap *store.Snapshot, offline bool) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	app := App{
		cfg:      cfg,
		client:   client,
		sessions: sessions,
		snap:     snap,
		offline:  offline,
		flow:     onboard.New(),
		spinner:  sp,
		simState: newSimulatorState(),
	}
	app.loginVals = &loginValues{}
	app.loginForm = newLoginForm(app.loginVals)
	return app
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnableMouseCellMotion,
		a.spinner.Tick,
	}

	// Resume a stored session if one exists and has not expired. The
	// profile itself is applied in Update via sessionResumedMsg.
	if sess, err := a.sessions.Load(); err == nil && !sess.Expired(time.Now()) {
		resumed := *sess
		cmds = append(cmds, func() tea.Msg { return sessionResumedMsg{Session: resumed} })
		return tea.Batch(cmds...)
	}

	cmds = append(cmds, a.loginForm.Init())
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		for _, f := range []*huh.Form{a.loginForm, a.registerForm, a.kycForm, a.simState.form, a.goalForm, a.contribForm, a.buyForm} {
			if f != nil {
				*f = *f.WithWidth(msg.Width).WithHeight(msg.Height - 4)
			}
		}
		return a, nil

	case tea.MouseMsg:
		if a.flow.State() != onboard.Dashboard || a.showHelp {
			return a, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKeys(msg)

	case sessionResumedMsg:
		a.profile = msg.Session.Profile
		a.client.SetAuth(msg.Session.Token, msg.Session.Profile.CustomerID)
		_ = a.flow.LoggedIn(a.profile.KYCComplete, a.profile.CRPComplete)
		return a.enterState()

	case loginDoneMsg:
		return a.handleLogin(msg)

	case registerDoneMsg:
		a.submitting = false
		if msg.Err != nil {
			a.errText = msg.Err.Error()
			a.registerForm = newRegisterForm(a.registerVals)
			return a, a.registerForm.Init()
		}
		_ = a.flow.Registered()
		a.errText = "Account created. Log in to continue."
		a.loginForm = newLoginForm(a.loginVals)
		return a, a.loginForm.Init()

	case kycDoneMsg:
		return a.handleKYC(msg)

	case questionsMsg:
		a.submitting = false
		if msg.Err != nil {
			a.errText = msg.Err.Error()
			return a, nil
		}
		a.crpQuestions = msg.Questions
		a.crpIdx = 0
		a.crpCursor = 0
		a.crpAnswers = a.crpAnswers[:0]
		return a, nil

	case crpSavedMsg:
		return a.handleCRPSaved(msg)

	case goalsMsg:
		a.loadingGoals = false
		if msg.Err == nil {
			a.goals = msg.Goals
			a.tracking = msg.Tracking
			a.refreshedAt = time.Now()
			if a.goalCursor >= len(a.goals) {
				a.goalCursor = 0
			}
			a.cacheGoals()
		} else {
			a.errText = msg.Err.Error()
			a.loadGoalsFromSnapshot()
		}
		return a, nil

	case dashboardMsg:
		a.loadingDash = false
		if msg.Err == nil {
			a.summary = msg.Summary
			a.trend = msg.Trend
			a.refreshedAt = time.Now()
		} else {
			a.errText = msg.Err.Error()
		}
		return a, nil

	case productsMsg:
		a.loadingProds = false
		if msg.Err == nil {
			a.products = msg.Products
			if a.prodCursor >= len(a.products) {
				a.prodCursor = 0
			}
		} else {
			a.errText = msg.Err.Error()
		}
		return a, nil

	case goalSavedMsg:
		if msg.Err != nil {
			a.loadingGoals = false
			a.errText = msg.Err.Error()
			return a, nil
		}
		a.notice = fmt.Sprintf("Goal %q created.", msg.Goal.Name)
		return a, tea.Batch(a.spinner.Tick, fetchGoalsCmd(a.client))

	case buyDoneMsg:
		a.submitting = false
		if msg.Err != nil {
			a.errText = msg.Err.Error()
			return a, nil
		}
		a.notice = fmt.Sprintf("Order placed, transaction %s pending settlement.", msg.TxID)
		a.history = nil // force a reload on the next history visit
		a.loadingGoals = true
		return a, tea.Batch(a.spinner.Tick, fetchGoalsCmd(a.client))

	case historyMsg:
		a.loadingHist = false
		if msg.Err == nil {
			a.history = msg.History
			a.cacheHistory()
		} else {
			a.errText = msg.Err.Error()
			a.loadHistoryFromSnapshot()
		}
		return a, nil

	case spinner.TickMsg:
		if a.anyLoading() || a.submitting {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a.updateForms(msg)
}

func (a App) anyLoading() bool {
	return a.loadingGoals || a.loadingProds || a.loadingHist || a.loadingDash
}

// updateForms forwards non-key messages to whichever huh form is active.
func (a App) updateForms(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch a.flow.State() {
	case onboard.LoggedOut:
		if a.loginForm != nil {
			return a.updateLoginForm(msg)
		}
	case onboard.Registering:
		if a.registerForm != nil {
			return a.updateRegisterForm(msg)
		}
	case onboard.PendingKYC:
		if !a.profile.KYCComplete && a.kycForm != nil {
			return a.updateKYCForm(msg)
		}
	case onboard.Dashboard:
		switch {
		case a.goalForm != nil:
			return a.updateGoalForm(msg)
		case a.contribForm != nil:
			return a.updateContribForm(msg)
		case a.buyForm != nil:
			return a.updateBuyForm(msg)
		case a.activeTab == tabSimulator && a.simState.form != nil:
			return a.updateSimulatorForm(msg)
		}
	}
	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.flow.State() {
	case onboard.LoggedOut:
		if key == "ctrl+n" {
			_ = a.flow.StartRegister()
			a.errText = ""
			a.registerVals = &registerValues{}
			a.registerForm = newRegisterForm(a.registerVals)
			return a, a.registerForm.Init()
		}
		return a.updateLoginForm(msg)

	case onboard.Registering:
		if key == "esc" {
			_ = a.flow.CancelRegister()
			a.errText = ""
			a.loginForm = newLoginForm(a.loginVals)
			return a, a.loginForm.Init()
		}
		return a.updateRegisterForm(msg)

	case onboard.PendingKYC:
		if !a.profile.KYCComplete {
			return a.updateKYCForm(msg)
		}
		return a.updateCRPKeys(msg)

	case onboard.PendingRiskResult:
		if key == "enter" {
			_ = a.flow.RiskAcknowledged()
			return a.enterState()
		}
		return a, nil

	case onboard.Dashboard:
		return a.updateDashboardKeys(msg)
	}

	return a, nil
}

func (a App) updateDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// An open modal form consumes most keys while focused
	switch {
	case a.goalForm != nil:
		if key == "esc" {
			a.goalForm = nil
			return a, nil
		}
		return a.updateGoalForm(msg)
	case a.contribForm != nil:
		if key == "esc" {
			a.contribForm = nil
			return a, nil
		}
		return a.updateContribForm(msg)
	case a.buyForm != nil:
		if key == "esc" {
			a.buyForm = nil
			return a, nil
		}
		return a.updateBuyForm(msg)
	case a.activeTab == tabSimulator && a.simState.form != nil:
		if key == "esc" {
			a.simState.form = nil
			return a, nil
		}
		return a.updateSimulatorForm(msg)
	}

	a.notice = ""

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch key {
	case "q":
		return a, tea.Quit

	case "r":
		if !a.anyLoading() {
			a.errText = ""
			return a, tea.Batch(a.refreshCmds()...)
		}
		return a, nil

	case "j", "down":
		if a.activeTab == tabGoals && a.goalCursor < len(a.goals)-1 {
			a.goalCursor++
		}
		if a.activeTab == tabProducts && a.prodCursor < len(a.products)-1 {
			a.prodCursor++
		}
		if a.activeTab == tabSettings {
			a.settings.next()
		}
		return a, nil

	case "k", "up":
		if a.activeTab == tabGoals && a.goalCursor > 0 {
			a.goalCursor--
		}
		if a.activeTab == tabProducts && a.prodCursor > 0 {
			a.prodCursor--
		}
		if a.activeTab == tabSettings {
			a.settings.prev()
		}
		return a, nil

	case "n":
		if a.activeTab == tabGoals {
			a.goalVals = &goalFormValues{Type: string(model.GoalOther)}
			a.goalForm = newGoalForm(a.goalVals)
			return a, a.goalForm.Init()
		}
		return a, nil

	case "m":
		if a.activeTab == tabGoals && a.goalCursor < len(a.goals) {
			g := a.goals[a.goalCursor]
			a.contribVals = &contribValues{Amount: g.MonthlyContribution.String()}
			a.contribForm = newContribForm(a.contribVals, g.Name)
			return a, a.contribForm.Init()
		}
		return a, nil

	case "b":
		if a.activeTab == tabProducts && a.prodCursor < len(a.products) {
			if len(a.goals) == 0 {
				a.errText = "Create a goal before buying."
				return a, nil
			}
			a.buyVals = &buyFormValues{}
			a.buyForm = newBuyForm(a.buyVals, a.products[a.prodCursor], a.goals)
			return a, a.buyForm.Init()
		}
		return a, nil

	case "enter":
		if a.activeTab == tabSimulator && a.simState.form == nil {
			a.simState = newSimulatorState()
			a.simState.form = newSimulatorForm(a.simState.vals)
			return a, a.simState.form.Init()
		}
		if a.activeTab == tabSettings {
			return a.settingsApply()
		}
		return a, nil

	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	case "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	}

	if len(key) == 1 {
		if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
			a.activeTab = idx
			return a, a.lazyLoadTab(idx)
		}
	}

	return a, nil
}

// lazyLoadTab fetches tab data on first visit.
func (a *App) lazyLoadTab(idx int) tea.Cmd {
	switch idx {
	case tabProducts:
		if a.products == nil && !a.loadingProds && a.profile.RiskProfile != "" {
			a.loadingProds = true
			return fetchProductsCmd(a.client, a.profile.RiskProfile)
		}
	case tabHistory:
		if a.history == nil && !a.loadingHist {
			a.loadingHist = true
			return fetchHistoryCmd(a.client, a.profile.CustomerID)
		}
	}
	return nil
}

// enterState runs the side effects of arriving at a new onboarding state.
func (a App) enterState() (tea.Model, tea.Cmd) {
	switch a.flow.State() {
	case onboard.PendingKYC:
		if !a.profile.KYCComplete {
			a.kycVals = &kycValues{}
			a.kycForm = newKYCForm(a.kycVals)
			return a, a.kycForm.Init()
		}
		// KYC done, risk profiling pending
		a.submitting = true
		return a, tea.Batch(a.spinner.Tick, fetchQuestionsCmd(a.client))

	case onboard.Dashboard:
		return a, tea.Batch(a.refreshCmds()...)
	}
	return a, nil
}

// refreshCmds starts the dashboard data fetches.
func (a *App) refreshCmds() []tea.Cmd {
	if a.offline {
		a.loadGoalsFromSnapshot()
		a.loadHistoryFromSnapshot()
		return []tea.Cmd{nil}
	}
	a.loadingGoals = true
	a.loadingDash = true
	return []tea.Cmd{
		a.spinner.Tick,
		fetchGoalsCmd(a.client),
		fetchDashboardCmd(a.client, a.profile.CustomerID, a.trendDays()),
	}
}

func (a App) trendDays() int {
	if a.cfg.General.TrendDays > 0 {
		return a.cfg.General.TrendDays
	}
	return 30
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	switch a.flow.State() {
	case onboard.LoggedOut:
		return a.viewLogin()
	case onboard.Registering:
		return a.viewRegister()
	case onboard.PendingKYC:
		if !a.profile.KYCComplete {
			return a.viewKYC()
		}
		return a.viewCRP()
	case onboard.PendingRiskResult:
		return a.viewRiskResult()
	}

	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewDashboard()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  wealth needs at least %d columns.\n",
		a.width, minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	for _, bind := range []struct{ key, desc string }{
		{"o g p h i x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate lists"},
	} {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-12s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	for _, bind := range []struct{ key, desc string }{
		{"Enter", "Confirm / Open simulator form"},
		{"n", "New goal (Goals tab)"},
		{"m", "Set monthly contribution (Goals tab)"},
		{"b", "Buy selected product (Products tab)"},
		{"Esc", "Back / Cancel"},
		{"r", "Refresh data"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	} {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-12s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

func (a App) viewDashboard() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	dataAge := ""
	if !a.refreshedAt.IsZero() {
		dataAge = a.refreshedAt.Format("15:04")
	}
	statusBar := components.RenderStatusBar(w, a.profile.Name, dataAge, a.offline, a.anyLoading())

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabGoals:
		switch {
		case a.goalForm != nil:
			content = a.goalForm.View()
		case a.contribForm != nil:
			content = a.contribForm.View()
		default:
			content = a.renderGoalsTab(cw, contentH)
		}
	case tabProducts:
		if a.buyForm != nil {
			content = a.buyForm.View()
		} else {
			content = a.renderProductsTab(cw)
		}
	case tabHistory:
		content = a.renderHistoryTab(cw, contentH)
	case tabSimulator:
		content = a.renderSimulatorTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	if a.errText != "" {
		errStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Background)
		content = errStyle.Render(" "+truncStr(a.errText, cw-2)) + "\n" + content
	}
	if a.notice != "" {
		okStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Background)
		content = okStyle.Render(" "+truncStr(a.notice, cw-2)) + "\n" + content
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// Tab indices matching components.Tabs order.
const (
	tabOverview = iota
	tabGoals
	tabProducts
	tabHistory
	tabSimulator
	tabSettings
)

// ─── Snapshot fallbacks ─────────────────────────────────────────

func (a *App) cacheGoals() {
	if a.snap == nil || a.profile.CustomerID == "" {
		return
	}
	_ = a.snap.SaveGoals(a.profile.CustomerID, a.goals)
	_ = a.snap.SaveTracking(a.profile.CustomerID, a.tracking)
}

func (a *App) cacheHistory() {
	if a.snap == nil || a.profile.CustomerID == "" {
		return
	}
	_ = a.snap.SaveTransactions(a.profile.CustomerID, a.history)
}

func (a *App) loadGoalsFromSnapshot() {
	if a.snap == nil || a.profile.CustomerID == "" {
		return
	}
	if goals, err := a.snap.LoadGoals(a.profile.CustomerID); err == nil && len(goals) > 0 {
		a.goals = goals
	}
	if tracking, err := a.snap.LoadTracking(a.profile.CustomerID); err == nil && len(tracking) > 0 {
		a.tracking = tracking
	}
	if stamp, err := a.snap.RefreshedAt(a.profile.CustomerID); err == nil {
		a.refreshedAt = stamp
	}
}

func (a *App) loadHistoryFromSnapshot() {
	if a.snap == nil || a.profile.CustomerID == "" {
		return
	}
	if txs, err := a.snap.LoadTransactions(a.profile.CustomerID); err == nil && len(txs) > 0 {
		a.history = txs
	}
}

// ─── Helpers ────────────────────────────────────────────────────

// projectionFor computes the affordability projection for one goal using
// the tracked actual value as the current amount.
func (a App) projectionFor(g model.Goal) projection.Projection {
	in := projection.Inputs{
		TargetAmount:        g.TargetAmount,
		MonthlyContribution: g.MonthlyContribution,
	}
	in.TargetYear, in.TargetMonth = g.TargetYearMonth()
	for _, tr := range a.tracking {
		if tr.GoalID == g.ID {
			in.CurrentAmount = tr.ActualValueToDate
			break
		}
	}
	return projection.Compute(in, time.Now())
}

func (a App) trackingFor(goalID string) *model.GoalTracking {
	for i := range a.tracking {
		if a.tracking[i].GoalID == goalID {
			return &a.tracking[i]
		}
	}
	return nil
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space before the first tab
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW
		if i < len(components.Tabs)-1 {
			pos += 2 // separator between tabs
		}
	}
	return -1
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color
// so gaps between cards and empty lines keep the theme background.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
