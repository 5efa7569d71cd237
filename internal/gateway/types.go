package gateway

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/wealth/internal/model"
)

// envelope is the gateway's uniform response wrapper. Every consumer
// branches on Success and surfaces Messages/Errors joined as one string.
type envelope struct {
	Success      bool     `json:"success"`
	Messages     []string `json:"messages,omitempty"`
	Errors       []string `json:"errors,omitempty"`
	MessageCodes []string `json:"messageCodes,omitempty"`
}

// LoginRequest is the credential payload for POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginData is the authenticated session returned on login.
type LoginData struct {
	CustomerID      string `json:"customerId"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Token           string `json:"token"`
	KYCComplete     bool   `json:"kycComplete"`
	CRPComplete     bool   `json:"crpComplete"`
	RiskProfileType string `json:"riskProfileType"`
}

// Profile converts the login payload into the locally persisted snapshot.
func (d LoginData) Profile() model.Profile {
	p := model.Profile{
		CustomerID:  d.CustomerID,
		Name:        d.Name,
		Email:       d.Email,
		KYCComplete: d.KYCComplete,
		CRPComplete: d.CRPComplete,
	}
	if risk, ok := model.NormalizeRisk(d.RiskProfileType); ok {
		p.RiskProfile = risk
	}
	return p
}

// RegisterRequest is the payload for POST /v1/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
}

// ChangePasswordRequest is the payload for POST /v1/auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword    string `json:"currentPassword"`
	NewPassword        string `json:"newPassword"`
	ConfirmNewPassword string `json:"confirmNewPassword"`
}

// KYCRequest is the identity payload for POST /v1/kyc.
type KYCRequest struct {
	NIK string `json:"nik"`
	POB string `json:"pob"`
	DOB string `json:"dob"` // YYYY-MM-DD
}

type riskProfileRef struct {
	RiskProfileID   string `json:"riskProfileId"`
	RiskProfileName string `json:"riskProfileName"`
}

// KYCData is the verification outcome, including any pre-assigned risk tier.
type KYCData struct {
	KYCStatus       string          `json:"kycStatus"`
	RiskProfileName string          `json:"riskProfileName"`
	RiskProfile     *riskProfileRef `json:"riskProfile"`
	Insight         string          `json:"insight"`
}

// CRPAnswer pairs a questionnaire item with the chosen answer.
type CRPAnswer struct {
	QuestionID string `json:"questionId"`
	AnswerID   string `json:"answerId"`
}

// CRPResult is the scored questionnaire outcome from validate or save.
type CRPResult struct {
	TotalScore      int             `json:"totalScore"`
	RiskProfileName string          `json:"riskProfileName"`
	RiskProfile     *riskProfileRef `json:"riskProfile"`
	Insight         string          `json:"insight"`
}

// Risk resolves the assigned tier from either the flat or nested field.
func (r CRPResult) Risk() (model.RiskProfile, bool) {
	if risk, ok := model.NormalizeRisk(r.RiskProfileName); ok {
		return risk, true
	}
	if r.RiskProfile != nil {
		return model.NormalizeRisk(r.RiskProfile.RiskProfileName)
	}
	return "", false
}

type crpQuestionDTO struct {
	QuestionID   string `json:"questionId"`
	QuestionText string `json:"questionText"`
	Answers      []struct {
		AnswerID   string `json:"answerId"`
		AnswerText string `json:"answerText"`
		Score      int    `json:"score"`
	} `json:"answers"`
}

func (q crpQuestionDTO) toModel() model.CRPQuestion {
	out := model.CRPQuestion{ID: q.QuestionID, Text: q.QuestionText}
	for _, a := range q.Answers {
		out.Answers = append(out.Answers, model.CRPAnswerOption{
			ID:    a.AnswerID,
			Text:  a.AnswerText,
			Score: a.Score,
		})
	}
	return out
}

// RetirementGoalRequest creates or simulates a retirement goal. The target
// amount is derived server-side from monthly expenses and life expectancy.
type RetirementGoalRequest struct {
	GoalType       string  `json:"goalType"` // always "RETIREMENT"
	GoalName       string  `json:"goalName"`
	TargetAge      int     `json:"targetAge"`
	HopeLife       int     `json:"hopeLife"`
	MonthlyExpense float64 `json:"monthlyExpense"`
}

// OtherGoalRequest creates or simulates a non-retirement goal.
type OtherGoalRequest struct {
	GoalType     string  `json:"goalType"` // always "OTHER"
	GoalName     string  `json:"goalName"`
	TargetYear   int     `json:"targetYear"`
	TargetAmount float64 `json:"targetAmount"`
}

// EditRetirementGoalRequest updates a retirement goal's parameters.
type EditRetirementGoalRequest struct {
	TargetAge      int     `json:"targetAge"`
	HopeLife       int     `json:"hopeLife"`
	MonthlyExpense float64 `json:"monthlyExpense"`
}

// EditOtherGoalRequest updates a non-retirement goal's parameters.
type EditOtherGoalRequest struct {
	TargetYear   int     `json:"targetYear"`
	TargetAmount float64 `json:"targetAmount"`
}

type goalDTO struct {
	GoalID       string  `json:"goalId"`
	GoalType     string  `json:"goalType"`
	GoalName     string  `json:"goalName"`
	TargetAmount float64 `json:"targetAmount"`
	TargetDate   string  `json:"targetDate"` // YYYY-MM-DD
	CreatedAt    string  `json:"createdAt"`
}

func (g goalDTO) toModel() model.Goal {
	out := model.Goal{
		ID:           g.GoalID,
		Type:         model.GoalType(g.GoalType),
		Name:         g.GoalName,
		TargetAmount: decimal.NewFromFloat(g.TargetAmount),
	}
	out.Category = model.Categorize(out.Type, out.Name)
	out.TargetDate, _ = time.Parse("2006-01-02", g.TargetDate)
	if g.CreatedAt != "" {
		out.CreatedAt = parseFlexibleTime(g.CreatedAt)
	}
	return out
}

type trackingDTO struct {
	GoalID              string  `json:"goalId"`
	GoalType            string  `json:"goalType"`
	GoalName            string  `json:"goalName"`
	CreatedDate         string  `json:"createdDate"`
	TargetDate          string  `json:"targetDate"`
	TargetAmount        float64 `json:"targetAmount"`
	ExpectedValueToDate float64 `json:"expectedValueToDate"`
	ActualValueToDate   float64 `json:"actualValueToDate"`
	ShortfallPct        float64 `json:"shortfallPct"`
	Status              string  `json:"status"`
	StatusMessage       string  `json:"statusMessage"`
}

func (t trackingDTO) toModel() model.GoalTracking {
	return model.GoalTracking{
		GoalID:              t.GoalID,
		GoalType:            model.GoalType(t.GoalType),
		GoalName:            t.GoalName,
		CreatedDate:         parseFlexibleTime(t.CreatedDate),
		TargetDate:          parseFlexibleTime(t.TargetDate),
		TargetAmount:        decimal.NewFromFloat(t.TargetAmount),
		ExpectedValueToDate: decimal.NewFromFloat(t.ExpectedValueToDate),
		ActualValueToDate:   decimal.NewFromFloat(t.ActualValueToDate),
		ShortfallPct:        t.ShortfallPct,
		Status:              model.TrackingStatus(t.Status),
		StatusMessage:       t.StatusMessage,
	}
}

// SimulationPoint is one projected month in a goal simulation preview.
type SimulationPoint struct {
	Month    int     `json:"month"`
	Date     string  `json:"date"`
	Value    float64 `json:"value"`
	Progress float64 `json:"progress"`
}

// Simulation is the gateway's goal preview before creation is committed.
type Simulation struct {
	GoalID             string            `json:"goalId"`
	GoalType           string            `json:"goalType"`
	GoalName           string            `json:"goalName"`
	TargetAge          int               `json:"targetAge,omitempty"`
	TargetYear         int               `json:"targetYear,omitempty"`
	TargetAmountNeeded float64           `json:"targetAmountNeeded,omitempty"`
	Projections        []SimulationPoint `json:"projections"`
}

type productDTO struct {
	ProductID     string  `json:"productId"`
	ProductName   string  `json:"productName"`
	ProductType   string  `json:"productType"`
	ProductTypeID string  `json:"productTypeId"`
	NAVPrice      float64 `json:"navPrice"`
	CutOffTime    string  `json:"cutOffTime"`
	UpdatedAt     string  `json:"updatedAt"`
}

func (p productDTO) toModel() model.Product {
	return model.Product{
		ID:            p.ProductID,
		Name:          p.ProductName,
		Type:          p.ProductType,
		ProductTypeID: p.ProductTypeID,
		NAVPrice:      decimal.NewFromFloat(p.NAVPrice),
		CutOffTime:    p.CutOffTime,
		UpdatedAt:     parseFlexibleTime(p.UpdatedAt),
	}
}

// BuyRequest places a buy order against a goal.
type BuyRequest struct {
	CustomerID string  `json:"customerId"`
	ProductID  string  `json:"productId"`
	GoalID     string  `json:"goalId"`
	Amount     float64 `json:"amount"`
}

type buyData struct {
	TransactionID string `json:"transactionId"`
}

type transactionDTO struct {
	TransactionID string  `json:"transactionId"`
	Date          string  `json:"date"`
	Type          string  `json:"type"`
	ProductName   string  `json:"productName"`
	Amount        float64 `json:"amount"`
	Units         float64 `json:"units"`
	NAVPrice      float64 `json:"navPrice"`
	Platform      string  `json:"platform"`
	Status        string  `json:"status"`
}

func (t transactionDTO) toModel() model.Transaction {
	return model.Transaction{
		ID:          t.TransactionID,
		Date:        parseFlexibleTime(t.Date),
		Type:        t.Type,
		ProductName: t.ProductName,
		Amount:      decimal.NewFromFloat(t.Amount),
		Units:       decimal.NewFromFloat(t.Units),
		NAVPrice:    decimal.NewFromFloat(t.NAVPrice),
		Platform:    t.Platform,
		Status:      model.TransactionStatus(t.Status),
	}
}

type summaryDTO struct {
	TotalValue float64 `json:"totalValue"`
	Breakdown  []struct {
		ProductID string  `json:"productId"`
		Units     float64 `json:"units"`
		NAV       float64 `json:"nav"`
		Value     float64 `json:"value"`
	} `json:"breakdown"`
}

func (s summaryDTO) toModel() model.DashboardSummary {
	out := model.DashboardSummary{TotalValue: decimal.NewFromFloat(s.TotalValue)}
	for _, b := range s.Breakdown {
		out.Breakdown = append(out.Breakdown, model.HoldingBreakdown{
			ProductID: b.ProductID,
			Units:     decimal.NewFromFloat(b.Units),
			NAV:       decimal.NewFromFloat(b.NAV),
			Value:     decimal.NewFromFloat(b.Value),
		})
	}
	return out
}

type trendDTO struct {
	Points []struct {
		Date  string  `json:"date"`
		Value float64 `json:"value"`
	} `json:"points"`
}

func (t trendDTO) toModel() []model.TrendPoint {
	out := make([]model.TrendPoint, 0, len(t.Points))
	for _, p := range t.Points {
		out = append(out, model.TrendPoint{
			Date:  parseFlexibleTime(p.Date),
			Value: decimal.NewFromFloat(p.Value),
		})
	}
	return out
}

// parseFlexibleTime accepts the gateway's two date encodings: RFC 3339 and
// bare YYYY-MM-DD. Unparseable input yields the zero time.
func parseFlexibleTime(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	t, _ := time.Parse("2006-01-02", s)
	return t
}
