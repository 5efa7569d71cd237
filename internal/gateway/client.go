// Package gateway provides the REST client for the wealth-management
// backend. All business computation (risk scoring, NAV pricing, order
// settlement, goal tracking) happens server-side; this client forwards
// requests and decodes the uniform response envelope.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/theirongolddev/wealth/internal/model"
)

const (
	// DefaultBaseURL is the local development gateway address.
	DefaultBaseURL = "http://localhost:8080"

	requestTimeout = 15 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

var (
	// ErrUnauthorized indicates the bearer token is missing, expired, or invalid.
	ErrUnauthorized = errors.New("gateway: unauthorized (log in again)")
	// ErrRateLimited indicates the gateway throttled the request.
	ErrRateLimited = errors.New("gateway: rate limited")
)

// APIError is a business failure reported inside a well-formed envelope
// (success=false) or a non-2xx status carrying gateway messages.
type APIError struct {
	StatusCode int
	Messages   []string
}

func (e *APIError) Error() string {
	if len(e.Messages) > 0 {
		return "gateway: " + strings.Join(e.Messages, ", ")
	}
	return fmt.Sprintf("gateway: request failed with status %d", e.StatusCode)
}

// Client calls the wealth gateway. The zero value is not usable; construct
// with NewClient and attach credentials with SetAuth after login.
type Client struct {
	baseURL string
	token   string
	userID  string
	http    *http.Client
}

// NewClient creates a client for the given base URL, falling back to
// DefaultBaseURL when empty.
func NewClient(baseURL string) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
	}
}

// SetAuth attaches the bearer token and customer ID sent on authenticated
// requests.
func (c *Client) SetAuth(token, customerID string) {
	c.token = token
	c.userID = customerID
}

// Login authenticates and returns the session data including the bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginData, error) {
	var data LoginData
	err := c.do(ctx, http.MethodPost, "/v1/auth/login", LoginRequest{Email: email, Password: password}, &data)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// Register creates a new customer account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/v1/auth/register", req, nil)
}

// ChangePassword updates the authenticated customer's password.
func (c *Client) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	return c.do(ctx, http.MethodPost, "/v1/auth/change-password", req, nil)
}

// SubmitKYC submits identity details for verification.
func (c *Client) SubmitKYC(ctx context.Context, req KYCRequest) (*KYCData, error) {
	var data KYCData
	if err := c.do(ctx, http.MethodPost, "/v1/kyc", req, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// CRPQuestions fetches the risk-profiling questionnaire.
func (c *Client) CRPQuestions(ctx context.Context) ([]model.CRPQuestion, error) {
	var dtos []crpQuestionDTO
	if err := c.do(ctx, http.MethodGet, "/v1/crp/questions", nil, &dtos); err != nil {
		return nil, err
	}
	questions := make([]model.CRPQuestion, 0, len(dtos))
	for _, q := range dtos {
		questions = append(questions, q.toModel())
	}
	return questions, nil
}

// ValidateCRPAnswers scores the questionnaire without persisting it.
func (c *Client) ValidateCRPAnswers(ctx context.Context, answers []CRPAnswer) (*CRPResult, error) {
	return c.postCRP(ctx, "/v1/crp/answers/validate", answers)
}

// SaveCRPAnswers persists the questionnaire and returns the final scoring.
func (c *Client) SaveCRPAnswers(ctx context.Context, answers []CRPAnswer) (*CRPResult, error) {
	return c.postCRP(ctx, "/v1/crp/answers/save", answers)
}

func (c *Client) postCRP(ctx context.Context, path string, answers []CRPAnswer) (*CRPResult, error) {
	body := struct {
		Answers []CRPAnswer `json:"answers"`
	}{Answers: answers}

	var data CRPResult
	if err := c.do(ctx, http.MethodPost, path, body, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// CreateRetirementGoal creates a retirement goal; the target amount is
// derived server-side.
func (c *Client) CreateRetirementGoal(ctx context.Context, req RetirementGoalRequest) (*model.Goal, error) {
	return c.goalMutation(ctx, http.MethodPost, "/v1/goals/createdGoalsRetirement", req)
}

// CreateOtherGoal creates a non-retirement goal.
func (c *Client) CreateOtherGoal(ctx context.Context, req OtherGoalRequest) (*model.Goal, error) {
	return c.goalMutation(ctx, http.MethodPost, "/v1/goals/createdGoalsOther", req)
}

// EditRetirementGoal updates a retirement goal's parameters.
func (c *Client) EditRetirementGoal(ctx context.Context, goalID string, req EditRetirementGoalRequest) (*model.Goal, error) {
	return c.goalMutation(ctx, http.MethodPut, "/v1/goals/editGoalsRetirement/"+url.PathEscape(goalID), req)
}

// EditOtherGoal updates a non-retirement goal's parameters.
func (c *Client) EditOtherGoal(ctx context.Context, goalID string, req EditOtherGoalRequest) (*model.Goal, error) {
	return c.goalMutation(ctx, http.MethodPut, "/v1/goals/editGoalsOther/"+url.PathEscape(goalID), req)
}

func (c *Client) goalMutation(ctx context.Context, method, path string, body any) (*model.Goal, error) {
	var dto goalDTO
	if err := c.do(ctx, method, path, body, &dto); err != nil {
		return nil, err
	}
	goal := dto.toModel()
	return &goal, nil
}

// SimulateRetirementGoal previews a retirement goal without creating it.
func (c *Client) SimulateRetirementGoal(ctx context.Context, req RetirementGoalRequest) (*Simulation, error) {
	var sim Simulation
	if err := c.do(ctx, http.MethodPost, "/v1/goals/simulateCreatedGoalsRetirement", req, &sim); err != nil {
		return nil, err
	}
	return &sim, nil
}

// SimulateOtherGoal previews a non-retirement goal without creating it.
func (c *Client) SimulateOtherGoal(ctx context.Context, req OtherGoalRequest) (*Simulation, error) {
	var sim Simulation
	if err := c.do(ctx, http.MethodPost, "/v1/goals/simulateCreatedGoalsOther", req, &sim); err != nil {
		return nil, err
	}
	return &sim, nil
}

// ListGoals returns the customer's goals.
func (c *Client) ListGoals(ctx context.Context) ([]model.Goal, error) {
	var dtos []goalDTO
	if err := c.do(ctx, http.MethodGet, "/v1/goals/listGoals", nil, &dtos); err != nil {
		return nil, err
	}
	goals := make([]model.Goal, 0, len(dtos))
	for _, g := range dtos {
		goals = append(goals, g.toModel())
	}
	return goals, nil
}

// GoalDetail returns one goal by ID.
func (c *Client) GoalDetail(ctx context.Context, goalID string) (*model.Goal, error) {
	var dto goalDTO
	if err := c.do(ctx, http.MethodGet, "/v1/goals/detailGoals/"+url.PathEscape(goalID), nil, &dto); err != nil {
		return nil, err
	}
	goal := dto.toModel()
	return &goal, nil
}

// TrackingGoals returns the server-computed progress rows for all goals.
// Some gateway builds route this under a double slash; retry once with the
// variant path before giving up.
func (c *Client) TrackingGoals(ctx context.Context) ([]model.GoalTracking, error) {
	var dtos []trackingDTO
	err := c.do(ctx, http.MethodGet, "/v1/goals/trackingGoals", nil, &dtos)
	if err != nil {
		if fallbackErr := c.do(ctx, http.MethodGet, "/v1/goals//trackingGoals", nil, &dtos); fallbackErr != nil {
			return nil, err
		}
	}
	rows := make([]model.GoalTracking, 0, len(dtos))
	for _, t := range dtos {
		rows = append(rows, t.toModel())
	}
	return rows, nil
}

// ProductsByRisk returns the catalog for a risk tier.
func (c *Client) ProductsByRisk(ctx context.Context, risk model.RiskProfile) ([]model.Product, error) {
	var dtos []productDTO
	path := "/v1/products/show-product/" + url.PathEscape(string(risk))
	if err := c.do(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}
	products := make([]model.Product, 0, len(dtos))
	for _, p := range dtos {
		products = append(products, p.toModel())
	}
	return products, nil
}

// Buy places a buy order and returns the transaction ID.
func (c *Client) Buy(ctx context.Context, req BuyRequest) (string, error) {
	var data buyData
	if err := c.do(ctx, http.MethodPost, "/v1/transaction/buy", req, &data); err != nil {
		return "", err
	}
	return data.TransactionID, nil
}

// TransactionHistory returns the customer's order history.
func (c *Client) TransactionHistory(ctx context.Context, customerID string) ([]model.Transaction, error) {
	var dtos []transactionDTO
	path := "/v1/transaction/history/" + url.PathEscape(customerID)
	if err := c.do(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}
	txs := make([]model.Transaction, 0, len(dtos))
	for _, t := range dtos {
		txs = append(txs, t.toModel())
	}
	return txs, nil
}

// DashboardSummary returns the aggregate portfolio snapshot.
func (c *Client) DashboardSummary(ctx context.Context, customerID string) (*model.DashboardSummary, error) {
	var dto summaryDTO
	path := "/v1/dashboard/summary?customerId=" + url.QueryEscape(customerID)
	if err := c.do(ctx, http.MethodGet, path, nil, &dto); err != nil {
		return nil, err
	}
	summary := dto.toModel()
	return &summary, nil
}

// DashboardTrend returns the portfolio value series for the last N days.
func (c *Client) DashboardTrend(ctx context.Context, customerID string, days int) ([]model.TrendPoint, error) {
	var dto trendDTO
	path := fmt.Sprintf("/v1/dashboard/trend?customerId=%s&days=%d", url.QueryEscape(customerID), days)
	if err := c.do(ctx, http.MethodGet, path, nil, &dto); err != nil {
		return nil, err
	}
	return dto.toModel(), nil
}

// do performs one request/response cycle: marshal the body, attach auth and
// tracing headers, decode the envelope, and unwrap data into out.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gateway: encoding request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("gateway: creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.userID != "" {
		req.Header.Set("X-User-Id", c.userID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gateway: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return ErrRateLimited
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("gateway: reading response: %w", err)
	}

	var env struct {
		envelope
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return &APIError{StatusCode: resp.StatusCode}
		}
		return fmt.Errorf("gateway: parsing response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		return &APIError{
			StatusCode: resp.StatusCode,
			Messages:   append(env.Messages, env.Errors...),
		}
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("gateway: parsing %s response: %w", path, err)
	}
	return nil
}
