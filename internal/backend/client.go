package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"codeberg.org/skillsprint/webfront/internal/session"
	"golang.org/x/time/rate"
)

const (
	// bound on the identity round-trip; a hung call must not leave a
	// session loading forever
	requestTimeout = 10 * time.Second
)

// shared HTTP client for backend GraphQL calls
var backendHTTPClient = &http.Client{
	Timeout: requestTimeout,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// rate limiter for backend calls (50 requests/second with burst capacity of 10)
var backendRateLimiter = rate.NewLimiter(50, 10)

// Client talks to the external GraphQL backend. It is the only component
// that knows the backend's wire shapes; everything else consumes session
// and catalog types.
type Client struct {
	url        string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// creates a backend client for the given GraphQL endpoint
func NewClient(url string) *Client {
	return &Client{
		url:        url,
		httpClient: backendHTTPClient,
		limiter:    backendRateLimiter,
	}
}

// Me resolves a bearer token to its current identity. Returns
// session.ErrUnauthorized only on an explicit 401/403; a 2xx with a missing
// or malformed payload is session.ErrEmptyIdentity; anything else is a
// transient transport error. This classification is what the store's
// preserve-vs-clear asymmetry depends on.
func (c *Client) Me(ctx context.Context, token string) (*session.User, error) {
	env, err := c.do(ctx, token, identityQuery, nil)
	if err != nil {
		return nil, err
	}

	if len(env.Errors) > 0 {
		// GraphQL-level errors on the identity query are a schema-side
		// problem, not a rejection
		return nil, fmt.Errorf("%w: %s", session.ErrEmptyIdentity, env.Errors[0].Message)
	}

	var payload struct {
		Me *userPayload `json:"me"`
	}
	if err := decodeData(env, &payload); err != nil || payload.Me == nil || payload.Me.ID == "" {
		return nil, session.ErrEmptyIdentity
	}

	return payload.Me.toUser(), nil
}

// Login runs the credentials mutation, returning the user and bearer token
// on success
func (c *Client) Login(ctx context.Context, email, password string) (*session.User, string, error) {
	env, err := c.do(ctx, "", loginMutation, map[string]any{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, "", err
	}

	if len(env.Errors) > 0 {
		return nil, "", fmt.Errorf("%w: %s", ErrInvalidCredentials, env.Errors[0].Message)
	}

	var payload struct {
		Login *authPayload `json:"login"`
	}
	if err := decodeData(env, &payload); err != nil || payload.Login == nil || payload.Login.User == nil {
		return nil, "", fmt.Errorf("malformed login response")
	}

	return payload.Login.User.toUser(), payload.Login.AccessToken, nil
}

// Register runs the account creation mutation
func (c *Client) Register(ctx context.Context, name, email, password string) (*session.User, string, error) {
	env, err := c.do(ctx, "", registerMutation, map[string]any{
		"name":     name,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, "", err
	}

	if len(env.Errors) > 0 {
		msg := env.Errors[0].Message
		if strings.Contains(strings.ToLower(msg), "unique constraint") ||
			strings.Contains(strings.ToLower(msg), "already exists") {
			return nil, "", ErrDuplicateAccount
		}
		return nil, "", fmt.Errorf("registration rejected: %s", msg)
	}

	var payload struct {
		Register *authPayload `json:"register"`
	}
	if err := decodeData(env, &payload); err != nil || payload.Register == nil || payload.Register.User == nil {
		return nil, "", fmt.Errorf("malformed register response")
	}

	return payload.Register.User.toUser(), payload.Register.AccessToken, nil
}

// DashboardStats fetches the admin dashboard aggregates
func (c *Client) DashboardStats(ctx context.Context, token string) (*DashboardStats, error) {
	env, err := c.do(ctx, token, dashboardStatsQuery, nil)
	if err != nil {
		return nil, err
	}

	if len(env.Errors) > 0 {
		return nil, fmt.Errorf("dashboard stats query failed: %s", env.Errors[0].Message)
	}

	var payload struct {
		DashboardStats *DashboardStats `json:"dashboardStats"`
	}
	if err := decodeData(env, &payload); err != nil || payload.DashboardStats == nil {
		return nil, fmt.Errorf("malformed dashboard stats response")
	}

	return payload.DashboardStats, nil
}

// Courses fetches the public catalog
func (c *Client) Courses(ctx context.Context) ([]Course, error) {
	env, err := c.do(ctx, "", coursesQuery, nil)
	if err != nil {
		return nil, err
	}

	if len(env.Errors) > 0 {
		return nil, fmt.Errorf("courses query failed: %s", env.Errors[0].Message)
	}

	var payload struct {
		Courses []Course `json:"courses"`
	}
	if err := decodeData(env, &payload); err != nil {
		return nil, fmt.Errorf("malformed courses response")
	}

	return payload.Courses, nil
}

// Course fetches one catalog entry by slug
func (c *Client) Course(ctx context.Context, slug string) (*Course, error) {
	env, err := c.do(ctx, "", courseQuery, map[string]any{"slug": slug})
	if err != nil {
		return nil, err
	}

	if len(env.Errors) > 0 {
		return nil, fmt.Errorf("course query failed: %s", env.Errors[0].Message)
	}

	var payload struct {
		Course *Course `json:"course"`
	}
	if err := decodeData(env, &payload); err != nil || payload.Course == nil {
		return nil, fmt.Errorf("course not found")
	}

	return payload.Course, nil
}

// CreateLesson adds a lesson to a course, returning the new lesson ID
func (c *Client) CreateLesson(ctx context.Context, token, courseID, title, videoURL, avatar string) (string, error) {
	env, err := c.do(ctx, token, createLessonMutation, map[string]any{
		"courseId": courseID,
		"title":    title,
		"videoUrl": videoURL,
		"avatar":   avatar,
	})
	if err != nil {
		return "", err
	}

	if len(env.Errors) > 0 {
		return "", fmt.Errorf("create lesson rejected: %s", env.Errors[0].Message)
	}

	var payload struct {
		CreateLesson *struct {
			ID string `json:"id"`
		} `json:"createLesson"`
	}
	if err := decodeData(env, &payload); err != nil || payload.CreateLesson == nil {
		return "", fmt.Errorf("malformed create lesson response")
	}

	return payload.CreateLesson.ID, nil
}

// ReorderLessons rewrites the lesson ordering for a course
func (c *Client) ReorderLessons(ctx context.Context, token string, ids []string) error {
	env, err := c.do(ctx, token, reorderLessonsMutation, map[string]any{"ids": ids})
	if err != nil {
		return err
	}

	if len(env.Errors) > 0 {
		return fmt.Errorf("reorder lessons rejected: %s", env.Errors[0].Message)
	}

	return nil
}

// UpdateLesson applies a partial lesson update
func (c *Client) UpdateLesson(ctx context.Context, token string, update LessonUpdate) error {
	env, err := c.do(ctx, token, updateLessonMutation, map[string]any{
		"id":       update.ID,
		"order":    update.Order,
		"title":    update.Title,
		"videoUrl": update.VideoURL,
		"avatar":   update.Avatar,
		"visible":  update.Visible,
	})
	if err != nil {
		return err
	}

	if len(env.Errors) > 0 {
		return fmt.Errorf("update lesson rejected: %s", env.Errors[0].Message)
	}

	return nil
}

// CreateQuiz adds a quiz to a course. The questions payload travels as a
// JSON-encoded string, matching the backend schema.
func (c *Client) CreateQuiz(ctx context.Context, token, courseID, title, questionsJSON string) (string, error) {
	env, err := c.do(ctx, token, createQuizMutation, map[string]any{
		"courseId":  courseID,
		"title":     title,
		"questions": questionsJSON,
	})
	if err != nil {
		return "", err
	}

	if len(env.Errors) > 0 {
		return "", fmt.Errorf("create quiz rejected: %s", env.Errors[0].Message)
	}

	var payload struct {
		CreateQuiz string `json:"createQuiz"`
	}
	if err := decodeData(env, &payload); err != nil || payload.CreateQuiz == "" {
		return "", fmt.Errorf("malformed create quiz response")
	}

	return payload.CreateQuiz, nil
}

// ReorderQuizzes rewrites the quiz ordering for a course
func (c *Client) ReorderQuizzes(ctx context.Context, token string, ids []string) error {
	env, err := c.do(ctx, token, reorderQuizzesMutation, map[string]any{"ids": ids})
	if err != nil {
		return err
	}

	if len(env.Errors) > 0 {
		return fmt.Errorf("reorder quizzes rejected: %s", env.Errors[0].Message)
	}

	return nil
}

// Promotions fetches the active discount codes
func (c *Client) Promotions(ctx context.Context) ([]Promotion, error) {
	env, err := c.do(ctx, "", promotionsQuery, nil)
	if err != nil {
		return nil, err
	}

	if len(env.Errors) > 0 {
		return nil, fmt.Errorf("promotions query failed: %s", env.Errors[0].Message)
	}

	var payload struct {
		Promotions []Promotion `json:"promotions"`
	}
	if err := decodeData(env, &payload); err != nil {
		return nil, fmt.Errorf("malformed promotions response")
	}

	return payload.Promotions, nil
}

// CreatePromotion registers a new discount code
func (c *Client) CreatePromotion(ctx context.Context, token, code string, discountPercentage int, expiresAt string) (*Promotion, error) {
	env, err := c.do(ctx, token, createPromotionMutation, map[string]any{
		"code":               code,
		"discountPercentage": discountPercentage,
		"expiresAt":          expiresAt,
	})
	if err != nil {
		return nil, err
	}

	if len(env.Errors) > 0 {
		return nil, fmt.Errorf("create promotion rejected: %s", env.Errors[0].Message)
	}

	var payload struct {
		CreatePromotion *Promotion `json:"createPromotion"`
	}
	if err := decodeData(env, &payload); err != nil || payload.CreatePromotion == nil {
		return nil, fmt.Errorf("malformed create promotion response")
	}

	return payload.CreatePromotion, nil
}

// UpdatePromotion applies a partial promotion update
func (c *Client) UpdatePromotion(ctx context.Context, token, id string, update PromotionUpdate) (*Promotion, error) {
	env, err := c.do(ctx, token, updatePromotionMutation, map[string]any{
		"id":                 id,
		"code":               update.Code,
		"discountPercentage": update.DiscountPercentage,
		"expiresAt":          update.ExpiresAt,
	})
	if err != nil {
		return nil, err
	}

	if len(env.Errors) > 0 {
		return nil, fmt.Errorf("update promotion rejected: %s", env.Errors[0].Message)
	}

	var payload struct {
		UpdatePromotion *Promotion `json:"updatePromotion"`
	}
	if err := decodeData(env, &payload); err != nil || payload.UpdatePromotion == nil {
		return nil, fmt.Errorf("malformed update promotion response")
	}

	return payload.UpdatePromotion, nil
}

// DeletePromotion removes a discount code
func (c *Client) DeletePromotion(ctx context.Context, token, id string) error {
	env, err := c.do(ctx, token, deletePromotionMutation, map[string]any{"id": id})
	if err != nil {
		return err
	}

	if len(env.Errors) > 0 {
		return fmt.Errorf("delete promotion rejected: %s", env.Errors[0].Message)
	}

	return nil
}

// posts one GraphQL document and returns the decoded envelope. 401/403 map
// to session.ErrUnauthorized; other non-2xx statuses are transient.
func (c *Client) do(ctx context.Context, token, query string, variables map[string]any) (*graphqlEnvelope, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait failed: %w", err)
	}

	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // response body close

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("%w: backend returned %d", session.ErrUnauthorized, resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("backend returned status %d", resp.StatusCode)
	}

	var env graphqlEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &env, nil
}

// re-marshals the data object into the caller's typed payload
func decodeData(env *graphqlEnvelope, out any) error {
	if env.Data == nil {
		return fmt.Errorf("missing data object")
	}

	raw, err := json.Marshal(env.Data)
	if err != nil {
		return err
	}

	return json.Unmarshal(raw, out)
}
