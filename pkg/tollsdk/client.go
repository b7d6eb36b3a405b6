package tollsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SDKClient is a client for the tollgate token service. It covers the token,
// authorizer, payment and health endpoints.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new tollgate client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// url builds a complete URL by appending the path to the base URL.
func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

// ============================================================================
// Token Endpoint
// ============================================================================

// PasswordGrant issues a fresh access/refresh token pair for the subject.
func (c *SDKClient) PasswordGrant(ctx context.Context, userID string) (*TokenResponse, error) {
	return c.requestToken(ctx, TokenRequest{
		GrantType: "password",
		UserID:    userID,
	})
}

// RefreshGrant exchanges a refresh token for a new access token. The refresh
// token is not rotated; the same token stays usable until it expires.
func (c *SDKClient) RefreshGrant(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	return c.requestToken(ctx, TokenRequest{
		GrantType:    "refresh_token",
		RefreshToken: refreshToken,
	})
}

func (c *SDKClient) requestToken(ctx context.Context, reqBody TokenRequest) (*TokenResponse, error) {
	var tokenResp TokenResponse
	if err := c.postJSON(ctx, "/v1/token", "", reqBody, &tokenResp, http.StatusOK); err != nil {
		return nil, err
	}
	return &tokenResp, nil
}

// ============================================================================
// Authorizer Endpoint
// ============================================================================

// Authorize submits a bearer credential and method ARN to the authorizer and
// returns its policy verdict. The endpoint always answers 200; inspect the
// returned policy's Effect for the decision.
func (c *SDKClient) Authorize(ctx context.Context, authorizationToken, methodArn string) (*AuthorizeResponse, error) {
	reqBody := AuthorizeRequest{
		AuthorizationToken: authorizationToken,
		MethodArn:          methodArn,
	}

	var authResp AuthorizeResponse
	if err := c.postJSON(ctx, "/v1/authorize", "", reqBody, &authResp, http.StatusOK); err != nil {
		return nil, err
	}
	return &authResp, nil
}

// ============================================================================
// Payment Endpoints
// ============================================================================

// CreatePayment registers a new payment for the token's subject.
func (c *SDKClient) CreatePayment(ctx context.Context, accessToken string, req CreatePaymentRequest) (*PaymentResponse, error) {
	var payment PaymentResponse
	if err := c.postJSON(ctx, "/v1/payments", accessToken, req, &payment, http.StatusCreated); err != nil {
		return nil, err
	}
	return &payment, nil
}

// GetPayment fetches a payment by id. Returns ErrNotFound-coded APIError for
// payments that don't exist or belong to another subject.
func (c *SDKClient) GetPayment(ctx context.Context, accessToken, paymentID string) (*PaymentResponse, error) {
	var payment PaymentResponse
	if err := c.getJSON(ctx, "/v1/payments/"+paymentID, accessToken, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// ListPayments returns the subject's payments, newest first. An optional
// status narrows the list to payments in that status.
func (c *SDKClient) ListPayments(ctx context.Context, accessToken string, status ...string) (*ListPaymentsResponse, error) {
	path := "/v1/payments"
	if len(status) > 0 && status[0] != "" {
		path += "?status=" + url.QueryEscape(status[0])
	}

	var list ListPaymentsResponse
	if err := c.getJSON(ctx, path, accessToken, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// UpdatePaymentStatus transitions a payment to a new status.
func (c *SDKClient) UpdatePaymentStatus(ctx context.Context, accessToken, paymentID, status string) (*PaymentResponse, error) {
	reqBody := UpdatePaymentStatusRequest{Status: status}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPatch,
		c.url("/v1/payments/"+paymentID),
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	var payment PaymentResponse
	if err := decodeJSON(resp, &payment, http.StatusOK); err != nil {
		return nil, err
	}
	return &payment, nil
}

// ============================================================================
// Utility Endpoints
// ============================================================================

// Hello calls the connectivity check endpoint.
func (c *SDKClient) Hello(ctx context.Context) (*HelloResponse, error) {
	var hello HelloResponse
	if err := c.getJSON(ctx, "/v1/hello", "", &hello); err != nil {
		return nil, err
	}
	return &hello, nil
}

// Stats submits a numeric sample and returns its summary statistics.
func (c *SDKClient) Stats(ctx context.Context, values []float64) (*StatsResponse, error) {
	var stats StatsResponse
	if err := c.postJSON(ctx, "/v1/stats", "", StatsRequest{Values: values}, &stats, http.StatusOK); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ============================================================================
// Health Endpoints
// ============================================================================

// Livez checks service liveness.
func (c *SDKClient) Livez(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.getJSON(ctx, "/livez", "", &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// Readyz checks service readiness, including store and signer checks.
func (c *SDKClient) Readyz(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.getJSON(ctx, "/readyz", "", &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// ============================================================================
// Request Helpers
// ============================================================================

func (c *SDKClient) postJSON(
	ctx context.Context,
	path, accessToken string,
	reqBody, target any,
	expectedStatus int,
) error {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	return decodeJSON(resp, target, expectedStatus)
}

func (c *SDKClient) getJSON(ctx context.Context, path, accessToken string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	return decodeJSON(resp, target, http.StatusOK)
}

// decodeJSON decodes a JSON response into the target, returning a typed
// *APIError when the status code does not match the expected one.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
