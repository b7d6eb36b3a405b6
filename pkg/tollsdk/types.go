package tollsdk

// ============================================================================
// Token Types
// ============================================================================

// TokenRequest is the JSON body of the POST /v1/token endpoint. GrantType is
// "password" for a fresh pair or "refresh_token" when renewing access.
type TokenRequest struct {
	// GrantType selects the issuance flow ("password" or "refresh_token")
	GrantType string `json:"grant_type"`

	// UserID is the subject to issue for (password grant only)
	UserID string `json:"user_id,omitempty"`

	// RefreshToken is a previously issued refresh token (refresh_token grant only)
	RefreshToken string `json:"refresh_token,omitempty"`
}

// TokenResponse is returned from POST /v1/token for both grant types. A
// refresh_token grant returns only a new access token; the refresh token it
// was exchanged with stays valid until its own expiry.
type TokenResponse struct {
	// AccessToken is the JWT used to authenticate API requests
	AccessToken string `json:"access_token"`

	// RefreshToken is the long-lived JWT used to obtain new access tokens
	RefreshToken string `json:"refresh_token,omitempty"`

	// TokenType is always "Bearer"
	TokenType string `json:"token_type"`

	// ExpiresIn is the access token lifetime in seconds
	ExpiresIn int `json:"expires_in"`
}

// ============================================================================
// Authorizer Types
// ============================================================================

// AuthorizeRequest is the JSON body of the POST /v1/authorize endpoint,
// mirroring the event shape an API gateway hands to a token authorizer.
type AuthorizeRequest struct {
	// AuthorizationToken is the raw Authorization header value ("Bearer ...")
	AuthorizationToken string `json:"authorizationToken"`

	// MethodArn identifies the gateway method being invoked
	MethodArn string `json:"methodArn"`
}

// PolicyStatement is a single statement of an IAM-style policy document.
type PolicyStatement struct {
	Action   string `json:"Action"`
	Effect   string `json:"Effect"`
	Resource string `json:"Resource"`
}

// PolicyDocument is an IAM-style policy document carried in the authorizer
// response.
type PolicyDocument struct {
	Version   string            `json:"Version"`
	Statement []PolicyStatement `json:"Statement"`
}

// AuthorizeResponse is the authorizer verdict. The endpoint always responds
// 200; the decision is carried entirely in the policy document's Effect.
type AuthorizeResponse struct {
	// PrincipalID is the verified subject on Allow, "user" on Deny
	PrincipalID string `json:"principalId"`

	// PolicyDocument grants or denies execute-api:Invoke on the method
	PolicyDocument PolicyDocument `json:"policyDocument"`
}

// ============================================================================
// Payment Types
// ============================================================================

// CreatePaymentRequest is the JSON body of POST /v1/payments.
type CreatePaymentRequest struct {
	// Amount is the payment amount; must be greater than zero
	Amount float64 `json:"amount"`

	// Currency is one of "USD", "EUR", "MXN"
	Currency string `json:"currency"`

	// Method is one of "credit_card", "debit_card", "transfer"
	Method string `json:"method"`

	// Description is optional free text (max 256 chars)
	Description string `json:"description,omitempty"`
}

// UpdatePaymentStatusRequest is the JSON body of PATCH /v1/payments/{id}.
type UpdatePaymentStatusRequest struct {
	// Status is one of "pending", "processing", "completed", "failed", "refunded"
	Status string `json:"status"`
}

// PaymentResponse represents a stored payment.
type PaymentResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Method      string  `json:"method"`
	Status      string  `json:"status"`
	Description string  `json:"description,omitempty"`
	CreatedAt   string  `json:"created_at"` // RFC3339 timestamp
	UpdatedAt   string  `json:"updated_at"` // RFC3339 timestamp
}

// ListPaymentsResponse contains the caller's payments, newest first.
type ListPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// ============================================================================
// Utility Types
// ============================================================================

// HelloResponse is the response of the GET /v1/hello connectivity check.
type HelloResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// StatsRequest is the JSON body of POST /v1/stats.
type StatsRequest struct {
	// Values is the sample to summarise; must be non-empty
	Values []float64 `json:"values"`
}

// StatsResponse carries summary statistics for the submitted sample.
type StatsResponse struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check
// endpoints. Used by both /livez and /readyz (readyz includes Checks).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the parameter/payment store connection status
	Database string `json:"database"`

	// Signer indicates whether the token signing secret is reachable
	Signer string `json:"signer"`
}

// ============================================================================
// Error Response Type
// ============================================================================

// ErrorResponse is the wire shape of every error this service returns. Used
// internally for parsing HTTP error responses; client code should use the
// APIError type from errors.go instead.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g., "invalid_request")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}
