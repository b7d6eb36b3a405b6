package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tollgate-io/tollgate/pkg/tollsdk"
)

func TestPaymentsRequireAuth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/v1/payments", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Header().Get("WWW-Authenticate"), "Bearer")

	rec = env.do(t, http.MethodGet, "/v1/payments", "not-a-token", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPaymentsBearerSchemeIsStrict(t *testing.T) {
	env := newTestEnv(t)
	tokens := env.issueTokens(t, "user-42")

	// A valid token behind a lowercase scheme or a doubled separator must
	// not authenticate.
	for _, header := range []string{
		"bearer " + tokens.AccessToken,
		"Bearer  " + tokens.AccessToken,
	} {
		req := httptest.NewRequest(http.MethodGet, "/v1/payments", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestPaymentsCreateAndFetch(t *testing.T) {
	env := newTestEnv(t)
	tokens := env.issueTokens(t, "user-42")

	rec := env.do(t, http.MethodPost, "/v1/payments", tokens.AccessToken, tollsdk.CreatePaymentRequest{
		Amount:      120.00,
		Currency:    "EUR",
		Method:      "transfer",
		Description: "invoice 8841",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeBody[tollsdk.PaymentResponse](t, rec)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "user-42", created.UserID)
	require.Equal(t, "pending", created.Status)
	require.NotEmpty(t, created.CreatedAt)

	rec = env.do(t, http.MethodGet, "/v1/payments/"+created.ID, tokens.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	fetched := decodeBody[tollsdk.PaymentResponse](t, rec)
	require.Equal(t, created.ID, fetched.ID)
}

func TestPaymentsValidationError(t *testing.T) {
	env := newTestEnv(t)
	tokens := env.issueTokens(t, "user-42")

	rec := env.do(t, http.MethodPost, "/v1/payments", tokens.AccessToken, tollsdk.CreatePaymentRequest{
		Amount:   -1,
		Currency: "USD",
		Method:   "transfer",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody[tollsdk.ErrorResponse](t, rec)
	require.Equal(t, tollsdk.ErrorCodeInvalidRequest, body.Error)
}

func TestPaymentsOwnershipIsolation(t *testing.T) {
	env := newTestEnv(t)
	alice := env.issueTokens(t, "alice")
	mallory := env.issueTokens(t, "mallory")

	rec := env.do(t, http.MethodPost, "/v1/payments", alice.AccessToken, tollsdk.CreatePaymentRequest{
		Amount: 10, Currency: "USD", Method: "credit_card",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[tollsdk.PaymentResponse](t, rec)

	rec = env.do(t, http.MethodGet, "/v1/payments/"+created.ID, mallory.AccessToken, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodGet, "/v1/payments", mallory.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[tollsdk.ListPaymentsResponse](t, rec)
	require.Empty(t, list.Payments)
}

func TestPaymentsListStatusFilter(t *testing.T) {
	env := newTestEnv(t)
	tokens := env.issueTokens(t, "user-42")

	rec := env.do(t, http.MethodPost, "/v1/payments", tokens.AccessToken, tollsdk.CreatePaymentRequest{
		Amount: 10, Currency: "USD", Method: "transfer",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[tollsdk.PaymentResponse](t, rec)

	rec = env.do(t, http.MethodPost, "/v1/payments", tokens.AccessToken, tollsdk.CreatePaymentRequest{
		Amount: 20, Currency: "USD", Method: "transfer",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPatch, "/v1/payments/"+created.ID, tokens.AccessToken,
		tollsdk.UpdatePaymentStatusRequest{Status: "refunded"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/v1/payments?status=refunded", tokens.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[tollsdk.ListPaymentsResponse](t, rec)
	require.Len(t, list.Payments, 1)
	require.Equal(t, created.ID, list.Payments[0].ID)

	rec = env.do(t, http.MethodGet, "/v1/payments?status=shipped", tokens.AccessToken, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPaymentsUpdateStatus(t *testing.T) {
	env := newTestEnv(t)
	tokens := env.issueTokens(t, "user-42")

	rec := env.do(t, http.MethodPost, "/v1/payments", tokens.AccessToken, tollsdk.CreatePaymentRequest{
		Amount: 50, Currency: "MXN", Method: "debit_card",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[tollsdk.PaymentResponse](t, rec)

	rec = env.do(t, http.MethodPatch, "/v1/payments/"+created.ID, tokens.AccessToken,
		tollsdk.UpdatePaymentStatusRequest{Status: "completed"})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[tollsdk.PaymentResponse](t, rec)
	require.Equal(t, "completed", updated.Status)

	rec = env.do(t, http.MethodPatch, "/v1/payments/"+created.ID, tokens.AccessToken,
		tollsdk.UpdatePaymentStatusRequest{Status: "shipped"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPatch, "/v1/payments/does-not-exist", tokens.AccessToken,
		tollsdk.UpdatePaymentStatusRequest{Status: "failed"})
	require.Equal(t, http.StatusNotFound, rec.Code)
}
