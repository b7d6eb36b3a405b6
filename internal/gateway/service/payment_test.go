package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tollgate-io/tollgate/internal/gateway/domain"
	"github.com/tollgate-io/tollgate/internal/gateway/service"
	"github.com/tollgate-io/tollgate/internal/gateway/store/drivers/sqlite"
)

func newPaymentService(t *testing.T) *service.PaymentService {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	return &service.PaymentService{Store: s}
}

func TestRegisterPayment(t *testing.T) {
	svc := newPaymentService(t)

	p, err := svc.RegisterPayment(context.Background(), "user-1", service.RegisterPaymentInput{
		Amount:      99.99,
		Currency:    "usd", // normalised to upper case
		Method:      "credit_card",
		Description: "  annual plan  ",
	})
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	require.Equal(t, "user-1", p.UserID)
	require.Equal(t, domain.CurrencyUSD, p.Currency)
	require.Equal(t, domain.StatusPending, p.Status)
	require.Equal(t, "annual plan", p.Description)

	got, err := svc.GetPayment(context.Background(), "user-1", p.ID)
	require.NoError(t, err)
	require.Equal(t, p.ID, got.ID)
}

func TestRegisterPaymentValidation(t *testing.T) {
	svc := newPaymentService(t)

	tests := []struct {
		name string
		in   service.RegisterPaymentInput
	}{
		{"zero amount", service.RegisterPaymentInput{Amount: 0, Currency: "USD", Method: "transfer"}},
		{"negative amount", service.RegisterPaymentInput{Amount: -5, Currency: "USD", Method: "transfer"}},
		{"unknown currency", service.RegisterPaymentInput{Amount: 10, Currency: "GBP", Method: "transfer"}},
		{"unknown method", service.RegisterPaymentInput{Amount: 10, Currency: "USD", Method: "cheque"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterPayment(context.Background(), "user-1", tt.in)
			require.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestGetPaymentScopedToOwner(t *testing.T) {
	svc := newPaymentService(t)

	p, err := svc.RegisterPayment(context.Background(), "alice", service.RegisterPaymentInput{
		Amount: 10, Currency: "EUR", Method: "transfer",
	})
	require.NoError(t, err)

	_, err = svc.GetPayment(context.Background(), "mallory", p.ID)
	require.ErrorIs(t, err, service.ErrPaymentNotFound)
}

func TestListPayments(t *testing.T) {
	svc := newPaymentService(t)
	base := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	for i := range 3 {
		svc.Now = fixedClock(base.Add(time.Duration(i) * time.Minute))
		_, err := svc.RegisterPayment(context.Background(), "bob", service.RegisterPaymentInput{
			Amount: float64(i + 1), Currency: "MXN", Method: "debit_card",
		})
		require.NoError(t, err)
	}

	payments, err := svc.ListPayments(context.Background(), "bob", "")
	require.NoError(t, err)
	require.Len(t, payments, 3)
	require.InDelta(t, 3.0, payments[0].Amount, 0.0001, "newest first")
}

func TestListPaymentsStatusFilter(t *testing.T) {
	svc := newPaymentService(t)

	p, err := svc.RegisterPayment(context.Background(), "bob", service.RegisterPaymentInput{
		Amount: 10, Currency: "USD", Method: "transfer",
	})
	require.NoError(t, err)
	_, err = svc.RegisterPayment(context.Background(), "bob", service.RegisterPaymentInput{
		Amount: 20, Currency: "USD", Method: "transfer",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), "bob", p.ID, domain.StatusFailed)
	require.NoError(t, err)

	failed, err := svc.ListPayments(context.Background(), "bob", domain.StatusFailed)
	require.NoError(t, err)
	require.Len(t, failed, 1)
	require.Equal(t, p.ID, failed[0].ID)

	_, err = svc.ListPayments(context.Background(), "bob", domain.PaymentStatus("shipped"))
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateStatus(t *testing.T) {
	svc := newPaymentService(t)

	p, err := svc.RegisterPayment(context.Background(), "carol", service.RegisterPaymentInput{
		Amount: 25, Currency: "USD", Method: "credit_card",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), "carol", p.ID, domain.StatusCompleted)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCompleted, updated.Status)

	_, err = svc.UpdateStatus(context.Background(), "carol", p.ID, domain.PaymentStatus("shipped"))
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.UpdateStatus(context.Background(), "mallory", p.ID, domain.StatusRefunded)
	require.ErrorIs(t, err, service.ErrPaymentNotFound)
}
