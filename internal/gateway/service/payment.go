package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tollgate-io/tollgate/internal/gateway/domain"
	"github.com/tollgate-io/tollgate/internal/gateway/store"
	"github.com/tollgate-io/tollgate/pkg/slogx"
)

var ErrPaymentNotFound = errors.New("payment_not_found")

// PaymentService manages payment records. Every operation is scoped to the
// authenticated subject; a payment belonging to someone else is
// indistinguishable from one that doesn't exist.
type PaymentService struct {
	Store store.Store

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time

	// NewID is injectable for tests; defaults to uuid.NewString.
	NewID func() string
}

func (s *PaymentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *PaymentService) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

// RegisterPaymentInput carries the user-supplied fields of a new payment.
type RegisterPaymentInput struct {
	Amount      float64
	Currency    string
	Method      string
	Description string
}

// RegisterPayment validates and stores a new payment in pending status.
func (s *PaymentService) RegisterPayment(
	ctx context.Context,
	userID string,
	in RegisterPaymentInput,
) (domain.Payment, error) {
	l := slogx.FromContext(ctx)

	now := s.now().UTC().Truncate(time.Second)
	p := domain.Payment{
		ID:          s.newID(),
		UserID:      userID,
		Amount:      in.Amount,
		Currency:    domain.Currency(strings.ToUpper(strings.TrimSpace(in.Currency))),
		Method:      domain.PaymentMethod(strings.TrimSpace(in.Method)),
		Status:      domain.StatusPending,
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := p.Validate(); err != nil {
		return domain.Payment{}, err
	}

	if err := s.Store.Payments().CreatePayment(ctx, p); err != nil {
		return domain.Payment{}, err
	}

	l.Info("payment registered",
		slog.String("payment_id", p.ID),
		slog.String("sub", userID),
		slog.String("currency", string(p.Currency)),
	)

	return p, nil
}

// GetPayment fetches one of the subject's payments by id.
func (s *PaymentService) GetPayment(ctx context.Context, userID, id string) (domain.Payment, error) {
	p, err := s.Store.Payments().GetUserPayment(ctx, id, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Payment{}, ErrPaymentNotFound
		}
		return domain.Payment{}, err
	}
	return p, nil
}

// ListPayments returns the subject's payments, newest first. A non-empty
// status filters to payments in that status; unknown statuses are a
// validation error rather than an empty result.
func (s *PaymentService) ListPayments(
	ctx context.Context,
	userID string,
	status domain.PaymentStatus,
) ([]domain.Payment, error) {
	if status != "" && !status.Valid() {
		return nil, domain.ErrValidation
	}
	return s.Store.Payments().ListUserPayments(ctx, userID, status)
}

// UpdateStatus transitions one of the subject's payments to a new status.
func (s *PaymentService) UpdateStatus(
	ctx context.Context,
	userID, id string,
	status domain.PaymentStatus,
) (domain.Payment, error) {
	l := slogx.FromContext(ctx)

	if !status.Valid() {
		return domain.Payment{}, domain.ErrValidation
	}

	// Ownership check first so a foreign payment reads as not found.
	if _, err := s.GetPayment(ctx, userID, id); err != nil {
		return domain.Payment{}, err
	}

	updatedAt := s.now().UTC().Truncate(time.Second)
	if err := s.Store.Payments().UpdatePaymentStatus(ctx, id, status, updatedAt); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Payment{}, ErrPaymentNotFound
		}
		return domain.Payment{}, err
	}

	l.Info("payment status updated",
		slog.String("payment_id", id),
		slog.String("status", string(status)),
	)

	return s.GetPayment(ctx, userID, id)
}
