package store

import (
	"context"
	"errors"
	"time"

	"github.com/tollgate-io/tollgate/internal/gateway/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Payments() Payments
	Parameters() Parameters

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Payments interface {
	// CreatePayment inserts a new payment (id is provided by the service via UUID).
	CreatePayment(ctx context.Context, p domain.Payment) error

	// GetUserPayment returns a payment by id only when it belongs to userID.
	// Every read path is user-scoped; there is no unscoped accessor.
	GetUserPayment(ctx context.Context, id, userID string) (domain.Payment, error)

	// ListUserPayments returns a user's payments, newest first. A non-empty
	// status narrows the result to payments in that status.
	ListUserPayments(ctx context.Context, userID string, status domain.PaymentStatus) ([]domain.Payment, error)

	// UpdatePaymentStatus sets the status and bumps updated_at.
	UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus, updatedAt time.Time) error
}

type Parameters interface {
	// GetParameter fetches a parameter by name.
	GetParameter(ctx context.Context, name string) (domain.Parameter, error)

	// PutParameter inserts or replaces a parameter.
	PutParameter(ctx context.Context, p domain.Parameter) error

	// DeleteParameter removes a parameter by name.
	DeleteParameter(ctx context.Context, name string) error

	// ListParameters returns all parameters ordered by name.
	ListParameters(ctx context.Context) ([]domain.Parameter, error)
}
