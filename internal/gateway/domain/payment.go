package domain

import (
	"errors"
	"fmt"
	"time"
)

// Currency is an ISO 4217 code accepted by the payment endpoints.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyMXN Currency = "MXN"
)

// PaymentMethod is how a payment is funded.
type PaymentMethod string

const (
	MethodCreditCard PaymentMethod = "credit_card"
	MethodDebitCard  PaymentMethod = "debit_card"
	MethodTransfer   PaymentMethod = "transfer"
)

// PaymentStatus is the lifecycle state of a payment.
type PaymentStatus string

const (
	StatusPending    PaymentStatus = "pending"
	StatusProcessing PaymentStatus = "processing"
	StatusCompleted  PaymentStatus = "completed"
	StatusFailed     PaymentStatus = "failed"
	StatusRefunded   PaymentStatus = "refunded"
)

const maxDescriptionLen = 256

// ErrValidation wraps all payment field validation failures.
var ErrValidation = errors.New("validation")

// Payment models a stored payment record.
type Payment struct {
	ID          string // UUID
	UserID      string
	Amount      float64
	Currency    Currency
	Method      PaymentMethod
	Status      PaymentStatus
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Valid reports whether c is an accepted currency.
func (c Currency) Valid() bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyMXN:
		return true
	}
	return false
}

// Valid reports whether m is an accepted payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCreditCard, MethodDebitCard, MethodTransfer:
		return true
	}
	return false
}

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed, StatusRefunded:
		return true
	}
	return false
}

// Validate checks the payment's user-supplied fields. It does not check ID
// or timestamps, which the service assigns.
func (p Payment) Validate() error {
	if p.Amount <= 0 {
		return fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	}
	if !p.Currency.Valid() {
		return fmt.Errorf("%w: unsupported currency %q", ErrValidation, p.Currency)
	}
	if !p.Method.Valid() {
		return fmt.Errorf("%w: unsupported payment method %q", ErrValidation, p.Method)
	}
	if !p.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, p.Status)
	}
	if len(p.Description) > maxDescriptionLen {
		return fmt.Errorf("%w: description exceeds %d characters", ErrValidation, maxDescriptionLen)
	}
	return nil
}
