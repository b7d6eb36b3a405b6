package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/tollgate-io/tollgate/internal/gateway/domain"
	"github.com/tollgate-io/tollgate/internal/gateway/store"
)

type paymentsRepo struct {
	db *sql.DB
}

const paymentColumns = `id, user_id, amount, currency, method, status, description, created_at, updated_at`

func (r *paymentsRepo) CreatePayment(ctx context.Context, p domain.Payment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO payments (id, user_id, amount, currency, method, status, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, p.Amount, string(p.Currency), string(p.Method), string(p.Status),
		mapStringNull(p.Description), p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *paymentsRepo) GetUserPayment(ctx context.Context, id, userID string) (domain.Payment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+paymentColumns+` FROM payments WHERE id = ? AND user_id = ?`, id, userID)
	return scanPayment(row)
}

func (r *paymentsRepo) ListUserPayments(
	ctx context.Context,
	userID string,
	status domain.PaymentStatus,
) ([]domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + ` FROM payments
		WHERE user_id = ?`
	args := []any{userID}
	if status != "" {
		query += ` AND status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *paymentsRepo) UpdatePaymentStatus(
	ctx context.Context,
	id string,
	status domain.PaymentStatus,
	updatedAt time.Time,
) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE payments SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), updatedAt, id,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPayment(row rowScanner) (domain.Payment, error) {
	var (
		p           domain.Payment
		currency    string
		method      string
		status      string
		description sql.NullString
	)
	err := row.Scan(
		&p.ID, &p.UserID, &p.Amount, &currency, &method, &status,
		&description, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Payment{}, mapNotFound(err)
	}
	p.Currency = domain.Currency(currency)
	p.Method = domain.PaymentMethod(method)
	p.Status = domain.PaymentStatus(status)
	p.Description = mapNullString(description)
	return p, nil
}
