package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/tollgate-io/tollgate/internal/gateway/domain"
)

type parametersRepo struct {
	db *sql.DB
}

func (r *parametersRepo) GetParameter(ctx context.Context, name string) (domain.Parameter, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT name, value, secure, created_at, updated_at
		FROM parameters WHERE name = ?`, name)

	var p domain.Parameter
	if err := row.Scan(&p.Name, &p.Value, &p.Secure, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return domain.Parameter{}, mapNotFound(err)
	}
	return p, nil
}

func (r *parametersRepo) PutParameter(ctx context.Context, p domain.Parameter) error {
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	// Upsert keeps the original created_at on replace.
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO parameters (name, value, secure, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET
			value = excluded.value,
			secure = excluded.secure,
			updated_at = excluded.updated_at`,
		p.Name, p.Value, p.Secure, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *parametersRepo) DeleteParameter(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM parameters WHERE name = ?`, name)
	return err
}

func (r *parametersRepo) ListParameters(ctx context.Context) ([]domain.Parameter, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name, value, secure, created_at, updated_at
		FROM parameters ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var parameters []domain.Parameter
	for rows.Next() {
		var p domain.Parameter
		if err := rows.Scan(&p.Name, &p.Value, &p.Secure, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		parameters = append(parameters, p)
	}
	return parameters, rows.Err()
}
