package order

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, o *Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO orders (
			id, user_id, items, total_amount, payment_method,
			status, client_secret, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		RETURNING created_at, updated_at
	`,
		o.ID,
		o.UserID,
		items,
		o.TotalAmount,
		o.PaymentMethod,
		o.Status,
		o.ClientSecret,
	).Scan(&o.CreatedAt, &o.UpdatedAt)
}

func (r *PostgresRepository) GetByID(
	ctx context.Context,
	id string,
) (*Order, error) {

	var (
		o     Order
		items []byte
	)

	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, items, total_amount, payment_method,
		       status, client_secret, created_at, updated_at
		FROM orders
		WHERE id = $1
	`, id).Scan(
		&o.ID,
		&o.UserID,
		&items,
		&o.TotalAmount,
		&o.PaymentMethod,
		&o.Status,
		&o.ClientSecret,
		&o.CreatedAt,
		&o.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, err
	}

	return &o, nil
}

func (r *PostgresRepository) ListByUser(
	ctx context.Context,
	userID string,
) ([]Order, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, items, total_amount, payment_method,
		       status, client_secret, created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order

	for rows.Next() {
		var (
			o     Order
			items []byte
		)

		if err := rows.Scan(
			&o.ID,
			&o.UserID,
			&items,
			&o.TotalAmount,
			&o.PaymentMethod,
			&o.Status,
			&o.ClientSecret,
			&o.CreatedAt,
			&o.UpdatedAt,
		); err != nil {
			return nil, err
		}

		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, err
		}

		orders = append(orders, o)
	}

	return orders, rows.Err()
}

func (r *PostgresRepository) UpdateStatus(
	ctx context.Context,
	id string,
	status string,
) error {

	cmd, err := r.db.Exec(ctx, `
		UPDATE orders
		SET status = $1,
		    updated_at = now()
		WHERE id = $2
	`, status, id)

	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	return nil
}
