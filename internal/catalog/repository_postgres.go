package catalog

import (
	"context"
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

// --------------------------------------------------
// LIST (CATEGORY + DISPLAY ORDER)
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, price, category, description, image_url, ai_hint,
		       display_order, created_at, updated_at
		FROM products
		ORDER BY category ASC, display_order ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product

	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Price,
			&p.Category,
			&p.Description,
			&p.ImageURL,
			&p.AIHint,
			&p.DisplayOrder,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *PostgresRepository) GetByID(
	ctx context.Context,
	id string,
) (*Product, error) {

	var p Product

	err := r.db.QueryRow(ctx, `
		SELECT id, name, price, category, description, image_url, ai_hint,
		       display_order, created_at, updated_at
		FROM products
		WHERE id = $1
	`, id).Scan(
		&p.ID,
		&p.Name,
		&p.Price,
		&p.Category,
		&p.Description,
		&p.ImageURL,
		&p.AIHint,
		&p.DisplayOrder,
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	return &p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *Product) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO products (
			id, name, price, category, description, image_url, ai_hint,
			display_order, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
	`,
		p.ID,
		p.Name,
		p.Price,
		p.Category,
		p.Description,
		p.ImageURL,
		p.AIHint,
		p.DisplayOrder,
	)
	return err
}

func (r *PostgresRepository) Update(ctx context.Context, p *Product) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE products
		SET name = $1,
		    price = $2,
		    category = $3,
		    description = $4,
		    image_url = $5,
		    ai_hint = $6,
		    updated_at = now()
		WHERE id = $7
	`,
		p.Name,
		p.Price,
		p.Category,
		p.Description,
		p.ImageURL,
		p.AIHint,
		p.ID,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `
		DELETE FROM products
		WHERE id = $1
	`, id)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// --------------------------------------------------
// MAX DISPLAY ORDER (ONE QUERY PER CATEGORY)
// --------------------------------------------------
func (r *PostgresRepository) MaxDisplayOrder(
	ctx context.Context,
	category string,
) (int, error) {

	var max int

	err := r.db.QueryRow(ctx, `
		SELECT display_order
		FROM products
		WHERE category = $1
		ORDER BY display_order DESC
		LIMIT 1
	`, category).Scan(&max)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return -1, nil
		}
		return 0, err
	}

	return max, nil
}

// --------------------------------------------------
// BATCH INSERT (ATOMIC)
// --------------------------------------------------
func (r *PostgresRepository) CreateBatch(
	ctx context.Context,
	products []Product,
) error {

	if len(products) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, p := range products {
		_, err := tx.Exec(ctx, `
			INSERT INTO products (
				id, name, price, category, description, image_url, ai_hint,
				display_order, created_at, updated_at
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
		`,
			p.ID,
			p.Name,
			p.Price,
			p.Category,
			p.Description,
			p.ImageURL,
			p.AIHint,
			p.DisplayOrder,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
