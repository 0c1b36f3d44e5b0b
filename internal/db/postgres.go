package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("connected to PostgreSQL")

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	usersSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'CUSTOMER',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, usersSQL); err != nil {
		return err
	}

	// -------------------------------
	// PRODUCTS (CATALOG)
	// -------------------------------
	productsSQL := `
		CREATE TABLE IF NOT EXISTS products (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			price NUMERIC(10,2) NOT NULL DEFAULT 0,
			category VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			image_url VARCHAR(500) NOT NULL DEFAULT '',
			ai_hint VARCHAR(100) NOT NULL DEFAULT '',
			display_order INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, productsSQL); err != nil {
		return err
	}

	productIndexSQL := `
		CREATE INDEX IF NOT EXISTS idx_products_category_order
		ON products (category, display_order)
	`
	if _, err := pool.Exec(ctx, productIndexSQL); err != nil {
		return err
	}

	// -------------------------------
	// ORDERS
	// -------------------------------
	ordersSQL := `
		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			items JSONB NOT NULL,
			total_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
			payment_method VARCHAR(100) NOT NULL DEFAULT '',
			status VARCHAR(50) NOT NULL DEFAULT 'pending',
			client_secret VARCHAR(255) NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)
	`
	if _, err := pool.Exec(ctx, ordersSQL); err != nil {
		return err
	}

	log.Println("schema initialized")
	return nil
}
