package config

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ConnectDB establishes a connection to the PostgreSQL database
func ConnectDB(ctx context.Context, dsn string, logger *zap.Logger) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var err error

	// Retry connecting to the database a few times
	maxRetries := 5
	retryInterval := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.New(ctx, dsn)
		if err == nil {
			err = pool.Ping(ctx)
			if err == nil {
				logger.Info("connected to PostgreSQL")
				return pool, nil
			}
			pool.Close()
		}
		logger.Warn("failed to connect to database, retrying",
			zap.Int("attempt", i+1),
			zap.Int("max_attempts", maxRetries),
			zap.Duration("retry_in", retryInterval),
			zap.Error(err),
		)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval):
		}
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
}

const schema = `
	CREATE TABLE IF NOT EXISTS customer_accounts (
		id VARCHAR PRIMARY KEY,
		name TEXT NOT NULL,
		phone VARCHAR(20) NOT NULL UNIQUE,
		password_hash TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS services (
		id VARCHAR PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		price_inr INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS before_after_items (
		id VARCHAR PRIMARY KEY,
		title TEXT NOT NULL,
		before_image_url TEXT NOT NULL,
		after_image_url TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS bookings (
		id VARCHAR PRIMARY KEY,
		customer_id VARCHAR NOT NULL REFERENCES customer_accounts(id),
		booking_date TEXT NOT NULL,
		booking_time TEXT NOT NULL,
		address TEXT NOT NULL,
		landmark TEXT,
		city TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending'
			CHECK (status IN ('pending', 'confirmed', 'completed', 'cancelled')),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_bookings_customer_id ON bookings(customer_id);
`

// AutoMigrate creates tables if they don't exist
func AutoMigrate(ctx context.Context, db *pgxpool.Pool, logger *zap.Logger) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}
	logger.Info("AutoMigrate applied successfully")
	return nil
}
