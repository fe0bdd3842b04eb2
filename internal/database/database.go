package database

import (
	"context"
	"fmt"
	"log"

	"localevents-backend/internal/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Database struct {
	Pool *pgxpool.Pool
}

func NewConnection(cfg *config.Config) (*Database, error) {
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	log.Println("Successfully connected to database")
	return &Database{Pool: pool}, nil
}

func (db *Database) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

func RunMigrations(db *Database) error {
	ctx := context.Background()

	// Create users table
	createUsersTable := `
	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email VARCHAR(255) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		name VARCHAR(255) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`

	// Create events table. Distance is derived at read time and has no
	// column here.
	createEventsTable := `
	CREATE TABLE IF NOT EXISTS events (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		event_name VARCHAR(500) NOT NULL,
		event_date DATE NOT NULL,
		end_date DATE,
		location VARCHAR(500) NOT NULL,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		description TEXT DEFAULT '',
		cost_text VARCHAR(255) DEFAULT '',
		cost_numeric DOUBLE PRECISION,
		rating DOUBLE PRECISION CHECK (rating >= 0 AND rating <= 5),
		url TEXT DEFAULT '',
		child_friendly_features TEXT DEFAULT '',
		carer_disability_info TEXT DEFAULT '',
		source VARCHAR(255) DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`

	// Create indexes
	createIndexes := `
	CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);
	CREATE INDEX IF NOT EXISTS idx_events_event_date ON events(event_date);
	CREATE INDEX IF NOT EXISTS idx_events_is_active ON events(is_active);`

	migrations := []string{
		createUsersTable,
		createEventsTable,
		createIndexes,
	}

	for _, migration := range migrations {
		if _, err := db.Pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func (db *Database) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	return db.Pool.QueryRow(ctx, sql, args...)
}

func (db *Database) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	return db.Pool.Query(ctx, sql, args...)
}

func (db *Database) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	return db.Pool.Exec(ctx, sql, args...)
}
