package database

import (
	"context"
	"fmt"

	"roombook/internal/config"
	"roombook/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// DB wraps a pgx connection pool. It is created once at startup and
// injected into every component that touches storage.
type DB struct {
	pool   *pgxpool.Pool
	logger *zerolog.Logger
}

func New(ctx context.Context, cfg config.DatabaseConfig, logger *zerolog.Logger) (*DB, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	db := &DB{pool: pool, logger: logger}
	if err := db.migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	logger.Info().Msg("database initialized")
	return db, nil
}

func (db *DB) migrate(ctx context.Context) error {
	queries := []string{
		`CREATE EXTENSION IF NOT EXISTS btree_gist`,

		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS rooms (
			id BIGINT PRIMARY KEY,
			name TEXT NOT NULL,
			capacity BIGINT NOT NULL
		)`,

		// The exclusion constraint is the overlap-prevention protocol: a
		// booking insert and its conflict check are one indivisible
		// operation, so racing creators can never both succeed.
		`CREATE TABLE IF NOT EXISTS bookings (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			room_id BIGINT NOT NULL REFERENCES rooms(id),
			user_id BIGINT NOT NULL REFERENCES users(id),
			booking_range TSTZRANGE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			CONSTRAINT bookings_no_overlap
				EXCLUDE USING gist (room_id WITH =, booking_range WITH &&)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_bookings_user_id ON bookings(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_rooms_name ON rooms(name)`,
	}

	for _, query := range queries {
		if _, err := db.pool.Exec(ctx, query); err != nil {
			return fmt.Errorf("error executing query %s: %w", query, err)
		}
	}
	return nil
}

// SeedRooms upserts the static room catalog from config.
func (db *DB) SeedRooms(ctx context.Context, rooms []models.Room) error {
	query := `INSERT INTO rooms (id, name, capacity)
              VALUES ($1, $2, $3)
              ON CONFLICT (id) DO UPDATE SET
                name = excluded.name,
                capacity = excluded.capacity`

	for _, room := range rooms {
		if _, err := db.pool.Exec(ctx, query, room.ID, room.Name, room.Capacity); err != nil {
			return fmt.Errorf("seed room %d: %w", room.ID, err)
		}
	}

	db.logger.Info().Int("rooms", len(rooms)).Msg("room catalog seeded")
	return nil
}

func (db *DB) Close() {
	db.pool.Close()
}
