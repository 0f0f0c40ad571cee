package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"roombook/internal/models"

	"github.com/jackc/pgx/v5"
)

// CreateUser inserts a new account. Duplicate emails surface as
// ErrEmailTaken via the unique constraint, never a pre-read.
func (db *DB) CreateUser(ctx context.Context, email, passwordHash string) (*models.User, error) {
	query := `INSERT INTO users (email, password_hash)
              VALUES ($1, $2)
              RETURNING id, email, created_at`

	user := &models.User{PasswordHash: passwordHash}
	err := db.pool.QueryRow(ctx, query, strings.ToLower(strings.TrimSpace(email)), passwordHash).
		Scan(&user.ID, &user.Email, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (db *DB) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, email, password_hash, created_at
              FROM users WHERE email = $1`

	var user models.User
	err := db.pool.QueryRow(ctx, query, strings.ToLower(strings.TrimSpace(email))).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}
