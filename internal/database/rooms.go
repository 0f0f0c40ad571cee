package database

import (
	"context"
	"errors"
	"fmt"

	"roombook/internal/models"

	"github.com/jackc/pgx/v5"
)

func (db *DB) ListRooms(ctx context.Context) ([]models.Room, error) {
	query := `SELECT id, name, capacity FROM rooms ORDER BY name ASC`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []models.Room
	for rows.Next() {
		var room models.Room
		if err := rows.Scan(&room.ID, &room.Name, &room.Capacity); err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rooms: %w", err)
	}
	return rooms, nil
}

func (db *DB) GetRoom(ctx context.Context, id int64) (*models.Room, error) {
	query := `SELECT id, name, capacity FROM rooms WHERE id = $1`

	var room models.Room
	err := db.pool.QueryRow(ctx, query, id).Scan(&room.ID, &room.Name, &room.Capacity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	return &room, nil
}
