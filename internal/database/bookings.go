package database

import (
	"context"
	"fmt"

	"roombook/internal/models"
)

// CreateBooking inserts a booking as a single constrained statement. The
// half-open range means a booking may start exactly when another ends;
// any other intersection trips the gist exclusion constraint and the
// insert fails without writing, regardless of concurrent creators.
func (db *DB) CreateBooking(ctx context.Context, booking *models.Booking) error {
	query := `INSERT INTO bookings (title, room_id, user_id, booking_range)
              VALUES ($1, $2, $3, tstzrange($4, $5, '[)'))
              RETURNING id, lower(booking_range), upper(booking_range), created_at`

	err := db.pool.QueryRow(ctx, query,
		booking.Title,
		booking.RoomID,
		booking.UserID,
		booking.StartTime,
		booking.EndTime,
	).Scan(&booking.ID, &booking.StartTime, &booking.EndTime, &booking.CreatedAt)
	if err != nil {
		if isExclusionViolation(err) {
			return ErrRoomBusy
		}
		if isForeignKeyViolation(err) {
			return ErrRoomNotFound
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (db *DB) ListBookings(ctx context.Context) ([]models.BookingDetail, error) {
	query := `SELECT b.id, b.title, b.room_id, r.name, b.user_id, u.email,
                     lower(b.booking_range), upper(b.booking_range)
              FROM bookings b
              JOIN rooms r ON b.room_id = r.id
              JOIN users u ON b.user_id = u.id
              ORDER BY lower(b.booking_range) ASC`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.BookingDetail
	for rows.Next() {
		var b models.BookingDetail
		err := rows.Scan(
			&b.ID,
			&b.Title,
			&b.RoomID,
			&b.RoomName,
			&b.UserID,
			&b.UserEmail,
			&b.StartTime,
			&b.EndTime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bookings: %w", err)
	}
	return bookings, nil
}

// DeleteBookingOwned removes the booking only when the requester owns it.
// A missing row and a foreign owner are indistinguishable to the caller.
func (db *DB) DeleteBookingOwned(ctx context.Context, id, requesterID int64) error {
	query := `DELETE FROM bookings WHERE id = $1 AND user_id = $2`

	tag, err := db.pool.Exec(ctx, query, id, requesterID)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}
	return nil
}
