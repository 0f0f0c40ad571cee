package database

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrEmailTaken signals a unique violation on users.email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUserNotFound signals a lookup miss on users.
	ErrUserNotFound = errors.New("user not found")
	// ErrRoomNotFound signals a reference to a room that does not exist.
	ErrRoomNotFound = errors.New("room not found")
	// ErrRoomBusy signals the exclusion constraint fired: the room already
	// has a booking overlapping the requested range.
	ErrRoomBusy = errors.New("room already booked for an overlapping interval")
	// ErrBookingNotFound covers both a missing booking and one owned by
	// someone else; callers must not be able to tell the two apart.
	ErrBookingNotFound = errors.New("booking not found or not owned by requester")
)

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

func isUniqueViolation(err error) bool {
	return isPgError(err, pgerrcode.UniqueViolation)
}

func isExclusionViolation(err error) bool {
	return isPgError(err, pgerrcode.ExclusionViolation)
}

func isForeignKeyViolation(err error) bool {
	return isPgError(err, pgerrcode.ForeignKeyViolation)
}
