package domain

import (
	"context"
	"time"

	"roombook/internal/models"
)

// Store is the persistence boundary. Implementations must make
// CreateBooking a single atomic constrained insert: the overlap check and
// the write may never be separate round trips.
type Store interface {
	CreateUser(ctx context.Context, email, passwordHash string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListRooms(ctx context.Context) ([]models.Room, error)
	GetRoom(ctx context.Context, id int64) (*models.Room, error)
	CreateBooking(ctx context.Context, booking *models.Booking) error
	ListBookings(ctx context.Context) ([]models.BookingDetail, error)
	DeleteBookingOwned(ctx context.Context, id, requesterID int64) error
}

// Cache holds hot reference data and short-lived counters. A cold cache
// returns (nil, nil) from GetRooms.
type Cache interface {
	GetRooms(ctx context.Context) ([]models.Room, error)
	SetRooms(ctx context.Context, rooms []models.Room) error
	CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

type UserService interface {
	Signup(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type RoomService interface {
	ListRooms(ctx context.Context) ([]models.Room, error)
}

type BookingService interface {
	Create(ctx context.Context, req *models.CreateBookingRequest, ownerID int64) (*models.Booking, error)
	List(ctx context.Context) ([]models.BookingDetail, error)
	Delete(ctx context.Context, id, requesterID int64) error
}
