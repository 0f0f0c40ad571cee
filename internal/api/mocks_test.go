package api

import (
	"context"

	"roombook/internal/models"

	"github.com/stretchr/testify/mock"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Signup(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *mockUserService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

type mockRoomService struct {
	mock.Mock
}

func (m *mockRoomService) ListRooms(ctx context.Context) ([]models.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Room), args.Error(1)
}

type mockBookingService struct {
	mock.Mock
}

func (m *mockBookingService) Create(ctx context.Context, req *models.CreateBookingRequest, ownerID int64) (*models.Booking, error) {
	args := m.Called(ctx, req, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}
func (m *mockBookingService) List(ctx context.Context) ([]models.BookingDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BookingDetail), args.Error(1)
}
func (m *mockBookingService) Delete(ctx context.Context, id, requesterID int64) error {
	return m.Called(ctx, id, requesterID).Error(0)
}
