package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"roombook/internal/database"
	"roombook/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBookingService(store *mockStore) *BookingService {
	logger := zerolog.Nop()
	return NewBookingService(store, &logger)
}

func validRequest() *models.CreateBookingRequest {
	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	return &models.CreateBookingRequest{
		Title:     "Planning",
		RoomID:    1,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	}
}

func TestCreateBooking(t *testing.T) {
	store := new(mockStore)
	svc := newBookingService(store)
	ctx := context.Background()

	store.On("GetRoom", ctx, int64(1)).Return(&models.Room{ID: 1, Name: "Room A", Capacity: 10}, nil)
	store.On("CreateBooking", ctx, mock.AnythingOfType("*models.Booking")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Booking).ID = 99
		}).
		Return(nil)

	booking, err := svc.Create(ctx, validRequest(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(99), booking.ID)
	assert.Equal(t, int64(7), booking.UserID)
	assert.Equal(t, "Planning", booking.Title)

	store.AssertExpectations(t)
}

func TestCreateBookingValidation(t *testing.T) {
	store := new(mockStore)
	svc := newBookingService(store)
	ctx := context.Background()

	t.Run("EmptyTitle", func(t *testing.T) {
		req := validRequest()
		req.Title = "   "
		_, err := svc.Create(ctx, req, 7)
		assert.ErrorIs(t, err, ErrTitleRequired)
	})

	t.Run("EndBeforeStart", func(t *testing.T) {
		req := validRequest()
		req.EndTime = req.StartTime.Add(-time.Minute)
		_, err := svc.Create(ctx, req, 7)
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("EndEqualsStart", func(t *testing.T) {
		req := validRequest()
		req.EndTime = req.StartTime
		_, err := svc.Create(ctx, req, 7)
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	// Validation failures never touch storage.
	store.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "GetRoom", mock.Anything, mock.Anything)
}

func TestCreateBookingUnknownRoom(t *testing.T) {
	store := new(mockStore)
	svc := newBookingService(store)
	ctx := context.Background()

	store.On("GetRoom", ctx, int64(1)).Return(nil, database.ErrRoomNotFound)

	_, err := svc.Create(ctx, validRequest(), 7)
	assert.ErrorIs(t, err, database.ErrRoomNotFound)
	store.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestCreateBookingConflict(t *testing.T) {
	store := new(mockStore)
	svc := newBookingService(store)
	ctx := context.Background()

	store.On("GetRoom", ctx, int64(1)).Return(&models.Room{ID: 1, Name: "Room A", Capacity: 10}, nil)
	store.On("CreateBooking", ctx, mock.AnythingOfType("*models.Booking")).
		Return(database.ErrRoomBusy)

	_, err := svc.Create(ctx, validRequest(), 7)
	assert.ErrorIs(t, err, database.ErrRoomBusy)

	// Exactly one constrained insert, never a retry.
	store.AssertNumberOfCalls(t, "CreateBooking", 1)
}

func TestListBookings(t *testing.T) {
	store := new(mockStore)
	svc := newBookingService(store)
	ctx := context.Background()

	expected := []models.BookingDetail{
		{ID: 1, Title: "Earlier", RoomName: "Room A", UserEmail: "a@b.c"},
		{ID: 2, Title: "Later", RoomName: "Room B", UserEmail: "d@e.f"},
	}
	store.On("ListBookings", ctx).Return(expected, nil)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestDeleteBooking(t *testing.T) {
	store := new(mockStore)
	svc := newBookingService(store)
	ctx := context.Background()

	store.On("DeleteBookingOwned", ctx, int64(5), int64(7)).Return(nil)
	assert.NoError(t, svc.Delete(ctx, 5, 7))

	store.On("DeleteBookingOwned", ctx, int64(6), int64(7)).Return(database.ErrBookingNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 6, 7), database.ErrBookingNotFound)
}

func TestCreateBookingStorageError(t *testing.T) {
	store := new(mockStore)
	svc := newBookingService(store)
	ctx := context.Background()

	boom := errors.New("connection reset")
	store.On("GetRoom", ctx, int64(1)).Return(&models.Room{ID: 1, Name: "Room A", Capacity: 10}, nil)
	store.On("CreateBooking", ctx, mock.AnythingOfType("*models.Booking")).Return(boom)

	_, err := svc.Create(ctx, validRequest(), 7)
	assert.ErrorIs(t, err, boom)
}
