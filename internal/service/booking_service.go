package service

import (
	"context"
	"errors"
	"strings"

	"roombook/internal/database"
	"roombook/internal/domain"
	"roombook/internal/metrics"
	"roombook/internal/models"

	"github.com/rs/zerolog"
)

var (
	ErrTitleRequired = errors.New("title is required")
	// ErrInvalidTimeRange rejects end <= start before storage is touched.
	ErrInvalidTimeRange = errors.New("end time must be after start time")
)

type BookingService struct {
	store  domain.Store
	logger *zerolog.Logger
}

func NewBookingService(store domain.Store, logger *zerolog.Logger) *BookingService {
	return &BookingService{store: store, logger: logger}
}

// Create validates the request, then hands the overlap decision to the
// storage layer's constrained insert. There is deliberately no
// availability pre-check here: two round trips would reopen the race the
// constraint exists to close.
func (s *BookingService) Create(ctx context.Context, req *models.CreateBookingRequest, ownerID int64) (*models.Booking, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidTimeRange
	}

	if _, err := s.store.GetRoom(ctx, req.RoomID); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		Title:     title,
		RoomID:    req.RoomID,
		UserID:    ownerID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := s.store.CreateBooking(ctx, booking); err != nil {
		if errors.Is(err, database.ErrRoomBusy) {
			metrics.IncBookingConflict()
			s.logger.Info().
				Int64("room_id", req.RoomID).
				Time("start", req.StartTime).
				Time("end", req.EndTime).
				Msg("booking rejected by overlap constraint")
		}
		return nil, err
	}

	metrics.IncBookingCreated()
	s.logger.Info().
		Int64("booking_id", booking.ID).
		Int64("room_id", booking.RoomID).
		Int64("user_id", booking.UserID).
		Msg("booking created")
	return booking, nil
}

func (s *BookingService) List(ctx context.Context) ([]models.BookingDetail, error) {
	return s.store.ListBookings(ctx)
}

// Delete removes a booking only for its owner; absent and foreign
// bookings fail identically.
func (s *BookingService) Delete(ctx context.Context, id, requesterID int64) error {
	if err := s.store.DeleteBookingOwned(ctx, id, requesterID); err != nil {
		return err
	}

	s.logger.Info().Int64("booking_id", id).Int64("user_id", requesterID).Msg("booking deleted")
	return nil
}
