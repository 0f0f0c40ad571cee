package api

import (
	"errors"
	"net/http"
	"strconv"

	"roombook/internal/database"
	"roombook/internal/models"
	"roombook/internal/service"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleListBookings(c echo.Context) error {
	bookings, err := s.bookings.List(c.Request().Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("listing bookings failed")
		return writeMessage(c, http.StatusInternalServerError, "Server error while fetching bookings.")
	}
	if bookings == nil {
		bookings = []models.BookingDetail{}
	}
	return c.JSON(http.StatusOK, bookings)
}

func (s *Server) handleCreateBooking(c echo.Context) error {
	identity, ok := identityFromContext(c)
	if !ok {
		return writeMessage(c, http.StatusUnauthorized, "Token is not valid")
	}

	var req models.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return writeMessage(c, http.StatusBadRequest, "All fields are required.")
	}
	if err := c.Validate(&req); err != nil {
		return writeMessage(c, http.StatusBadRequest, "All fields are required.")
	}

	booking, err := s.bookings.Create(c.Request().Context(), &req, identity.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTitleRequired):
			return writeMessage(c, http.StatusBadRequest, "Title is required")
		case errors.Is(err, service.ErrInvalidTimeRange):
			return writeMessage(c, http.StatusBadRequest, "End time must be after start time")
		case errors.Is(err, database.ErrRoomNotFound):
			return writeMessage(c, http.StatusBadRequest, "Room does not exist.")
		case errors.Is(err, database.ErrRoomBusy):
			return writeMessage(c, http.StatusConflict, "This room is already booked for the selected time range.")
		}
		s.logger.Error().Err(err).Int64("room_id", req.RoomID).Msg("creating booking failed")
		return writeMessage(c, http.StatusInternalServerError, "Server error while creating booking.")
	}

	return c.JSON(http.StatusCreated, booking)
}

func (s *Server) handleDeleteBooking(c echo.Context) error {
	identity, ok := identityFromContext(c)
	if !ok {
		return writeMessage(c, http.StatusUnauthorized, "Token is not valid")
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return writeMessage(c, http.StatusBadRequest, "Invalid booking ID.")
	}

	if err := s.bookings.Delete(c.Request().Context(), id, identity.ID); err != nil {
		if errors.Is(err, database.ErrBookingNotFound) {
			// Absent and not-owned are deliberately indistinguishable.
			return writeMessage(c, http.StatusNotFound, "Booking not found or you do not have permission to delete it.")
		}
		s.logger.Error().Err(err).Int64("booking_id", id).Msg("deleting booking failed")
		return writeMessage(c, http.StatusInternalServerError, "Server error while deleting booking.")
	}

	return writeMessage(c, http.StatusOK, "Booking deleted successfully.")
}
