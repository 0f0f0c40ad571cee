package api

import (
	"net/http"

	"roombook/internal/models"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleListRooms(c echo.Context) error {
	rooms, err := s.rooms.ListRooms(c.Request().Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("listing rooms failed")
		return writeMessage(c, http.StatusInternalServerError, "Server error while fetching rooms.")
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	return c.JSON(http.StatusOK, rooms)
}
