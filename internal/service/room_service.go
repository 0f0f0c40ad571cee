package service

import (
	"context"

	"roombook/internal/domain"
	"roombook/internal/models"

	"github.com/rs/zerolog"
)

type RoomService struct {
	store  domain.Store
	cache  domain.Cache
	logger *zerolog.Logger
}

func NewRoomService(store domain.Store, cache domain.Cache, logger *zerolog.Logger) *RoomService {
	return &RoomService{store: store, cache: cache, logger: logger}
}

// ListRooms returns the catalog ordered by name, serving from cache when
// warm. Cache failures only cost the round trip, never the request.
func (s *RoomService) ListRooms(ctx context.Context) ([]models.Room, error) {
	if s.cache != nil {
		rooms, err := s.cache.GetRooms(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("room cache read failed")
		} else if rooms != nil {
			return rooms, nil
		}
	}

	rooms, err := s.store.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetRooms(ctx, rooms); err != nil {
			s.logger.Warn().Err(err).Msg("room cache write failed")
		}
	}
	return rooms, nil
}
