package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"roombook/internal/auth"
	"roombook/internal/config"
	"roombook/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// Server exposes the booking REST API.
type Server struct {
	cfg      *config.Config
	echo     *echo.Echo
	users    domain.UserService
	rooms    domain.RoomService
	bookings domain.BookingService
	issuer   *auth.TokenIssuer
	cache    domain.Cache
	logger   zerolog.Logger
}

type requestValidator struct {
	v *validator.Validate
}

func (rv *requestValidator) Validate(i interface{}) error {
	return rv.v.Struct(i)
}

func NewServer(
	cfg *config.Config,
	users domain.UserService,
	rooms domain.RoomService,
	bookings domain.BookingService,
	issuer *auth.TokenIssuer,
	cache domain.Cache,
	logger *zerolog.Logger,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &requestValidator{v: validator.New()}

	s := &Server{
		cfg:      cfg,
		echo:     e,
		users:    users,
		rooms:    rooms,
		bookings: bookings,
		issuer:   issuer,
		cache:    cache,
		logger:   logger.With().Str("component", "http").Logger(),
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(s.requestLogger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: corsOrigins(cfg.Server.CORSOrigins),
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	if cfg.Server.RateLimit.RPS > 0 {
		e.Use(s.rateLimit())
	}

	authGroup := e.Group("/auth", s.loginThrottle())
	authGroup.POST("/signup", s.handleSignup)
	authGroup.POST("/login", s.handleLogin)

	apiGroup := e.Group("", s.jwtAuth())
	apiGroup.GET("/rooms", s.handleListRooms)
	apiGroup.GET("/bookings", s.handleListBookings)
	apiGroup.POST("/bookings", s.handleCreateBooking)
	apiGroup.GET("/bookings/export", s.handleExportBookings)
	apiGroup.DELETE("/bookings/:id", s.handleDeleteBooking)

	return s
}

func corsOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	s.logger.Info().Str("addr", addr).Msg("HTTP API listening")
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// ServeHTTP lets tests drive the router without a listener.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

func writeMessage(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, echo.Map{"message": message})
}
