package api

import (
	"errors"
	"net/http"

	"roombook/internal/database"
	"roombook/internal/models"
	"roombook/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// credentialsMessage translates a validation failure on the auth payloads
// into the exact message the original API clients expect.
func credentialsMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			switch {
			case fe.Field() == "Email" && fe.Tag() == "email":
				return "Invalid email address"
			case fe.Field() == "Password" && fe.Tag() == "min":
				return "Password must be at least 8 characters long"
			}
		}
	}
	return "Email and password are required."
}

func (s *Server) handleSignup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		return writeMessage(c, http.StatusBadRequest, "Email and password are required.")
	}
	if err := c.Validate(&req); err != nil {
		return writeMessage(c, http.StatusBadRequest, credentialsMessage(err))
	}

	user, err := s.users.Signup(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, database.ErrEmailTaken) {
			return writeMessage(c, http.StatusConflict, "User with this email already exists.")
		}
		s.logger.Error().Err(err).Msg("signup failed")
		return writeMessage(c, http.StatusInternalServerError, "Server error during user registration.")
	}

	return c.JSON(http.StatusCreated, user)
}

func (s *Server) handleLogin(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return writeMessage(c, http.StatusBadRequest, "Email and password are required.")
	}
	if err := c.Validate(&req); err != nil {
		return writeMessage(c, http.StatusBadRequest, credentialsMessage(err))
	}

	token, err := s.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return writeMessage(c, http.StatusUnauthorized, "Invalid credentials.")
		}
		s.logger.Error().Err(err).Msg("login failed")
		return writeMessage(c, http.StatusInternalServerError, "Server error during login.")
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token})
}
