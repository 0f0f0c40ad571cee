package api

import (
	"net/http"
	"sync"
	"time"

	"roombook/internal/auth"
	"roombook/internal/metrics"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const identityContextKey = "identity"

// identityFromContext returns the authenticated caller set by jwtAuth.
func identityFromContext(c echo.Context) (*auth.Identity, bool) {
	identity, ok := c.Get(identityContextKey).(*auth.Identity)
	return identity, ok
}

// jwtAuth rejects requests without a valid bearer token and stashes the
// caller's identity in the request context.
func (s *Server) jwtAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return writeMessage(c, http.StatusUnauthorized, "No token, authorization denied")
			}

			token, ok := auth.BearerToken(header)
			if !ok {
				return writeMessage(c, http.StatusUnauthorized, "Token format is invalid, authorization denied")
			}

			identity, err := s.issuer.Verify(token)
			if err != nil {
				return writeMessage(c, http.StatusUnauthorized, "Token is not valid")
			}

			c.Set(identityContextKey, identity)
			return next(c)
		}
	}
}

// requestLogger logs every request and feeds the per-endpoint counter.
func (s *Server) requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = c.Request().URL.Path
			}
			metrics.IncHTTP(route)

			s.logger.Info().
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Int("status", c.Response().Status).
				Str("remote_ip", c.RealIP()).
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Dur("duration", time.Since(start)).
				Msg("request")
			return nil
		}
	}
}

// rateLimit applies a per-client token bucket across all endpoints.
func (s *Server) rateLimit() echo.MiddlewareFunc {
	var limiters sync.Map
	rps := rate.Limit(s.cfg.Server.RateLimit.RPS)
	burst := s.cfg.Server.RateLimit.Burst

	limiterFor := func(key string) *rate.Limiter {
		if l, ok := limiters.Load(key); ok {
			return l.(*rate.Limiter)
		}
		l, _ := limiters.LoadOrStore(key, rate.NewLimiter(rps, burst))
		return l.(*rate.Limiter)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiterFor(c.RealIP()).Allow() {
				return writeMessage(c, http.StatusTooManyRequests, "Too many requests.")
			}
			return next(c)
		}
	}
}

// loginThrottle caps authentication attempts per client IP inside a
// sliding window. The throttle fails open when the cache is unavailable:
// a degraded cache must not lock everyone out.
func (s *Server) loginThrottle() echo.MiddlewareFunc {
	attempts := s.cfg.Auth.LoginAttempts
	window := time.Duration(s.cfg.Auth.LoginWindowSeconds) * time.Second

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if s.cache == nil {
				return next(c)
			}

			allowed, err := s.cache.CheckRateLimit(c.Request().Context(), "auth:"+c.RealIP(), attempts, window)
			if err != nil {
				s.logger.Warn().Err(err).Msg("login throttle check failed, allowing request")
				return next(c)
			}
			if !allowed {
				return writeMessage(c, http.StatusTooManyRequests, "Too many attempts, please try again later.")
			}
			return next(c)
		}
	}
}
