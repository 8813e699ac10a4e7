package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/linity/todo-api/internal/api/metrics"
	"github.com/linity/todo-api/internal/core/ports"
)

// Auth validates the bearer token and injects the subject username into the
// request context. The scheme prefix is matched case-sensitively ("Bearer ").
// This gate never touches the database; resolving the username to a user id
// happens later, in the repository layer.
func Auth(verifier ports.TokenVerifier, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			raw, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			username, err := verifier.Verify(strings.TrimSpace(raw))
			if err != nil {
				// expired, malformed and bad-signature all collapse into the
				// same client-visible 401; the detail stays in the logs
				log.Debug().Err(err).Msg("token rejected")
				metrics.TokenVerificationsTotal.WithLabelValues("rejected").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set("username", username)
			return next(c)
		}
	}
}
