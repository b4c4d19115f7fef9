package http

import (
	"errors"
	"net/http"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const sessionContextKey = "session"

func newSessionToken() string {
	return uuid.NewString()
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get(echo.HeaderAuthorization)
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// requireRole resolves the bearer token and rejects sessions of other roles.
func (s *Server) requireRole(role kernel.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, err := s.authenticate(c)
			if err != nil {
				return err
			}
			if session.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, "route requires role "+role.String())
			}

			c.Set(sessionContextKey, session)
			return next(c)
		}
	}
}

func (s *Server) authenticate(c echo.Context) (ports.Session, error) {
	token, ok := bearerToken(c.Request())
	if !ok {
		return ports.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}

	session, err := s.sessions.Get(c.Request().Context(), token)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ports.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
	}
	if err != nil {
		return ports.Session{}, err
	}
	return session, nil
}

func sessionFrom(c echo.Context) ports.Session {
	session, _ := c.Get(sessionContextKey).(ports.Session)
	return session
}
