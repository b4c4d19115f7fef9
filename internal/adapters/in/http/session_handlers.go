package http

import (
	"net/http"
	"time"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// CreateSession handles POST /api/v1/sessions. Any registered actor may sign
// in by role and id; the returned token authorizes that role's routes.
func (s *Server) CreateSession(c echo.Context) error {
	var req CreateSessionRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	role, err := kernel.ParseRole(req.Role)
	if err != nil {
		return err
	}
	actorID, err := kernel.UUIDFromString(req.ID)
	if err != nil {
		return err
	}

	query, err := queries.NewGetActorQuery(role, actorID)
	if err != nil {
		return err
	}
	actor, err := s.handlers.GetActor.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	session := ports.Session{
		Token:   s.newToken(),
		Role:    actor.Role,
		ActorID: actor.ID,
	}
	if err = s.sessions.Save(c.Request().Context(), session, s.sessionTTL); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, SessionResponse{
		Token:     session.Token,
		Role:      session.Role,
		ActorID:   session.ActorID,
		Name:      actor.Name,
		ExpiresAt: time.Now().Add(s.sessionTTL).UTC(),
	})
}

// DeleteSession handles DELETE /api/v1/sessions, revoking the bearer token.
func (s *Server) DeleteSession(c echo.Context) error {
	session, err := s.authenticate(c)
	if err != nil {
		return err
	}
	if err = s.sessions.Delete(c.Request().Context(), session.Token); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
