package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/turi333-pixel/Gigstar/db"
	"github.com/turi333-pixel/Gigstar/entity"
	"github.com/turi333-pixel/Gigstar/event"
	"github.com/turi333-pixel/Gigstar/session"
)

type signupRequest struct {
	Username string `json:"username" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

func (h handler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return &echo.HTTPError{
			Code:     http.StatusBadRequest,
			Message:  "failed to parse request",
			Internal: fmt.Errorf("failed to bind request: %w", err),
		}
	}
	if err := h.validate.Struct(req); err != nil {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	user := entity.User{
		ID:        uuid.NewString(),
		Username:  req.Username,
		Email:     req.Email,
		Avatar:    avatarURL(req.Username),
		CreatedAt: time.Now().UTC(),
	}

	if err := h.users.Add(c.Request().Context(), user, string(hash)); err != nil {
		if errors.Is(err, db.ErrEmailTaken) {
			return &echo.HTTPError{
				Code:    http.StatusConflict,
				Message: "email already registered",
			}
		}
		return fmt.Errorf("storing user: %w", err)
	}

	token, err := h.sessions.Create(c.Request().Context(), user.ID)
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}

	return c.JSON(http.StatusCreated, authResponse{Token: token, User: user})
}

func (h handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return &echo.HTTPError{
			Code:     http.StatusBadRequest,
			Message:  "failed to parse request",
			Internal: fmt.Errorf("failed to bind request: %w", err),
		}
	}
	if err := h.validate.Struct(req); err != nil {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	user, hash, err := h.users.GetByEmail(c.Request().Context(), req.Email)
	if errors.Is(err, db.ErrNotFound) {
		return errInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("fetching user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
		return errInvalidCredentials
	}

	token, err := h.sessions.Create(c.Request().Context(), user.ID)
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}

	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

func (h handler) Logout(c echo.Context) error {
	if err := h.sessions.Delete(c.Request().Context(), sessionToken(c)); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h handler) AddFavourite(c echo.Context) error {
	var ev entity.Event
	if err := c.Bind(&ev); err != nil {
		return &echo.HTTPError{
			Code:     http.StatusBadRequest,
			Message:  "failed to parse request",
			Internal: fmt.Errorf("failed to bind request: %w", err),
		}
	}
	if ev.ID == "" {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "event id is required",
		}
	}

	userID := userID(c)
	if err := h.favourites.Add(c.Request().Context(), userID, ev, time.Now().UTC()); err != nil {
		return fmt.Errorf("storing favourite: %w", err)
	}

	e := event.NewEventFavourited(userID, ev.ID)
	if err := h.publisher.Publish(c.Request().Context(), e); err != nil {
		h.log.WithError(err).Warn("publishing favourite event failed")
	}

	return c.NoContent(http.StatusCreated)
}

func (h handler) RemoveFavourite(c echo.Context) error {
	userID := userID(c)
	eventID := c.Param("id")

	if err := h.favourites.Remove(c.Request().Context(), userID, eventID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return &echo.HTTPError{
				Code:    http.StatusNotFound,
				Message: "favourite not found",
			}
		}
		return fmt.Errorf("removing favourite: %w", err)
	}

	e := event.NewEventUnfavourited(userID, eventID)
	if err := h.publisher.Publish(c.Request().Context(), e); err != nil {
		h.log.WithError(err).Warn("publishing unfavourite event failed")
	}

	return c.NoContent(http.StatusNoContent)
}

func (h handler) ListFavourites(c echo.Context) error {
	favourites, err := h.favourites.List(c.Request().Context(), userID(c))
	if err != nil {
		return fmt.Errorf("listing favourites: %w", err)
	}

	return c.JSON(http.StatusOK, favourites)
}

func (h handler) SearchHistory(c echo.Context) error {
	entries, err := h.history.List(c.Request().Context(), userID(c))
	if err != nil {
		return fmt.Errorf("listing search history: %w", err)
	}

	return c.JSON(http.StatusOK, entries)
}

var errInvalidCredentials = &echo.HTTPError{
	Code:    http.StatusUnauthorized,
	Message: "invalid email or password",
}

func avatarURL(username string) string {
	return "https://api.dicebear.com/7.x/fun-emoji/svg?seed=" + url.QueryEscape(username)
}

// optionalUserID resolves the bearer token if one is present; anonymous
// requests get an empty id.
func (h handler) optionalUserID(c echo.Context) string {
	token := bearerToken(c)
	if token == "" {
		return ""
	}

	userID, err := h.sessions.Get(c.Request().Context(), token)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			h.log.WithError(err).Warn("resolving session failed")
		}
		return ""
	}

	return userID
}
