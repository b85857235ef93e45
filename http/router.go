package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/turi333-pixel/Gigstar/entity"
	"github.com/turi333-pixel/Gigstar/gateway"
)

var ErrServerClosed = http.ErrServerClosed

// Searcher is the aggregation surface. It never fails: a provider problem
// shows up as a mock response, not an error.
type Searcher interface {
	Search(ctx context.Context, req gateway.Request) gateway.Response
	Lookup(ctx context.Context, id string) entity.Event
}

type Publisher interface {
	Publish(ctx context.Context, event any) error
}

type UserRepo interface {
	Add(ctx context.Context, user entity.User, passwordHash string) error
	Get(ctx context.Context, userID string) (entity.User, error)
	GetByEmail(ctx context.Context, email string) (entity.User, string, error)
}

type FavouriteRepo interface {
	Add(ctx context.Context, userID string, ev entity.Event, savedAt time.Time) error
	Remove(ctx context.Context, userID, eventID string) error
	List(ctx context.Context, userID string) ([]entity.Favourite, error)
}

type HistoryRepo interface {
	List(ctx context.Context, userID string) ([]entity.SearchEntry, error)
}

type SessionStore interface {
	Create(ctx context.Context, userID string) (string, error)
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

type TrendingRepo interface {
	Top(ctx context.Context, n int) ([]string, error)
}

type Deps struct {
	Searcher   Searcher
	Publisher  Publisher
	Users      UserRepo
	Favourites FavouriteRepo
	History    HistoryRepo
	Sessions   SessionStore
	Trending   TrendingRepo
	Gatherer   prometheus.Gatherer
	Log        logrus.FieldLogger
}

func NewRouter(deps Deps) *echo.Echo {
	server := echo.New()
	server.HideBanner = true
	server.Use(middleware.Recover())

	server.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	server.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))

	h := handler{
		searcher:   deps.Searcher,
		publisher:  deps.Publisher,
		users:      deps.Users,
		favourites: deps.Favourites,
		history:    deps.History,
		sessions:   deps.Sessions,
		trending:   deps.Trending,
		validate:   validator.New(),
		log:        deps.Log,
	}

	api := server.Group("/api")

	api.GET("/events", h.SearchEvents)
	api.GET("/events/hot", h.HotEvents)
	api.GET("/events/:id", h.GetEvent)

	api.POST("/signup", h.Signup)
	api.POST("/login", h.Login)
	api.POST("/logout", h.Logout, h.requireAuth)

	profile := api.Group("/profile", h.requireAuth)
	profile.GET("/favourites", h.ListFavourites)
	profile.POST("/favourites", h.AddFavourite)
	profile.DELETE("/favourites/:id", h.RemoveFavourite)
	profile.GET("/history", h.SearchHistory)

	return server
}
