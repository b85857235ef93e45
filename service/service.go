// Package service assembles the providers, gateway, stores, message router
// and HTTP server into one runnable unit.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/turi333-pixel/Gigstar/config"
	"github.com/turi333-pixel/Gigstar/db"
	"github.com/turi333-pixel/Gigstar/gateway"
	"github.com/turi333-pixel/Gigstar/http"
	"github.com/turi333-pixel/Gigstar/message"
	"github.com/turi333-pixel/Gigstar/metrics"
	"github.com/turi333-pixel/Gigstar/providers"
	"github.com/turi333-pixel/Gigstar/session"
	"github.com/turi333-pixel/Gigstar/trending"
)

type Service struct {
	listen     string
	msgRouter  *message.Router
	httpRouter *echo.Echo
}

func New(
	logger watermill.LoggerAdapter,
	redisClient *redis.Client,
	dbConn *sqlx.DB,
	cfg config.Config,
) (*Service, error) {
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	provider, err := providers.NewFromConfig(cfg, logrus.StandardLogger())
	if err != nil {
		return nil, fmt.Errorf("creating provider: %w", err)
	}

	g := gateway.New(provider, m, logrus.StandardLogger())

	userRepo := db.NewUserRepo(dbConn)
	favouriteRepo := db.NewFavouriteRepo(dbConn)
	historyRepo := db.NewHistoryRepo(dbConn)
	sessionStore := session.NewStore(redisClient, 0)
	trendingRepo := trending.NewRepo(redisClient)

	publisher, err := redisstream.NewPublisher(redisstream.PublisherConfig{
		Client: redisClient,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	eventBus, err := message.NewEventBus(publisher)
	if err != nil {
		return nil, fmt.Errorf("creating event bus: %w", err)
	}

	msgRouter, err := message.NewRouter(message.RouterDeps{
		HistoryRepo:  historyRepo,
		TrendingRepo: trendingRepo,
		Logger:       logger,
		RedisClient:  redisClient,
	})
	if err != nil {
		return nil, fmt.Errorf("creating message router: %w", err)
	}

	httpRouter := http.NewRouter(http.Deps{
		Searcher:   g,
		Publisher:  eventBus,
		Users:      userRepo,
		Favourites: favouriteRepo,
		History:    historyRepo,
		Sessions:   sessionStore,
		Trending:   trendingRepo,
		Gatherer:   registry,
		Log:        logrus.StandardLogger(),
	})

	return &Service{
		listen:     cfg.Listen,
		msgRouter:  msgRouter,
		httpRouter: httpRouter,
	}, nil
}

func (s Service) Run(ctx context.Context) error {
	g, runCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.msgRouter.Run(runCtx); err != nil {
			return fmt.Errorf("running messaging router: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		// Wait for message router
		<-s.msgRouter.Running()

		logrus.Info("Starting HTTP server...")
		err := s.httpRouter.Start(s.listen)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("starting http server: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-runCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		logrus.Info("Shutting down HTTP server...")
		if err := s.httpRouter.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down http server: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("waiting for shutdown: %w", err)
	}
	logrus.Info("Shutdown complete.")

	return nil
}
