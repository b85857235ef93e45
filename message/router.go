// Package message wires the activity-event pipeline: events published by the
// HTTP layer are consumed here to maintain search history and the trending
// ranking. Nothing on the search request path waits for this router.
package message

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/redis/go-redis/v9"
)

type HistoryRepo interface {
	Record(ctx context.Context, userID, term string, at time.Time) error
}

type TrendingRepo interface {
	Bump(ctx context.Context, eventID string) error
	Drop(ctx context.Context, eventID string) error
}

type RouterDeps struct {
	HistoryRepo  HistoryRepo
	TrendingRepo TrendingRepo
	Logger       watermill.LoggerAdapter
	RedisClient  *redis.Client
}

type Router struct {
	*message.Router
}

func NewRouter(deps RouterDeps) (*Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, deps.Logger)
	if err != nil {
		return nil, fmt.Errorf("creating router: %w", err)
	}

	addMiddlewares(router, deps.Logger)

	config := cqrs.EventProcessorConfig{
		SubscriberConstructor: func(params cqrs.EventProcessorSubscriberConstructorParams) (message.Subscriber, error) {
			return redisstream.NewSubscriber(redisstream.SubscriberConfig{
				Client:        deps.RedisClient,
				ConsumerGroup: "gigstar." + params.HandlerName,
			}, deps.Logger)
		},
		GenerateSubscribeTopic: func(params cqrs.EventProcessorGenerateSubscribeTopicParams) (string, error) {
			return params.EventName, nil
		},
		Marshaler: cqrs.JSONMarshaler{
			GenerateName: cqrs.StructName,
		},
		Logger: deps.Logger,
	}

	ep, err := cqrs.NewEventProcessorWithConfig(router, config)
	if err != nil {
		return nil, fmt.Errorf("creating event processor: %w", err)
	}

	handlers := []cqrs.EventHandler{
		cqrs.NewEventHandler("record-search-history", handleRecordSearchHistory(deps.HistoryRepo)),
		cqrs.NewEventHandler("bump-trending", handleBumpTrending(deps.TrendingRepo)),
		cqrs.NewEventHandler("drop-trending", handleDropTrending(deps.TrendingRepo)),
	}

	if err := ep.AddHandlers(handlers...); err != nil {
		return nil, fmt.Errorf("adding handlers: %w", err)
	}

	return &Router{router}, nil
}
