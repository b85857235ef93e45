// Package gateway orchestrates searches against the configured provider and
// falls back to synthetic data whenever the provider is unusable. It is the
// only place where an upstream failure turns into a fallback decision; the
// caller always gets a populated response, never an error.
package gateway

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/turi333-pixel/Gigstar/daterange"
	"github.com/turi333-pixel/Gigstar/entity"
	"github.com/turi333-pixel/Gigstar/metrics"
	"github.com/turi333-pixel/Gigstar/mockdata"
	"github.com/turi333-pixel/Gigstar/providers"
)

const (
	defaultPageSize = 20
	upstreamTimeout = 10 * time.Second

	fallbackAdvisory = "Showing demo data (Network/API Error)"
)

type Request struct {
	City      string
	LatLong   string // "lat,lng"
	Genre     string
	DateRange string
	Keyword   string
	Size      int
	Page      int
}

// Response is the uniform result envelope. A response is either entirely real
// or entirely mock; Error is advisory and never fatal.
type Response struct {
	Events        []entity.Event `json:"events"`
	TotalElements int            `json:"totalElements"`
	TotalPages    int            `json:"totalPages"`
	IsMock        bool           `json:"isMock"`
	Error         string         `json:"error,omitempty"`
}

type Gateway struct {
	provider providers.Provider
	metrics  *metrics.Metrics
	log      logrus.FieldLogger
	timeout  time.Duration
	now      func() time.Time
}

func New(p providers.Provider, m *metrics.Metrics, log logrus.FieldLogger) *Gateway {
	return &Gateway{
		provider: p,
		metrics:  m,
		log:      log,
		timeout:  upstreamTimeout,
		now:      time.Now,
	}
}

// Search runs one upstream query, or none at all when the provider has no
// usable credential. One failure of any kind means immediate mock fallback,
// no retries.
func (g *Gateway) Search(ctx context.Context, req Request) Response {
	size := req.Size
	if size <= 0 {
		size = defaultPageSize
	}
	page := req.Page
	if page < 0 {
		page = 0
	}

	if !g.provider.Configured() {
		g.fellBack("unconfigured")
		msg := fmt.Sprintf("No %s API key configured; showing demo data", g.provider.Name())
		return g.mockSearch(req, size, msg)
	}

	q := providers.Query{
		City:    req.City,
		LatLong: req.LatLong,
		Keyword: req.Keyword,
		Size:    size,
		Page:    page,
	}
	if req.Genre != "" && !strings.EqualFold(req.Genre, "all") {
		q.Genre = req.Genre
	}
	if req.DateRange != "" {
		w := daterange.Resolve(req.DateRange, g.now())
		q.Window = &w
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	started := time.Now()
	res, err := g.provider.Search(callCtx, q)
	g.metrics.UpstreamDuration.WithLabelValues(g.provider.Name(), "search").Observe(time.Since(started).Seconds())

	if err != nil {
		g.log.WithError(err).WithField("provider", g.provider.Name()).
			Warn("provider search failed, serving demo data")
		g.fellBack("provider_error")
		return g.mockSearch(req, size, fallbackAdvisory)
	}

	g.metrics.Searches.WithLabelValues(g.provider.Name(), "ok").Inc()

	events := res.Events
	if events == nil {
		events = []entity.Event{}
	}
	total := res.TotalElements
	if total == 0 {
		total = len(events)
	}
	totalPages := res.TotalPages
	if totalPages == 0 {
		totalPages = (total + size - 1) / size
	}
	if totalPages == 0 {
		totalPages = 1
	}

	return Response{
		Events:        events,
		TotalElements: total,
		TotalPages:    totalPages,
		IsMock:        false,
	}
}

// Lookup fetches a single event. Mock ids resolve against a fresh generation
// batch; any provider problem degrades to one synthetic event rather than an
// error, mirroring the search contract.
func (g *Gateway) Lookup(ctx context.Context, id string) entity.Event {
	if strings.HasPrefix(id, "mock-") {
		events := mockdata.Generate(mockdata.Params{Count: 50}, g.now())
		for _, e := range events {
			if e.ID == id {
				return e
			}
		}
		return events[0]
	}

	if !g.provider.Configured() {
		g.fellBack("unconfigured")
		return g.mockDetail()
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	started := time.Now()
	ev, err := g.provider.Lookup(callCtx, id)
	g.metrics.UpstreamDuration.WithLabelValues(g.provider.Name(), "lookup").Observe(time.Since(started).Seconds())

	if err != nil {
		g.log.WithError(err).WithField("provider", g.provider.Name()).
			Warn("provider lookup failed, serving demo data")
		g.fellBack("provider_error")
		return g.mockDetail()
	}

	return ev
}

func (g *Gateway) mockSearch(req Request, size int, advisory string) Response {
	events := mockdata.Generate(mockdata.Params{
		City:    req.City,
		Genre:   req.Genre,
		Keyword: req.Keyword,
		Count:   size,
	}, g.now())

	return Response{
		Events:        events,
		TotalElements: len(events),
		TotalPages:    1,
		IsMock:        true,
		Error:         advisory,
	}
}

func (g *Gateway) mockDetail() entity.Event {
	return mockdata.Generate(mockdata.Params{Count: 1}, g.now())[0]
}

func (g *Gateway) fellBack(reason string) {
	g.metrics.Searches.WithLabelValues(g.provider.Name(), "fallback").Inc()
	g.metrics.Fallbacks.WithLabelValues(g.provider.Name(), reason).Inc()
}
