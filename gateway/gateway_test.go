package gateway_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turi333-pixel/Gigstar/entity"
	"github.com/turi333-pixel/Gigstar/gateway"
	"github.com/turi333-pixel/Gigstar/metrics"
	"github.com/turi333-pixel/Gigstar/providers"
)

type fakeProvider struct {
	configured bool
	result     providers.Result
	event      entity.Event
	err        error

	lastQuery providers.Query
	lastID    string
}

func (f *fakeProvider) Name() string     { return "fake" }
func (f *fakeProvider) Configured() bool { return f.configured }

func (f *fakeProvider) Search(_ context.Context, q providers.Query) (providers.Result, error) {
	f.lastQuery = q
	return f.result, f.err
}

func (f *fakeProvider) Lookup(_ context.Context, id string) (entity.Event, error) {
	f.lastID = id
	return f.event, f.err
}

func newGateway(p providers.Provider) *gateway.Gateway {
	m := metrics.New(prometheus.NewRegistry())
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return gateway.New(p, m, log)
}

func TestSearchUnconfiguredProviderServesMockData(t *testing.T) {
	g := newGateway(&fakeProvider{configured: false})

	res := g.Search(context.Background(), gateway.Request{
		City:  "Berlin",
		Genre: "rock",
		Size:  5,
	})

	assert.True(t, res.IsMock)
	assert.NotEmpty(t, res.Error)
	assert.Contains(t, res.Error, "No fake API key configured")
	assert.Equal(t, 1, res.TotalPages)
	require.NotEmpty(t, res.Events)
	assert.LessOrEqual(t, len(res.Events), 5)
	for _, e := range res.Events {
		assert.True(t, e.IsMock)
		assert.Equal(t, "Rock", e.Genre)
	}
}

func TestSearchProviderErrorFallsBack(t *testing.T) {
	g := newGateway(&fakeProvider{
		configured: true,
		err:        errors.New("upstream broke"),
	})

	res := g.Search(context.Background(), gateway.Request{City: "London"})

	assert.True(t, res.IsMock)
	assert.Equal(t, "Showing demo data (Network/API Error)", res.Error)
	assert.NotEmpty(t, res.Events)
	assert.Equal(t, len(res.Events), res.TotalElements)
}

func TestSearchSuccess(t *testing.T) {
	p := &fakeProvider{
		configured: true,
		result: providers.Result{
			Events:        []entity.Event{{ID: "tm-1"}, {ID: "tm-2"}},
			TotalElements: 42,
		},
	}
	g := newGateway(p)

	res := g.Search(context.Background(), gateway.Request{
		City:      "London",
		Genre:     "rock",
		DateRange: "today",
		Size:      10,
	})

	assert.False(t, res.IsMock)
	assert.Empty(t, res.Error)
	assert.Equal(t, 42, res.TotalElements)
	assert.Equal(t, 5, res.TotalPages)
	assert.Len(t, res.Events, 2)

	assert.Equal(t, "rock", p.lastQuery.Genre)
	require.NotNil(t, p.lastQuery.Window)
	assert.Equal(t, 10, p.lastQuery.Size)
}

func TestSearchGenreAllIsNotForwarded(t *testing.T) {
	p := &fakeProvider{configured: true}
	g := newGateway(p)

	g.Search(context.Background(), gateway.Request{Genre: "All"})

	assert.Empty(t, p.lastQuery.Genre)
}

func TestSearchEmptyUpstreamResultStillPagesToOne(t *testing.T) {
	g := newGateway(&fakeProvider{configured: true})

	res := g.Search(context.Background(), gateway.Request{})

	assert.False(t, res.IsMock)
	assert.NotNil(t, res.Events)
	assert.Empty(t, res.Events)
	assert.Equal(t, 1, res.TotalPages)
}

func TestLookupMockIDNeverHitsProvider(t *testing.T) {
	p := &fakeProvider{configured: true}
	g := newGateway(p)

	ev := g.Lookup(context.Background(), "mock-3")

	assert.Equal(t, "mock-3", ev.ID)
	assert.True(t, ev.IsMock)
	assert.Empty(t, p.lastID)
}

func TestLookupUnknownMockIDReturnsSomething(t *testing.T) {
	g := newGateway(&fakeProvider{configured: true})

	ev := g.Lookup(context.Background(), "mock-9999")

	assert.True(t, ev.IsMock)
	assert.NotEmpty(t, ev.ID)
}

func TestLookupSuccess(t *testing.T) {
	p := &fakeProvider{
		configured: true,
		event:      entity.Event{ID: "tm-7", Name: "Big Gig"},
	}
	g := newGateway(p)

	ev := g.Lookup(context.Background(), "tm-7")

	assert.Equal(t, "tm-7", ev.ID)
	assert.Equal(t, "tm-7", p.lastID)
	assert.False(t, ev.IsMock)
}

func TestLookupErrorDegradesToMockEvent(t *testing.T) {
	g := newGateway(&fakeProvider{
		configured: true,
		err:        errors.New("upstream broke"),
	})

	ev := g.Lookup(context.Background(), "tm-7")

	assert.True(t, ev.IsMock)
}
