package providers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turi333-pixel/Gigstar/config"
	"github.com/turi333-pixel/Gigstar/daterange"
	"github.com/turi333-pixel/Gigstar/providers"
	"github.com/turi333-pixel/Gigstar/venue"
)

func quietLog() logrus.FieldLogger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func newTicketmaster(t *testing.T, handler http.HandlerFunc) *providers.Ticketmaster {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return providers.NewTicketmaster(config.Provider{
		BaseURL: server.URL,
		APIKey:  "test-key",
	}, quietLog())
}

const tmSearchPayload = `{
	"_embedded": {
		"events": [{
			"id": "tm-1",
			"name": "Arctic Waves Tour",
			"url": "https://tickets.example.com/tm-1",
			"dates": {
				"start": {"localDate": "2024-06-01", "localTime": "19:30:00"},
				"timezone": "Europe/London",
				"status": {"code": "onsale"}
			},
			"classifications": [{
				"segment": {"name": "Music"},
				"genre": {"name": "Rock"},
				"subGenre": {"name": "Indie Rock"}
			}],
			"images": [
				{"url": "https://img.example.com/a", "width": 640},
				{"url": "https://img.example.com/b", "width": 1024},
				{"url": "https://img.example.com/c", "width": 1024}
			],
			"priceRanges": [{"type": "standard", "currency": "GBP", "min": 45, "max": 120}],
			"ageRestrictions": {"legalAgeEnforced": true},
			"_embedded": {
				"venues": [{
					"id": "v-1",
					"name": "Alexandra Palace",
					"city": {"name": "London"},
					"country": {"name": "United Kingdom"},
					"location": {"latitude": "51.5942", "longitude": "not-a-number"}
				}],
				"attractions": [{
					"name": "Arctic Monkeys",
					"images": [{"url": "https://img.example.com/artist", "width": 300}]
				}]
			}
		}]
	},
	"page": {"size": 20, "totalElements": 87, "totalPages": 5}
}`

func TestTicketmasterSearch(t *testing.T) {
	var gotQuery url.Values
	tm := newTicketmaster(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(tmSearchPayload))
	})

	window := daterange.Resolve("today", time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC))
	res, err := tm.Search(context.Background(), providers.Query{
		City:    "London",
		Genre:   "rock",
		Keyword: "arctic",
		Window:  &window,
		Size:    20,
		Page:    1,
	})
	require.NoError(t, err)

	t.Run("maps query parameters", func(t *testing.T) {
		assert.Equal(t, "test-key", gotQuery.Get("apikey"))
		assert.Equal(t, "London", gotQuery.Get("city"))
		assert.Equal(t, "rock", gotQuery.Get("classificationName"))
		assert.Equal(t, "arctic", gotQuery.Get("keyword"))
		assert.Equal(t, "20", gotQuery.Get("size"))
		assert.Equal(t, "1", gotQuery.Get("page"))
		assert.Equal(t, "date,asc", gotQuery.Get("sort"))
		assert.Equal(t, "2024-05-15T00:00:00Z", gotQuery.Get("startDateTime"))
		assert.Equal(t, "2024-05-15T23:59:59Z", gotQuery.Get("endDateTime"))
	})

	t.Run("maps paging", func(t *testing.T) {
		assert.Equal(t, 87, res.TotalElements)
		assert.Equal(t, 5, res.TotalPages)
	})

	require.Len(t, res.Events, 1)
	ev := res.Events[0]

	t.Run("normalizes the event", func(t *testing.T) {
		assert.Equal(t, "tm-1", ev.ID)
		assert.Equal(t, "Arctic Waves Tour", ev.Name)
		assert.Equal(t, "Arctic Monkeys", ev.Artist)
		assert.Equal(t, "Rock", ev.Genre)
		assert.Equal(t, "Indie Rock", ev.SubGenre)
		assert.Equal(t, "2024-06-01", ev.Date)
		assert.Equal(t, "19:30:00", ev.Time)
		assert.Equal(t, "onsale", ev.Status)
		assert.False(t, ev.IsMock)
		require.NotNil(t, ev.AgeRestrictions)
		assert.Equal(t, "Age restricted", *ev.AgeRestrictions)
	})

	t.Run("largest image wins, first of ties", func(t *testing.T) {
		require.NotNil(t, ev.Image)
		assert.Equal(t, "https://img.example.com/b", *ev.Image)
	})

	t.Run("normalizes the venue", func(t *testing.T) {
		assert.Equal(t, "Alexandra Palace", ev.Venue.Name)
		assert.Equal(t, "London", ev.Venue.City)
		assert.Equal(t, venue.Small, ev.Venue.Type)
		require.NotNil(t, ev.Venue.Lat)
		assert.InDelta(t, 51.5942, *ev.Venue.Lat, 0.0001)
		assert.Nil(t, ev.Venue.Lng)
	})
}

func TestTicketmasterSearchLatLongOverridesCity(t *testing.T) {
	var gotQuery url.Values
	tm := newTicketmaster(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"page": {}}`))
	})

	_, err := tm.Search(context.Background(), providers.Query{
		City:    "London",
		LatLong: "51.5,-0.12",
		Size:    10,
	})
	require.NoError(t, err)

	assert.Equal(t, "51.5,-0.12", gotQuery.Get("latlong"))
	assert.Equal(t, "25", gotQuery.Get("radius"))
	assert.Empty(t, gotQuery.Get("city"))
}

func TestTicketmasterSearchFault(t *testing.T) {
	tm := newTicketmaster(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"fault": {"faultstring": "Invalid ApiKey"}}`))
	})

	_, err := tm.Search(context.Background(), providers.Query{Size: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid ApiKey")
}

func TestTicketmasterSearchUnexpectedStatus(t *testing.T) {
	tm := newTicketmaster(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := tm.Search(context.Background(), providers.Query{Size: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestTicketmasterLookup(t *testing.T) {
	tm := newTicketmaster(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/events/tm-9.json")
		w.Write([]byte(`{"id": "tm-9", "name": "Solo Night"}`))
	})

	ev, err := tm.Lookup(context.Background(), "tm-9")
	require.NoError(t, err)

	assert.Equal(t, "tm-9", ev.ID)
	assert.Equal(t, "Solo Night", ev.Name)
	// No classification or venue on the payload: defaults apply.
	assert.Equal(t, "Music", ev.Genre)
	assert.Equal(t, "TBA", ev.Venue.Name)
	assert.Equal(t, "Solo Night", ev.Artist)
}

func TestTicketmasterConfigured(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"", false},
		{"REPLACE_ME", false},
		{"YOUR_API_KEY_HERE", false},
		{"real-key", true},
	}

	for _, tt := range tests {
		tm := providers.NewTicketmaster(config.Provider{APIKey: tt.key}, quietLog())
		assert.Equal(t, tt.want, tm.Configured(), "key %q", tt.key)
	}
}
