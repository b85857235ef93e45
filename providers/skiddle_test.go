package providers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turi333-pixel/Gigstar/config"
	"github.com/turi333-pixel/Gigstar/providers"
	"github.com/turi333-pixel/Gigstar/venue"
)

func newSkiddle(t *testing.T, handler http.HandlerFunc) *providers.Skiddle {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return providers.NewSkiddle(config.Provider{
		BaseURL: server.URL,
		APIKey:  "test-key",
	}, quietLog())
}

const skSearchPayload = `{
	"error": 0,
	"totalcount": "34",
	"results": [{
		"id": 12345,
		"eventname": "Blues at the Bar",
		"description": "An intimate blues night.",
		"date": "2024-06-07",
		"entryprice": "£12 adv",
		"link": "https://skiddle.example.com/e/12345",
		"largeimageurl": "https://img.example.com/large",
		"imageurl": "https://img.example.com/small",
		"minage": "18",
		"openingtimes": {"doorsopen": "20:00"},
		"artists": [{"name": "Gary Clark Jr.", "image": "https://img.example.com/artist"}],
		"items": [{"type": "genre", "name": "Blues"}],
		"venue": {
			"id": 678,
			"name": "The Half Moon Putney",
			"town": "London",
			"latitude": 51.4651,
			"longitude": -0.2165
		}
	}]
}`

func TestSkiddleSearch(t *testing.T) {
	var gotQuery url.Values
	sk := newSkiddle(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(skSearchPayload))
	})

	res, err := sk.Search(context.Background(), providers.Query{
		City: "London",
		Size: 10,
		Page: 2,
	})
	require.NoError(t, err)

	t.Run("maps query parameters", func(t *testing.T) {
		assert.Equal(t, "test-key", gotQuery.Get("api_key"))
		assert.Equal(t, "10", gotQuery.Get("limit"))
		assert.Equal(t, "20", gotQuery.Get("offset"))
		assert.Equal(t, "LIVE", gotQuery.Get("eventcode"))
		// There is no city parameter upstream.
		assert.Equal(t, "London", gotQuery.Get("keyword"))
	})

	assert.Equal(t, 34, res.TotalElements)
	require.Len(t, res.Events, 1)
	ev := res.Events[0]

	t.Run("normalizes the event", func(t *testing.T) {
		assert.Equal(t, "12345", ev.ID)
		assert.Equal(t, "Blues at the Bar", ev.Name)
		assert.Equal(t, "Gary Clark Jr.", ev.Artist)
		assert.Equal(t, "Live Music", ev.Genre)
		assert.Equal(t, "Blues", ev.SubGenre)
		assert.Equal(t, "Music", ev.Segment)
		assert.Equal(t, "2024-06-07", ev.Date)
		assert.Equal(t, "20:00", ev.Time)
		assert.Equal(t, "onsale", ev.Status)
		require.NotNil(t, ev.AgeRestrictions)
		assert.Equal(t, "Min Age: 18", *ev.AgeRestrictions)
	})

	t.Run("entry price becomes a labelled range", func(t *testing.T) {
		require.Len(t, ev.PriceRanges, 1)
		assert.Equal(t, "GBP", ev.PriceRanges[0].Currency)
		assert.Equal(t, "£12 adv", ev.PriceRanges[0].Type)
	})

	t.Run("normalizes the venue", func(t *testing.T) {
		assert.Equal(t, "678", ev.Venue.ID)
		assert.Equal(t, "The Half Moon Putney", ev.Venue.Name)
		assert.Equal(t, "London", ev.Venue.City)
		assert.Equal(t, "UK", ev.Venue.Country)
		assert.Equal(t, venue.Small, ev.Venue.Type)
		require.NotNil(t, ev.Venue.Lat)
		assert.InDelta(t, 51.4651, *ev.Venue.Lat, 0.0001)
	})
}

func TestSkiddleSearchLatLong(t *testing.T) {
	var gotQuery url.Values
	sk := newSkiddle(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"error": 0, "results": []}`))
	})

	_, err := sk.Search(context.Background(), providers.Query{
		LatLong: "53.48,-2.24",
		Size:    10,
	})
	require.NoError(t, err)

	assert.Equal(t, "53.48", gotQuery.Get("latitude"))
	assert.Equal(t, "-2.24", gotQuery.Get("longitude"))
	assert.Equal(t, "10", gotQuery.Get("radius"))
	assert.Equal(t, "distance", gotQuery.Get("order"))
}

func TestSkiddleSearchError(t *testing.T) {
	sk := newSkiddle(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": 1, "errormessage": "Invalid API key"}`))
	})

	_, err := sk.Search(context.Background(), providers.Query{Size: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API key")
}

func TestSkiddleNormalizationDefaults(t *testing.T) {
	sk := newSkiddle(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"error": 0,
			"results": [{"id": "99", "eventname": "Mystery Gig"}]
		}`))
	})

	res, err := sk.Search(context.Background(), providers.Query{Size: 10})
	require.NoError(t, err)
	require.Len(t, res.Events, 1)
	ev := res.Events[0]

	assert.Equal(t, "Mystery Gig", ev.Artist)
	assert.Equal(t, "19:00", ev.Time)
	assert.Equal(t, "TBA", ev.Venue.Name)
	assert.Equal(t, "UK", ev.Venue.Country)
	assert.Equal(t, "#", ev.TicketURL)
	assert.Empty(t, ev.PriceRanges)
	assert.Nil(t, ev.AgeRestrictions)
	assert.Nil(t, ev.Venue.Lat)
}

func TestSkiddleLookup(t *testing.T) {
	sk := newSkiddle(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/events/99/")
		w.Write([]byte(`{
			"error": 0,
			"results": {"id": 99, "eventname": "Mystery Gig"}
		}`))
	})

	ev, err := sk.Lookup(context.Background(), "99")
	require.NoError(t, err)
	assert.Equal(t, "99", ev.ID)
	assert.Equal(t, "Mystery Gig", ev.Name)
}
