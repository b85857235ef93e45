package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/turi333-pixel/Gigstar/config"
	"github.com/turi333-pixel/Gigstar/entity"
	"github.com/turi333-pixel/Gigstar/venue"
)

// Ticketmaster adapts the Discovery v2 API.
type Ticketmaster struct {
	cfg    config.Provider
	client *http.Client
	log    logrus.FieldLogger
}

func NewTicketmaster(cfg config.Provider, log logrus.FieldLogger) *Ticketmaster {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://app.ticketmaster.com/discovery/v2"
	}
	return &Ticketmaster{
		cfg:    cfg,
		client: newHTTPClient(cfg.Timeout),
		log:    log,
	}
}

func (t *Ticketmaster) Name() string { return "ticketmaster" }

func (t *Ticketmaster) Configured() bool { return usableKey(t.cfg.APIKey) }

func (t *Ticketmaster) Search(ctx context.Context, q Query) (Result, error) {
	params := url.Values{}
	params.Set("apikey", t.cfg.APIKey)
	params.Set("locale", "*")
	params.Set("classificationName", "Music")
	params.Set("size", strconv.Itoa(q.Size))
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("sort", "date,asc")

	if lat, lng, ok := splitLatLong(q.LatLong); ok {
		params.Set("latlong", lat+","+lng)
		params.Set("radius", "25")
		params.Set("unit", "miles")
	} else if q.City != "" {
		params.Set("city", q.City)
	}
	if q.Genre != "" {
		params.Set("classificationName", q.Genre)
	}
	if q.Keyword != "" {
		params.Set("keyword", q.Keyword)
	}
	if q.Window != nil {
		params.Set("startDateTime", q.Window.Start.UTC().Format("2006-01-02T15:04:05Z"))
		params.Set("endDateTime", q.Window.End.UTC().Format("2006-01-02T15:04:05Z"))
	}

	t.log.WithField("provider", t.Name()).Debug("fetching upstream events")

	var payload tmSearchResponse
	if err := t.get(ctx, t.cfg.BaseURL+"/events.json?"+params.Encode(), &payload); err != nil {
		return Result{}, err
	}
	if payload.Fault != nil {
		return Result{}, fmt.Errorf("ticketmaster fault: %s", payload.Fault.FaultString)
	}

	events := make([]entity.Event, 0, len(payload.Embedded.Events))
	for _, raw := range payload.Embedded.Events {
		events = append(events, normalizeTicketmaster(raw))
	}

	return Result{
		Events:        events,
		TotalElements: payload.Page.TotalElements,
		TotalPages:    payload.Page.TotalPages,
	}, nil
}

func (t *Ticketmaster) Lookup(ctx context.Context, id string) (entity.Event, error) {
	params := url.Values{}
	params.Set("apikey", t.cfg.APIKey)
	params.Set("locale", "*")

	var raw tmEvent
	u := fmt.Sprintf("%s/events/%s.json?%s", t.cfg.BaseURL, url.PathEscape(id), params.Encode())
	if err := t.get(ctx, u, &raw); err != nil {
		return entity.Event{}, err
	}

	return normalizeTicketmaster(raw), nil
}

func (t *Ticketmaster) get(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	res, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling ticketmaster: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

type tmSearchResponse struct {
	Embedded struct {
		Events []tmEvent `json:"events"`
	} `json:"_embedded"`
	Page struct {
		Size          int `json:"size"`
		TotalElements int `json:"totalElements"`
		TotalPages    int `json:"totalPages"`
	} `json:"page"`
	Fault *struct {
		FaultString string `json:"faultstring"`
	} `json:"fault"`
}

type tmEvent struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	URL   string `json:"url"`
	Info  string `json:"info"`
	Dates struct {
		Start struct {
			LocalDate string `json:"localDate"`
			LocalTime string `json:"localTime"`
		} `json:"start"`
		Timezone string `json:"timezone"`
		Status   struct {
			Code string `json:"code"`
		} `json:"status"`
	} `json:"dates"`
	Classifications []struct {
		Segment  tmNamed `json:"segment"`
		Genre    tmNamed `json:"genre"`
		SubGenre tmNamed `json:"subGenre"`
	} `json:"classifications"`
	Images      []tmImage `json:"images"`
	PriceRanges []struct {
		Type     string  `json:"type"`
		Currency string  `json:"currency"`
		Min      float64 `json:"min"`
		Max      float64 `json:"max"`
	} `json:"priceRanges"`
	Seatmap struct {
		StaticURL string `json:"staticUrl"`
	} `json:"seatmap"`
	AgeRestrictions struct {
		LegalAgeEnforced bool `json:"legalAgeEnforced"`
	} `json:"ageRestrictions"`
	Embedded struct {
		Venues      []tmVenue `json:"venues"`
		Attractions []struct {
			Name   string    `json:"name"`
			Images []tmImage `json:"images"`
		} `json:"attractions"`
	} `json:"_embedded"`
}

type tmNamed struct {
	Name string `json:"name"`
}

type tmImage struct {
	URL   string `json:"url"`
	Width int    `json:"width"`
}

type tmVenue struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	City    tmNamed `json:"city"`
	State   tmNamed `json:"state"`
	Country tmNamed `json:"country"`
	Address struct {
		Line1 string `json:"line1"`
	} `json:"address"`
	Location struct {
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"location"`
	Capacity int `json:"capacity"`
}

func normalizeTicketmaster(raw tmEvent) entity.Event {
	var v tmVenue
	if len(raw.Embedded.Venues) > 0 {
		v = raw.Embedded.Venues[0]
	}

	artist := raw.Name
	var artistImage *string
	if len(raw.Embedded.Attractions) > 0 {
		a := raw.Embedded.Attractions[0]
		if a.Name != "" {
			artist = a.Name
		}
		if len(a.Images) > 0 && a.Images[0].URL != "" {
			u := a.Images[0].URL
			artistImage = &u
		}
	}

	genre := "Music"
	subGenre := ""
	segment := ""
	if len(raw.Classifications) > 0 {
		c := raw.Classifications[0]
		if c.Genre.Name != "" {
			genre = c.Genre.Name
		}
		subGenre = c.SubGenre.Name
		segment = c.Segment.Name
	}

	images := make([]string, 0, len(raw.Images))
	for _, img := range raw.Images {
		if img.URL != "" {
			images = append(images, img.URL)
		}
	}

	priceRanges := make([]entity.PriceRange, 0, len(raw.PriceRanges))
	for _, pr := range raw.PriceRanges {
		priceRanges = append(priceRanges, entity.PriceRange{
			Min:      pr.Min,
			Max:      pr.Max,
			Currency: pr.Currency,
			Type:     pr.Type,
		})
	}

	venueName := v.Name
	if venueName == "" {
		venueName = "TBA"
	}

	var age *string
	if raw.AgeRestrictions.LegalAgeEnforced {
		restricted := "Age restricted"
		age = &restricted
	}

	var seatmap *string
	if raw.Seatmap.StaticURL != "" {
		u := raw.Seatmap.StaticURL
		seatmap = &u
	}

	return entity.Event{
		ID:          raw.ID,
		Name:        raw.Name,
		Artist:      artist,
		ArtistImage: artistImage,
		Genre:       genre,
		SubGenre:    subGenre,
		Segment:     segment,
		Date:        raw.Dates.Start.LocalDate,
		Time:        raw.Dates.Start.LocalTime,
		Timezone:    raw.Dates.Timezone,
		Status:      raw.Dates.Status.Code,
		Image:       bestImage(raw.Images),
		Images:      images,
		Venue: entity.Venue{
			ID:      v.ID,
			Name:    venueName,
			City:    v.City.Name,
			State:   v.State.Name,
			Country: v.Country.Name,
			Address: v.Address.Line1,
			Lat:     parseCoord(v.Location.Latitude),
			Lng:     parseCoord(v.Location.Longitude),
			Type:    venue.Classify(v.Name, "", v.Capacity),
		},
		PriceRanges:     priceRanges,
		TicketURL:       raw.URL,
		SeatmapURL:      seatmap,
		Info:            raw.Info,
		AgeRestrictions: age,
		IsMock:          false,
	}
}

// bestImage picks the URL with the largest declared width; ties keep the
// earliest candidate so the choice is stable across calls.
func bestImage(images []tmImage) *string {
	var best *tmImage
	for i := range images {
		if images[i].URL == "" {
			continue
		}
		if best == nil || images[i].Width > best.Width {
			best = &images[i]
		}
	}
	if best == nil {
		return nil
	}
	u := best.URL
	return &u
}

var _ Provider = (*Ticketmaster)(nil)
