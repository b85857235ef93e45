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

// Skiddle adapts the Skiddle v1 events API. Skiddle has no genre parameter,
// so genre filtering is left to the caller; everything it lists under the
// LIVE event code is tagged "Live Music".
type Skiddle struct {
	cfg    config.Provider
	client *http.Client
	log    logrus.FieldLogger
}

func NewSkiddle(cfg config.Provider, log logrus.FieldLogger) *Skiddle {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.skiddle.com/api/v1"
	}
	return &Skiddle{
		cfg:    cfg,
		client: newHTTPClient(cfg.Timeout),
		log:    log,
	}
}

func (s *Skiddle) Name() string { return "skiddle" }

func (s *Skiddle) Configured() bool { return usableKey(s.cfg.APIKey) }

func (s *Skiddle) Search(ctx context.Context, q Query) (Result, error) {
	params := url.Values{}
	params.Set("api_key", s.cfg.APIKey)
	params.Set("limit", strconv.Itoa(q.Size))
	params.Set("offset", strconv.Itoa(q.Page*q.Size))
	params.Set("order", "date")
	params.Set("description", "1")
	params.Set("eventcode", "LIVE")

	if lat, lng, ok := splitLatLong(q.LatLong); ok {
		params.Set("latitude", lat)
		params.Set("longitude", lng)
		params.Set("radius", "10")
		params.Set("order", "distance")
	} else if q.City != "" {
		// No city parameter upstream; a keyword search is the closest match.
		params.Set("keyword", q.City)
	}
	if q.Keyword != "" {
		params.Set("keyword", q.Keyword)
	}
	if q.Window != nil {
		params.Set("minDate", q.Window.Start.Format("2006-01-02"))
		params.Set("maxDate", q.Window.End.Format("2006-01-02"))
	}

	s.log.WithField("provider", s.Name()).Debug("fetching upstream events")

	var payload skSearchResponse
	if err := s.get(ctx, s.cfg.BaseURL+"/events/search/?"+params.Encode(), &payload); err != nil {
		return Result{}, err
	}
	if payload.Error != 0 {
		return Result{}, fmt.Errorf("skiddle error: %s", payload.ErrorMessage)
	}

	events := make([]entity.Event, 0, len(payload.Results))
	for _, raw := range payload.Results {
		events = append(events, normalizeSkiddle(raw))
	}

	total := len(events)
	if n, err := payload.TotalCount.Int64(); err == nil && n > 0 {
		total = int(n)
	}

	return Result{Events: events, TotalElements: total}, nil
}

func (s *Skiddle) Lookup(ctx context.Context, id string) (entity.Event, error) {
	params := url.Values{}
	params.Set("api_key", s.cfg.APIKey)

	var payload skDetailResponse
	u := fmt.Sprintf("%s/events/%s/?%s", s.cfg.BaseURL, url.PathEscape(id), params.Encode())
	if err := s.get(ctx, u, &payload); err != nil {
		return entity.Event{}, err
	}
	if payload.Error != 0 {
		return entity.Event{}, fmt.Errorf("skiddle error: %s", payload.ErrorMessage)
	}

	return normalizeSkiddle(payload.Results), nil
}

func (s *Skiddle) get(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	res, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling skiddle: %w", err)
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

type skSearchResponse struct {
	Error        int         `json:"error"`
	ErrorMessage string      `json:"errormessage"`
	TotalCount   json.Number `json:"totalcount"`
	Results      []skEvent   `json:"results"`
}

type skDetailResponse struct {
	Error        int     `json:"error"`
	ErrorMessage string  `json:"errormessage"`
	Results      skEvent `json:"results"`
}

type skEvent struct {
	ID            json.Number `json:"id"`
	EventName     string `json:"eventname"`
	Description   string `json:"description"`
	Date          string `json:"date"`
	EntryPrice    string `json:"entryprice"`
	Link          string `json:"link"`
	ImageURL      string `json:"imageurl"`
	LargeImageURL string `json:"largeimageurl"`
	MinAge        string `json:"minage"`
	OpeningTimes  struct {
		DoorsOpen string `json:"doorsopen"`
	} `json:"openingtimes"`
	Artists []struct {
		Name  string `json:"name"`
		Image string `json:"image"`
	} `json:"artists"`
	Items []struct {
		Type string `json:"type"`
		Name string `json:"name"`
	} `json:"items"`
	Venue struct {
		ID        json.Number `json:"id"`
		Name      string      `json:"name"`
		Town      string      `json:"town"`
		Country   string      `json:"country"`
		Address   string      `json:"address"`
		Latitude  json.Number `json:"latitude"`
		Longitude json.Number `json:"longitude"`
	} `json:"venue"`
}

func normalizeSkiddle(raw skEvent) entity.Event {
	artist := raw.EventName
	var artistImage *string
	if len(raw.Artists) > 0 {
		if raw.Artists[0].Name != "" {
			artist = raw.Artists[0].Name
		}
		if raw.Artists[0].Image != "" {
			u := raw.Artists[0].Image
			artistImage = &u
		}
	}
	if artistImage == nil && raw.LargeImageURL != "" {
		u := raw.LargeImageURL
		artistImage = &u
	}

	subGenre := ""
	for _, item := range raw.Items {
		if item.Type == "genre" {
			subGenre = item.Name
			break
		}
	}

	eventTime := raw.OpeningTimes.DoorsOpen
	if eventTime == "" {
		eventTime = "19:00"
	}

	var image *string
	if raw.LargeImageURL != "" {
		u := raw.LargeImageURL
		image = &u
	} else if raw.ImageURL != "" {
		u := raw.ImageURL
		image = &u
	}

	priceRanges := []entity.PriceRange{}
	if raw.EntryPrice != "" {
		priceRanges = append(priceRanges, entity.PriceRange{
			Min:      0,
			Max:      0,
			Currency: "GBP",
			Type:     raw.EntryPrice,
		})
	}

	venueName := raw.Venue.Name
	if venueName == "" {
		venueName = "TBA"
	}

	country := raw.Venue.Country
	if country == "" {
		country = "UK"
	}

	ticketURL := raw.Link
	if ticketURL == "" {
		ticketURL = "#"
	}

	var age *string
	if raw.MinAge != "" && raw.MinAge != "0" {
		a := "Min Age: " + raw.MinAge
		age = &a
	}

	return entity.Event{
		ID:          raw.ID.String(),
		Name:        raw.EventName,
		Artist:      artist,
		ArtistImage: artistImage,
		Genre:       "Live Music",
		SubGenre:    subGenre,
		Segment:     "Music",
		Date:        raw.Date,
		Time:        eventTime,
		Status:      "onsale",
		Image:       image,
		Images:      nonEmpty(raw.LargeImageURL, raw.ImageURL),
		Venue: entity.Venue{
			ID:      raw.Venue.ID.String(),
			Name:    venueName,
			City:    raw.Venue.Town,
			Country: country,
			Address: raw.Venue.Address,
			Lat:     parseCoord(raw.Venue.Latitude.String()),
			Lng:     parseCoord(raw.Venue.Longitude.String()),
			Type:    venue.Classify(raw.Venue.Name, "", 0),
		},
		PriceRanges:     priceRanges,
		TicketURL:       ticketURL,
		Info:            raw.Description,
		AgeRestrictions: age,
		IsMock:          false,
	}
}

var _ Provider = (*Skiddle)(nil)
