// Package providers contains one adapter per upstream ticketing API. Each
// adapter maps the canonical query shape onto its provider's native
// parameters, performs the single HTTP call, and normalizes the payload into
// the canonical Event shape. Normalization itself is pure: malformed fields
// degrade to defaults, never to errors.
package providers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/turi333-pixel/Gigstar/config"
	"github.com/turi333-pixel/Gigstar/daterange"
	"github.com/turi333-pixel/Gigstar/entity"
)

// Query is the canonical search shape. Coordinates take precedence over City
// when both are set.
type Query struct {
	City    string
	LatLong string // "lat,lng"
	Genre   string
	Keyword string
	Window  *daterange.Range
	Size    int
	Page    int
}

type Result struct {
	Events        []entity.Event
	TotalElements int
	TotalPages    int
}

// Provider is the adapter capability the gateway depends on.
type Provider interface {
	Name() string
	Configured() bool
	Search(ctx context.Context, q Query) (Result, error)
	Lookup(ctx context.Context, id string) (entity.Event, error)
}

func NewFromConfig(cfg config.Config, log logrus.FieldLogger) (Provider, error) {
	switch cfg.Provider {
	case "", "ticketmaster":
		return NewTicketmaster(cfg.Ticketmaster, log), nil
	case "skiddle":
		return NewSkiddle(cfg.Skiddle, log), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}

// Placeholder credentials shipped in sample configs count as unconfigured.
var placeholderKeys = map[string]struct{}{
	"":                  {},
	"REPLACE_ME":        {},
	"YOUR_API_KEY_HERE": {},
}

func usableKey(key string) bool {
	_, placeholder := placeholderKeys[key]
	return !placeholder
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

func splitLatLong(latLong string) (lat, lng string, ok bool) {
	parts := strings.SplitN(latLong, ",", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	lat = strings.TrimSpace(parts[0])
	lng = strings.TrimSpace(parts[1])
	return lat, lng, lat != "" && lng != ""
}

// parseCoord returns nil for anything that is not a number, per the
// degrade-to-null policy for malformed fields.
func parseCoord(raw string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil
	}
	return &v
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
