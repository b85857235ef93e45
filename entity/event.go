package entity

import "github.com/turi333-pixel/Gigstar/venue"

// Event is the canonical, provider-agnostic event shape returned to the UI.
// Every consumer must check IsMock before treating the data as authoritative.
type Event struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Artist          string       `json:"artist"`
	ArtistImage     *string      `json:"artistImage,omitempty"`
	Genre           string       `json:"genre"`
	SubGenre        string       `json:"subGenre"`
	Segment         string       `json:"segment"`
	Date            string       `json:"date"`
	Time            string       `json:"time"`
	Timezone        string       `json:"timezone,omitempty"`
	Status          string       `json:"status"`
	Image           *string      `json:"image"`
	Images          []string     `json:"images"`
	Venue           Venue        `json:"venue"`
	PriceRanges     []PriceRange `json:"priceRanges"`
	TicketURL       string       `json:"ticketUrl"`
	SeatmapURL      *string      `json:"seatmapUrl"`
	Info            string       `json:"info"`
	AgeRestrictions *string      `json:"ageRestrictions"`
	IsMock          bool         `json:"isMock"`
}

type Venue struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	City    string         `json:"city"`
	State   string         `json:"state"`
	Country string         `json:"country"`
	Address string         `json:"address"`
	Lat     *float64       `json:"lat"`
	Lng     *float64       `json:"lng"`
	Type    venue.Category `json:"type"`
}

// PriceRange with Min and Max both zero means confirmed free entry. An empty
// PriceRanges slice on the event means the price is unknown.
type PriceRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
	Type     string  `json:"type"`
}
