// Package mockdata produces deterministic synthetic events. It is the
// fallback of last resort when no provider is reachable or configured, so the
// UI always has something to show. Identical inputs must yield identical
// output; do not swap the seeded ordering for a random number generator.
package mockdata

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/turi333-pixel/Gigstar/entity"
	"github.com/turi333-pixel/Gigstar/venue"
)

const defaultCity = "London"

type Params struct {
	City    string
	Genre   string
	Keyword string
	Count   int
}

// Generate returns up to p.Count synthetic events for the requested city, all
// flagged IsMock. The order and venue assignment are a pure function of the
// city name: the seed is the sum of its character codes.
func Generate(p Params, now time.Time) []entity.Event {
	city := p.City
	if city == "" {
		city = defaultCity
	}
	count := p.Count
	if count <= 0 {
		count = 20
	}

	venues := venuesFor(city)
	seed := charCodeSum(city)

	tpls := make([]template, len(templates))
	copy(tpls, templates)
	sort.SliceStable(tpls, func(i, j int) bool {
		return (len(tpls[i].name)+seed)%10 < (len(tpls[j].name)+seed)%10
	})

	if p.Genre != "" && !strings.EqualFold(p.Genre, "all") {
		tpls = filter(tpls, func(t template) bool {
			return strings.EqualFold(t.genre, p.Genre)
		})
	}
	if p.Keyword != "" {
		kw := strings.ToLower(p.Keyword)
		tpls = filter(tpls, func(t template) bool {
			return strings.Contains(strings.ToLower(t.name), kw) ||
				strings.Contains(strings.ToLower(t.artist), kw) ||
				strings.Contains(strings.ToLower(t.genre), kw)
		})
	}

	if count < len(tpls) {
		tpls = tpls[:count]
	}

	events := make([]entity.Event, 0, len(tpls))
	for i, t := range tpls {
		events = append(events, materialize(t, i, seed, city, venues, now))
	}

	return events
}

func materialize(t template, i, seed int, city string, venues catalogue, now time.Time) entity.Event {
	list := venues[t.venueType]
	if len(list) == 0 {
		list = venues[venue.Arena]
	}
	if len(list) == 0 {
		list = []string{city + " Venue"}
	}
	venueName := list[(i+seed)%len(list)]

	img := genreImages[t.genre]
	if img == "" {
		img = genreImages["Rock"]
	}

	minute := "00"
	if i%2 != 0 {
		minute = "30"
	}

	var age *string
	if t.venueType == venue.Club {
		over18 := "18+"
		age = &over18
	}

	return entity.Event{
		ID:       fmt.Sprintf("mock-%d", i),
		Name:     t.name,
		Artist:   t.artist,
		Genre:    t.genre,
		SubGenre: "",
		Segment:  "Music",
		// Events spread over a rolling two-week window.
		Date:   now.UTC().AddDate(0, 0, i%14).Format("2006-01-02"),
		Time:   fmt.Sprintf("%d:%s:00", 18+i%5, minute),
		Status: "onsale",
		Image:  &img,
		Images: []string{img},
		Venue: entity.Venue{
			ID:   fmt.Sprintf("v-%d", i),
			Name: venueName,
			City: city,
			Type: t.venueType,
		},
		// A 0/0 template price is a confirmed free entry, not "unknown".
		PriceRanges: []entity.PriceRange{
			{Min: t.priceMin, Max: t.priceMax, Currency: "EUR", Type: "standard"},
		},
		TicketURL:       "#",
		Info:            fmt.Sprintf("Live at %s, %s. %s vibes all night.", venueName, city, t.genre),
		AgeRestrictions: age,
		IsMock:          true,
	}
}

func venuesFor(city string) catalogue {
	for name, venues := range cityVenues {
		if strings.EqualFold(name, city) {
			return venues
		}
	}
	return catalogue{
		venue.Arena:    {city + " Arena", city + " Concert Hall", city + " Civic Center"},
		venue.Club:     {"Club " + city, "The Underground " + city, "Basement " + city},
		venue.Pub:      {"The " + city + " Arms", city + " Music Bar", "The Corner Pub"},
		venue.Small:    {city + " Music Room", "The Loft " + city, city + " Studio"},
		venue.Festival: {city + " Summer Festival", city + " Music Fest"},
		venue.Outdoor:  {city + " City Park Stage", city + " Open Air"},
	}
}

func charCodeSum(s string) int {
	sum := 0
	for _, r := range s {
		sum += int(r)
	}
	return sum
}

func filter(tpls []template, keep func(template) bool) []template {
	out := tpls[:0]
	for _, t := range tpls {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
