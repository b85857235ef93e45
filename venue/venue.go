// Package venue classifies venues into the fixed category set used for
// filtering and display.
package venue

import "strings"

type Category string

const (
	Arena    Category = "arena"
	Club     Category = "club"
	Pub      Category = "pub"
	Small    Category = "small"
	Festival Category = "festival"
	Outdoor  Category = "outdoor"
)

// arenaCapacity is the attendance above which a venue counts as an arena
// regardless of its name.
const arenaCapacity = 5000

// Rule order matters: names like "Garden Arena" match more than one bucket
// and must keep classifying the same way for every provider.
var rules = []struct {
	category Category
	keywords []string
}{
	{Festival, []string{"festival", "grounds", "fest "}},
	{Outdoor, []string{"park", "amphitheat", "outdoor", "garden"}},
	{Pub, []string{"pub", "bar", "tavern", "inn", "saloon", "arms"}},
	{Club, []string{"club", "lounge", "nightclub", "warehouse", "disco"}},
	{Arena, []string{"arena", "stadium", "center", "centre", "hall", "halle", "academy"}},
}

// Classify maps a raw venue record to a Category by case-insensitive
// substring matching against its display name, first matching rule wins.
// It is total: anything unmatched lands in Small.
func Classify(name, rawType string, capacity int) Category {
	n := strings.ToLower(name)
	t := strings.ToLower(rawType)

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(n, kw) {
				return r.category
			}
		}
		if r.category == Festival && strings.Contains(t, "festival") {
			return Festival
		}
		if r.category == Arena && capacity > arenaCapacity {
			return Arena
		}
	}

	return Small
}
