package venue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/turi333-pixel/Gigstar/venue"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		rawType  string
		capacity int
		want     venue.Category
	}{
		{name: "Wembley Stadium", want: venue.Arena},
		{name: "Manchester Academy", want: venue.Arena},
		{name: "Royal Albert Hall", want: venue.Arena},
		{name: "Fabric Nightclub", want: venue.Club},
		{name: "The Warehouse Project", want: venue.Club},
		{name: "The Dog & Duck Pub", want: venue.Pub},
		{name: "The Red Lion Arms", want: venue.Pub},
		{name: "Glastonbury Festival Grounds", want: venue.Festival},
		{name: "Hyde Park Stage", want: venue.Outdoor},
		{name: "Botanical Garden Pavilion", want: venue.Outdoor},
		{name: "Joe's Basement", want: venue.Small},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, venue.Classify(tt.name, tt.rawType, tt.capacity))
		})
	}
}

func TestClassifyPrecedence(t *testing.T) {
	t.Run("festival beats arena", func(t *testing.T) {
		assert.Equal(t, venue.Festival, venue.Classify("Festival Arena", "", 0))
	})

	t.Run("outdoor beats arena", func(t *testing.T) {
		assert.Equal(t, venue.Outdoor, venue.Classify("Garden Arena", "", 0))
	})

	t.Run("pub beats club", func(t *testing.T) {
		assert.Equal(t, venue.Pub, venue.Classify("The Tavern Club", "", 0))
	})
}

func TestClassifyFallbacks(t *testing.T) {
	t.Run("large capacity implies arena", func(t *testing.T) {
		assert.Equal(t, venue.Arena, venue.Classify("The Bowl", "", 12000))
	})

	t.Run("capacity at threshold stays small", func(t *testing.T) {
		assert.Equal(t, venue.Small, venue.Classify("The Bowl", "", 5000))
	})

	t.Run("festival raw type", func(t *testing.T) {
		assert.Equal(t, venue.Festival, venue.Classify("Worthy Farm", "Festival", 0))
	})

	t.Run("unmatched name defaults to small", func(t *testing.T) {
		assert.Equal(t, venue.Small, venue.Classify("Sala Apolo", "", 0))
	})
}
