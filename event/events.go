// Package event defines the activity events published by the HTTP layer and
// consumed by the message router.
package event

import (
	"time"

	"github.com/ThreeDotsLabs/watermill"
)

type Header struct {
	ID          string    `json:"id"`
	PublishedAt time.Time `json:"published_at"`
}

func NewHeader() Header {
	return Header{
		ID:          watermill.NewUUID(),
		PublishedAt: time.Now().UTC(),
	}
}

type SearchPerformed struct {
	Header Header `json:"header"`
	UserID string `json:"user_id,omitempty"`
	Term   string `json:"term"`
	City   string `json:"city,omitempty"`
	Genre  string `json:"genre,omitempty"`
}

func NewSearchPerformed(userID, term, city, genre string) SearchPerformed {
	return SearchPerformed{
		Header: NewHeader(),
		UserID: userID,
		Term:   term,
		City:   city,
		Genre:  genre,
	}
}

type EventFavourited struct {
	Header  Header `json:"header"`
	UserID  string `json:"user_id"`
	EventID string `json:"event_id"`
}

func NewEventFavourited(userID, eventID string) EventFavourited {
	return EventFavourited{
		Header:  NewHeader(),
		UserID:  userID,
		EventID: eventID,
	}
}

type EventUnfavourited struct {
	Header  Header `json:"header"`
	UserID  string `json:"user_id"`
	EventID string `json:"event_id"`
}

func NewEventUnfavourited(userID, eventID string) EventUnfavourited {
	return EventUnfavourited{
		Header:  NewHeader(),
		UserID:  userID,
		EventID: eventID,
	}
}
