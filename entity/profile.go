package entity

import "time"

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}

type Favourite struct {
	Event   Event     `json:"event"`
	SavedAt time.Time `json:"savedAt"`
}

type SearchEntry struct {
	Term       string    `json:"term"`
	SearchedAt time.Time `json:"timestamp"`
}
