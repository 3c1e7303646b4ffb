package domain

import "time"

// MaxPostLength is the upper bound on post and about-me bodies, in runes.
const MaxPostLength = 140

type Post struct {
	ID        int64     `json:"id"`
	Body      string    `json:"body"`
	UserID    int64     `json:"user_id"`
	Language  string    `json:"language,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	// Joined fields
	AuthorUsername string `json:"author_username,omitempty"`
}
