package domain

import (
	"crypto/md5"
	"fmt"
	"strings"
	"time"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	AboutMe      string    `json:"about_me"`
	LastSeen     time.Time `json:"last_seen"`
	CreatedAt    time.Time `json:"created_at"`
	// Joined fields
	FollowerCount int `json:"follower_count,omitempty"`
	FollowedCount int `json:"followed_count,omitempty"`
}

// IsAuthenticated reports whether this principal is a real, persisted user.
// A nil receiver stands for the anonymous principal.
func (u *User) IsAuthenticated() bool {
	return u != nil && u.ID != 0
}

// AvatarURL returns a gravatar URL for the user's email, scaled to size pixels.
func (u *User) AvatarURL(size int) string {
	digest := md5.Sum([]byte(strings.ToLower(u.Email)))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?d=retro&s=%d", digest, size)
}
