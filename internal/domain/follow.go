package domain

import "time"

// Follow is a directed edge: follower follows followed. The pair is the
// identity, there is no payload beyond the insertion time.
type Follow struct {
	FollowerID int64     `json:"follower_id"`
	FollowedID int64     `json:"followed_id"`
	CreatedAt  time.Time `json:"created_at"`
}
