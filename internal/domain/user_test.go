package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAuthenticated(t *testing.T) {
	t.Parallel()

	var anonymous *User
	assert.False(t, anonymous.IsAuthenticated())
	assert.False(t, (&User{}).IsAuthenticated())
	assert.True(t, (&User{ID: 1}).IsAuthenticated())
}

func TestAvatarURL(t *testing.T) {
	t.Parallel()

	u := &User{Email: "John@Example.com"}

	// Case-insensitive on the email: gravatar hashes the lowercased address.
	assert.Equal(t, (&User{Email: "john@example.com"}).AvatarURL(128), u.AvatarURL(128))
	assert.Contains(t, u.AvatarURL(128), "s=128")
	assert.Contains(t, u.AvatarURL(36), "s=36")
}
