package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microblog/internal/domain"
)

func TestSubmit_LengthBounds(t *testing.T) {
	t.Parallel()

	followRepo := newFakeFollowRepo()
	svc := NewPostService(newFakePostRepo(followRepo), 3)
	author := &domain.User{ID: 1, Username: "john"}
	ctx := context.Background()

	_, err := svc.Submit(ctx, author, "")
	assert.ErrorIs(t, err, ErrEmptyPost)

	_, err = svc.Submit(ctx, author, strings.Repeat("a", 141))
	assert.ErrorIs(t, err, ErrPostTooLong)

	post, err := svc.Submit(ctx, author, strings.Repeat("a", 140))
	require.NoError(t, err)
	assert.Len(t, post.Body, 140)
}

func TestSubmit_LengthCountsRunes(t *testing.T) {
	t.Parallel()

	svc := NewPostService(newFakePostRepo(newFakeFollowRepo()), 3)

	// 140 multibyte characters are within the limit even though the byte
	// count is far above it.
	post, err := svc.Submit(context.Background(), &domain.User{ID: 1}, strings.Repeat("ñ", 140))
	require.NoError(t, err)
	assert.NotZero(t, post.ID)
}

func TestSubmit_LanguageDetectionIsBestEffort(t *testing.T) {
	t.Parallel()

	svc := NewPostService(newFakePostRepo(newFakeFollowRepo()), 3)
	ctx := context.Background()

	// Undetectable gibberish must not fail the submission.
	post, err := svc.Submit(ctx, &domain.User{ID: 1}, "x1 9z")
	require.NoError(t, err)
	assert.LessOrEqual(t, len(post.Language), 5)

	post, err = svc.Submit(ctx, &domain.User{ID: 1}, "the quick brown fox jumps over the lazy dog and keeps running through the field")
	require.NoError(t, err)
	assert.NotZero(t, post.ID)
}

func TestHomeFeed_Scenario(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo()
	followRepo := newFakeFollowRepo()
	postRepo := newFakePostRepo(followRepo)
	followSvc := NewFollowService(followRepo, userRepo)
	postSvc := NewPostService(postRepo, 10)
	ctx := context.Background()

	users := seedUsers(t, userRepo, "alice", "bob")
	alice, bob := users[0], users[1]

	_, err := postSvc.Submit(ctx, alice, "hello")
	require.NoError(t, err)

	// Before following, bob's feed is empty.
	feed, err := postSvc.HomeFeed(ctx, bob.ID, 1)
	require.NoError(t, err)
	assert.Empty(t, feed.Items)

	_, err = followSvc.Follow(ctx, bob.ID, "alice")
	require.NoError(t, err)

	feed, err = postSvc.HomeFeed(ctx, bob.ID, 1)
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, "hello", feed.Items[0].Body)

	// After unfollowing, alice's post leaves bob's feed but stays in hers.
	_, err = followSvc.Unfollow(ctx, bob.ID, "alice")
	require.NoError(t, err)

	feed, err = postSvc.HomeFeed(ctx, bob.ID, 1)
	require.NoError(t, err)
	assert.Empty(t, feed.Items)

	feed, err = postSvc.HomeFeed(ctx, alice.ID, 1)
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, "hello", feed.Items[0].Body)
}

func TestHomeFeed_NoDuplicatesForOwnPosts(t *testing.T) {
	t.Parallel()

	followRepo := newFakeFollowRepo()
	postRepo := newFakePostRepo(followRepo)
	svc := NewPostService(postRepo, 10)
	ctx := context.Background()

	author := &domain.User{ID: 1, Username: "john"}
	_, err := svc.Submit(ctx, author, "only once")
	require.NoError(t, err)

	// Degenerate self-follow edge in storage must not duplicate own posts.
	require.NoError(t, followRepo.Create(ctx, 1, 1))

	feed, err := svc.HomeFeed(ctx, 1, 1)
	require.NoError(t, err)
	assert.Len(t, feed.Items, 1)
}

func TestHomeFeed_Ordering(t *testing.T) {
	t.Parallel()

	followRepo := newFakeFollowRepo()
	postRepo := newFakePostRepo(followRepo)
	svc := NewPostService(postRepo, 10)
	ctx := context.Background()

	require.NoError(t, followRepo.Create(ctx, 9, 1))
	require.NoError(t, followRepo.Create(ctx, 9, 2))

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, p := range []domain.Post{
		{Body: "oldest", UserID: 1, CreatedAt: base},
		{Body: "middle", UserID: 2, CreatedAt: base.Add(time.Minute)},
		{Body: "newest", UserID: 1, CreatedAt: base.Add(2 * time.Minute)},
	} {
		p := p
		require.NoError(t, postRepo.Create(ctx, &p), "post %d", i)
	}

	feed, err := svc.HomeFeed(ctx, 9, 1)
	require.NoError(t, err)
	require.Len(t, feed.Items, 3)
	assert.Equal(t, "newest", feed.Items[0].Body)
	assert.Equal(t, "middle", feed.Items[1].Body)
	assert.Equal(t, "oldest", feed.Items[2].Body)
}

func TestHomeFeed_TimestampTieBreaksOnID(t *testing.T) {
	t.Parallel()

	followRepo := newFakeFollowRepo()
	postRepo := newFakePostRepo(followRepo)
	svc := NewPostService(postRepo, 10)
	ctx := context.Background()

	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	first := &domain.Post{Body: "first", UserID: 1, CreatedAt: ts}
	second := &domain.Post{Body: "second", UserID: 1, CreatedAt: ts}
	require.NoError(t, postRepo.Create(ctx, first))
	require.NoError(t, postRepo.Create(ctx, second))

	feed, err := svc.HomeFeed(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, feed.Items, 2)
	assert.Equal(t, "second", feed.Items[0].Body)
	assert.Equal(t, "first", feed.Items[1].Body)
}

func TestFeeds_PagingMetadata(t *testing.T) {
	t.Parallel()

	followRepo := newFakeFollowRepo()
	postRepo := newFakePostRepo(followRepo)
	svc := NewPostService(postRepo, 3)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		p := &domain.Post{Body: "post", UserID: 1, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, postRepo.Create(ctx, p))
	}

	page, err := svc.Explore(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)
	assert.True(t, page.HasNext)
	assert.False(t, page.HasPrev)
	assert.Equal(t, 2, page.NextNum)

	page, err = svc.Explore(ctx, 4)
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrev)
	assert.Equal(t, 3, page.PrevNum)

	// Beyond range: empty, not an error.
	page, err = svc.Explore(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasNext)
}

func TestUserPosts_OnlyAuthor(t *testing.T) {
	t.Parallel()

	followRepo := newFakeFollowRepo()
	postRepo := newFakePostRepo(followRepo)
	svc := NewPostService(postRepo, 10)
	ctx := context.Background()

	_, err := svc.Submit(ctx, &domain.User{ID: 1, Username: "john"}, "mine")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, &domain.User{ID: 2, Username: "susan"}, "hers")
	require.NoError(t, err)

	page, err := svc.UserPosts(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "mine", page.Items[0].Body)
}
