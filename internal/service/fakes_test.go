package service

import (
	"context"
	"sort"
	"time"

	"microblog/internal/domain"
)

// In-memory repositories implementing the same contracts as the postgres
// implementations, including feed ordering and the idempotent follow insert.

type fakeUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*domain.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, id int64, username, aboutMe string) error {
	if u, ok := r.users[id]; ok {
		u.Username = username
		u.AboutMe = aboutMe
	}
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	if u, ok := r.users[id]; ok {
		u.PasswordHash = passwordHash
	}
	return nil
}

func (r *fakeUserRepo) TouchLastSeen(_ context.Context, id int64, seenAt time.Time) error {
	if u, ok := r.users[id]; ok {
		u.LastSeen = seenAt
	}
	return nil
}

type followPair struct {
	follower, followed int64
}

type fakeFollowRepo struct {
	pairs map[followPair]bool
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{pairs: make(map[followPair]bool)}
}

func (r *fakeFollowRepo) Create(_ context.Context, followerID, followedID int64) error {
	r.pairs[followPair{followerID, followedID}] = true
	return nil
}

func (r *fakeFollowRepo) Delete(_ context.Context, followerID, followedID int64) error {
	delete(r.pairs, followPair{followerID, followedID})
	return nil
}

func (r *fakeFollowRepo) Exists(_ context.Context, followerID, followedID int64) (bool, error) {
	return r.pairs[followPair{followerID, followedID}], nil
}

func (r *fakeFollowRepo) Counts(_ context.Context, userID int64) (int, int, error) {
	var followers, followed int
	for p := range r.pairs {
		if p.followed == userID {
			followers++
		}
		if p.follower == userID {
			followed++
		}
	}
	return followers, followed, nil
}

func (r *fakeFollowRepo) rowCount() int {
	return len(r.pairs)
}

type fakePostRepo struct {
	posts   []domain.Post
	follows *fakeFollowRepo
	nextID  int64
}

func newFakePostRepo(follows *fakeFollowRepo) *fakePostRepo {
	return &fakePostRepo{follows: follows, nextID: 1}
}

func (r *fakePostRepo) Create(_ context.Context, post *domain.Post) error {
	post.ID = r.nextID
	r.nextID++
	r.posts = append(r.posts, *post)
	return nil
}

func (r *fakePostRepo) ListFeed(_ context.Context, userID int64, limit, offset int) ([]domain.Post, error) {
	var out []domain.Post
	for _, p := range r.posts {
		if p.UserID == userID || r.follows.pairs[followPair{userID, p.UserID}] {
			out = append(out, p)
		}
	}
	return window(out, limit, offset), nil
}

func (r *fakePostRepo) ListAll(_ context.Context, limit, offset int) ([]domain.Post, error) {
	out := make([]domain.Post, len(r.posts))
	copy(out, r.posts)
	return window(out, limit, offset), nil
}

func (r *fakePostRepo) ListByAuthor(_ context.Context, userID int64, limit, offset int) ([]domain.Post, error) {
	var out []domain.Post
	for _, p := range r.posts {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return window(out, limit, offset), nil
}

// window applies (created_at DESC, id DESC) ordering and LIMIT/OFFSET, the
// same contract the SQL queries honor.
func window(posts []domain.Post, limit, offset int) []domain.Post {
	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID > posts[j].ID
	})
	if offset >= len(posts) {
		return nil
	}
	posts = posts[offset:]
	if limit < len(posts) {
		posts = posts[:limit]
	}
	return posts
}
