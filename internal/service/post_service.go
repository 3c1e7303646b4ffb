package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"

	"microblog/internal/domain"
	"microblog/internal/pagination"
	"microblog/internal/repository"
)

var (
	ErrEmptyPost   = errors.New("post body is empty")
	ErrPostTooLong = errors.New("post body exceeds 140 characters")
)

type PostService struct {
	postRepo     repository.PostRepository
	postsPerPage int
}

func NewPostService(postRepo repository.PostRepository, postsPerPage int) *PostService {
	return &PostService{
		postRepo:     postRepo,
		postsPerPage: postsPerPage,
	}
}

// Submit creates a post authored by author. Language detection is best
// effort: when the detector is not confident the tag stays empty rather than
// failing the submission.
func (s *PostService) Submit(ctx context.Context, author *domain.User, body string) (*domain.Post, error) {
	if body == "" {
		return nil, ErrEmptyPost
	}
	if utf8.RuneCountInString(body) > domain.MaxPostLength {
		return nil, ErrPostTooLong
	}

	post := &domain.Post{
		Body:           body,
		UserID:         author.ID,
		Language:       detectLanguage(body),
		CreatedAt:      time.Now().UTC(),
		AuthorUsername: author.Username,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}
	return post, nil
}

// HomeFeed pages the union of the user's own posts and posts from followed
// authors, newest first.
func (s *PostService) HomeFeed(ctx context.Context, userID int64, page int) (pagination.Page[domain.Post], error) {
	page, perPage := pagination.Normalize(page, s.postsPerPage, s.postsPerPage)
	posts, err := s.postRepo.ListFeed(ctx, userID, perPage+1, pagination.Offset(page, perPage))
	if err != nil {
		return pagination.Page[domain.Post]{}, err
	}
	return pagination.New(posts, page, perPage), nil
}

// Explore pages every post in the system, newest first.
func (s *PostService) Explore(ctx context.Context, page int) (pagination.Page[domain.Post], error) {
	page, perPage := pagination.Normalize(page, s.postsPerPage, s.postsPerPage)
	posts, err := s.postRepo.ListAll(ctx, perPage+1, pagination.Offset(page, perPage))
	if err != nil {
		return pagination.Page[domain.Post]{}, err
	}
	return pagination.New(posts, page, perPage), nil
}

// UserPosts pages a single author's posts, newest first.
func (s *PostService) UserPosts(ctx context.Context, userID int64, page int) (pagination.Page[domain.Post], error) {
	page, perPage := pagination.Normalize(page, s.postsPerPage, s.postsPerPage)
	posts, err := s.postRepo.ListByAuthor(ctx, userID, perPage+1, pagination.Offset(page, perPage))
	if err != nil {
		return pagination.Page[domain.Post]{}, err
	}
	return pagination.New(posts, page, perPage), nil
}

func detectLanguage(body string) string {
	info := whatlanggo.Detect(body)
	if !info.IsReliable() {
		return ""
	}
	code := info.Lang.Iso6391()
	if len(code) > 5 {
		return ""
	}
	return code
}
