package services

import (
	"context"
	"fmt"

	"github.com/deren/greenhub/internal/app/models"
)

// postStore is the slice of the post repository the post service needs.
type postStore interface {
	Create(ctx context.Context, post *models.Post) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	GetAll(ctx context.Context, search string) ([]*models.Post, error)
	Delete(ctx context.Context, id int64) error
}

// postFeedbackStore is the slice of the feedback repository the post service
// needs for the detail view.
type postFeedbackStore interface {
	GetByPost(ctx context.Context, postID int64) ([]*models.Feedback, error)
}

// PostService defines post listing, detail and moderation operations.
type PostService interface {
	ListPosts(ctx context.Context, search string) ([]*models.Post, error)
	GetPost(ctx context.Context, id int64) (*models.Post, []*models.Feedback, error)
	CreatePost(ctx context.Context, post *models.Post) (int64, error)
	DeletePost(ctx context.Context, id int64) (*models.Post, error)
}

type postServiceImpl struct {
	posts     postStore
	feedbacks postFeedbackStore
}

// NewPostService creates a new post service instance
func NewPostService(posts postStore, feedbacks postFeedbackStore) PostService {
	return &postServiceImpl{posts: posts, feedbacks: feedbacks}
}

// ListPosts returns posts newest-first, optionally narrowed by a
// case-insensitive title/content search.
func (s *postServiceImpl) ListPosts(ctx context.Context, search string) ([]*models.Post, error) {
	posts, err := s.posts.GetAll(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	return posts, nil
}

// GetPost returns a post together with its feedback, newest-first.
func (s *postServiceImpl) GetPost(ctx context.Context, id int64) (*models.Post, []*models.Feedback, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	feedbacks, err := s.feedbacks.GetByPost(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading post feedback: %w", err)
	}

	return post, feedbacks, nil
}

// CreatePost persists a new post. The author is server-controlled and set by
// the caller from the session identity.
func (s *postServiceImpl) CreatePost(ctx context.Context, post *models.Post) (int64, error) {
	id, err := s.posts.Create(ctx, post)
	if err != nil {
		return 0, fmt.Errorf("error creating post: %w", err)
	}
	return id, nil
}

// DeletePost removes a post and returns the removed row, so the caller can
// name it in the notice.
func (s *postServiceImpl) DeletePost(ctx context.Context, id int64) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.posts.Delete(ctx, id); err != nil {
		return nil, err
	}
	return post, nil
}
