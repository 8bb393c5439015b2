package services

import (
	"context"
	"fmt"

	"github.com/deren/greenhub/internal/app/models"
)

// feedbackStore is the slice of the feedback repository the feedback service
// needs.
type feedbackStore interface {
	Create(ctx context.Context, fb *models.Feedback) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Feedback, error)
	GetAll(ctx context.Context) ([]*models.Feedback, error)
	Delete(ctx context.Context, id int64) error
}

// FeedbackService defines feedback submission and moderation operations.
type FeedbackService interface {
	SubmitFeedback(ctx context.Context, fb *models.Feedback) (int64, error)
	ListFeedbacks(ctx context.Context) ([]*models.Feedback, error)
	DeleteFeedback(ctx context.Context, id int64) (*models.Feedback, error)
}

type feedbackServiceImpl struct {
	feedbacks feedbackStore
}

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService(feedbacks feedbackStore) FeedbackService {
	return &feedbackServiceImpl{feedbacks: feedbacks}
}

// SubmitFeedback persists feedback from an authenticated user, standalone or
// attached to a post.
func (s *feedbackServiceImpl) SubmitFeedback(ctx context.Context, fb *models.Feedback) (int64, error) {
	id, err := s.feedbacks.Create(ctx, fb)
	if err != nil {
		return 0, fmt.Errorf("error submitting feedback: %w", err)
	}
	return id, nil
}

// ListFeedbacks returns all feedback, newest-first.
func (s *feedbackServiceImpl) ListFeedbacks(ctx context.Context) ([]*models.Feedback, error) {
	feedbacks, err := s.feedbacks.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing feedback: %w", err)
	}
	return feedbacks, nil
}

// DeleteFeedback removes a feedback row and returns it for the notice.
func (s *feedbackServiceImpl) DeleteFeedback(ctx context.Context, id int64) (*models.Feedback, error) {
	fb, err := s.feedbacks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.feedbacks.Delete(ctx, id); err != nil {
		return nil, err
	}
	return fb, nil
}
