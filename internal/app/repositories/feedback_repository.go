package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deren/greenhub/internal/app/models"
	"github.com/deren/greenhub/internal/pkg/apperrors"
	"github.com/deren/greenhub/internal/pkg/logger"
)

// FeedbackRepository handles feedback database operations
type FeedbackRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFeedbackRepository creates a new FeedbackRepository
func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new feedback row and returns its id
func (r *FeedbackRepository) Create(ctx context.Context, fb *models.Feedback) (int64, error) {
	sql, args, err := r.sb.Insert("feedbacks").
		Columns("user_id", "post_id", "feedback").
		Values(fb.UserID, fb.PostID, fb.Text).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create feedback query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create feedback query")
		return 0, fmt.Errorf("error creating feedback: %w", err)
	}

	return id, nil
}

// GetByID retrieves a feedback row by id with its author's username
func (r *FeedbackRepository) GetByID(ctx context.Context, id int64) (*models.Feedback, error) {
	sql, args, err := r.feedbackSelect().
		Where(squirrel.Eq{"f.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get feedback query: %w", err)
	}

	fb := &models.Feedback{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&fb.ID, &fb.UserID, &fb.Username, &fb.PostID, &fb.Text, &fb.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFeedbackNotFound
		}
		logger.Error().Err(err).Int64("feedbackID", id).Msg("Error scanning feedback row")
		return nil, fmt.Errorf("error getting feedback: %w", err)
	}

	return fb, nil
}

// GetByPost retrieves all feedback on a post, newest-first
func (r *FeedbackRepository) GetByPost(ctx context.Context, postID int64) ([]*models.Feedback, error) {
	sql, args, err := r.feedbackSelect().
		Where(squirrel.Eq{"f.post_id": postID}).
		OrderBy("f.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get feedback by post query: %w", err)
	}
	return r.queryMany(ctx, sql, args)
}

// GetAll retrieves all feedback, newest-first
func (r *FeedbackRepository) GetAll(ctx context.Context) ([]*models.Feedback, error) {
	sql, args, err := r.feedbackSelect().
		OrderBy("f.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all feedback query: %w", err)
	}
	return r.queryMany(ctx, sql, args)
}

func (r *FeedbackRepository) feedbackSelect() squirrel.SelectBuilder {
	return r.sb.Select("f.id", "f.user_id", "u.username", "f.post_id", "f.feedback", "f.created_at").
		From("feedbacks f").
		Join("users u ON u.id = f.user_id")
}

func (r *FeedbackRepository) queryMany(ctx context.Context, sql string, args []interface{}) ([]*models.Feedback, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing feedback query")
		return nil, fmt.Errorf("error querying feedback: %w", err)
	}
	defer rows.Close()

	feedbacks := []*models.Feedback{}
	for rows.Next() {
		fb := &models.Feedback{}
		if err := rows.Scan(&fb.ID, &fb.UserID, &fb.Username, &fb.PostID, &fb.Text, &fb.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning feedback row: %w", err)
		}
		feedbacks = append(feedbacks, fb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feedback rows: %w", err)
	}

	return feedbacks, nil
}

// Delete removes a feedback row by id
func (r *FeedbackRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("feedbacks").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete feedback query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("feedbackID", id).Msg("Error executing delete feedback query")
		return fmt.Errorf("error deleting feedback: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrFeedbackNotFound
	}

	return nil
}

// Count returns the number of feedback rows
func (r *FeedbackRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, "feedbacks")
}
