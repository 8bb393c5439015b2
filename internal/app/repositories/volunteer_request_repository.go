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
	"github.com/deren/greenhub/internal/pkg/dberrors"
	"github.com/deren/greenhub/internal/pkg/logger"
)

// VolunteerRequestRepository handles volunteer request database operations
type VolunteerRequestRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewVolunteerRequestRepository creates a new VolunteerRequestRepository
func NewVolunteerRequestRepository(db *pgxpool.Pool) *VolunteerRequestRepository {
	return &VolunteerRequestRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new volunteer request. The unique constraint on user_id is
// the authoritative one-request-per-user guard; the service precondition is
// only a friendlier first line.
func (r *VolunteerRequestRepository) Create(ctx context.Context, req *models.VolunteerRequest) (int64, error) {
	sql, args, err := r.sb.Insert("volunteer_requests").
		Columns("user_id", "name", "email", "phone", "area_of_interest", "availability", "status").
		Values(req.UserID, req.Name, req.Email, req.Phone, req.AreaOfInterest, req.Availability, string(models.StatusPending)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create volunteer request query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolationOn(err, "volunteer_requests_user_id_key") {
			return 0, apperrors.ErrDuplicateRequest
		}
		logger.Error().Err(err).Msg("Error executing create volunteer request query")
		return 0, fmt.Errorf("error creating volunteer request: %w", err)
	}

	return id, nil
}

// GetByID retrieves a volunteer request by id
func (r *VolunteerRequestRepository) GetByID(ctx context.Context, id int64) (*models.VolunteerRequest, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByUser retrieves the volunteer request belonging to a user, if any
func (r *VolunteerRequestRepository) GetByUser(ctx context.Context, userID int64) (*models.VolunteerRequest, error) {
	return r.getOne(ctx, squirrel.Eq{"user_id": userID})
}

func (r *VolunteerRequestRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.VolunteerRequest, error) {
	sql, args, err := r.sb.Select("id", "user_id", "name", "email", "phone", "area_of_interest", "availability", "status", "created_at").
		From("volunteer_requests").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get volunteer request query: %w", err)
	}

	req := &models.VolunteerRequest{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&req.ID, &req.UserID, &req.Name, &req.Email, &req.Phone,
		&req.AreaOfInterest, &req.Availability, &req.Status, &req.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRequestNotFound
		}
		logger.Error().Err(err).Msg("Error scanning volunteer request row")
		return nil, fmt.Errorf("error getting volunteer request: %w", err)
	}

	return req, nil
}

// GetAll retrieves all volunteer requests, newest-first
func (r *VolunteerRequestRepository) GetAll(ctx context.Context) ([]*models.VolunteerRequest, error) {
	sql, args, err := r.sb.Select("id", "user_id", "name", "email", "phone", "area_of_interest", "availability", "status", "created_at").
		From("volunteer_requests").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all volunteer requests query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all volunteer requests query")
		return nil, fmt.Errorf("error querying volunteer requests: %w", err)
	}
	defer rows.Close()

	requests := []*models.VolunteerRequest{}
	for rows.Next() {
		req := &models.VolunteerRequest{}
		if err := rows.Scan(
			&req.ID, &req.UserID, &req.Name, &req.Email, &req.Phone,
			&req.AreaOfInterest, &req.Availability, &req.Status, &req.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning volunteer request row: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating volunteer request rows: %w", err)
	}

	return requests, nil
}

// UpdateStatus sets the status of a volunteer request
func (r *VolunteerRequestRepository) UpdateStatus(ctx context.Context, id int64, status models.Status) error {
	sql, args, err := r.sb.Update("volunteer_requests").
		Set("status", string(status)).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update volunteer request status query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("requestID", id).Msg("Error executing update volunteer request status query")
		return fmt.Errorf("error updating volunteer request status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrRequestNotFound
	}

	return nil
}

// Count returns the number of volunteer requests
func (r *VolunteerRequestRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, "volunteer_requests")
}
