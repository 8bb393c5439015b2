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

// VolunteerApplicationRepository handles volunteer application database
// operations
type VolunteerApplicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewVolunteerApplicationRepository creates a new
// VolunteerApplicationRepository
func NewVolunteerApplicationRepository(db *pgxpool.Pool) *VolunteerApplicationRepository {
	return &VolunteerApplicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new volunteer application and returns its id
func (r *VolunteerApplicationRepository) Create(ctx context.Context, app *models.VolunteerApplication) (int64, error) {
	sql, args, err := r.sb.Insert("volunteer_applications").
		Columns("event_id", "user_id", "name", "email", "phone", "motivation", "status").
		Values(app.EventID, app.UserID, app.Name, app.Email, app.Phone, app.Motivation, string(models.StatusPending)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create application query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create application query")
		return 0, fmt.Errorf("error creating volunteer application: %w", err)
	}

	return id, nil
}

// GetByID retrieves a volunteer application by id with its event title
func (r *VolunteerApplicationRepository) GetByID(ctx context.Context, id int64) (*models.VolunteerApplication, error) {
	sql, args, err := r.applicationSelect().
		Where(squirrel.Eq{"a.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get application query: %w", err)
	}

	app := &models.VolunteerApplication{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&app.ID, &app.EventID, &app.EventTitle, &app.UserID, &app.Name, &app.Email,
		&app.Phone, &app.Motivation, &app.Status, &app.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		logger.Error().Err(err).Int64("applicationID", id).Msg("Error scanning application row")
		return nil, fmt.Errorf("error getting volunteer application: %w", err)
	}

	return app, nil
}

// GetAll retrieves all volunteer applications, newest-first
func (r *VolunteerApplicationRepository) GetAll(ctx context.Context) ([]*models.VolunteerApplication, error) {
	sql, args, err := r.applicationSelect().
		OrderBy("a.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all applications query")
		return nil, fmt.Errorf("error querying volunteer applications: %w", err)
	}
	defer rows.Close()

	apps := []*models.VolunteerApplication{}
	for rows.Next() {
		app := &models.VolunteerApplication{}
		if err := rows.Scan(
			&app.ID, &app.EventID, &app.EventTitle, &app.UserID, &app.Name, &app.Email,
			&app.Phone, &app.Motivation, &app.Status, &app.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}

	return apps, nil
}

func (r *VolunteerApplicationRepository) applicationSelect() squirrel.SelectBuilder {
	return r.sb.Select("a.id", "a.event_id", "e.title", "a.user_id", "a.name", "a.email", "a.phone", "a.motivation", "a.status", "a.created_at").
		From("volunteer_applications a").
		Join("events e ON e.id = a.event_id")
}

// StatusByUser returns the user's application status per event id, used to
// drive the apply/pending/accepted state on the event list.
func (r *VolunteerApplicationRepository) StatusByUser(ctx context.Context, userID int64) (map[int64]models.Status, error) {
	sql, args, err := r.sb.Select("event_id", "status").
		From("volunteer_applications").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build status by user query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing status by user query")
		return nil, fmt.Errorf("error querying application statuses: %w", err)
	}
	defer rows.Close()

	statuses := map[int64]models.Status{}
	for rows.Next() {
		var eventID int64
		var status models.Status
		if err := rows.Scan(&eventID, &status); err != nil {
			return nil, fmt.Errorf("error scanning application status row: %w", err)
		}
		statuses[eventID] = status
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application status rows: %w", err)
	}

	return statuses, nil
}

// UpdateStatus sets the status of a volunteer application
func (r *VolunteerApplicationRepository) UpdateStatus(ctx context.Context, id int64, status models.Status) error {
	sql, args, err := r.sb.Update("volunteer_applications").
		Set("status", string(status)).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update application status query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("applicationID", id).Msg("Error executing update application status query")
		return fmt.Errorf("error updating application status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}

// Count returns the number of volunteer applications
func (r *VolunteerApplicationRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, "volunteer_applications")
}
