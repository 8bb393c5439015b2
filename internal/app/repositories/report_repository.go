package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deren/greenhub/internal/app/models"
	"github.com/deren/greenhub/internal/pkg/logger"
)

// ReportRepository handles issue report database operations
type ReportRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new issue report and returns its id
func (r *ReportRepository) Create(ctx context.Context, report *models.ReportIssue) (int64, error) {
	sql, args, err := r.sb.Insert("report_issues").
		Columns("name", "issue").
		Values(report.Name, report.Issue).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create issue report query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create issue report query")
		return 0, fmt.Errorf("error creating issue report: %w", err)
	}

	return id, nil
}

// GetAll retrieves all issue reports, newest-first
func (r *ReportRepository) GetAll(ctx context.Context) ([]*models.ReportIssue, error) {
	sql, args, err := r.sb.Select("id", "name", "issue", "created_at").
		From("report_issues").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all issue reports query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all issue reports query")
		return nil, fmt.Errorf("error querying issue reports: %w", err)
	}
	defer rows.Close()

	reports := []*models.ReportIssue{}
	for rows.Next() {
		report := &models.ReportIssue{}
		if err := rows.Scan(&report.ID, &report.Name, &report.Issue, &report.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning issue report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating issue report rows: %w", err)
	}

	return reports, nil
}

// Count returns the number of issue reports
func (r *ReportRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, "report_issues")
}
