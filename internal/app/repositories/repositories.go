package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository                 *UserRepository
	PostRepository                 *PostRepository
	FeedbackRepository             *FeedbackRepository
	ContactRepository              *ContactRepository
	EventRepository                *EventRepository
	VolunteerRequestRepository     *VolunteerRequestRepository
	VolunteerApplicationRepository *VolunteerApplicationRepository
	ReportRepository               *ReportRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:                 NewUserRepository(db),
		PostRepository:                 NewPostRepository(db),
		FeedbackRepository:             NewFeedbackRepository(db),
		ContactRepository:              NewContactRepository(db),
		EventRepository:                NewEventRepository(db),
		VolunteerRequestRepository:     NewVolunteerRequestRepository(db),
		VolunteerApplicationRepository: NewVolunteerApplicationRepository(db),
		ReportRepository:               NewReportRepository(db),
	}
}

// countRows returns the row count of a table, used by the dashboard rollup.
func countRows(ctx context.Context, db *pgxpool.Pool, table string) (int64, error) {
	var count int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
	if err := db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting rows in %s: %w", table, err)
	}
	return count, nil
}
