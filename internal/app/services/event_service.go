package services

import (
	"context"
	"fmt"

	"github.com/deren/greenhub/internal/app/models"
)

// eventStore is the slice of the event repository the event service needs.
type eventStore interface {
	Create(ctx context.Context, event *models.Event) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	GetAll(ctx context.Context) ([]*models.Event, error)
}

// applicationStatusStore provides the per-user application status lookup used
// by the event listing.
type applicationStatusStore interface {
	StatusByUser(ctx context.Context, userID int64) (map[int64]models.Status, error)
}

// EventService defines event listing and creation operations.
type EventService interface {
	// ListEvents returns events by date, most recent first. When userID is
	// non-nil, each event carries that user's own application status.
	ListEvents(ctx context.Context, userID *int64) ([]*models.Event, error)
	GetEvent(ctx context.Context, id int64) (*models.Event, error)
	CreateEvent(ctx context.Context, event *models.Event) (int64, error)
}

type eventServiceImpl struct {
	events       eventStore
	applications applicationStatusStore
}

// NewEventService creates a new event service instance
func NewEventService(events eventStore, applications applicationStatusStore) EventService {
	return &eventServiceImpl{events: events, applications: applications}
}

// ListEvents returns all events, attaching the caller's application statuses
// when an authenticated user id is given.
func (s *eventServiceImpl) ListEvents(ctx context.Context, userID *int64) ([]*models.Event, error) {
	events, err := s.events.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}

	if userID == nil {
		return events, nil
	}

	statuses, err := s.applications.StatusByUser(ctx, *userID)
	if err != nil {
		return nil, fmt.Errorf("error loading application statuses: %w", err)
	}
	for _, event := range events {
		if status, ok := statuses[event.ID]; ok {
			st := status
			event.MyApplication = &st
		}
	}

	return events, nil
}

// GetEvent returns one event by id.
func (s *eventServiceImpl) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// CreateEvent persists a new event. CreatedBy is server-controlled and set by
// the caller from the session identity.
func (s *eventServiceImpl) CreateEvent(ctx context.Context, event *models.Event) (int64, error) {
	id, err := s.events.Create(ctx, event)
	if err != nil {
		return 0, fmt.Errorf("error creating event: %w", err)
	}
	return id, nil
}
