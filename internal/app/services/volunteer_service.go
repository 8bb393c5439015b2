package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/deren/greenhub/internal/app/models"
	"github.com/deren/greenhub/internal/pkg/apperrors"
)

// volunteerRequestStore is the slice of the request repository the volunteer
// service needs.
type volunteerRequestStore interface {
	Create(ctx context.Context, req *models.VolunteerRequest) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.VolunteerRequest, error)
	GetByUser(ctx context.Context, userID int64) (*models.VolunteerRequest, error)
	GetAll(ctx context.Context) ([]*models.VolunteerRequest, error)
	UpdateStatus(ctx context.Context, id int64, status models.Status) error
}

// volunteerApplicationStore is the slice of the application repository the
// volunteer service needs.
type volunteerApplicationStore interface {
	Create(ctx context.Context, app *models.VolunteerApplication) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.VolunteerApplication, error)
	GetAll(ctx context.Context) ([]*models.VolunteerApplication, error)
	UpdateStatus(ctx context.Context, id int64, status models.Status) error
}

// volunteerEventStore resolves the event an application targets.
type volunteerEventStore interface {
	GetByID(ctx context.Context, id int64) (*models.Event, error)
}

// VolunteerService defines volunteer request and event application
// operations, including the staff accept/deny transitions.
type VolunteerService interface {
	SubmitRequest(ctx context.Context, req *models.VolunteerRequest) (int64, error)
	ListRequests(ctx context.Context) ([]*models.VolunteerRequest, error)
	AcceptRequest(ctx context.Context, id int64) (*models.VolunteerRequest, error)
	DenyRequest(ctx context.Context, id int64) (*models.VolunteerRequest, error)

	Apply(ctx context.Context, app *models.VolunteerApplication) (int64, error)
	ListApplications(ctx context.Context) ([]*models.VolunteerApplication, error)
	AcceptApplication(ctx context.Context, id int64) (*models.VolunteerApplication, error)
	DenyApplication(ctx context.Context, id int64) (*models.VolunteerApplication, error)
}

type volunteerServiceImpl struct {
	requests     volunteerRequestStore
	applications volunteerApplicationStore
	events       volunteerEventStore
	logger       zerolog.Logger
}

// NewVolunteerService creates a new volunteer service instance
func NewVolunteerService(requests volunteerRequestStore, applications volunteerApplicationStore, events volunteerEventStore, logger zerolog.Logger) VolunteerService {
	return &volunteerServiceImpl{
		requests:     requests,
		applications: applications,
		events:       events,
		logger:       logger,
	}
}

// SubmitRequest persists a volunteer request, rejecting a second submission
// from the same user. The check here is a UX guard; the unique constraint in
// storage is the authoritative one and maps to the same error.
func (s *volunteerServiceImpl) SubmitRequest(ctx context.Context, req *models.VolunteerRequest) (int64, error) {
	if req.UserID != nil {
		_, err := s.requests.GetByUser(ctx, *req.UserID)
		if err == nil {
			return 0, apperrors.ErrDuplicateRequest
		}
		if !errors.Is(err, apperrors.ErrRequestNotFound) {
			return 0, fmt.Errorf("error checking existing volunteer request: %w", err)
		}
	}

	id, err := s.requests.Create(ctx, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateRequest) {
			return 0, apperrors.ErrDuplicateRequest
		}
		return 0, fmt.Errorf("error creating volunteer request: %w", err)
	}

	s.logger.Info().Int64("requestID", id).Str("name", req.Name).Msg("Volunteer request submitted")
	return id, nil
}

// ListRequests returns all volunteer requests, newest-first.
func (s *volunteerServiceImpl) ListRequests(ctx context.Context) ([]*models.VolunteerRequest, error) {
	requests, err := s.requests.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing volunteer requests: %w", err)
	}
	return requests, nil
}

// AcceptRequest moves a pending request to Accepted.
func (s *volunteerServiceImpl) AcceptRequest(ctx context.Context, id int64) (*models.VolunteerRequest, error) {
	return s.transitionRequest(ctx, id, models.StatusAccepted)
}

// DenyRequest moves a pending request to Denied.
func (s *volunteerServiceImpl) DenyRequest(ctx context.Context, id int64) (*models.VolunteerRequest, error) {
	return s.transitionRequest(ctx, id, models.StatusDenied)
}

// transitionRequest applies a terminal status. Accepted and Denied never
// change again: repeating a transition is a no-op and a terminal row keeps
// its status.
func (s *volunteerServiceImpl) transitionRequest(ctx context.Context, id int64, target models.Status) (*models.VolunteerRequest, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status.Terminal() {
		return req, nil
	}

	if err := s.requests.UpdateStatus(ctx, id, target); err != nil {
		return nil, err
	}
	req.Status = target

	s.logger.Info().Int64("requestID", id).Str("status", target.Label()).Msg("Volunteer request moderated")
	return req, nil
}

// Apply persists a per-event application. The caller must have a volunteer
// request in Accepted state.
func (s *volunteerServiceImpl) Apply(ctx context.Context, app *models.VolunteerApplication) (int64, error) {
	if app.UserID == nil {
		return 0, apperrors.ErrRequestMissing
	}

	req, err := s.requests.GetByUser(ctx, *app.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrRequestNotFound) {
			return 0, apperrors.ErrRequestMissing
		}
		return 0, fmt.Errorf("error checking volunteer request: %w", err)
	}
	if req.Status != models.StatusAccepted {
		return 0, apperrors.ErrRequestNotApproved
	}

	if _, err := s.events.GetByID(ctx, app.EventID); err != nil {
		return 0, err
	}

	id, err := s.applications.Create(ctx, app)
	if err != nil {
		return 0, fmt.Errorf("error creating volunteer application: %w", err)
	}

	s.logger.Info().Int64("applicationID", id).Int64("eventID", app.EventID).Msg("Volunteer application submitted")
	return id, nil
}

// ListApplications returns all applications, newest-first.
func (s *volunteerServiceImpl) ListApplications(ctx context.Context) ([]*models.VolunteerApplication, error) {
	apps, err := s.applications.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing volunteer applications: %w", err)
	}
	return apps, nil
}

// AcceptApplication moves a pending application to Accepted.
func (s *volunteerServiceImpl) AcceptApplication(ctx context.Context, id int64) (*models.VolunteerApplication, error) {
	return s.transitionApplication(ctx, id, models.StatusAccepted)
}

// DenyApplication moves a pending application to Denied.
func (s *volunteerServiceImpl) DenyApplication(ctx context.Context, id int64) (*models.VolunteerApplication, error) {
	return s.transitionApplication(ctx, id, models.StatusDenied)
}

func (s *volunteerServiceImpl) transitionApplication(ctx context.Context, id int64, target models.Status) (*models.VolunteerApplication, error) {
	app, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if app.Status.Terminal() {
		return app, nil
	}

	if err := s.applications.UpdateStatus(ctx, id, target); err != nil {
		return nil, err
	}
	app.Status = target

	s.logger.Info().Int64("applicationID", id).Str("status", target.Label()).Msg("Volunteer application moderated")
	return app, nil
}
