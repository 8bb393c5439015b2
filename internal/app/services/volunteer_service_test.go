package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/deren/greenhub/internal/app/models"
	"github.com/deren/greenhub/internal/pkg/apperrors"
)

type fakeRequestStore struct {
	byID    map[int64]*models.VolunteerRequest
	byUser  map[int64]*models.VolunteerRequest
	created int
	updates []models.Status
}

func newFakeRequestStore() *fakeRequestStore {
	return &fakeRequestStore{
		byID:   map[int64]*models.VolunteerRequest{},
		byUser: map[int64]*models.VolunteerRequest{},
	}
}

func (f *fakeRequestStore) add(req *models.VolunteerRequest) {
	f.byID[req.ID] = req
	if req.UserID != nil {
		f.byUser[*req.UserID] = req
	}
}

func (f *fakeRequestStore) Create(ctx context.Context, req *models.VolunteerRequest) (int64, error) {
	if req.UserID != nil {
		if _, ok := f.byUser[*req.UserID]; ok {
			return 0, apperrors.ErrDuplicateRequest
		}
	}
	f.created++
	req.ID = int64(f.created)
	f.add(req)
	return req.ID, nil
}

func (f *fakeRequestStore) GetByID(ctx context.Context, id int64) (*models.VolunteerRequest, error) {
	req, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrRequestNotFound
	}
	copied := *req
	return &copied, nil
}

func (f *fakeRequestStore) GetByUser(ctx context.Context, userID int64) (*models.VolunteerRequest, error) {
	req, ok := f.byUser[userID]
	if !ok {
		return nil, apperrors.ErrRequestNotFound
	}
	copied := *req
	return &copied, nil
}

func (f *fakeRequestStore) GetAll(ctx context.Context) ([]*models.VolunteerRequest, error) {
	var out []*models.VolunteerRequest
	for _, req := range f.byID {
		out = append(out, req)
	}
	return out, nil
}

func (f *fakeRequestStore) UpdateStatus(ctx context.Context, id int64, status models.Status) error {
	req, ok := f.byID[id]
	if !ok {
		return apperrors.ErrRequestNotFound
	}
	f.updates = append(f.updates, status)
	req.Status = status
	return nil
}

type fakeApplicationStore struct {
	byID    map[int64]*models.VolunteerApplication
	created int
	updates []models.Status
}

func newFakeApplicationStore() *fakeApplicationStore {
	return &fakeApplicationStore{byID: map[int64]*models.VolunteerApplication{}}
}

func (f *fakeApplicationStore) Create(ctx context.Context, app *models.VolunteerApplication) (int64, error) {
	f.created++
	app.ID = int64(f.created)
	f.byID[app.ID] = app
	return app.ID, nil
}

func (f *fakeApplicationStore) GetByID(ctx context.Context, id int64) (*models.VolunteerApplication, error) {
	app, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	copied := *app
	return &copied, nil
}

func (f *fakeApplicationStore) GetAll(ctx context.Context) ([]*models.VolunteerApplication, error) {
	var out []*models.VolunteerApplication
	for _, app := range f.byID {
		out = append(out, app)
	}
	return out, nil
}

func (f *fakeApplicationStore) UpdateStatus(ctx context.Context, id int64, status models.Status) error {
	app, ok := f.byID[id]
	if !ok {
		return apperrors.ErrApplicationNotFound
	}
	f.updates = append(f.updates, status)
	app.Status = status
	return nil
}

type fakeEventStore struct {
	events map[int64]*models.Event
}

func (f *fakeEventStore) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	return event, nil
}

func newVolunteerFixture() (*fakeRequestStore, *fakeApplicationStore, *fakeEventStore, VolunteerService) {
	requests := newFakeRequestStore()
	applications := newFakeApplicationStore()
	events := &fakeEventStore{events: map[int64]*models.Event{
		1: {ID: 1, Title: "Park Cleanup", Date: time.Now()},
	}}
	svc := NewVolunteerService(requests, applications, events, zerolog.Nop())
	return requests, applications, events, svc
}

func TestSubmitRequestOncePerUser(t *testing.T) {
	requests, _, _, svc := newVolunteerFixture()
	userID := int64(7)

	first := &models.VolunteerRequest{UserID: &userID, Name: "alice", Status: models.StatusPending}
	if _, err := svc.SubmitRequest(context.Background(), first); err != nil {
		t.Fatalf("first request: %v", err)
	}

	second := &models.VolunteerRequest{UserID: &userID, Name: "alice", Status: models.StatusPending}
	_, err := svc.SubmitRequest(context.Background(), second)
	if !errors.Is(err, apperrors.ErrDuplicateRequest) {
		t.Fatalf("expected duplicate request error, got %v", err)
	}
	if requests.created != 1 {
		t.Fatalf("expected exactly one stored request, got %d", requests.created)
	}
}

func TestApplyRequiresVolunteerRequest(t *testing.T) {
	_, applications, _, svc := newVolunteerFixture()
	userID := int64(7)

	app := &models.VolunteerApplication{EventID: 1, UserID: &userID, Name: "alice"}
	_, err := svc.Apply(context.Background(), app)
	if !errors.Is(err, apperrors.ErrRequestMissing) {
		t.Fatalf("expected missing request error, got %v", err)
	}
	if applications.created != 0 {
		t.Fatalf("application stored despite missing request")
	}
}

func TestApplyRequiresAcceptedRequest(t *testing.T) {
	requests, applications, _, svc := newVolunteerFixture()
	userID := int64(7)
	requests.add(&models.VolunteerRequest{ID: 1, UserID: &userID, Status: models.StatusPending})

	app := &models.VolunteerApplication{EventID: 1, UserID: &userID, Name: "alice"}
	_, err := svc.Apply(context.Background(), app)
	if !errors.Is(err, apperrors.ErrRequestNotApproved) {
		t.Fatalf("expected not-approved error, got %v", err)
	}
	if applications.created != 0 {
		t.Fatalf("application stored despite pending request")
	}
}

func TestApplyWithAcceptedRequest(t *testing.T) {
	requests, applications, _, svc := newVolunteerFixture()
	userID := int64(7)
	requests.add(&models.VolunteerRequest{ID: 1, UserID: &userID, Status: models.StatusAccepted})

	app := &models.VolunteerApplication{EventID: 1, UserID: &userID, Name: "alice", Motivation: "trees"}
	id, err := svc.Apply(context.Background(), app)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if id == 0 || applications.created != 1 {
		t.Fatalf("application not stored")
	}
}

func TestApplyUnknownEvent(t *testing.T) {
	requests, applications, _, svc := newVolunteerFixture()
	userID := int64(7)
	requests.add(&models.VolunteerRequest{ID: 1, UserID: &userID, Status: models.StatusAccepted})

	app := &models.VolunteerApplication{EventID: 99, UserID: &userID, Name: "alice"}
	_, err := svc.Apply(context.Background(), app)
	if !errors.Is(err, apperrors.ErrEventNotFound) {
		t.Fatalf("expected event not found, got %v", err)
	}
	if applications.created != 0 {
		t.Fatalf("application stored for unknown event")
	}
}

func TestAcceptRequestIsIdempotent(t *testing.T) {
	requests, _, _, svc := newVolunteerFixture()
	userID := int64(7)
	requests.add(&models.VolunteerRequest{ID: 1, UserID: &userID, Status: models.StatusPending})

	req, err := svc.AcceptRequest(context.Background(), 1)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if req.Status != models.StatusAccepted {
		t.Fatalf("status = %s, want Accepted", req.Status.Label())
	}

	// Repeating the transition, or denying afterwards, changes nothing.
	req, err = svc.AcceptRequest(context.Background(), 1)
	if err != nil || req.Status != models.StatusAccepted {
		t.Fatalf("second accept changed row: %v %s", err, req.Status.Label())
	}
	req, err = svc.DenyRequest(context.Background(), 1)
	if err != nil || req.Status != models.StatusAccepted {
		t.Fatalf("deny after accept changed row: %v %s", err, req.Status.Label())
	}
	if len(requests.updates) != 1 {
		t.Fatalf("expected one status write, got %d", len(requests.updates))
	}
}

func TestDenyApplicationTerminal(t *testing.T) {
	_, applications, _, svc := newVolunteerFixture()
	applications.byID[1] = &models.VolunteerApplication{ID: 1, EventID: 1, Status: models.StatusPending}

	app, err := svc.DenyApplication(context.Background(), 1)
	if err != nil {
		t.Fatalf("deny: %v", err)
	}
	if app.Status != models.StatusDenied {
		t.Fatalf("status = %s, want Denied", app.Status.Label())
	}

	app, err = svc.AcceptApplication(context.Background(), 1)
	if err != nil || app.Status != models.StatusDenied {
		t.Fatalf("accept after deny changed row: %v %s", err, app.Status.Label())
	}
	if len(applications.updates) != 1 {
		t.Fatalf("expected one status write, got %d", len(applications.updates))
	}
}

func TestModerateMissingRequest(t *testing.T) {
	_, _, _, svc := newVolunteerFixture()
	if _, err := svc.AcceptRequest(context.Background(), 42); !errors.Is(err, apperrors.ErrRequestNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
