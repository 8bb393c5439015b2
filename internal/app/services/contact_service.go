package services

import (
	"context"
	"fmt"

	"github.com/deren/greenhub/internal/app/models"
)

// contactStore is the slice of the contact repository the contact service
// needs.
type contactStore interface {
	Create(ctx context.Context, msg *models.ContactMessage) (int64, error)
	GetAll(ctx context.Context) ([]*models.ContactMessage, error)
}

// reportStore is the slice of the report repository the contact service
// needs.
type reportStore interface {
	Create(ctx context.Context, report *models.ReportIssue) (int64, error)
	GetAll(ctx context.Context) ([]*models.ReportIssue, error)
}

// ContactService defines contact message and issue report operations.
type ContactService interface {
	SubmitMessage(ctx context.Context, msg *models.ContactMessage) (int64, error)
	ListMessages(ctx context.Context) ([]*models.ContactMessage, error)
	SubmitReport(ctx context.Context, report *models.ReportIssue) (int64, error)
	ListReports(ctx context.Context) ([]*models.ReportIssue, error)
}

type contactServiceImpl struct {
	contacts contactStore
	reports  reportStore
}

// NewContactService creates a new contact service instance
func NewContactService(contacts contactStore, reports reportStore) ContactService {
	return &contactServiceImpl{contacts: contacts, reports: reports}
}

// SubmitMessage persists a contact message.
func (s *contactServiceImpl) SubmitMessage(ctx context.Context, msg *models.ContactMessage) (int64, error) {
	id, err := s.contacts.Create(ctx, msg)
	if err != nil {
		return 0, fmt.Errorf("error submitting contact message: %w", err)
	}
	return id, nil
}

// ListMessages returns all contact messages, newest-first.
func (s *contactServiceImpl) ListMessages(ctx context.Context) ([]*models.ContactMessage, error) {
	messages, err := s.contacts.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing contact messages: %w", err)
	}
	return messages, nil
}

// SubmitReport persists a public issue report.
func (s *contactServiceImpl) SubmitReport(ctx context.Context, report *models.ReportIssue) (int64, error) {
	id, err := s.reports.Create(ctx, report)
	if err != nil {
		return 0, fmt.Errorf("error submitting issue report: %w", err)
	}
	return id, nil
}

// ListReports returns all issue reports, newest-first.
func (s *contactServiceImpl) ListReports(ctx context.Context) ([]*models.ReportIssue, error) {
	reports, err := s.reports.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing issue reports: %w", err)
	}
	return reports, nil
}
