package services

import (
	"context"
	"fmt"

	"github.com/deren/greenhub/internal/app/models"
)

// counter is satisfied by every repository with a table count.
type counter interface {
	Count(ctx context.Context) (int64, error)
}

// DashboardService builds the staff dashboard rollup.
type DashboardService interface {
	Counts(ctx context.Context) (*models.DashboardCounts, error)
}

type dashboardServiceImpl struct {
	posts    counter
	contacts counter
	feedback counter
	requests counter
	reports  counter
	events   counter
	users    counter
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(posts, contacts, feedback, requests, reports, events, users counter) DashboardService {
	return &dashboardServiceImpl{
		posts:    posts,
		contacts: contacts,
		feedback: feedback,
		requests: requests,
		reports:  reports,
		events:   events,
		users:    users,
	}
}

// Counts returns one count per entity table. Pure read-only rollup.
func (s *dashboardServiceImpl) Counts(ctx context.Context) (*models.DashboardCounts, error) {
	counts := &models.DashboardCounts{}

	for _, c := range []struct {
		name string
		src  counter
		dst  *int64
	}{
		{"posts", s.posts, &counts.Posts},
		{"contact messages", s.contacts, &counts.ContactMessages},
		{"feedback", s.feedback, &counts.Feedbacks},
		{"volunteer requests", s.requests, &counts.VolunteerRequests},
		{"issue reports", s.reports, &counts.Issues},
		{"events", s.events, &counts.Events},
		{"users", s.users, &counts.Users},
	} {
		n, err := c.src.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("error counting %s: %w", c.name, err)
		}
		*c.dst = n
	}

	return counts, nil
}
