package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/deren/greenhub/internal/app/forms"
	"github.com/deren/greenhub/internal/app/models"
	"github.com/deren/greenhub/internal/app/services"
	"github.com/deren/greenhub/internal/middleware"
	"github.com/deren/greenhub/internal/pkg/apperrors"
	"github.com/deren/greenhub/internal/pkg/flash"
)

// VolunteerController handles volunteer requests, per-event applications and
// the staff accept/deny moderation for both.
type VolunteerController struct {
	volunteerService services.VolunteerService
	eventService     services.EventService
	logger           zerolog.Logger
}

// NewVolunteerController creates a new VolunteerController
func NewVolunteerController(volunteerService services.VolunteerService, eventService services.EventService, logger zerolog.Logger) *VolunteerController {
	return &VolunteerController{
		volunteerService: volunteerService,
		eventService:     eventService,
		logger:           logger,
	}
}

// ShowVolunteerForm renders the volunteer request page payload.
func (c *VolunteerController) ShowVolunteerForm(ctx *gin.Context) {
	render(ctx, gin.H{"page": "volunteer"})
}

// SubmitRequest stores the caller's volunteer request. Each user gets exactly
// one; a second submission redirects with an informational notice.
func (c *VolunteerController) SubmitRequest(ctx *gin.Context) {
	form := forms.VolunteerRequestForm{
		Phone:          ctx.PostForm("phone"),
		AreaOfInterest: ctx.PostForm("area_of_interest"),
		Availability:   ctx.PostForm("availability"),
	}
	if errs := form.Validate(); !errs.Valid() {
		middleware.HandleError(ctx, apperrors.NewValidationError(errs), "/volunteer")
		return
	}

	identity := middleware.CurrentIdentity(ctx)
	req := &models.VolunteerRequest{
		UserID:         &identity.UserID,
		Name:           identity.Username,
		Email:          identity.Email,
		Phone:          form.Phone,
		AreaOfInterest: form.AreaOfInterest,
		Availability:   form.Availability,
		Status:         models.StatusPending,
	}
	if _, err := c.volunteerService.SubmitRequest(ctx, req); err != nil {
		middleware.HandleError(ctx, err, "/volunteer")
		return
	}

	flash.Set(ctx, flash.LevelSuccess, "Your volunteer request has been submitted.")
	ctx.Redirect(http.StatusSeeOther, "/events")
}

// Apply stores a per-event application for the caller. Requires an Accepted
// volunteer request.
func (c *VolunteerController) Apply(ctx *gin.Context) {
	form := forms.VolunteerApplicationForm{
		EventID:    ctx.PostForm("event"),
		Phone:      ctx.PostForm("phone"),
		Motivation: ctx.PostForm("motivation"),
	}
	if errs := form.Validate(); !errs.Valid() {
		middleware.HandleError(ctx, apperrors.NewValidationError(errs), "/events")
		return
	}
	eventID, _ := strconv.ParseInt(form.EventID, 10, 64)

	identity := middleware.CurrentIdentity(ctx)
	app := &models.VolunteerApplication{
		EventID:    eventID,
		UserID:     &identity.UserID,
		Name:       identity.Username,
		Email:      identity.Email,
		Motivation: form.Motivation,
		Status:     models.StatusPending,
	}
	if form.Phone != "" {
		app.Phone = &form.Phone
	}

	if _, err := c.volunteerService.Apply(ctx, app); err != nil {
		middleware.HandleError(ctx, err, "/events")
		return
	}

	flash.Set(ctx, flash.LevelSuccess, "Your application has been submitted.")
	ctx.Redirect(http.StatusSeeOther, "/events")
}

// VolunteerRequests lists all volunteer requests for staff.
func (c *VolunteerController) VolunteerRequests(ctx *gin.Context) {
	requests, err := c.volunteerService.ListRequests(ctx)
	if err != nil {
		middleware.HandleError(ctx, err, "/dashboard")
		return
	}
	render(ctx, gin.H{"page": "volunteer_requests", "requests": requests})
}

// AcceptRequest marks a volunteer request Accepted. Terminal rows are left
// unchanged.
func (c *VolunteerController) AcceptRequest(ctx *gin.Context) {
	c.moderateRequest(ctx, c.volunteerService.AcceptRequest)
}

// DenyRequest marks a volunteer request Denied. Terminal rows are left
// unchanged.
func (c *VolunteerController) DenyRequest(ctx *gin.Context) {
	c.moderateRequest(ctx, c.volunteerService.DenyRequest)
}

func (c *VolunteerController) moderateRequest(ctx *gin.Context, transition func(ctx0 context.Context, id int64) (*models.VolunteerRequest, error)) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	req, err := transition(ctx, id)
	if err != nil {
		middleware.HandleError(ctx, err, "/volunteer-requests")
		return
	}

	flash.Set(ctx, flash.LevelSuccess, "Request from "+req.Name+" is now "+req.Status.Label()+".")
	ctx.Redirect(http.StatusSeeOther, "/volunteer-requests")
}

// AdminEvents lists events together with all applications for moderation.
func (c *VolunteerController) AdminEvents(ctx *gin.Context) {
	events, err := c.eventService.ListEvents(ctx, nil)
	if err != nil {
		middleware.HandleError(ctx, err, "/dashboard")
		return
	}
	apps, err := c.volunteerService.ListApplications(ctx)
	if err != nil {
		middleware.HandleError(ctx, err, "/dashboard")
		return
	}
	render(ctx, gin.H{
		"page":         "admin_events",
		"events":       events,
		"applications": apps,
	})
}

// AcceptApplication marks an event application Accepted.
func (c *VolunteerController) AcceptApplication(ctx *gin.Context) {
	c.moderateApplication(ctx, c.volunteerService.AcceptApplication)
}

// DenyApplication marks an event application Denied.
func (c *VolunteerController) DenyApplication(ctx *gin.Context) {
	c.moderateApplication(ctx, c.volunteerService.DenyApplication)
}

func (c *VolunteerController) moderateApplication(ctx *gin.Context, transition func(ctx0 context.Context, id int64) (*models.VolunteerApplication, error)) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	app, err := transition(ctx, id)
	if err != nil {
		middleware.HandleError(ctx, err, "/admin-events")
		return
	}

	flash.Set(ctx, flash.LevelSuccess, "Application from "+app.Name+" is now "+app.Status.Label()+".")
	ctx.Redirect(http.StatusSeeOther, "/admin-events")
}
