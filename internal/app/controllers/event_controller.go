package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/deren/greenhub/internal/app/forms"
	"github.com/deren/greenhub/internal/app/models"
	"github.com/deren/greenhub/internal/app/services"
	"github.com/deren/greenhub/internal/middleware"
	"github.com/deren/greenhub/internal/pkg/apperrors"
	"github.com/deren/greenhub/internal/pkg/flash"
)

// EventController handles the public event pages and staff event creation.
type EventController struct {
	eventService services.EventService
	logger       zerolog.Logger
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService, logger zerolog.Logger) *EventController {
	return &EventController{eventService: eventService, logger: logger}
}

// ListEvents shows all events by date, most recent first. Authenticated
// callers see their own application status per event.
func (c *EventController) ListEvents(ctx *gin.Context) {
	var userID *int64
	if identity := middleware.CurrentIdentity(ctx); identity != nil {
		userID = &identity.UserID
	}

	events, err := c.eventService.ListEvents(ctx, userID)
	if err != nil {
		middleware.HandleError(ctx, err, "/")
		return
	}
	render(ctx, gin.H{"page": "events", "events": events})
}

// EventDetail shows one event.
func (c *EventController) EventDetail(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	event, err := c.eventService.GetEvent(ctx, id)
	if err != nil {
		middleware.HandleError(ctx, err, "/events")
		return
	}
	render(ctx, gin.H{"page": "event_detail", "event": event})
}

// AddEvent creates an event on behalf of the staff caller.
func (c *EventController) AddEvent(ctx *gin.Context) {
	form := forms.EventForm{
		Title:       ctx.PostForm("title"),
		Description: ctx.PostForm("description"),
		Date:        ctx.PostForm("date"),
		Location:    ctx.PostForm("location"),
	}
	if errs := form.Validate(); !errs.Valid() {
		middleware.HandleError(ctx, apperrors.NewValidationError(errs), "/admin-events")
		return
	}

	identity := middleware.CurrentIdentity(ctx)
	event := &models.Event{
		Title:       form.Title,
		Description: form.Description,
		Date:        form.ParsedDate(),
		Location:    form.Location,
		CreatedBy:   identity.UserID,
	}
	if _, err := c.eventService.CreateEvent(ctx, event); err != nil {
		middleware.HandleError(ctx, err, "/admin-events")
		return
	}

	c.logger.Info().Str("title", event.Title).Int64("createdBy", identity.UserID).Msg("Event created")
	flash.Set(ctx, flash.LevelSuccess, "Event \""+event.Title+"\" created.")
	ctx.Redirect(http.StatusSeeOther, "/admin-events")
}
