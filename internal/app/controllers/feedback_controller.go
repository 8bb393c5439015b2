package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deren/greenhub/internal/app/forms"
	"github.com/deren/greenhub/internal/app/models"
	"github.com/deren/greenhub/internal/app/services"
	"github.com/deren/greenhub/internal/middleware"
	"github.com/deren/greenhub/internal/pkg/apperrors"
	"github.com/deren/greenhub/internal/pkg/flash"
)

// FeedbackController handles the standalone feedback form and staff
// moderation of feedback.
type FeedbackController struct {
	feedbackService services.FeedbackService
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService services.FeedbackService) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// ShowFeedbackForm renders the standalone feedback page payload.
func (c *FeedbackController) ShowFeedbackForm(ctx *gin.Context) {
	render(ctx, gin.H{"page": "feedback"})
}

// SubmitFeedback handles the standalone feedback form. The row is not
// attached to any post.
func (c *FeedbackController) SubmitFeedback(ctx *gin.Context) {
	form := forms.FeedbackForm{Text: ctx.PostForm("feedback")}
	if errs := form.Validate(); !errs.Valid() {
		middleware.HandleError(ctx, apperrors.NewValidationError(errs), "/feedback")
		return
	}

	identity := middleware.CurrentIdentity(ctx)
	fb := &models.Feedback{
		UserID: identity.UserID,
		Text:   form.Text,
	}
	if _, err := c.feedbackService.SubmitFeedback(ctx, fb); err != nil {
		middleware.HandleError(ctx, err, "/feedback")
		return
	}

	flash.Set(ctx, flash.LevelSuccess, "Thanks for your feedback!")
	ctx.Redirect(http.StatusSeeOther, "/")
}

// ManageFeedbacks lists all feedback for moderation.
func (c *FeedbackController) ManageFeedbacks(ctx *gin.Context) {
	feedbacks, err := c.feedbackService.ListFeedbacks(ctx)
	if err != nil {
		middleware.HandleError(ctx, err, "/dashboard")
		return
	}
	render(ctx, gin.H{"page": "manage_feedbacks", "feedbacks": feedbacks})
}

// DeleteFeedback removes one feedback row.
func (c *FeedbackController) DeleteFeedback(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	fb, err := c.feedbackService.DeleteFeedback(ctx, id)
	if err != nil {
		middleware.HandleError(ctx, err, "/manage-feedbacks")
		return
	}

	flash.Set(ctx, flash.LevelSuccess, "Feedback from "+fb.Username+" deleted.")
	ctx.Redirect(http.StatusSeeOther, "/manage-feedbacks")
}
