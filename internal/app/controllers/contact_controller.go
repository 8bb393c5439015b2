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

// ContactController handles contact messages and public issue reports.
type ContactController struct {
	contactService services.ContactService
}

// NewContactController creates a new ContactController
func NewContactController(contactService services.ContactService) *ContactController {
	return &ContactController{contactService: contactService}
}

// ShowContactForm renders the contact page payload, prefilled from the
// session identity.
func (c *ContactController) ShowContactForm(ctx *gin.Context) {
	identity := middleware.CurrentIdentity(ctx)
	render(ctx, gin.H{
		"page":  "contact",
		"name":  identity.Username,
		"email": identity.Email,
	})
}

// SubmitContact stores a contact message from an authenticated user.
func (c *ContactController) SubmitContact(ctx *gin.Context) {
	form := forms.ContactForm{
		Name:    ctx.PostForm("name"),
		Email:   ctx.PostForm("email"),
		Message: ctx.PostForm("message"),
	}
	if errs := form.Validate(); !errs.Valid() {
		middleware.HandleError(ctx, apperrors.NewValidationError(errs), "/contact")
		return
	}

	msg := &models.ContactMessage{
		Name:    form.Name,
		Email:   form.Email,
		Message: form.Message,
	}
	if _, err := c.contactService.SubmitMessage(ctx, msg); err != nil {
		middleware.HandleError(ctx, err, "/contact")
		return
	}

	flash.Set(ctx, flash.LevelSuccess, "Your message has been sent.")
	ctx.Redirect(http.StatusSeeOther, "/")
}

// ContactMessages lists all contact messages for staff.
func (c *ContactController) ContactMessages(ctx *gin.Context) {
	messages, err := c.contactService.ListMessages(ctx)
	if err != nil {
		middleware.HandleError(ctx, err, "/dashboard")
		return
	}
	render(ctx, gin.H{"page": "contact_messages", "messages": messages})
}

// IssueReports lists all filed issue reports for staff.
func (c *ContactController) IssueReports(ctx *gin.Context) {
	reports, err := c.contactService.ListReports(ctx)
	if err != nil {
		middleware.HandleError(ctx, err, "/dashboard")
		return
	}
	render(ctx, gin.H{"page": "issue_reports", "reports": reports})
}

// ShowReportForm renders the public issue report page payload.
func (c *ContactController) ShowReportForm(ctx *gin.Context) {
	render(ctx, gin.H{"page": "report_issue"})
}

// ReportIssue stores a public issue report. No login is required.
func (c *ContactController) ReportIssue(ctx *gin.Context) {
	form := forms.ReportIssueForm{
		Name:  ctx.PostForm("name"),
		Issue: ctx.PostForm("issue"),
	}
	if errs := form.Validate(); !errs.Valid() {
		middleware.HandleError(ctx, apperrors.NewValidationError(errs), "/report-issue")
		return
	}

	report := &models.ReportIssue{
		Name:  form.Name,
		Issue: form.Issue,
	}
	if _, err := c.contactService.SubmitReport(ctx, report); err != nil {
		middleware.HandleError(ctx, err, "/report-issue")
		return
	}

	flash.Set(ctx, flash.LevelSuccess, "Thanks, your report has been filed.")
	ctx.Redirect(http.StatusSeeOther, "/")
}
