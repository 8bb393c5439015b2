package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/deren/greenhub/internal/app/services"
	"github.com/deren/greenhub/internal/middleware"
	"github.com/deren/greenhub/internal/pkg/flash"
)

// AdminController handles the staff dashboard and user administration.
type AdminController struct {
	dashboardService services.DashboardService
	userService      services.UserService
	logger           zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(dashboardService services.DashboardService, userService services.UserService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		dashboardService: dashboardService,
		userService:      userService,
		logger:           logger,
	}
}

// Dashboard shows the per-entity counts.
func (c *AdminController) Dashboard(ctx *gin.Context) {
	counts, err := c.dashboardService.Counts(ctx)
	if err != nil {
		middleware.HandleError(ctx, err, "/")
		return
	}
	render(ctx, gin.H{"page": "dashboard", "counts": counts})
}

// Users lists all accounts ordered by username.
func (c *AdminController) Users(ctx *gin.Context) {
	users, err := c.userService.ListUsers(ctx)
	if err != nil {
		middleware.HandleError(ctx, err, "/dashboard")
		return
	}
	render(ctx, gin.H{"page": "users", "users": users})
}

// DeleteUser removes an account. Rows owned by the user cascade or null out
// per the schema.
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	user, err := c.userService.DeleteUser(ctx, id)
	if err != nil {
		middleware.HandleError(ctx, err, "/users")
		return
	}

	c.logger.Info().Int64("userID", id).Str("username", user.Username).Msg("User deleted by staff")
	flash.Set(ctx, flash.LevelSuccess, "User "+user.Username+" deleted.")
	ctx.Redirect(http.StatusSeeOther, "/users")
}
