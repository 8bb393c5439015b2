package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/deren/greenhub/internal/app/forms"
	"github.com/deren/greenhub/internal/app/models"
	"github.com/deren/greenhub/internal/app/services"
	"github.com/deren/greenhub/internal/middleware"
	"github.com/deren/greenhub/internal/pkg/apperrors"
	"github.com/deren/greenhub/internal/pkg/auth"
	"github.com/deren/greenhub/internal/pkg/flash"
)

// AuthController handles signup, login and logout.
type AuthController struct {
	authService services.AuthService
	sessions    *auth.SessionService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, sessions *auth.SessionService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		sessions:    sessions,
		logger:      logger,
	}
}

// ShowSignup renders the signup page payload.
func (c *AuthController) ShowSignup(ctx *gin.Context) {
	render(ctx, gin.H{"page": "signup"})
}

// Signup handles registration. A successful signup logs the new user in
// immediately.
func (c *AuthController) Signup(ctx *gin.Context) {
	form := forms.SignupForm{
		Username:  ctx.PostForm("username"),
		Email:     ctx.PostForm("email"),
		Password:  ctx.PostForm("password"),
		Password2: ctx.PostForm("password2"),
	}
	if errs := form.Validate(); !errs.Valid() {
		middleware.HandleError(ctx, apperrors.NewValidationError(errs), "/signup")
		return
	}

	user, err := c.authService.Signup(ctx, form.Username, form.Email, form.Password)
	if err != nil {
		middleware.HandleError(ctx, err, "/signup")
		return
	}

	if err := c.startSession(ctx, user); err != nil {
		middleware.HandleError(ctx, err, "/login")
		return
	}

	flash.Set(ctx, flash.LevelSuccess, "Welcome to GreenHub, "+user.Username+"!")
	ctx.Redirect(http.StatusSeeOther, "/")
}

// ShowLogin renders the login page payload.
func (c *AuthController) ShowLogin(ctx *gin.Context) {
	render(ctx, gin.H{"page": "login"})
}

// Login verifies credentials and starts a session.
func (c *AuthController) Login(ctx *gin.Context) {
	form := forms.LoginForm{
		Username: ctx.PostForm("username"),
		Password: ctx.PostForm("password"),
	}
	if errs := form.Validate(); !errs.Valid() {
		middleware.HandleError(ctx, apperrors.NewValidationError(errs), "/login")
		return
	}

	user, err := c.authService.Login(ctx, form.Username, form.Password)
	if err != nil {
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			c.logger.Error().Err(err).Str("username", form.Username).Msg("Login failed")
		}
		middleware.HandleError(ctx, err, "/login")
		return
	}

	if err := c.startSession(ctx, user); err != nil {
		middleware.HandleError(ctx, err, "/login")
		return
	}

	flash.Set(ctx, flash.LevelSuccess, "Logged in as "+user.Username+".")
	ctx.Redirect(http.StatusSeeOther, "/")
}

// Logout clears the session cookie.
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	flash.Set(ctx, flash.LevelInfo, "You have been logged out.")
	ctx.Redirect(http.StatusSeeOther, "/")
}

func (c *AuthController) startSession(ctx *gin.Context, user *models.User) error {
	token, err := c.sessions.Issue(user)
	if err != nil {
		return err
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(middleware.SessionCookie, token, int(c.sessions.TokenExpiry().Seconds()), "/", "", false, true)
	return nil
}
