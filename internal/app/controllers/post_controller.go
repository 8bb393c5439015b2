package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/deren/greenhub/internal/app/forms"
	"github.com/deren/greenhub/internal/app/models"
	"github.com/deren/greenhub/internal/app/services"
	"github.com/deren/greenhub/internal/middleware"
	"github.com/deren/greenhub/internal/pkg/apperrors"
	"github.com/deren/greenhub/internal/pkg/filestorage"
	"github.com/deren/greenhub/internal/pkg/flash"
)

// visitCookie tracks per-browser visits to the home page.
const visitCookie = "greenhub_visits"

// PostController handles the home page, post detail and post moderation.
type PostController struct {
	postService     services.PostService
	feedbackService services.FeedbackService
	fileStorage     *filestorage.LocalStorage
	logger          zerolog.Logger
}

// NewPostController creates a new PostController
func NewPostController(postService services.PostService, feedbackService services.FeedbackService, fileStorage *filestorage.LocalStorage, logger zerolog.Logger) *PostController {
	return &PostController{
		postService:     postService,
		feedbackService: feedbackService,
		fileStorage:     fileStorage,
		logger:          logger,
	}
}

// Home lists posts newest-first with an optional case-insensitive search over
// title and content. Staff land on the dashboard instead.
func (c *PostController) Home(ctx *gin.Context) {
	if identity := middleware.CurrentIdentity(ctx); identity != nil && identity.IsStaff {
		ctx.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	search := ctx.Query("q")
	posts, err := c.postService.ListPosts(ctx, search)
	if err != nil {
		middleware.HandleError(ctx, err, "/")
		return
	}

	visits := 1
	if raw, err := ctx.Cookie(visitCookie); err == nil {
		if n, err := strconv.Atoi(raw); err == nil {
			visits = n + 1
		}
	}
	ctx.SetCookie(visitCookie, strconv.Itoa(visits), 30*24*3600, "/", "", false, true)

	render(ctx, gin.H{
		"page":   "home",
		"posts":  posts,
		"search": search,
		"visits": visits,
	})
}

// About renders the static about page payload.
func (c *PostController) About(ctx *gin.Context) {
	render(ctx, gin.H{"page": "about"})
}

// PostDetail shows one post with its feedback, newest-first.
func (c *PostController) PostDetail(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	post, feedbacks, err := c.postService.GetPost(ctx, id)
	if err != nil {
		middleware.HandleError(ctx, err, "/")
		return
	}

	render(ctx, gin.H{
		"page":      "post_detail",
		"post":      post,
		"feedbacks": feedbacks,
	})
}

// SubmitPostFeedback handles the inline feedback form on a post detail page.
func (c *PostController) SubmitPostFeedback(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	backTo := "/post/" + strconv.FormatInt(id, 10)

	form := forms.FeedbackForm{Text: ctx.PostForm("feedback")}
	if errs := form.Validate(); !errs.Valid() {
		middleware.HandleError(ctx, apperrors.NewValidationError(errs), backTo)
		return
	}

	// Attach to the post only if it still exists.
	if _, _, err := c.postService.GetPost(ctx, id); err != nil {
		middleware.HandleError(ctx, err, "/")
		return
	}

	identity := middleware.CurrentIdentity(ctx)
	fb := &models.Feedback{
		UserID: identity.UserID,
		PostID: &id,
		Text:   form.Text,
	}
	if _, err := c.feedbackService.SubmitFeedback(ctx, fb); err != nil {
		middleware.HandleError(ctx, err, backTo)
		return
	}

	flash.Set(ctx, flash.LevelSuccess, "Thanks for your feedback!")
	ctx.Redirect(http.StatusSeeOther, backTo)
}

// ShowAddPost renders the add-post page payload.
func (c *PostController) ShowAddPost(ctx *gin.Context) {
	render(ctx, gin.H{"page": "add_post"})
}

// AddPost creates a post from the authenticated user, with an optional image
// upload.
func (c *PostController) AddPost(ctx *gin.Context) {
	form := forms.PostForm{
		Title:   ctx.PostForm("title"),
		Content: ctx.PostForm("content"),
	}
	if errs := form.Validate(); !errs.Valid() {
		middleware.HandleError(ctx, apperrors.NewValidationError(errs), "/add-post")
		return
	}

	identity := middleware.CurrentIdentity(ctx)
	post := &models.Post{
		Title:    form.Title,
		Content:  form.Content,
		AuthorID: identity.UserID,
	}

	if fileHeader, err := ctx.FormFile("image"); err == nil && fileHeader != nil {
		imagePath, err := c.fileStorage.SaveFile(fileHeader, "posts")
		if err != nil {
			c.logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to store post image")
			middleware.HandleError(ctx, err, "/add-post")
			return
		}
		post.ImagePath = &imagePath
	}

	if _, err := c.postService.CreatePost(ctx, post); err != nil {
		middleware.HandleError(ctx, err, "/add-post")
		return
	}

	flash.Set(ctx, flash.LevelSuccess, "Post \""+post.Title+"\" published.")
	ctx.Redirect(http.StatusSeeOther, "/")
}

// AdminPosts lists all posts for moderation.
func (c *PostController) AdminPosts(ctx *gin.Context) {
	posts, err := c.postService.ListPosts(ctx, "")
	if err != nil {
		middleware.HandleError(ctx, err, "/dashboard")
		return
	}
	render(ctx, gin.H{"page": "admin_posts", "posts": posts})
}

// DeletePost removes a post and its stored image, if any.
func (c *PostController) DeletePost(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	post, err := c.postService.DeletePost(ctx, id)
	if err != nil {
		middleware.HandleError(ctx, err, "/admin-posts")
		return
	}

	if post.ImagePath != nil {
		if err := c.fileStorage.DeleteFile(*post.ImagePath); err != nil {
			c.logger.Warn().Err(err).Str("path", *post.ImagePath).Msg("Failed to remove post image")
		}
	}

	flash.Set(ctx, flash.LevelSuccess, "Post \""+post.Title+"\" deleted.")
	ctx.Redirect(http.StatusSeeOther, "/admin-posts")
}
