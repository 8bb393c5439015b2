package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/deren/greenhub/internal/app/controllers"
	"github.com/deren/greenhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	postController *controllers.PostController,
	feedbackController *controllers.FeedbackController,
	contactController *controllers.ContactController,
	eventController *controllers.EventController,
	volunteerController *controllers.VolunteerController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Every request resolves the session cookie first; public handlers see an
	// identity when one exists, anonymous otherwise.
	router.Use(authMiddleware.ResolveSession())

	// --- Public routes ---
	router.GET("/", postController.Home)
	router.GET("/about", postController.About)
	router.GET("/post/:id", postController.PostDetail)
	router.GET("/events", eventController.ListEvents)
	router.GET("/events/:id", eventController.EventDetail)

	router.GET("/signup", authController.ShowSignup)
	router.POST("/signup", authController.Signup)
	router.GET("/login", authController.ShowLogin)
	router.POST("/login", authController.Login)
	router.POST("/logout", authController.Logout)

	router.GET("/report-issue", contactController.ShowReportForm)
	router.POST("/report-issue", contactController.ReportIssue)

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.LoginRequired())
	{
		authenticated.POST("/post/:id", postController.SubmitPostFeedback)
		authenticated.GET("/add-post", postController.ShowAddPost)
		authenticated.POST("/add-post", postController.AddPost)

		authenticated.GET("/contact", contactController.ShowContactForm)
		authenticated.POST("/contact", contactController.SubmitContact)

		authenticated.GET("/feedback", feedbackController.ShowFeedbackForm)
		authenticated.POST("/feedback", feedbackController.SubmitFeedback)

		authenticated.GET("/volunteer", volunteerController.ShowVolunteerForm)
		authenticated.POST("/volunteer", volunteerController.SubmitRequest)
		authenticated.POST("/events/apply", volunteerController.Apply)
	}

	// --- Staff routes ---
	staff := router.Group("")
	staff.Use(authMiddleware.StaffRequired())
	{
		staff.GET("/dashboard", adminController.Dashboard)

		staff.GET("/contact-messages", contactController.ContactMessages)
		staff.GET("/issue-reports", contactController.IssueReports)

		staff.GET("/manage-feedbacks", feedbackController.ManageFeedbacks)
		staff.POST("/manage-feedbacks/:id/delete", feedbackController.DeleteFeedback)

		staff.GET("/volunteer-requests", volunteerController.VolunteerRequests)
		staff.POST("/volunteer-requests/:id/accept", volunteerController.AcceptRequest)
		staff.POST("/volunteer-requests/:id/deny", volunteerController.DenyRequest)

		staff.GET("/admin-events", volunteerController.AdminEvents)
		staff.POST("/admin-events/:id/accept", volunteerController.AcceptApplication)
		staff.POST("/admin-events/:id/deny", volunteerController.DenyApplication)
		staff.POST("/events/add", eventController.AddEvent)

		staff.GET("/admin-posts", postController.AdminPosts)
		staff.POST("/admin-posts/:id/delete", postController.DeletePost)

		staff.GET("/users", adminController.Users)
		staff.POST("/users/:id/delete", adminController.DeleteUser)
	}
}
