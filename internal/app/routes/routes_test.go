package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/deren/greenhub/internal/app/controllers"
	"github.com/deren/greenhub/internal/app/models"
	"github.com/deren/greenhub/internal/middleware"
	"github.com/deren/greenhub/internal/pkg/apperrors"
	"github.com/deren/greenhub/internal/pkg/auth"
)

// recorder counts writes reaching the service layer so gate tests can assert
// that nothing mutates on a rejected request.
type recorder struct {
	posts        int
	feedbacks    int
	contacts     int
	reports      int
	requests     int
	applications int
	deletions    int
}

type fakePostService struct{ rec *recorder }

func (f *fakePostService) ListPosts(ctx context.Context, search string) ([]*models.Post, error) {
	return []*models.Post{}, nil
}
func (f *fakePostService) GetPost(ctx context.Context, id int64) (*models.Post, []*models.Feedback, error) {
	if id != 1 {
		return nil, nil, apperrors.ErrPostNotFound
	}
	return &models.Post{ID: 1, Title: "Recycling drive"}, nil, nil
}
func (f *fakePostService) CreatePost(ctx context.Context, post *models.Post) (int64, error) {
	f.rec.posts++
	return 1, nil
}
func (f *fakePostService) DeletePost(ctx context.Context, id int64) (*models.Post, error) {
	f.rec.deletions++
	return &models.Post{ID: id, Title: "Recycling drive"}, nil
}

type fakeFeedbackService struct{ rec *recorder }

func (f *fakeFeedbackService) SubmitFeedback(ctx context.Context, fb *models.Feedback) (int64, error) {
	f.rec.feedbacks++
	return 1, nil
}
func (f *fakeFeedbackService) ListFeedbacks(ctx context.Context) ([]*models.Feedback, error) {
	return []*models.Feedback{}, nil
}
func (f *fakeFeedbackService) DeleteFeedback(ctx context.Context, id int64) (*models.Feedback, error) {
	f.rec.deletions++
	return &models.Feedback{ID: id, Username: "alice"}, nil
}

type fakeContactService struct{ rec *recorder }

func (f *fakeContactService) SubmitMessage(ctx context.Context, msg *models.ContactMessage) (int64, error) {
	f.rec.contacts++
	return 1, nil
}
func (f *fakeContactService) ListMessages(ctx context.Context) ([]*models.ContactMessage, error) {
	return []*models.ContactMessage{}, nil
}
func (f *fakeContactService) SubmitReport(ctx context.Context, report *models.ReportIssue) (int64, error) {
	f.rec.reports++
	return 1, nil
}
func (f *fakeContactService) ListReports(ctx context.Context) ([]*models.ReportIssue, error) {
	return []*models.ReportIssue{}, nil
}

type fakeEventService struct{}

func (f *fakeEventService) ListEvents(ctx context.Context, userID *int64) ([]*models.Event, error) {
	return []*models.Event{{ID: 1, Title: "Park Cleanup", Date: time.Now()}}, nil
}
func (f *fakeEventService) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	if id != 1 {
		return nil, apperrors.ErrEventNotFound
	}
	return &models.Event{ID: 1, Title: "Park Cleanup"}, nil
}
func (f *fakeEventService) CreateEvent(ctx context.Context, event *models.Event) (int64, error) {
	return 1, nil
}

type fakeVolunteerService struct{ rec *recorder }

func (f *fakeVolunteerService) SubmitRequest(ctx context.Context, req *models.VolunteerRequest) (int64, error) {
	f.rec.requests++
	return 1, nil
}
func (f *fakeVolunteerService) ListRequests(ctx context.Context) ([]*models.VolunteerRequest, error) {
	return []*models.VolunteerRequest{}, nil
}
func (f *fakeVolunteerService) AcceptRequest(ctx context.Context, id int64) (*models.VolunteerRequest, error) {
	return &models.VolunteerRequest{ID: id, Name: "alice", Status: models.StatusAccepted}, nil
}
func (f *fakeVolunteerService) DenyRequest(ctx context.Context, id int64) (*models.VolunteerRequest, error) {
	return &models.VolunteerRequest{ID: id, Name: "alice", Status: models.StatusDenied}, nil
}
func (f *fakeVolunteerService) Apply(ctx context.Context, app *models.VolunteerApplication) (int64, error) {
	f.rec.applications++
	return 1, nil
}
func (f *fakeVolunteerService) ListApplications(ctx context.Context) ([]*models.VolunteerApplication, error) {
	return []*models.VolunteerApplication{}, nil
}
func (f *fakeVolunteerService) AcceptApplication(ctx context.Context, id int64) (*models.VolunteerApplication, error) {
	return &models.VolunteerApplication{ID: id, Name: "alice", Status: models.StatusAccepted}, nil
}
func (f *fakeVolunteerService) DenyApplication(ctx context.Context, id int64) (*models.VolunteerApplication, error) {
	return &models.VolunteerApplication{ID: id, Name: "alice", Status: models.StatusDenied}, nil
}

type fakeUserService struct{ rec *recorder }

func (f *fakeUserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return []*models.User{}, nil
}
func (f *fakeUserService) DeleteUser(ctx context.Context, id int64) (*models.User, error) {
	f.rec.deletions++
	return &models.User{ID: id, Username: "bob"}, nil
}

type fakeDashboardService struct{}

func (f *fakeDashboardService) Counts(ctx context.Context) (*models.DashboardCounts, error) {
	return &models.DashboardCounts{Posts: 2, Users: 3}, nil
}

type fakeAuthService struct{}

func (f *fakeAuthService) Signup(ctx context.Context, username, email, password string) (*models.User, error) {
	return &models.User{ID: 1, Username: username, Email: email}, nil
}
func (f *fakeAuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	if username == "alice" && password == "hunter2secret" {
		return &models.User{ID: 1, Username: "alice", Email: "alice@example.com"}, nil
	}
	return nil, apperrors.ErrInvalidCredentials
}

type testApp struct {
	router   *gin.Engine
	sessions *auth.SessionService
	rec      *recorder
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := &recorder{}
	sessions := auth.NewSessionService(auth.SessionConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "greenhub.test",
	})
	lgr := zerolog.Nop()

	authMw := middleware.NewAuthMiddleware(sessions)
	router := gin.New()
	SetupRouter(router,
		controllers.NewAuthController(&fakeAuthService{}, sessions, lgr),
		controllers.NewPostController(&fakePostService{rec: rec}, &fakeFeedbackService{rec: rec}, nil, lgr),
		controllers.NewFeedbackController(&fakeFeedbackService{rec: rec}),
		controllers.NewContactController(&fakeContactService{rec: rec}),
		controllers.NewEventController(&fakeEventService{}, lgr),
		controllers.NewVolunteerController(&fakeVolunteerService{rec: rec}, &fakeEventService{}, lgr),
		controllers.NewAdminController(&fakeDashboardService{}, &fakeUserService{rec: rec}, lgr),
		authMw,
	)
	return &testApp{router: router, sessions: sessions, rec: rec}
}

func (a *testApp) sessionCookie(t *testing.T, user *models.User) *http.Cookie {
	t.Helper()
	token, err := a.sessions.Issue(user)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return &http.Cookie{Name: middleware.SessionCookie, Value: token}
}

func postForm(router *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAnonymousMutationRedirectsToLogin(t *testing.T) {
	app := newTestApp(t)

	paths := []string{"/volunteer", "/add-post", "/contact", "/feedback", "/events/apply", "/post/1"}
	for _, path := range paths {
		w := postForm(app.router, path, url.Values{})
		if w.Code != http.StatusSeeOther {
			t.Fatalf("%s: code %d, want 303", path, w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/login" {
			t.Fatalf("%s: redirected to %q, want /login", path, loc)
		}
	}

	if *app.rec != (recorder{}) {
		t.Fatalf("writes reached services on gated requests: %+v", app.rec)
	}
}

func TestNonStaffCannotReachStaffRoutes(t *testing.T) {
	app := newTestApp(t)
	cookie := app.sessionCookie(t, &models.User{ID: 1, Username: "alice"})

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/" {
		t.Fatalf("dashboard: code %d loc %q", w.Code, w.Header().Get("Location"))
	}

	w = postForm(app.router, "/users/1/delete", url.Values{}, cookie)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/" {
		t.Fatalf("user delete: code %d loc %q", w.Code, w.Header().Get("Location"))
	}
	if app.rec.deletions != 0 {
		t.Fatalf("deletion reached service through staff gate")
	}
}

func TestStaffHomeRedirectsToDashboard(t *testing.T) {
	app := newTestApp(t)
	cookie := app.sessionCookie(t, &models.User{ID: 2, Username: "root", IsStaff: true})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/dashboard" {
		t.Fatalf("code %d loc %q", w.Code, w.Header().Get("Location"))
	}
}

func TestLoginSetsSessionCookie(t *testing.T) {
	app := newTestApp(t)

	form := url.Values{"username": {"alice"}, "password": {"hunter2secret"}}
	w := postForm(app.router, "/login", form)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/" {
		t.Fatalf("code %d loc %q", w.Code, w.Header().Get("Location"))
	}

	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			session = c
		}
	}
	if session == nil || session.Value == "" {
		t.Fatalf("session cookie not set")
	}
	if _, err := app.sessions.Validate(session.Value); err != nil {
		t.Fatalf("issued cookie does not validate: %v", err)
	}
}

func TestLoginBadPassword(t *testing.T) {
	app := newTestApp(t)

	form := url.Values{"username": {"alice"}, "password": {"wrong"}}
	w := postForm(app.router, "/login", form)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/login" {
		t.Fatalf("code %d loc %q", w.Code, w.Header().Get("Location"))
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			t.Fatalf("session cookie set on failed login")
		}
	}
}

func TestVolunteerSubmitWithSession(t *testing.T) {
	app := newTestApp(t)
	cookie := app.sessionCookie(t, &models.User{ID: 1, Username: "alice", Email: "alice@example.com"})

	form := url.Values{
		"phone":            {"0501234567"},
		"area_of_interest": {"tree planting"},
		"availability":     {"weekends"},
	}
	w := postForm(app.router, "/volunteer", form, cookie)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/events" {
		t.Fatalf("code %d loc %q", w.Code, w.Header().Get("Location"))
	}
	if app.rec.requests != 1 {
		t.Fatalf("request did not reach service")
	}
}

func TestValidationFailureRedirectsBack(t *testing.T) {
	app := newTestApp(t)
	cookie := app.sessionCookie(t, &models.User{ID: 1, Username: "alice"})

	// Missing every field; nothing may persist.
	w := postForm(app.router, "/volunteer", url.Values{}, cookie)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/volunteer" {
		t.Fatalf("code %d loc %q", w.Code, w.Header().Get("Location"))
	}
	if app.rec.requests != 0 {
		t.Fatalf("invalid request reached service")
	}
}

func TestExpiredSessionIsAnonymous(t *testing.T) {
	app := newTestApp(t)
	expired := auth.NewSessionService(auth.SessionConfig{
		SecretKey:   "test-secret",
		TokenExp:    -time.Minute,
		TokenIssuer: "greenhub.test",
	})
	token, err := expired.Issue(&models.User{ID: 1, Username: "alice"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	w := postForm(app.router, "/volunteer", url.Values{}, &http.Cookie{Name: middleware.SessionCookie, Value: token})
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/login" {
		t.Fatalf("code %d loc %q", w.Code, w.Header().Get("Location"))
	}
}

func TestUnknownPostIs404(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/post/999", nil)
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("code %d, want 404", w.Code)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	app := newTestApp(t)
	cookie := app.sessionCookie(t, &models.User{ID: 1, Username: "alice"})

	w := postForm(app.router, "/logout", url.Values{}, cookie)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("code %d", w.Code)
	}
	cleared := false
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("session cookie not cleared")
	}
}
