package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestNoticeRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// The first request writes the notice.
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/volunteer", nil)
	SetNotice(c, Notice{
		Level:   LevelError,
		Message: "Please correct the errors below.",
		Fields:  map[string]string{"phone": "Phone number is required."},
	})

	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatalf("no cookie written")
	}

	// The next request reads and clears it.
	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodGet, "/volunteer", nil)
	for _, ck := range cookies {
		c2.Request.AddCookie(ck)
	}

	n := Take(c2)
	if n == nil {
		t.Fatalf("notice not recovered")
	}
	if n.Level != LevelError || n.Message != "Please correct the errors below." {
		t.Fatalf("notice = %+v", n)
	}
	if n.Fields["phone"] != "Phone number is required." {
		t.Fatalf("fields = %v", n.Fields)
	}

	// Take must expire the cookie.
	expired := false
	for _, ck := range w2.Result().Cookies() {
		if ck.Name == cookieName && ck.MaxAge < 0 {
			expired = true
		}
	}
	if !expired {
		t.Fatalf("notice cookie not cleared after read")
	}
}

func TestTakeWithoutNotice(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if n := Take(c); n != nil {
		t.Fatalf("unexpected notice: %+v", n)
	}
}

func TestTakeGarbageCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: cookieName, Value: "not-base64!!!"})
	if n := Take(c); n != nil {
		t.Fatalf("garbage decoded into notice: %+v", n)
	}
}
