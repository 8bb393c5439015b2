// Package flash implements the transient notices attached to redirect
// responses. A notice survives exactly one subsequent request: it is written
// as a short-lived cookie and cleared when read.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const cookieName = "greenhub_flash"

// Notice levels, mirroring the message tags the presentation layer styles.
const (
	LevelSuccess = "success"
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelError   = "error"
)

// Notice is a transient user-facing message.
type Notice struct {
	Level   string            `json:"level"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"` // per-field validation errors
}

// Set attaches a notice to the response. It replaces any pending notice.
func Set(c *gin.Context, level, message string) {
	SetNotice(c, Notice{Level: level, Message: message})
}

// SetNotice attaches a full notice, including field errors, to the response.
func SetNotice(c *gin.Context, n Notice) {
	payload, err := json.Marshal(n)
	if err != nil {
		return
	}
	encoded := base64.URLEncoding.EncodeToString(payload)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, encoded, 60, "/", "", false, true)
}

// Take reads and clears the pending notice, if any.
func Take(c *gin.Context) *Notice {
	encoded, err := c.Cookie(cookieName)
	if err != nil {
		return nil
	}
	c.SetCookie(cookieName, "", -1, "/", "", false, true)

	payload, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}
	var n Notice
	if err := json.Unmarshal(payload, &n); err != nil {
		return nil
	}
	return &n
}
