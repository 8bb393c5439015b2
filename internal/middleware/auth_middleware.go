package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deren/greenhub/internal/pkg/auth"
	"github.com/deren/greenhub/internal/pkg/flash"
)

// SessionCookie is the name of the cookie carrying the signed session token.
const SessionCookie = "greenhub_session"

// Identity is the authenticated caller attached to the request context.
type Identity struct {
	UserID   int64
	Username string
	Email    string
	IsStaff  bool
}

const identityKey = "identity"

// AuthMiddleware resolves the session cookie into an identity and gates
// handlers by required level.
type AuthMiddleware struct {
	sessions *auth.SessionService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(sessions *auth.SessionService) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// ResolveSession parses the session cookie, when present, and attaches the
// identity to the context. It never rejects: public handlers run with or
// without an identity, and an invalid or expired token simply means
// anonymous.
func (m *AuthMiddleware) ResolveSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		claims, err := m.sessions.Validate(token)
		if err != nil {
			// Stale cookie; clear it so the browser stops sending it.
			c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
			c.Next()
			return
		}

		c.Set(identityKey, &Identity{
			UserID:   claims.UserID,
			Username: claims.Username,
			Email:    claims.Email,
			IsStaff:  claims.IsStaff,
		})
		c.Next()
	}
}

// LoginRequired redirects anonymous callers to the login page with a notice.
// No handler below it runs without an identity.
func (m *AuthMiddleware) LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentIdentity(c) == nil {
			flash.Set(c, flash.LevelError, "You need to be logged in to do that.")
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// StaffRequired redirects non-staff callers to the home page with a notice.
// It implies LoginRequired.
func (m *AuthMiddleware) StaffRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := CurrentIdentity(c)
		if identity == nil {
			flash.Set(c, flash.LevelError, "You need to be logged in to do that.")
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		if !identity.IsStaff {
			flash.Set(c, flash.LevelError, "You don't have permission to do that.")
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentIdentity returns the authenticated caller, or nil for anonymous
// requests.
func CurrentIdentity(c *gin.Context) *Identity {
	v, exists := c.Get(identityKey)
	if !exists {
		return nil
	}
	identity, ok := v.(*Identity)
	if !ok {
		return nil
	}
	return identity
}
