package middlewares

import (
	"net/http"

	"MigrantHealth/sessions"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "session"

// Redirect hints returned with guard denials so the frontend can send the
// browser somewhere safe.
const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// SessionLoader resolves the request's session, observing anonymous
// clients as (nil, nil). *sessions.Manager satisfies this.
type SessionLoader interface {
	Load(c *gin.Context) (*sessions.Session, error)
}

// RequireSession gates a route on an authenticated session and, when
// requiredRoles is non-empty, on membership in one of those roles. The
// decision is made before the handler runs and touches no data beyond
// the session itself.
func RequireSession(loader SessionLoader, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := loader.Load(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "Unable to verify your session.",
			})
			return
		}
		if session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    "Please log in to access this page.",
				"redirect": LoginPath,
			})
			return
		}
		if len(requiredRoles) > 0 && !containsRole(requiredRoles, session.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "You don't have permission to access this page.",
				"redirect": DashboardPath,
			})
			return
		}

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// CurrentSession retrieves the session injected by RequireSession.
func CurrentSession(c *gin.Context) (*sessions.Session, bool) {
	value, ok := c.Get(sessionContextKey)
	if !ok {
		return nil, false
	}
	session, ok := value.(*sessions.Session)
	return session, ok
}

func containsRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
