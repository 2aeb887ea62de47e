package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/devFelipeMarcos/login-vittaSystem/internal/core"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/metrics"

	"github.com/gin-gonic/gin"
)

const (
	// ContextUser is the gin context key holding the signed-in core.User.
	ContextUser = "user"

	// SignInPath is where anonymous visitors are sent.
	SignInPath = "/authentication"
)

// RequireSession resolves the session carried by the request and redirects
// to the sign-in page when there is none. A lookup error counts as no
// session. Every guarded route performs its own lookup.
func RequireSession(provider core.AuthProvider, recorder core.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		session, err := provider.GetSession(c.Request.Context(), c.Request.Header)

		switch {
		case err != nil:
			recorder.RecordSessionLookup(metrics.LookupError, time.Since(start))
			log.Printf("[Session] Lookup failed via %s: %v", provider.Name(), err)
		case session == nil:
			recorder.RecordSessionLookup(metrics.LookupMissing, time.Since(start))
		default:
			recorder.RecordSessionLookup(metrics.LookupFound, time.Since(start))
			c.Set(ContextUser, session.User)
			c.Next()
			return
		}

		c.Redirect(http.StatusFound, SignInPath)
		c.Abort()
	}
}

// CurrentUser returns the user stored by RequireSession.
func CurrentUser(c *gin.Context) (core.User, bool) {
	v, exists := c.Get(ContextUser)
	if !exists {
		return core.User{}, false
	}
	user, ok := v.(core.User)
	return user, ok
}
