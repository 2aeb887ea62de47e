package middleware

import (
	"crypto/subtle"
	"log"
	"net/http"

	"github.com/devFelipeMarcos/login-vittaSystem/internal/templates"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/util"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	csrfTokenKey    = "csrf_token"
	csrfFormField   = "csrf_token"
	csrfHeaderField = "X-CSRF-Token"
)

// CSRFMiddleware keeps a per-browser token in the cookie session and
// requires it on state-changing requests.
func CSRFMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		token, _ := session.Get(csrfTokenKey).(string)
		if token == "" {
			var err error
			token, err = util.RandomToken(32)
			if err != nil {
				log.Printf("[CSRF] Failed to generate token: %v", err)
				renderCSRFError(c, http.StatusInternalServerError)
				return
			}
			session.Set(csrfTokenKey, token)
			if err := session.Save(); err != nil {
				log.Printf("[CSRF] Failed to save token: %v", err)
				renderCSRFError(c, http.StatusInternalServerError)
				return
			}
		}

		// Make token available to templates
		c.Set(csrfTokenKey, token)

		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch:
			submitted := c.PostForm(csrfFormField)
			if submitted == "" {
				submitted = c.GetHeader(csrfHeaderField)
			}
			if submitted == "" || subtle.ConstantTimeCompare([]byte(submitted), []byte(token)) != 1 {
				renderCSRFError(c, http.StatusForbidden)
				return
			}
		}

		c.Next()
	}
}

func renderCSRFError(c *gin.Context, status int) {
	templates.RenderTempl(c, status, templates.ErrorPage(templates.ErrorPageProps{
		Error:   "Sessão expirada",
		Message: "Atualize a página e tente novamente.",
	}))
	c.Abort()
}

// GetCSRFToken retrieves the CSRF token from the context
func GetCSRFToken(c *gin.Context) string {
	if token, exists := c.Get(csrfTokenKey); exists {
		if tokenStr, ok := token.(string); ok {
			return tokenStr
		}
	}
	return ""
}
