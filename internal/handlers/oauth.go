package handlers

import (
	"log"
	"net/http"

	"github.com/devFelipeMarcos/login-vittaSystem/internal/auth"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/services"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/templates"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/util"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	sessionOAuthState    = "oauth_state"
	sessionOAuthCallback = "oauth_callback"
)

// OAuthHandler drives the Google sign-in round trip.
type OAuthHandler struct {
	authService *services.AuthService
	cookie      CookieOptions
}

func NewOAuthHandler(as *services.AuthService, cookie CookieOptions) *OAuthHandler {
	return &OAuthHandler{
		authService: as,
		cookie:      cookie,
	}
}

// GoogleSignIn stores a fresh state in the browser session and shows the
// redirect notice, which forwards to Google.
func (h *OAuthHandler) GoogleSignIn(c *gin.Context) {
	state, err := util.RandomToken(32)
	if err != nil {
		log.Printf("[OAuth] Failed to generate state: %v", err)
		h.fail(c, http.StatusInternalServerError)
		return
	}

	authURL, err := h.authService.GoogleSignInURL(c.Request.Context(), state)
	if err != nil {
		h.fail(c, services.ClassifyGoogleError(err).Status)
		return
	}

	session := sessions.Default(c)
	session.Set(sessionOAuthState, state)
	session.Set(
		sessionOAuthCallback,
		util.SafeRedirectPath(c.Query("callbackURL"), services.GoogleRedirect),
	)
	if err := session.Save(); err != nil {
		log.Printf("[OAuth] Failed to save session: %v", err)
		h.fail(c, http.StatusInternalServerError)
		return
	}

	templates.RenderTempl(c, http.StatusOK, templates.RedirectPage(templates.RedirectPageProps{
		Message:   services.MsgRedirectingToGoogle,
		TargetURL: authURL,
	}))
}

// GoogleCallback verifies the state, completes the sign-in and redirects.
func (h *OAuthHandler) GoogleCallback(c *gin.Context) {
	session := sessions.Default(c)
	savedState, _ := session.Get(sessionOAuthState).(string)
	target, _ := session.Get(sessionOAuthCallback).(string)
	session.Delete(sessionOAuthState)
	session.Delete(sessionOAuthCallback)
	if err := session.Save(); err != nil {
		log.Printf("[OAuth] Failed to clear state: %v", err)
	}

	if errParam := c.Query("error"); errParam != "" {
		log.Printf("[OAuth] Google returned error: %s", errParam)
		h.fail(c, http.StatusBadRequest)
		return
	}

	state := c.Query("state")
	if savedState == "" || state != savedState {
		log.Printf("[OAuth] State mismatch on Google callback")
		h.fail(c, http.StatusBadRequest)
		return
	}

	code := c.Query("code")
	if code == "" {
		h.fail(c, http.StatusBadRequest)
		return
	}

	s, err := h.authService.CompleteGoogleSignIn(c.Request.Context(), code)
	if err != nil {
		h.fail(c, services.ClassifyGoogleError(err).Status)
		return
	}

	auth.SetSessionCookie(c.Writer, h.cookie.Name, s, h.cookie.Secure)
	c.Redirect(http.StatusFound, util.SafeRedirectPath(target, services.GoogleRedirect))
}

// fail re-renders the sign-in page with the Google failure toast.
func (h *OAuthHandler) fail(c *gin.Context, status int) {
	templates.RenderTempl(c, status, templates.SignInPage(templates.SignInPageProps{
		BaseProps: baseProps(c, templates.Toast{
			Kind:    templates.ToastError,
			Message: services.MsgGoogleSignInFailed,
		}),
		GoogleEnabled: true,
	}))
}
