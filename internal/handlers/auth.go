package handlers

import (
	"log"
	"net/http"

	"github.com/devFelipeMarcos/login-vittaSystem/internal/auth"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/core"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/forms"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/middleware"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/services"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/templates"

	"github.com/gin-gonic/gin"
)

// Form names used in validation metrics.
const (
	formSignIn = "sign_in"
	formSignUp = "sign_up"
)

// CookieOptions describes the session cookie written after sign-in.
type CookieOptions struct {
	Name   string
	Secure bool
}

type AuthHandler struct {
	authService   *services.AuthService
	cookie        CookieOptions
	googleEnabled bool
	metrics       core.Recorder
}

func NewAuthHandler(
	as *services.AuthService,
	cookie CookieOptions,
	googleEnabled bool,
	m core.Recorder,
) *AuthHandler {
	return &AuthHandler{
		authService:   as,
		cookie:        cookie,
		googleEnabled: googleEnabled,
		metrics:       m,
	}
}

func csrfToken(c *gin.Context) string {
	return middleware.GetCSRFToken(c)
}

// signedIn reports whether the request already carries a live session.
func (h *AuthHandler) signedIn(c *gin.Context) bool {
	session, err := h.authService.GetSession(c.Request.Context(), c.Request.Header)
	if err != nil {
		log.Printf("[Auth] Session lookup failed: %v", err)
		return false
	}
	return session != nil
}

// SignInPage renders the sign-in form; signed-in visitors go home.
func (h *AuthHandler) SignInPage(c *gin.Context) {
	if h.signedIn(c) {
		c.Redirect(http.StatusFound, services.SignInRedirect)
		return
	}
	templates.RenderTempl(c, http.StatusOK, templates.SignInPage(templates.SignInPageProps{
		BaseProps:     baseProps(c),
		GoogleEnabled: h.googleEnabled,
	}))
}

// SignIn handles the sign-in form submission
func (h *AuthHandler) SignIn(c *gin.Context) {
	var form forms.SignInForm
	if err := c.ShouldBind(&form); err != nil {
		log.Printf("[Auth] Failed to bind sign-in form: %v", err)
	}

	render := func(status int, errs forms.Errors, toasts ...templates.Toast) {
		templates.RenderTempl(c, status, templates.SignInPage(templates.SignInPageProps{
			BaseProps:     baseProps(c, toasts...),
			Email:         form.Email,
			Errors:        errs,
			GoogleEnabled: h.googleEnabled,
		}))
	}

	if errs := form.Validate(); errs != nil {
		h.metrics.RecordValidationFailure(formSignIn)
		render(http.StatusUnprocessableEntity, errs)
		return
	}

	session, err := h.authService.SignInWithEmail(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		f := services.ClassifySignInError(err)
		render(f.Status, nil, templates.Toast{Kind: templates.ToastError, Message: f.Message})
		return
	}

	h.startSession(c, session, services.MsgSignInSuccess, services.SignInRedirect)
}

// SignUpPage renders the account creation form.
func (h *AuthHandler) SignUpPage(c *gin.Context) {
	if h.signedIn(c) {
		c.Redirect(http.StatusFound, services.SignInRedirect)
		return
	}
	templates.RenderTempl(c, http.StatusOK, templates.SignUpPage(templates.SignUpPageProps{
		BaseProps:     baseProps(c),
		GoogleEnabled: h.googleEnabled,
	}))
}

// SignUp handles the sign-up form submission
func (h *AuthHandler) SignUp(c *gin.Context) {
	var form forms.SignUpForm
	if err := c.ShouldBind(&form); err != nil {
		log.Printf("[Auth] Failed to bind sign-up form: %v", err)
	}

	render := func(status int, errs forms.Errors, toasts ...templates.Toast) {
		templates.RenderTempl(c, status, templates.SignUpPage(templates.SignUpPageProps{
			BaseProps:     baseProps(c, toasts...),
			Name:          form.Name,
			Email:         form.Email,
			Errors:        errs,
			GoogleEnabled: h.googleEnabled,
		}))
	}

	if errs := form.Validate(); errs != nil {
		h.metrics.RecordValidationFailure(formSignUp)
		render(http.StatusUnprocessableEntity, errs)
		return
	}

	session, err := h.authService.SignUpWithEmail(
		c.Request.Context(),
		form.Name,
		form.Email,
		form.Password,
	)
	if err != nil {
		f := services.ClassifySignUpError(err)
		render(f.Status, nil, templates.Toast{Kind: templates.ToastError, Message: f.Message})
		return
	}

	h.startSession(c, session, services.MsgSignUpSuccess, services.SignUpRedirect)
}

// SignOut ends the session and always lands on the sign-in page. A provider
// failure is logged; the browser cookie is dropped either way.
func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := h.authService.SignOut(c.Request.Context(), c.Request.Header); err != nil {
		log.Printf("[Auth] Sign-out error ignored: %v", err)
	}

	auth.ClearSessionCookie(c.Writer, h.cookie.Name, h.cookie.Secure)
	addFlash(c, templates.ToastSuccess, services.MsgSignOutSuccess)
	c.Redirect(http.StatusFound, services.SignOutRedirect)
}

// startSession writes the session cookie, queues the success toast and
// redirects.
func (h *AuthHandler) startSession(c *gin.Context, session *core.Session, message, target string) {
	auth.SetSessionCookie(c.Writer, h.cookie.Name, session, h.cookie.Secure)
	addFlash(c, templates.ToastSuccess, message)
	c.Redirect(http.StatusFound, target)
}
