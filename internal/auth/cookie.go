package auth

import (
	"net/http"
	"time"

	"github.com/devFelipeMarcos/login-vittaSystem/internal/core"
)

// SetSessionCookie stores the session token in an HttpOnly cookie that
// expires with the session.
func SetSessionCookie(w http.ResponseWriter, name string, session *core.Session, secure bool) {
	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	if maxAge <= 0 {
		ClearSessionCookie(w, name, secure)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie in the browser.
func ClearSessionCookie(w http.ResponseWriter, name string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionTokenFromHeader returns the session token carried in the Cookie
// header, or "" when there is none.
func SessionTokenFromHeader(headers http.Header, name string) string {
	r := http.Request{Header: headers}
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
