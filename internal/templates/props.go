package templates

import (
	"github.com/devFelipeMarcos/login-vittaSystem/internal/core"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/forms"
)

// Toast kinds
const (
	ToastSuccess = "success"
	ToastError   = "error"
)

// Toast is a one-shot notification rendered at the top of a page.
type Toast struct {
	Kind    string
	Message string
}

// BaseProps contains common properties shared across all pages
type BaseProps struct {
	CSRFToken string
	Toasts    []Toast
}

// ===== Page Props Structures =====

// SignInPageProps contains properties for the sign-in page
type SignInPageProps struct {
	BaseProps
	Email         string // echoed back after a failed submit; never the password
	Errors        forms.Errors
	GoogleEnabled bool
}

// SignUpPageProps contains properties for the sign-up page
type SignUpPageProps struct {
	BaseProps
	Name          string
	Email         string
	Errors        forms.Errors
	GoogleEnabled bool
}

// HomePageProps contains properties for the signed-in home page
type HomePageProps struct {
	BaseProps
	User core.User
}

// DashboardPageProps contains properties for the dashboard page
type DashboardPageProps struct {
	BaseProps
	User core.User
}

// RedirectPageProps contains properties for the interstitial shown while
// the browser is sent to an external sign-in page
type RedirectPageProps struct {
	BaseProps
	Message   string
	TargetURL string
}

// ErrorPageProps contains properties for the error page
type ErrorPageProps struct {
	BaseProps
	Error   string
	Message string
}
