package handlers

import (
	"net/http"

	"github.com/devFelipeMarcos/login-vittaSystem/internal/middleware"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/templates"

	"github.com/gin-gonic/gin"
)

// Home renders the welcome card. Must run behind middleware.RequireSession.
func Home(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, middleware.SignInPath)
		return
	}
	templates.RenderTempl(c, http.StatusOK, templates.HomePage(templates.HomePageProps{
		BaseProps: baseProps(c),
		User:      user,
	}))
}

// Dashboard renders the page shown right after sign-up.
func Dashboard(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, middleware.SignInPath)
		return
	}
	templates.RenderTempl(c, http.StatusOK, templates.DashboardPage(templates.DashboardPageProps{
		BaseProps: baseProps(c),
		User:      user,
	}))
}
