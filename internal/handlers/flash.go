package handlers

import (
	"log"

	"github.com/devFelipeMarcos/login-vittaSystem/internal/templates"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// addFlash queues a toast for the next rendered page.
func addFlash(c *gin.Context, kind, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, kind)
	if err := session.Save(); err != nil {
		log.Printf("[Flash] Failed to save flash message: %v", err)
	}
}

// popFlashes returns and clears the queued toasts, successes first.
func popFlashes(c *gin.Context) []templates.Toast {
	session := sessions.Default(c)

	var toasts []templates.Toast
	for _, kind := range []string{templates.ToastSuccess, templates.ToastError} {
		for _, v := range session.Flashes(kind) {
			if msg, ok := v.(string); ok {
				toasts = append(toasts, templates.Toast{Kind: kind, Message: msg})
			}
		}
	}

	if len(toasts) > 0 {
		if err := session.Save(); err != nil {
			log.Printf("[Flash] Failed to clear flash messages: %v", err)
		}
	}
	return toasts
}

// baseProps collects what every page needs, consuming pending toasts.
func baseProps(c *gin.Context, extra ...templates.Toast) templates.BaseProps {
	return templates.BaseProps{
		CSRFToken: csrfToken(c),
		Toasts:    append(popFlashes(c), extra...),
	}
}
