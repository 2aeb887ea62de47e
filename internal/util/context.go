package util

import (
	"context"

	"github.com/gin-gonic/gin"
)

type clientInfoKey struct{}

// ClientInfo describes the browser making the current request.
type ClientInfo struct {
	IP        string
	UserAgent string
}

// ClientInfoMiddleware stores the client IP and user agent in the request
// context so providers can record them on new sessions.
func ClientInfoMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Gin's ClientIP() handles X-Forwarded-For and other headers
		ctx := WithClientInfo(c.Request.Context(), ClientInfo{
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// WithClientInfo returns a copy of ctx carrying info.
func WithClientInfo(ctx context.Context, info ClientInfo) context.Context {
	return context.WithValue(ctx, clientInfoKey{}, info)
}

// ClientInfoFromContext returns the stored client info, or the zero value.
func ClientInfoFromContext(ctx context.Context) ClientInfo {
	info, _ := ctx.Value(clientInfoKey{}).(ClientInfo)
	return info
}
