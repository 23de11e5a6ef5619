// Package net holds transport neutral request helpers
package net

import (
	"context"
	stdnet "net"
	"net/http"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// WithRequest stores reqID where chi's RequestID middleware would
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// RequestID returns the request id on ctx or ""
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// ClientIP returns the host part of RemoteAddr. Run chi RealIP first when behind a proxy
func ClientIP(r *http.Request) string {
	addr := strings.TrimSpace(r.RemoteAddr)
	if host, _, err := stdnet.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
