package web

import (
	"context"
	"net"
	"net/http"

	"github.com/JonMunkholm/catalog-export/internal/core"
)

// WithRequestMetadata adds the client IP and User-Agent to ctx for export history.
func WithRequestMetadata(ctx context.Context, r *http.Request) context.Context {
	return core.WithRequester(ctx, core.Requester{IP: clientIP(r), UserAgent: r.UserAgent()})
}

// clientIP returns the request's client address without the port.
// RemoteAddr has already been rewritten by TrustedRealIP for proxied requests.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
