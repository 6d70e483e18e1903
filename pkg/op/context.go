package op

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/muhlemmer/httpforwarded"
)

type key int

const (
	hostKey key = 0
)

// Host is the origin (scheme, host and port) of the serving endpoint
// and the base path the application is mounted on.
type Host struct {
	Origin   string
	BasePath string
}

type HostFromRequest func(r *http.Request) Host

// StaticHost always returns the same host, regardless of the request.
func StaticHost(origin, basePath string) HostFromRequest {
	return func(*http.Request) Host {
		return Host{
			Origin:   origin,
			BasePath: basePath,
		}
	}
}

// RequestHost derives the origin from the request itself.
// The scheme is https if the connection uses TLS.
func RequestHost(basePath string) HostFromRequest {
	return func(r *http.Request) Host {
		return Host{
			Origin:   requestScheme(r) + "://" + r.Host,
			BasePath: basePath,
		}
	}
}

// ForwardedHost derives the origin from the Forwarded (RFC 7239) header,
// then X-Forwarded-Proto and X-Forwarded-Host, then the request itself.
// Only use it behind a proxy which sets or strips these headers.
func ForwardedHost(basePath string) HostFromRequest {
	fallback := RequestHost(basePath)
	return func(r *http.Request) Host {
		host := fallback(r)
		scheme, hostname := requestScheme(r), r.Host
		if v := forwardedParameter(r, "proto"); v != "" {
			scheme = v
		} else if v := r.Header.Get("X-Forwarded-Proto"); v != "" {
			scheme = v
		}
		if v := forwardedParameter(r, "host"); v != "" {
			hostname = v
		} else if v := r.Header.Get("X-Forwarded-Host"); v != "" {
			hostname = v
		}
		host.Origin = scheme + "://" + hostname
		return host
	}
}

func forwardedParameter(r *http.Request, param string) string {
	values, err := httpforwarded.ParseParameter(param, r.Header.Values("Forwarded"))
	if err != nil {
		slog.WarnContext(r.Context(), "host from forwarded header", "error", err)
		return ""
	}
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func requestScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

type HostInterceptor struct {
	hostFromRequest HostFromRequest
}

// NewHostInterceptor will set the host into the context
// by the provided HostFromRequest (e.g. returned from StaticHost or ForwardedHost)
func NewHostInterceptor(hostFromRequest HostFromRequest) *HostInterceptor {
	return &HostInterceptor{
		hostFromRequest: hostFromRequest,
	}
}

func (i *HostInterceptor) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		i.setHostCtx(w, r, next)
	})
}

func (i *HostInterceptor) HandlerFunc(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		i.setHostCtx(w, r, next)
	}
}

func (i *HostInterceptor) setHostCtx(w http.ResponseWriter, r *http.Request, next http.Handler) {
	r = r.WithContext(ContextWithHost(r.Context(), i.hostFromRequest(r)))
	next.ServeHTTP(w, r)
}

// HostFromContext reads the host from the context (set by a HostInterceptor).
func HostFromContext(ctx context.Context) (Host, bool) {
	host, ok := ctx.Value(hostKey).(Host)
	return host, ok
}

// ContextWithHost returns a new context with host set to it.
func ContextWithHost(ctx context.Context, host Host) context.Context {
	return context.WithValue(ctx, hostKey, host)
}
