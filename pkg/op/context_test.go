package op

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHostFromRequest(t *testing.T) {
	type args struct {
		hostFromRequest HostFromRequest
		target          string
		tls             bool
		header          http.Header
	}
	tests := []struct {
		name string
		args args
		want Host
	}{
		{
			"static",
			args{
				hostFromRequest: StaticHost("https://server", "/"),
				target:          "http://internal:8080/end_session",
			},
			Host{Origin: "https://server", BasePath: "/"},
		},
		{
			"request",
			args{
				hostFromRequest: RequestHost("/app"),
				target:          "http://localhost:9998/end_session",
			},
			Host{Origin: "http://localhost:9998", BasePath: "/app"},
		},
		{
			"request tls",
			args{
				hostFromRequest: RequestHost("/"),
				target:          "https://server/end_session",
				tls:             true,
			},
			Host{Origin: "https://server", BasePath: "/"},
		},
		{
			"request ignores forwarded",
			args{
				hostFromRequest: RequestHost("/"),
				target:          "http://internal/end_session",
				header:          http.Header{"Forwarded": {"host=server;proto=https"}},
			},
			Host{Origin: "http://internal", BasePath: "/"},
		},
		{
			"forwarded",
			args{
				hostFromRequest: ForwardedHost("/"),
				target:          "http://internal/end_session",
				header:          http.Header{"Forwarded": {"for=192.0.2.60;host=server;proto=https"}},
			},
			Host{Origin: "https://server", BasePath: "/"},
		},
		{
			"x-forwarded",
			args{
				hostFromRequest: ForwardedHost("/"),
				target:          "http://internal/end_session",
				header: http.Header{
					"X-Forwarded-Proto": {"https"},
					"X-Forwarded-Host":  {"server:8443"},
				},
			},
			Host{Origin: "https://server:8443", BasePath: "/"},
		},
		{
			"forwarded without headers",
			args{
				hostFromRequest: ForwardedHost("/"),
				target:          "http://internal/end_session",
			},
			Host{Origin: "http://internal", BasePath: "/"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.args.target, nil)
			if !tt.args.tls {
				r.TLS = nil
			} else if r.TLS == nil {
				r.TLS = &tls.ConnectionState{}
			}
			for k, v := range tt.args.header {
				r.Header[k] = v
			}

			var got Host
			next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got, _ = HostFromContext(r.Context())
			})
			NewHostInterceptor(tt.args.hostFromRequest).Handler(next).ServeHTTP(httptest.NewRecorder(), r)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHostFromContext_missing(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := HostFromContext(r.Context())
	assert.False(t, ok)
}
