package op

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/zitadel/endsession/internal/otel"
)

const (
	healthEndpoint            = "/healthz"
	readinessEndpoint         = "/ready"
	defaultEndSessionEndpoint = "end_session"
)

var (
	tracer = otel.Tracer("github.com/zitadel/endsession/pkg/op")

	DefaultEndSessionEndpoint = NewEndpoint(defaultEndSessionEndpoint)

	defaultCORSOptions = cors.Options{
		AllowCredentials: true,
		AllowedHeaders: []string{
			"Origin",
			"Accept",
			"Accept-Language",
			"Authorization",
			"Content-Type",
			"X-Requested-With",
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
		},
		ExposedHeaders: []string{
			"Location",
			"Content-Length",
		},
		AllowOriginFunc: func(_ string) bool {
			return true
		},
	}
)
