package httpapi

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/openfooty/roster-api/internal/platform/logging"
)

type RouterConfig struct {
	Logger             *logging.Logger
	CORSAllowedOrigins []string
}

// NewRouter builds the full middleware chain around the route table.
// Recovery sits outermost so a panic in any layer still answers 500.
func NewRouter(h *Handler, cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	h.registerRoutes(mux)

	var handler http.Handler = mux
	handler = otelhttp.NewHandler(handler, "http.server",
		otelhttp.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != "/healthz"
		}),
	)
	handler = CORS(cfg.CORSAllowedOrigins)(handler)
	handler = RequestLogging(cfg.Logger)(handler)
	handler = Recover(cfg.Logger)(handler)

	return handler
}
