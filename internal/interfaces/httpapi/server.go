package httpapi

import (
	"net/http"

	"github.com/riskibarqy/series-points/internal/platform/logging"
)

type RouterOptions struct {
	CORSAllowedOrigins []string
	MetricsEnabled     bool
	SwaggerEnabled     bool
}

func NewRouter(
	handler *Handler,
	actors ActorResolver,
	logger *logging.Logger,
	opts RouterOptions,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts)
	registerReadRoutes(mux, handler, actors)
	registerScorerRoutes(mux, handler, actors)

	return RequestTracing(RequestLogging(logger, CORS(opts.CORSAllowedOrigins, recoverPanic(logger, Metrics(mux)))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
