package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fantasy-dashboard/internal/platform/logging"
)

type RouterOptions struct {
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
}

func NewRouter(handler *Handler, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts.SwaggerEnabled)
	registerSessionRoutes(mux, handler)
	registerLeagueRoutes(mux, handler)
	registerManagerRoutes(mux, handler)
	registerCompetitionRoutes(mux, handler)
	registerStatsRoutes(mux, handler)

	var next http.Handler = ForwardBearer(recoverPanic(logger, mux))
	next = RateLimit(opts.RateLimitRPS, opts.RateLimitBurst, next)
	next = CORS(opts.CORSAllowedOrigins, next)
	next = RequestLogging(logger, next)
	next = RequestID(next)
	return RequestTracing(next)
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
