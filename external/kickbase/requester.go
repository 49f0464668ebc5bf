package kickbase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strconv"
	"time"

	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/time/rate"

	"github.com/riskibarqy/fantasy-dashboard/internal/platform/logging"
	"github.com/riskibarqy/fantasy-dashboard/internal/platform/resilience"
)

// Result is a successful fetch. Status is always 200.
type Result struct {
	Data   any
	Status int
}

// RequestOptions tunes one call. Zero MaxAttempts uses the requester default.
type RequestOptions struct {
	Method      string
	Header      http.Header
	Body        []byte
	MaxAttempts int
}

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

type RequesterConfig struct {
	Executor       Executor
	MaxAttempts    int
	BackoffBase    time.Duration
	RateLimitRPS   float64
	CircuitBreaker resilience.CircuitBreakerConfig
	Logger         *logging.Logger
	Sleep          SleepFunc
}

// Requester wraps an Executor with classification, bounded retries and
// exponential backoff. Identical concurrent GETs share one execution.
type Requester struct {
	executor    Executor
	maxAttempts int
	backoffBase time.Duration
	limiter     *rate.Limiter
	breaker     *resilience.CircuitBreaker
	logger      *logging.Logger
	sleep       SleepFunc
	flight      resilience.Flight[Result]
}

func NewRequester(cfg RequesterConfig) *Requester {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	executor := cfg.Executor
	if executor == nil {
		executor = NewNetHTTPExecutor(nil, defaultTimeout)
	}
	backoffBase := cfg.BackoffBase
	if backoffBase <= 0 {
		backoffBase = defaultBackoffBase
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = defaultAttempts
	}
	sleep := cfg.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	var limiter *rate.Limiter
	if cfg.RateLimitRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), 1)
	}

	breaker := resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker)
	breaker.OnTransition(func(from, to resilience.CircuitState) {
		logger.Warn("kickbase circuit breaker transition", "from", from, "to", to)
	})

	return &Requester{
		executor:    executor,
		maxAttempts: clampAttempts(maxAttempts),
		backoffBase: backoffBase,
		limiter:     limiter,
		breaker:     breaker,
		logger:      logger,
		sleep:       sleep,
	}
}

// Do performs the request and returns the parsed JSON payload. Failures come
// back as *FetchError, or ctx.Err wrapped in one when the caller gives up.
func (r *Requester) Do(ctx context.Context, url string, opts RequestOptions) (Result, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	ctx, span := startSpan(ctx, "kickbase.Requester.Do")
	defer span.End()
	span.SetAttributes(attribute.String("http.request.method", method), attribute.String("url.full", url))

	req := Request{Method: method, URL: url, Header: opts.Header, Body: opts.Body}
	attempts := r.maxAttempts
	if opts.MaxAttempts != 0 {
		attempts = clampAttempts(opts.MaxAttempts)
	}

	if method != http.MethodGet {
		return r.run(ctx, req, attempts)
	}

	key := flightKey(req)
	for {
		result, err, shared := r.flight.Do(key, func() (Result, error) {
			return r.run(ctx, req, attempts)
		})
		span.SetAttributes(attribute.Bool("kickbase.shared", shared))
		// A follower whose leader was canceled starts or joins a fresh flight.
		if !shared || !isCanceled(err) || ctx.Err() != nil {
			return result, err
		}
		r.logger.DebugContext(ctx, "kickbase shared request canceled by its leader, rejoining", "request", previewRequest(req))
	}
}

// run gates one logical request on the breaker and drives its attempts.
func (r *Requester) run(ctx context.Context, req Request, attempts int) (Result, error) {
	if err := r.breaker.Allow(); err != nil {
		r.logger.WarnContext(ctx, "kickbase circuit breaker rejected request", "method", req.Method, "url", req.URL, "state", r.breaker.State())
		return Result{Status: http.StatusServiceUnavailable}, &FetchError{
			Kind:    KindCircuitOpen,
			Status:  http.StatusServiceUnavailable,
			Message: "upstream temporarily unavailable",
			Cause:   err,
		}
	}
	return r.attempt(ctx, req, attempts)
}

func (r *Requester) attempt(ctx context.Context, req Request, attempts int) (Result, error) {
	var last Classification
	var lastErr error

	for n := 1; n <= attempts; n++ {
		if r.limiter != nil {
			if err := r.limiter.Wait(ctx); err != nil {
				return r.canceled(ctx, n, err)
			}
		}

		started := time.Now()
		outcome, err := r.executor.Execute(ctx, req)
		if err != nil {
			if ctx.Err() != nil {
				return r.canceled(ctx, n, ctx.Err())
			}
			last = Classification{Kind: KindTransportFailure, Message: err.Error()}
			lastErr = err
		} else {
			last = Classify(outcome)
			lastErr = nil
		}
		if last.Kind.Retryable() && isAuthStatus(last.Status) {
			// A rejected token stays rejected, whatever the body looks like.
			last.Kind = KindUpstreamError
		}

		r.logger.DebugContext(ctx, "kickbase request attempt",
			"request", previewRequest(req),
			"attempt", n,
			"kind", last.Kind.String(),
			"status", last.Status,
			"duration_ms", time.Since(started).Milliseconds(),
		)

		switch last.Kind {
		case KindOk:
			r.breaker.RecordSuccess()
			return Result{Data: last.Data, Status: http.StatusOK}, nil
		case KindUpstreamStaleClient:
			r.breaker.RecordSuccess()
			return Result{Status: http.StatusBadRequest}, &FetchError{
				Kind:     last.Kind,
				Status:   http.StatusBadRequest,
				Message:  last.Message,
				Attempts: n,
			}
		case KindUpstreamError:
			if last.Status >= http.StatusInternalServerError {
				r.breaker.RecordFailure()
			} else {
				r.breaker.RecordSuccess()
			}
			return Result{Status: last.Status}, &FetchError{
				Kind:     last.Kind,
				Status:   last.Status,
				Message:  last.Message,
				Attempts: n,
			}
		}

		if n == attempts {
			break
		}
		delay := backoffDelay(r.backoffBase, n)
		r.logger.WarnContext(ctx, "kickbase request failed, retrying",
			"request", previewRequest(req),
			"attempt", n,
			"kind", last.Kind.String(),
			"message", last.Message,
			"backoff", delay.String(),
		)
		if err := r.sleep(ctx, delay); err != nil {
			return r.canceled(ctx, n, err)
		}
	}

	r.breaker.RecordFailure()
	r.logger.ErrorContext(ctx, "kickbase request exhausted retries",
		"request", previewRequest(req),
		"attempts", attempts,
		"kind", last.Kind.String(),
		"message", last.Message,
	)
	return Result{Status: http.StatusInternalServerError}, &FetchError{
		Kind:     last.Kind,
		Status:   http.StatusInternalServerError,
		Message:  last.Message,
		Attempts: attempts,
		Cause:    lastErr,
	}
}

func (r *Requester) canceled(ctx context.Context, attempt int, cause error) (Result, error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		cause = ctxErr
	}
	r.breaker.Release()
	r.logger.InfoContext(ctx, "kickbase request canceled", "attempt", attempt, "error", cause)
	return Result{Status: http.StatusInternalServerError}, &FetchError{
		Kind:     KindCanceled,
		Status:   http.StatusInternalServerError,
		Message:  "request canceled by caller",
		Attempts: attempt,
		Cause:    cause,
	}
}

// backoffDelay is base * 2^attempt, so with the 300ms default the waits are 600ms then 1200ms.
func backoffDelay(base time.Duration, attempt int) time.Duration {
	return base << attempt
}

func clampAttempts(n int) int {
	return min(max(n, minAttempts), maxAttemptsCap)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// flightKey separates identical URLs fetched with different tokens without
// keeping the token itself in memory as a map key.
func flightKey(req Request) string {
	sum := sha256.Sum256([]byte(req.Header.Get("Authorization")))
	return req.Method + " " + req.URL + " " + hex.EncodeToString(sum[:8])
}

// previewRequest renders the call as a curl line with credentials masked.
func previewRequest(req Request) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString("curl -X ")
	_, _ = buf.WriteString(req.Method)
	_ = buf.WriteByte(' ')
	_, _ = buf.WriteString(strconv.Quote(req.URL))
	if req.Header.Get("Authorization") != "" {
		_, _ = buf.WriteString(` -H "Authorization: Bearer ***"`)
	}
	if len(req.Body) > 0 {
		_, _ = buf.WriteString(" --data <")
		_, _ = buf.WriteString(strconv.Itoa(len(req.Body)))
		_, _ = buf.WriteString(" bytes>")
	}
	return buf.String()
}
