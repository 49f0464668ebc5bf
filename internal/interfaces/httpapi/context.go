package httpapi

import "context"

type contextKey string

const bearerTokenContextKey contextKey = "bearer_token"

func withBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerTokenContextKey, token)
}

// bearerTokenFromContext returns "" when the caller sent no credentials. The
// upstream adapters reject an empty token before any network call.
func bearerTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(bearerTokenContextKey).(string)
	return token
}
