package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-dashboard/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("STATS_ENABLED", "")
	t.Setenv("KICKBASE_TRANSPORT", "")
	t.Setenv("KICKBASE_MAX_ATTEMPTS", "")
	t.Setenv("KICKBASE_BACKOFF_BASE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "fantasy-dashboard-api", cfg.ServiceName)
	assert.Equal(t, "nethttp", cfg.KickbaseTransport)
	assert.Equal(t, 3, cfg.KickbaseMaxAttempts)
	assert.Equal(t, 300*time.Millisecond, cfg.KickbaseBackoffBase)
	assert.Equal(t, "https://api.kickbase.com", cfg.KickbaseBaseURL)
	assert.False(t, cfg.StatsEnabled)
	assert.True(t, cfg.KickbaseCircuitEnabled)
	assert.Equal(t, 4, cfg.SquadFanoutWorkers)
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("UPTRACE_ENABLED", "false")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid APP_ENV")
}

func TestLoad_SwaggerDefaultsByEnv(t *testing.T) {
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("SWAGGER_ENABLED", "")

	t.Run("prod disables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)

		cfg, err := Load()
		require.NoError(t, err)
		assert.False(t, cfg.SwaggerEnabled)
	})

	t.Run("dev enables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)

		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.SwaggerEnabled)
	})
}

func TestLoad_LogSettings(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_LOG_LEVEL", "warning")
	t.Setenv("APP_LOG_FORMAT", "Console")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, logging.LevelWarn, cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)

	t.Setenv("APP_LOG_FORMAT", "xml")
	_, err = Load()
	require.Error(t, err)
}

func TestLoad_KickbaseValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	cases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "attempts above cap", key: "KICKBASE_MAX_ATTEMPTS", value: "4"},
		{name: "attempts zero", key: "KICKBASE_MAX_ATTEMPTS", value: "0"},
		{name: "attempts not a number", key: "KICKBASE_MAX_ATTEMPTS", value: "three"},
		{name: "unknown transport", key: "KICKBASE_TRANSPORT", value: "grpc"},
		{name: "bad backoff", key: "KICKBASE_BACKOFF_BASE", value: "soon"},
		{name: "negative rate limit", key: "KICKBASE_RATE_LIMIT_RPS", value: "-1"},
		{name: "zero circuit threshold", key: "KICKBASE_CIRCUIT_FAILURE_COUNT", value: "0"},
		{name: "zero timeout", key: "KICKBASE_TIMEOUT", value: "0s"},
		{name: "zero fanout workers", key: "SQUAD_FANOUT_WORKERS", value: "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.key)
		})
	}
}

func TestLoad_KickbaseOverrides(t *testing.T) {
	t.Setenv("APP_ENV", EnvStage)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("KICKBASE_TRANSPORT", " FastHTTP ")
	t.Setenv("KICKBASE_MAX_ATTEMPTS", "1")
	t.Setenv("KICKBASE_RATE_LIMIT_RPS", "2.5")
	t.Setenv("KICKBASE_CIRCUIT_OPEN_TIMEOUT", "1m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "fasthttp", cfg.KickbaseTransport)
	assert.Equal(t, 1, cfg.KickbaseMaxAttempts)
	assert.InDelta(t, 2.5, cfg.KickbaseRateLimitRPS, 0.0001)
	assert.Equal(t, time.Minute, cfg.KickbaseCircuitOpenTimeout)
}

func TestLoad_StatsRequiresDBURL(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("STATS_ENABLED", "true")
	t.Setenv("DB_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_URL")

	t.Setenv("DB_URL", "postgres://u:p@localhost:5432/dashboard?sslmode=disable")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.StatsEnabled)
}

func TestLoad_DBPoolIdleNeverExceedsOpen(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("DB_MAX_OPEN_CONNS", "3")
	t.Setenv("DB_MAX_IDLE_CONNS", "8")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.DBMaxIdleConns)
}

func TestLoad_DBDisablePreparedBinaryResultParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default true", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "")
		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.DBDisablePreparedBinary)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "not-bool")
		_, err := Load()
		require.Error(t, err)
	})
}

func TestLoad_HTTPRateLimit(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("HTTP_RATE_LIMIT_RPS", "20")
	t.Setenv("HTTP_RATE_LIMIT_BURST", "40")

	cfg, err := Load()
	require.NoError(t, err)
	assert.InDelta(t, 20.0, cfg.HTTPRateLimitRPS, 0.0001)
	assert.Equal(t, 40, cfg.HTTPRateLimitBurst)

	t.Setenv("HTTP_RATE_LIMIT_BURST", "-1")
	_, err = Load()
	require.Error(t, err)
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "foo=bar,uptrace-dsn=https://token@api.uptrace.dev?grpc=4317")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://token@api.uptrace.dev?grpc=4317", cfg.UptraceDSN)
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":6060", cfg.PprofAddr)
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_SERVICE_NAME", "fantasy-dashboard-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "fantasy-dashboard-api-test", cfg.PyroscopeAppName)
}

func TestLoad_CORSOriginsParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	})

	t.Run("comma separated", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, ,http://localhost:5173 ")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.example.com", "http://localhost:5173"}, cfg.CORSAllowedOrigins)
	})

	t.Run("only separators", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " , ")
		_, err := Load()
		require.Error(t, err)
	})
}
