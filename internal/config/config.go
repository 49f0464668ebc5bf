package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-dashboard/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	LogLevel           logging.Level
	LogFormat          string
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
	HTTPRateLimitRPS   float64
	HTTPRateLimitBurst int

	KickbaseBaseURL               string
	KickbaseCDNBaseURL            string
	KickbaseTimeout               time.Duration
	KickbaseMaxAttempts           int
	KickbaseBackoffBase           time.Duration
	KickbaseTransport             string
	KickbaseRateLimitRPS          float64
	KickbaseCircuitEnabled        bool
	KickbaseCircuitFailureCount   int
	KickbaseCircuitOpenTimeout    time.Duration
	KickbaseCircuitHalfOpenMaxReq int
	SquadFanoutWorkers            int

	StatsEnabled            bool
	DBURL                   string
	DBDisablePreparedBinary bool
	DBMaxOpenConns          int
	DBMaxIdleConns          int
	DBConnMaxLifetime       time.Duration

	PprofEnabled               bool
	PprofAddr                  string
	UptraceEnabled             bool
	UptraceDSN                 string
	UptraceLogsEnabled         bool
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}

	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "45s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	logFormat := strings.ToLower(strings.TrimSpace(getEnv("APP_LOG_FORMAT", "json")))
	if logFormat != "json" && logFormat != "console" {
		return Config{}, fmt.Errorf("invalid APP_LOG_FORMAT %q: valid values are json, console", logFormat)
	}

	httpRateLimitRPS, err := getEnvAsFloat("HTTP_RATE_LIMIT_RPS", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_RATE_LIMIT_RPS: %w", err)
	}
	if httpRateLimitRPS < 0 {
		return Config{}, fmt.Errorf("HTTP_RATE_LIMIT_RPS must be >= 0")
	}
	httpRateLimitBurst, err := getEnvAsInt("HTTP_RATE_LIMIT_BURST", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_RATE_LIMIT_BURST: %w", err)
	}
	if httpRateLimitBurst < 0 {
		return Config{}, fmt.Errorf("HTTP_RATE_LIMIT_BURST must be >= 0")
	}

	kickbaseTimeout, err := time.ParseDuration(getEnv("KICKBASE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse KICKBASE_TIMEOUT: %w", err)
	}
	if kickbaseTimeout <= 0 {
		return Config{}, fmt.Errorf("KICKBASE_TIMEOUT must be > 0")
	}
	kickbaseMaxAttempts, err := getEnvAsInt("KICKBASE_MAX_ATTEMPTS", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse KICKBASE_MAX_ATTEMPTS: %w", err)
	}
	if kickbaseMaxAttempts < 1 || kickbaseMaxAttempts > 3 {
		return Config{}, fmt.Errorf("KICKBASE_MAX_ATTEMPTS must be between 1 and 3")
	}
	kickbaseBackoffBase, err := time.ParseDuration(getEnv("KICKBASE_BACKOFF_BASE", "300ms"))
	if err != nil {
		return Config{}, fmt.Errorf("parse KICKBASE_BACKOFF_BASE: %w", err)
	}
	if kickbaseBackoffBase <= 0 {
		return Config{}, fmt.Errorf("KICKBASE_BACKOFF_BASE must be > 0")
	}
	kickbaseTransport := strings.ToLower(strings.TrimSpace(getEnv("KICKBASE_TRANSPORT", "nethttp")))
	if kickbaseTransport != "nethttp" && kickbaseTransport != "fasthttp" {
		return Config{}, fmt.Errorf("invalid KICKBASE_TRANSPORT %q: valid values are nethttp, fasthttp", kickbaseTransport)
	}
	kickbaseRateLimitRPS, err := getEnvAsFloat("KICKBASE_RATE_LIMIT_RPS", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse KICKBASE_RATE_LIMIT_RPS: %w", err)
	}
	if kickbaseRateLimitRPS < 0 {
		return Config{}, fmt.Errorf("KICKBASE_RATE_LIMIT_RPS must be >= 0")
	}
	kickbaseCircuitEnabled, err := strconv.ParseBool(getEnv("KICKBASE_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse KICKBASE_CIRCUIT_ENABLED: %w", err)
	}
	kickbaseCircuitFailureCount, err := getEnvAsInt("KICKBASE_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse KICKBASE_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if kickbaseCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("KICKBASE_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	kickbaseCircuitOpenTimeout, err := time.ParseDuration(getEnv("KICKBASE_CIRCUIT_OPEN_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse KICKBASE_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if kickbaseCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("KICKBASE_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	kickbaseCircuitHalfOpenMaxReq, err := getEnvAsInt("KICKBASE_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse KICKBASE_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if kickbaseCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("KICKBASE_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	squadFanoutWorkers, err := getEnvAsInt("SQUAD_FANOUT_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse SQUAD_FANOUT_WORKERS: %w", err)
	}
	if squadFanoutWorkers < 1 {
		return Config{}, fmt.Errorf("SQUAD_FANOUT_WORKERS must be >= 1")
	}

	statsEnabled, err := strconv.ParseBool(getEnv("STATS_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse STATS_ENABLED: %w", err)
	}
	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if statsEnabled && dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when STATS_ENABLED=true")
	}
	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}
	dbMaxOpenConns, err := getEnvAsInt("DB_MAX_OPEN_CONNS", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_MAX_OPEN_CONNS: %w", err)
	}
	if dbMaxOpenConns < 1 {
		return Config{}, fmt.Errorf("DB_MAX_OPEN_CONNS must be >= 1")
	}
	dbMaxIdleConns, err := getEnvAsInt("DB_MAX_IDLE_CONNS", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_MAX_IDLE_CONNS: %w", err)
	}
	if dbMaxIdleConns < 0 {
		return Config{}, fmt.Errorf("DB_MAX_IDLE_CONNS must be >= 0")
	}
	dbConnMaxLifetime, err := time.ParseDuration(getEnv("DB_CONN_MAX_LIFETIME", "30m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_CONN_MAX_LIFETIME: %w", err)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	cfg := Config{
		AppEnv:                        appEnv,
		ServiceName:                   getEnv("APP_SERVICE_NAME", "fantasy-dashboard-api"),
		ServiceVersion:                getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                      getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:                   readTimeout,
		WriteTimeout:                  writeTimeout,
		LogLevel:                      logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		LogFormat:                     logFormat,
		SwaggerEnabled:                swaggerEnabled,
		CORSAllowedOrigins:            splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		HTTPRateLimitRPS:              httpRateLimitRPS,
		HTTPRateLimitBurst:            httpRateLimitBurst,
		KickbaseBaseURL:               strings.TrimSpace(getEnv("KICKBASE_BASE_URL", "https://api.kickbase.com")),
		KickbaseCDNBaseURL:            strings.TrimSpace(getEnv("KICKBASE_CDN_BASE_URL", "https://kickbase.b-cdn.net/")),
		KickbaseTimeout:               kickbaseTimeout,
		KickbaseMaxAttempts:           kickbaseMaxAttempts,
		KickbaseBackoffBase:           kickbaseBackoffBase,
		KickbaseTransport:             kickbaseTransport,
		KickbaseRateLimitRPS:          kickbaseRateLimitRPS,
		KickbaseCircuitEnabled:        kickbaseCircuitEnabled,
		KickbaseCircuitFailureCount:   kickbaseCircuitFailureCount,
		KickbaseCircuitOpenTimeout:    kickbaseCircuitOpenTimeout,
		KickbaseCircuitHalfOpenMaxReq: kickbaseCircuitHalfOpenMaxReq,
		SquadFanoutWorkers:            squadFanoutWorkers,
		StatsEnabled:                  statsEnabled,
		DBURL:                         dbURL,
		DBDisablePreparedBinary:       dbDisablePreparedBinary,
		DBMaxOpenConns:                dbMaxOpenConns,
		DBMaxIdleConns:                min(dbMaxIdleConns, dbMaxOpenConns),
		DBConnMaxLifetime:             dbConnMaxLifetime,
		PprofEnabled:                  pprofEnabled,
		PprofAddr:                     pprofAddr,
		UptraceEnabled:                uptraceEnabled,
		UptraceDSN:                    uptraceDSN,
		UptraceLogsEnabled:            uptraceLogsEnabled,
		PyroscopeEnabled:              pyroscopeEnabled,
		PyroscopeServerAddress:        pyroscopeServerAddress,
		PyroscopeAuthToken:            strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:        strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:    strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:           pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsFloat(key string, fallback float64) (float64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.ParseFloat(value, 64)
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	for _, item := range strings.Split(raw, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(item), "=")
		if !found {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(key), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(value), "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
