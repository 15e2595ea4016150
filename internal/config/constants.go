package config

import "time"

const (
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envPollCooldown = "POLL_COOLDOWN"
	envCacheTTL     = "CACHE_TTL"
	envProvider     = "PROVIDER"
	envLeaguesFile  = "LEAGUES_FILE"
	envAllowedComps = "ALLOWED_COMPETITIONS"
	envAdminToken   = "ADMIN_TOKEN"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"

	envMatchListBaseURL     = "MATCHLIST_BASE_URL"
	envMatchListPath        = "MATCHLIST_PATH"
	envMatchListSportID     = "MATCHLIST_SPORT_ID"
	envMatchListTimeout     = "MATCHLIST_TIMEOUT"
	envMatchListMinInterval = "MATCHLIST_MIN_INTERVAL"
	envRapidAPIHost         = "RAPIDAPI_HOST"
	envRapidAPIKey          = "RAPIDAPI_KEY"

	envHTTPReadTimeout  = "HTTP_READ_TIMEOUT"
	envHTTPWriteTimeout = "HTTP_WRITE_TIMEOUT"
	envHTTPIdleTimeout  = "HTTP_IDLE_TIMEOUT"
	envShutdownTimeout  = "SHUTDOWN_TIMEOUT"

	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	envSnapshotEnabled   = "SNAPSHOT_ENABLED"
	envSnapshotDir       = "SNAPSHOT_DIR"
	envSnapshotRetention = "SNAPSHOT_RETENTION_DAYS"

	defaultPort = "4000"
	// The feed refreshes a few times per minute at most; five minutes keeps quota use low.
	defaultPollInterval = 5 * Duration(time.Minute)
	defaultPollCooldown = 60 * Duration(time.Second)
	defaultCacheTTL     = 5 * Duration(time.Minute)
	defaultProvider     = "fixture"
	defaultLogLevel     = "info"
	defaultLogFormat    = "text"
	defaultServiceName  = "live-arena-service"

	defaultMatchListBaseURL     = "https://all-sport-live-stream.p.rapidapi.com"
	defaultMatchListPath        = "/api/d/match_list"
	defaultMatchListSportID     = "1"
	defaultMatchListTimeout     = 10 * Duration(time.Second)
	defaultMatchListMinInterval = Duration(time.Second)

	defaultHTTPReadTimeout  = 10 * Duration(time.Second)
	defaultHTTPWriteTimeout = 10 * Duration(time.Second)
	defaultHTTPIdleTimeout  = 60 * Duration(time.Second)
	defaultShutdownTimeout  = 10 * Duration(time.Second)

	defaultMetricsPort = "9090"

	defaultSnapshotEnabled   = true
	defaultSnapshotDir       = "data/snapshots"
	defaultSnapshotRetention = 14
)
